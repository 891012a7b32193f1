// Package imaging bridges grid.BooleanGrid/ScalarGrid to the standard
// library's image.Image: Threshold turns a photograph or icon into the
// boolean raster the engines expect, and Visualize turns a computed
// distance field back into a viewable picture, the same
// threshold-in/debug-image-out shape as the pack's
// bithoarder-distancefield tool (NewMonochromeFromTreshold,
// CreateDebugImage), rewritten against the exact edge-metric distances
// this module produces instead of that tool's chamfer approximation.
package imaging
