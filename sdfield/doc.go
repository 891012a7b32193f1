// Package sdfield is the public entry point for computing 2D distance
// fields: a thin facade over brute, brushfire, and linear, the same role
// core/api.go plays over lvlath's algorithm packages — one dispatch
// function selecting a concrete engine by Option, never a method on a
// stateful type, since a BooleanGrid carries no state to hold between
// calls.
package sdfield
