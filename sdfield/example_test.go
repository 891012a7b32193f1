package sdfield_test

import (
	"fmt"

	"github.com/RLin8910/parallel-sdf/grid"
	"github.com/RLin8910/parallel-sdf/sdfield"
)

// ExampleCompute shows the default Linear engine computing a signed
// distance field for a single interior cell surrounded by exterior.
func ExampleCompute() {
	img, err := grid.BooleanGridFromRows([][]bool{
		{false, false, false},
		{false, true, false},
		{false, false, false},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	sdf, err := sdfield.Compute(img)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("center=%.2f edge=%.2f\n", sdf.At(1, 1), sdf.At(1, 0))
	// Output: center=-0.50 edge=0.50
}

// ExampleComputeUDF shows computing the exterior-sourced unsigned distance
// field directly, with the linear engine, useful when only one side of the
// boundary is needed.
func ExampleComputeUDF() {
	img, err := grid.BooleanGridFromRows([][]bool{
		{false, false},
		{true, false},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	udf, err := sdfield.ComputeUDF(img, true, sdfield.WithEngine(sdfield.Linear))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("source=%.2f\n", udf.At(0, 0))
	// Output: source=0.00
}
