package streamart_test

import (
	"fmt"

	"github.com/katalvlaran/lvstream/streamart"
	"github.com/katalvlaran/lvstream/vector"
)

// ExampleEngine_Learn summarizes a short stream drawn from two tight clusters.
func ExampleEngine_Learn() {
	e, err := streamart.New(2,
		streamart.WithLandmarkWindow(6),
		streamart.WithMaxActive(2),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	e.SubscribeFunc(func() { fmt.Println("landmark at step", e.Step()) })

	stream := []vector.Vector{
		vector.Of(0.10, 0.10), vector.Of(0.90, 0.90), vector.Of(0.11, 0.10),
		vector.Of(0.90, 0.91), vector.Of(0.10, 0.11), vector.Of(0.91, 0.90),
	}
	for _, x := range stream {
		_ = e.Learn(x)
	}

	for _, c := range e.Codebook() {
		fmt.Printf("weight=%d prototype=(%.2f, %.2f)\n", c.Weight, c.Prototype[0], c.Prototype[1])
	}
	// Output:
	// landmark at step 6
	// weight=3 prototype=(0.10, 0.10)
	// weight=3 prototype=(0.90, 0.90)
}
