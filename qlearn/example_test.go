// Package qlearn_test provides examples demonstrating how to train a value table.
package qlearn_test

import (
	"fmt"

	"github.com/katalvlaran/qroute/graph"
	"github.com/katalvlaran/qroute/qlearn"
)

// ExampleTrain trains the reference warehouse and reads the greedy move out of bay K.
func ExampleTrain() {
	// 1) Build the 12-bay warehouse with the goal bonus on G.
	m, err := graph.Warehouse()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) Train with the reference parameters and a fixed seed.
	vt, err := qlearn.Train(m,
		qlearn.WithGamma(0.75),
		qlearn.WithAlpha(0.9),
		qlearn.WithIterations(5000),
		qlearn.WithSeed(7),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Greedy move from K.
	k, _ := m.Encode("K")
	next, _ := vt.ArgMax(k)
	loc, _ := m.Decode(next)
	fmt.Println("K ->", loc)
	// Output: K -> L
}

// ExampleTrain_zeroIterations shows the boundary case: no updates, all-zero table.
func ExampleTrain_zeroIterations() {
	m, _ := graph.Warehouse()
	vt, _ := qlearn.Train(m, qlearn.WithIterations(0))

	mx, _ := vt.Max(0)
	fmt.Println(mx, vt.Stats().Iterations)
	// Output: 0 0
}
