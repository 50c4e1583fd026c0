// Package planner_test provides examples of goal-driven planning.
package planner_test

import (
	"fmt"

	"github.com/katalvlaran/qroute/graph"
	"github.com/katalvlaran/qroute/planner"
	"github.com/katalvlaran/qroute/qlearn"
)

// ExamplePlanner_PlanVia routes from K to the priority bay G through B.
func ExamplePlanner_PlanVia() {
	base, err := graph.WarehouseAisles()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	params := qlearn.DefaultParams()
	params.Iterations = 5000
	p, err := planner.New(base, planner.WithParams(params), planner.WithSeed(42))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	direct, _ := p.Plan("K", "G")
	via, _ := p.PlanVia("K", "B", "G")
	fmt.Println(direct)
	fmt.Println(via)
	// Output:
	// [K L H G]
	// [K J F B C G]
}
