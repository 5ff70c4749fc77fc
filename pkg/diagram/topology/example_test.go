package topology_test

import (
	"context"
	"fmt"

	"github.com/slidesmith/slidesmith/pkg/diagram"
	"github.com/slidesmith/slidesmith/pkg/diagram/topology"
)

func ExampleFlowOrder() {
	d, err := diagram.Parse(context.Background(), "graph LR\nA --> B\nB --> C")
	if err != nil {
		fmt.Println("parse:", err)
		return
	}

	fmt.Println("Linear:", topology.IsLinearFlow(d))
	for _, n := range topology.FlowOrder(d) {
		fmt.Println(n.ID)
	}
	// Output:
	// Linear: true
	// A
	// B
	// C
}

func ExampleIsHierarchy() {
	d, err := diagram.Parse(context.Background(), "graph TD\nCEO --> Eng\nCEO --> Sales")
	if err != nil {
		fmt.Println("parse:", err)
		return
	}

	fmt.Println("Hierarchy:", topology.IsHierarchy(d))
	fmt.Println("Linear:", topology.IsLinearFlow(d))
	// Output:
	// Hierarchy: true
	// Linear: false
}
