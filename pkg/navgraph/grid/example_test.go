package grid_test

import (
	"fmt"

	"github.com/matzehuels/navgraph/pkg/navgraph/grid"
)

func ExampleBuild() {
	opts := grid.DefaultOptions()
	opts.Name = "aisle"
	opts.Rows, opts.Cols = 2, 3
	opts.Unconnected = []string{grid.NodeName(1, 2)}

	g, err := grid.Build(opts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	root, _ := g.RootNode()
	center, _ := g.Node("r0c1")
	fmt.Println("Nodes:", g.NodeCount(), "Edges:", g.EdgeCount())
	fmt.Println("Root:", root.Name)
	fmt.Println("Reachable from r0c1:", center.ReachableNodes())
	// Output:
	// Nodes: 6 Edges: 5
	// Root: r0c0
	// Reachable from r0c1: [r0c0 r0c2 r1c1]
}
