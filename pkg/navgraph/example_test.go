package navgraph_test

import (
	"errors"
	"fmt"

	"github.com/matzehuels/navgraph/pkg/navgraph"
)

func ExampleGraph_basic() {
	// Three waypoints on a corridor: dock -- hall -- kitchen
	g := navgraph.New("ground-floor")
	g.AddNode(navgraph.NewNode("dock", 0, 0))
	g.AddNode(navgraph.NewNode("hall", 10, 0))
	g.AddNode(navgraph.NewNode("kitchen", 20, 0))
	g.AddEdge(navgraph.NewEdge("dock", "hall", false))
	g.AddEdge(navgraph.NewEdge("hall", "kitchen", false))

	if err := g.CalcReachability(); err != nil {
		fmt.Println("invalid:", err)
		return
	}
	hall, _ := g.Node("hall")
	fmt.Println("Nodes:", g.NodeCount())
	fmt.Println("Reachable from hall:", hall.ReachableNodes())
	// Output:
	// Nodes: 3
	// Reachable from hall: [dock kitchen]
}

func ExampleGraph_ClosestNode() {
	g := navgraph.New("floor")
	a := navgraph.NewNode("A", 0, 0)
	b := navgraph.NewNode("B", 10, 0)
	b.SetProperty("charger", "")
	g.AddNode(a)
	g.AddNode(b)

	n, _ := g.ClosestNode(1, 0, "")
	fmt.Println("Closest:", n.Name)
	n, _ = g.ClosestNode(1, 0, "charger")
	fmt.Println("Closest charger:", n.Name)
	_, ok := g.ClosestNode(1, 0, "elevator")
	fmt.Println("Elevator found:", ok)
	// Output:
	// Closest: A
	// Closest charger: B
	// Elevator found: false
}

func ExampleGraph_SearchNodes() {
	g := navgraph.New("floor")
	g.AddNode(navgraph.NewNode("A", 0, 0))
	b := navgraph.NewNode("B", 5, 0)
	b.SetProperty("region", "kitchen")
	g.AddNode(b)

	for _, n := range g.SearchNodes("region") {
		fmt.Println(n.Name, n.Property("region"))
	}
	// Output:
	// B kitchen
}

func ExampleGraph_CalcReachability_duplicateEdge() {
	g := navgraph.New("floor")
	g.AddNode(navgraph.NewNode("A", 0, 0))
	g.AddNode(navgraph.NewNode("B", 1, 0))
	g.AddEdge(navgraph.NewEdge("A", "B", false))
	g.AddEdge(navgraph.NewEdge("B", "A", false))

	err := g.CalcReachability()
	fmt.Println(errors.Is(err, navgraph.ErrDuplicateEdge))
	// Output:
	// true
}

func ExampleGraph_AddChangeListener() {
	g := navgraph.New("floor")
	id := g.AddChangeListener(navgraph.ChangeListenerFunc(func() {
		fmt.Println("graph changed")
	}))

	g.AddNode(navgraph.NewNode("A", 0, 0))
	g.RemoveChangeListener(id)
	g.AddNode(navgraph.NewNode("B", 1, 0))
	// Output:
	// graph changed
}
