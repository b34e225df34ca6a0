// Package navgraph provides a topological map graph for robot navigation.
//
// # Overview
//
// A navigation graph is a set of named waypoints (nodes) placed in the 2D
// world frame and connected by directed or undirected edges. Both nodes and
// edges carry free-form string [Properties] which behavior and planning
// components use at run-time, for example to mark docking stations, speed
// limits, or the room a waypoint belongs to.
//
// # Basic Usage
//
// Create a graph with [New], add nodes with [Graph.AddNode] and edges with
// [Graph.AddEdge], then call [Graph.CalcReachability] once loading is done:
//
//	g := navgraph.New("ground-floor")
//	g.AddNode(navgraph.NewNode("dock", 0, 0))
//	g.AddNode(navgraph.NewNode("hall", 4, 0))
//	g.AddEdge(navgraph.NewEdge("dock", "hall", false))
//	if err := g.CalcReachability(); err != nil {
//	    // graph unusable, keep serving the previous one
//	}
//
// CalcReachability validates the structure (unique node names, unique edges,
// edges referencing existing nodes), stores each node's one-hop neighbors,
// and checks that all nodes not flagged [Node.Unconnected] form a single
// connected component. Failures are [*ValidationError] values wrapping one of
// the Err* sentinels, so both errors.Is and errors.As work.
//
// # Validated and Unvalidated
//
// The graph does not track whether it has been validated. Any mutation
// (AddNode, AddEdge, SetRoot, Assign) makes reachable lists and connectivity
// guarantees stale until the next successful CalcReachability.
//
// # Queries
//
// Lookups never return errors. A missed lookup returns the zero [Node] and
// false; callers must check the boolean. The spatial queries
// [Graph.ClosestNode] and [Graph.ClosestNodeTo] pick the node with minimal
// Euclidean distance. Ties go to the node inserted first. Unconnected nodes
// are skipped unless the WithUnconnected variants are used.
//
// # Change Listeners
//
// [Graph.AddChangeListener] registers a [ChangeListener] and returns a
// [ListenerID] handle. Listeners are called synchronously, in registration
// order, after every mutation. The graph does not own its listeners: a
// listener must be removed with its handle before it is discarded.
//
// # Concurrency
//
// Graph instances are not safe for concurrent use. Callers must synchronize
// access if multiple goroutines read or modify the same graph. The intended
// pattern is a single owner that loads and validates the graph, followed by
// a query phase.
package navgraph
