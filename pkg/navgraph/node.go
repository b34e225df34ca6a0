package navgraph

import (
	"math"
	"slices"
)

// Node is a named waypoint in the world frame.
//
// Nodes are values: the graph stores its own copy on [Graph.AddNode] and
// hands out copies from every accessor, so modifying a returned Node never
// affects the graph.
type Node struct {
	Name       string     // Unique within a graph
	X          float64    // World-frame X coordinate
	Y          float64    // World-frame Y coordinate
	Properties Properties // Free-form annotations, may be nil

	// Unconnected marks a node that is never expected to be linked to the
	// rest of the graph, such as a parking spot reached by other means.
	// Unconnected nodes are exempt from the connectivity check but must not
	// take part in any edge.
	Unconnected bool

	// reachable holds the one-hop neighbor names computed by CalcReachability.
	reachable []string
}

// NewNode creates a node at (x, y) with an empty property map.
func NewNode(name string, x, y float64) Node {
	return Node{Name: name, X: x, Y: y, Properties: Properties{}}
}

// HasProperty reports whether the node carries the property key.
func (n Node) HasProperty(key string) bool { return n.Properties.Has(key) }

// Property returns the property value for key, or "" if unset.
func (n Node) Property(key string) string { return n.Properties.Get(key) }

// SetProperty sets a property value, allocating the map if needed.
func (n *Node) SetProperty(key, value string) {
	if n.Properties == nil {
		n.Properties = Properties{}
	}
	n.Properties[key] = value
}

// ReachableNodes returns the names of nodes directly reachable from this
// node, sorted and without duplicates. The list is only filled in by
// [Graph.CalcReachability] and is stale after any later mutation.
func (n Node) ReachableNodes() []string { return slices.Clone(n.reachable) }

// Distance returns the Euclidean distance from the node to (x, y).
func (n Node) Distance(x, y float64) float64 {
	return math.Hypot(n.X-x, n.Y-y)
}

// DistanceTo returns the Euclidean distance between two nodes.
func (n Node) DistanceTo(other Node) float64 {
	return n.Distance(other.X, other.Y)
}

// clone returns a deep copy so the graph never shares maps or slices with callers.
func (n Node) clone() Node {
	n.Properties = n.Properties.Clone()
	n.reachable = slices.Clone(n.reachable)
	return n
}
