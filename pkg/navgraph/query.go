package navgraph

import (
	"math"
	"slices"
	"time"

	"github.com/matzehuels/navgraph/pkg/observability"
)

// SearchNodes returns the nodes carrying property, in insertion order.
// An empty property matches every node.
func (g *Graph) SearchNodes(property string) []Node {
	var nodes []Node
	for _, n := range g.nodes {
		if property == "" || n.Properties.Has(property) {
			nodes = append(nodes, n.clone())
		}
	}
	return nodes
}

// ReachableNodes returns the names of nodes one hop away from the node
// named name, sorted and without duplicates. Directed edges count only from
// their From end. An unknown name yields an empty result.
//
// Unlike [Node.ReachableNodes], this is computed from the current edges.
func (g *Graph) ReachableNodes(name string) []string {
	if !g.NodeExists(name) {
		return nil
	}
	var names []string
	for _, e := range g.edges {
		switch {
		case e.From == name:
			names = append(names, e.To)
		case !e.Directed && e.To == name:
			names = append(names, e.From)
		}
	}
	slices.Sort(names)
	return slices.Compact(names)
}

// ClosestNode returns the node nearest to (x, y) that carries property
// (any node if property is empty), skipping unconnected nodes.
func (g *Graph) ClosestNode(x, y float64, property string) (Node, bool) {
	return g.closest("closest_node", closestQuery{x: x, y: y, property: property})
}

// ClosestNodeWithUnconnected is like [Graph.ClosestNode] but also
// considers unconnected nodes.
func (g *Graph) ClosestNodeWithUnconnected(x, y float64, property string) (Node, bool) {
	return g.closest("closest_node_with_unconnected", closestQuery{
		x: x, y: y, property: property, withUnconnected: true,
	})
}

// ClosestNodeTo returns the node nearest to the node named name, excluding
// that node itself. It returns false if name does not resolve.
func (g *Graph) ClosestNodeTo(name, property string) (Node, bool) {
	return g.closestTo("closest_node_to", name, property, false)
}

// ClosestNodeToWithUnconnected is like [Graph.ClosestNodeTo] but also
// considers unconnected nodes.
func (g *Graph) ClosestNodeToWithUnconnected(name, property string) (Node, bool) {
	return g.closestTo("closest_node_to_with_unconnected", name, property, true)
}

type closestQuery struct {
	x, y            float64
	property        string
	withUnconnected bool
	exclude         string
	hasExclude      bool
}

func (g *Graph) closestTo(query, name, property string, withUnconnected bool) (Node, bool) {
	i := g.indexOf(name)
	if i < 0 {
		observability.Query().OnQuery(g.name, query, false, 0)
		g.logger.Debug("closest reference node not found", "graph", g.name, "node", name)
		return Node{}, false
	}
	ref := g.nodes[i]
	return g.closest(query, closestQuery{
		x:               ref.X,
		y:               ref.Y,
		property:        property,
		withUnconnected: withUnconnected,
		exclude:         ref.Name,
		hasExclude:      true,
	})
}

// closest scans all nodes; the first node at the strictly smallest distance
// wins. Nodes at a NaN distance never win, but any other candidate does,
// even at an infinite distance.
func (g *Graph) closest(query string, q closestQuery) (Node, bool) {
	start := time.Now()
	best := -1
	minDist := math.Inf(1)
	for i := range g.nodes {
		n := &g.nodes[i]
		if q.property != "" && !n.Properties.Has(q.property) {
			continue
		}
		if n.Unconnected && !q.withUnconnected {
			continue
		}
		if q.hasExclude && n.Name == q.exclude {
			continue
		}
		if d := n.Distance(q.x, q.y); !math.IsNaN(d) && (best < 0 || d < minDist) {
			minDist = d
			best = i
		}
	}
	observability.Query().OnQuery(g.name, query, best >= 0, time.Since(start))
	if best < 0 {
		return Node{}, false
	}
	return g.nodes[best].clone(), true
}
