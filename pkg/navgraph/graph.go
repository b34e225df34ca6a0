package navgraph

import (
	"io"
	"slices"

	"github.com/charmbracelet/log"
)

// Graph is a topological map: named nodes in the world frame, edges between
// them, an optional root node, and a set of change listeners.
//
// The zero value is not usable; create graphs with [New].
type Graph struct {
	name      string
	root      string
	hasRoot   bool
	nodes     []Node
	edges     []Edge
	listeners []registration
	logger    *log.Logger
}

// Option configures a Graph created by [New].
type Option func(*Graph)

// WithLogger sets the logger used for debug output and listener failures.
// Graphs log nothing by default.
func WithLogger(l *log.Logger) Option {
	return func(g *Graph) {
		if l != nil {
			g.logger = l
		}
	}
}

// New creates an empty graph with the given name.
func New(name string, opts ...Option) *Graph {
	g := &Graph{
		name:   name,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Name returns the graph's name.
func (g *Graph) Name() string { return g.name }

// NodeCount returns the number of nodes, including duplicates not yet rejected
// by validation.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Nodes returns a copy of all nodes in insertion order.
func (g *Graph) Nodes() []Node {
	nodes := make([]Node, len(g.nodes))
	for i, n := range g.nodes {
		nodes[i] = n.clone()
	}
	return nodes
}

// Edges returns a copy of all edges in insertion order.
func (g *Graph) Edges() []Edge {
	edges := make([]Edge, len(g.edges))
	for i, e := range g.edges {
		edges[i] = e.clone()
	}
	return edges
}

// Node returns the first node named name in insertion order.
func (g *Graph) Node(name string) (Node, bool) {
	i := g.indexOf(name)
	if i < 0 {
		return Node{}, false
	}
	return g.nodes[i].clone(), true
}

// NodeExists reports whether a node named name exists.
func (g *Graph) NodeExists(name string) bool { return g.indexOf(name) >= 0 }

func (g *Graph) indexOf(name string) int {
	return slices.IndexFunc(g.nodes, func(n Node) bool { return n.Name == name })
}

// RootNode returns the root node. It returns false when no root is set or
// the root name does not resolve to a node.
func (g *Graph) RootNode() (Node, bool) {
	if !g.hasRoot {
		return Node{}, false
	}
	return g.Node(g.root)
}

// SetRoot designates the node named name as root and notifies listeners.
// The name is resolved at lookup time, so the node may be added later.
func (g *Graph) SetRoot(name string) {
	g.root = name
	g.hasRoot = true
	g.logger.Debug("root set", "graph", g.name, "root", name)
	g.notifyOfChange()
}

// AddNode appends a copy of n and notifies listeners. Duplicate names are
// accepted here and rejected by [Graph.CalcReachability].
func (g *Graph) AddNode(n Node) {
	g.nodes = append(g.nodes, n.clone())
	g.notifyOfChange()
}

// AddEdge appends a copy of e and notifies listeners. Endpoints are checked
// by [Graph.CalcReachability].
func (g *Graph) AddEdge(e Edge) {
	g.edges = append(g.edges, e.clone())
	g.notifyOfChange()
}

// Assign replaces the name, root, nodes and edges of g with deep copies of
// those of other, then notifies the listeners of g exactly once. Listeners
// of other are not carried over. A nil other clears g but keeps its name.
func (g *Graph) Assign(other *Graph) {
	name := g.name
	var (
		root    string
		hasRoot bool
		nodes   []Node
		edges   []Edge
	)
	if other != nil {
		c := other.Clone()
		name, root, hasRoot, nodes, edges = c.name, c.root, c.hasRoot, c.nodes, c.edges
	}
	g.name, g.root, g.hasRoot, g.nodes, g.edges = name, root, hasRoot, nodes, edges
	g.logger.Debug("graph assigned", "graph", g.name, "nodes", len(g.nodes), "edges", len(g.edges))
	g.notifyOfChange()
}

// Clone returns a deep copy of g sharing its logger but none of its listeners.
func (g *Graph) Clone() *Graph {
	c := &Graph{
		name:    g.name,
		root:    g.root,
		hasRoot: g.hasRoot,
		nodes:   make([]Node, len(g.nodes)),
		edges:   make([]Edge, len(g.edges)),
		logger:  g.logger,
	}
	for i, n := range g.nodes {
		c.nodes[i] = n.clone()
	}
	for i, e := range g.edges {
		c.edges[i] = e.clone()
	}
	return c
}
