package navgraph

import "fmt"

// Edge connects two nodes by name. Undirected edges can be traveled both
// ways; directed edges only from From to To.
//
// Endpoints are resolved by name when the graph is validated, so an edge may
// be added before its nodes.
type Edge struct {
	From       string
	To         string
	Directed   bool
	Properties Properties
}

// NewEdge creates an edge with an empty property map.
func NewEdge(from, to string, directed bool) Edge {
	return Edge{From: from, To: to, Directed: directed, Properties: Properties{}}
}

// HasProperty reports whether the edge carries the property key.
func (e Edge) HasProperty(key string) bool { return e.Properties.Has(key) }

// Property returns the property value for key, or "" if unset.
func (e Edge) Property(key string) string { return e.Properties.Get(key) }

// SetProperty sets a property value, allocating the map if needed.
func (e *Edge) SetProperty(key, value string) {
	if e.Properties == nil {
		e.Properties = Properties{}
	}
	e.Properties[key] = value
}

// Connects reports whether the edge lies on the unordered pair {a, b},
// regardless of its direction.
func (e Edge) Connects(a, b string) bool {
	return (e.From == a && e.To == b) || (e.From == b && e.To == a)
}

// String renders the edge as "from -> to" or "from -- to".
func (e Edge) String() string {
	if e.Directed {
		return fmt.Sprintf("%s -> %s", e.From, e.To)
	}
	return fmt.Sprintf("%s -- %s", e.From, e.To)
}

func (e Edge) clone() Edge {
	e.Properties = e.Properties.Clone()
	return e
}
