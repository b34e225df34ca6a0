package navgraph

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/matzehuels/navgraph/pkg/observability"
)

// CalcReachability validates the graph and fills in every node's reachable
// list. Checks run in this order, stopping at the first failure:
//
//  1. Node names are unique.
//  2. Edges are unique: no ordered pair twice, and no undirected edge
//     sharing its unordered pair with another edge.
//  3. Every edge endpoint names an existing node.
//  4. Reachable lists are computed, then connectivity is checked: no edge
//     touches an unconnected node, and all other nodes are reachable from
//     the first of them in insertion order.
//
// When a check fails the returned error is a [*ValidationError]. If the
// failure occurs in step 4, reachable lists have already been updated.
// Listeners are not notified.
func (g *Graph) CalcReachability() error {
	start := time.Now()
	hooks := observability.Graph()
	hooks.OnValidateStart(g.name, len(g.nodes), len(g.edges))

	err := g.calcReachability()

	hooks.OnValidateComplete(g.name, time.Since(start), err)
	if err != nil {
		g.logger.Debug("graph validation failed", "graph", g.name, "err", err)
		return err
	}
	g.logger.Debug("graph validated", "graph", g.name,
		"nodes", len(g.nodes), "edges", len(g.edges), "duration", time.Since(start))
	return nil
}

func (g *Graph) calcReachability() error {
	if err := g.assertUniqueNodes(); err != nil {
		return err
	}
	if err := g.assertUniqueEdges(); err != nil {
		return err
	}
	if err := g.assertValidEdges(); err != nil {
		return err
	}
	for i := range g.nodes {
		g.nodes[i].reachable = g.ReachableNodes(g.nodes[i].Name)
	}
	return g.assertConnected()
}

func (g *Graph) assertUniqueNodes() error {
	names := make([]string, len(g.nodes))
	for i, n := range g.nodes {
		names[i] = n.Name
	}
	slices.Sort(names)
	for i := 1; i < len(names); i++ {
		if names[i] == names[i-1] {
			return &ValidationError{
				Err:    ErrDuplicateNodeName,
				Nodes:  []string{names[i]},
				Detail: fmt.Sprintf("node %q exists at least twice", names[i]),
			}
		}
	}
	return nil
}

func (g *Graph) assertUniqueEdges() error {
	for i := range g.edges {
		for j := i + 1; j < len(g.edges); j++ {
			a, b := g.edges[i], g.edges[j]
			if a.From == b.From && a.To == b.To {
				return &ValidationError{
					Err:    ErrDuplicateEdge,
					Nodes:  []string{a.From, a.To},
					Edges:  []Edge{a.clone(), b.clone()},
					Detail: fmt.Sprintf("edge %s is defined twice", a),
				}
			}
			if a.From == b.To && a.To == b.From && (!a.Directed || !b.Directed) {
				return &ValidationError{
					Err:    ErrDuplicateEdge,
					Nodes:  []string{a.From, a.To},
					Edges:  []Edge{a.clone(), b.clone()},
					Detail: fmt.Sprintf("edges %s and %s overlap and at least one is undirected", a, b),
				}
			}
		}
	}
	return nil
}

func (g *Graph) assertValidEdges() error {
	exists := make(map[string]bool, len(g.nodes))
	for _, n := range g.nodes {
		exists[n.Name] = true
	}
	for _, e := range g.edges {
		for _, end := range [2]string{e.From, e.To} {
			if !exists[end] {
				return &ValidationError{
					Err:    ErrInvalidEdgeEndpoint,
					Nodes:  []string{end},
					Edges:  []Edge{e.clone()},
					Detail: fmt.Sprintf("edge %s references unknown node %q", e, end),
				}
			}
		}
	}
	return nil
}

// assertConnected runs a breadth-first traversal over the stored reachable
// lists. Node names are unique at this point.
func (g *Graph) assertConnected() error {
	byName := make(map[string]*Node, len(g.nodes))
	for i := range g.nodes {
		byName[g.nodes[i].Name] = &g.nodes[i]
	}

	startIdx := slices.IndexFunc(g.nodes, func(n Node) bool { return !n.Unconnected })
	visited := make(map[string]bool, len(g.nodes))
	if startIdx >= 0 {
		start := g.nodes[startIdx].Name
		visited[start] = true
		queue := []string{start}
		for len(queue) > 0 {
			name := queue[0]
			queue = queue[1:]
			for _, r := range byName[name].reachable {
				if byName[r].Unconnected {
					return &ValidationError{
						Err:    ErrUnconnectedNodeViolation,
						Nodes:  []string{r, name},
						Detail: fmt.Sprintf("node %q is flagged unconnected but is reachable from %q", r, name),
					}
				}
				if !visited[r] {
					visited[r] = true
					queue = append(queue, r)
				}
			}
		}
	}

	var disconnected []string
	for _, n := range g.nodes {
		if visited[n.Name] {
			continue
		}
		if n.Unconnected {
			if len(n.reachable) > 0 {
				return &ValidationError{
					Err:    ErrUnconnectedNodeViolation,
					Nodes:  []string{n.Name},
					Detail: fmt.Sprintf("node %q is flagged unconnected but reaches %s", n.Name, strings.Join(n.reachable, ", ")),
				}
			}
			continue
		}
		for _, r := range n.reachable {
			if byName[r].Unconnected {
				return &ValidationError{
					Err:    ErrUnconnectedNodeViolation,
					Nodes:  []string{r, n.Name},
					Detail: fmt.Sprintf("node %q is flagged unconnected but is reachable from %q", r, n.Name),
				}
			}
		}
		disconnected = append(disconnected, n.Name)
	}
	if len(disconnected) > 0 {
		start := g.nodes[startIdx].Name
		slices.Sort(disconnected)
		return &ValidationError{
			Err:    ErrGraphDisconnected,
			Nodes:  disconnected,
			Start:  start,
			Detail: fmt.Sprintf("cannot reach %s from %q", strings.Join(disconnected, ", "), start),
		}
	}
	return nil
}
