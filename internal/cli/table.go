package cli

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/navgraph/pkg/navgraph"
)

// nodeTable renders nodes as a bordered table. Unconnected nodes are
// highlighted; reachable lists are only meaningful on a validated graph.
func nodeTable(nodes []navgraph.Node) string {
	rows := make([][]string, len(nodes))
	for i, n := range nodes {
		reachable := "-"
		if r := n.ReachableNodes(); len(r) > 0 {
			reachable = strings.Join(r, ", ")
		}
		unconnected := ""
		if n.Unconnected {
			unconnected = "yes"
		}
		rows[i] = []string{n.Name, formatCoord(n.X), formatCoord(n.Y), unconnected, reachable, formatProperties(n.Properties)}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Node", "X", "Y", "Unconnected", "Reachable", "Properties").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader.Padding(0, 1)
			}
			base := lipgloss.NewStyle().Padding(0, 1)
			if row >= 0 && row < len(nodes) && nodes[row].Unconnected {
				return base.Inherit(styleUnconnected)
			}
			if col == 1 || col == 2 {
				return base.Inherit(StyleNumber)
			}
			return base
		})

	return t.String()
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// formatProperties renders "k=v" pairs in key order.
func formatProperties(p navgraph.Properties) string {
	keys := p.Keys()
	pairs := make([]string, len(keys))
	for i, k := range keys {
		pairs[i] = k + "=" + p[k]
	}
	return strings.Join(pairs, " ")
}
