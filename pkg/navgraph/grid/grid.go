// Package grid builds lattice-shaped navigation graphs.
//
// Warehouses, corridors and parking decks are commonly mapped as a regular
// lattice of waypoints. [Build] creates such a map: one node per cell placed
// at (col*Spacing, row*Spacing), undirected edges between 4-neighbors (or
// 8-neighbors with Diagonal), and a validated [navgraph.Graph] as result.
//
// Cells listed in Options.Unconnected become nodes flagged
// [navgraph.Node.Unconnected] without any edges, such as a parking spot the
// robot is placed on by hand. Removing cells can split the lattice; Build then
// fails with [navgraph.ErrGraphDisconnected].
package grid

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"

	"github.com/matzehuels/navgraph/pkg/navgraph"
)

// MaxCells bounds Rows*Cols. Validation compares every pair of edges, so
// build time grows with the square of the cell count.
const MaxCells = 4096

var (
	// ErrInvalidDimensions is returned when Rows or Cols is less than one or
	// the grid has more than MaxCells cells.
	ErrInvalidDimensions = errors.New("grid: invalid dimensions")
	// ErrInvalidSpacing is returned when Spacing is not a positive finite number.
	ErrInvalidSpacing = errors.New("grid: spacing must be positive and finite")
	// ErrUnknownCell is returned when Root or Unconnected names a cell outside the grid.
	ErrUnknownCell = errors.New("grid: unknown cell")
)

// Property keys set on generated nodes and edges.
const (
	PropRow    = "row"
	PropCol    = "col"
	PropLength = "length"
)

// Options controls the generated lattice.
type Options struct {
	Name        string            `toml:"name"`
	Rows        int               `toml:"rows"`
	Cols        int               `toml:"cols"`
	Spacing     float64           `toml:"spacing"`     // Distance between neighboring cells
	Diagonal    bool              `toml:"diagonal"`    // Link 8-neighbors instead of 4-neighbors
	Root        string            `toml:"root"`        // Root cell; defaults to the first connected cell
	Unconnected []string          `toml:"unconnected"` // Cells flagged unconnected
	Properties  map[string]string `toml:"properties"`  // Added to every node
}

// DefaultOptions returns a 3x3 grid named "grid" with unit spacing and
// 4-neighbor links.
func DefaultOptions() Options {
	return Options{
		Name:    "grid",
		Rows:    3,
		Cols:    3,
		Spacing: 1,
	}
}

// NodeName returns the name of the node at (row, col), e.g. "r0c2".
func NodeName(row, col int) string {
	return "r" + strconv.Itoa(row) + "c" + strconv.Itoa(col)
}

// Validate checks dimensions, spacing, and that every named cell exists.
func (o Options) Validate() error {
	if o.Rows < 1 || o.Cols < 1 {
		return fmt.Errorf("%w: got %dx%d, rows and cols must be at least 1", ErrInvalidDimensions, o.Rows, o.Cols)
	}
	if o.Rows > MaxCells/o.Cols {
		return fmt.Errorf("%w: got %dx%d, at most %d cells", ErrInvalidDimensions, o.Rows, o.Cols, MaxCells)
	}
	if !(o.Spacing > 0) || math.IsInf(o.Spacing, 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidSpacing, o.Spacing)
	}
	for _, name := range o.Unconnected {
		if !o.contains(name) {
			return fmt.Errorf("%w: unconnected cell %q", ErrUnknownCell, name)
		}
	}
	if o.Root != "" && !o.contains(o.Root) {
		return fmt.Errorf("%w: root cell %q", ErrUnknownCell, o.Root)
	}
	return nil
}

func (o Options) contains(name string) bool {
	var row, col int
	if _, err := fmt.Sscanf(name, "r%dc%d", &row, &col); err != nil {
		return false
	}
	return row >= 0 && row < o.Rows && col >= 0 && col < o.Cols && NodeName(row, col) == name
}

// forward neighbor offsets; each undirected edge is generated once.
var (
	offsets4 = [][2]int{{0, 1}, {1, 0}}
	offsets8 = [][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}
)

// Build creates and validates a grid graph. graphOpts are passed to
// [navgraph.New]. On failure no graph is returned; validation failures wrap
// a [*navgraph.ValidationError].
func Build(opts Options, graphOpts ...navgraph.Option) (*navgraph.Graph, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	g := navgraph.New(opts.Name, graphOpts...)
	unconnected := func(row, col int) bool {
		return slices.Contains(opts.Unconnected, NodeName(row, col))
	}

	root := opts.Root
	for row := range opts.Rows {
		for col := range opts.Cols {
			n := navgraph.NewNode(NodeName(row, col), float64(col)*opts.Spacing, float64(row)*opts.Spacing)
			for k, v := range opts.Properties {
				n.SetProperty(k, v)
			}
			n.SetProperty(PropRow, strconv.Itoa(row))
			n.SetProperty(PropCol, strconv.Itoa(col))
			n.Unconnected = unconnected(row, col)
			if root == "" && !n.Unconnected {
				root = n.Name
			}
			g.AddNode(n)
		}
	}

	offsets := offsets4
	if opts.Diagonal {
		offsets = offsets8
	}
	for row := range opts.Rows {
		for col := range opts.Cols {
			if unconnected(row, col) {
				continue
			}
			for _, off := range offsets {
				r, c := row+off[0], col+off[1]
				if r >= opts.Rows || c < 0 || c >= opts.Cols || unconnected(r, c) {
					continue
				}
				e := navgraph.NewEdge(NodeName(row, col), NodeName(r, c), false)
				length := opts.Spacing * math.Hypot(float64(off[0]), float64(off[1]))
				e.SetProperty(PropLength, strconv.FormatFloat(length, 'g', -1, 64))
				g.AddEdge(e)
			}
		}
	}

	if root != "" {
		g.SetRoot(root)
	}
	if err := g.CalcReachability(); err != nil {
		return nil, fmt.Errorf("grid %q: %w", opts.Name, err)
	}
	return g, nil
}
