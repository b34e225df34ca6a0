package grid

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/matzehuels/navgraph/pkg/navgraph"
)

func TestNodeName(t *testing.T) {
	if got := NodeName(2, 11); got != "r2c11" {
		t.Errorf("NodeName(2, 11) = %q, want r2c11", got)
	}
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name      string
		opts      Options
		wantNodes int
		wantEdges int
		wantRoot  string
	}{
		{
			name:      "Default",
			opts:      DefaultOptions(),
			wantNodes: 9,
			wantEdges: 12,
			wantRoot:  "r0c0",
		},
		{
			name:      "SingleCell",
			opts:      Options{Name: "one", Rows: 1, Cols: 1, Spacing: 1},
			wantNodes: 1,
			wantEdges: 0,
			wantRoot:  "r0c0",
		},
		{
			name:      "Row",
			opts:      Options{Name: "row", Rows: 1, Cols: 4, Spacing: 2},
			wantNodes: 4,
			wantEdges: 3,
			wantRoot:  "r0c0",
		},
		{
			name:      "Diagonal",
			opts:      Options{Name: "diag", Rows: 2, Cols: 2, Spacing: 1, Diagonal: true},
			wantNodes: 4,
			wantEdges: 6,
			wantRoot:  "r0c0",
		},
		{
			name:      "UnconnectedCorner",
			opts:      Options{Name: "u", Rows: 2, Cols: 2, Spacing: 1, Unconnected: []string{"r0c0"}},
			wantNodes: 4,
			wantEdges: 2,
			wantRoot:  "r0c1",
		},
		{
			name:      "ExplicitRoot",
			opts:      Options{Name: "r", Rows: 2, Cols: 2, Spacing: 1, Root: "r1c1"},
			wantNodes: 4,
			wantEdges: 4,
			wantRoot:  "r1c1",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := Build(tt.opts)
			if err != nil {
				t.Fatalf("Build() = %v", err)
			}
			if g.NodeCount() != tt.wantNodes {
				t.Errorf("NodeCount() = %d, want %d", g.NodeCount(), tt.wantNodes)
			}
			if g.EdgeCount() != tt.wantEdges {
				t.Errorf("EdgeCount() = %d, want %d", g.EdgeCount(), tt.wantEdges)
			}
			root, ok := g.RootNode()
			if !ok || root.Name != tt.wantRoot {
				t.Errorf("RootNode() = (%q, %v), want (%q, true)", root.Name, ok, tt.wantRoot)
			}
		})
	}
}

func TestBuildPlacesNodes(t *testing.T) {
	opts := Options{
		Name:       "placed",
		Rows:       2,
		Cols:       3,
		Spacing:    1.5,
		Properties: map[string]string{"zone": "A"},
	}
	g, err := Build(opts)
	if err != nil {
		t.Fatalf("Build() = %v", err)
	}

	n, ok := g.Node("r1c2")
	if !ok {
		t.Fatal("Node(r1c2) not found")
	}
	if n.X != 3 || n.Y != 1.5 {
		t.Errorf("position = (%v, %v), want (3, 1.5)", n.X, n.Y)
	}
	if n.Property(PropRow) != "1" || n.Property(PropCol) != "2" {
		t.Errorf("row/col = %q/%q, want 1/2", n.Property(PropRow), n.Property(PropCol))
	}
	if n.Property("zone") != "A" {
		t.Errorf("zone = %q, want A", n.Property("zone"))
	}
	if got := n.ReachableNodes(); !slices.Equal(got, []string{"r0c2", "r1c1"}) {
		t.Errorf("reachable(r1c2) = %v, want [r0c2 r1c1]", got)
	}
	if g.Name() != "placed" {
		t.Errorf("Name() = %q, want placed", g.Name())
	}
}

func TestBuildEdgeLengths(t *testing.T) {
	g, err := Build(Options{Name: "len", Rows: 2, Cols: 2, Spacing: 2, Diagonal: true})
	if err != nil {
		t.Fatalf("Build() = %v", err)
	}

	for _, e := range g.Edges() {
		if e.Directed {
			t.Errorf("edge %s is directed", e)
		}
		want := 2.0
		if e.Connects("r0c0", "r1c1") || e.Connects("r0c1", "r1c0") {
			want = 2 * math.Sqrt2
		}
		if got := e.Properties.Float(PropLength); math.Abs(got-want) > 1e-9 {
			t.Errorf("length(%s) = %v, want %v", e, got, want)
		}
	}
}

func TestBuildUnconnectedCells(t *testing.T) {
	g, err := Build(Options{Name: "u", Rows: 1, Cols: 3, Spacing: 1, Unconnected: []string{"r0c2"}})
	if err != nil {
		t.Fatalf("Build() = %v", err)
	}

	n, _ := g.Node("r0c2")
	if !n.Unconnected {
		t.Error("r0c2 should be flagged unconnected")
	}
	if len(n.ReachableNodes()) != 0 {
		t.Errorf("reachable(r0c2) = %v, want empty", n.ReachableNodes())
	}
	if closest, _ := g.ClosestNode(2, 0, ""); closest.Name != "r0c1" {
		t.Errorf("ClosestNode(2, 0) = %q, want r0c1", closest.Name)
	}
}

func TestBuildAtMaxCells(t *testing.T) {
	g, err := Build(Options{Name: "max", Rows: 64, Cols: MaxCells / 64, Spacing: 1})
	if err != nil {
		t.Fatalf("Build() = %v", err)
	}
	if g.NodeCount() != MaxCells {
		t.Errorf("NodeCount() = %d, want %d", g.NodeCount(), MaxCells)
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr error
	}{
		{name: "ZeroRows", opts: Options{Rows: 0, Cols: 2, Spacing: 1}, wantErr: ErrInvalidDimensions},
		{name: "NegativeCols", opts: Options{Rows: 2, Cols: -1, Spacing: 1}, wantErr: ErrInvalidDimensions},
		{name: "TooManyCells", opts: Options{Rows: 300, Cols: 300, Spacing: 1}, wantErr: ErrInvalidDimensions},
		{name: "HugeDimensions", opts: Options{Rows: math.MaxInt, Cols: 2, Spacing: 1}, wantErr: ErrInvalidDimensions},
		{name: "ZeroSpacing", opts: Options{Rows: 2, Cols: 2}, wantErr: ErrInvalidSpacing},
		{name: "NaNSpacing", opts: Options{Rows: 2, Cols: 2, Spacing: math.NaN()}, wantErr: ErrInvalidSpacing},
		{name: "InfSpacing", opts: Options{Rows: 2, Cols: 2, Spacing: math.Inf(1)}, wantErr: ErrInvalidSpacing},
		{name: "UnknownRoot", opts: Options{Rows: 2, Cols: 2, Spacing: 1, Root: "r5c0"}, wantErr: ErrUnknownCell},
		{name: "MalformedCell", opts: Options{Rows: 2, Cols: 2, Spacing: 1, Unconnected: []string{"r01c1"}}, wantErr: ErrUnknownCell},
		{
			name:    "SplitByUnconnectedColumn",
			opts:    Options{Rows: 2, Cols: 3, Spacing: 1, Unconnected: []string{"r0c1", "r1c1"}},
			wantErr: navgraph.ErrGraphDisconnected,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := Build(tt.opts)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Build() error = %v, want %v", err, tt.wantErr)
			}
			if g != nil {
				t.Error("Build() should not return a graph on error")
			}
		})
	}
}

func TestBuildPassesGraphOptions(t *testing.T) {
	g, err := Build(DefaultOptions(), navgraph.WithLogger(nil))
	if err != nil {
		t.Fatalf("Build() = %v", err)
	}
	if g.ListenerCount() != 0 {
		t.Errorf("ListenerCount() = %d, want 0", g.ListenerCount())
	}
}
