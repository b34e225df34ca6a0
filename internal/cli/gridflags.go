package cli

import (
	"fmt"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	apperrors "github.com/matzehuels/navgraph/pkg/errors"
	"github.com/matzehuels/navgraph/pkg/navgraph"
	"github.com/matzehuels/navgraph/pkg/navgraph/grid"
)

// gridFlags holds the grid flags shared by all map commands.
// Only flags set explicitly override the config file.
type gridFlags struct {
	name        string
	rows        int
	cols        int
	spacing     float64
	diagonal    bool
	root        string
	unconnected []string
	props       []string
}

// register adds the grid flags to cmd, showing the built-in defaults.
func (f *gridFlags) register(cmd *cobra.Command) {
	def := grid.DefaultOptions()
	fs := cmd.Flags()
	fs.StringVar(&f.name, "name", def.Name, "graph name")
	fs.IntVar(&f.rows, "rows", def.Rows, "number of grid rows")
	fs.IntVar(&f.cols, "cols", def.Cols, "number of grid columns")
	fs.Float64Var(&f.spacing, "spacing", def.Spacing, "distance between neighboring cells")
	fs.BoolVar(&f.diagonal, "diagonal", def.Diagonal, "link diagonal neighbors too")
	fs.StringVar(&f.root, "root", "", "root cell (default first connected cell)")
	fs.StringSliceVar(&f.unconnected, "unconnected", nil, "cells to flag unconnected, e.g. r0c3,r2c1")
	fs.StringArrayVar(&f.props, "set", nil, "property key=value added to every node (repeatable)")
}

// options merges explicitly set flags over base.
func (f *gridFlags) options(cmd *cobra.Command, base grid.Options) (grid.Options, error) {
	opts := base
	opts.Properties = maps.Clone(base.Properties)
	opts.Unconnected = slices.Clone(base.Unconnected)

	fs := cmd.Flags()
	if fs.Changed("name") {
		opts.Name = f.name
	}
	if fs.Changed("rows") {
		opts.Rows = f.rows
	}
	if fs.Changed("cols") {
		opts.Cols = f.cols
	}
	if fs.Changed("spacing") {
		opts.Spacing = f.spacing
	}
	if fs.Changed("diagonal") {
		opts.Diagonal = f.diagonal
	}
	if fs.Changed("root") {
		opts.Root = f.root
	}
	if fs.Changed("unconnected") {
		opts.Unconnected = f.unconnected
	}
	for _, p := range f.props {
		key, value, err := apperrors.ValidatePropertyAssignment(p)
		if err != nil {
			return opts, err
		}
		if opts.Properties == nil {
			opts.Properties = make(map[string]string)
		}
		opts.Properties[key] = value
	}

	if err := apperrors.ValidateName("graph", opts.Name); err != nil {
		return opts, err
	}
	return opts, nil
}

// buildGrid builds and validates the grid selected by config and flags.
// The graph logs through the command's logger.
func (c *CLI) buildGrid(cmd *cobra.Command, f *gridFlags) (*navgraph.Graph, error) {
	opts, err := f.options(cmd, c.config.Grid)
	if err != nil {
		return nil, err
	}

	logger := loggerFromContext(cmd.Context())
	prog := newProgress(logger)
	g, err := grid.Build(opts, navgraph.WithLogger(logger))
	if err != nil {
		return nil, wrapBuildError(err)
	}
	prog.done(fmt.Sprintf("Built grid %q with %d nodes and %d edges", g.Name(), g.NodeCount(), g.EdgeCount()))
	return g, nil
}

// wrapBuildError attaches an error code to option errors. Validation errors
// already carry one.
func wrapBuildError(err error) error {
	if apperrors.GetCode(err) != "" {
		return err
	}
	return apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "invalid grid options")
}

// requireNode fails with NODE_NOT_FOUND unless g has a node named name.
func requireNode(g *navgraph.Graph, name string) error {
	if err := apperrors.ValidateName("node", name); err != nil {
		return err
	}
	if !g.NodeExists(name) {
		return apperrors.New(apperrors.ErrCodeNodeNotFound, "node %q not found in graph %q", name, g.Name())
	}
	return nil
}
