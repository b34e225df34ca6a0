// Package pkg provides the libraries behind navgraph, a topological map
// model for robot navigation.
//
// # Overview
//
// A topological map is a graph of named waypoints in the 2D world frame.
// Behavior and planning components query it to find the waypoint closest to
// the robot, to check which waypoints are directly reachable, and to look up
// waypoints by annotation. The pkg directory is organized as follows:
//
//  1. navgraph - Graph model, validation, spatial queries, change listeners
//  2. navgraph/grid - Generator for lattice-shaped maps
//  3. errors - Coded errors shared by the CLI and the libraries
//  4. observability - Hooks for metrics and tracing backends
//  5. buildinfo - Version information injected at link time
//
// # Data Flow
//
//	Loader (external, or grid.Build)
//	         ↓
//	    AddNode / AddEdge / SetRoot
//	         ↓
//	    CalcReachability (validate + derive adjacency)
//	         ↓
//	    ClosestNode / ReachableNodes / SearchNodes
//
// # Quick Start
//
//	g, err := grid.Build(grid.Options{Name: "aisle", Rows: 2, Cols: 5, Spacing: 1.5})
//	if err != nil {
//	    return err
//	}
//	n, ok := g.ClosestNode(3.1, 0.2, "")
package pkg
