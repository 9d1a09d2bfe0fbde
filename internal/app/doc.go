// Package app wires the command-line surface to the library: it configures
// logging, loads the graph, runs the selected solvers, cross-checks them and
// renders the report. It also generates fixture graphs for `sssp gen`.
package app
