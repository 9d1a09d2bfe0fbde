// Package cli parses command-line arguments, validates user input and maps
// failures to process exit codes. It turns flags (plus an optional HCL file)
// into a config.Config for a solve, or a GenConfig for fixture generation.
package cli
