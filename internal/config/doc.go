// Package config defines the run configuration of the sssp command and its
// optional HCL file form. Values are resolved in three layers: built-in
// defaults, then the HCL file, then flags set explicitly on the command line.
package config
