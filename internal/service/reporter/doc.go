// Package reporter resolves a logical library name, loads the shared object,
// reads its version metadata and prints the selected fields on one line.
package reporter
