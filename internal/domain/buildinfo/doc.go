// Package buildinfo contains the version record read from a native library
// and the rules for rendering a selection of its fields on one line.
package buildinfo
