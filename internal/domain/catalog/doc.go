// Package catalog maps the logical library identifiers accepted on the
// command line to the shared object that has to be opened and the exported
// symbols that report its version metadata.
//
// Two symbol conventions exist: the NPU tools libraries (HAL and runtime)
// export version, git_short_hash and build_timestamp, while the compiler
// library uses its own fc_ prefixed names.
package catalog
