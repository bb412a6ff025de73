// Package native opens shared objects at runtime and calls their exported
// zero-argument functions returning null-terminated strings.
//
// It is the only package that crosses the native boundary. Callers open a
// Library, call CallString for each accessor they need, and Close the
// library once every call has returned; resolved function pointers are not
// valid after Close.
//
// A library that does not export a requested symbol, or that returns bytes
// which are not valid UTF-8, breaks the contract with this tool. Such faults
// panic with a *ContractError instead of being returned as errors.
package native
