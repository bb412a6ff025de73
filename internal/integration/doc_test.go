// Package integration exercises the real dynamic loader against stub shared
// libraries compiled with the system C compiler during the test run.
package integration
