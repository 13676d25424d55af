// Package controlflow implements the third analysis pass: a
// structured-program walk over each function body that links every
// break/continue to its enclosing loop, flags statements no execution
// can reach, and verifies a non-unit-returning function exits on every
// path. It runs after typecheck, since "non-unit return type" requires
// the function signature typecheck already registered.
package controlflow
