// Package typecheck implements the second analysis pass: given a
// program whose identifiers and paths nameres has already bound, it
// computes and validates every node's type, populating a type table
// keyed by AST node ID. Composite declarations, function signatures,
// and declared variable/parameter/field types are registered in a
// signature pass before any expression or statement is type-checked,
// so forward references between sibling declarations resolve the same
// way nameres's hoisting does.
package typecheck
