// Package ast defines the Abstract Syntax Tree node types for the Tau
// compiler core. Nodes are a heterogeneous tree of declaration, expression,
// statement, type-expression and path nodes, all owned by a process-wide
// Registry for the lifetime of one compilation; every other reference
// between nodes is non-owning.
package ast
