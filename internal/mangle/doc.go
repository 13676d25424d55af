// Package mangle implements the fourth and final analysis pass: a
// post-analysis sweep that computes the linkage name codegen will
// emit for every function, struct, union, and enum, folding in
// enclosing module path and — for functions — parameter types so two
// same-named declarations in different modules or with different
// signatures never collide in the object file's symbol namespace.
//
// Like typetable, the result is a side table keyed by ast.ID rather
// than a field on the node itself: linkage names are codegen's
// concern, not a property every AST consumer needs, and the AST's own
// codegen annotation slot (ast.Node.CodegenValue) is reserved for
// codegen's own backend value, not for another analysis pass to
// preempt.
package mangle
