// Package nameres implements the first analysis pass: it walks a parsed
// program, builds the lexical scope tree, binds every identifier usage
// and path segment to the declaration it names, and applies `use`
// imports. Declarations a scope owns are visible to every sibling
// declaration in that scope regardless of textual order; statements
// inside a function body are resolved in strict lexical order instead.
package nameres
