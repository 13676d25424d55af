// Package symtab implements the lexical scope tree nameres resolves
// identifiers and paths against (spec §4.3). A Scope maps identifier
// to Symbol and points back to its enclosing Scope; Scopes form a
// tree rooted at the scope built for the top-level program.
package symtab
