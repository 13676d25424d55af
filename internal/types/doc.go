// Package types defines the interned universe of type descriptors the
// typecheck pass works over. A Builder hash-conses every descriptor it
// constructs so structurally equal types share one representative,
// letting later passes compare types with ==.
package types
