// Package diag implements the accumulating diagnostic bag (spec §4.9):
// a single append-only container of typed entries, handed to an
// external printer once the pipeline finishes.
package diag

import "github.com/baleg00/tau/internal/token"

// Entry is one diagnostic: a kind, a primary location, zero or more
// secondary locations (e.g. the conflicting declaration for
// symbol_collision), and a free-form payload for kind-specific detail
// (expected/actual type strings, an arity pair, ...).
type Entry struct {
	Kind      Kind
	Message   string
	Primary   token.Token
	Secondary []token.Token
	Payload   any
}

// Bag is the append-only, single-threaded diagnostic container one
// compilation accumulates into. The core is strictly synchronous (spec
// §5), so Bag takes no lock.
type Bag struct {
	entries []Entry
}

// NewBag returns an empty bag.
func NewBag() *Bag { return &Bag{} }

// Add appends e. Order of entries reflects insertion order, which the
// passes guarantee is AST traversal order (spec §4.9).
func (b *Bag) Add(e Entry) { b.entries = append(b.entries, e) }

// Emit is a convenience wrapper around Add for the common case of a
// message with no secondary locations or payload.
func (b *Bag) Emit(kind Kind, primary token.Token, message string) {
	b.Add(Entry{Kind: kind, Message: message, Primary: primary})
}

// Entries returns every entry in insertion order.
func (b *Bag) Entries() []Entry { return b.entries }

// Len returns the number of entries, errors and warnings combined.
func (b *Bag) Len() int { return len(b.entries) }

// HasErrors reports whether any non-warning entry is present. Per spec
// §7 user-visible behavior, this is what decides the compiler's exit
// status.
func (b *Bag) HasErrors() bool {
	for _, e := range b.entries {
		if !e.Kind.IsWarning() {
			return true
		}
	}
	return false
}

// Errors and Warnings partition Entries by IsWarning, for callers (the
// CLI summary line, snapshot tests) that report the two counts
// separately.
func (b *Bag) Errors() []Entry {
	return b.filter(func(e Entry) bool { return !e.Kind.IsWarning() })
}

func (b *Bag) Warnings() []Entry {
	return b.filter(func(e Entry) bool { return e.Kind.IsWarning() })
}

func (b *Bag) filter(keep func(Entry) bool) []Entry {
	var out []Entry
	for _, e := range b.entries {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}
