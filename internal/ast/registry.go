package ast

// Registry is the process-wide owner of every AST node produced during one
// compilation, mirroring the registry described in spec §4.1 and
// `ast/registry.h` in the original sources. It exclusively owns nodes;
// every `New*` constructor in this package takes a *Registry and returns a
// node already recorded in it. All other references between nodes (child
// pointers, resolved-declaration IDs) are non-owning.
//
// Registry is not safe for concurrent use: per spec §5 a compilation is
// single-threaded, and registries are not shared across compilations.
type Registry struct {
	nodes []Node
}

// NewRegistry creates an empty registry for one compilation.
func NewRegistry() *Registry {
	return &Registry{}
}

// NextID returns the ID the next node registered will receive. Factory
// functions call this before constructing a node so the node's own base
// can be initialized with its final ID before the node is registered.
func (r *Registry) NextID() ID {
	return ID(len(r.nodes))
}

// Register records n at the ID it was constructed with. Factory functions
// are expected to call NextID, build the node with that ID, then Register
// it immediately; Register panics if a node arrives out of sequence, since
// that would leave a hole in the arena.
func (r *Registry) Register(n Node) {
	if int(n.ID()) != len(r.nodes) {
		panic("ast: node registered out of sequence")
	}
	r.nodes = append(r.nodes, n)
}

// Get resolves an ID back to its Node, or nil if the ID is out of range
// (including InvalidID).
func (r *Registry) Get(id ID) Node {
	if id < 0 || int(id) >= len(r.nodes) {
		return nil
	}
	return r.nodes[id]
}

// Len returns the number of nodes currently registered.
func (r *Registry) Len() int {
	return len(r.nodes)
}

// FreeAll releases every registered node at once. Safe to call only after
// every pass holding non-owning references to the tree has completed.
func (r *Registry) FreeAll() {
	r.nodes = nil
}

func alloc[T Node](r *Registry, build func(id ID) T) T {
	id := r.NextID()
	n := build(id)
	r.Register(n)
	return n
}
