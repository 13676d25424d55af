package types

// Mut marks a base type as mutable through the binding that holds it.
// It may not wrap another Mut, a Ref or an Opt (spec §3 Type
// descriptors).
type Mut struct{ Base Type }

func (m *Mut) Kind() TypeKind { return KindMut }
func (m *Mut) String() string { return "mut " + m.Base.String() }

func (m *Mut) implicitDirect(dst Type) bool {
	if IsRef(dst) {
		return false
	}
	return m.Base.implicitDirect(RemoveMut(dst))
}

func (m *Mut) implicitIndirect(dst Type) bool {
	if IsRef(dst) {
		return false
	}
	return m.Base.implicitIndirect(RemoveMut(dst))
}

func (m *Mut) explicit(dst Type) bool {
	if IsRef(dst) {
		return false
	}
	return m.Base.explicit(RemoveMut(dst))
}

// Ptr is an owning pointer to a base type. It may wrap anything except
// a Ref.
type Ptr struct{ Base Type }

func (p *Ptr) Kind() TypeKind { return KindPtr }
func (p *Ptr) String() string { return "ptr " + p.Base.String() }

func (p *Ptr) implicitDirect(dst Type) bool {
	if o, ok := dst.(*Opt); ok {
		return p.implicitDirect(o.Base)
	}
	dst = RemoveMut(dst)
	dp, ok := dst.(*Ptr)
	return ok && dp.Base == p.Base
}

func (p *Ptr) implicitIndirect(dst Type) bool {
	dp, ok := dst.(*Ptr)
	return ok && dp.Base == p.Base
}

func (p *Ptr) explicit(dst Type) bool {
	if o, ok := dst.(*Opt); ok {
		return p.explicit(o.Base)
	}
	dst = RemoveMut(dst)
	switch d := dst.(type) {
	case *Ptr:
		return true
	case *Ref:
		return d.Base == p.Base || RemoveMut(d.Base) == p.Base
	}
	return false
}

// Ref is a borrowed reference to a base type. It may wrap a Mut but
// not another Ref.
type Ref struct{ Base Type }

func (r *Ref) Kind() TypeKind { return KindRef }
func (r *Ref) String() string { return "ref " + r.Base.String() }

func (r *Ref) implicitDirect(dst Type) bool {
	if !IsRef(dst) {
		return r.Base.implicitDirect(dst)
	}
	dr := dst.(*Ref)
	if !IsMut(r.Base) && IsMut(dr.Base) {
		return false
	}
	return RemoveMut(r.Base).implicitIndirect(RemoveMut(dr.Base))
}

func (r *Ref) implicitIndirect(dst Type) bool {
	if !IsRef(dst) {
		return false
	}
	dr := dst.(*Ref)
	if !IsMut(r.Base) && IsMut(dr.Base) {
		return false
	}
	return RemoveMut(r.Base).implicitIndirect(RemoveMut(dr.Base))
}

func (r *Ref) explicit(dst Type) bool {
	if IsOpt(dst) {
		return r.Base.explicit(dst)
	}
	if !IsRef(dst) {
		return r.Base.explicit(dst)
	}
	return r.Base.explicit(RemoveRef(dst))
}

// Opt marks a base type as possibly absent. It may wrap a Mut but not
// another Opt.
type Opt struct{ Base Type }

func (o *Opt) Kind() TypeKind { return KindOpt }
func (o *Opt) String() string { return "opt " + o.Base.String() }

func (o *Opt) implicitDirect(dst Type) bool {
	if !IsOpt(dst) {
		return false
	}
	return o.Base.implicitDirect(RemoveOpt(dst))
}

func (o *Opt) implicitIndirect(dst Type) bool {
	if !IsOpt(dst) {
		return false
	}
	return o.Base.implicitIndirect(RemoveOpt(dst))
}

func (o *Opt) explicit(dst Type) bool {
	if !IsOpt(dst) {
		return o.Base.explicit(dst)
	}
	return o.Base.explicit(RemoveOpt(dst))
}
