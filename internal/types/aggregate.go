package types

import "fmt"

// Array is a fixed-length homogeneous sequence, `array(base, length)`.
type Array struct {
	Base   Type
	Length int64
}

func (a *Array) Kind() TypeKind { return KindArray }
func (a *Array) String() string { return fmt.Sprintf("array(%s, %d)", a.Base.String(), a.Length) }

func (a *Array) implicitDirect(dst Type) bool {
	if o, ok := dst.(*Opt); ok {
		return a.implicitDirect(o.Base)
	}
	return dst == Type(a)
}

func (a *Array) implicitIndirect(dst Type) bool { return dst == Type(a) }
func (a *Array) explicit(dst Type) bool         { return dst == Type(a) }

// Vec is a fixed-size numeric vector, `vec(base, size)`.
type Vec struct {
	Base Type
	Size int64
}

func (v *Vec) Kind() TypeKind { return KindVec }
func (v *Vec) String() string { return fmt.Sprintf("vec(%s, %d)", v.Base.String(), v.Size) }

func (v *Vec) implicitDirect(dst Type) bool {
	if o, ok := dst.(*Opt); ok {
		return v.implicitDirect(o.Base)
	}
	return dst == Type(v)
}

func (v *Vec) implicitIndirect(dst Type) bool { return dst == Type(v) }
func (v *Vec) explicit(dst Type) bool         { return dst == Type(v) }

// Mat is a fixed-size numeric matrix, `mat(base, rows, cols)`.
type Mat struct {
	Base       Type
	Rows, Cols int64
}

func (m *Mat) Kind() TypeKind { return KindMat }
func (m *Mat) String() string {
	return fmt.Sprintf("mat(%s, %d, %d)", m.Base.String(), m.Rows, m.Cols)
}

func (m *Mat) implicitDirect(dst Type) bool {
	if o, ok := dst.(*Opt); ok {
		return m.implicitDirect(o.Base)
	}
	return dst == Type(m)
}

func (m *Mat) implicitIndirect(dst Type) bool { return dst == Type(m) }
func (m *Mat) explicit(dst Type) bool         { return dst == Type(m) }

// Fun is a function signature, `fun(params, return)`.
type Fun struct {
	Params []Type
	Return Type
}

func (f *Fun) Kind() TypeKind { return KindFun }
func (f *Fun) String() string {
	s := "fun("
	for i, p := range f.Params {
		if i > 0 {
			s += ", "
		}
		s += p.String()
	}
	return s + ") -> " + f.Return.String()
}

func (f *Fun) implicitDirect(dst Type) bool   { return dst == Type(f) }
func (f *Fun) implicitIndirect(dst Type) bool { return dst == Type(f) }
func (f *Fun) explicit(dst Type) bool         { return dst == Type(f) }
