package types

import (
	"testing"

	"github.com/baleg00/tau/internal/ast"
)

func TestHashConsingReturnsSameRepresentative(t *testing.T) {
	b := NewBuilder()
	p1, err := b.BuildPtr(b.Prim(ast.PrimI32))
	if err != nil {
		t.Fatal(err)
	}
	p2, err := b.BuildPtr(b.Prim(ast.PrimI32))
	if err != nil {
		t.Fatal(err)
	}
	if p1 != p2 {
		t.Fatalf("expected BuildPtr to return the same representative for equal args")
	}
}

func TestModifierInvariantsRejected(t *testing.T) {
	b := NewBuilder()
	m, err := b.BuildMut(b.Prim(ast.PrimI32))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := b.BuildMut(m); err == nil {
		t.Fatalf("expected mut-wrapping-mut to be rejected")
	}
	r, err := b.BuildRef(b.Prim(ast.PrimI32))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := b.BuildPtr(r); err == nil {
		t.Fatalf("expected ptr-wrapping-ref to be rejected")
	}
	if _, err := b.BuildRef(r); err == nil {
		t.Fatalf("expected ref-wrapping-ref to be rejected")
	}
}

func TestImplicitWideningSucceeds(t *testing.T) {
	b := NewBuilder()
	i64 := b.Prim(ast.PrimI64)
	i32 := b.Prim(ast.PrimI32)
	if !ImplicitDirect(i32, i64) {
		t.Fatalf("expected i32 to widen to i64")
	}
	if ImplicitDirect(i64, i32) {
		t.Fatalf("did not expect i64 to narrow to i32")
	}
}

func TestMixedSignednessWarning(t *testing.T) {
	b := NewBuilder()
	i32 := b.Prim(ast.PrimI32)
	u32 := b.Prim(ast.PrimU32)
	result, mixed, ok := b.BuildPromotedArithmetic(i32, u32)
	if !ok {
		t.Fatalf("expected arithmetic promotion to succeed")
	}
	if !mixed {
		t.Fatalf("expected mixed-signedness warning for i32 + u32")
	}
	if result != u32 {
		t.Fatalf("expected promotion to the unsigned side when widths are equal, got %s", result)
	}
}

func TestRefMutConvertibility(t *testing.T) {
	b := NewBuilder()
	i32 := b.Prim(ast.PrimI32)
	mutI32, _ := b.BuildMut(i32)
	refMutI32, _ := b.BuildRef(mutI32)
	refI32, _ := b.BuildRef(i32)

	if !ImplicitIndirect(refMutI32, refI32) {
		t.Fatalf("expected ref mut T indirectly convertible to ref T")
	}
	if ImplicitIndirect(refI32, refMutI32) {
		t.Fatalf("did not expect ref T indirectly convertible to ref mut T")
	}
}

func TestNullConvertsToOptButNotBarePtr(t *testing.T) {
	b := NewBuilder()
	null := b.Null()
	opt, _ := b.BuildOpt(b.Prim(ast.PrimI32))
	ptr, _ := b.BuildPtr(b.Prim(ast.PrimI32))

	if !ImplicitDirect(null, opt) {
		t.Fatalf("expected null to convert to opt")
	}
	if ImplicitDirect(null, ptr) {
		t.Fatalf("did not expect null to convert directly into a non-optional ptr")
	}
	optPtr, _ := b.BuildOpt(ptr)
	if !ImplicitDirect(null, optPtr) {
		t.Fatalf("expected null to convert to opt ptr T")
	}
}

func TestPoisonConvertsToAndFromEverything(t *testing.T) {
	b := NewBuilder()
	poison := b.Poison()
	i32 := b.Prim(ast.PrimI32)

	if !ImplicitDirect(poison, i32) || !ImplicitDirect(i32, poison) {
		t.Fatalf("expected poison to be implicitly convertible to and from everything")
	}
	if !Explicit(poison, i32) {
		t.Fatalf("expected poison to be explicitly convertible to anything")
	}
}

func TestStructIsNominalNotStructural(t *testing.T) {
	b := NewBuilder()
	s1 := b.BuildStruct(ast.ID(0), "Point", []Type{b.Prim(ast.PrimI32), b.Prim(ast.PrimI32)})
	s2 := b.BuildStruct(ast.ID(1), "Point", []Type{b.Prim(ast.PrimI32), b.Prim(ast.PrimI32)})

	if s1 == s2 {
		t.Fatalf("expected distinct declaring nodes to produce distinct nominal types")
	}
	if b.BuildStruct(ast.ID(0), "Point", nil) != s1 {
		t.Fatalf("expected the same declaring node to return the same representative")
	}
}
