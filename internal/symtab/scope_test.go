package symtab

import "testing"

func TestInsertReturnsCollidingSymbolOnClash(t *testing.T) {
	root := NewRoot(KindModule)
	first := &Symbol{Name: "x", Decl: 1}
	if got := root.Insert(first); got != nil {
		t.Fatalf("expected first insert to succeed, got collision with %v", got)
	}
	second := &Symbol{Name: "x", Decl: 2}
	if got := root.Insert(second); got != first {
		t.Fatalf("expected collision to return the first symbol, got %v", got)
	}
}

func TestGetIsLocalOnly(t *testing.T) {
	root := NewRoot(KindModule)
	root.Insert(&Symbol{Name: "x", Decl: 1})
	child := root.NewChild(KindBlock)

	if _, ok := child.Get("x"); ok {
		t.Fatalf("expected Get to stay local and miss a parent-scope symbol")
	}
}

func TestLookupWalksParentChain(t *testing.T) {
	root := NewRoot(KindModule)
	root.Insert(&Symbol{Name: "x", Decl: 1})
	child := root.NewChild(KindBlock)
	grandchild := child.NewChild(KindBlock)

	sym, ok := grandchild.Lookup("x")
	if !ok || sym.Decl != 1 {
		t.Fatalf("expected Lookup to find x via the parent chain, got %v, %v", sym, ok)
	}
	if _, ok := grandchild.Lookup("missing"); ok {
		t.Fatalf("expected Lookup to fail past the root")
	}
}

func TestSymbolsPreservesInsertionOrder(t *testing.T) {
	root := NewRoot(KindModule)
	root.Insert(&Symbol{Name: "b", Decl: 1})
	root.Insert(&Symbol{Name: "a", Decl: 2})
	root.Insert(&Symbol{Name: "c", Decl: 3})

	syms := root.Symbols()
	want := []string{"b", "a", "c"}
	for i, w := range want {
		if syms[i].Name != w {
			t.Fatalf("Symbols()[%d] = %q, want %q", i, syms[i].Name, w)
		}
	}
}
