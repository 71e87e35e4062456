package macro

import (
	"errors"
	"slices"
	"testing"

	"litsort/internal/source"
	"litsort/internal/token"
)

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()
	if _, ok := r.Lookup("sort"); !ok {
		t.Fatal("sort must be registered")
	}
	if _, ok := r.Lookup("unknown"); ok {
		t.Fatal("unexpected expander")
	}
}

func TestRegistryDuplicateAndAlias(t *testing.T) {
	r := DefaultRegistry()
	err := r.Register("sort", ExpanderFunc(ExpandSort))
	if !errors.Is(err, ErrDuplicateMacro) {
		t.Fatalf("expected ErrDuplicateMacro, got %v", err)
	}
	if err := r.Alias("sorted", "sort"); err != nil {
		t.Fatalf("Alias: %v", err)
	}
	if err := r.Alias("sort", "sort"); err != nil {
		t.Fatalf("self alias must be a no-op: %v", err)
	}
	if err := r.Alias("x", "missing"); err == nil {
		t.Fatal("alias to unknown macro must fail")
	}
	if err := r.Register("", ExpanderFunc(ExpandSort)); err == nil {
		t.Fatal("empty name must fail")
	}
	if got := r.Names(); !slices.Equal(got, []string{"sort", "sorted"}) {
		t.Fatalf("Names = %v", got)
	}
}

func TestExpanderFuncAdapter(t *testing.T) {
	called := false
	var e Expander = ExpanderFunc(func(cx *Context, call source.Span, tokens []token.Token) Result {
		called = true
		return Result{OK: true}
	})
	if res := e.Expand(NewContext(nil), source.Span{}, nil); !res.OK || !called {
		t.Fatal("adapter must forward the call")
	}
}
