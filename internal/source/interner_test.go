package source

import "testing"

func TestInternerBasic(t *testing.T) {
	in := NewInterner()
	if in.Len() != 1 {
		t.Fatalf("fresh interner must hold NoStringID, len=%d", in.Len())
	}
	a := in.Intern("alpha")
	b := in.Intern("beta")
	if a == b || a == NoStringID {
		t.Fatalf("unexpected ids a=%d b=%d", a, b)
	}
	if again := in.Intern("alpha"); again != a {
		t.Errorf("re-interning returned %d, want %d", again, a)
	}
	if s := in.MustLookup(b); s != "beta" {
		t.Errorf("MustLookup = %q", s)
	}
	if id := in.Intern(""); id != NoStringID {
		t.Errorf("empty string must map to NoStringID, got %d", id)
	}
	if _, ok := in.Lookup(StringID(99)); ok {
		t.Error("Lookup of unknown id must fail")
	}
}

func TestInternerMustLookupPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	NewInterner().MustLookup(StringID(5))
}
