package ast

import (
	"testing"

	"litsort/internal/source"
)

func span(start, end uint32) source.Span {
	return source.Span{Start: start, End: end}
}

func TestArenaIsOneBased(t *testing.T) {
	a := NewArena[int](0)
	if a.Get(0) != nil || a.Get(1) != nil {
		t.Fatal("empty arena must return nil")
	}
	id := a.Allocate(42)
	if id != 1 || *a.Get(id) != 42 || a.Len() != 1 {
		t.Fatalf("Allocate returned %d", id)
	}
}

func TestStringLiteralQuery(t *testing.T) {
	b := NewBuilder(Hints{}, nil)
	str := b.Exprs.NewLiteral(span(0, 3), ExprLitString, b.Strings.Intern("a"))
	num := b.Exprs.NewLiteral(span(4, 5), ExprLitInt, b.Strings.Intern("5"))
	ident := b.Exprs.NewIdent(span(6, 7), b.Strings.Intern("x"))
	bad := b.Exprs.NewBad(span(8, 10))

	if v, ok := b.StringLiteral(str); !ok || v != "a" {
		t.Fatalf("StringLiteral(str) = %q, %v", v, ok)
	}
	for _, id := range []ExprID{num, ident, bad, NoExprID, ExprID(99)} {
		if _, ok := b.StringLiteral(id); ok {
			t.Fatalf("StringLiteral(%d) must be false", id)
		}
	}
	if k, ok := b.Kind(bad); !ok || k != ExprBad {
		t.Fatalf("Kind(bad) = %v, %v", k, ok)
	}
	if b.Span(num) != span(4, 5) {
		t.Fatalf("Span(num) = %v", b.Span(num))
	}
}

func TestArrayCopiesElements(t *testing.T) {
	e := NewExprs(0)
	a := e.NewLiteral(span(0, 1), ExprLitString, 1)
	c := e.NewLiteral(span(2, 3), ExprLitString, 2)
	elems := []ExprID{c, a}
	arr := e.NewArray(span(0, 3), elems, nil, false, true)
	elems[0] = NoExprID

	data, ok := e.Array(arr)
	if !ok || !data.Immutable {
		t.Fatal("expected immutable array")
	}
	if data.Elements[0] != c || data.Elements[1] != a {
		t.Fatalf("array must own a copy of its elements, got %v", data.Elements)
	}
	if _, ok := e.Tuple(arr); ok {
		t.Fatal("array is not a tuple")
	}
}

func TestCompoundAccessors(t *testing.T) {
	e := NewExprs(0)
	x := e.NewIdent(span(0, 1), 1)
	one := e.NewLiteral(span(4, 5), ExprLitInt, 2)
	bin := e.NewBinary(span(0, 5), ExprBinaryAdd, x, one)
	un := e.NewUnary(span(0, 2), ExprUnaryMinus, x)
	call := e.NewCall(span(0, 6), x, []ExprID{one}, nil, false)
	grp := e.NewGroup(span(0, 7), bin)
	idx := e.NewIndex(span(0, 4), x, one)
	mem := e.NewMember(span(0, 3), x, 3)

	if d, ok := e.Binary(bin); !ok || d.Op != ExprBinaryAdd || d.Left != x || d.Right != one {
		t.Fatal("binary accessor")
	}
	if d, ok := e.Unary(un); !ok || d.Op != ExprUnaryMinus {
		t.Fatal("unary accessor")
	}
	if d, ok := e.Call(call); !ok || len(d.Args) != 1 {
		t.Fatal("call accessor")
	}
	if d, ok := e.Group(grp); !ok || d.Inner != bin {
		t.Fatal("group accessor")
	}
	if d, ok := e.Index(idx); !ok || d.Index != one {
		t.Fatal("index accessor")
	}
	if d, ok := e.Member(mem); !ok || d.Field != 3 {
		t.Fatal("member accessor")
	}
	if ExprBinaryShiftLeft.String() != "<<" || ExprUnaryNot.String() != "!" || ExprArray.String() != "Array" {
		t.Fatal("operator strings")
	}
}
