package source

import "testing"

func TestSpanCover(t *testing.T) {
	a := Span{File: 1, Start: 4, End: 8}
	b := Span{File: 1, Start: 2, End: 6}
	if got := a.Cover(b); got != (Span{File: 1, Start: 2, End: 8}) {
		t.Errorf("Cover = %v", got)
	}
	other := Span{File: 2, Start: 0, End: 100}
	if got := a.Cover(other); got != a {
		t.Errorf("Cover across files must keep receiver, got %v", got)
	}
}

func TestSpanContains(t *testing.T) {
	outer := Span{File: 0, Start: 10, End: 20}
	tests := []struct {
		name  string
		inner Span
		want  bool
	}{
		{"inside", Span{Start: 12, End: 15}, true},
		{"same", outer, true},
		{"empty at end", Span{Start: 20, End: 20}, true},
		{"overlaps end", Span{Start: 15, End: 21}, false},
		{"other file", Span{File: 1, Start: 12, End: 13}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outer.Contains(tt.inner); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.inner, got, tt.want)
			}
		})
	}
}

func TestSpanShiftRightAndAt(t *testing.T) {
	sp := Span{File: 3, Start: 1, End: 4}.ShiftRight(10)
	if sp != (Span{File: 3, Start: 11, End: 14}) {
		t.Errorf("ShiftRight = %v", sp)
	}
	at := At(3, 7)
	if !at.Empty() || at.Len() != 0 || at.Start != 7 {
		t.Errorf("At = %v", at)
	}
}
