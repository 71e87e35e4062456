package ui

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestProgressModelAppliesEvents(t *testing.T) {
	events := make(chan Event)
	m := NewProgressModel("expanding", []string{"a.go.in", "b.go.in"}, events).(*progressModel)

	m.Update(eventMsg{File: "a.go.in", Status: StatusWorking})
	m.Update(eventMsg{File: "b.go.in", Status: StatusFailed, Note: "0/1 expanded"})
	m.Update(eventMsg{File: "unknown.go.in", Status: StatusDone})

	if got := m.finished(); got != 1 {
		t.Fatalf("finished = %d, want 1", got)
	}
	view := m.View()
	for _, want := range []string{"expanding (1/2)", "expanding a.go.in", "error b.go.in  0/1 expanded"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view misses %q:\n%s", want, view)
		}
	}

	_, cmd := m.Update(doneMsg{})
	if cmd == nil || !m.done {
		t.Fatal("doneMsg must quit the program")
	}
	if !strings.Contains(m.View(), "done: expanding") {
		t.Fatalf("unexpected final view:\n%s", m.View())
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Fatalf("short value changed: %q", got)
	}
	if got := truncate("abc", 0); got != "abc" {
		t.Fatalf("zero width must not truncate: %q", got)
	}
	for _, in := range []string{"a-very-long-path/to/consts.go.in", "界界界界界界界界界界"} {
		got := truncate(in, 10)
		if runewidth.StringWidth(got) > 10 || !strings.HasSuffix(got, "...") {
			t.Fatalf("truncate(%q, 10) = %q", in, got)
		}
	}
}
