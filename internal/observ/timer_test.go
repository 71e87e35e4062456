package observ

import (
	"strings"
	"sync"
	"testing"
	"time"
)

func TestReportWallTime(t *testing.T) {
	tm := NewTimer()
	base := time.Unix(100, 0)
	tm.Add("discover", base, 2*time.Millisecond, "")
	// две параллельные фазы не удваивают total
	tm.Add("expand a.go.in", base.Add(2*time.Millisecond), 5*time.Millisecond, "2 invocations")
	tm.Add("expand b.go.in", base.Add(2*time.Millisecond), 3*time.Millisecond, "")

	rep := tm.Report()
	if len(rep.Phases) != 3 {
		t.Fatalf("phases = %d", len(rep.Phases))
	}
	if rep.TotalMS != 7 {
		t.Fatalf("total = %v, want 7", rep.TotalMS)
	}

	sum := tm.Summary()
	for _, want := range []string{"timings:\n", "expand a.go.in", "// 2 invocations", "total", "7.00 ms"} {
		if !strings.Contains(sum, want) {
			t.Fatalf("summary misses %q:\n%s", want, sum)
		}
	}
}

func TestBeginEndConcurrent(t *testing.T) {
	tm := NewTimer()
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			idx := tm.Begin("work")
			tm.End(idx, "done")
		}()
	}
	wg.Wait()
	tm.End(99, "ignored")
	for _, p := range tm.Report().Phases {
		if p.Note != "done" {
			t.Fatalf("phase not finished: %+v", p)
		}
	}
}

func TestEmptyReport(t *testing.T) {
	if rep := NewTimer().Report(); rep.TotalMS != 0 || rep.Phases != nil {
		t.Fatalf("unexpected report: %+v", rep)
	}
}
