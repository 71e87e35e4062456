package wire

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"litsort/internal/logging"
)

func roundTrip(t *testing.T, reqs ...Request) []Response {
	t.Helper()
	var in bytes.Buffer
	enc := msgpack.NewEncoder(&in)
	for i := range reqs {
		if err := enc.Encode(&reqs[i]); err != nil {
			t.Fatal(err)
		}
	}

	var out bytes.Buffer
	if err := Serve(context.Background(), &in, &out, ServeOptions{Logger: logging.NewNop()}); err != nil {
		t.Fatalf("Serve: %v", err)
	}

	dec := msgpack.NewDecoder(&out)
	var resps []Response
	for {
		var resp Response
		err := dec.Decode(&resp)
		if errors.Is(err, io.EOF) {
			return resps
		}
		if err != nil {
			t.Fatal(err)
		}
		resps = append(resps, resp)
	}
}

func TestServe(t *testing.T) {
	resps := roundTrip(t,
		Request{ID: 1, Args: `"z", "hello", "a", ""`},
		Request{ID: 2, Args: `"b", "a"`, Style: "go"},
		Request{ID: 3, Args: `"b", 5, "a"`},
		Request{ID: 4, Args: `"a" "b"`},
		Request{ID: 5, Macro: "shuffle", Args: `"a"`},
		Request{ID: 6, Args: `"a"), x(`},
		Request{ID: 7, Args: ``},
	)
	if len(resps) != 7 {
		t.Fatalf("expected 7 responses, got %d", len(resps))
	}

	ok := map[uint64]string{1: `["", "a", "hello", "z"]`, 2: `[2]string{"a", "b"}`, 7: `[]`}
	for id, want := range ok {
		r := resps[id-1]
		if r.ID != id || !r.OK || r.Expansion != want || len(r.Diagnostics) != 0 {
			t.Fatalf("request %d: %+v", id, r)
		}
	}

	malformed := resps[2]
	if malformed.OK || len(malformed.Diagnostics) != 1 {
		t.Fatalf("request 3: %+v", malformed)
	}
	d := malformed.Diagnostics[0]
	// позиции относительно Args
	if d.Code != "SYN2301" || d.Start != 5 || d.End != 6 || d.Line != 1 || d.Col != 6 {
		t.Fatalf("request 3 diagnostic: %+v", d)
	}

	sep := resps[3]
	if sep.OK || len(sep.Diagnostics) != 1 || sep.Diagnostics[0].Code != "SYN2302" || sep.Diagnostics[0].Start != 4 {
		t.Fatalf("request 4: %+v", sep)
	}
	if len(sep.Diagnostics[0].Notes) != 1 || sep.Diagnostics[0].Notes[0].Start != 0 {
		t.Fatalf("request 4 notes: %+v", sep.Diagnostics[0].Notes)
	}

	if r := resps[4]; r.OK || !strings.Contains(r.Error, "unknown macro") {
		t.Fatalf("request 5: %+v", r)
	}
	if r := resps[5]; r.OK || r.Error != "arguments are not balanced" {
		t.Fatalf("request 6: %+v", r)
	}
}

func TestServeRejectsGarbage(t *testing.T) {
	in := bytes.NewReader([]byte{0xc1}) // never-used msgpack code
	err := Serve(context.Background(), in, io.Discard, ServeOptions{})
	if err == nil || !strings.Contains(err.Error(), "decode request") {
		t.Fatalf("expected decode error, got %v", err)
	}
}

func TestServeCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Serve(ctx, bytes.NewReader(nil), io.Discard, ServeOptions{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestHandleUnbalancedArgs(t *testing.T) {
	tests := []struct {
		name string
		args string
	}{
		{"closer then call", `"a"), x(`},
		{"closer then failing invocation", `"a"), sort!(1`},
		{"unclosed group", `"a", (`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := Handle(&Request{ID: 1, Args: tt.args}, ServeOptions{})
			if resp.OK || resp.Error != "arguments are not balanced" {
				t.Fatalf("unexpected response: %+v", resp)
			}
			// диагностика относилась бы к тексту вне Args
			if len(resp.Diagnostics) != 0 {
				t.Fatalf("expected no diagnostics, got %+v", resp.Diagnostics)
			}
		})
	}
}
