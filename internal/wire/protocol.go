// Package wire lets a separate host process drive expansions over a stream
// of msgpack values: one Request in, one Response out, in order.
package wire

// Request asks for the expansion of one invocation.
type Request struct {
	ID uint64 `msgpack:"id"`
	// Macro is the invocation name; empty means "sort".
	Macro string `msgpack:"macro"`
	// Path names the host file, only for logs.
	Path string `msgpack:"path,omitempty"`
	// Args is the text between the invocation parentheses.
	Args      string `msgpack:"args"`
	Style     string `msgpack:"style,omitempty"`
	Multiline bool   `msgpack:"multiline,omitempty"`
	LintNFC   bool   `msgpack:"lint_nfc,omitempty"`
}

// Response carries either the expansion text or the diagnostics explaining
// why there is none. Error is set for requests that could not be attempted.
type Response struct {
	ID          uint64       `msgpack:"id"`
	OK          bool         `msgpack:"ok"`
	Expansion   string       `msgpack:"expansion,omitempty"`
	Diagnostics []Diagnostic `msgpack:"diagnostics,omitempty"`
	Error       string       `msgpack:"error,omitempty"`
}

// Diagnostic positions are relative to Request.Args: byte offsets and
// 1-based line/column.
type Diagnostic struct {
	Severity string `msgpack:"severity"`
	Code     string `msgpack:"code"`
	Message  string `msgpack:"message"`
	Start    uint32 `msgpack:"start"`
	End      uint32 `msgpack:"end"`
	Line     uint32 `msgpack:"line"`
	Col      uint32 `msgpack:"col"`
	Notes    []Note `msgpack:"notes,omitempty"`
}

type Note struct {
	Message string `msgpack:"message"`
	Start   uint32 `msgpack:"start"`
	End     uint32 `msgpack:"end"`
}
