// Package macro implements compile-time expanders invoked as name!(...).
//
// The sort expander takes the raw token sequence between the invocation
// parentheses, checks that every comma-separated argument is a string
// literal, orders the arguments by their decoded value (byte-wise, stable)
// and builds one immutable array literal node holding the original argument
// nodes in that order.
//
// Expansion is synchronous and keeps no state between calls: everything lives
// in the Context passed in. Problems are reported through the Context's
// Reporter; a failed expansion returns Result{OK: false} and never a Go error.
//
// Argument errors come in two strengths:
//
//   - a non-string argument is reported and parsing goes on, so every such
//     argument in the list is reported;
//   - a missing separator or an argument that is not an expression at all is
//     reported once and stops parsing immediately.
package macro
