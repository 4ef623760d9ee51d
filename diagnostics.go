// diagnostics.go: located, human-readable failure snippets.
//
// What this file does
// -------------------
// This package's public Parse never returns an error — an address it
// cannot classify simply comes back with Kind == KindUnknown. But a
// caller debugging *why* an address went unknown (chiefly
// cmd/addrline -debug) benefits from seeing exactly which fragment
// failed to fit the grammar. renderFailure formats that as a
// caret-annotated snippet pointing at the offending byte range, in the
// same shape a compiler error would use:
//
//	UNPARSEABLE at byte 13: no grammar rule accepts "qwerty" as WORD here
//
//	   Belgrano 123 qwerty
//	                ^^^^^^
//
// Dependencies (other files)
// --------------------------
//   - token.go: Span{Start,End}, the byte range renderFailure underlines.
//   - addrparse.go: ParseWithTrace constructs the failureDetail values
//     this module renders. It sets no Span, so its traces carry the
//     reason and the address text without a caret line.
//
// Scope of the API
// ----------------
// Package-internal: renderFailure(src string, d failureDetail) string
// (unexported; callers outside the package reach it through
// Parser.ParseWithTrace).
// Private:          caret-snippet helpers.
package addrparse

import (
	"fmt"
	"strings"
)

// failureDetail locates why a particular pipeline run ended in
// KindUnknown: either no derivation covered the full token sequence, or
// two derivations tied under the ranking key.
type failureDetail struct {
	Reason string // human-readable, no trailing punctuation
	Span   Span   // byte range into the normalized address, may be zero
}

/* ===========================
   PUBLIC API
   =========================== */

// renderFailure builds a caret-annotated snippet of src (the normalized
// address that was tokenized) describing d. If d.Span is zero-valued,
// the snippet omits the caret line entirely.
func renderFailure(src string, d failureDetail) string {
	var b strings.Builder
	if d.Span.End > d.Span.Start {
		fmt.Fprintf(&b, "UNPARSEABLE at byte %d: %s\n\n", d.Span.Start, d.Reason)
		fmt.Fprintf(&b, "   %s\n", src)
		fmt.Fprintf(&b, "   %s%s\n", strings.Repeat(" ", d.Span.Start), strings.Repeat("^", max(1, d.Span.End-d.Span.Start)))
		return b.String()
	}
	fmt.Fprintf(&b, "UNPARSEABLE: %s\n\n   %s\n", d.Reason, src)
	return b.String()
}

//// END_OF_PUBLIC

/* ===========================
   PRIVATE: helpers
   =========================== */

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
