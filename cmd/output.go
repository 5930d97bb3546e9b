package cmd

import (
	"fmt"
	"io"
)

// ── Unified output helpers ────────────────────────────────────────────────────
// Diagnostics share one icon set and indentation. They are always written to
// the given writer (stderr in practice) so stdout carries only the report.
//
// Icon semantics:
//   ✓  success
//   ⚠  warning
//   ○  skipped / not applicable
//   ~  neutral info

// printOK prints a success line: "  ✓  msg".
func printOK(w io.Writer, msg string) {
	fmt.Fprintf(w, "  ✓  %s\n", msg)
}

// printWarn prints a warning line.
func printWarn(w io.Writer, msg string) {
	fmt.Fprintf(w, "  ⚠  %s\n", msg)
}

// printSkip prints a skipped / not-applicable line.
func printSkip(w io.Writer, msg string) {
	fmt.Fprintf(w, "  ○  %s\n", msg)
}

// printInfo prints a neutral informational line.
func printInfo(w io.Writer, msg string) {
	fmt.Fprintf(w, "  ~  %s\n", msg)
}
