package main

import (
	"fmt"
	"io"
)

// ── ANSI colours ────────────────────────────────────────────────
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorBold   = "\033[1m"
)

// ── Pretty-print helpers ────────────────────────────────────────

func header(w io.Writer, msg string) {
	fmt.Fprintf(w, "\n%s%s▸ %s%s\n", colorBold, colorCyan, msg, colorReset)
}

func step(w io.Writer, emoji, msg string) {
	fmt.Fprintf(w, "  %s  %s\n", emoji, msg)
}

func success(w io.Writer, msg string) {
	fmt.Fprintf(w, "  %s✅ %s%s\n", colorGreen, msg, colorReset)
}

func warn(w io.Writer, msg string) {
	fmt.Fprintf(w, "  %s⚠️  %s%s\n", colorYellow, msg, colorReset)
}

func fail(w io.Writer, msg string) {
	fmt.Fprintf(w, "  %s❌ %s%s\n", colorRed, msg, colorReset)
}

// maskToken keeps the first 8 characters of a secret.
func maskToken(token string) string {
	const keep = 8
	if token == "" {
		return "NOT SET"
	}
	if len(token) <= keep {
		return "****"
	}
	return token[:keep] + "..."
}
