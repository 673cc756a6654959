package main

import (
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"

	"tripline/layout"
)

func readClipboardText() (string, error) {
	if runtime.GOOS == "darwin" {
		if output, err := exec.Command("pbpaste", "-Prefer", "txt").Output(); err == nil {
			return string(output), nil
		}
	}
	return clipboard.ReadAll()
}

func writeClipboardText(text string) error {
	return clipboard.WriteAll(text)
}

func cleanClipboardText(text string) string {
	if text == "" {
		return text
	}
	var result strings.Builder
	result.Grow(len(text))
	for _, r := range text {
		if r == '\n' || r == '\r' || r == '\t' || r >= 32 {
			result.WriteRune(r)
		}
	}
	normalized := result.String()
	normalized = strings.ReplaceAll(normalized, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")
	return normalized
}

// legSeparators are tried in order when splitting "START > END" style text.
var legSeparators = []string{"->", ">", "→", ":", ",", "\t"}

// parseLeg splits one line into a leg. Both endpoints must be non-empty.
func parseLeg(line string) (layout.Leg, bool) {
	for _, sep := range legSeparators {
		start, end, ok := strings.Cut(line, sep)
		if !ok {
			continue
		}
		start, end = strings.TrimSpace(start), strings.TrimSpace(end)
		if start == "" || end == "" {
			return layout.Leg{}, false
		}
		return layout.Leg{Start: start, End: end}, true
	}
	return layout.Leg{}, false
}

// parseLegs reads one leg per line, skipping blanks and lines that do not parse.
func parseLegs(text string) []layout.Leg {
	var legs []layout.Leg
	for _, line := range strings.Split(cleanClipboardText(text), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if leg, ok := parseLeg(line); ok {
			legs = append(legs, leg)
		}
	}
	return legs
}

// insertAt inserts s at rune position pos and returns the new text and cursor.
func insertAt(text string, pos int, s string) (string, int) {
	runes := []rune(text)
	if pos > len(runes) {
		pos = len(runes)
	}
	ins := []rune(s)
	out := make([]rune, 0, len(runes)+len(ins))
	out = append(out, runes[:pos]...)
	out = append(out, ins...)
	out = append(out, runes[pos:]...)
	return string(out), pos + len(ins)
}

// deleteBefore removes the rune before pos.
func deleteBefore(text string, pos int) (string, int) {
	runes := []rune(text)
	if pos <= 0 || len(runes) == 0 {
		return text, 0
	}
	if pos > len(runes) {
		pos = len(runes)
	}
	return string(append(runes[:pos-1], runes[pos:]...)), pos - 1
}

// withCursor replaces the character at the cursor with a block, as the status line shows it.
func withCursor(text string, pos int) string {
	runes := []rune(text)
	if pos >= len(runes) {
		return text + "█"
	}
	runes[pos] = '█'
	return string(runes)
}
