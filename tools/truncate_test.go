package tools

import (
	"strings"
	"testing"
)

func TestTruncateUnderLimit(t *testing.T) {
	input := "short output"
	if got := Truncate(input, 100, TruncateHeadTail); got != input {
		t.Errorf("expected unchanged output, got %q", got)
	}
}

func TestTruncateHeadTail(t *testing.T) {
	input := strings.Repeat("a", 50) + strings.Repeat("z", 50)
	got := Truncate(input, 40, TruncateHeadTail)

	if !strings.Contains(got, "[WARNING: Tool output was truncated.") {
		t.Errorf("expected truncation warning, got %q", got)
	}
	if !strings.Contains(got, "60 characters were removed") {
		t.Errorf("expected removed count, got %q", got)
	}
	if !strings.HasPrefix(got, strings.Repeat("a", 20)) {
		t.Errorf("expected head preserved, got %q", got)
	}
	if !strings.HasSuffix(got, strings.Repeat("z", 20)) {
		t.Errorf("expected tail preserved, got %q", got)
	}
}

func TestTruncateTail(t *testing.T) {
	input := strings.Repeat("a", 50) + strings.Repeat("z", 50)
	got := Truncate(input, 30, TruncateTail)

	if !strings.Contains(got, "First 70 characters were removed") {
		t.Errorf("expected removed count, got %q", got)
	}
	if !strings.HasSuffix(got, strings.Repeat("z", 30)) {
		t.Errorf("expected suffix preserved, got %q", got)
	}
}

func TestTruncateLines(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 10; i++ {
		sb.WriteString("line\n")
	}
	got := TruncateLines(strings.TrimSuffix(sb.String(), "\n"), 4)

	if !strings.Contains(got, "[... 6 lines omitted ...]") {
		t.Errorf("expected omitted marker, got %q", got)
	}
}

func TestTruncateLinesUnderLimit(t *testing.T) {
	input := "one\ntwo\nthree"
	if got := TruncateLines(input, 10); got != input {
		t.Errorf("expected unchanged output, got %q", got)
	}
}

func TestTruncateToolOutputDefaults(t *testing.T) {
	small := "tiny"
	if got := TruncateToolOutput(small, "unknown_tool"); got != small {
		t.Errorf("expected unchanged output, got %q", got)
	}

	big := strings.Repeat("x", 40000)
	got := TruncateToolOutput(big, "unknown_tool")
	if len(got) >= len(big) {
		t.Errorf("expected truncation for oversized output, got %d chars", len(got))
	}
	if !strings.Contains(got, "[WARNING: Tool output was truncated.") {
		t.Errorf("expected truncation warning, got prefix %q", got[:80])
	}
}

func TestTruncateToolOutputShellLineLimit(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 300; i++ {
		sb.WriteString("line\n")
	}
	got := TruncateToolOutput(sb.String(), "shell")

	if !strings.Contains(got, "lines omitted") {
		t.Errorf("expected line truncation for shell output, got %d chars", len(got))
	}
}
