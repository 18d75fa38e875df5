package tools

import (
	"fmt"
	"strings"
)

// TruncationMode specifies how oversized output is cut.
type TruncationMode string

const (
	TruncateHeadTail TruncationMode = "head_tail"
	TruncateTail     TruncationMode = "tail"
)

// Default character limits per tool.
var DefaultCharLimits = map[string]int{
	"read_file":  50000,
	"shell":      30000,
	"http_get":   50000,
	"write_file": 1000,
}

// Default truncation modes per tool.
var DefaultModes = map[string]TruncationMode{
	"read_file":  TruncateHeadTail,
	"shell":      TruncateHeadTail,
	"http_get":   TruncateTail,
	"write_file": TruncateTail,
}

// Default line limits per tool, applied after character truncation.
var DefaultLineLimits = map[string]int{
	"shell": 256,
}

// Truncate applies character-based truncation to output.
func Truncate(output string, maxChars int, mode TruncationMode) string {
	if len(output) <= maxChars {
		return output
	}

	removed := len(output) - maxChars
	switch mode {
	case TruncateTail:
		return fmt.Sprintf("[WARNING: Tool output was truncated. First %d characters were removed.]\n\n", removed) +
			output[len(output)-maxChars:]
	default:
		half := maxChars / 2
		return output[:half] +
			fmt.Sprintf("\n\n[WARNING: Tool output was truncated. %d characters were removed from the middle. "+
				"Re-run the tool with more targeted parameters to see specific parts.]\n\n", removed) +
			output[len(output)-half:]
	}
}

// TruncateLines applies line-based truncation using a head/tail split.
func TruncateLines(output string, maxLines int) string {
	lines := strings.Split(output, "\n")
	if len(lines) <= maxLines {
		return output
	}

	headCount := maxLines / 2
	tailCount := maxLines - headCount
	omitted := len(lines) - headCount - tailCount

	return strings.Join(lines[:headCount], "\n") +
		fmt.Sprintf("\n[... %d lines omitted ...]\n", omitted) +
		strings.Join(lines[len(lines)-tailCount:], "\n")
}

// TruncateToolOutput applies the truncation pipeline for a tool: character
// truncation first to handle pathological sizes, then line truncation for
// readability. Unknown tools get a 30000 character head/tail cut.
func TruncateToolOutput(output string, toolName string) string {
	maxChars, ok := DefaultCharLimits[toolName]
	if !ok {
		maxChars = 30000
	}
	mode, ok := DefaultModes[toolName]
	if !ok {
		mode = TruncateHeadTail
	}

	result := Truncate(output, maxChars, mode)

	if maxLines, ok := DefaultLineLimits[toolName]; ok {
		result = TruncateLines(result, maxLines)
	}
	return result
}
