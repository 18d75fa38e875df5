package agent

import (
	"context"
	"fmt"

	"github.com/openonion/connectonion-go/llm"
)

// Tool is a named capability the model can invoke with keyword parameters.
// Run receives coerced parameters and reports its outcome as a ToolResult;
// a non-nil error means the tool itself blew up rather than failing cleanly,
// and the dispatcher converts it into a failure result.
type Tool interface {
	Name() string
	Description() string
	Schema() llm.FunctionSchema
	Run(ctx context.Context, params map[string]interface{}) (ToolResult, error)
}

// ToolResult is the outcome of one tool invocation. Output carries text on
// success, Error carries text on failure; the two are mutually exclusive.
type ToolResult struct {
	Success bool   `json:"success"`
	Output  string `json:"output,omitempty"`
	Error   string `json:"error,omitempty"`
}

// NewResult builds a successful result.
func NewResult(output string) ToolResult {
	return ToolResult{Success: true, Output: output}
}

// ErrorResult builds a failed result with a formatted error message.
func ErrorResult(format string, args ...interface{}) ToolResult {
	return ToolResult{Success: false, Error: fmt.Sprintf(format, args...)}
}

// Text returns the content fed back to the model: the output on success,
// the error text on failure, or a completion marker when neither has text.
func (r ToolResult) Text() string {
	if r.Success && r.Output != "" {
		return r.Output
	}
	if !r.Success && r.Error != "" {
		return r.Error
	}
	return "Tool execution completed"
}
