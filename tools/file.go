package tools

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/openonion/connectonion-go/agent"
	"github.com/openonion/connectonion-go/llm"
)

// ReadFileTool reads a file and returns line-numbered content.
type ReadFileTool struct{}

func NewReadFileTool() *ReadFileTool { return &ReadFileTool{} }

func (t *ReadFileTool) Name() string { return "read_file" }

func (t *ReadFileTool) Description() string {
	return "Read a file from the filesystem. Returns line-numbered content."
}

func (t *ReadFileTool) Schema() llm.FunctionSchema {
	return llm.FunctionSchema{
		Name:        t.Name(),
		Description: t.Description(),
		Parameters: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"path": map[string]interface{}{
					"type":        "string",
					"description": "Path to the file to read.",
				},
				"offset": map[string]interface{}{
					"type":        "integer",
					"description": "1-based line number to start reading from.",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum number of lines to read. Default: 2000.",
				},
			},
			"required": []string{"path"},
		},
	}
}

func (t *ReadFileTool) Run(ctx context.Context, params map[string]interface{}) (agent.ToolResult, error) {
	path, ok := agent.GetStringArg(params, "path")
	if !ok || path == "" {
		return agent.ErrorResult("path is required"), nil
	}
	offset, _ := agent.GetIntArg(params, "offset")
	limit, _ := agent.GetIntArg(params, "limit")
	if limit <= 0 {
		limit = 2000
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return agent.ToolResult{}, fmt.Errorf("read %s: %w", path, err)
	}

	lines := strings.Split(string(data), "\n")

	start := 0
	if offset > 0 {
		start = offset - 1
	}
	if start >= len(lines) {
		return agent.NewResult(""), nil
	}

	end := len(lines)
	if start+limit < end {
		end = start + limit
	}

	var sb strings.Builder
	for i := start; i < end; i++ {
		fmt.Fprintf(&sb, "%d | %s\n", i+1, lines[i])
	}
	return agent.NewResult(TruncateToolOutput(sb.String(), t.Name())), nil
}

// WriteFileTool writes content to a file, creating parent directories.
type WriteFileTool struct{}

func NewWriteFileTool() *WriteFileTool { return &WriteFileTool{} }

func (t *WriteFileTool) Name() string { return "write_file" }

func (t *WriteFileTool) Description() string {
	return "Write content to a file. Creates the file and parent directories if needed."
}

func (t *WriteFileTool) Schema() llm.FunctionSchema {
	return llm.FunctionSchema{
		Name:        t.Name(),
		Description: t.Description(),
		Parameters: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"path": map[string]interface{}{
					"type":        "string",
					"description": "Path to write to.",
				},
				"content": map[string]interface{}{
					"type":        "string",
					"description": "The full file content to write.",
				},
			},
			"required": []string{"path", "content"},
		},
	}
}

func (t *WriteFileTool) Run(ctx context.Context, params map[string]interface{}) (agent.ToolResult, error) {
	path, ok := agent.GetStringArg(params, "path")
	if !ok || path == "" {
		return agent.ErrorResult("path is required"), nil
	}
	content, ok := agent.GetStringArg(params, "content")
	if !ok {
		return agent.ErrorResult("content is required"), nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return agent.ToolResult{}, fmt.Errorf("create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return agent.ToolResult{}, fmt.Errorf("write %s: %w", path, err)
	}
	return agent.NewResult(fmt.Sprintf("Successfully wrote %d bytes to %s", len(content), path)), nil
}
