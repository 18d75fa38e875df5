package tools

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"
)

func TestShellToolEcho(t *testing.T) {
	tool := NewShellTool(ShellConfig{})
	result, err := tool.Run(context.Background(), map[string]interface{}{"command": "echo hello"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Success {
		t.Fatalf("expected success, got %+v", result)
	}
	if !strings.Contains(result.Output, "hello") {
		t.Errorf("expected stdout captured, got %q", result.Output)
	}
}

func TestShellToolStderr(t *testing.T) {
	tool := NewShellTool(ShellConfig{})
	result, err := tool.Run(context.Background(), map[string]interface{}{"command": "echo oops 1>&2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(result.Output, "oops") {
		t.Errorf("expected stderr captured, got %q", result.Output)
	}
}

func TestShellToolExitCode(t *testing.T) {
	tool := NewShellTool(ShellConfig{})
	result, err := tool.Run(context.Background(), map[string]interface{}{"command": "exit 3"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// A non-zero exit is still a successful execution; the code is reported
	// in the output for the model to see.
	if !result.Success {
		t.Fatalf("expected success, got %+v", result)
	}
	if !strings.Contains(result.Output, "[Exit code: 3]") {
		t.Errorf("expected exit code in output, got %q", result.Output)
	}
}

func TestShellToolTimeout(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("process group kill is not exercised on windows")
	}

	tool := NewShellTool(ShellConfig{DefaultTimeout: 100 * time.Millisecond})
	result, err := tool.Run(context.Background(), map[string]interface{}{"command": "sleep 5"})
	if err != nil {
		t.Fatalf("expected clean failure result, got error: %v", err)
	}
	if result.Success {
		t.Fatalf("expected failure, got %+v", result)
	}
	if !strings.Contains(result.Error, "timed out") {
		t.Errorf("expected timeout message, got %q", result.Error)
	}
}

func TestShellToolTimeoutCap(t *testing.T) {
	tool := NewShellTool(ShellConfig{MaxTimeout: 100 * time.Millisecond})

	start := time.Now()
	result, err := tool.Run(context.Background(), map[string]interface{}{
		"command":    "sleep 5",
		"timeout_ms": 60000,
	})
	if err != nil {
		t.Fatalf("expected clean failure result, got error: %v", err)
	}
	if result.Success {
		t.Fatalf("expected failure, got %+v", result)
	}
	if elapsed := time.Since(start); elapsed > 3*time.Second {
		t.Errorf("expected the requested timeout clamped to the cap, took %v", elapsed)
	}
}

func TestShellToolMissingCommand(t *testing.T) {
	tool := NewShellTool(ShellConfig{})
	result, err := tool.Run(context.Background(), map[string]interface{}{})
	if err != nil {
		t.Fatalf("expected clean failure result, got error: %v", err)
	}
	if result.Success || !strings.Contains(result.Error, "command is required") {
		t.Errorf("expected missing-command failure, got %+v", result)
	}
}

func TestShellToolWorkDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "marker.txt"), []byte("x"), 0644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tool := NewShellTool(ShellConfig{WorkDir: dir})
	result, err := tool.Run(context.Background(), map[string]interface{}{"command": "ls"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(result.Output, "marker.txt") {
		t.Errorf("expected command to run in the configured directory, got %q", result.Output)
	}
}
