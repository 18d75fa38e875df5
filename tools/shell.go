package tools

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/openonion/connectonion-go/agent"
	"github.com/openonion/connectonion-go/llm"
)

// ShellConfig configures a ShellTool.
type ShellConfig struct {
	DefaultTimeout time.Duration // per-command default, 30s when zero
	MaxTimeout     time.Duration // hard cap on requested timeouts, 120s when zero
	WorkDir        string        // working directory, process cwd when empty
}

// ShellTool executes shell commands and returns their combined output with
// the exit code when non-zero.
type ShellTool struct {
	defaultTimeout time.Duration
	maxTimeout     time.Duration
	workDir        string
}

func NewShellTool(cfg ShellConfig) *ShellTool {
	t := &ShellTool{
		defaultTimeout: cfg.DefaultTimeout,
		maxTimeout:     cfg.MaxTimeout,
		workDir:        cfg.WorkDir,
	}
	if t.defaultTimeout <= 0 {
		t.defaultTimeout = 30 * time.Second
	}
	if t.maxTimeout <= 0 {
		t.maxTimeout = 120 * time.Second
	}
	return t
}

func (t *ShellTool) Name() string { return "shell" }

func (t *ShellTool) Description() string {
	return "Execute a shell command. Returns stdout, stderr, and the exit code."
}

func (t *ShellTool) Schema() llm.FunctionSchema {
	return llm.FunctionSchema{
		Name:        t.Name(),
		Description: t.Description(),
		Parameters: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"command": map[string]interface{}{
					"type":        "string",
					"description": "The command to run.",
				},
				"timeout_ms": map[string]interface{}{
					"type":        "integer",
					"description": "Override the default command timeout in milliseconds.",
				},
			},
			"required": []string{"command"},
		},
	}
}

func (t *ShellTool) Run(ctx context.Context, params map[string]interface{}) (agent.ToolResult, error) {
	command, ok := agent.GetStringArg(params, "command")
	if !ok || command == "" {
		return agent.ErrorResult("command is required"), nil
	}

	timeout := t.defaultTimeout
	if ms, ok := agent.GetIntArg(params, "timeout_ms"); ok && ms > 0 {
		timeout = time.Duration(ms) * time.Millisecond
	}
	if timeout > t.maxTimeout {
		timeout = t.maxTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	shell, shellArg := "/bin/bash", "-c"
	if runtime.GOOS == "windows" {
		shell, shellArg = "cmd.exe", "/c"
	}

	cmd := exec.CommandContext(ctx, shell, shellArg, command)
	cmd.Dir = t.workDir
	// Own process group so a timeout can kill the whole tree.
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	output := stdout.String()
	if stderr.Len() > 0 {
		if output != "" {
			output += "\n"
		}
		output += stderr.String()
	}
	output = TruncateToolOutput(output, t.Name())

	if ctx.Err() == context.DeadlineExceeded {
		if cmd.Process != nil {
			_ = syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
		}
		return agent.ErrorResult("command timed out after %s\n%s", timeout, output), nil
	}

	if err != nil {
		exitErr, ok := err.(*exec.ExitError)
		if !ok {
			return agent.ToolResult{}, fmt.Errorf("run command: %w", err)
		}
		var sb strings.Builder
		sb.WriteString(output)
		fmt.Fprintf(&sb, "\n\n[Exit code: %d]", exitErr.ExitCode())
		return agent.NewResult(sb.String()), nil
	}

	return agent.NewResult(output), nil
}
