package tools

import (
	"context"
	"fmt"

	"github.com/openonion/connectonion-go/agent"
	"github.com/openonion/connectonion-go/llm"
)

// AgentTool exposes a child agent as a tool on a parent agent. The parent's
// model delegates a task in natural language; the child runs its own loop
// with its own tools, and its final answer becomes the tool output. The
// child's model failures surface as tool failures on the parent, so they
// never abort the parent's run.
type AgentTool struct {
	child       *agent.Agent
	description string
}

// NewAgentTool wraps child as a tool. The description tells the parent's
// model what the child is good for.
func NewAgentTool(child *agent.Agent, description string) *AgentTool {
	if description == "" {
		description = fmt.Sprintf("Delegate a task to the %q agent and return its answer.", child.Name())
	}
	return &AgentTool{child: child, description: description}
}

func (t *AgentTool) Name() string { return t.child.Name() }

func (t *AgentTool) Description() string { return t.description }

func (t *AgentTool) Schema() llm.FunctionSchema {
	return llm.FunctionSchema{
		Name:        t.Name(),
		Description: t.Description(),
		Parameters: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"prompt": map[string]interface{}{
					"type":        "string",
					"description": "The task or question for the agent, in natural language.",
				},
			},
			"required": []string{"prompt"},
		},
	}
}

func (t *AgentTool) Run(ctx context.Context, params map[string]interface{}) (agent.ToolResult, error) {
	prompt, ok := agent.GetStringArg(params, "prompt")
	if !ok || prompt == "" {
		return agent.ErrorResult("prompt is required"), nil
	}

	answer, err := t.child.Run(ctx, prompt)
	if err != nil {
		return agent.ToolResult{}, fmt.Errorf("agent %s: %w", t.child.Name(), err)
	}
	return agent.NewResult(answer), nil
}
