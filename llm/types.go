package llm

import "encoding/json"

// Role identifies the author of a conversation message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
)

// Message is a single entry in a conversation. Content carries the text for
// system, user, and plain assistant messages. ToolCalls is set on assistant
// messages that request tool invocations. ToolCallID links a tool message
// back to the call it answers.
type Message struct {
	Role       Role              `json:"role"`
	Content    string            `json:"content,omitempty"`
	ToolCalls  []ToolCallRequest `json:"tool_calls,omitempty"`
	ToolCallID string            `json:"tool_call_id,omitempty"`
}

// SystemMessage builds a system message.
func SystemMessage(text string) Message {
	return Message{Role: RoleSystem, Content: text}
}

// UserMessage builds a user message.
func UserMessage(text string) Message {
	return Message{Role: RoleUser, Content: text}
}

// AssistantMessage builds a plain-text assistant message.
func AssistantMessage(text string) Message {
	return Message{Role: RoleAssistant, Content: text}
}

// AssistantToolCalls builds an assistant message that requests tool calls.
func AssistantToolCalls(calls []ToolCallRequest) Message {
	return Message{Role: RoleAssistant, ToolCalls: calls}
}

// ToolMessage builds a tool result message for the given call ID.
func ToolMessage(toolCallID, content string) Message {
	return Message{Role: RoleTool, ToolCallID: toolCallID, Content: content}
}

// ToolCallRequest is a model-issued request to invoke a named tool.
// Arguments is the raw JSON payload exactly as the model produced it.
type ToolCallRequest struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

// FunctionSchema describes one callable tool to the model: its name, a
// human-readable description, and a JSON Schema object for its parameters.
type FunctionSchema struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description,omitempty"`
	Parameters  map[string]interface{} `json:"parameters"`
}

// Request is a completion request. Provider and Model are optional; the
// Client fills them from its defaults or the model catalog. Tools is nil
// when the caller exposes no tools. Temperature and MaxTokens override the
// adapter's configured defaults when set.
type Request struct {
	Provider    string           `json:"provider,omitempty"`
	Model       string           `json:"model,omitempty"`
	Messages    []Message        `json:"messages"`
	Tools       []FunctionSchema `json:"tools,omitempty"`
	Temperature *float64         `json:"temperature,omitempty"`
	MaxTokens   *int             `json:"max_tokens,omitempty"`
}

// Finish reasons reported on a Completion.
const (
	FinishStop      = "stop"
	FinishToolCalls = "tool_calls"
	FinishLength    = "length"
)

// Completion is the model's answer to a Request: optional text, zero or
// more tool call requests, a finish reason, and token usage when known.
type Completion struct {
	ID           string            `json:"id"`
	Model        string            `json:"model"`
	Provider     string            `json:"provider"`
	Content      string            `json:"content,omitempty"`
	ToolCalls    []ToolCallRequest `json:"tool_calls,omitempty"`
	FinishReason string            `json:"finish_reason"`
	Usage        *Usage            `json:"usage,omitempty"`
}

// HasToolCalls reports whether the completion requests any tool invocations.
func (c *Completion) HasToolCalls() bool {
	return len(c.ToolCalls) > 0
}

// Usage holds token accounting for a single completion.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Add accumulates another usage record into this one.
func (u *Usage) Add(other *Usage) {
	if other == nil {
		return
	}
	u.PromptTokens += other.PromptTokens
	u.CompletionTokens += other.CompletionTokens
	u.TotalTokens += other.TotalTokens
}
