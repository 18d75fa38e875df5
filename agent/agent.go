package agent

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/openonion/connectonion-go/history"
	"github.com/openonion/connectonion-go/llm"
	"github.com/openonion/connectonion-go/telemetry"
)

// Construction defaults.
const (
	DefaultTemperature   = 0.7
	DefaultMaxIterations = 10
)

// Agent drives a bounded reason-and-act loop: it sends the conversation to
// the model, executes any tool calls the model requests, feeds the results
// back, and repeats until the model answers in plain text or the iteration
// bound is reached. One Agent runs one conversation at a time.
type Agent struct {
	name          string
	client        llm.LLM
	registry      *Registry
	conversation  *Conversation
	systemPrompt  string
	temperature   float64
	maxIterations int
	recorder      *history.Recorder
	emitter       *EventEmitter
	logger        *slog.Logger

	mu sync.Mutex
}

// Option configures an Agent.
type Option func(*Agent)

// WithTools registers tools on the agent.
func WithTools(tools ...Tool) Option {
	return func(a *Agent) {
		for _, t := range tools {
			a.registry.Register(t)
		}
	}
}

// WithSystemPrompt sets the system prompt seeded into the conversation.
func WithSystemPrompt(prompt string) Option {
	return func(a *Agent) {
		a.systemPrompt = prompt
	}
}

// WithTemperature sets the sampling temperature sent on every request.
func WithTemperature(t float64) Option {
	return func(a *Agent) {
		a.temperature = t
	}
}

// WithMaxIterations sets the iteration bound for a single Run.
func WithMaxIterations(n int) Option {
	return func(a *Agent) {
		if n > 0 {
			a.maxIterations = n
		}
	}
}

// WithRecorder attaches a behavior log recorder.
func WithRecorder(r *history.Recorder) Option {
	return func(a *Agent) {
		a.recorder = r
	}
}

// WithLogger sets the structured logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(a *Agent) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithEvents enables the run event stream with the given buffer size.
// Without this option no events are emitted.
func WithEvents(bufferSize int) Option {
	return func(a *Agent) {
		a.emitter = NewEventEmitter(a.name, bufferSize)
	}
}

// New creates an agent with the given name and completion client.
func New(name string, client llm.LLM, opts ...Option) *Agent {
	a := &Agent{
		name:          name,
		client:        client,
		registry:      NewRegistry(),
		temperature:   DefaultTemperature,
		maxIterations: DefaultMaxIterations,
		logger:        slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}

	a.conversation = NewConversation(a.systemPrompt)
	if a.recorder != nil && a.systemPrompt != "" {
		a.recorder.RecordMessage(llm.SystemMessage(a.systemPrompt))
	}
	return a
}

// Name returns the agent's name.
func (a *Agent) Name() string {
	return a.name
}

// Registry returns the agent's tool registry.
func (a *Agent) Registry() *Registry {
	return a.registry
}

// Messages returns a snapshot of the conversation history.
func (a *Agent) Messages() []llm.Message {
	return a.conversation.Messages()
}

// ClearMessages resets the conversation, keeping the system prompt.
func (a *Agent) ClearMessages() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.conversation.Clear()
}

// Events returns the run event stream, or nil when events are not enabled.
func (a *Agent) Events() <-chan Event {
	if a.emitter == nil {
		return nil
	}
	return a.emitter.Events()
}

// Close shuts down the event stream if one was enabled.
func (a *Agent) Close() {
	if a.emitter != nil {
		a.emitter.Close()
	}
}

// Run submits a user prompt and drives the loop to completion. It returns
// the model's final text answer. A model call failure aborts the run and is
// returned as-is; tool failures never abort, they are reported back to the
// model as results. When the iteration bound is exhausted before the model
// stops calling tools, Run logs a warning and returns the most recent text
// it saw, which may be empty.
func (a *Agent) Run(ctx context.Context, prompt string) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	ctx, span := telemetry.StartSpan(ctx, "agent.run",
		trace.WithAttributes(telemetry.StringAttr("agent.name", a.name)))
	defer span.End()

	a.emit(EventRunStart, map[string]interface{}{"prompt": prompt})

	userMsg := llm.UserMessage(prompt)
	a.conversation.Append(userMsg)
	a.record(userMsg)

	var finalResponse string
	completed := false

	for iteration := 1; iteration <= a.maxIterations; iteration++ {
		a.emit(EventIterationStart, map[string]interface{}{"iteration": iteration})

		temp := a.temperature
		req := llm.Request{
			Messages:    a.conversation.Messages(),
			Temperature: &temp,
		}
		if a.registry.Count() > 0 {
			req.Tools = a.registry.Schemas()
		}

		completion, err := a.client.Complete(ctx, req)
		if err != nil {
			telemetry.RecordError(span, err)
			a.emit(EventError, map[string]interface{}{"error": err.Error()})
			a.flush()
			return "", err
		}

		if completion.Content != "" {
			assistantMsg := llm.AssistantMessage(completion.Content)
			a.conversation.Append(assistantMsg)
			a.record(assistantMsg)
			finalResponse = completion.Content
			a.emit(EventAssistantMessage, map[string]interface{}{"content": completion.Content})
		}

		if !completion.HasToolCalls() {
			completed = true
			break
		}

		callMsg := llm.AssistantToolCalls(completion.ToolCalls)
		a.conversation.Append(callMsg)
		a.record(callMsg)

		results := a.dispatchToolCalls(ctx, completion.ToolCalls)

		// Results go back in request order regardless of finish order.
		for i, call := range completion.ToolCalls {
			toolMsg := llm.ToolMessage(call.ID, results[i].Text())
			a.conversation.Append(toolMsg)
			a.record(toolMsg)
		}
	}

	if !completed {
		a.logger.Warn("iteration limit reached before the model finished",
			"agent", a.name, "max_iterations", a.maxIterations)
		a.emit(EventIterationLimit, map[string]interface{}{"max_iterations": a.maxIterations})
	}

	a.flush()
	telemetry.SetOK(span)
	a.emit(EventRunEnd, map[string]interface{}{"response": finalResponse})
	return finalResponse, nil
}

// dispatchToolCalls executes all calls from one completion in parallel and
// returns the results indexed by request position.
func (a *Agent) dispatchToolCalls(ctx context.Context, calls []llm.ToolCallRequest) []ToolResult {
	results := make([]ToolResult, len(calls))
	var wg sync.WaitGroup
	for i, call := range calls {
		wg.Add(1)
		go func(idx int, call llm.ToolCallRequest) {
			defer wg.Done()
			results[idx] = a.executeToolCall(ctx, call)
		}(i, call)
	}
	wg.Wait()
	return results
}

// executeToolCall resolves and runs a single tool call. Every failure mode
// becomes a failed ToolResult; nothing escapes to abort the run.
func (a *Agent) executeToolCall(ctx context.Context, call llm.ToolCallRequest) ToolResult {
	ctx, span := telemetry.StartSpan(ctx, "agent.tool_call",
		trace.WithAttributes(telemetry.StringAttr("tool.name", call.Name)))
	defer span.End()

	a.emit(EventToolCallStart, map[string]interface{}{"call_id": call.ID, "tool": call.Name})

	tool, ok := a.registry.Get(call.Name)
	if !ok {
		result := ErrorResult("Tool not found: %s", call.Name)
		telemetry.RecordError(span, errors.New(result.Error))
		a.recordToolCall(call, map[string]interface{}{}, result)
		a.emit(EventToolCallEnd, map[string]interface{}{"call_id": call.ID, "tool": call.Name, "success": false})
		return result
	}

	params := CoerceArguments(call.Arguments)

	start := time.Now()
	result := a.invokeTool(ctx, tool, params)
	a.logger.Debug("tool executed",
		"agent", a.name,
		"tool", call.Name,
		"duration_ms", time.Since(start).Milliseconds(),
		"success", result.Success)

	if result.Success {
		telemetry.SetOK(span)
	} else {
		telemetry.RecordError(span, errors.New(result.Error))
	}

	a.recordToolCall(call, params, result)
	a.emit(EventToolCallEnd, map[string]interface{}{"call_id": call.ID, "tool": call.Name, "success": result.Success})
	return result
}

// invokeTool runs the tool, converting returned errors and panics into
// failure results.
func (a *Agent) invokeTool(ctx context.Context, tool Tool, params map[string]interface{}) (result ToolResult) {
	defer func() {
		if rec := recover(); rec != nil {
			a.logger.Error("tool panicked", "agent", a.name, "tool", tool.Name(), "panic", rec)
			result = ErrorResult("Tool execution failed: %v", rec)
		}
	}()

	res, err := tool.Run(ctx, params)
	if err != nil {
		return ErrorResult("Tool execution failed: %s", err.Error())
	}
	return res
}

func (a *Agent) record(msg llm.Message) {
	if a.recorder == nil {
		return
	}
	a.recorder.RecordMessage(msg)
}

func (a *Agent) recordToolCall(call llm.ToolCallRequest, params map[string]interface{}, result ToolResult) {
	if a.recorder == nil {
		return
	}
	a.recorder.RecordToolCall(call.ID, call.Name, params, result.Success, result.Text())
}

// flush persists the behavior log. A save failure is logged, never raised;
// the recorder is a write-only sink with no influence on the run.
func (a *Agent) flush() {
	if a.recorder == nil {
		return
	}
	if err := a.recorder.Save(); err != nil {
		a.logger.Warn("failed to save behavior log", "agent", a.name, "error", err)
	}
	a.emit(EventHistoryFlush, nil)
}

func (a *Agent) emit(kind EventKind, data map[string]interface{}) {
	if a.emitter == nil {
		return
	}
	a.emitter.Emit(kind, data)
}
