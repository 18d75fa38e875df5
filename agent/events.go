package agent

import (
	"sync"
	"time"
)

// EventKind identifies what happened during a run.
type EventKind string

const (
	EventRunStart         EventKind = "run_start"
	EventIterationStart   EventKind = "iteration_start"
	EventAssistantMessage EventKind = "assistant_message"
	EventToolCallStart    EventKind = "tool_call_start"
	EventToolCallEnd      EventKind = "tool_call_end"
	EventIterationLimit   EventKind = "iteration_limit"
	EventHistoryFlush     EventKind = "history_flush"
	EventError            EventKind = "error"
	EventRunEnd           EventKind = "run_end"
)

// Event is one observation from a running agent.
type Event struct {
	Kind      EventKind              `json:"kind"`
	Timestamp time.Time              `json:"timestamp"`
	Agent     string                 `json:"agent"`
	Data      map[string]interface{} `json:"data,omitempty"`
}

// EventEmitter fans run events out to a single consumer channel. Emit never
// blocks the run loop: when the buffer is full the event is dropped.
type EventEmitter struct {
	agent  string
	events chan Event
	mu     sync.Mutex
	closed bool
}

// NewEventEmitter creates an emitter for the named agent. A bufferSize of
// zero or less uses the default of 256.
func NewEventEmitter(agent string, bufferSize int) *EventEmitter {
	if bufferSize <= 0 {
		bufferSize = 256
	}
	return &EventEmitter{
		agent:  agent,
		events: make(chan Event, bufferSize),
	}
}

// Emit sends an event without blocking. Events emitted after Close, or when
// the buffer is full, are dropped.
func (e *EventEmitter) Emit(kind EventKind, data map[string]interface{}) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}

	event := Event{
		Kind:      kind,
		Timestamp: time.Now(),
		Agent:     e.agent,
		Data:      data,
	}

	select {
	case e.events <- event:
	default:
	}
}

// Events returns the receive side of the event channel.
func (e *EventEmitter) Events() <-chan Event {
	return e.events
}

// Close closes the event channel. Safe to call more than once.
func (e *EventEmitter) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.closed = true
	close(e.events)
}
