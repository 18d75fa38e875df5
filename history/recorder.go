// Package history persists agent behavior logs as JSON files on disk.
// Each agent gets one log under <root>/<agent-name>/behavior.json holding
// every message and tool call from its runs.
package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/openonion/connectonion-go/llm"
)

// EntryType distinguishes the two record shapes in a behavior log.
type EntryType string

const (
	EntryMessage  EntryType = "MESSAGE"
	EntryToolCall EntryType = "TOOL_CALL"
)

// Entry is one element of a behavior log. MESSAGE entries use Role and
// Content; TOOL_CALL entries use ToolName, Parameters, Success, and Result.
// For tool calls the ID is the model-issued call ID.
type Entry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Type      EntryType `json:"type"`

	Role    string `json:"role,omitempty"`
	Content string `json:"content,omitempty"`

	ToolName   string `json:"tool_name,omitempty"`
	Parameters string `json:"parameters,omitempty"`
	Success    *bool  `json:"success,omitempty"`
	Result     string `json:"result,omitempty"`
}

// Log is the on-disk document: the agent's name, bookkeeping timestamps,
// and the ordered entries.
type Log struct {
	Agent     string    `json:"agent"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Entries   []Entry   `json:"entries"`
}

// Recorder accumulates behavior log entries in memory and writes the full
// log to disk on Save. It is safe for concurrent use; tool results arrive
// from parallel goroutines.
type Recorder struct {
	mu   sync.Mutex
	path string
	log  Log
}

// Option configures a Recorder.
type Option func(*Recorder)

// WithDir overrides the root directory for behavior logs.
// The default is ~/.connectonion/agents.
func WithDir(dir string) Option {
	return func(r *Recorder) {
		r.path = dir
	}
}

// NewRecorder opens the behavior log for the named agent, loading any
// existing entries so new runs append to the same history.
func NewRecorder(agentName string, opts ...Option) (*Recorder, error) {
	if err := validateAgentName(agentName); err != nil {
		return nil, err
	}

	r := &Recorder{}
	for _, opt := range opts {
		opt(r)
	}

	if r.path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		r.path = filepath.Join(home, ".connectonion", "agents")
	}
	r.path = filepath.Join(r.path, agentName, "behavior.json")

	data, err := os.ReadFile(r.path)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, &r.log); err != nil {
			return nil, fmt.Errorf("parse behavior log %s: %w", r.path, err)
		}
	case os.IsNotExist(err):
		r.log = Log{Agent: agentName, CreatedAt: time.Now().UTC()}
	default:
		return nil, fmt.Errorf("read behavior log %s: %w", r.path, err)
	}

	if r.log.Agent == "" {
		r.log.Agent = agentName
	}
	return r, nil
}

// RecordMessage appends a MESSAGE entry for a conversation message.
func (r *Recorder) RecordMessage(msg llm.Message) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.log.Entries = append(r.log.Entries, Entry{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC(),
		Type:      EntryMessage,
		Role:      string(msg.Role),
		Content:   msg.Content,
	})
}

// RecordToolCall appends a TOOL_CALL entry. The callID becomes the entry ID;
// a fresh one is generated if the model supplied none.
func (r *Recorder) RecordToolCall(callID, toolName string, params map[string]interface{}, success bool, result string) {
	entryID := callID
	if entryID == "" {
		entryID = uuid.NewString()
	}

	paramsJSON, err := json.Marshal(params)
	if err != nil {
		paramsJSON = []byte("{}")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.log.Entries = append(r.log.Entries, Entry{
		ID:         entryID,
		Timestamp:  time.Now().UTC(),
		Type:       EntryToolCall,
		ToolName:   toolName,
		Parameters: string(paramsJSON),
		Success:    &success,
		Result:     result,
	})
}

// Entries returns a copy of the recorded entries.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(r.log.Entries))
	copy(out, r.log.Entries)
	return out
}

// Path returns the log file location.
func (r *Recorder) Path() string {
	return r.path
}

// Save writes the full log to disk, creating parent directories as needed.
func (r *Recorder) Save() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.log.UpdatedAt = time.Now().UTC()
	data, err := json.MarshalIndent(&r.log, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal behavior log: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(r.path), 0700); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}
	if err := os.WriteFile(r.path, data, 0600); err != nil {
		return fmt.Errorf("write behavior log: %w", err)
	}
	return nil
}

func validateAgentName(name string) error {
	if name == "" {
		return errors.New("agent name is empty")
	}
	if strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return fmt.Errorf("agent name %q must not contain path separators", name)
	}
	return nil
}
