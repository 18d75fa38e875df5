package agent

import (
	"sync"

	"github.com/openonion/connectonion-go/llm"
)

// Conversation is the ordered message history owned by one agent. When a
// system prompt is configured it occupies the first slot and survives Clear.
type Conversation struct {
	mu       sync.RWMutex
	messages []llm.Message
	system   string
}

// NewConversation creates a conversation, seeding the system message when
// systemPrompt is non-empty.
func NewConversation(systemPrompt string) *Conversation {
	c := &Conversation{system: systemPrompt}
	if systemPrompt != "" {
		c.messages = append(c.messages, llm.SystemMessage(systemPrompt))
	}
	return c
}

// Append adds messages to the end of the history.
func (c *Conversation) Append(msgs ...llm.Message) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, msgs...)
}

// Messages returns a snapshot copy of the history.
func (c *Conversation) Messages() []llm.Message {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]llm.Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// Len returns the number of messages, including the system message.
func (c *Conversation) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.messages)
}

// Clear drops the history, retaining only the system message if one was
// configured.
func (c *Conversation) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = nil
	if c.system != "" {
		c.messages = append(c.messages, llm.SystemMessage(c.system))
	}
}
