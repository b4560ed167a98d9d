// Package assistant implements the conversational helper: a single
// lazily initialized conversation backed by an LLM, with markdown
// rendering and suggested-command extraction.
package assistant

import (
	"github.com/google/uuid"
)

// Role identifies who authored a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one turn of the conversation.
type Message struct {
	Role    Role
	Content string
}

// Conversation holds the system prompt and the alternating turn history.
type Conversation struct {
	ID       string
	System   string
	messages []Message
}

// NewConversation creates an empty conversation with the given system prompt.
func NewConversation(system string) *Conversation {
	return &Conversation{
		ID:     uuid.New().String(),
		System: system,
	}
}

func (c *Conversation) AddUser(content string) {
	c.messages = append(c.messages, Message{Role: RoleUser, Content: content})
}

func (c *Conversation) AddAssistant(content string) {
	c.messages = append(c.messages, Message{Role: RoleAssistant, Content: content})
}

// DropLastUser removes a trailing user message. Called when a request
// fails so the unanswered turn does not poison the next one.
func (c *Conversation) DropLastUser() {
	if n := len(c.messages); n > 0 && c.messages[n-1].Role == RoleUser {
		c.messages = c.messages[:n-1]
	}
}

// Messages returns a copy of the turn history.
func (c *Conversation) Messages() []Message {
	out := make([]Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// Len reports the number of turns.
func (c *Conversation) Len() int { return len(c.messages) }
