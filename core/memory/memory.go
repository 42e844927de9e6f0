package memory

import (
	"fmt"
	"time"

	"github.com/synapticlabs/synaptic/core/tool"
)

// Role identifies the author of a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// Valid reports whether r is one of the three supported roles.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAssistant, RoleSystem:
		return true
	}
	return false
}

// Entry is one recorded conversation turn held by a [History]. It is
// implemented by [Memory] and, through embedding, by [*ResponseMem].
type Entry interface {
	// Base returns the plain message/created/role view of the turn.
	Base() Memory
}

// Memory is one conversation turn: a message, the moment it was created, and
// the role that produced it. It is a plain value with no mutators; treat it
// as immutable after construction.
type Memory struct {
	Message string    `json:"message"`
	Created time.Time `json:"created"`
	Role    Role      `json:"role"`
}

// New builds a Memory with the given role, stamped with the current UTC time.
func New(message string, role Role) Memory {
	return Memory{
		Message: message,
		Created: time.Now().UTC(),
		Role:    role,
	}
}

// NewUserMem builds a user-role Memory. It exists purely as a naming
// convenience for the most common construction.
func NewUserMem(message string) Memory {
	return New(message, RoleUser)
}

// NewSystemMem builds a system-role Memory.
func NewSystemMem(message string) Memory {
	return New(message, RoleSystem)
}

// Base implements [Entry].
func (m Memory) Base() Memory {
	return m
}

// Usage carries provider-reported token accounting for one response.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens,omitempty"`
	CompletionTokens int `json:"completion_tokens,omitempty"`
	TotalTokens      int `json:"total_tokens,omitempty"`
}

// ResponseMem is an assistant turn produced by a provider adapter. Beyond the
// plain Memory fields it records the tool calls the model requested and, once
// the model has executed them, their results.
//
// Adapters populate ToolCalls and must leave ToolResults empty; attaching
// results is exclusively the model's responsibility. A non-empty ToolResults
// always corresponds, by name and position, to the subset of ToolCalls that
// was actually attempted.
type ResponseMem struct {
	Memory
	ToolCalls   []tool.Call   `json:"tool_calls,omitempty"`
	ToolResults []tool.Result `json:"tool_results,omitempty"`
	Usage       *Usage        `json:"usage,omitempty"`
}

// NewResponseMem builds an assistant-role response stamped with the current
// UTC time. ToolResults starts empty, never nil, so callers can range over it
// without a nil check.
func NewResponseMem(message string, calls []tool.Call) *ResponseMem {
	return &ResponseMem{
		Memory:      New(message, RoleAssistant),
		ToolCalls:   calls,
		ToolResults: []tool.Result{},
	}
}

func (r *ResponseMem) String() string {
	return fmt.Sprintf("ResponseMem(role=%s, tool_calls=%d, tool_results=%d)",
		r.Role, len(r.ToolCalls), len(r.ToolResults))
}
