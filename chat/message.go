package chat

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Jarekkkkk/rig/oneormany"
)

// Role identifies the speaker of a message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
)

// Function names a tool and carries its arguments as a JSON document.
type Function struct {
	Name      string `json:"name" yaml:"name"`
	Arguments string `json:"arguments" yaml:"arguments"`
}

// ToolCall is a request from the assistant to run a tool.
type ToolCall struct {
	ID       string   `json:"id" yaml:"id"`
	Type     string   `json:"type" yaml:"type"`
	Function Function `json:"function" yaml:"function"`
}

// NewToolCall returns a function tool call.
func NewToolCall(id, name, arguments string) ToolCall {
	return ToolCall{ID: id, Type: "function", Function: Function{Name: name, Arguments: arguments}}
}

// Message is a single turn in a conversation.
//
// Content and ToolCalls are optional; when present they hold at least one
// element.
type Message struct {
	Role       Role                           `json:"role" yaml:"role"`
	Name       string                         `json:"name,omitempty" yaml:"name,omitempty"`
	Content    *oneormany.OneOrMany[Content]  `json:"content,omitempty" yaml:"content,omitempty"`
	ToolCalls  *oneormany.OneOrMany[ToolCall] `json:"tool_calls,omitempty" yaml:"tool_calls,omitempty"`
	ToolCallID string                         `json:"tool_call_id,omitempty" yaml:"tool_call_id,omitempty"`
}

func textMessage(role Role, text string) Message {
	content := oneormany.One(Text(text))
	return Message{Role: role, Content: &content}
}

// System returns a system message, typically a preamble.
func System(text string) Message { return textMessage(RoleSystem, text) }

// User returns a user message with a single text part.
func User(text string) Message { return textMessage(RoleUser, text) }

// Assistant returns an assistant message with a single text part.
func Assistant(text string) Message { return textMessage(RoleAssistant, text) }

// ToolResult returns a tool message answering the call with the given id.
func ToolResult(callID, text string) Message {
	m := textMessage(RoleTool, text)
	m.ToolCallID = callID
	return m
}

// AssistantToolCalls returns an assistant message that only requests tools.
func AssistantToolCalls(calls oneormany.OneOrMany[ToolCall]) Message {
	return Message{Role: RoleAssistant, ToolCalls: &calls}
}

// Text joins the payloads of every content part with a single space.
// It returns "" when the message has no content.
func (m Message) Text() string {
	if m.Content == nil {
		return ""
	}
	parts := oneormany.Map(*m.Content, Content.String)
	return strings.Join(parts.Slice(), " ")
}

// Validate reports whether m is well formed.
func (m Message) Validate() error {
	switch m.Role {
	case RoleSystem, RoleUser, RoleAssistant, RoleTool:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownRole, m.Role)
	}
	if m.Content == nil && m.ToolCalls == nil {
		return fmt.Errorf("%w: role %s", ErrEmptyMessage, m.Role)
	}
	if m.Role == RoleTool && m.ToolCallID == "" {
		return ErrMissingToolCallID
	}
	return nil
}

// DecodeArguments decodes the JSON arguments of every call into A, in order.
// Decoding stops at the first call whose arguments do not fit A.
//
//	type weatherArgs struct{ City string `json:"city"` }
//	args, err := chat.DecodeArguments[weatherArgs](*msg.ToolCalls)
func DecodeArguments[A any](calls oneormany.OneOrMany[ToolCall]) (oneormany.OneOrMany[A], error) {
	return oneormany.TryMap(calls, func(call ToolCall) (A, error) {
		var args A
		if err := json.Unmarshal([]byte(call.Function.Arguments), &args); err != nil {
			return args, fmt.Errorf("%w: %s (%s): %v", ErrInvalidArguments, call.Function.Name, call.ID, err)
		}
		return args, nil
	})
}
