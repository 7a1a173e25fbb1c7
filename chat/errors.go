package chat

import "errors"

// Sentinel errors returned by chat operations.
var (
	// ErrUnknownRole is returned by [Message.Validate] for a role outside
	// system, user, assistant and tool.
	ErrUnknownRole = errors.New("chat: unknown message role")

	// ErrUnknownContentType is returned when decoding a content part whose
	// type is neither "text" nor "refusal".
	ErrUnknownContentType = errors.New("chat: unknown content type")

	// ErrEmptyMessage is returned by [Message.Validate] when a message has
	// neither content nor tool calls.
	ErrEmptyMessage = errors.New("chat: message has no content and no tool calls")

	// ErrMissingToolCallID is returned by [Message.Validate] for a tool
	// message that does not say which call it answers.
	ErrMissingToolCallID = errors.New("chat: tool message requires a tool_call_id")

	// ErrInvalidArguments is returned by [DecodeArguments] when a tool call's
	// arguments are not valid JSON for the requested type.
	ErrInvalidArguments = errors.New("chat: invalid tool call arguments")
)
