package transcript

import "errors"

var (
	// ErrUnknownFormat is returned for an encoding other than JSON or YAML.
	ErrUnknownFormat = errors.New("transcript: unknown format")

	// ErrInvalidMessage wraps a validation failure together with the
	// position of the offending message.
	ErrInvalidMessage = errors.New("transcript: invalid message")
)
