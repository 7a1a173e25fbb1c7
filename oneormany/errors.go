package oneormany

import (
	"errors"
	"fmt"
)

// expecting describes the accepted decode shapes in error messages.
const expecting = "a sequence of at least one element or a single element"

// Sentinel errors returned by OneOrMany constructors, mutators and decoders.
var (
	// ErrEmptyList is returned when a OneOrMany would be built from zero
	// elements: by [Many], [Collect] and [Merge].
	ErrEmptyList = errors.New("oneormany: cannot create OneOrMany from an empty collection")

	// ErrIndexOutOfRange is returned by [OneOrMany.Insert] when the index is
	// outside [0, Len()].
	ErrIndexOutOfRange = errors.New("oneormany: index out of range")

	// ErrInvalidLength is returned when decoding an empty sequence.
	// It matches [ErrEmptyList] under [errors.Is].
	ErrInvalidLength = fmt.Errorf("oneormany: invalid length 0, expected %s: %w", expecting, ErrEmptyList)

	// ErrUnsupportedShape is returned when the encoded value is neither a
	// sequence, a scalar nor a keyed value (for example JSON null).
	ErrUnsupportedShape = errors.New("oneormany: unsupported shape, expected " + expecting)
)
