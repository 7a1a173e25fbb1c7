package oneormany

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// shape is the outermost kind of an encoded value.
type shape int

const (
	shapeUnsupported shape = iota
	shapeSequence
	shapeScalar
	shapeKeyed
)

// jsonShape classifies data by its first significant byte. data is assumed
// to be a single well-formed JSON value, as handed to UnmarshalJSON.
func jsonShape(data []byte) (shape, string) {
	data = bytes.TrimLeft(data, " \t\r\n")
	if len(data) == 0 {
		return shapeUnsupported, "no value"
	}
	switch c := data[0]; {
	case c == '[':
		return shapeSequence, "array"
	case c == '{':
		return shapeKeyed, "object"
	case c == '"':
		return shapeScalar, "string"
	case c == 't' || c == 'f':
		return shapeScalar, "boolean"
	case c == '-' || (c >= '0' && c <= '9'):
		return shapeScalar, "number"
	case c == 'n':
		return shapeUnsupported, "null"
	}
	return shapeUnsupported, fmt.Sprintf("%q", data[0])
}

// MarshalJSON encodes o as a JSON array, head first, regardless of how o
// was built or decoded. It implements [json.Marshaler].
func (o OneOrMany[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.Slice())
}

// UnmarshalJSON decodes an array of T, a bare scalar T or a bare object T.
// It implements [json.Unmarshaler].
//
// An empty array returns [ErrInvalidLength]; null and anything else that is
// not one of those shapes returns [ErrUnsupportedShape]. Element errors are
// the ones produced by encoding/json for T.
func (o *OneOrMany[T]) UnmarshalJSON(data []byte) error {
	s, got := jsonShape(data)
	switch s {
	case shapeSequence:
		var items []T
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		return o.setItems(items)
	case shapeScalar, shapeKeyed:
		var item T
		if err := json.Unmarshal(data, &item); err != nil {
			return err
		}
		*o = One(item)
		return nil
	}
	return fmt.Errorf("%w: got %s", ErrUnsupportedShape, got)
}

// setItems replaces o with items, taking ownership of the slice.
func (o *OneOrMany[T]) setItems(items []T) error {
	if len(items) == 0 {
		return ErrInvalidLength
	}
	next := OneOrMany[T]{first: items[0]}
	if len(items) > 1 {
		next.rest = items[1:]
	}
	*o = next
	return nil
}
