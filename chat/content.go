package chat

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ContentType discriminates content parts.
type ContentType string

const (
	ContentText    ContentType = "text"
	ContentRefusal ContentType = "refusal"
)

// Content is one part of a message body.
//
// A bare string decodes as a text part, so both of these are the same:
//
//	"hello"
//	{"type": "text", "text": "hello"}
type Content struct {
	Type    ContentType `json:"type" yaml:"type"`
	Text    string      `json:"text,omitempty" yaml:"text,omitempty"`
	Refusal string      `json:"refusal,omitempty" yaml:"refusal,omitempty"`
}

// Text returns a text part.
func Text(s string) Content { return Content{Type: ContentText, Text: s} }

// Refusal returns a refusal part.
func Refusal(s string) Content { return Content{Type: ContentRefusal, Refusal: s} }

// String returns the human-readable payload of the part.
func (c Content) String() string {
	if c.Type == ContentRefusal {
		return c.Refusal
	}
	return c.Text
}

// contentFields has Content's fields without its methods, for decoding.
type contentFields Content

func (c *Content) set(fields contentFields) error {
	switch fields.Type {
	case ContentText, ContentRefusal:
	case "":
		// Parts without a type are text.
		fields.Type = ContentText
	default:
		return fmt.Errorf("%w: %q", ErrUnknownContentType, fields.Type)
	}
	*c = Content(fields)
	return nil
}

// normalized reports c with an empty type treated as text. A null part is
// left zero by yaml.v3 and decoded as Text("") by encoding/json; both must
// encode the same way.
func (c Content) normalized() contentFields {
	if c.Type == "" {
		c.Type = ContentText
	}
	return contentFields(c)
}

// MarshalJSON encodes c, writing an untyped part as text.
func (c Content) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.normalized())
}

// MarshalYAML encodes c, writing an untyped part as text.
func (c Content) MarshalYAML() (any, error) {
	return c.normalized(), nil
}

// UnmarshalJSON decodes a bare string or a typed part object.
func (c *Content) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*c = Text(s)
		return nil
	}
	var fields contentFields
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	return c.set(fields)
}

// UnmarshalYAML decodes a scalar or a typed part mapping.
func (c *Content) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}
		*c = Text(s)
		return nil
	}
	var fields contentFields
	if err := node.Decode(&fields); err != nil {
		return err
	}
	return c.set(fields)
}
