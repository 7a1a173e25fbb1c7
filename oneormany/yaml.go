package oneormany

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// yamlKindNames names node kinds for error messages.
var yamlKindNames = map[yaml.Kind]string{
	yaml.DocumentNode: "document",
	yaml.SequenceNode: "sequence",
	yaml.MappingNode:  "mapping",
	yaml.ScalarNode:   "scalar",
	yaml.AliasNode:    "alias",
}

// MarshalYAML encodes o as a YAML sequence, head first.
// It implements [yaml.Marshaler].
func (o OneOrMany[T]) MarshalYAML() (any, error) {
	return o.Slice(), nil
}

// UnmarshalYAML decodes a sequence of T, a scalar T or a mapping T.
// It implements [yaml.Unmarshaler]. Errors carry the node position.
//
// Null sequence entries decode to T's zero value, as with encoding/json.
// yaml.v3 zeroes a null value itself without calling UnmarshalYAML, so a
// null only reaches this method when it is invoked on a node directly.
func (o *OneOrMany[T]) UnmarshalYAML(node *yaml.Node) error {
	for node.Kind == yaml.DocumentNode && len(node.Content) == 1 {
		node = node.Content[0]
	}
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}

	switch node.Kind {
	case yaml.SequenceNode:
		if len(node.Content) == 0 {
			return fmt.Errorf("line %d, column %d: %w", node.Line, node.Column, ErrInvalidLength)
		}
		// Decode child by child: yaml.v3 drops null entries when decoding a
		// whole sequence into []T, and a null must stay a zero-valued item.
		items := make([]T, 0, len(node.Content))
		for _, child := range node.Content {
			var item T
			if err := child.Decode(&item); err != nil {
				return err
			}
			items = append(items, item)
		}
		return o.setItems(items)
	case yaml.ScalarNode:
		if node.ShortTag() == "!!null" {
			break
		}
		fallthrough
	case yaml.MappingNode:
		var item T
		if err := node.Decode(&item); err != nil {
			return err
		}
		*o = One(item)
		return nil
	}

	got, ok := yamlKindNames[node.Kind]
	if !ok {
		got = fmt.Sprintf("kind %d", node.Kind)
	}
	if node.Kind == yaml.ScalarNode {
		got = "null"
	}
	return fmt.Errorf("line %d, column %d: %w: got %s", node.Line, node.Column, ErrUnsupportedShape, got)
}
