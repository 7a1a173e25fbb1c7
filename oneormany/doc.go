// Package oneormany provides [OneOrMany][T], an ordered collection that can
// never be empty, together with a permissive JSON/YAML codec.
//
// # Overview
//
// A OneOrMany is a mandatory head element plus a (possibly empty) tail:
//
//	tools := oneormany.One("search")
//	tools.Push("calculator")
//	tools.Len() // → 2
//
//	parts, err := oneormany.Many([]string{"a", "b", "c"})
//	if errors.Is(err, oneormany.ErrEmptyList) {
//	    // the input slice was empty
//	}
//
// Because the head is a plain field rather than slice index 0, there is no
// code path that yields an empty value. Even the zero value holds exactly
// one (zero-valued) element.
//
// # Iteration
//
// Three iterators walk the same order (head, then tail):
//
//   - [OneOrMany.Iter] / [OneOrMany.Values] yield copies of the elements.
//   - [OneOrMany.IterMut] / [OneOrMany.Pointers] yield pointers into the
//     container's own storage, so writes through them are visible later.
//   - [OneOrMany.IntoIter] / [OneOrMany.Drain] take the container by value and
//     hand every element out exactly once.
//
// # Type-transforming operations
//
// As with any generic Go type, methods cannot introduce new type parameters,
// so [Map], [TryMap] and [Merge] are package-level functions.
//
// # Wire format
//
// Encoding always produces a sequence:
//
//	json.Marshal(oneormany.One("hello")) // → ["hello"]
//
// Decoding accepts three shapes and normalizes all of them:
//
//	["a", "b"]          → [a b]
//	"a"                 → [a]
//	{"type": "text"}    → [{text}]   (T decoded from the object)
//
// An empty sequence fails with [ErrInvalidLength]; null fails with
// [ErrUnsupportedShape]. Optional fields should be declared as
// *OneOrMany[T] so that an absent or null value leaves the pointer nil.
//
// YAML differs on null: yaml.v3 does not call UnmarshalYAML for a null
// value, so a null on a value field leaves the zero OneOrMany, which holds
// one zero T. Null entries inside a sequence decode to zero T in both
// formats.
package oneormany
