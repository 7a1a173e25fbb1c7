package oneormany

import (
	"encoding/json"
	"fmt"
	"iter"
	"slices"
)

// OneOrMany is an ordered collection holding at least one item of type T.
//
// The first item lives in its own field and the remaining items in a tail
// slice, so an empty OneOrMany cannot be represented. The zero value is a
// valid one-element collection whose only item is the zero value of T.
//
// # Creating a OneOrMany
//
//	o := oneormany.One(42)
//	o, err := oneormany.Many([]int{1, 2, 3})
//	o, err := oneormany.Collect(maps.Keys(m))
//
// Many and Collect fail with [ErrEmptyList] when there is nothing to wrap.
//
// # Ownership
//
// A OneOrMany is a single-owner value. Copying it with plain assignment
// shares the tail's backing array; use [OneOrMany.Clone] for an independent
// copy. It is not safe for concurrent mutation.
type OneOrMany[T any] struct {
	first T
	rest  []T
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// One wraps a single item.
func One[T any](item T) OneOrMany[T] {
	return OneOrMany[T]{first: item}
}

// Many wraps items in their original order. The slice is copied.
// Returns [ErrEmptyList] if items is empty.
func Many[T any](items []T) (OneOrMany[T], error) {
	if len(items) == 0 {
		return OneOrMany[T]{}, ErrEmptyList
	}
	return OneOrMany[T]{first: items[0], rest: slices.Clone(items[1:])}, nil
}

// Collect drains seq into a OneOrMany.
// Returns [ErrEmptyList] if seq yields nothing.
func Collect[T any](seq iter.Seq[T]) (OneOrMany[T], error) {
	var (
		o    OneOrMany[T]
		seen bool
	)
	for item := range seq {
		if !seen {
			o.first, seen = item, true
			continue
		}
		o.rest = append(o.rest, item)
	}
	if !seen {
		return OneOrMany[T]{}, ErrEmptyList
	}
	return o, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// First returns the head item.
func (o OneOrMany[T]) First() T { return o.first }

// Rest returns a copy of every item after the head. The result is never nil.
func (o OneOrMany[T]) Rest() []T {
	out := make([]T, len(o.rest))
	copy(out, o.rest)
	return out
}

// Last returns the final item; for a single-item collection that is the head.
func (o OneOrMany[T]) Last() T {
	if len(o.rest) == 0 {
		return o.first
	}
	return o.rest[len(o.rest)-1]
}

// Get returns the item at index together with a presence flag.
func (o OneOrMany[T]) Get(index int) (T, bool) {
	switch {
	case index == 0:
		return o.first, true
	case index > 0 && index <= len(o.rest):
		return o.rest[index-1], true
	}
	var zero T
	return zero, false
}

// Len returns the number of items. It is always at least 1.
func (o OneOrMany[T]) Len() int { return 1 + len(o.rest) }

// IsEmpty always reports false. It exists so that OneOrMany satisfies
// interfaces that pair Len with IsEmpty.
func (o OneOrMany[T]) IsEmpty() bool { return false }

// Slice returns every item, head first, as a new slice.
func (o OneOrMany[T]) Slice() []T {
	out := make([]T, 0, o.Len())
	out = append(out, o.first)
	return append(out, o.rest...)
}

// Clone returns a copy that does not share storage with o.
// Items themselves are copied shallowly.
func (o OneOrMany[T]) Clone() OneOrMany[T] {
	return OneOrMany[T]{first: o.first, rest: slices.Clone(o.rest)}
}

// String returns the canonical JSON encoding, falling back to %v formatting
// when T cannot be encoded. It implements [fmt.Stringer].
func (o OneOrMany[T]) String() string {
	b, err := json.Marshal(o)
	if err != nil {
		return fmt.Sprintf("%v", o.Slice())
	}
	return string(b)
}

// ─────────────────────────────────────────────────────────────────────────────
// Mutation
// ─────────────────────────────────────────────────────────────────────────────

// Push appends item after the last element.
func (o *OneOrMany[T]) Push(item T) {
	o.rest = append(o.rest, item)
}

// Insert places item at index, shifting later items back by one.
//
// Inserting at 0 makes item the new head and demotes the previous head to
// position 1. Valid indices are 0 through Len() inclusive; any other index
// returns [ErrIndexOutOfRange] and leaves o unchanged.
func (o *OneOrMany[T]) Insert(index int, item T) error {
	if index < 0 || index > o.Len() {
		return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, index, o.Len())
	}
	if index == 0 {
		o.rest = slices.Insert(o.rest, 0, o.first)
		o.first = item
		return nil
	}
	o.rest = slices.Insert(o.rest, index-1, item)
	return nil
}
