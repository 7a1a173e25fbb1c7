package oneormany

import "iter"

// This file contains the three iterators over a OneOrMany. They share one
// traversal order (head, then tail) and differ only in what they hand out:
//
//	Iter     → T   (copies; the collection is untouched)
//	IterMut  → *T  (pointers into the collection's storage)
//	IntoIter → T   (ownership moves to the caller, one element at a time)

// Iter is a read-only cursor returned by [OneOrMany.Iter].
type Iter[T any] struct {
	first   T
	started bool
	rest    []T
	pos     int
}

// Iter returns a cursor positioned before the head.
// Call Iter again to restart.
func (o OneOrMany[T]) Iter() *Iter[T] {
	return &Iter[T]{first: o.first, rest: o.rest}
}

// Next returns the next item, or false once every item has been returned.
func (it *Iter[T]) Next() (T, bool) {
	if !it.started {
		it.started = true
		return it.first, true
	}
	if it.pos < len(it.rest) {
		item := it.rest[it.pos]
		it.pos++
		return item, true
	}
	var zero T
	return zero, false
}

// IterMut is a cursor over pointers into a OneOrMany, returned by
// [OneOrMany.IterMut].
type IterMut[T any] struct {
	first *T
	rest  []T
	pos   int
}

// IterMut returns a cursor whose pointers address o's own storage.
// Writes through them are visible to later reads of o. Pushing to or
// inserting into o while the cursor is live may detach it from o's storage.
func (o *OneOrMany[T]) IterMut() *IterMut[T] {
	return &IterMut[T]{first: &o.first, rest: o.rest}
}

// Next returns a pointer to the next item, or false once exhausted.
func (it *IterMut[T]) Next() (*T, bool) {
	if it.first != nil {
		p := it.first
		it.first = nil
		return p, true
	}
	if it.pos < len(it.rest) {
		p := &it.rest[it.pos]
		it.pos++
		return p, true
	}
	return nil, false
}

// IntoIter is a consuming cursor returned by [OneOrMany.IntoIter].
type IntoIter[T any] struct {
	first    T
	hasFirst bool
	rest     []T
	pos      int
}

// IntoIter takes o by value and returns a cursor that yields each item
// exactly once. Slots are released as they are yielded, so the cursor stops
// referencing an item as soon as the caller has it.
func (o OneOrMany[T]) IntoIter() *IntoIter[T] {
	rest := make([]T, len(o.rest))
	copy(rest, o.rest)
	return &IntoIter[T]{first: o.first, hasFirst: true, rest: rest}
}

// Next moves the next item out of the cursor, or returns false once empty.
func (it *IntoIter[T]) Next() (T, bool) {
	var zero T
	if it.hasFirst {
		item := it.first
		it.first, it.hasFirst = zero, false
		return item, true
	}
	if it.pos < len(it.rest) {
		item := it.rest[it.pos]
		it.rest[it.pos] = zero
		it.pos++
		return item, true
	}
	it.rest, it.pos = nil, 0
	return zero, false
}

// Len reports how many items the cursor has yet to yield.
func (it *IntoIter[T]) Len() int {
	n := len(it.rest) - it.pos
	if it.hasFirst {
		n++
	}
	return n
}

// ─────────────────────────────────────────────────────────────────────────────
// Range-over-func adapters
// ─────────────────────────────────────────────────────────────────────────────

// All returns an iterator over (index, item) pairs, head first.
func (o OneOrMany[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if !yield(0, o.first) {
			return
		}
		for i, item := range o.rest {
			if !yield(i+1, item) {
				return
			}
		}
	}
}

// Values returns an iterator over the items, head first.
func (o OneOrMany[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := o.Iter()
		for item, ok := it.Next(); ok; item, ok = it.Next() {
			if !yield(item) {
				return
			}
		}
	}
}

// Pointers returns an iterator over pointers to the items, head first.
//
//	for p := range o.Pointers() {
//	    *p = strings.ToUpper(*p)
//	}
func (o *OneOrMany[T]) Pointers() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		it := o.IterMut()
		for p, ok := it.Next(); ok; p, ok = it.Next() {
			if !yield(p) {
				return
			}
		}
	}
}

// Drain returns a single-use iterator that moves the items out of o.
// Ranging over it a second time yields nothing.
func (o OneOrMany[T]) Drain() iter.Seq[T] {
	it := o.IntoIter()
	return func(yield func(T) bool) {
		for item, ok := it.Next(); ok; item, ok = it.Next() {
			if !yield(item) {
				return
			}
		}
	}
}
