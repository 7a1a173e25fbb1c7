package oneormany

// This file contains package-level generic functions. Go methods cannot
// introduce type parameters, so transforms that change the element type and
// helpers that need a stricter constraint than any live here.

// Map applies fn to every item, head first, and returns a OneOrMany of the
// results. The length is preserved, so Map cannot fail.
//
//	lengths := oneormany.Map(words, func(s string) int { return len(s) })
func Map[T, U any](o OneOrMany[T], fn func(T) U) OneOrMany[U] {
	out := OneOrMany[U]{first: fn(o.first)}
	if len(o.rest) > 0 {
		out.rest = make([]U, len(o.rest))
		for i, item := range o.rest {
			out.rest[i] = fn(item)
		}
	}
	return out
}

// TryMap is the fallible form of [Map]. Items are visited head first; the
// first error returned by fn is passed through unchanged and no further
// items are visited.
//
//	nums, err := oneormany.TryMap(raw, strconv.Atoi)
func TryMap[T, U any](o OneOrMany[T], fn func(T) (U, error)) (OneOrMany[U], error) {
	first, err := fn(o.first)
	if err != nil {
		return OneOrMany[U]{}, err
	}
	out := OneOrMany[U]{first: first}
	if len(o.rest) > 0 {
		out.rest = make([]U, len(o.rest))
		for i, item := range o.rest {
			if out.rest[i], err = fn(item); err != nil {
				return OneOrMany[U]{}, err
			}
		}
	}
	return out, nil
}

// Merge concatenates items in order into a single OneOrMany.
// Every input is non-empty, so the only failure is an empty items slice,
// reported as [ErrEmptyList].
//
//	merged, _ := oneormany.Merge([]oneormany.OneOrMany[string]{ab, oneormany.One("c")})
//	// → [a b c]
func Merge[T any](items []OneOrMany[T]) (OneOrMany[T], error) {
	if len(items) == 0 {
		return OneOrMany[T]{}, ErrEmptyList
	}
	total := 0
	for _, o := range items {
		total += o.Len()
	}
	out := OneOrMany[T]{first: items[0].first}
	out.rest = make([]T, 0, total-1)
	out.rest = append(out.rest, items[0].rest...)
	for _, o := range items[1:] {
		out.rest = append(out.rest, o.first)
		out.rest = append(out.rest, o.rest...)
	}
	return out, nil
}

// Equal reports whether a and b hold equal items in the same order.
func Equal[T comparable](a, b OneOrMany[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like [Equal] but compares items with eq.
func EqualFunc[T, U any](a OneOrMany[T], b OneOrMany[U], eq func(T, U) bool) bool {
	if len(a.rest) != len(b.rest) || !eq(a.first, b.first) {
		return false
	}
	for i := range a.rest {
		if !eq(a.rest[i], b.rest[i]) {
			return false
		}
	}
	return true
}
