package oneormany_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/Jarekkkkk/rig/oneormany"
)

func TestMapFunc(t *testing.T) {
	got := oneormany.Map(strs("a", "bb", "ccc"), func(s string) int { return len(s) })
	assertSlice(t, got.Slice(), []int{1, 2, 3})

	single := oneormany.Map(oneormany.One(21), func(n int) int { return n * 2 })
	if single.Len() != 1 || single.First() != 42 {
		t.Fatalf("Map(One(21)) = %v; want [42]", single.Slice())
	}
}

func TestMapPreservesLength(t *testing.T) {
	for n := 1; n <= 20; n++ {
		o := oneormany.One(0)
		for i := 1; i < n; i++ {
			o.Push(i)
		}
		if got := oneormany.Map(o, strconv.Itoa).Len(); got != n {
			t.Fatalf("Map on %d items produced %d", n, got)
		}
	}
}

func TestTryMapFunc(t *testing.T) {
	got, err := oneormany.TryMap(strs("1", "2", "3"), strconv.Atoi)
	if err != nil {
		t.Fatal(err)
	}
	assertSlice(t, got.Slice(), []int{1, 2, 3})
}

func TestTryMapFailsOnHead(t *testing.T) {
	errBoom := errors.New("boom")
	calls := 0
	_, err := oneormany.TryMap(strs("x", "y", "z"), func(s string) (int, error) {
		calls++
		return 0, errBoom
	})
	if err != errBoom {
		t.Fatalf("TryMap error = %v; want the op's error unchanged", err)
	}
	if calls != 1 {
		t.Fatalf("op called %d times; want 1", calls)
	}
}

func TestTryMapShortCircuits(t *testing.T) {
	var seen []string
	_, err := oneormany.TryMap(strs("1", "oops", "3", "4"), func(s string) (int, error) {
		seen = append(seen, s)
		return strconv.Atoi(s)
	})
	var numErr *strconv.NumError
	if !errors.As(err, &numErr) {
		t.Fatalf("TryMap error = %v; want *strconv.NumError", err)
	}
	assertSlice(t, seen, []string{"1", "oops"})
}

func TestMergeFunc(t *testing.T) {
	merged, err := oneormany.Merge([]oneormany.OneOrMany[string]{
		strs("hello", "word"),
		oneormany.One("sup"),
	})
	if err != nil {
		t.Fatal(err)
	}
	if merged.Len() != 3 {
		t.Fatalf("Len() = %d; want 3", merged.Len())
	}
	assertSlice(t, merged.Slice(), []string{"hello", "word", "sup"})
}

func TestMergeSingle(t *testing.T) {
	src := strs("a", "b")
	merged, err := oneormany.Merge([]oneormany.OneOrMany[string]{src})
	if err != nil {
		t.Fatal(err)
	}
	merged.Push("c")
	assertSlice(t, src.Slice(), []string{"a", "b"})
	assertSlice(t, merged.Slice(), []string{"a", "b", "c"})
}

func TestMergeEmpty(t *testing.T) {
	if _, err := oneormany.Merge([]oneormany.OneOrMany[int]{}); !errors.Is(err, oneormany.ErrEmptyList) {
		t.Fatalf("Merge([]) error = %v; want ErrEmptyList", err)
	}
	if _, err := oneormany.Merge[int](nil); !errors.Is(err, oneormany.ErrEmptyList) {
		t.Fatalf("Merge(nil) error = %v; want ErrEmptyList", err)
	}
}

func TestEqual(t *testing.T) {
	if !oneormany.Equal(strs("a", "b"), strs("a", "b")) {
		t.Fatal("equal collections reported unequal")
	}
	if oneormany.Equal(strs("a", "b"), strs("a")) {
		t.Fatal("different lengths reported equal")
	}
	if oneormany.Equal(strs("a", "b"), strs("b", "a")) {
		t.Fatal("different order reported equal")
	}
	if !oneormany.EqualFunc(strs("1", "2"), oneormany.Map(strs("1", "2"), func(s string) int {
		n, _ := strconv.Atoi(s)
		return n
	}), func(s string, n int) bool { return s == strconv.Itoa(n) }) {
		t.Fatal("EqualFunc failed")
	}
}
