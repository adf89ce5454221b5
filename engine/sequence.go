package engine

import (
	"iter"
	"slices"
)

// ============================================================================
// SEQUENCE — Declarative Range / Where / TrySelect Building Blocks
// ============================================================================
// Stages are lazy iter.Seq values; nothing is materialized until a terminal
// stage (Collect, TrySelect) runs. A failing TrySelect stops the upstream
// range at the first error, so huge ranges never get allocated.
// ============================================================================

// Range yields count consecutive integers starting at start.
// count <= 0 yields nothing.
func Range(start, count int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < count; i++ {
			if !yield(start + i) {
				return
			}
		}
	}
}

// Where yields the elements of seq that satisfy pred.
func Where[T any](seq iter.Seq[T], pred func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if pred(v) && !yield(v) {
				return
			}
		}
	}
}

// TrySelect maps every element through fn and materializes the result.
// The first error aborts the walk; no partial result is returned.
func TrySelect[T, U any](seq iter.Seq[T], fn func(T) (U, error)) ([]U, error) {
	out := []U{}
	for v := range seq {
		u, err := fn(v)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, nil
}

// Collect materializes seq into a non-nil slice.
func Collect[T any](seq iter.Seq[T]) []T {
	out := []T{}
	for v := range seq {
		out = append(out, v)
	}
	return out
}

// OrderByDescending sorts xs in place from largest to smallest and returns it.
func OrderByDescending(xs []int) []int {
	slices.SortFunc(xs, func(a, b int) int {
		switch {
		case a > b:
			return -1
		case a < b:
			return 1
		}
		return 0
	})
	return xs
}
