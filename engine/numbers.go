package engine

import (
	"fmt"
	"math"
)

// ============================================================================
// NUMBER QUERIES — Even numbers and squares of multiples of 7
// ============================================================================
// Note the asymmetry below 1: EvenNumbers fails, Squares returns empty.
// ============================================================================

// EvenNumbers returns the even numbers i with 1 <= i < exclusiveUpperLimit,
// ascending. A limit below 1 is rejected with ErrOutOfRange.
func EvenNumbers(exclusiveUpperLimit int) ([]int, error) {
	if exclusiveUpperLimit < 1 {
		return nil, fmt.Errorf("even numbers: exclusive upper limit %d is lower than 1: %w",
			exclusiveUpperLimit, ErrOutOfRange)
	}

	evens := Where(Range(1, exclusiveUpperLimit-1), func(i int) bool { return i%2 == 0 })
	return Collect(evens), nil
}

// Squares returns the squares of the numbers i with 1 <= i < exclusiveUpperLimit
// that are divisible by 7, in descending order. A limit below 1 yields an
// empty result. A square beyond the int32 range fails with ErrOverflow.
func Squares(exclusiveUpperLimit int) ([]int, error) {
	if exclusiveUpperLimit < 1 {
		return []int{}, nil
	}

	multiples := Where(Range(1, exclusiveUpperLimit-1), func(i int) bool { return i%7 == 0 })
	squares, err := TrySelect(multiples, checkedSquare)
	if err != nil {
		return nil, fmt.Errorf("squares below %d: %w", exclusiveUpperLimit, err)
	}
	return OrderByDescending(squares), nil
}

// checkedSquare returns i*i, or ErrOverflow when the product exceeds
// math.MaxInt32. The bound is checked before multiplying.
func checkedSquare(i int) (int, error) {
	if i != 0 && i > math.MaxInt32/i {
		return 0, fmt.Errorf("square of %d exceeds %d: %w", i, math.MaxInt32, ErrOverflow)
	}
	return i * i, nil
}
