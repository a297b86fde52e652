// Package combinations enumerates k-element subsets lazily, in lexicographic
// order of item positions.
package combinations

import (
	"iter"
	"math/big"
)

// Indices yields every k-combination of the positions 0..n-1 in lexicographic
// order, matching itertools.combinations(range(n), k). Out of range k yields
// nothing. The yielded slice is owned by the caller.
func Indices(n, k int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		if k <= 0 || k > n {
			return
		}

		idxs := make([]int, k)
		for i := range idxs {
			idxs[i] = i
		}

		for {
			if !yield(append([]int(nil), idxs...)) {
				return
			}

			// Find the rightmost index that has not reached its maximum.
			i := k - 1
			for i >= 0 && idxs[i] == i+n-k {
				i--
			}
			if i < 0 {
				return
			}

			idxs[i]++
			for j := i + 1; j < k; j++ {
				idxs[j] = idxs[j-1] + 1
			}
		}
	}
}

// Of yields every k-element subset of items, preserving the relative order of
// the items inside each subset. Each range over the returned sequence starts
// from the first combination again.
func Of[T any](items []T, k int) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		for idxs := range Indices(len(items), k) {
			comb := make([]T, k)
			for i, idx := range idxs {
				comb[i] = items[idx]
			}
			if !yield(comb) {
				return
			}
		}
	}
}

// Count returns the number of k-combinations of n items, or zero when k is
// out of range.
func Count(n, k int) *big.Int {
	if k <= 0 || k > n {
		return new(big.Int)
	}
	return new(big.Int).Binomial(int64(n), int64(k))
}
