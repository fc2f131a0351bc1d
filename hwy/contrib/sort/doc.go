// Package sort computes index permutations that order a float slice from
// highest to lowest value.
//
// The data is never moved: every routine returns idx such that
// data[idx[0]] >= data[idx[1]] >= ... Equal values keep their original
// relative order, NaN values sort after every number, so all routines
// return the same permutation for the same input.
//
// # Algorithms
//
//   - IndexInterchange: selection by interchange, fewest writes, for tiny inputs
//   - IndexInsertion: insertion sort, for short or nearly ordered inputs
//   - IndexFlash: flash classification into value classes followed by a
//     merge sort of each class, for long inputs
//
// Index picks one of them by length. IndexExtended also collapses equal
// values:
//
//	import "github.com/go-jbm/jbm/hwy/contrib/sort"
//
//	values, index := sort.IndexExtended([]float64{2, 7, 2, 1})
//	// values == [7 2 1], index == [1 0 1 2]
package sort
