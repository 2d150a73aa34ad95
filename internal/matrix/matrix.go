// Package matrix enumerates feature combinations and shapes them into a
// GitHub Actions build matrix.
package matrix

import (
	"encoding/json"
	"iter"
	"strings"
)

// outputPrefix is the workflow output variable the matrix is assigned to.
const outputPrefix = "matrix="

// Entry is one build configuration: the comma-joined feature names to
// enable for that job. The empty string means no optional features.
type Entry struct {
	Features string `json:"features"`
}

// Matrix is the complete set of build configurations, shaped for GitHub
// Actions' include-style matrix expansion.
type Matrix struct {
	Include []Entry `json:"include"`
}

// Combinations yields every subset of features, smallest first: the
// empty set, then single features, then pairs, up to the full set.
// Within each size, subsets appear in the same relative order as the
// input. The sequence is deterministic and can be ranged over more than
// once; 2^len(features) subsets in total.
func Combinations(features []string) iter.Seq[[]string] {
	return func(yield func([]string) bool) {
		for k := 0; k <= len(features); k++ {
			if !chooseK(features, k, yield) {
				return
			}
		}
	}
}

// chooseK yields all k-element subsets of features in index order.
// Returns false if the consumer stopped early.
func chooseK(features []string, k int, yield func([]string) bool) bool {
	if k == 0 {
		return yield(nil)
	}

	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}

	n := len(features)
	for {
		subset := make([]string, k)
		for i, j := range idx {
			subset[i] = features[j]
		}
		if !yield(subset) {
			return false
		}

		// Advance the rightmost index that still has room, then reset
		// everything after it.
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return true
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

// Build materializes the full matrix for the given feature list.
func Build(features []string) Matrix {
	m := Matrix{Include: make([]Entry, 0, 1<<len(features))}
	for subset := range Combinations(features) {
		m.Include = append(m.Include, Entry{Features: strings.Join(subset, ",")})
	}
	return m
}

// Encode serializes the matrix as a workflow output assignment: the
// literal "matrix=" followed by the compact JSON encoding, no trailing
// newline.
func (m Matrix) Encode() ([]byte, error) {
	payload, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return append([]byte(outputPrefix), payload...), nil
}
