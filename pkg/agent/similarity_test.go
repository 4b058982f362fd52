package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name     string
		a, b     string
		expected float64
	}{
		{name: "identical strings", a: "postgres", b: "postgres", expected: 1},
		{name: "both empty count as identical", a: "", b: "", expected: 1},
		{name: "one empty", a: "go", b: "", expected: 0},
		{name: "no common characters", a: "go", b: "干", expected: 0},
		{name: "plural variant", a: "python", b: "pythons", expected: 12.0 / 13.0},
		{name: "prefix pair", a: "postgres", b: "postgresql", expected: 16.0 / 18.0},
		{name: "subsequence not substring", a: "abcdef", b: "acf", expected: 6.0 / 9.0},
		{name: "order matters for subsequences", a: "ab", b: "ba", expected: 2.0 / 4.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, similarity(tt.a, tt.b), 1e-9)

			// Symmetric in its arguments.
			assert.InDelta(t, tt.expected, similarity(tt.b, tt.a), 1e-9)
		})
	}
}

func TestSimilarity_MultiByte(t *testing.T) {
	// Rune-based comparison: é is one position, not two bytes.
	assert.InDelta(t, 6.0/8.0, similarity("café", "cafe"), 1e-9)
}

func TestLCSLength(t *testing.T) {
	tests := []struct {
		name     string
		a, b     string
		expected int
	}{
		{name: "empty inputs", a: "", b: "", expected: 0},
		{name: "one empty", a: "abc", b: "", expected: 0},
		{name: "full match", a: "abc", b: "abc", expected: 3},
		{name: "interleaved", a: "abcbdab", b: "bdcaba", expected: 4},
		{name: "repeated characters", a: "aaaa", b: "aa", expected: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, lcsLength([]rune(tt.a), []rune(tt.b)))
		})
	}
}
