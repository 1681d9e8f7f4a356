package phrasesearch

import (
	"math/rand"
	"slices"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func genRandText8(size int) []int32 {
	input := make([]int32, size)
	for i := 0; i < size; i++ {
		input[i] = rand.Int31n(255)
	}
	return input
}

func genRandText32(size int) []int32 {
	input := make([]int32, size)
	for i := 0; i < size; i++ {
		input[i] = rand.Int31()
	}
	return input
}

// naiveSuffixArray sorts suffixes by full comparison; used as the
// conformance-identical O(n^2 log n) reference spec.md §4.B permits as
// a test double.
func naiveSuffixArray(text []int32) []int32 {
	sa := make([]int32, len(text))
	for i := range sa {
		sa[i] = int32(i)
	}
	sort.Slice(sa, func(i, j int) bool {
		return slices.Compare(text[sa[i]:], text[sa[j]:]) < 0
	})
	return sa
}

func TestSAIS(t *testing.T) {
	tests := map[string][]int32{
		"empty string":      {},
		"single character":  {100},
		"same characters":   []int32("aaaaaaaaaaaaaaaaaaaaa"),
		"1 LMS":             []int32("aabab"),
		"2 LMS":             []int32("aababab"),
		"banana":            []int32("banana"),
		"repeated pattern":  {1, 2, 1, 2, 1, 2, 1, 2},
		"reverse sorted":    {5, 4, 3, 2, 1},
		"abracadabra":       []int32("abracadabra"),
		"DNA-like":          []int32("ACGTGCCTAGCCTACCGTGCC"),
		"min/max edges":     {0, 255},
		"alternating":       {3, 1, 3, 1, 3, 1},
		"zero characters":   {0, 0, 0, 1, 1, 1},
		"long random 8":     genRandText8(1000),
		"long random 32":    genRandText32(1000),
	}

	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, naiveSuffixArray(input), buildSuffixArray(input))
		})
	}
}

func TestSuffixArrayInvariants(t *testing.T) {
	texts := [][]int32{
		[]int32("banana"),
		[]int32("mississippi"),
		genRandText8(500),
		genRandText32(500),
	}
	for _, text := range texts {
		ix := Build(text)
		n := ix.Len()
		sa := ix.SuffixArray()

		assert.Equal(t, n, len(sa))

		seen := make([]bool, n)
		for _, p := range sa {
			assert.False(t, seen[p], "SA is not a permutation: %d repeats", p)
			seen[p] = true
		}

		for i := 0; i+1 < n; i++ {
			a, b := sa[i], sa[i+1]
			assert.True(t, slices.Compare(text[a:], text[b:]) < 0, "SA not lexicographically increasing at %d", i)
		}
	}
}
