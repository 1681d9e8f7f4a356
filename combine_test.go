package phrasesearch

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCombineAndDisjoint(t *testing.T) {
	a := []int{0, 10, 20}
	b := []int{100, 200}
	assert.Equal(t, []int{}, combine(a, b, 5, And))
}

func TestCombineAndWithinTolerance(t *testing.T) {
	a := []int{8}
	b := []int{11}
	// Smaller of the paired starts is emitted (spec §4.F, resolved open
	// question in DESIGN.md): |8-11|=3 <= md=5, emits min(8,11)=8.
	assert.Equal(t, []int{8}, combine(a, b, 5, And))
}

func TestCombineOrSingleton(t *testing.T) {
	a := []int{1, 3, 5}
	assert.Equal(t, a, combine(a, []int{}, 5, Or))
	assert.Equal(t, a, combine([]int{}, a, 5, Or))
}

func TestCombineOrDedupesCoincident(t *testing.T) {
	a := []int{4, 12}
	b := []int{4, 12}
	// Ties count as a match (spec §4.F): each coincident pair collapses
	// into a single emitted position, not two.
	assert.Equal(t, []int{4, 12}, combine(a, b, 0, Or))
}

func TestCombineOutputSorted(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 100; trial++ {
		a := randSortedUnique(rng, 20, 200)
		b := randSortedUnique(rng, 20, 200)
		for _, kind := range []Kind{And, Or} {
			out := combine(a, b, rng.Intn(10), kind)
			for i := 1; i < len(out); i++ {
				assert.True(t, out[i-1] < out[i], "output not strictly increasing")
			}
		}
	}
}

func TestCombineORFarApartEqualsExactUnion(t *testing.T) {
	// When every pair of positions across the two lists is farther apart
	// than md, no collapsing can occur and OR must equal the exact,
	// deduplicated union (spec §8 combinator law, disjoint case).
	rng := rand.New(rand.NewSource(13))
	for trial := 0; trial < 50; trial++ {
		a := randSortedUnique(rng, 10, 50)
		bBase := randSortedUnique(rng, 10, 50)
		b := make([]int, len(bBase))
		for i, v := range bBase {
			b[i] = v + 100000 // push far away from a's range
		}
		out := combine(a, b, 5, Or)
		assert.Equal(t, unionSorted(a, b), out)
	}
}

func randSortedUnique(rng *rand.Rand, maxLen, maxVal int) []int {
	set := map[int]struct{}{}
	n := rng.Intn(maxLen)
	for i := 0; i < n; i++ {
		set[rng.Intn(maxVal)] = struct{}{}
	}
	out := make([]int, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	unionSortedInPlace(out)
	return out
}

func unionSortedInPlace(s []int) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}

