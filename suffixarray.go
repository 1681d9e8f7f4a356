package phrasesearch

// Index is a suffix array built once over an immutable text. Build it
// with Build or BuildString; afterwards Index is read-only and safe for
// concurrent queries.
type Index struct {
	text []int32
	sa   []int32
	lcp  []int32 // component C, computed at Build time alongside sa
}

// Build constructs an Index over text using the SA-IS algorithm
// (component B), and derives its LCP array (component C) up front so
// the Index is fully immutable the moment Build returns. text is
// copied; later mutation of the caller's slice does not affect the
// index.
func Build(text []int32) *Index {
	cp := make([]int32, len(text))
	copy(cp, text)
	sa := buildSuffixArray(cp)
	return &Index{text: cp, sa: sa, lcp: kasai(cp, sa)}
}

// BuildString decodes s with CodeUnits and builds an Index over it.
func BuildString(s string) *Index {
	return Build(CodeUnits(s))
}

// Len returns n, the number of code units in the indexed text.
func (ix *Index) Len() int {
	return len(ix.text)
}

// Text returns the indexed text. Callers must not mutate the returned
// slice; it is the Index's own backing array.
func (ix *Index) Text() []int32 {
	return ix.text
}

// SuffixArray returns SA, the permutation of [0,n) produced at build
// time. Callers must not mutate the returned slice.
func (ix *Index) SuffixArray() []int32 {
	return ix.sa
}

// MaxCodeUnit returns the largest code unit in the indexed text, or -1
// for an empty text.
func (ix *Index) MaxCodeUnit() int32 {
	return maxCodeUnit(ix.text)
}

// Rank returns R, the inverse permutation of SA (R[SA[i]] = i), computed
// on demand.
func (ix *Index) Rank() []int32 {
	r := make([]int32, len(ix.sa))
	for i, s := range ix.sa {
		r[s] = int32(i)
	}
	return r
}
