package phrasesearch

import "sort"

// compareTruncated compares a suffix against a pattern of length m,
// comparing only the first m code units of the suffix (or fewer, if the
// suffix is shorter than m). A suffix shorter than the pattern that
// matches over its own length is treated as less than the pattern
// (component D's "shorter-is-less" tie-break).
func compareTruncated(suffix, pattern []int32) int {
	n := len(suffix)
	if n > len(pattern) {
		n = len(pattern)
	}
	for i := 0; i < n; i++ {
		if suffix[i] < pattern[i] {
			return -1
		}
		if suffix[i] > pattern[i] {
			return 1
		}
	}
	if len(suffix) < len(pattern) {
		return -1
	}
	return 0
}

// Search returns occ(pattern): the sorted, ascending list of every
// starting position i in the indexed text with text[i:i+len(pattern)]
// == pattern (component D). An empty pattern, a pattern longer than the
// text, or an empty text all yield an empty list.
func (ix *Index) Search(pattern []int32) []int {
	m := len(pattern)
	n := len(ix.text)
	if m == 0 || n == 0 || m > n {
		return []int{}
	}
	sa := ix.sa
	text := ix.text

	// lo = smallest i such that suffix(SA[i]) truncated to m is >= pattern.
	lo := sort.Search(len(sa), func(i int) bool {
		return compareTruncated(text[sa[i]:], pattern) >= 0
	})
	// hi = smallest i such that suffix(SA[i]) truncated to m is > pattern.
	hi := lo + sort.Search(len(sa)-lo, func(i int) bool {
		return compareTruncated(text[sa[lo+i]:], pattern) > 0
	})

	out := make([]int, hi-lo)
	for i, p := range sa[lo:hi] {
		out[i] = int(p)
	}
	sort.Ints(out)
	return out
}

// SearchString decodes pattern with CodeUnits and searches for it.
func (ix *Index) SearchString(pattern string) []int {
	return ix.Search(CodeUnits(pattern))
}
