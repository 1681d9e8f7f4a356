package phrasesearch

// CodeUnits decodes s into the 32-bit code-unit sequence the rest of the
// package operates on (component A). Code units are the Unicode code
// points of s, the only notion of "wide character" the interface needs:
// no normalization and no case folding are performed.
func CodeUnits(s string) []int32 {
	return []int32(s)
}

// maxCodeUnit returns the largest code unit present in text, or -1 for an
// empty text. It backs Index.MaxCodeUnit and CorpusIndex's separator
// choice; the suffix-array builder measures its own code-unit range
// (largest minus smallest, plus one) when picking a bucket table.
func maxCodeUnit(text []int32) int32 {
	if len(text) == 0 {
		return -1
	}
	max := text[0]
	for _, c := range text[1:] {
		if c > max {
			max = c
		}
	}
	return max
}
