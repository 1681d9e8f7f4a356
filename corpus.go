package phrasesearch

import "sort"

// CorpusIndex is the multi-document extension of Index: a generalized
// suffix array over a fixed, immutable set of texts, grounded on the
// teacher's GSA (separator-joined concatenation with per-document
// bucketing of occurrences) but rewired to answer Group queries with
// the same proximity combinator Index uses. Like Index, it is built
// once and is read-only afterwards.
type CorpusIndex struct {
	ix       *Index
	docStart []int
	docEnd   []int // exclusive, points at the document's separator
}

// DocumentHits is one document's occurrence list from a CorpusIndex
// query, with positions relative to the start of that document.
type DocumentHits struct {
	Doc       int
	Positions []int
}

// NewCorpusIndex builds a generalized suffix array over texts. Each
// text is copied; an empty texts slice yields a valid, always-empty
// CorpusIndex rather than nil, so callers don't need a nil check before
// querying it.
func NewCorpusIndex(texts [][]int32) *CorpusIndex {
	sep := corpusSeparator(texts)
	total := len(texts)
	for _, t := range texts {
		total += len(t)
	}
	joined := make([]int32, 0, total)
	docStart := make([]int, len(texts))
	docEnd := make([]int, len(texts))
	for i, t := range texts {
		docStart[i] = len(joined)
		joined = append(joined, t...)
		docEnd[i] = len(joined)
		joined = append(joined, sep)
	}
	return &CorpusIndex{ix: Build(joined), docStart: docStart, docEnd: docEnd}
}

// NewCorpusIndexStrings decodes texts with CodeUnits and builds a
// CorpusIndex over them.
func NewCorpusIndexStrings(texts []string) *CorpusIndex {
	src := make([][]int32, len(texts))
	for i, s := range texts {
		src[i] = CodeUnits(s)
	}
	return NewCorpusIndex(src)
}

// corpusSeparator picks a code unit strictly greater than every code
// unit used across texts, so it can never be mistaken for real text and
// never participates in a pattern match.
func corpusSeparator(texts [][]int32) int32 {
	var max int32 = -1
	for _, t := range texts {
		if m := maxCodeUnit(t); m > max {
			max = m
		}
	}
	return max + 1
}

// NumDocs returns the number of documents in the corpus.
func (c *CorpusIndex) NumDocs() int {
	return len(c.docStart)
}

// occurrencesByDoc runs Search once over the concatenated text and
// buckets the results by document, translating each position to be
// relative to its document's start.
func (c *CorpusIndex) occurrencesByDoc(pattern []int32) [][]int {
	out := make([][]int, len(c.docStart))
	if len(pattern) == 0 {
		return out
	}
	for _, pos := range c.ix.Search(pattern) {
		doc := sort.Search(len(c.docStart), func(i int) bool { return c.docStart[i] > pos }) - 1
		if doc < 0 || pos+len(pattern) > c.docEnd[doc] {
			continue // match spans a separator; not a real occurrence in any one document
		}
		out[doc] = append(out[doc], pos-c.docStart[doc])
	}
	return out
}

// SearchGroup evaluates g independently within each document, using the
// same proximity combinator Index.SearchGroup uses, and returns the
// non-empty per-document results in document order. An empty group
// matches every position of every document.
func (c *CorpusIndex) SearchGroup(g Group, md int) []DocumentHits {
	if md < 0 {
		md = 0
	}
	var hits []DocumentHits
	if len(g.Patterns) == 0 {
		for d := range c.docStart {
			n := c.docEnd[d] - c.docStart[d]
			if n > 0 {
				hits = append(hits, DocumentHits{Doc: d, Positions: fullRange(n)})
			}
		}
		return hits
	}

	perPattern := make([][][]int, len(g.Patterns))
	for i, p := range g.Patterns {
		perPattern[i] = c.occurrencesByDoc(p)
	}

	for d := range c.docStart {
		acc := perPattern[0][d]
		for _, pp := range perPattern[1:] {
			acc = combine(acc, pp[d], md, g.Kind)
		}
		if len(acc) > 0 {
			hits = append(hits, DocumentHits{Doc: d, Positions: acc})
		}
	}
	return hits
}

// SearchGroupDefault evaluates g against the corpus with the default
// proximity tolerance.
func (c *CorpusIndex) SearchGroupDefault(g Group) []DocumentHits {
	return c.SearchGroup(g, DefaultProximity)
}

// Search returns, per document, the sorted positions where pattern
// occurs (component D applied per document).
func (c *CorpusIndex) Search(pattern []int32) []DocumentHits {
	var hits []DocumentHits
	for d, positions := range c.occurrencesByDoc(pattern) {
		if len(positions) > 0 {
			hits = append(hits, DocumentHits{Doc: d, Positions: positions})
		}
	}
	return hits
}
