// Package phrasesearch is an in-memory phrase-search engine over a single
// Unicode text. A text is indexed once into a suffix array (component B,
// SA-IS); single substrings are located by double binary search on that
// array (component D); and grouped AND/OR queries with a proximity
// tolerance are answered by folding the per-pattern occurrence lists
// through a two-pointer proximity combinator (component F).
//
// The index is built once and is immutable afterwards: Search and
// SearchGroup only read the underlying text and suffix array, so an
// *Index may be queried concurrently from multiple goroutines.
package phrasesearch
