package phrasesearch

// DefaultProximity is the default proximity tolerance md used by
// SearchGroupDefault, matching the source's default.
const DefaultProximity = 5

// combine merges two sorted, duplicate-free position lists using the
// proximity tolerance md (component F). Positions within md of each
// other are treated as co-occurring and collapse into a single emitted
// position, the smaller of the pair; ties count as a match. This keeps
// the source's single-advance-per-match limitation: a position in a
// pairs with at most one position in b, never every position in b
// within md of it (spec §9 Open Question, resolved in DESIGN.md).
func combine(a, b []int, md int, kind Kind) []int {
	out := make([]int, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		da := a[i] - b[j]
		if da < 0 {
			da = -da
		}
		if da <= md {
			if a[i] < b[j] {
				out = append(out, a[i])
			} else {
				out = append(out, b[j])
			}
			i++
			j++
			continue
		}
		if a[i] < b[j] {
			if kind == Or {
				out = append(out, a[i])
			}
			i++
			continue
		}
		if kind == Or {
			out = append(out, b[j])
		}
		j++
	}
	if kind == Or {
		out = append(out, a[i:]...)
		out = append(out, b[j:]...)
	}
	return out
}

// fullRange returns [0, 1, ..., n-1], the result of evaluating an empty
// group (spec §8 property 9).
func fullRange(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// SearchGroup evaluates g against the indexed text with proximity
// tolerance md: occurrence lists for each pattern are computed with
// Search, then folded left to right through combine. A negative md is
// clamped to 0. An empty group matches every position in the text.
func (ix *Index) SearchGroup(g Group, md int) []int {
	if md < 0 {
		md = 0
	}
	if len(g.Patterns) == 0 {
		return fullRange(ix.Len())
	}
	acc := ix.Search(g.Patterns[0])
	for _, p := range g.Patterns[1:] {
		acc = combine(acc, ix.Search(p), md, g.Kind)
	}
	return acc
}

// SearchGroupDefault evaluates g with the default proximity tolerance.
func (ix *Index) SearchGroupDefault(g Group) []int {
	return ix.SearchGroup(g, DefaultProximity)
}
