package phrasesearch

import (
	"encoding/binary"
	"hash/fnv"
	"math"
	"math/bits"
	"slices"
)

// buildSuffixArray constructs a suffix array for a code-unit sequence
// using SA-IS (component B): linear-time induced sorting driven by the
// L/S/LMS typing of the text, recursing on the reduced LMS string only
// when LMS substrings aren't already pairwise distinct.
func buildSuffixArray(text []int32) []int32 {
	if len(text) == 0 {
		return []int32{}
	}
	if len(text) == 1 {
		return []int32{0}
	}
	return induceSuffixArray(text, nil, nil, 0)
}

// bucketCursor hands out fill positions within each code unit's bucket
// range, one slot at a time, from either the head or the tail. Every
// induction pass below is written once against this interface; the two
// implementations differ only in how they index a bucket's live fill
// pointer — a dense array keyed by code-loCode for small alphabets, or
// a map keyed by raw code unit for large or sparse ones.
type bucketCursor interface {
	resetToHeads()
	resetToTails()
	takeFromHead(code int32) int32
	takeFromTail(code int32) int32
}

// induceSuffixArray types text (L-type, S-type, LMS), picks a bucket
// strategy sized to the current alphabet, and runs induced sorting
// through it. It is the recursive core of buildSuffixArray: the first
// call passes baseAlphabet 0 and a nil sa/scratch, which triggers
// allocation sized to the top-level text's own alphabet. A recursive
// call on a reduced LMS string works in a slice of the caller's sa and
// is passed the caller's scratch and an alphabet ceiling: the top-level
// alphabet size from induceDense, or the distinct-code count from
// induceSparse (whose scratch is nil when it runs at the top level).
func induceSuffixArray(text, sa, scratch []int32, baseAlphabet int32) []int32 {
	var (
		loCode, hiCode      int32 = text[0], text[0]
		cur, next, lmsCount int32
		inSRun              bool
	)
	for i := len(text) - 1; i >= 0; i-- {
		cur, next = text[i], cur
		if cur < loCode {
			loCode = cur
		}
		if cur > hiCode {
			hiCode = cur
		}
		if cur < next {
			inSRun = true
		} else if cur > next && inSRun {
			inSRun = false
			lmsCount++
		}
	}
	alphabetSize := hiCode - loCode + 1
	if sa == nil {
		baseAlphabet = alphabetSize
		sa = make([]int32, len(text))
	}
	if alphabetSize > 256 || alphabetSize > baseAlphabet {
		return induceSparse(text, sa, scratch, lmsCount)
	}
	return induceDense(text, sa, scratch, loCode, lmsCount, baseAlphabet, alphabetSize)
}

// denseBuckets is the bucketCursor for alphabets small enough (<= 256
// code units, and no larger than the top-level text's own alphabet) to
// index directly: per-code counts and the live fill pointer are plain
// int32 slices indexed by code-loCode.
type denseBuckets struct {
	counts, slots []int32
	loCode        int32
}

func (b *denseBuckets) resetToHeads() {
	var offset int32
	for i, n := range b.counts {
		if n > 0 {
			b.slots[i] = offset
			offset += n
		}
	}
}

func (b *denseBuckets) resetToTails() {
	var offset int32
	for i, n := range b.counts {
		if n > 0 {
			offset += n
			b.slots[i] = offset - 1
		}
	}
}

func (b *denseBuckets) takeFromHead(code int32) int32 {
	i := code - b.loCode
	slot := b.slots[i]
	b.slots[i] = slot + 1
	return slot
}

func (b *denseBuckets) takeFromTail(code int32) int32 {
	i := code - b.loCode
	slot := b.slots[i]
	b.slots[i] = slot - 1
	return slot
}

func countCodes(text, counts []int32, loCode int32) {
	clear(counts)
	for _, v := range text {
		counts[v-loCode]++
	}
}

// induceDense runs the SA-IS induction passes for a small alphabet,
// using a pair of int32 slices carved out of scratch as the bucket
// table.
func induceDense(text, sa, scratch []int32, loCode, lmsCount, baseAlphabet, alphabetSize int32) []int32 {
	if scratch == nil || len(scratch) < int(baseAlphabet)*2 {
		scratch = make([]int32, baseAlphabet*2)
	}
	counts := scratch[:alphabetSize]
	countCodes(text, counts, loCode)
	buckets := &denseBuckets{counts: counts, slots: scratch[baseAlphabet : baseAlphabet+alphabetSize], loCode: loCode}

	seedLMSSuffixes(text, sa, buckets)
	if lmsCount > 1 {
		induceLPreview(text, sa, buckets)
		induceSPreview(text, sa, buckets)
		reduced := sa[len(sa)-int(lmsCount):]
		distinctNames := nameLMSSubstrings(text, sa, reduced, lmsCount)

		reducedSA := sa[:lmsCount]
		if distinctNames < lmsCount {
			induceSuffixArray(reduced, reducedSA, scratch, baseAlphabet)
			resolveLMSOrder(text, sa, reducedSA, reduced)
			// The recursive call may have used scratch for its own bucket
			// table, so this level's counts are rebuilt before reuse.
			countCodes(text, counts, loCode)
		} else {
			copy(reducedSA, reduced)
			clear(sa[lmsCount:])
		}
		placeLMSSuffixes(text, sa, reducedSA, buckets)
	}
	induceLFinal(text, sa, buckets)
	induceSFinal(text, sa, buckets)
	return sa
}

// sparseBuckets is the bucketCursor for alphabets too large or sparse
// for a dense per-code array: bucket sizes and the live fill pointer
// are map-keyed by raw code unit. codes holds the alphabet in sorted
// order so resetToHeads/resetToTails can recompute cumulative offsets
// from scratch, the same way denseBuckets does from counts.
type sparseBuckets struct {
	codes []int32
	sizes map[int32]int32
	slots map[int32]int32
}

func (b *sparseBuckets) resetToHeads() {
	var offset int32
	for _, c := range b.codes {
		b.slots[c] = offset
		offset += b.sizes[c]
	}
}

func (b *sparseBuckets) resetToTails() {
	var offset int32
	for _, c := range b.codes {
		offset += b.sizes[c]
		b.slots[c] = offset - 1
	}
}

func (b *sparseBuckets) takeFromHead(code int32) int32 {
	slot := b.slots[code]
	b.slots[code] = slot + 1
	return slot
}

func (b *sparseBuckets) takeFromTail(code int32) int32 {
	slot := b.slots[code]
	b.slots[code] = slot - 1
	return slot
}

// estimateDistinctCodes approximates the number of distinct code units
// in text with linear counting (a bit-array cardinality estimator),
// letting buildBucketTable size its map without a dedicated counting
// pass over text. scratch is reused as the bit array and zeroed again
// before returning.
func estimateDistinctCodes(text, scratch []int32) uint64 {
	n := len(text)
	totalBits := uint64(n * 32)

	var buf [4]byte
	h := fnv.New64a()
	for i := 0; i < n; i++ {
		binary.LittleEndian.PutUint32(buf[:], uint32(text[i]))
		h.Reset()
		h.Write(buf[:])
		x := h.Sum64()
		bitIndex := x % totalBits
		scratch[bitIndex/32] |= int32(1 << (bitIndex % 32))
	}

	var zeroBits int
	for i := 0; i < n; i++ {
		zeroBits += bits.OnesCount32(^uint32(scratch[i]))
		scratch[i] = 0
	}
	if zeroBits == 0 {
		return totalBits
	}
	estimate := -float64(totalBits) * math.Log(float64(zeroBits)/float64(totalBits))
	return uint64(estimate + 0.5)
}

// buildBucketTable scans text once, using sa as scratch space (first
// for estimateDistinctCodes's bit array, then to collect the distinct
// code units present), and returns a sparseBuckets plus the distinct
// alphabet size, needed when the caller recurses on a reduced string.
func buildBucketTable(text, sa []int32) (*sparseBuckets, int32) {
	estimate := int(estimateDistinctCodes(text, sa))
	sizes := make(map[int32]int32, estimate+int(float32(estimate)*0.1))
	var alphaSize int32
	for _, c := range text {
		if _, ok := sizes[c]; !ok {
			sa[alphaSize] = c
			alphaSize++
		}
		sizes[c]++
	}
	codes := make([]int32, alphaSize)
	copy(codes, sa[:alphaSize])
	slices.Sort(codes)
	clear(sa[:alphaSize])
	return &sparseBuckets{codes: codes, sizes: sizes, slots: make(map[int32]int32, alphaSize)}, alphaSize
}

// induceSparse runs the SA-IS induction passes for a large or sparse
// alphabet, using a hash-keyed bucket table instead of a dense array.
func induceSparse(text, sa, scratch []int32, lmsCount int32) []int32 {
	buckets, alphaSize := buildBucketTable(text, sa)

	seedLMSSuffixes(text, sa, buckets)
	if lmsCount > 1 {
		induceLPreview(text, sa, buckets)
		induceSPreview(text, sa, buckets)
		reduced := sa[len(sa)-int(lmsCount):]
		distinctNames := nameLMSSubstrings(text, sa, reduced, lmsCount)

		reducedSA := sa[:lmsCount]
		if distinctNames < lmsCount {
			induceSuffixArray(reduced, reducedSA, scratch, alphaSize)
			resolveLMSOrder(text, sa, reducedSA, reduced)
		} else {
			copy(reducedSA, reduced)
			clear(sa[lmsCount:])
		}
		placeLMSSuffixes(text, sa, reducedSA, buckets)
	}
	induceLFinal(text, sa, buckets)
	induceSFinal(text, sa, buckets)
	return sa
}

// seedLMSSuffixes places every LMS suffix's starting position into the
// tail of its code unit's bucket, scanning text right to left. When
// more than one LMS suffix exists, the slot of the last one placed (the
// leftmost LMS position in text) is reset to 0.
func seedLMSSuffixes(text, sa []int32, buckets bucketCursor) {
	buckets.resetToTails()
	var (
		cur, next, lastSlot int32
		lmsCount            int
		inSRun              bool
	)
	for i := len(text) - 1; i >= 0; i-- {
		cur, next = text[i], cur
		if cur < next {
			inSRun = true
		} else if cur > next && inSRun {
			inSRun = false
			slot := buckets.takeFromTail(next)
			sa[slot] = int32(i) + 1
			lastSlot = slot
			lmsCount++
		}
	}
	if lmsCount > 1 {
		sa[lastSlot] = 0
	}
}

// placeLMSSuffixes drops the correctly-ordered LMS positions (from
// reducedSA, the recursively sorted or directly copied reduced string)
// back into their bucket tails in the full suffix array, clearing
// reducedSA as it goes.
func placeLMSSuffixes(text, sa, reducedSA []int32, buckets bucketCursor) {
	buckets.resetToTails()
	for i := len(reducedSA) - 1; i >= 0; i-- {
		lmsPos := reducedSA[i]
		reducedSA[i] = 0
		sa[buckets.takeFromTail(text[lmsPos])] = lmsPos
	}
}

// induceLPreview induces L-type suffixes ahead of LMS-substring naming.
// Values in sa are tagged negative once an L-type predecessor has been
// placed, so induceSPreview can tell which slots it still needs to
// process; induceLPreview itself untags them as it consumes them.
func induceLPreview(text, sa []int32, buckets bucketCursor) {
	buckets.resetToHeads()
	pos := int32(len(text) - 1)
	prevCode, code := text[pos-1], text[pos]
	if prevCode < code {
		pos = -pos
	}
	sa[buckets.takeFromHead(code)] = pos

	for i := 0; i < len(sa); i++ {
		if sa[i] == 0 {
			continue
		}
		val := sa[i]
		if val < 0 {
			sa[i] = -val
			continue
		}
		sa[i] = 0
		pos = val - 1
		prevCode, code = text[pos-1], text[pos]
		if prevCode < code {
			pos = -pos
		}
		sa[buckets.takeFromHead(code)] = pos
	}
}

// induceSPreview induces S-type suffixes ahead of LMS-substring naming,
// completing the ordering induceLPreview started.
func induceSPreview(text, sa []int32, buckets bucketCursor) {
	buckets.resetToTails()
	top := len(sa)
	for i := len(sa) - 1; i >= 0; i-- {
		val := sa[i]
		if val == 0 {
			continue
		}
		sa[i] = 0
		if val < 0 {
			top--
			sa[top] = -val
			continue
		}
		pos := val - 1
		prevCode, code := text[pos-1], text[pos]
		if prevCode > code {
			pos = -pos
		}
		sa[buckets.takeFromTail(code)] = pos
	}
}

// induceLFinal induces L-type suffixes into their final positions in
// the completed suffix array, using the now fully-ordered LMS suffixes
// already sitting in sa as its seed.
func induceLFinal(text, sa []int32, buckets bucketCursor) {
	buckets.resetToHeads()
	pos := int32(len(text) - 1)
	prevCode, code := text[pos-1], text[pos]
	if prevCode < code {
		pos = -pos
	}
	sa[buckets.takeFromHead(code)] = pos

	for i := 0; i < len(sa); i++ {
		val := sa[i]
		if val <= 0 {
			continue
		}
		pos = val - 1
		code = text[pos]
		if pos > 0 {
			if prevCode = text[pos-1]; prevCode < code {
				pos = -pos
			}
		}
		sa[buckets.takeFromHead(code)] = pos
	}
}

// induceSFinal induces S-type suffixes into their final positions,
// completing the suffix array induceLFinal started.
func induceSFinal(text, sa []int32, buckets bucketCursor) {
	buckets.resetToTails()
	for i := len(sa) - 1; i >= 0; i-- {
		val := sa[i]
		if val >= 0 {
			continue
		}
		val = -val
		sa[i] = val
		pos := val - 1
		code := text[pos]
		if pos > 0 {
			if prevCode := text[pos-1]; prevCode <= code {
				pos = -pos
			}
		}
		sa[buckets.takeFromTail(code)] = pos
	}
}

// measureLMSLengths records each LMS substring's length into sa, keyed
// by half its starting position (the densest packing available since
// LMS positions are never adjacent).
func measureLMSLengths(text, sa []int32) {
	var (
		cur, next int32
		prev      int32 = int32(len(text)) - 1
		inSRun    bool
	)
	for i := len(text) - 1; i >= 0; i-- {
		cur, next = text[i], cur
		if cur < next {
			inSRun = true
		} else if cur > next && inSRun {
			inSRun = false
			sa[(i+1)/2] = prev - int32(i)
			prev = int32(i)
		}
	}
}

// lmsSubstringsEqual reports whether the LMS substrings starting at
// posA and posB, of the given lengths, are identical.
func lmsSubstringsEqual(text []int32, posA, posB, lenA, lenB int32) bool {
	if lenA != lenB {
		return false
	}
	for lenA > 0 {
		if text[posA] != text[posB] {
			return false
		}
		posA++
		posB++
		lenA--
	}
	return true
}

// nameLMSSubstrings assigns each LMS substring a name (an integer
// identifying its equivalence class under lmsSubstringsEqual) in text
// order, producing the reduced string the recursive step sorts. It
// returns the number of distinct names assigned; when that equals
// lmsCount every LMS substring is already unique, reduced is left
// holding the LMS positions in sorted order, and no recursion is needed.
func nameLMSSubstrings(text, sa, reduced []int32, lmsCount int32) int32 {
	measureLMSLengths(text, sa)
	positions := reduced
	var name, maxName int32 = 1, 1
	prevLen := sa[positions[0]/2]
	sa[positions[0]/2] = name
	for i := 1; i < len(positions); i++ {
		prev, curr := positions[i-1], positions[i]
		if !lmsSubstringsEqual(text, prev, curr, prevLen, sa[curr/2]) {
			name++
			maxName++
		}
		prevLen = sa[curr/2]
		sa[curr/2] = name
	}
	if maxName >= lmsCount {
		return maxName
	}
	var j int
	for i := 0; i < len(sa)/2; i++ {
		curr := sa[i]
		if curr <= 0 {
			continue
		}
		sa[i], reduced[j] = 0, curr
		j++
	}
	return maxName
}

// resolveLMSOrder maps the reduced string's suffix array (reducedSA,
// indices into the LMS sequence) back to actual starting positions in
// text, using lmsPositions as scratch to recover those positions by
// re-scanning text for LMS boundaries.
func resolveLMSOrder(text, sa, reducedSA, lmsPositions []int32) {
	var (
		idx       int32 = int32(len(lmsPositions))
		cur, next int32
		inSRun    bool
	)
	for i := len(text) - 1; i >= 0; i-- {
		cur, next = text[i], cur
		if cur < next {
			inSRun = true
		} else if cur > next && inSRun {
			inSRun = false
			idx--
			lmsPositions[idx] = int32(i) + 1
		}
	}
	for i := 0; i < len(lmsPositions); i++ {
		idx = reducedSA[i]
		sa[i] = lmsPositions[idx]
		lmsPositions[idx] = 0
	}
}
