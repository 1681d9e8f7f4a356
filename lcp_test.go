package phrasesearch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func naiveLCP(text []int32, sa []int32) []int32 {
	lcp := make([]int32, len(sa))
	for i := 1; i < len(sa); i++ {
		a, b := text[sa[i-1]:], text[sa[i]:]
		var h int32
		for int(h) < len(a) && int(h) < len(b) && a[h] == b[h] {
			h++
		}
		lcp[i] = h
	}
	return lcp
}

func TestLCP(t *testing.T) {
	tests := map[string][]int32{
		"empty":    {},
		"single":   {42},
		"banana":   []int32("banana"),
		"all same": []int32("aaaaaa"),
		"mississippi": []int32("mississippi"),
	}
	for name, text := range tests {
		t.Run(name, func(t *testing.T) {
			ix := Build(text)
			got := ix.LCP()
			want := naiveLCP(ix.Text(), ix.SuffixArray())
			assert.Equal(t, want, got)
			if len(got) > 0 {
				assert.Equal(t, int32(0), got[0])
			}
		})
	}
}

func TestLCPCached(t *testing.T) {
	ix := Build([]int32("banana"))
	first := ix.LCP()
	second := ix.LCP()
	assert.Same(t, &first[0], &second[0])
}
