package phrasesearch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroupConstructors(t *testing.T) {
	g := AndOf([]int32("a"), []int32("b"))
	assert.Equal(t, And, g.Kind)
	assert.Len(t, g.Patterns, 2)

	o := OrOf([]int32("a"))
	assert.Equal(t, Or, o.Kind)
	assert.Len(t, o.Patterns, 1)
}

func TestGroupExtendAbsorbsSameKind(t *testing.T) {
	g := AndOf([]int32("a"))
	g2, ok := g.Extend(And, []int32("b"))
	assert.True(t, ok)
	assert.Equal(t, [][]int32{[]int32("a"), []int32("b")}, g2.Patterns)
}

func TestGroupExtendRejectsMixedKind(t *testing.T) {
	g := AndOf([]int32("a"))
	_, ok := g.Extend(Or, []int32("b"))
	assert.False(t, ok)
}

func TestGroupExtendOnEmptyAdoptsKind(t *testing.T) {
	var g Group
	g2, ok := g.Extend(Or, []int32("a"))
	assert.True(t, ok)
	assert.Equal(t, Or, g2.Kind)
}

func TestGroupPatternsAreCopied(t *testing.T) {
	p := []int32("a")
	g := AndOf(p)
	p[0] = 'z'
	assert.Equal(t, int32('a'), g.Patterns[0][0])
}
