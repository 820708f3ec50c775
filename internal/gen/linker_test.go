package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staygen/internal/fake"
)

func TestLinkPairsNoDuplicates(t *testing.T) {
	fp := fake.New(1)
	parents := seq(1, 50)
	children := seq(1, 20)

	pairs := LinkPairs(fp, parents, children, 85)
	require.Len(t, pairs, 85)

	seen := make(map[Pair]bool)
	for _, p := range pairs {
		assert.False(t, seen[p], "duplicate pair %+v", p)
		seen[p] = true
	}
}

func TestLinkPairsCoversEveryParent(t *testing.T) {
	fp := fake.New(1)
	parents := seq(1, 50)
	children := seq(1, 20)

	pairs := LinkPairs(fp, parents, children, 85)

	covered := make(map[int]bool)
	for _, p := range pairs {
		covered[p.ParentID] = true
	}
	for _, id := range parents {
		assert.True(t, covered[id], "parent %d has no link", id)
	}
}

func TestLinkPairsCapsAtCrossProduct(t *testing.T) {
	fp := fake.New(1)
	pairs := LinkPairs(fp, seq(1, 3), seq(1, 4), 1000)
	assert.Len(t, pairs, 12)
}

func TestLinkPairsQuotaBelowParents(t *testing.T) {
	fp := fake.New(1)
	pairs := LinkPairs(fp, seq(1, 50), seq(1, 20), 10)
	assert.Len(t, pairs, 10)
}

func TestLinkPairsEmptyInputs(t *testing.T) {
	fp := fake.New(1)
	assert.Nil(t, LinkPairs(fp, nil, seq(1, 5), 10))
	assert.Nil(t, LinkPairs(fp, seq(1, 5), nil, 10))
}

func seq(from, to int) []int {
	out := make([]int, 0, to-from+1)
	for i := from; i <= to; i++ {
		out = append(out, i)
	}
	return out
}
