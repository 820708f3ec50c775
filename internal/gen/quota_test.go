package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"staygen/internal/fake"
)

func TestFloor(t *testing.T) {
	assert.Equal(t, 100, Floor(100, 20))
	assert.Equal(t, 400, Floor(100, 400))
	assert.Equal(t, 0, Floor(-5, -10))
}

func TestScaled(t *testing.T) {
	assert.Equal(t, 200, Scaled(100, 2, 20))
	assert.Equal(t, 20, Scaled(3, 2, 20))
}

func TestScaledFTruncates(t *testing.T) {
	assert.Equal(t, 82, ScaledF(55, 1.5, 0))
	assert.Equal(t, 20, ScaledF(5, 1.5, 20))
}

func TestDistributeGuaranteesFloor(t *testing.T) {
	fp := fake.New(1)
	counts := Distribute(fp, 20, 10, 3)

	total := 0
	for _, c := range counts {
		assert.GreaterOrEqual(t, c, 3)
		total += c
	}
	// Requested total below the floor is raised to it.
	assert.Equal(t, 60, total)
}

func TestDistributeSpendsSurplus(t *testing.T) {
	fp := fake.New(1)
	counts := Distribute(fp, 4, 100, 3)

	total := 0
	for _, c := range counts {
		assert.GreaterOrEqual(t, c, 3)
		total += c
	}
	assert.Equal(t, 100, total)
}

func TestSpreadEvenly(t *testing.T) {
	counts := SpreadEvenly(10, 3)
	assert.Equal(t, []int{4, 3, 3}, counts)

	counts = SpreadEvenly(9, 3)
	assert.Equal(t, []int{3, 3, 3}, counts)

	assert.Nil(t, SpreadEvenly(10, 0))
}
