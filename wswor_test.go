package wswor

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSample(t *testing.T) {
	src := rand.New(rand.NewSource(42))
	items := []Weighted[int]{{1.0, 1}, {2.0, 2}, {3.0, 3}, {4.0, 4}}

	vals, err := Sample(items, src, 2)
	assert.NoError(t, err)
	assert.Len(t, vals, 2)
	for _, v := range vals {
		assert.Contains(t, []int{1, 2, 3, 4}, v)
	}
}

func TestSampleInvalidWeight(t *testing.T) {
	src := rand.New(rand.NewSource(42))
	items := []Weighted[int]{{1.0, 1}, {-1.0, 2}}

	vals, err := Sample(items, src, 1)
	assert.ErrorIs(t, err, ErrNegativeWeight)
	assert.Nil(t, vals)
}

func TestSampleCapacityExceedsInput(t *testing.T) {
	src := rand.New(rand.NewSource(42))
	items := []Weighted[string]{{1.0, "a"}, {2.0, "b"}}

	vals, err := Sample(items, src, 10)
	assert.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b"}, vals)
}

func TestSampleEmptyInput(t *testing.T) {
	src := rand.New(rand.NewSource(42))

	vals, err := Sample[int](nil, src, 3)
	assert.NoError(t, err)
	assert.Empty(t, vals)
}
