package selfcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestCheckScenario(t *testing.T) {
	assert := assert.New(t)

	assert.Empty(Check([]int{5, 3, 8, 1, 4}, false))
	assert.Empty(Check([]int{5, 5, 5}, true))
	assert.Empty(Check([]int{5, 5, 5}, false))
	assert.Empty(Check(nil, false))
}

func TestCheckProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		values := rapid.SliceOfN(rapid.IntRange(-10, 10), 0, 30).Draw(t, "values")
		dup := rapid.Bool().Draw(t, "dup")
		assert.Empty(t, Check(values, dup))
	})
}

func TestIsPermutation(t *testing.T) {
	assert := assert.New(t)
	a := []int{3, 1, 2}
	assert.True(isPermutation(a, []int{1, 2, 3}))
	assert.False(isPermutation(a, []int{1, 2, 2}))
	// inputs are not reordered
	assert.Equal([]int{3, 1, 2}, a)
}
