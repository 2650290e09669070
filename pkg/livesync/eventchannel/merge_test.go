package eventchannel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeUniqueInts(t *testing.T) {
	merged, added := mergeUnique([]int{0, 2}, []int{2, 1, 0, 3})

	assert.Equal(t, []int{0, 2, 1, 3}, merged)
	assert.Equal(t, []int{1, 3}, added)
}

func TestMergeUniqueStringsKeepsInsertionOrder(t *testing.T) {
	merged, added := mergeUnique([]string{"b", "a"}, []string{"a", "c", "b", "d"})

	assert.Equal(t, []string{"b", "a", "c", "d"}, merged)
	assert.Equal(t, []string{"c", "d"}, added)
}

func TestMergeUniqueDeduplicatesIncoming(t *testing.T) {
	merged, added := mergeUnique(nil, []int{1, 1, 2, 1})

	assert.Equal(t, []int{1, 2}, merged)
	assert.Equal(t, []int{1, 2}, added)
}

func TestMergeUniqueNothingNew(t *testing.T) {
	merged, added := mergeUnique([]int{0, 1}, []int{1, 0})

	assert.Equal(t, []int{0, 1}, merged)
	assert.Empty(t, added)
}

func TestMergeUniqueEmptyCurrent(t *testing.T) {
	merged, added := mergeUnique(nil, []string{"guest1"})

	assert.Equal(t, []string{"guest1"}, merged)
	assert.Equal(t, []string{"guest1"}, added)
}
