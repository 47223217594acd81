package collections

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	set := make(Set[int])
	assert.False(t, set.Contains(3))

	set.Add(3)
	set.Add(3)
	assert.True(t, set.Contains(3))
	assert.Len(t, set, 1)

	set.Remove(3)
	assert.False(t, set.Contains(3))

	// Removing an absent element is a no-op
	set.Remove(42)
}
