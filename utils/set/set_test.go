package set

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	t.Parallel()

	s := New[string]()
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Contains("a"))

	s.Add("a")
	s.Add("b")
	s.Add("a")
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Contains("a"))
	assert.ElementsMatch(t, []string{"a", "b"}, slices.Collect(s.Values()))

	s.Remove("a")
	assert.False(t, s.Contains("a"))
	assert.Equal(t, 1, s.Len())

	s.Remove("missing")
	assert.Equal(t, 1, s.Len())
}
