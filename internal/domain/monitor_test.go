package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPushPostIDInsertsAtFront(t *testing.T) {
	window := PushPostID([]string{"b", "a"}, "c")
	assert.Equal(t, []string{"c", "b", "a"}, window)
}

func TestPushPostIDNoDuplicates(t *testing.T) {
	window := PushPostID([]string{"a", "b"}, "a")
	assert.Equal(t, []string{"a", "b"}, window)
}

func TestPushPostIDTruncatesToSeven(t *testing.T) {
	window := []string{"1", "2", "3", "4", "5", "6", "7"}
	out := PushPostID(window, "8")
	assert.Len(t, out, 7)
	assert.Equal(t, "8", out[0])
	assert.NotContains(t, out, "7")
}

func TestContainsPostID(t *testing.T) {
	window := []string{"a", "b", "c"}
	assert.True(t, ContainsPostID(window, "b"))
	assert.False(t, ContainsPostID(window, "z"))
}
