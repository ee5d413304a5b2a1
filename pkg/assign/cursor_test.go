package assign

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundRobinCursorWraps(t *testing.T) {
	cursor := newRoundRobinCursor(3)

	indices := []int{}
	for i := 0; i < 7; i++ {
		indices = append(indices, cursor.advance())
	}

	assert.Equal(t, []int{0, 1, 2, 0, 1, 2, 0}, indices)
}

func TestRoundRobinCursorSingle(t *testing.T) {
	cursor := newRoundRobinCursor(1)

	assert.Equal(t, 0, cursor.advance())
	assert.Equal(t, 0, cursor.advance())
	assert.Equal(t, 0, cursor.advance())
}
