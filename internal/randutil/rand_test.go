package randutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIsDeterministic(t *testing.T) {
	a, b := New(99), New(99)
	for i := 0; i < 16; i++ {
		assert.Equal(t, a.Uint64(), b.Uint64())
	}
}

func TestNeighbouringSeedsDiverge(t *testing.T) {
	assert.NotEqual(t, New(1).Uint64(), New(2).Uint64())
}

func TestResolveSeed(t *testing.T) {
	seed := int64(1234)
	assert.Equal(t, int64(1234), ResolveSeed(&seed))
	assert.NotZero(t, ResolveSeed(nil))
}
