package stop

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaxIterations(t *testing.T) {
	c := NewMaxIterations(3)
	assert.False(t, c.ShouldStop(0))
	assert.False(t, c.ShouldStop(0))
	assert.True(t, c.ShouldStop(0))
}

func TestNoImprovement(t *testing.T) {
	c := NewNoImprovement(2)
	require.False(t, c.ShouldStop(10))
	require.False(t, c.ShouldStop(10)) // idle 1
	require.True(t, c.ShouldStop(10))  // idle 2 -> stop
}

func TestNoImprovementResetsOnBetter(t *testing.T) {
	c := NewNoImprovement(2)
	require.False(t, c.ShouldStop(10))
	require.False(t, c.ShouldStop(9)) // improved, idle resets
	require.False(t, c.ShouldStop(9)) // idle 1
	require.True(t, c.ShouldStop(9))  // idle 2 -> stop
}

func TestMaxRuntimeFires(t *testing.T) {
	c := NewMaxRuntime(10 * time.Millisecond)
	require.False(t, c.ShouldStop(0))
	time.Sleep(15 * time.Millisecond)
	require.True(t, c.ShouldStop(0))
}

func TestCombinedFiresOnEither(t *testing.T) {
	a := NewMaxIterations(100)
	b := NewNoImprovement(2)
	c := NewCombined(a, b)
	require.False(t, c.ShouldStop(5))
	require.False(t, c.ShouldStop(5))
	require.True(t, c.ShouldStop(5))
}
