package animations

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnimationAdvancesEveryDelayTicks(t *testing.T) {
	a := NewAnimation(3, 4)

	for range 3 {
		a.Update()
	}
	assert.Equal(t, 0, a.Frame())

	a.Update()
	assert.Equal(t, 1, a.Frame())

	for range 8 {
		a.Update()
	}
	assert.Equal(t, 0, a.Frame(), "wraps after the last frame")
	assert.True(t, a.Looped)
}

func TestAnimationFreezeOnComplete(t *testing.T) {
	a := NewAnimation(2, 1)
	a.FreezeOnComplete = true

	for range 10 {
		a.Update()
	}
	assert.Equal(t, 1, a.Frame())
	assert.True(t, a.Looped)

	a.Restart()
	assert.Equal(t, 0, a.Frame())
	assert.False(t, a.Looped)
}

func TestAnimationZeroDelayClamped(t *testing.T) {
	a := NewAnimation(4, 0)
	a.Update()
	assert.Equal(t, 1, a.Frame())
}
