package joystick

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTracker_Claim(t *testing.T) {
	assert := assert.New(t)
	var tr tracker

	assert.False(tr.claim(1, 60, 0, 50), "outside of the hit region")
	assert.True(tr.claim(1, 50, 0, 50), "the hit region is inclusive")
	assert.False(tr.claim(2, 0, 0, 50), "only one pointer may be captured")

	assert.True(tr.owns(1))
	assert.False(tr.owns(2))
}

func TestTracker_Release(t *testing.T) {
	assert := assert.New(t)
	var tr tracker

	assert.False(tr.release(0), "nothing to release while idle")
	assert.False(tr.reset())

	tr.claim(3, 0, 0, 10)
	assert.False(tr.release(4))
	assert.True(tr.release(3))
	assert.False(tr.owns(3))

	tr.claim(5, -20, -15, 10)
	assert.True(tr.reset(), "reset frees any pointer")
	assert.False(tr.owns(5))
}
