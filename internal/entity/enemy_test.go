package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnemyUpdateAdvancesX(t *testing.T) {
	e := NewEnemy("images/enemy-bug.png", 0, 143, 40, testSize, testBounds)

	e.Update(0.5)

	assert.Equal(t, 20.0, e.X)
	assert.Equal(t, 143.0, e.Y, "enemies only move horizontally")
	assert.Equal(t, 40.0, e.Speed())
}

func TestEnemyUpdateIsLinear(t *testing.T) {
	speeds := []float64{20, 40, 30, -15, 0}
	for _, speed := range speeds {
		stepped := NewEnemy("e", 10, 60, speed, testSize, testBounds)
		stepped.Update(1)
		stepped.Update(1)

		single := NewEnemy("e", 10, 60, speed, testSize, testBounds)
		single.Update(2)

		assert.Equal(t, single.X, stepped.X, "speed %v", speed)
	}
}

func TestEnemyUpdateDoesNotWrap(t *testing.T) {
	e := NewEnemy("e", 500, 60, 100, testSize, testBounds)
	e.Update(1)
	assert.Equal(t, 600.0, e.X, "update leaves wrapping to render")

	e.Render(&recordingDrawer{})
	assert.Equal(t, 0.0, e.X)
}

func TestEnemyResetKeepsSpeed(t *testing.T) {
	e := NewEnemy("e", 0, 226, 30, testSize, testBounds)
	e.Update(3)
	e.Reset()

	assert.Equal(t, 0.0, e.X)
	assert.Equal(t, 30.0, e.Speed())
}
