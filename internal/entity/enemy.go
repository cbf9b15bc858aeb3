package entity

// Enemy is a bug that crawls horizontally at a constant speed.
type Enemy struct {
	Entity
	speed float64 // pixels per second
}

// NewEnemy creates an enemy. The speed cannot change afterwards.
func NewEnemy(sprite string, x, y, speed float64, size Size, bounds Bounds) *Enemy {
	return &Enemy{
		Entity: New(sprite, x, y, size, bounds),
		speed:  speed,
	}
}

// Speed returns the horizontal speed in pixels per second.
func (e *Enemy) Speed() float64 {
	return e.speed
}

// Update advances the enemy by speed*dt, where dt is the elapsed time in
// seconds since the previous frame. Wrapping is left to Render.
func (e *Enemy) Update(dt float64) {
	e.X += e.speed * dt
}
