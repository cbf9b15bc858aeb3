// Package entity implements the moving pieces of the crossing board: the
// shared positional record and its Enemy and Player specializations.
// Coordinates are board pixels with the origin at the top-left corner.
package entity

import "github.com/vovakirdan/tui-crossing/internal/core"

// Drawer draws a sprite at a board position.
// Looking the sprite up by identifier is the drawer's responsibility.
type Drawer interface {
	DrawImage(sprite string, x, y float64)
}

// Size is the pixel footprint of an entity.
type Size struct {
	W, H float64
}

// Bounds is the largest position an entity may hold before it wraps.
type Bounds struct {
	MaxX, MaxY float64
}

// Entity is the positional and visual record shared by enemies and the player.
type Entity struct {
	Sprite string  // Sprite identifier, resolved by the Drawer
	X, Y   float64 // Current position (top-left of hitbox)

	size     Size
	bounds   Bounds
	initialX float64
	initialY float64
}

// New creates an entity at its initial position.
func New(sprite string, x, y float64, size Size, bounds Bounds) Entity {
	return Entity{
		Sprite:   sprite,
		X:        x,
		Y:        y,
		size:     size,
		bounds:   bounds,
		initialX: x,
		initialY: y,
	}
}

// Width returns the entity width in pixels.
func (e *Entity) Width() float64 {
	return e.size.W
}

// Height returns the entity height in pixels.
func (e *Entity) Height() float64 {
	return e.size.H
}

// Bounds returns the wrap bounds of the entity.
func (e *Entity) Bounds() Bounds {
	return e.bounds
}

// Initial returns the position the entity was created at.
func (e *Entity) Initial() (x, y float64) {
	return e.initialX, e.initialY
}

// Rect returns the entity hitbox.
func (e *Entity) Rect() core.RectF {
	return core.NewRectF(e.X, e.Y, e.size.W, e.size.H)
}

// Collision reports whether this entity's hitbox overlaps other's.
// Hitboxes that only touch along an edge do not collide.
func (e *Entity) Collision(other *Entity) bool {
	return e.Rect().Intersects(other.Rect())
}

// Render wraps the position back to 0 on any axis past its bound, then
// draws the sprite at the current position.
func (e *Entity) Render(d Drawer) {
	if e.X > e.bounds.MaxX {
		e.X = 0
	}
	if e.Y > e.bounds.MaxY {
		e.Y = 0
	}
	d.DrawImage(e.Sprite, e.X, e.Y)
}

// Reset moves the entity back to its initial position.
func (e *Entity) Reset() {
	e.X = e.initialX
	e.Y = e.initialY
}
