package entity

import "strings"

// Direction is a movement request coming from the keyboard.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionLeft
	DirectionUp
	DirectionRight
	DirectionDown
)

// String returns the lowercase name used by the key table.
func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "left"
	case DirectionUp:
		return "up"
	case DirectionRight:
		return "right"
	case DirectionDown:
		return "down"
	default:
		return "none"
	}
}

// ParseDirection maps a direction name to a Direction.
// Unknown names yield DirectionNone.
func ParseDirection(name string) Direction {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "left":
		return DirectionLeft
	case "up":
		return DirectionUp
	case "right":
		return DirectionRight
	case "down":
		return DirectionDown
	default:
		return DirectionNone
	}
}

// keyCodes is the browser arrow-key table.
var keyCodes = map[int]Direction{
	37: DirectionLeft,
	38: DirectionUp,
	39: DirectionRight,
	40: DirectionDown,
}

// DirectionForKeyCode maps a keyboard key code to a direction.
// Unmapped codes yield DirectionNone, which the player ignores.
func DirectionForKeyCode(code int) Direction {
	return keyCodes[code]
}
