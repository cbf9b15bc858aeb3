// Package sprite maps sprite identifiers to terminal glyph art.
// Identifiers are the image paths the board and entities were designed with,
// so configs stay readable and swapping in new art needs no code change.
package sprite

import (
	"errors"
	"fmt"
	"sync"

	"github.com/vovakirdan/tui-crossing/internal/core"
)

// ErrUnknownSprite is returned when an identifier has no registered art.
var ErrUnknownSprite = errors.New("unknown sprite")

// Sprite is glyph art drawn from the top-left cell at an entity position.
type Sprite struct {
	Rows  []string   // One string per screen row; spaces are transparent
	Color core.Color // Foreground color of every glyph

	// OffsetX/OffsetY shift the art inside the entity frame, in board pixels.
	OffsetX float64
	OffsetY float64
}

// Width returns the widest row in cells.
func (s Sprite) Width() int {
	w := 0
	for _, row := range s.Rows {
		if n := len([]rune(row)); n > w {
			w = n
		}
	}
	return w
}

// Height returns the number of rows in cells.
func (s Sprite) Height() int {
	return len(s.Rows)
}

// Atlas is a concurrency-safe lookup table of sprites.
// A single atlas may be shared by every SSH session.
type Atlas struct {
	mu      sync.RWMutex
	sprites map[string]Sprite
}

// NewAtlas creates an empty atlas.
func NewAtlas() *Atlas {
	return &Atlas{sprites: make(map[string]Sprite)}
}

// Register adds or replaces the art for an identifier.
func (a *Atlas) Register(id string, s Sprite) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.sprites[id] = s
}

// Get returns the art for an identifier.
func (a *Atlas) Get(id string) (Sprite, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	s, ok := a.sprites[id]
	if !ok {
		return Sprite{}, fmt.Errorf("sprite: %w %q", ErrUnknownSprite, id)
	}
	return s, nil
}
