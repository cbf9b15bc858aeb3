package tui

import (
	"github.com/vovakirdan/tui-crossing/internal/core"
	"github.com/vovakirdan/tui-crossing/internal/sprite"
)

// Game is what the platform needs from a game.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing and rendering.
type Game interface {
	// ID returns a unique identifier for this game, used in logs.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	// Called once at start and again when restarting after game over.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState

	// Avatar returns the selected player character.
	Avatar() sprite.Avatar

	// SetAvatar changes the player character.
	SetAvatar(a sprite.Avatar)

	// MissingSprites reports how many sprites the last Render could not find.
	MissingSprites() int
}

// GameFactory creates a fresh game. The SSH server calls it once per session.
type GameFactory func() Game
