// Package crossing implements the bug crossing game.
// The player walks up a tiled board in fixed steps, dodging bugs that crawl
// along the stone lanes, and scores on reaching the water.
package crossing

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-crossing/internal/config"
	"github.com/vovakirdan/tui-crossing/internal/core"
	"github.com/vovakirdan/tui-crossing/internal/entity"
	"github.com/vovakirdan/tui-crossing/internal/sprite"
)

// ID is the game identifier used by the CLI and logs.
const ID = "crossing"

// hudRows is the number of screen rows above the board.
const hudRows = 1

// Game implements the crossing game logic.
type Game struct {
	cfg     config.CrossingConfig
	atlas   *sprite.Atlas
	avatar  sprite.Avatar
	world   *World
	runtime core.RuntimeConfig

	tickCount int
	hits      int // Collisions since the last reset
	wins      int // Crossings since the last reset
	gameOver  bool
	paused    bool
	missing   int // Unknown sprites drawn by the last Render
}

// New creates a game ready to step with the default runtime config.
func New(cfg config.CrossingConfig, atlas *sprite.Atlas) *Game {
	avatar, ok := sprite.AvatarBySprite(cfg.Player.Sprite)
	if !ok {
		avatar = sprite.Avatar{Name: "Custom", Sprite: cfg.Player.Sprite}
	}

	g := &Game{
		cfg:    cfg,
		atlas:  atlas,
		avatar: avatar,
	}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Bug Crossing"
}

// Reset rebuilds the world: full lives, zero score, every entity at its
// starting position. The selected avatar is kept.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.world = NewWorld(g.cfg, g.avatar.Sprite)
	g.tickCount = 0
	g.hits = 0
	g.wins = 0
	g.gameOver = false
	g.paused = false
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	player := g.world.Player

	// Every move reaches the player; only the last one survives until Update.
	for _, a := range in.Moves() {
		player.HandleInput(DirectionForAction(a))
	}

	dt := g.runtime.FrameSeconds()
	for _, e := range g.world.Enemies {
		e.Update(dt)
	}
	player.Update()

	var result core.StepResult

	if g.world.Hit() != nil {
		player.Kill()
		player.Reset()
		g.hits++
		result.Hit = true
	}

	if player.Win() {
		player.Reset()
		g.wins++
		result.Won = true
	}

	if !player.Alive() {
		g.gameOver = true
	}

	result.State = g.State()
	return result
}

// DirectionForAction maps a movement action to a player direction.
func DirectionForAction(a core.Action) entity.Direction {
	switch a {
	case core.ActionLeft:
		return entity.DirectionLeft
	case core.ActionUp:
		return entity.DirectionUp
	case core.ActionRight:
		return entity.DirectionRight
	case core.ActionDown:
		return entity.DirectionDown
	default:
		return entity.DirectionNone
	}
}

// Render draws the board, the enemies, the player and the HUD.
// Entities past the board edge wrap back to 0 while rendering.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	d := g.drawer(dst)
	g.world.drawBackground(d)
	for _, e := range g.world.Enemies {
		e.Render(d)
	}
	g.world.Player.Render(d)
	g.missing = d.Missing()

	g.drawHUD(dst, d.Area())

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.gameOver {
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.world.Player.Score()))
	}
}

// drawer centers the board horizontally below the HUD.
func (g *Game) drawer(dst *core.Screen) *ScreenDrawer {
	originX := core.Max(0, (dst.Width()-g.cfg.View.Columns)/2)
	return NewScreenDrawer(dst, g.atlas, g.cfg.Board, g.cfg.View, originX, hudRows)
}

func (g *Game) drawHUD(dst *core.Screen, board core.Rect) {
	p := g.world.Player

	dst.DrawText(board.X, 0, fmt.Sprintf("Score: %d", p.Score()))

	lives := strings.Repeat("♥", p.Lives())
	livesX := board.X + (board.W-len([]rune(lives)))/2
	dst.DrawTextColored(livesX, 0, lives, core.ColorBrightRed)

	name := g.avatar.Name
	nameX := core.Clamp(board.Right()-len([]rune(name)), board.X, board.Right())
	dst.DrawTextColored(nameX, 0, name, g.avatarColor())

	if board.Bottom() < dst.Height() {
		dst.DrawTextColored(board.X, board.Bottom(), "arrows/wasd move  p pause  c avatar  q quit", core.ColorGray)
	}
}

func (g *Game) avatarColor() core.Color {
	s, err := g.atlas.Get(g.avatar.Sprite)
	if err != nil {
		return core.ColorDefault
	}
	return s.Color
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextCentered(boxY+1, title)
	dst.DrawTextCentered(boxY+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.world.Player.Score(),
		Lives:    g.world.Player.Lives(),
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Avatar returns the selected avatar.
func (g *Game) Avatar() sprite.Avatar {
	return g.avatar
}

// SetAvatar changes the player's character without touching the game state.
func (g *Game) SetAvatar(a sprite.Avatar) {
	g.avatar = a
	g.world.Player.SetSprite(a.Sprite)
}

// MissingSprites returns how many draws of the last Render had no art.
func (g *Game) MissingSprites() int {
	return g.missing
}

// World exposes the live world for inspection.
func (g *Game) World() *World {
	return g.world
}
