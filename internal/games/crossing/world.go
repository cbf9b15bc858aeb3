package crossing

import (
	"math"

	"github.com/vovakirdan/tui-crossing/internal/config"
	"github.com/vovakirdan/tui-crossing/internal/entity"
	"github.com/vovakirdan/tui-crossing/internal/sprite"
)

// Tile kinds of the board background, top to bottom.
const (
	TileWater = iota
	TileStone
	TileGrass
)

// World is everything one game owns: the board, the player and the enemies.
type World struct {
	Board   config.BoardConfig
	Player  *entity.Player
	Enemies []*entity.Enemy
}

// NewWorld builds a fresh world from config. playerSprite overrides the
// configured sprite when non-empty.
func NewWorld(cfg config.CrossingConfig, playerSprite string) *World {
	size := entity.Size{W: cfg.Entity.Width, H: cfg.Entity.Height}
	bounds := entity.Bounds{MaxX: cfg.Board.Width, MaxY: cfg.Board.Height}

	if playerSprite == "" {
		playerSprite = cfg.Player.Sprite
	}

	enemies := make([]*entity.Enemy, 0, len(cfg.Enemies))
	for _, e := range cfg.Enemies {
		enemies = append(enemies, entity.NewEnemy(e.Sprite, e.X, e.Y, e.Speed, size, bounds))
	}

	return &World{
		Board: cfg.Board,
		Player: entity.NewPlayer(playerSprite, cfg.Player.X, cfg.Player.Y, size, bounds, entity.PlayerOptions{
			Lives:     cfg.Player.Lives,
			Step:      cfg.Player.Step,
			WinPoints: cfg.Player.WinPoints,
		}),
		Enemies: enemies,
	}
}

// Hit returns the first enemy touching the player, or nil.
func (w *World) Hit() *entity.Enemy {
	for _, e := range w.Enemies {
		if e.Collision(&w.Player.Entity) {
			return e
		}
	}
	return nil
}

// TileRows returns how many tile rows cover the board height.
func (w *World) TileRows() int {
	if w.Board.TileHeight <= 0 {
		return 0
	}
	return int(math.Ceil(w.Board.Height / w.Board.TileHeight))
}

// TileCols returns how many tile columns cover the board width.
func (w *World) TileCols() int {
	if w.Board.TileWidth <= 0 {
		return 0
	}
	return int(math.Ceil(w.Board.Width / w.Board.TileWidth))
}

// TileKind returns the background kind of a tile row.
func (w *World) TileKind(row int) int {
	switch {
	case row < w.Board.WaterRows:
		return TileWater
	case row < w.Board.WaterRows+w.Board.StoneRows:
		return TileStone
	default:
		return TileGrass
	}
}

func tileSprite(kind int) string {
	switch kind {
	case TileWater:
		return sprite.WaterBlock
	case TileStone:
		return sprite.StoneBlock
	default:
		return sprite.GrassBlock
	}
}

// drawBackground lays the tiles row by row through the drawer.
func (w *World) drawBackground(d entity.Drawer) {
	for row := range w.TileRows() {
		id := tileSprite(w.TileKind(row))
		for col := range w.TileCols() {
			d.DrawImage(id, float64(col)*w.Board.TileWidth, float64(row)*w.Board.TileHeight)
		}
	}
}
