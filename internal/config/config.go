// Package config provides YAML-based configuration loading and difficulty
// presets for the crossing game.
package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// CrossingConfig contains all configuration for the crossing game.
type CrossingConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Entity  EntityConfig  `yaml:"entity"`
	Player  PlayerConfig  `yaml:"player"`
	Enemies []EnemyConfig `yaml:"enemies"`
	View    ViewConfig    `yaml:"view"`
}

// BoardConfig defines the play area in pixels.
type BoardConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	TileWidth  float64 `yaml:"tile_width"`
	TileHeight float64 `yaml:"tile_height"`
	WaterRows  int     `yaml:"water_rows"` // Rows of water at the top (the goal)
	StoneRows  int     `yaml:"stone_rows"` // Rows of stone below the water (enemy lanes)
}

// EntityConfig defines the hitbox shared by every entity.
type EntityConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player start and tuning.
type PlayerConfig struct {
	Sprite    string  `yaml:"sprite"`
	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"`
	Lives     int     `yaml:"lives"`
	Step      int     `yaml:"step"`       // Pixels per key press
	WinPoints int     `yaml:"win_points"` // Points for reaching the top
}

// EnemyConfig defines one bug.
type EnemyConfig struct {
	Sprite string  `yaml:"sprite"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Speed  float64 `yaml:"speed"` // Pixels per second
}

// ViewConfig defines how many terminal cells the board occupies.
type ViewConfig struct {
	Columns int `yaml:"columns"`
	Rows    int `yaml:"rows"`
}

// Validate checks that the config describes a playable board.
func (c CrossingConfig) Validate() error {
	b := c.Board
	if b.Width <= 0 || b.Height <= 0 {
		return fmt.Errorf("config: %w: board size %vx%v must be positive", ErrInvalidConfig, b.Width, b.Height)
	}
	if b.TileWidth <= 0 || b.TileHeight <= 0 {
		return fmt.Errorf("config: %w: tile size %vx%v must be positive", ErrInvalidConfig, b.TileWidth, b.TileHeight)
	}
	if b.WaterRows < 0 || b.StoneRows < 0 {
		return fmt.Errorf("config: %w: row counts must not be negative", ErrInvalidConfig)
	}

	if c.View.Columns <= 0 || c.View.Rows <= 0 {
		return fmt.Errorf("config: %w: view %dx%d must be positive", ErrInvalidConfig, c.View.Columns, c.View.Rows)
	}

	e := c.Entity
	if e.Width <= 0 || e.Height <= 0 {
		return fmt.Errorf("config: %w: entity size %vx%v must be positive", ErrInvalidConfig, e.Width, e.Height)
	}
	if e.Width > b.Width || e.Height > b.Height {
		return fmt.Errorf("config: %w: entity %vx%v does not fit the board", ErrInvalidConfig, e.Width, e.Height)
	}

	p := c.Player
	if p.Sprite == "" {
		return fmt.Errorf("config: %w: player sprite is empty", ErrInvalidConfig)
	}
	if p.Lives <= 0 {
		return fmt.Errorf("config: %w: player lives %d must be positive", ErrInvalidConfig, p.Lives)
	}
	if p.Step <= 0 {
		return fmt.Errorf("config: %w: player step %d must be positive", ErrInvalidConfig, p.Step)
	}
	if p.WinPoints <= 0 {
		return fmt.Errorf("config: %w: win points %d must be positive", ErrInvalidConfig, p.WinPoints)
	}
	if p.X < 0 || p.X > b.Width-e.Width || p.Y < 0 || p.Y > b.Height-e.Height {
		return fmt.Errorf("config: %w: player start (%v, %v) is off the board", ErrInvalidConfig, p.X, p.Y)
	}
	// Moves past the edge are dropped, so only a start on the step grid reaches y=0.
	if math.Mod(p.Y, float64(p.Step)) != 0 {
		return fmt.Errorf("config: %w: player start y=%v is not a multiple of step %d", ErrInvalidConfig, p.Y, p.Step)
	}

	if len(c.Enemies) == 0 {
		return fmt.Errorf("config: %w: at least one enemy is required", ErrInvalidConfig)
	}
	for i, en := range c.Enemies {
		if en.Sprite == "" {
			return fmt.Errorf("config: %w: enemy %d sprite is empty", ErrInvalidConfig, i)
		}
		if en.Y < 0 || en.Y > b.Height {
			return fmt.Errorf("config: %w: enemy %d lane y=%v is off the board", ErrInvalidConfig, i, en.Y)
		}
		if en.Speed < 0 {
			return fmt.Errorf("config: %w: enemy %d speed %v must not be negative", ErrInvalidConfig, i, en.Speed)
		}
	}

	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty converts a CLI value to a preset. Empty means normal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyHard:
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// SpeedFactorForPreset returns the enemy speed multiplier of a preset.
func SpeedFactorForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.75
	case DifficultyHard:
		return 1.5
	default:
		return 1.0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Enemy speeds are scaled once here; each enemy keeps its speed for the whole game.
func ApplyPreset(cfg *CrossingConfig, preset DifficultyPreset) {
	factor := SpeedFactorForPreset(preset)
	for i := range cfg.Enemies {
		cfg.Enemies[i].Speed *= factor
	}

	switch preset {
	case DifficultyEasy:
		cfg.Player.Lives = 5
	case DifficultyHard:
		cfg.Player.Lives = 2
	}
}
