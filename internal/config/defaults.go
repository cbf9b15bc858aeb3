package config

import (
	_ "embed"
)

//go:embed defaults/crossing.yaml
var defaultCrossingYAML []byte

// DefaultCrossingConfig returns the default crossing configuration.
func DefaultCrossingConfig() CrossingConfig {
	return CrossingConfig{
		Board: BoardConfig{
			Width:      505,
			Height:     606,
			TileWidth:  101,
			TileHeight: 83,
			WaterRows:  1,
			StoneRows:  3,
		},
		Entity: EntityConfig{
			Width:  80,
			Height: 60,
		},
		Player: PlayerConfig{
			Sprite:    "images/char-boy.png",
			X:         200,
			Y:         400,
			Lives:     3,
			Step:      10,
			WinPoints: 10,
		},
		Enemies: []EnemyConfig{
			{Sprite: "images/enemy-bug.png", X: 0, Y: 60, Speed: 20},
			{Sprite: "images/enemy-bug.png", X: 0, Y: 143, Speed: 40},
			{Sprite: "images/enemy-bug.png", X: 0, Y: 226, Speed: 30},
		},
		View: ViewConfig{
			Columns: 50,
			Rows:    22,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultCrossingYAML
}
