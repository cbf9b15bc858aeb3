package sprite

import (
	"strings"

	"github.com/vovakirdan/tui-crossing/internal/core"
)

// Built-in sprite identifiers.
const (
	EnemyBug   = "images/enemy-bug.png"
	WaterBlock = "images/water-block.png"
	StoneBlock = "images/stone-block.png"
	GrassBlock = "images/grass-block.png"

	CharBoy      = "images/char-boy.png"
	CharCatGirl  = "images/char-cat-girl.png"
	CharHornGirl = "images/char-horn-girl.png"
	CharPinkGirl = "images/char-pink-girl.png"
	CharPrincess = "images/char-princess-girl.png"
)

// Tile art covers one board tile: 10 cells by 3 rows.
const (
	TileCols = 10
	TileRows = 3
)

// charOffsetY lowers entity art so it sits inside its lane rather than on the seam.
const charOffsetY = 30

func tile(r rune) []string {
	row := strings.Repeat(string(r), TileCols)
	return []string{row, row, row}
}

// DefaultAtlas returns an atlas with the board tiles, the bug and every avatar.
func DefaultAtlas() *Atlas {
	a := NewAtlas()

	a.Register(WaterBlock, Sprite{Rows: tile('≈'), Color: core.ColorBlue})
	a.Register(StoneBlock, Sprite{Rows: tile('▒'), Color: core.ColorGray})
	a.Register(GrassBlock, Sprite{Rows: tile('░'), Color: core.ColorGreen})

	a.Register(EnemyBug, Sprite{
		Rows: []string{
			" ▄████▄▶",
			"  ╹ ╹ ╹ ",
		},
		Color:   core.ColorBrightRed,
		OffsetY: charOffsetY,
	})

	a.Register(CharBoy, character("(o_o)", core.ColorBrightYellow))
	a.Register(CharCatGirl, character("=^.^=", core.ColorMagenta))
	a.Register(CharHornGirl, character("}o_o{", core.ColorBrightMagenta))
	a.Register(CharPinkGirl, character("(^_^)", core.ColorPink))
	a.Register(CharPrincess, character("*o_o*", core.ColorYellow))

	return a
}

func character(face string, c core.Color) Sprite {
	return Sprite{
		Rows: []string{
			"  " + face + " ",
			"  /|_|\\ ",
		},
		Color:   c,
		OffsetY: charOffsetY,
	}
}
