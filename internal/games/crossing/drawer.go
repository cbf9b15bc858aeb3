package crossing

import (
	"math"

	"github.com/vovakirdan/tui-crossing/internal/config"
	"github.com/vovakirdan/tui-crossing/internal/core"
	"github.com/vovakirdan/tui-crossing/internal/sprite"
)

// MissingGlyph is drawn where a sprite has no art in the atlas.
const MissingGlyph = '?'

// ScreenDrawer draws board-pixel sprites into a region of a terminal screen.
// Glyphs outside the region are clipped and spaces in sprite art are transparent.
type ScreenDrawer struct {
	dst     *core.Screen
	atlas   *sprite.Atlas
	area    core.Rect // Board region on screen, in cells
	boardW  float64
	boardH  float64
	missing int
}

// NewScreenDrawer maps a board of the given pixel size onto view cells
// starting at (originX, originY).
func NewScreenDrawer(dst *core.Screen, atlas *sprite.Atlas, board config.BoardConfig, view config.ViewConfig, originX, originY int) *ScreenDrawer {
	return &ScreenDrawer{
		dst:    dst,
		atlas:  atlas,
		area:   core.NewRect(originX, originY, view.Columns, view.Rows),
		boardW: board.Width,
		boardH: board.Height,
	}
}

// Area returns the screen region the board occupies.
func (d *ScreenDrawer) Area() core.Rect {
	return d.area
}

// Cell converts a board position to a screen cell.
func (d *ScreenDrawer) Cell(x, y float64) (col, row int) {
	col = d.area.X + int(math.Floor(x*float64(d.area.W)/d.boardW))
	row = d.area.Y + int(math.Floor(y*float64(d.area.H)/d.boardH))
	return col, row
}

// DrawImage draws the sprite's art with its top-left cell at the board position.
func (d *ScreenDrawer) DrawImage(id string, x, y float64) {
	s, err := d.atlas.Get(id)
	if err != nil {
		d.missing++
		col, row := d.Cell(x, y)
		d.set(col, row, MissingGlyph, core.ColorBrightRed)
		return
	}

	col, row := d.Cell(x+s.OffsetX, y+s.OffsetY)
	for dy, line := range s.Rows {
		dx := 0
		for _, r := range line {
			if r != ' ' {
				d.set(col+dx, row+dy, r, s.Color)
			}
			dx++
		}
	}
}

// Missing returns how many draws referenced unknown sprites.
func (d *ScreenDrawer) Missing() int {
	return d.missing
}

func (d *ScreenDrawer) set(col, row int, r rune, c core.Color) {
	if !d.area.Contains(col, row) {
		return
	}
	d.dst.SetColored(col, row, r, c)
}
