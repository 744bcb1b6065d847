package draw

import (
	"math"
	"slices"

	"github.com/mousany/dawn-breaker/internal/object"
	"github.com/mousany/dawn-breaker/internal/physics"
)

// Canvas is a grid of glyphs covering the whole world.
// World y grows up-screen, so y=0 lands on the bottom row.
type Canvas struct {
	cols   int
	rows   int
	cells  []Glyph // Flat slice: [row * cols + col]
	scaleX float64 // cols / world width
	scaleY float64 // rows / world height

	// Terminal rows above the canvas, used by the status line.
	offsetRow int

	order []*object.Entity // Reusable paint order buffer
}

// NewCanvas creates a canvas of cols x rows terminal cells.
func NewCanvas(cols, rows int) *Canvas {
	c := &Canvas{}
	c.Resize(cols, rows)
	return c
}

// Resize updates the canvas for new terminal dimensions.
func (c *Canvas) Resize(cols, rows int) {
	cols = max(cols, 1)
	rows = max(rows, 1)
	if cols != c.cols || rows != c.rows {
		c.cells = make([]Glyph, cols*rows)
		c.cols = cols
		c.rows = rows
	}
	c.scaleX = float64(cols) / object.ScreenWidth
	c.scaleY = float64(rows) / object.ScreenHeight
}

// SetOffset sets how many terminal rows sit above the canvas.
func (c *Canvas) SetOffset(row int) {
	c.offsetRow = row
}

func (c *Canvas) Cols() int { return c.cols }
func (c *Canvas) Rows() int { return c.rows }

// Clear empties every cell.
func (c *Canvas) Clear() {
	clear(c.cells)
}

// CellOf converts world coordinates to a 0-based (col, row).
// ok is false when the point lies outside the world.
func (c *Canvas) CellOf(x, y int) (col, row int, ok bool) {
	if x < 0 || x >= object.ScreenWidth || y < 0 || y >= object.ScreenHeight {
		return 0, 0, false
	}
	col = int(float64(x) * c.scaleX)
	row = c.rows - 1 - int(float64(y)*c.scaleY)
	return col, row, true
}

// At returns the glyph at a 0-based cell.
func (c *Canvas) At(col, row int) Glyph {
	if col < 0 || col >= c.cols || row < 0 || row >= c.rows {
		return Glyph{}
	}
	return c.cells[row*c.cols+col]
}

func (c *Canvas) setCell(col, row int, g Glyph) {
	if col >= 0 && col < c.cols && row >= 0 && row < c.rows {
		c.cells[row*c.cols+col] = g
	}
}

// Plot sets the cell under world point (x, y).
func (c *Canvas) Plot(x, y int, g Glyph) {
	if col, row, ok := c.CellOf(x, y); ok {
		c.setCell(col, row, g)
	}
}

// Blot fills every cell within radius world pixels of (x, y).
// The centre need not be on screen; the visible part is still drawn.
func (c *Canvas) Blot(x, y int, radius float64, g Glyph) {
	rc := radius * c.scaleX
	rr := radius * c.scaleY
	if rc < 1 && rr < 1 {
		c.Plot(x, y, g)
		return
	}
	rc = max(rc, 0.5)
	rr = max(rr, 0.5)

	cx := float64(x) * c.scaleX
	cy := float64(c.rows-1) - float64(y)*c.scaleY
	for row := int(math.Floor(cy - rr)); row <= int(math.Ceil(cy+rr)); row++ {
		for col := int(math.Floor(cx - rc)); col <= int(math.Ceil(cx+rc)); col++ {
			dx := (float64(col) - cx) / rc
			dy := (float64(row) - cy) / rr
			if dx*dx+dy*dy <= 1 {
				c.setCell(col, row, g)
			}
		}
	}
}

// Paint draws the entities highest layer first, so lower layers end up on
// top. The player is painted last within its layer.
func (c *Canvas) Paint(player *object.Player, objects []object.Object) {
	c.order = c.order[:0]
	for _, obj := range objects {
		if e := obj.Base(); !e.IsDead() {
			c.order = append(c.order, e)
		}
	}
	if player != nil && !player.IsDead() {
		c.order = append(c.order, &player.Entity)
	}
	slices.SortStableFunc(c.order, func(a, b *object.Entity) int {
		return b.Layer - a.Layer
	})

	for _, e := range c.order {
		g := GlyphFor(e.Image)
		if g.Blob {
			c.Blot(e.X, e.Y, e.Size*physics.PixelsPerSize/2, g)
		} else {
			c.Plot(e.X, e.Y, g)
		}
	}
}

// Render writes every non-empty cell to cw. Cells are addressed below the
// offset rows; colour changes are only emitted when the colour differs.
func (c *Canvas) Render(cw *ChunkWriter) {
	current := ColorDefault
	for row := 0; row < c.rows; row++ {
		offset := row * c.cols
		for col := 0; col < c.cols; col++ {
			g := c.cells[offset+col]
			if g.Empty() {
				continue
			}
			cw.MoveCursor(col+1, row+1+c.offsetRow)
			if g.Color != current {
				cw.SetColor(g.Color)
				current = g.Color
			}
			cw.WriteRune(g.Rune)
		}
	}
	if current != ColorDefault {
		cw.ResetColor()
	}
}
