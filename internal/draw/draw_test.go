package draw

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mousany/dawn-breaker/internal/object"
)

func TestCellOfFlipsY(t *testing.T) {
	c := NewCanvas(60, 80)

	col, row, ok := c.CellOf(0, 0)
	require.True(t, ok)
	assert.Equal(t, 0, col)
	assert.Equal(t, 79, row, "y=0 is the bottom row")

	col, row, ok = c.CellOf(object.ScreenWidth-1, object.ScreenHeight-1)
	require.True(t, ok)
	assert.Equal(t, 59, col)
	assert.Equal(t, 0, row)

	_, _, ok = c.CellOf(-1, 10)
	assert.False(t, ok)
	_, _, ok = c.CellOf(10, object.ScreenHeight)
	assert.False(t, ok)
}

func TestPaintLowerLayersOnTop(t *testing.T) {
	c := NewCanvas(60, 80)
	star := object.NewStar(300, 400, 0.2)
	ship := object.NewAlphaShip(300, 400, 20, 5, 2)
	widget := object.NewHealthWidget(300, 400)

	c.Paint(nil, []object.Object{ship, widget, star})

	col, row, _ := c.CellOf(300, 400)
	assert.Equal(t, 'V', c.At(col, row).Rune)
}

func TestPaintSkipsDeadObjects(t *testing.T) {
	c := NewCanvas(60, 80)
	ship := object.NewAlphaShip(300, 400, 20, 5, 2)
	ship.SetDead()

	c.Paint(nil, []object.Object{ship})

	col, row, _ := c.CellOf(300, 400)
	assert.True(t, c.At(col, row).Empty())
}

func TestPaintPlayer(t *testing.T) {
	c := NewCanvas(60, 80)
	player := object.NewPlayer()

	c.Paint(player, nil)

	col, row, _ := c.CellOf(player.X, player.Y)
	assert.Equal(t, GlyphFor(object.ImageDawnbreaker), c.At(col, row))
}

func TestMeteorCoversSeveralCells(t *testing.T) {
	c := NewCanvas(60, 80)
	c.Paint(nil, []object.Object{object.NewMeteor(300, 400)})

	filled := 0
	for row := 0; row < c.Rows(); row++ {
		for col := 0; col < c.Cols(); col++ {
			if c.At(col, row).Rune == '@' {
				filled++
			}
		}
	}
	assert.Greater(t, filled, 1)
}

func TestClearEmptiesCanvas(t *testing.T) {
	c := NewCanvas(10, 10)
	c.Plot(100, 100, GlyphFor(object.ImageStar))
	c.Clear()

	col, row, _ := c.CellOf(100, 100)
	assert.True(t, c.At(col, row).Empty())
}

func TestRenderEmitsPositionedGlyphs(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out)
	c := NewCanvas(60, 80)
	c.SetOffset(1)
	c.Plot(0, 0, Glyph{Rune: 'x', Color: ColorRed})

	c.Render(cw)
	require.NoError(t, cw.Flush())

	assert.Equal(t, "\033[81;1H\033[38;5;196mx\033[0m", out.String())
}

func TestUnknownImageGlyph(t *testing.T) {
	assert.Equal(t, '?', GlyphFor(object.ImageID(999)).Rune)
}

func TestChunkWriterFlushesEverything(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out)
	long := strings.Repeat("z", maxChunkSize*3+17)

	cw.WriteString(long)
	assert.Equal(t, len(long), cw.Len())
	require.NoError(t, cw.Flush())

	assert.Equal(t, long, out.String())
	assert.Zero(t, cw.Len())
}

func TestWriteCentered(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out)

	cw.WriteCentered(20, 3, "GAME OVER")
	require.NoError(t, cw.Flush())

	assert.Equal(t, "\033[3;6HGAME OVER", out.String())
}
