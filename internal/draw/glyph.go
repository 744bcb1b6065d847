package draw

import "github.com/mousany/dawn-breaker/internal/object"

// Color is an ANSI 256-colour palette index. Zero means the terminal default.
type Color uint8

const (
	ColorDefault Color = 0
	ColorRed     Color = 196
	ColorOrange  Color = 208
	ColorYellow  Color = 226
	ColorGreen   Color = 46
	ColorCyan    Color = 51
	ColorBlue    Color = 33
	ColorMagenta Color = 201
	ColorGray    Color = 244
	ColorWhite   Color = 231
)

// Glyph is what a single terminal cell shows.
type Glyph struct {
	Rune  rune
	Color Color
	// Blob glyphs cover their whole collision footprint instead of one cell.
	Blob bool
}

// Empty reports whether the glyph draws nothing.
func (g Glyph) Empty() bool {
	return g.Rune == 0
}

var glyphs = map[object.ImageID]Glyph{
	object.ImageDawnbreaker:   {Rune: 'A', Color: ColorCyan},
	object.ImageStar:          {Rune: '.', Color: ColorGray},
	object.ImageExplosion:     {Rune: '*', Color: ColorOrange, Blob: true},
	object.ImageBlueBullet:    {Rune: '|', Color: ColorBlue},
	object.ImageRedBullet:     {Rune: '!', Color: ColorRed},
	object.ImageMeteor:        {Rune: '@', Color: ColorYellow, Blob: true},
	object.ImageAlphatron:     {Rune: 'V', Color: ColorGreen},
	object.ImageSigmatron:     {Rune: 'W', Color: ColorMagenta},
	object.ImageOmegatron:     {Rune: 'M', Color: ColorRed},
	object.ImageHealthGoodie:  {Rune: '+', Color: ColorGreen},
	object.ImagePowerupGoodie: {Rune: 'U', Color: ColorYellow},
	object.ImageMeteorGoodie:  {Rune: 'o', Color: ColorOrange},
}

// GlyphFor returns the glyph for an image id, or '?' for unknown ids.
func GlyphFor(id object.ImageID) Glyph {
	if g, ok := glyphs[id]; ok {
		return g
	}
	return Glyph{Rune: '?', Color: ColorWhite}
}
