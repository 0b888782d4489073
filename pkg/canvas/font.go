package canvas

import (
	"image/color"

	"github.com/gogpu/gg"
	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"

	"tableflip.dev/heatgrid/pkg/glyph"
)

// labelFont renders labels with the same bitmaps the stamper uses, one
// pixel per bit. Not safe for concurrent use.
var labelFont tinyfont.Fonter = &bitmapFont{}

const (
	labelHeight  = 5
	labelAdvance = 6
)

type bitmapFont struct {
	g bitmapGlyph
}

type bitmapGlyph struct {
	r rune
}

func (g *bitmapGlyph) Draw(display drivers.Displayer, x, y int16, c color.RGBA) {
	p, ok := glyph.Lookup(g.r)
	if !ok {
		return
	}
	for row, bits := range p {
		for col, bit := range bits {
			if bit == 1 {
				display.SetPixel(x+int16(col), y-int16(labelHeight-1-row), c)
			}
		}
	}
}

func (g *bitmapGlyph) Info() tinyfont.GlyphInfo {
	return tinyfont.GlyphInfo{
		Rune:     g.r,
		Width:    labelHeight,
		Height:   labelHeight,
		XAdvance: labelAdvance,
		YOffset:  -(labelHeight - 1),
	}
}

func (f *bitmapFont) GetYAdvance() uint8 { return labelHeight + 2 }

func (f *bitmapFont) GetGlyph(r rune) tinyfont.Glypher {
	f.g.r = r
	return &f.g
}

// surface adapts a gg context to the tinyfont display interface.
type surface struct {
	dc *gg.Context
}

func (s surface) Size() (x, y int16) {
	return int16(s.dc.Width()), int16(s.dc.Height())
}

func (s surface) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || int(x) >= s.dc.Width() || int(y) >= s.dc.Height() {
		return
	}
	s.dc.SetPixel(int(x), int(y), gg.FromColor(c))
}

func (s surface) Display() error { return nil }

// writeLabel draws s with its baseline at y.
func writeLabel(dc *gg.Context, x, y int, s string, c color.RGBA) {
	tinyfont.WriteLine(surface{dc: dc}, labelFont, int16(x), int16(y), s, c)
}
