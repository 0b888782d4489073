// Package palette is the single color lookup used by every renderer.
// Intensities are stored raw; clamping to a bucket happens here.
package palette

import (
	"image/color"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// TopBucket is the darkest/most saturated bucket index.
const TopBucket = 4

type pair struct{ light, dark string }

var buckets = [TopBucket + 1]pair{
	{"#ebedf0", "#2d333b"},
	{"#9be9a8", "#0e4429"},
	{"#40c463", "#006d32"},
	{"#30a14e", "#26a641"},
	{"#216e39", "#39d353"},
}

var (
	label      = pair{"#000000", "#c9d1d9"}
	outline    = pair{"#000000", "#ffffff"}
	background = pair{"#ffffff", "#0d1117"}
)

func (p pair) pick(dark bool) string {
	if dark {
		return p.dark
	}
	return p.light
}

// Bucket maps a raw intensity to a bucket index in [0, TopBucket].
func Bucket(intensity int) int {
	switch {
	case intensity <= 0:
		return 0
	case intensity >= TopBucket:
		return TopBucket
	}
	return intensity
}

// Hex returns the hex color for an intensity.
func Hex(intensity int, dark bool) string {
	return buckets[Bucket(intensity)].pick(dark)
}

// Color returns the color for an intensity.
func Color(intensity int, dark bool) colorful.Color {
	return mustHex(Hex(intensity, dark))
}

// RGBA converts an intensity color for image consumers.
func RGBA(intensity int, dark bool) color.RGBA {
	return toRGBA(Color(intensity, dark))
}

// Legend returns the bucket colors from "Less" to "More".
func Legend(dark bool) []string {
	out := make([]string, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, b.pick(dark))
	}
	return out
}

// LabelHex is the color for month and weekday labels.
func LabelHex(dark bool) string { return label.pick(dark) }

// OutlineHex is the hover outline color.
func OutlineHex(dark bool) string { return outline.pick(dark) }

// BackgroundHex is the surface color behind the grid.
func BackgroundHex(dark bool) string { return background.pick(dark) }

// Highlight blends the cell color towards the outline color, used where a
// real outline cannot be drawn (terminal cells).
func Highlight(intensity int, dark bool) colorful.Color {
	return Color(intensity, dark).BlendLab(mustHex(OutlineHex(dark)), 0.35).Clamped()
}

// CellStyle is the lipgloss style for a filled cell.
func CellStyle(intensity int, dark bool) lipgloss.Style {
	return lipgloss.NewStyle().Background(lipgloss.Color(Hex(intensity, dark)))
}

// HoverStyle is the lipgloss style for the cell under the pointer.
func HoverStyle(intensity int, dark bool) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(Highlight(intensity, dark).Hex())).
		Foreground(lipgloss.Color(OutlineHex(dark)))
}

// LabelStyle is the lipgloss style for header and weekday labels.
func LabelStyle(dark bool) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(LabelHex(dark)))
}

func mustHex(hex string) colorful.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		// Only reachable with a typo in the tables above.
		panic(err)
	}
	return c
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// ToRGBA converts any hex color from this package for image consumers.
func ToRGBA(hex string) color.RGBA {
	return toRGBA(mustHex(hex))
}
