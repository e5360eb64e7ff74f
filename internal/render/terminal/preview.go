// Package terminal renders sprites as colored half-block text for a quick
// look in the terminal. Each text row carries two pixel rows: the upper
// pixel as the foreground of '▀' and the lower one as its background.
package terminal

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const halfBlock = "▀"

// Options controls preview layout
type Options struct {
	Backdrop color.Color // Shown through transparent pixels
	Scale    int         // Pixel repeat factor
	Gap      int         // Blank columns between sprites in a row
}

// DefaultOptions shows sprites at 1:1 on a white backdrop
func DefaultOptions() Options {
	return Options{Backdrop: color.White, Scale: 1, Gap: 2}
}

// Render draws a single image.
func Render(img image.Image, opts Options) string {
	opts = normalize(opts)
	b := img.Bounds()
	w, h := b.Dx()*opts.Scale, b.Dy()*opts.Scale
	backdrop := color.RGBAModel.Convert(opts.Backdrop).(color.RGBA)

	at := func(x, y int) color.RGBA {
		if y >= h {
			return backdrop
		}
		c := color.RGBAModel.Convert(img.At(b.Min.X+x/opts.Scale, b.Min.Y+y/opts.Scale)).(color.RGBA)
		return over(c, backdrop)
	}

	lines := make([]string, 0, (h+1)/2)
	for y := 0; y < h; y += 2 {
		var line strings.Builder
		for x := 0; x < w; x++ {
			style := lipgloss.NewStyle().
				Foreground(hex(at(x, y))).
				Background(hex(at(x, y+1)))
			line.WriteString(style.Render(halfBlock))
		}
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}

// RenderRow draws several images side by side, top-aligned.
func RenderRow(imgs []image.Image, opts Options) string {
	opts = normalize(opts)
	blocks := make([]string, 0, 2*len(imgs))
	gap := strings.Repeat(" ", opts.Gap)
	for i, img := range imgs {
		if i > 0 && opts.Gap > 0 {
			blocks = append(blocks, gap)
		}
		blocks = append(blocks, Render(img, opts))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}

func normalize(opts Options) Options {
	if opts.Scale < 1 {
		opts.Scale = 1
	}
	if opts.Gap < 0 {
		opts.Gap = 0
	}
	if opts.Backdrop == nil {
		opts.Backdrop = color.White
	}
	return opts
}

// over composites premultiplied src onto an opaque dst.
func over(src, dst color.RGBA) color.RGBA {
	if src.A == 0xff {
		return src
	}
	inv := 0xff - uint32(src.A)
	blend := func(s, d uint8) uint8 {
		v := uint32(s) + uint32(d)*inv/0xff
		if v > 0xff {
			v = 0xff
		}
		return uint8(v)
	}
	return color.RGBA{
		R: blend(src.R, dst.R),
		G: blend(src.G, dst.G),
		B: blend(src.B, dst.B),
		A: 0xff,
	}
}

func hex(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}
