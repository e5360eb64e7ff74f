// Package sprites draws the biobots tile sprites from geometric primitives
// and packs them into sheets for export.
package sprites

import (
	"image"

	"chosenoffset.com/biobots/internal/core/compass"
	"chosenoffset.com/biobots/internal/core/geom"
	"chosenoffset.com/biobots/internal/render/raster"
)

// Generator draws sprites for one cell size and palette. The zero value is
// not usable; start from NewGenerator.
type Generator struct {
	CellSize int
	Palette  Palette
}

// NewGenerator returns a generator for CellSize cells with DefaultPalette
func NewGenerator() *Generator {
	return &Generator{CellSize: CellSize, Palette: DefaultPalette}
}

var defaultGenerator = NewGenerator()

// CreateApple creates the apple sprite with the default generator
func CreateApple() *image.RGBA { return defaultGenerator.Apple() }

// CreateOrganics creates the organic waste sprite with the default generator
func CreateOrganics() *image.RGBA { return defaultGenerator.Organics() }

// CreateRock creates the rock sprite with the default generator
func CreateRock() *image.RGBA { return defaultGenerator.Rock() }

// CreateBotBody creates the bot body sprite with the default generator
func CreateBotBody() *image.RGBA { return defaultGenerator.BotBody() }

// CreateBotHead creates one bot head sprite with the default generator
func CreateBotHead(d compass.Direction) *image.RGBA { return defaultGenerator.BotHead(d) }

// CreateBotHeads creates all eight head sprites, indexed by direction code
func CreateBotHeads() [compass.Count]*image.RGBA { return defaultGenerator.BotHeads() }

func (g *Generator) half() int {
	return g.CellSize / 2
}

func (g *Generator) emptyCell() *image.RGBA {
	return raster.NewBuffer(g.CellSize, g.CellSize, Transparent)
}

// inset returns the cell shrunk by n pixels on every side.
func (g *Generator) inset(n int) geom.Rect[int] {
	return geom.R(n, n, g.CellSize-2*n, g.CellSize-2*n)
}

// Apple is a filled disc: pixels whose squared distance from the cell center
// is strictly below half² are painted.
func (g *Generator) Apple() *image.RGBA {
	img := g.emptyCell()
	half := g.half()
	for y := 0; y < g.CellSize; y++ {
		for x := 0; x < g.CellSize; x++ {
			dx, dy := half-x, half-y
			if dx*dx+dy*dy < half*half {
				img.SetRGBA(x, y, g.Palette.Apple)
			}
		}
	}
	return img
}

// Organics is an outlined square inset by one pixel with a filled core
// inset by two.
func (g *Generator) Organics() *image.RGBA {
	img := g.emptyCell()
	raster.Rect(img, g.inset(1), g.Palette.OrganicOutline)
	raster.FilledRect(img, g.inset(2), g.Palette.OrganicFill)
	return img
}

// Rock is a filled square inset by one pixel.
func (g *Generator) Rock() *image.RGBA {
	img := g.emptyCell()
	raster.FilledRect(img, g.inset(1), g.Palette.Rock)
	return img
}

// BotBody is an opaque cell of the body color.
func (g *Generator) BotBody() *image.RGBA {
	return raster.NewBuffer(g.CellSize, g.CellSize, g.Palette.BotBody)
}

// BotHead draws the head overlay for a bot facing d: the cell outline and a
// mark running from the cell center to the edge or corner d points at.
func (g *Generator) BotHead(d compass.Direction) *image.RGBA {
	img := g.emptyCell()
	if c := g.Palette.BotOutline; c != nil {
		raster.Rect(img, geom.R(0, 0, g.CellSize, g.CellSize), c)
	}
	c := g.Palette.BotHead
	if c == nil {
		return img
	}

	size, half := g.CellSize, g.half()
	quadrant := geom.Sz(half, half)
	switch d {
	case compass.N:
		raster.VerticalLine(img, half, 0, half, c)
	case compass.S:
		raster.VerticalLine(img, half, half, size, c)
	case compass.W:
		raster.HorizontalLine(img, 0, half, half, c)
	case compass.E:
		raster.HorizontalLine(img, half, size, half, c)
	case compass.NW:
		raster.DiagonalFromTopLeft(img, geom.Rect[int]{TopLeft: geom.Pt(0, 0), Size: quadrant}, c)
	case compass.SE:
		raster.DiagonalFromTopLeft(img, geom.Rect[int]{TopLeft: geom.Pt(half, half), Size: quadrant}, c)
	case compass.SW:
		raster.DiagonalFromBottomLeft(img, geom.Rect[int]{TopLeft: geom.Pt(0, half), Size: quadrant}, c)
	case compass.NE:
		raster.DiagonalFromBottomLeft(img, geom.Rect[int]{TopLeft: geom.Pt(half, 0), Size: quadrant}, c)
	}
	return img
}

// BotHeads draws all eight head variants, indexed by direction code.
func (g *Generator) BotHeads() [compass.Count]*image.RGBA {
	var heads [compass.Count]*image.RGBA
	for _, d := range compass.All() {
		heads[d.Code()] = g.BotHead(d)
	}
	return heads
}
