// Package raster paints axis-aligned shapes and Bresenham diagonals into
// pixel buffers.
//
// Coordinates are non-negative pixel positions. Every shape is clipped by
// the buffer itself: draw.Image implementations such as *image.RGBA ignore
// Set calls outside their bounds.
package raster

import (
	"image"
	"image/color"
	"image/draw"

	"chosenoffset.com/biobots/internal/core/geom"
)

// NewBuffer creates a width x height buffer filled with fill.
func NewBuffer(width, height int, fill color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: fill}, image.Point{}, draw.Src)
	return img
}

// FilledRect sets every pixel of r.
func FilledRect(img draw.Image, r geom.Rect[int], c color.Color) {
	if r.IsEmpty() {
		return
	}
	br := r.BottomRight()
	for y := r.TopLeft.Y; y < br.Y; y++ {
		for x := r.TopLeft.X; x < br.X; x++ {
			img.Set(x, y, c)
		}
	}
}

// Rect draws a one pixel outline of r. The side columns are only drawn
// between the top and bottom rows, so no corner is painted twice.
func Rect(img draw.Image, r geom.Rect[int], c color.Color) {
	if r.IsEmpty() {
		return
	}
	br := r.BottomRight()
	HorizontalLine(img, r.TopLeft.X, br.X, r.TopLeft.Y, c)
	HorizontalLine(img, r.TopLeft.X, br.X, br.Y-1, c)
	if r.Size.H > 2 {
		VerticalLine(img, r.TopLeft.X, r.TopLeft.Y+1, br.Y-1, c)
		VerticalLine(img, br.X-1, r.TopLeft.Y+1, br.Y-1, c)
	}
}

// HorizontalLine paints row y over [x0, x1).
func HorizontalLine(img draw.Image, x0, x1, y int, c color.Color) {
	for x := x0; x < x1; x++ {
		img.Set(x, y, c)
	}
}

// VerticalLine paints column x over [y0, y1).
func VerticalLine(img draw.Image, x, y0, y1 int, c color.Color) {
	for y := y0; y < y1; y++ {
		img.Set(x, y, c)
	}
}

// DiagonalFromTopLeft draws a line from the top-left corner of r towards its
// bottom-right corner, one pixel per column. A square r gives the exact main
// diagonal.
func DiagonalFromTopLeft(img draw.Image, r geom.Rect[int], c color.Color) {
	if r.IsEmpty() {
		return
	}
	dx := r.Size.W - 1
	dy := r.Size.H - 1
	d := 2*dy - dx
	y := r.TopLeft.Y
	for x := r.TopLeft.X; x < r.BottomRight().X; x++ {
		img.Set(x, y, c)
		if d > 0 {
			y++
			d -= 2 * dx
		}
		d += 2 * dy
	}
}

// DiagonalFromBottomLeft mirrors DiagonalFromTopLeft vertically: the line
// starts at the bottom-left pixel of r and rises to the right. A square r
// gives the exact anti-diagonal.
func DiagonalFromBottomLeft(img draw.Image, r geom.Rect[int], c color.Color) {
	if r.IsEmpty() {
		return
	}
	dx := r.Size.W - 1
	dy := r.Size.H - 1
	d := 2*dy - dx
	br := r.BottomRight()
	y := br.Y
	for x := r.TopLeft.X; x < br.X; x++ {
		img.Set(x, y-1, c)
		if d > 0 {
			y--
			d -= 2 * dx
		}
		d += 2 * dy
	}
}
