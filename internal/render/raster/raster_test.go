package raster

import (
	"image"
	"image/color"
	"testing"

	"chosenoffset.com/biobots/internal/core/geom"
)

var (
	placeholder = color.RGBA{27, 26, 27, 255}
	debug       = color.RGBA{0, 200, 0, 255}
)

// expectPixels checks every pixel of img against paint(x, y).
func expectPixels(t *testing.T, img *image.RGBA, paint func(x, y int) bool) {
	t.Helper()
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			want := placeholder
			if paint(x, y) {
				want = debug
			}
			if got := img.RGBAAt(x, y); got != want {
				t.Errorf("pixel at %d, %d = %v, expected %v", x, y, got, want)
			}
		}
	}
}

func TestNewBuffer(t *testing.T) {
	img := NewBuffer(3, 2, placeholder)
	if img.Bounds() != image.Rect(0, 0, 3, 2) {
		t.Fatalf("bounds = %v", img.Bounds())
	}
	expectPixels(t, img, func(x, y int) bool { return false })
}

func TestDiagonalFromTopLeft(t *testing.T) {
	img := NewBuffer(8, 8, placeholder)
	DiagonalFromTopLeft(img, geom.R(1, 1, 6, 6), debug)
	expectPixels(t, img, func(x, y int) bool {
		return x != 0 && x != 7 && x == y
	})
}

func TestDiagonalFromBottomLeft(t *testing.T) {
	img := NewBuffer(8, 8, placeholder)
	DiagonalFromBottomLeft(img, geom.R(1, 1, 6, 6), debug)
	expectPixels(t, img, func(x, y int) bool {
		return x != 0 && x != 7 && x == 7-y
	})
}

func TestDiagonalOnePixelWide(t *testing.T) {
	img := NewBuffer(4, 4, placeholder)
	DiagonalFromTopLeft(img, geom.R(1, 0, 1, 4), debug)
	DiagonalFromBottomLeft(img, geom.R(3, 0, 1, 4), debug)
	expectPixels(t, img, func(x, y int) bool {
		return (x == 1 && y == 0) || (x == 3 && y == 3)
	})
}

func TestDiagonalShallow(t *testing.T) {
	img := NewBuffer(8, 2, placeholder)
	DiagonalFromTopLeft(img, geom.R(0, 0, 8, 2), debug)
	// exactly one pixel per column, starting top-left and ending bottom-right
	for x := 0; x < 8; x++ {
		top := img.RGBAAt(x, 0) == debug
		bottom := img.RGBAAt(x, 1) == debug
		if top == bottom {
			t.Errorf("column %d: top=%v bottom=%v", x, top, bottom)
		}
	}
	if img.RGBAAt(0, 0) != debug || img.RGBAAt(7, 1) != debug {
		t.Error("line does not span corner to corner")
	}
}

func TestFilledRect(t *testing.T) {
	img := NewBuffer(6, 6, placeholder)
	r := geom.R(1, 2, 3, 2)
	FilledRect(img, r, debug)
	expectPixels(t, img, func(x, y int) bool {
		return r.InBounds(geom.Pt(x, y))
	})
}

func TestRectOutline(t *testing.T) {
	img := NewBuffer(8, 8, placeholder)
	Rect(img, geom.R(1, 1, 6, 6), debug)
	expectPixels(t, img, func(x, y int) bool {
		inside := x >= 1 && x <= 6 && y >= 1 && y <= 6
		edge := x == 1 || x == 6 || y == 1 || y == 6
		return inside && edge
	})
}

func TestRectOutlineShort(t *testing.T) {
	tests := []struct {
		name string
		r    geom.Rect[int]
	}{
		{"height two", geom.R(1, 1, 4, 2)},
		{"height one", geom.R(1, 3, 4, 1)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			img := NewBuffer(6, 6, placeholder)
			Rect(img, tc.r, debug)
			br := tc.r.BottomRight()
			expectPixels(t, img, func(x, y int) bool {
				if x < tc.r.TopLeft.X || x >= br.X {
					return false
				}
				return y == tc.r.TopLeft.Y || y == br.Y-1
			})
		})
	}
}

func TestEmptyRectIsNoop(t *testing.T) {
	empty := []geom.Rect[int]{geom.R(1, 1, 0, 3), geom.R(2, 2, 3, 0)}
	for _, r := range empty {
		img := NewBuffer(4, 4, placeholder)
		FilledRect(img, r, debug)
		Rect(img, r, debug)
		DiagonalFromTopLeft(img, r, debug)
		DiagonalFromBottomLeft(img, r, debug)
		expectPixels(t, img, func(x, y int) bool { return false })
	}
}

func TestLines(t *testing.T) {
	img := NewBuffer(5, 5, placeholder)
	HorizontalLine(img, 1, 4, 0, debug)
	VerticalLine(img, 4, 2, 5, debug)
	HorizontalLine(img, 3, 3, 2, debug) // empty range
	expectPixels(t, img, func(x, y int) bool {
		return (y == 0 && x >= 1 && x < 4) || (x == 4 && y >= 2)
	})
}
