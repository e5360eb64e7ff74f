package sprites

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"

	xdraw "golang.org/x/image/draw"

	"chosenoffset.com/biobots/internal/render/raster"
)

// CreateSheet packs square tiles row-major into a transparent sheet.
// A nil tile leaves its slot empty.
func CreateSheet(tiles []image.Image, columns, tileSize int) *image.RGBA {
	if columns < 1 {
		columns = 1
	}
	rows := (len(tiles) + columns - 1) / columns

	sheet := raster.NewBuffer(columns*tileSize, rows*tileSize, Transparent)

	// Copy each tile into the sheet
	for i, tile := range tiles {
		if tile == nil {
			continue
		}

		x := (i % columns) * tileSize
		y := (i / columns) * tileSize

		destRect := image.Rect(x, y, x+tileSize, y+tileSize)
		draw.Draw(sheet, destRect, tile, tile.Bounds().Min, draw.Src)
	}

	return sheet
}

// SheetPosition returns the grid cell tile i lands in for the given column count
func SheetPosition(i, columns int) (col, row int) {
	if columns < 1 {
		columns = 1
	}
	return i % columns, i / columns
}

// Scale upscales img by an integer factor without smoothing. Factors below
// two return a copy.
func Scale(img image.Image, factor int) *image.RGBA {
	if factor < 1 {
		factor = 1
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}

// SavePNG saves an image to a PNG file
func SavePNG(img image.Image, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := png.Encode(file, img); err != nil {
		file.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return file.Close()
}
