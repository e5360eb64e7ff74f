package sprites

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"chosenoffset.com/biobots/atlas"
	"chosenoffset.com/biobots/internal/core/compass"
	"chosenoffset.com/biobots/internal/render/raster"
)

func TestCreateSheet(t *testing.T) {
	colors := []color.RGBA{
		{255, 0, 0, 255},
		{0, 255, 0, 255},
		{0, 0, 255, 255},
	}
	tiles := []image.Image{
		raster.NewBuffer(2, 2, colors[0]),
		nil,
		raster.NewBuffer(2, 2, colors[1]),
		raster.NewBuffer(2, 2, colors[2]),
	}

	sheet := CreateSheet(tiles, 3, 2)
	if sheet.Bounds() != image.Rect(0, 0, 6, 4) {
		t.Fatalf("sheet bounds = %v", sheet.Bounds())
	}

	checks := []struct {
		x, y     int
		expected color.RGBA
	}{
		{0, 0, colors[0]},
		{1, 1, colors[0]},
		{2, 0, Transparent}, // nil slot
		{5, 1, colors[1]},
		{0, 2, colors[2]},
		{3, 3, Transparent}, // past the last tile
	}
	for _, c := range checks {
		if got := sheet.RGBAAt(c.x, c.y); got != c.expected {
			t.Errorf("sheet at %d, %d = %v, expected %v", c.x, c.y, got, c.expected)
		}
	}
}

func TestSheetPosition(t *testing.T) {
	tests := []struct {
		i, columns int
		col, row   int
	}{
		{0, 4, 0, 0},
		{3, 4, 3, 0},
		{4, 4, 0, 1},
		{11, 4, 3, 2},
		{2, 0, 0, 2},
	}
	for _, tc := range tests {
		col, row := SheetPosition(tc.i, tc.columns)
		if col != tc.col || row != tc.row {
			t.Errorf("SheetPosition(%d, %d) = %d, %d, expected %d, %d", tc.i, tc.columns, col, row, tc.col, tc.row)
		}
	}
}

func TestScale(t *testing.T) {
	src := raster.NewBuffer(2, 1, Transparent)
	red := color.RGBA{255, 0, 0, 255}
	src.SetRGBA(1, 0, red)

	dst := Scale(src, 3)
	if dst.Bounds() != image.Rect(0, 0, 6, 3) {
		t.Fatalf("scaled bounds = %v", dst.Bounds())
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 6; x++ {
			want := Transparent
			if x >= 3 {
				want = red
			}
			if got := dst.RGBAAt(x, y); got != want {
				t.Errorf("scaled at %d, %d = %v, expected %v", x, y, got, want)
			}
		}
	}

	if same := Scale(src, 0); same.Bounds() != src.Bounds() {
		t.Errorf("factor 0 should keep size, got %v", same.Bounds())
	}
}

func TestExport(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	opts := DefaultExportOptions()
	opts.Dir = dir
	opts.Scale = 2

	config, err := Export(context.Background(), Generate(), opts, nil)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	loaded, err := atlas.Load(filepath.Join(dir, "biobots.json"))
	if err != nil {
		t.Fatalf("failed to load descriptor: %v", err)
	}
	if loaded.TileWidth != 2*CellSize || len(loaded.Tiles) != len(config.Tiles) {
		t.Errorf("descriptor mismatch: %d px, %d tiles", loaded.TileWidth, len(loaded.Tiles))
	}

	f, err := os.Open(filepath.Join(dir, "biobots.png"))
	if err != nil {
		t.Fatalf("sheet missing: %v", err)
	}
	defer f.Close()
	sheet, err := png.Decode(f)
	if err != nil {
		t.Fatalf("sheet not a PNG: %v", err)
	}
	// 12 tiles in 4 columns of 16px tiles
	if sheet.Bounds() != image.Rect(0, 0, 64, 48) {
		t.Errorf("sheet bounds = %v", sheet.Bounds())
	}

	head, ok := loaded.Tile("bot_head_ne")
	if !ok {
		t.Fatal("bot_head_ne missing from descriptor")
	}
	if head.GetTilePropertyInt("direction", -1) != int(compass.NE.Code()) {
		t.Errorf("bot_head_ne direction = %d", head.GetTilePropertyInt("direction", -1))
	}

	// The apple tile's center pixel in the sheet
	apple, _ := loaded.Tile("apple")
	r := loaded.TileRect(apple)
	cx, cy := r.TopLeft.X+CellSizeHalf*2, r.TopLeft.Y+CellSizeHalf*2
	if got := color.RGBAModel.Convert(sheet.At(cx, cy)).(color.RGBA); got != DefaultPalette.Apple {
		t.Errorf("apple center in sheet = %v", got)
	}

	for _, tile := range config.Tiles {
		if _, err := os.Stat(filepath.Join(dir, tile.Name+".png")); err != nil {
			t.Errorf("tile file for %s missing: %v", tile.Name, err)
		}
	}
}

func TestExportSheetOnly(t *testing.T) {
	dir := t.TempDir()
	opts := DefaultExportOptions()
	opts.Dir = dir
	opts.WriteTiles = false

	if _, err := Export(context.Background(), Generate(), opts, nil); err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "apple.png")); !os.IsNotExist(err) {
		t.Errorf("expected no tile files, stat error = %v", err)
	}
}

func TestExportRejectsBadOptions(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*ExportOptions)
	}{
		{"zero scale", func(o *ExportOptions) { o.Scale = 0 }},
		{"zero columns", func(o *ExportOptions) { o.Columns = 0 }},
		{"no sheet name", func(o *ExportOptions) { o.SheetName = "" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			opts := DefaultExportOptions()
			opts.Dir = t.TempDir()
			tc.modify(&opts)
			if _, err := Export(context.Background(), Generate(), opts, nil); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestExportCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	opts := DefaultExportOptions()
	opts.Dir = t.TempDir()
	if _, err := Export(ctx, Generate(), opts, nil); err == nil {
		t.Error("expected cancellation error")
	}
}
