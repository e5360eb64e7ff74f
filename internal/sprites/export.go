package sprites

import (
	"context"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"chosenoffset.com/biobots/atlas"
)

// ExportOptions controls where and how a sprite set is written
type ExportOptions struct {
	Dir        string // Output directory, created if missing
	SheetName  string // Base name of the sheet PNG and its JSON descriptor
	Layer      string // Layer recorded in the descriptor
	Columns    int    // Tiles per sheet row
	Scale      int    // Integer upscale factor applied to every image
	WriteTiles bool   // Also write one PNG per tile
	Workers    int    // Concurrent tile writers
}

// DefaultExportOptions returns options matching the embedded export config
func DefaultExportOptions() ExportOptions {
	return ExportOptions{
		Dir:        "assets",
		SheetName:  "biobots",
		Layer:      "sprites",
		Columns:    4,
		Scale:      1,
		WriteTiles: true,
		Workers:    4,
	}
}

// Export writes the sheet, its atlas descriptor and optionally the individual
// tiles. Tile files are encoded concurrently; the first failure cancels the
// remaining writes.
func Export(ctx context.Context, set *Set, opts ExportOptions, logger *log.Logger) (*atlas.Config, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Scale < 1 {
		return nil, fmt.Errorf("invalid scale %d", opts.Scale)
	}
	if opts.Columns < 1 {
		return nil, fmt.Errorf("invalid column count %d", opts.Columns)
	}
	if opts.SheetName == "" {
		return nil, fmt.Errorf("sheet name is required")
	}

	if err := os.MkdirAll(opts.Dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	tiles := set.Tiles()
	tileSize := set.Apple.Bounds().Dx() * opts.Scale
	images := make([]image.Image, len(tiles))
	for i, tile := range tiles {
		images[i] = Scale(tile.Image, opts.Scale)
	}

	sheetFile := opts.SheetName + ".png"
	config := atlas.NewConfig(opts.SheetName, opts.Layer, sheetFile, tileSize)
	for i, tile := range tiles {
		col, row := SheetPosition(i, opts.Columns)
		props := map[string]interface{}{"kind": tile.Kind}
		if tile.Kind == KindBotHead {
			props["direction"] = tile.Direction.Code()
		}
		config.Add(tile.Name, col, row, props)
	}

	sheet := CreateSheet(images, opts.Columns, tileSize)
	sheetPath := filepath.Join(opts.Dir, sheetFile)
	if err := SavePNG(sheet, sheetPath); err != nil {
		return nil, fmt.Errorf("failed to save sheet: %w", err)
	}
	logger.Info("wrote sheet", "path", sheetPath, "tiles", len(tiles), "size", fmt.Sprintf("%dx%d", sheet.Bounds().Dx(), sheet.Bounds().Dy()))

	configPath := filepath.Join(opts.Dir, opts.SheetName+".json")
	if err := config.Save(configPath); err != nil {
		return nil, err
	}
	logger.Info("wrote atlas descriptor", "path", configPath)

	if !opts.WriteTiles {
		return config, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	if opts.Workers > 0 {
		g.SetLimit(opts.Workers)
	}
	for i, tile := range tiles {
		img := images[i]
		path := filepath.Join(opts.Dir, tile.Name+".png")
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := SavePNG(img, path); err != nil {
				return err
			}
			logger.Debug("wrote tile", "path", path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to write tiles: %w", err)
	}
	logger.Info("wrote tiles", "count", len(tiles), "dir", opts.Dir)

	return config, nil
}
