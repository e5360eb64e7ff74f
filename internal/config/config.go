// Package config provides YAML-based settings for the sprite export tool.
package config

import (
	_ "embed"
	"fmt"
)

//go:embed defaults/export.yaml
var defaultExportYAML []byte

// ExportConfig contains all settings for exporting and previewing sprites.
type ExportConfig struct {
	Output    OutputConfig    `yaml:"output"`
	Sheet     SheetConfig     `yaml:"sheet"`
	Generator GeneratorConfig `yaml:"generator"`
	Workers   int             `yaml:"workers"` // Concurrent tile writers
	Preview   PreviewConfig   `yaml:"preview"`
}

// OutputConfig defines where exported files go.
type OutputConfig struct {
	Dir        string `yaml:"dir"`
	SheetName  string `yaml:"sheet_name"` // Base name for <name>.png and <name>.json
	Layer      string `yaml:"layer"`
	WriteTiles bool   `yaml:"write_tiles"` // One PNG per sprite besides the sheet
}

// SheetConfig defines sheet layout.
type SheetConfig struct {
	Columns int `yaml:"columns"`
	Scale   int `yaml:"scale"` // Integer upscale factor
}

// GeneratorConfig defines sprite geometry.
type GeneratorConfig struct {
	CellSize int `yaml:"cell_size"`
}

// PreviewConfig defines terminal preview layout.
type PreviewConfig struct {
	Scale int `yaml:"scale"`
	Gap   int `yaml:"gap"` // Columns between sprites
}

// DefaultExportConfig returns the hardcoded defaults, matching defaults/export.yaml.
func DefaultExportConfig() ExportConfig {
	return ExportConfig{
		Output: OutputConfig{
			Dir:        "assets",
			SheetName:  "biobots",
			Layer:      "sprites",
			WriteTiles: true,
		},
		Sheet: SheetConfig{
			Columns: 4,
			Scale:   1,
		},
		Generator: GeneratorConfig{
			CellSize: 8,
		},
		Workers: 4,
		Preview: PreviewConfig{
			Scale: 1,
			Gap:   2,
		},
	}
}

// Validate rejects settings the exporter cannot honor.
func (c ExportConfig) Validate() error {
	switch {
	case c.Output.Dir == "":
		return fmt.Errorf("output.dir must not be empty")
	case c.Output.SheetName == "":
		return fmt.Errorf("output.sheet_name must not be empty")
	case c.Sheet.Columns < 1:
		return fmt.Errorf("sheet.columns must be positive, got %d", c.Sheet.Columns)
	case c.Sheet.Scale < 1:
		return fmt.Errorf("sheet.scale must be positive, got %d", c.Sheet.Scale)
	case c.Generator.CellSize < 2:
		return fmt.Errorf("generator.cell_size must be at least 2, got %d", c.Generator.CellSize)
	case c.Workers < 1:
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	case c.Preview.Scale < 1:
		return fmt.Errorf("preview.scale must be positive, got %d", c.Preview.Scale)
	case c.Preview.Gap < 0:
		return fmt.Errorf("preview.gap must not be negative, got %d", c.Preview.Gap)
	}
	return nil
}
