package atlas

import (
	"encoding/json"
	"fmt"
	"os"

	"chosenoffset.com/biobots/internal/core/geom"
)

// TileDefinition defines a single tile within an atlas
type TileDefinition struct {
	Name       string                 `json:"name"`       // Semantic name (e.g., "bot_head_ne")
	AtlasX     int                    `json:"atlas_x"`    // X position in atlas (in tiles)
	AtlasY     int                    `json:"atlas_y"`    // Y position in atlas (in tiles)
	Properties map[string]interface{} `json:"properties"` // Custom properties (kind, direction, ...)
}

// Config is the JSON descriptor written next to a sprite sheet
type Config struct {
	Name       string           `json:"name"`        // Atlas name
	Layer      string           `json:"layer"`       // Layer this atlas belongs to (e.g., "sprites")
	ImagePath  string           `json:"image_path"`  // Path to the sheet image, relative to the descriptor
	TileWidth  int              `json:"tile_width"`  // Width of each tile in pixels
	TileHeight int              `json:"tile_height"` // Height of each tile in pixels
	Tiles      []TileDefinition `json:"tiles"`       // Array of tile definitions
}

// NewConfig creates an empty descriptor for square tiles
func NewConfig(name, layer, imagePath string, tileSize int) *Config {
	return &Config{
		Name:       name,
		Layer:      layer,
		ImagePath:  imagePath,
		TileWidth:  tileSize,
		TileHeight: tileSize,
	}
}

// Add appends a tile at the given grid position
func (c *Config) Add(name string, atlasX, atlasY int, props map[string]interface{}) {
	c.Tiles = append(c.Tiles, TileDefinition{
		Name:       name,
		AtlasX:     atlasX,
		AtlasY:     atlasY,
		Properties: props,
	})
}

// Validate checks tile dimensions, image path and tile name uniqueness
func (c *Config) Validate() error {
	if c.TileWidth <= 0 || c.TileHeight <= 0 {
		return fmt.Errorf("invalid tile dimensions: %dx%d", c.TileWidth, c.TileHeight)
	}
	if c.ImagePath == "" {
		return fmt.Errorf("image_path is required in atlas config")
	}
	seen := make(map[string]bool, len(c.Tiles))
	for _, tile := range c.Tiles {
		if tile.AtlasX < 0 || tile.AtlasY < 0 {
			return fmt.Errorf("tile %s has negative atlas position (%d, %d)", tile.Name, tile.AtlasX, tile.AtlasY)
		}
		if tile.Name == "" {
			continue
		}
		if seen[tile.Name] {
			return fmt.Errorf("duplicate tile name: %s", tile.Name)
		}
		seen[tile.Name] = true
	}
	return nil
}

// Load reads and validates an atlas descriptor
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read atlas config %s: %w", path, err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse atlas config %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("atlas config %s: %w", path, err)
	}
	return &config, nil
}

// Save writes the descriptor as indented JSON
func (c *Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode atlas config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write atlas config %s: %w", path, err)
	}
	return nil
}

// Tile returns a tile definition by name
func (c *Config) Tile(name string) (*TileDefinition, bool) {
	for i := range c.Tiles {
		if c.Tiles[i].Name == name {
			return &c.Tiles[i], true
		}
	}
	return nil, false
}

// TileRect returns the pixel rectangle a tile occupies in the sheet
func (c *Config) TileRect(tile *TileDefinition) geom.Rect[int] {
	return geom.R(tile.AtlasX*c.TileWidth, tile.AtlasY*c.TileHeight, c.TileWidth, c.TileHeight)
}

// GetTileProperty retrieves a property from a tile definition
func (td *TileDefinition) GetTileProperty(key string) (interface{}, bool) {
	if td.Properties == nil {
		return nil, false
	}
	val, ok := td.Properties[key]
	return val, ok
}

// GetTilePropertyString retrieves a string property
func (td *TileDefinition) GetTilePropertyString(key string, defaultVal string) string {
	val, ok := td.GetTileProperty(key)
	if !ok {
		return defaultVal
	}
	if strVal, ok := val.(string); ok {
		return strVal
	}
	return defaultVal
}

// GetTilePropertyInt retrieves an integer property
func (td *TileDefinition) GetTilePropertyInt(key string, defaultVal int) int {
	val, ok := td.GetTileProperty(key)
	if !ok {
		return defaultVal
	}
	switch v := val.(type) {
	case float64: // JSON numbers
		return int(v)
	case int:
		return v
	case uint32:
		return int(v)
	}
	return defaultVal
}
