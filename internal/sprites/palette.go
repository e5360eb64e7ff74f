package sprites

import "image/color"

// CellSize is the edge length of a field cell in pixels
const CellSize = 8

// CellSizeHalf is half a cell, the center coordinate of a tile
const CellSizeHalf = CellSize / 2

// Transparent is the background every sprite except the bot body starts from
var Transparent = color.RGBA{0, 0, 0, 0}

// Palette names the colors used by the sprite generator.
// BotOutline and BotHead are optional: nil skips that part of the head sprite.
type Palette struct {
	// Items
	Apple          color.RGBA
	Rock           color.RGBA
	OrganicFill    color.RGBA
	OrganicOutline color.RGBA

	// Bots
	BotBody    color.RGBA
	BotOutline color.Color
	BotHead    color.Color

	// Field
	FieldBackground color.RGBA
	Ocean           color.RGBA
	Mud             color.RGBA

	// UnderwaterMask is alpha-premultiplied and may be additive (channels
	// above alpha); it tints water cells in the renderer, not a sprite.
	UnderwaterMask color.Color
}

var botGray = color.RGBA{111, 111, 111, 255}

// Water colors
var (
	BlueWater  = color.RGBA{150, 150, 255, 255}
	GreenWater = color.RGBA{150, 255, 150, 255}
)

// DefaultPalette is the palette the stock sprite set is drawn with
var DefaultPalette = Palette{
	Apple:          color.RGBA{0, 0x64, 0, 255},       // Dark green
	Rock:           color.RGBA{0x62, 0x62, 0x62, 255}, // Stone gray
	OrganicFill:    color.RGBA{0xC8, 0xC8, 0xC8, 255}, // Light gray
	OrganicOutline: color.RGBA{0x80, 0x80, 0x80, 255}, // Mid gray

	BotBody:    color.RGBA{255, 255, 255, 255}, // White, tinted per bot at draw time
	BotOutline: botGray,
	BotHead:    botGray,

	FieldBackground: color.RGBA{255, 255, 255, 255},
	Ocean:           BlueWater,
	Mud:             color.RGBA{140, 80, 62, 255},

	UnderwaterMask: color.RGBA{100, 100, 255, 80},
}
