package render

import (
	"image"
	"image/color"

	"chosenoffset.com/biobots/internal/core/compass"
	"chosenoffset.com/biobots/internal/sprites"
)

// Texture is a sprite image that has been handed to the display backend.
type Texture interface {
	// Bounds returns the texture size in pixels.
	Bounds() image.Rectangle
}

// Uploader converts CPU-side images into backend textures.
type Uploader interface {
	// Upload copies img into a new texture.
	Upload(img image.Image) Texture
}

// DrawOptions positions and tints a texture.
type DrawOptions struct {
	X, Y  float64
	Scale float64
	// Tint multiplies the texture colors; nil draws it unchanged.
	Tint color.Color
}

// Canvas is a surface textures can be drawn onto.
type Canvas interface {
	DrawTexture(t Texture, opts DrawOptions)
}

// SpriteTextures mirrors sprites.Set after upload.
type SpriteTextures struct {
	Apple    Texture
	Organics Texture
	Rock     Texture
	BotBody  Texture
	BotHead  [compass.Count]Texture // indexed by Direction.Code()
}

// UploadSet uploads every sprite of set once.
func UploadSet(u Uploader, set *sprites.Set) *SpriteTextures {
	t := &SpriteTextures{
		Apple:    u.Upload(set.Apple),
		Organics: u.Upload(set.Organics),
		Rock:     u.Upload(set.Rock),
		BotBody:  u.Upload(set.Bot.Body),
	}
	for _, d := range compass.All() {
		t.BotHead[d.Code()] = u.Upload(set.Head(d))
	}
	return t
}

// Head returns the head texture for d.
func (t *SpriteTextures) Head(d compass.Direction) Texture {
	return t.BotHead[d.Code()]
}

// DrawBot draws a bot facing d: the body tinted with the bot's color, then
// the untinted head overlay on top.
func (t *SpriteTextures) DrawBot(dst Canvas, d compass.Direction, tint color.Color, x, y, scale float64) {
	dst.DrawTexture(t.BotBody, DrawOptions{X: x, Y: y, Scale: scale, Tint: tint})
	dst.DrawTexture(t.Head(d), DrawOptions{X: x, Y: y, Scale: scale})
}
