package ebiten

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"chosenoffset.com/biobots/internal/render"
	"chosenoffset.com/biobots/internal/sprites"
)

// EbitenUploader implements the Uploader interface using Ebiten.
type EbitenUploader struct{}

// NewUploader creates a new Ebiten-based uploader.
func NewUploader() render.Uploader {
	return &EbitenUploader{}
}

// Upload copies img into a new ebiten.Image.
func (u *EbitenUploader) Upload(img image.Image) render.Texture {
	return &EbitenImage{img: ebiten.NewImageFromImage(img)}
}

// UploadSet uploads a whole sprite set. Call it once and keep the result.
func UploadSet(set *sprites.Set) *render.SpriteTextures {
	return render.UploadSet(NewUploader(), set)
}

// EbitenImage wraps an ebiten.Image to implement render.Texture and render.Canvas.
type EbitenImage struct {
	img *ebiten.Image
}

// WrapEbitenImage wraps an existing ebiten.Image, typically the screen.
func WrapEbitenImage(img *ebiten.Image) *EbitenImage {
	return &EbitenImage{img: img}
}

// Bounds returns the bounds of the image.
func (i *EbitenImage) Bounds() image.Rectangle {
	return i.img.Bounds()
}

// DrawTexture draws an uploaded texture onto this image.
func (i *EbitenImage) DrawTexture(t render.Texture, opts render.DrawOptions) {
	src := t.(*EbitenImage).img

	ebitenOpts := &ebiten.DrawImageOptions{}
	if opts.Scale != 0 {
		ebitenOpts.GeoM.Scale(opts.Scale, opts.Scale)
	}
	ebitenOpts.GeoM.Translate(opts.X, opts.Y)
	if opts.Tint != nil {
		ebitenOpts.ColorScale.ScaleWithColor(opts.Tint)
	}

	i.img.DrawImage(src, ebitenOpts)
}

// GetEbitenImage returns the underlying ebiten.Image.
// This is useful for interop with ebiten-specific code.
func (i *EbitenImage) GetEbitenImage() *ebiten.Image {
	return i.img
}
