package sprites

import (
	"image"

	"chosenoffset.com/biobots/internal/core/compass"
)

// Set is the complete sprite set. It is built once and treated as read-only.
type Set struct {
	Apple    *image.RGBA
	Organics *image.RGBA
	Rock     *image.RGBA
	Bot      BotImages
}

// BotImages holds the bot body and one head overlay per direction
type BotImages struct {
	Head [compass.Count]*image.RGBA // indexed by Direction.Code()
	Body *image.RGBA
}

// Tile is a named sprite in sheet order
type Tile struct {
	Name      string
	Kind      string
	Direction compass.Direction // only meaningful for Kind == KindBotHead
	Image     *image.RGBA
}

// Tile kinds
const (
	KindItem    = "item"
	KindBotBody = "bot_body"
	KindBotHead = "bot_head"
)

// Generate draws the full sprite set with the default generator
func Generate() *Set {
	return defaultGenerator.Generate()
}

// Generate draws the full sprite set.
func (g *Generator) Generate() *Set {
	return &Set{
		Apple:    g.Apple(),
		Organics: g.Organics(),
		Rock:     g.Rock(),
		Bot: BotImages{
			Head: g.BotHeads(),
			Body: g.BotBody(),
		},
	}
}

// Head returns the head overlay for d.
func (s *Set) Head(d compass.Direction) *image.RGBA {
	return s.Bot.Head[d.Code()]
}

// Tiles lists the sprites in sheet order: items, bot body, then heads in
// direction code order.
func (s *Set) Tiles() []Tile {
	tiles := []Tile{
		{Name: "apple", Kind: KindItem, Image: s.Apple},
		{Name: "organics", Kind: KindItem, Image: s.Organics},
		{Name: "rock", Kind: KindItem, Image: s.Rock},
		{Name: "bot_body", Kind: KindBotBody, Image: s.Bot.Body},
	}
	for _, d := range compass.All() {
		tiles = append(tiles, Tile{
			Name:      "bot_head_" + d.Short(),
			Kind:      KindBotHead,
			Direction: d,
			Image:     s.Head(d),
		})
	}
	return tiles
}
