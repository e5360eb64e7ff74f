package main

import (
	"fmt"
	"image"

	"github.com/spf13/cobra"

	"chosenoffset.com/biobots/internal/core/compass"
	"chosenoffset.com/biobots/internal/render/terminal"
	"chosenoffset.com/biobots/internal/sprites"
)

var flagPreviewScale int

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print the sprites in the terminal",
	Long: `Renders the item sprites, the bot body and the eight bot heads as
half-block characters. Transparent pixels show the field background.`,
	Args: cobra.NoArgs,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().IntVar(&flagPreviewScale, "scale", 0, "Pixel repeat factor")
}

func runPreview(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	opts := terminal.Options{
		Backdrop: sprites.DefaultPalette.FieldBackground,
		Scale:    cfg.Preview.Scale,
		Gap:      cfg.Preview.Gap,
	}
	if cmd.Flags().Changed("scale") {
		opts.Scale = flagPreviewScale
	}

	set := newGenerator(cfg).Generate()

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "apple, organics, rock, bot body")
	fmt.Fprintln(out, terminal.RenderRow([]image.Image{set.Apple, set.Organics, set.Rock, set.Bot.Body}, opts))
	fmt.Fprintln(out)

	heads := make([]image.Image, 0, compass.Count)
	labels := ""
	for _, d := range compass.All() {
		heads = append(heads, set.Head(d))
		labels += d.Short() + " "
	}
	fmt.Fprintln(out, "bot heads:", labels)
	fmt.Fprintln(out, terminal.RenderRow(heads, opts))
	return nil
}
