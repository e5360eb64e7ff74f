// gensprites draws the biobots sprite set and exports or previews it.
//
// Usage:
//
//	gensprites export               - Write the sprite sheet, atlas descriptor and tiles
//	gensprites preview              - Print the sprites in the terminal
//	gensprites directions           - List compass directions and their codes
//	gensprites rotate <dir> <dx> <dy> - Rotate a direction by a displacement
//
// Global flags:
//
//	--config <path> - Export configuration (default: ./configs/gensprites.yaml or built-in)
//	--verbose       - Debug logging
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"chosenoffset.com/biobots/internal/config"
	"chosenoffset.com/biobots/internal/sprites"
)

var (
	// Global flags
	flagConfig  string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gensprites",
	Short: "Generate the biobots sprite set",
	Long: `gensprites draws the biobots sprites (apple, organic waste, rock,
bot body and eight bot heads) from geometric primitives.

Examples:
  gensprites export
  gensprites export --dir build --scale 4
  gensprites preview --scale 2
  gensprites rotate n 1 1`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to export configuration (YAML)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(directionsCmd)
	rootCmd.AddCommand(rotateCmd)
}

func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "gensprites",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

func loadConfig(logger *log.Logger) (config.ExportConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, fmt.Errorf("loading config: %w", err)
	}
	logger.Debug("loaded config", "path", flagConfig, "cell_size", cfg.Generator.CellSize, "scale", cfg.Sheet.Scale)
	return cfg, nil
}

func newGenerator(cfg config.ExportConfig) *sprites.Generator {
	g := sprites.NewGenerator()
	g.CellSize = cfg.Generator.CellSize
	return g
}
