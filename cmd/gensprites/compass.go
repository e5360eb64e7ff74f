package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"chosenoffset.com/biobots/internal/core/compass"
	"chosenoffset.com/biobots/internal/core/geom"
)

var flagStrict bool

var directionsCmd = &cobra.Command{
	Use:   "directions",
	Short: "List compass directions, codes and unit vectors",
	Args:  cobra.NoArgs,
	Run:   runDirections,
}

var rotateCmd = &cobra.Command{
	Use:   "rotate <direction> <dx> <dy>",
	Short: "Rotate a direction by the compass step a displacement represents",
	Long: `Classifies (dx, dy) as a compass direction and adds it to <direction>.
Displacements that are not 45 degree aligned leave the direction unchanged
unless --strict is given. Flags go before <direction>.

Examples:
  gensprites rotate n 1 1      # N + SE = South-East
  gensprites rotate east 0 -3  # N is the identity, stays East
  gensprites rotate w 2 1      # not a compass step, stays West`,
	Args: cobra.ExactArgs(3),
	RunE: runRotate,
}

func init() {
	rotateCmd.Flags().BoolVar(&flagStrict, "strict", false, "Fail on displacements that are not a compass direction")
	// Negative displacements must not be read as shorthand flags
	rotateCmd.Flags().SetInterspersed(false)
}

func runDirections(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "  %-4s  %-5s  %-10s  %s\n", "Code", "Short", "Name", "Vector")
	fmt.Fprintf(out, "  %-4s  %-5s  %-10s  %s\n", "----", "-----", "----", "------")
	for _, d := range compass.All() {
		fmt.Fprintf(out, "  %-4d  %-5s  %-10s  %v\n", d.Code(), d.Short(), d, d.Vector())
	}
}

func runRotate(cmd *cobra.Command, args []string) error {
	current, err := compass.Parse(args[0])
	if err != nil {
		return err
	}
	dx, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid dx %q: %w", args[1], err)
	}
	dy, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("invalid dy %q: %w", args[2], err)
	}

	delta := geom.Pt(dx, dy)
	if flagStrict {
		if _, err := compass.FromVector(delta); errors.Is(err, compass.ErrUnclassifiable) {
			return err
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), compass.ChangeRotation(current, delta))
	return nil
}
