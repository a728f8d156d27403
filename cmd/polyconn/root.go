package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"polyconn/polyhedra"
)

var (
	flagRadius         float64
	flagMargin         float64
	flagNoWeightFilter bool
	flagAnions         []string
	flagVerbose        bool
)

var rootCmd = &cobra.Command{
	Use:   "polyconn",
	Short: "Classify connectivity between coordination polyhedra in crystal structures",
	Long: `polyconn builds cation-centered coordination polyhedra from a periodic
crystal structure and classifies the connectivity between them: polyhedra
sharing one peripheral ion are point-connected, two edge-connected, three
or more face-connected.

Structures are read from a YAML document describing the lattice row
vectors (Å) and the fractional site positions:

  lattice:
    a: [2.82, 0.0, 0.0]
    b: [0.0, 2.82, 0.0]
    c: [0.0, 0.0, 14.05]
  sites:
    - species: Li
      coords: [0.0, 0.0, 0.0]
    - species: O
      coords: [0.0, 0.0, 0.26]`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().Float64Var(&flagRadius, "radius", polyhedra.DefaultRadius, "neighbor-search radius in Å")
	rootCmd.PersistentFlags().Float64Var(&flagMargin, "margin", polyhedra.DefaultMargin, "fractional boundary margin for reflections")
	rootCmd.PersistentFlags().BoolVar(&flagNoWeightFilter, "no-weight-filter", false, "accept all distance-qualified anions with weight 1.0")
	rootCmd.PersistentFlags().StringSliceVar(&flagAnions, "anions", nil, "comma-separated species treated as anions (default: O,F,Cl,Br,I,S variants)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
}

// buildOptions translates the persistent flags into polyhedra.Options.
func buildOptions() polyhedra.Options {
	opts := polyhedra.DefaultOptions()
	opts.Radius = flagRadius
	opts.Margin = flagMargin
	opts.DisableWeightFiltering = flagNoWeightFilter
	if len(flagAnions) > 0 {
		anions := make(map[string]struct{}, len(flagAnions))
		for _, species := range flagAnions {
			anions[strings.TrimSpace(species)] = struct{}{}
		}
		opts.AnionSpecies = anions
	}

	return opts
}

// newLogger returns a stderr slog logger honoring --verbose.
func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if flagVerbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
