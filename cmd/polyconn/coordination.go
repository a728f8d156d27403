package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"polyconn/polyhedra"
)

var coordinationCmd = &cobra.Command{
	Use:   "coordination <structure.yaml>",
	Short: "Print per-species mean effective coordination numbers",
	Long: `Compute the Hoppe effective coordination number (ECoN) of every cation in
the structure and print the mean per cation species.

Examples:
  polyconn coordination licoo2.yaml
  polyconn coordination --radius=3.0 --no-weight-filter probe.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runCoordination,
}

func init() {
	rootCmd.AddCommand(coordinationCmd)
}

func runCoordination(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	s, err := loadStructure(args[0])
	if err != nil {
		return err
	}
	logger.Debug("structure loaded", "path", args[0], "sites", s.Len())

	averages, err := polyhedra.AverageCoordination(s, buildOptions())
	if err != nil {
		return err
	}

	species := make([]string, 0, len(averages))
	for sp := range averages {
		species = append(species, sp)
	}
	sort.Strings(species)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SPECIES\tAVG ECoN")
	for _, sp := range species {
		fmt.Fprintf(w, "%s\t%.3f\n", sp, averages[sp])
	}

	return w.Flush()
}
