package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"polyconn/polyhedra"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <structure.yaml>",
	Short: "Print per-species connectivity counts for a structure",
	Long: `Build coordination polyhedra for every cation in the structure (including
boundary-reflected copies) and print, per cation species, the counts of
isolated, point-, edge- and face-sharing connection instances.

Examples:
  polyconn classify licoo2.yaml
  polyconn classify --radius=3.2 --margin=0.1 licoo2.yaml
  polyconn classify --anions=S,S2- li2s.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	s, err := loadStructure(args[0])
	if err != nil {
		return err
	}
	logger.Debug("structure loaded", "path", args[0], "sites", s.Len())

	polys, err := polyhedra.Build(s, buildOptions())
	if err != nil {
		return err
	}
	logger.Debug("polyhedra built", "count", len(polys))

	hist := polyhedra.Classify(polys)

	species := make([]string, 0, len(hist))
	for sp := range hist {
		species = append(species, sp)
	}
	sort.Strings(species)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SPECIES\tISOLATED\tPOINT\tEDGE\tFACE")
	for _, sp := range species {
		c := hist[sp]
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\n",
			sp, c[polyhedra.Isolated], c[polyhedra.Point], c[polyhedra.Edge], c[polyhedra.Face])
	}

	return w.Flush()
}
