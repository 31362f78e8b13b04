package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/festlab/matinee/program"
)

var checkCmd = &cobra.Command{
	Use:   "check <programme.yaml>",
	Short: "Validate a programme document without solving",
	Long: `Parse a programme document, merge its ICS feeds, and report what the
solver would see. Fails on the same defects plan would fail on: malformed
YAML, incomplete or asymmetric transit tables, unknown venues, unparseable
timestamps.

Examples:
  matinee check programme.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := program.Load(args[0])
		if err != nil {
			return err
		}

		titles := make(map[string]struct{})
		for _, o := range p.Catalog.All() {
			titles[o.Title] = struct{}{}
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "events: %d (%d distinct titles)\n", p.Catalog.Len(), len(titles))
		fmt.Fprintf(out, "venues: %s\n", strings.Join(p.Table.Venues(), " "))
		fmt.Fprintf(out, "timezone: %s\n", p.Location)
		if n := p.Catalog.Len(); n > 0 {
			first, last := p.Catalog.At(0), p.Catalog.At(n-1)
			fmt.Fprintf(out, "span: %s to %s\n",
				first.Start.Format("2006-01-02"), last.Start.Format("2006-01-02"))
		}
		fmt.Fprintln(out, "ok")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
