package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/festlab/matinee/program"
	"github.com/festlab/matinee/render"
	"github.com/festlab/matinee/schedule"
)

var (
	planFormat    string
	planTimeLimit time.Duration
	planMaxNodes  int64
	planWorkers   int
)

var planCmd = &cobra.Command{
	Use:   "plan <programme.yaml>",
	Short: "Compute the best attendable schedule",
	Long: `Solve a programme document: maximize attended screenings, then minimize
total transit among the maximum-attendance schedules.

Examples:
  matinee plan programme.yaml
  matinee plan --format json programme.yaml
  matinee plan --workers 4 --time-limit 30s programme.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := program.Load(args[0])
		if err != nil {
			return err
		}
		logger.Info("programme loaded",
			"events", p.Catalog.Len(),
			"venues", p.Table.Len(),
			"timezone", p.Location.String(),
		)

		opts := schedule.Options{
			TimeLimit: planTimeLimit,
			MaxNodes:  planMaxNodes,
			Workers:   planWorkers,
		}
		if verbose {
			opts.OnImprove = func(imp schedule.Improvement) {
				logger.Debug("incumbent",
					"phase", imp.Phase.String(),
					"attendance", imp.Attendance,
					"transit_minutes", imp.TransitMinutes,
					"elapsed", imp.Elapsed,
				)
			}
		}

		res, err := schedule.Solve(p.Catalog, p.Table, opts)
		if err != nil {
			return err
		}
		logger.Info("search finished",
			"attendance", res.Attendance,
			"transit_minutes", res.TransitMinutes,
			"optimal", res.Optimal,
			"nodes", res.Nodes,
		)

		switch planFormat {
		case "text":
			return render.Text(cmd.OutOrStdout(), res)
		case "json":
			return render.JSON(cmd.OutOrStdout(), res)
		default:
			return fmt.Errorf("unknown format %q (want text or json)", planFormat)
		}
	},
}

func init() {
	planCmd.Flags().StringVarP(&planFormat, "format", "f", "text", "output format: text or json")
	planCmd.Flags().DurationVar(&planTimeLimit, "time-limit", 0, "wall-clock search budget (0 = unlimited)")
	planCmd.Flags().Int64Var(&planMaxNodes, "max-nodes", 0, "search node budget (0 = unlimited)")
	planCmd.Flags().IntVar(&planWorkers, "workers", 0, "parallel search workers (<= 1 runs serially)")
	rootCmd.AddCommand(planCmd)
}
