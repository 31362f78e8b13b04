// Command matinee plans festival attendance: given a programme document it
// picks the largest conflict-free set of screenings and, among those, the
// one with the least time spent in transit between venues.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	verbose bool
	logger  *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "matinee",
	Short: "Festival schedule optimizer",
	Long: `Matinee reads a programme document (venues, transit minutes, screenings,
optional ICS feeds) and computes the schedule that attends the most
screenings, breaking ties by total transit between venues.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		}))
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log search progress")
}
