package main

import (
	"fmt"
	"math"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"

	"github.com/vovakirdan/sunskim/internal/games/sunskim"
	"github.com/vovakirdan/sunskim/internal/registry"
	"github.com/vovakirdan/sunskim/internal/storage"
)

var (
	flagStats bool
	flagLimit int
	flagAll   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show best runs for a mode",
	Long: `Display the best runs for the specified mode (default: sunskim).

With --stats, also summarize every recorded run: mean, standard deviation,
median and 90th percentile. With --all, print one summary line per mode.

Examples:
  sunskim scores
  sunskim scores sunskim_heat --limit 20
  sunskim scores sunskim --stats
  sunskim scores --all`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagStats, "stats", false, "Show score distribution statistics")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to list")
	scoresCmd.Flags().BoolVar(&flagAll, "all", false, "Summarize every mode")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := sunskim.IDShield
	if len(args) > 0 {
		gameID = args[0]
	}

	mode, ok := registry.Lookup(gameID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'sunskim list' to see available modes.")
		os.Exit(1)
	}
	title := mode.Title

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagAll {
		printOverview(store)
		return
	}

	runs, err := store.TopRuns(gameID, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Best Runs - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'sunskim play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-12s  %-4s  %-6s  %-16s  %s\n", "Rank", "Score", "Mult", "Time", "Date", "Cause")
	fmt.Printf("  %-4s  %-12s  %-4s  %-6s  %-16s  %s\n", "----", "-----", "----", "----", "----", "-----")
	for i, r := range runs {
		cause := r.Reason
		if cause == "" {
			cause = "quit"
		}
		fmt.Printf("  %-4d  %-12s  %-4s  %-6s  %-16s  %s\n",
			i+1,
			sunskim.FormatNumber(float64(r.Score)),
			fmt.Sprintf("%dx", r.Multiplier),
			formatClock(r.Duration),
			r.CreatedAt.Format("2006-01-02 15:04"),
			cause,
		)
	}

	if !flagStats {
		return
	}

	scores, err := store.Scores(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}
	s := summarize(scores)

	fmt.Println()
	fmt.Printf("Runs:    %d\n", s.Count)
	fmt.Printf("Mean:    %s\n", sunskim.FormatNumber(s.Mean))
	if !math.IsNaN(s.StdDev) {
		fmt.Printf("StdDev:  %s\n", sunskim.FormatNumber(s.StdDev))
	}
	fmt.Printf("Median:  %s\n", sunskim.FormatNumber(s.Median))
	fmt.Printf("P90:     %s\n", sunskim.FormatNumber(s.P90))
	fmt.Printf("Best:    %s\n", sunskim.FormatNumber(s.Max))
}

// printOverview prints one line per registered mode.
func printOverview(store *storage.Store) {
	all, err := store.GetAllGamesStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("  %-14s  %5s  %12s  %12s  %4s  %7s  %s\n", "Mode", "Runs", "Best", "Average", "Mult", "Longest", "Last played")
	for _, m := range registry.List() {
		st, ok := all[m.ID]
		if !ok {
			fmt.Printf("  %-14s  %5d  %12s  %12s  %4s  %7s  %s\n", m.ID, 0, "-", "-", "-", "-", "never")
			continue
		}
		fmt.Printf("  %-14s  %5d  %12s  %12s  %4s  %7s  %s\n",
			m.ID,
			st.GamesCount,
			sunskim.FormatNumber(float64(st.HighScore)),
			sunskim.FormatNumber(st.AvgScore),
			fmt.Sprintf("%dx", st.BestMult),
			formatClock(st.LongestRun),
			st.LastPlayed.Format("2006-01-02 15:04"),
		)
	}
}

// scoreStats summarizes a score distribution.
type scoreStats struct {
	Count  int
	Mean   float64
	StdDev float64 // NaN with fewer than two runs
	Median float64
	P90    float64
	Max    float64
}

func summarize(scores []float64) scoreStats {
	if len(scores) == 0 {
		return scoreStats{StdDev: math.NaN()}
	}

	sorted := append([]float64(nil), scores...)
	sort.Float64s(sorted)

	s := scoreStats{
		Count:  len(sorted),
		Mean:   stat.Mean(sorted, nil),
		StdDev: math.NaN(),
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		P90:    stat.Quantile(0.9, stat.Empirical, sorted, nil),
		Max:    sorted[len(sorted)-1],
	}
	if len(sorted) > 1 {
		s.StdDev = stat.StdDev(sorted, nil)
	}
	return s
}

// formatClock renders seconds as m:ss.
func formatClock(secs float64) string {
	total := int(secs)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
