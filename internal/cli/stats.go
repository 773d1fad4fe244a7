package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/pocketcube/internal/analysis"
	"github.com/SeamusWaldron/pocketcube/internal/storage"
	"github.com/SeamusWaldron/pocketcube/pkg/types"
)

var (
	statsRuns int
	statsMinN int
	statsMaxN int
	statsTopK int
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Analyse recorded solution paths",
	Long: `Collect the solution paths of recent runs and report their mean
length, how often each move is used and the most frequent move sequences.`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().IntVar(&statsRuns, "runs", 50, "Number of recent runs to analyse")
	statsCmd.Flags().IntVar(&statsMinN, "min", 2, "Shortest sequence length")
	statsCmd.Flags().IntVar(&statsMaxN, "max", 4, "Longest sequence length")
	statsCmd.Flags().IntVar(&statsTopK, "top", 5, "Sequences to show per length")
}

func runStats(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()
	repo := storage.NewRunRepository(db)

	runs, err := repo.List(statsRuns)
	if err != nil {
		return err
	}
	var paths [][]types.Move
	for _, r := range runs {
		results, err := repo.Results(r.RunID)
		if err != nil {
			return err
		}
		for _, res := range results {
			if res.Passed && len(res.Path) > 0 {
				paths = append(paths, res.Path)
			}
		}
	}

	out := cmd.OutOrStdout()
	if len(paths) == 0 {
		fmt.Fprintln(out, "No solution paths recorded yet.")
		return nil
	}

	fmt.Fprintln(out, titleStyle.Render("Solution Paths"))
	fmt.Fprintf(out, "Paths:        %d from %d runs\n", len(paths), len(runs))
	fmt.Fprintf(out, "Mean length:  %.2f\n", analysis.MeanLength(paths))
	fmt.Fprintln(out)

	fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("%-5s  %s", "MOVE", "COUNT")))
	freq := analysis.MoveFrequency(paths)
	for _, m := range types.AllMoves {
		fmt.Fprintf(out, "%-5s  %d\n", m.Notation(), freq[m])
	}

	report := analysis.MineNGrams(paths, statsMinN, statsMaxN, statsTopK)
	for n := statsMinN; n <= statsMaxN; n++ {
		ngrams, ok := report.TopNGrams[n]
		if !ok {
			continue
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("%d-move sequences", n)))
		for _, ng := range ngrams {
			fmt.Fprintf(out, "  %-16s  x%d\n", strings.Join(ng.Sequence, " "), ng.Count)
		}
	}
	return nil
}
