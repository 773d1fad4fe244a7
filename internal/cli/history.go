package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/pocketcube/internal/storage"
	"github.com/SeamusWaldron/pocketcube/pkg/types"
)

var (
	historyLimit int
	historyLast  bool
)

var historyCmd = &cobra.Command{
	Use:   "history [run-id]",
	Short: "List recorded runs",
	Long: `Without arguments, list recent runs newest first. With a run ID, or
--last, show that run and its per-case results.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of runs to display")
	historyCmd.Flags().BoolVar(&historyLast, "last", false, "Show the most recent run")
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()
	repo := storage.NewRunRepository(db)

	var run *storage.Run
	switch {
	case historyLast:
		run, err = repo.Last()
		if err == nil && run == nil {
			return fmt.Errorf("no runs found")
		}
	case len(args) > 0:
		run, err = repo.Get(args[0])
		if err == nil && run == nil {
			return fmt.Errorf("run not found: %s", args[0])
		}
	default:
		return listRuns(cmd, repo)
	}
	if err != nil {
		return err
	}
	return showRun(cmd, repo, run)
}

func listRuns(cmd *cobra.Command, repo *storage.RunRepository) error {
	runs, err := repo.List(historyLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		return nil
	}

	fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("%-36s  %-19s  %-6s  %-8s  %-16s  %-10s  %s",
		"ID", "STARTED", "KIND", "ALGO", "HEURISTIC", "DURATION", "RESULT")))
	for _, r := range runs {
		fmt.Fprintf(out, "%-36s  %-19s  %-6s  %-8s  %-16s  %-10s  %s\n",
			r.RunID,
			r.StartedAt.Local().Format("2006-01-02 15:04:05"),
			r.Kind,
			r.Algorithm,
			r.Heuristic,
			formatDuration(r.Duration),
			verdict(r.Passed),
		)
	}
	return nil
}

func showRun(cmd *cobra.Command, repo *storage.RunRepository, run *storage.Run) error {
	results, err := repo.Results(run.RunID)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Run Details")
	fmt.Fprintln(out, "===========")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "ID:        %s\n", run.RunID)
	fmt.Fprintf(out, "Kind:      %s\n", run.Kind)
	fmt.Fprintf(out, "Started:   %s\n", run.StartedAt.Local().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(out, "Duration:  %s\n", formatDuration(run.Duration))
	if run.Algorithm != "" {
		fmt.Fprintf(out, "Algorithm: %s\n", run.Algorithm)
	}
	if run.Heuristic != "" {
		fmt.Fprintf(out, "Heuristic: %s\n", run.Heuristic)
	}
	if run.Notes != "" {
		fmt.Fprintf(out, "Notes:     %s\n", run.Notes)
	}
	fmt.Fprintf(out, "Result:    %s\n", verdict(run.Passed))

	if len(results) == 0 {
		return nil
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Cases")
	fmt.Fprintln(out, "-----")
	for _, r := range results {
		fmt.Fprintf(out, "%d. %s  %-10s  %d expanded  %s\n",
			r.Index, verdict(r.Passed), formatDuration(r.Elapsed), r.Expanded, types.FormatMoves(r.Path))
	}
	return nil
}
