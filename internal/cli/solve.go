package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/pocketcube/internal/harness"
	"github.com/SeamusWaldron/pocketcube/internal/notation"
	"github.com/SeamusWaldron/pocketcube/internal/storage"
	"github.com/SeamusWaldron/pocketcube/pkg/types"
)

var (
	solveAlgo     string
	solveStrategy strategyFlags
	testAlgo      string
	testStrategy  strategyFlags
)

var solveCmd = &cobra.Command{
	Use:   "solve <scramble>",
	Short: "Solve a scrambled cube",
	Long: `Apply a scramble to the solved cube and search for a path back.

Algorithms:
  astar  - A* guided by db+<heuristic>: a pattern database of --db-depth
           falling back to --heuristic beyond it (--plain drops the database)
  bfs    - breadth-first search, always optimal
  bidir  - bidirectional breadth-first search, always optimal`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSolve,
}

var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Run the scramble battery",
	Long: `Solve every scramble of the configured battery, check each returned
path restores the solved cube and report timing, expansions and length.`,
	Args: cobra.NoArgs,
	RunE: runTest,
}

func addStrategyFlags(cmd *cobra.Command, f *strategyFlags) {
	cmd.Flags().StringVar(&f.name, "heuristic", "", "Heuristic strategy (default from config)")
	cmd.Flags().IntVar(&f.dbDepth, "db-depth", -1, "Pattern database depth (default from config)")
	cmd.Flags().BoolVar(&f.plain, "plain", false, "Use the heuristic without a pattern database")
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().StringVar(&solveAlgo, "algo", algoAStar, "Search algorithm: astar, bfs or bidir")
	addStrategyFlags(solveCmd, &solveStrategy)

	rootCmd.AddCommand(testCmd)
	testCmd.Flags().StringVar(&testAlgo, "algo", algoAStar, "Search algorithm: astar, bfs or bidir")
	addStrategyFlags(testCmd, &testStrategy)
}

// resolveSolver returns the solver for algo and, for A*, the name of the
// guiding strategy.
func resolveSolver(cmd *cobra.Command, algo string, f *strategyFlags) (harness.Solver, string, error) {
	if algo != algoAStar {
		solve, err := solverFor(algo, nil)
		return solve, "", err
	}
	strategy, err := f.resolve(cmd.Context())
	if err != nil {
		return nil, "", err
	}
	solve, err := solverFor(algo, strategy)
	return solve, strategy.Name, err
}

func runSolve(cmd *cobra.Command, args []string) error {
	scramble, moves, err := scrambleArg(args)
	if err != nil {
		return err
	}

	solve, heuristicName, err := resolveSolver(cmd, solveAlgo, &solveStrategy)
	if err != nil {
		return err
	}

	startedAt := time.Now()
	report := harness.Run(solve, []harness.Case{{Scramble: scramble, Moves: moves}}, logger)
	res := report.Cases[0]

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Scramble:  %s\n", moveStyle.Render(scramble))
	if reduced := notation.Simplify(moves); len(reduced) < len(moves) {
		fmt.Fprintf(out, "Reduced:   %s (%d moves)\n", moveStyle.Render(types.FormatMoves(reduced)), len(reduced))
	}
	fmt.Fprintf(out, "Algorithm: %s\n", solveAlgo)
	if heuristicName != "" {
		fmt.Fprintf(out, "Heuristic: %s\n", heuristicName)
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Solution:  %s\n", moveStyle.Render(types.FormatMoves(res.Path)))
	fmt.Fprintf(out, "Length:    %d\n", res.PathLength)
	fmt.Fprintf(out, "Expanded:  %d\n", res.Expanded)
	fmt.Fprintf(out, "Elapsed:   %s\n", formatDuration(res.Elapsed))
	fmt.Fprintf(out, "Result:    %s\n", verdict(res.Passed))

	_, err = recordRun(storage.Run{
		Kind:      storage.KindSolve,
		Algorithm: solveAlgo,
		Heuristic: heuristicName,
		StartedAt: startedAt,
		Duration:  report.Elapsed,
		Passed:    res.Passed,
	}, report.Cases)
	return err
}

func runTest(cmd *cobra.Command, args []string) error {
	cases, err := cfg.Cases()
	if err != nil {
		return err
	}

	solve, heuristicName, err := resolveSolver(cmd, testAlgo, &testStrategy)
	if err != nil {
		return err
	}

	startedAt := time.Now()
	report := harness.Run(solve, cases, logger)

	out := cmd.OutOrStdout()
	title := "Battery: " + testAlgo
	if heuristicName != "" {
		title += " / " + heuristicName
	}
	fmt.Fprintln(out, titleStyle.Render(title))
	fmt.Fprintln(out)
	fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("%-4s  %-6s  %-10s  %-9s  %-6s  %s", "CASE", "RESULT", "ELAPSED", "EXPANDED", "LENGTH", "SCRAMBLE")))
	for _, r := range report.Cases {
		fmt.Fprintf(out, "%-4d  %-6s  %-10s  %-9d  %-6d  %s\n",
			r.Index, verdict(r.Passed), formatDuration(r.Elapsed), r.Expanded, r.PathLength, r.Scramble)
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Passed %d/%d in %s\n", report.PassedCount(), len(report.Cases), formatDuration(report.Elapsed))

	if _, err := recordRun(storage.Run{
		Kind:      storage.KindTest,
		Algorithm: testAlgo,
		Heuristic: heuristicName,
		StartedAt: startedAt,
		Duration:  report.Elapsed,
		Passed:    report.Passed,
	}, report.Cases); err != nil {
		return err
	}
	if !report.Passed {
		return fmt.Errorf("%d of %d cases failed", len(report.Cases)-report.PassedCount(), len(report.Cases))
	}
	return nil
}
