package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/pocketcube/internal/search"
	"github.com/SeamusWaldron/pocketcube/internal/storage"
	"github.com/SeamusWaldron/pocketcube/internal/verify"
	"github.com/SeamusWaldron/pocketcube/pkg/types"
)

var (
	verifyTrials   int
	verifyStrategy strategyFlags
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check a heuristic for admissibility",
	Long: `Run A* guided by --heuristic and breadth-first search over the battery
--trials times. Any difference in path length is a counterexample: a longer
A* path means the heuristic overestimates, a shorter one means a search
is broken.

Unless --plain is given, the heuristic is wrapped in a pattern database of
--db-depth (default from config) and the strategy verified is db+<name>.
Entries within the database are exact, so only configurations beyond its
depth exercise the named heuristic. Use --plain to verify it alone.`,
	Args: cobra.NoArgs,
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
	verifyCmd.Flags().IntVar(&verifyTrials, "trials", 0, "Passes over the battery (default from config)")
	addStrategyFlags(verifyCmd, &verifyStrategy)
}

func runVerify(cmd *cobra.Command, args []string) error {
	cases, err := cfg.Cases()
	if err != nil {
		return err
	}
	trials := cfg.Trials
	if verifyTrials > 0 {
		trials = verifyTrials
	}

	strategy, err := verifyStrategy.resolve(cmd.Context())
	if err != nil {
		return err
	}

	startedAt := time.Now()
	res := verify.Check(search.AStarFunc, search.BFSFunc, strategy,
		verify.WithTrials(trials), verify.WithBattery(cases), verify.WithLogger(logger))
	elapsed := time.Since(startedAt)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, titleStyle.Render("Admissibility: "+strategy.Name))
	fmt.Fprintf(out, "Trials:   %d x %d cases\n", res.Trials, res.Cases)
	fmt.Fprintf(out, "Elapsed:  %s\n", formatDuration(elapsed))
	fmt.Fprintf(out, "Result:   %s\n", verdict(res.Admissible))

	notes := ""
	if ce := res.Counterexample; ce != nil {
		notes = fmt.Sprintf("case %d: %s", ce.Case.Index, ce.Verdict)
		fmt.Fprintln(out)
		fmt.Fprintln(out, errorStyle.Render("Counterexample"))
		fmt.Fprintf(out, "Case:     %d (%s)\n", ce.Case.Index, ce.Case.Scramble)
		fmt.Fprintf(out, "Trial:    %d\n", ce.Trial)
		fmt.Fprintf(out, "Verdict:  %s\n", ce.Verdict)
		fmt.Fprintf(out, "A*:       %s (%d moves, %d expanded)\n", types.FormatMoves(ce.Path), len(ce.Path), ce.Expanded)
		fmt.Fprintf(out, "BFS:      %s (%d moves, %d expanded)\n", types.FormatMoves(ce.OraclePath), len(ce.OraclePath), ce.OracleExpand)
	}

	_, err = recordRun(storage.Run{
		Kind:      storage.KindVerify,
		Algorithm: algoAStar,
		Heuristic: strategy.Name,
		StartedAt: startedAt,
		Duration:  elapsed,
		Passed:    res.Admissible,
		Notes:     notes,
	}, nil)
	return err
}
