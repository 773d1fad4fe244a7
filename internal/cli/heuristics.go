package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/pocketcube/internal/cube"
	"github.com/SeamusWaldron/pocketcube/internal/heuristic"
	"github.com/SeamusWaldron/pocketcube/internal/notation"
)

var heuristicsCmd = &cobra.Command{
	Use:   "heuristics",
	Short: "List registered heuristic strategies",
	Long: `List every registered strategy with its kind and admissibility.

Distance strategies estimate the number of moves to the solved cube.
Progress strategies grow toward the solved cube and are not distances.`,
	Args: cobra.NoArgs,
	RunE: runHeuristics,
}

var evalCmd = &cobra.Command{
	Use:   "eval <scramble>",
	Short: "Score a scramble with every strategy",
	Long: `Apply a scramble to the solved cube and print the value each
registered strategy assigns to the result.

Example:
  pocketcube eval "R U' R' F' U"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEval,
}

var evalShowCube bool

func init() {
	rootCmd.AddCommand(heuristicsCmd)
	rootCmd.AddCommand(evalCmd)
	evalCmd.Flags().BoolVar(&evalShowCube, "show", false, "Print the scrambled cube net")
}

func runHeuristics(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("%-22s  %-8s  %-10s  %s", "NAME", "KIND", "ADMISSIBLE", "DESCRIPTION")))
	for _, s := range heuristic.Strategies() {
		admissible := "no"
		if s.Admissible {
			admissible = "yes"
		}
		fmt.Fprintf(out, "%-22s  %-8s  %-10s  %s\n", s.Name, s.Kind, admissible, s.Description)
	}
	return nil
}

func runEval(cmd *cobra.Command, args []string) error {
	scramble, moves, err := scrambleArg(args)
	if err != nil {
		return err
	}
	c := cube.New(moves...)
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Scramble: %s\n", moveStyle.Render(scramble))
	// A reduced scramble is one known route back, so its length bounds the distance.
	fmt.Fprintf(out, "Upper bound: %d moves\n", len(notation.Simplify(moves)))
	if evalShowCube {
		fmt.Fprintln(out)
		fmt.Fprint(out, c.String())
	}
	fmt.Fprintln(out)
	for _, s := range heuristic.Strategies() {
		fmt.Fprintf(out, "%-22s  %6.2f\n", s.Name, s.Evaluate(c))
	}
	return nil
}
