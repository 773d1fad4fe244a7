package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/pocketcube/internal/cube"
	"github.com/SeamusWaldron/pocketcube/internal/harness"
	"github.com/SeamusWaldron/pocketcube/internal/heuristic"
	"github.com/SeamusWaldron/pocketcube/pkg/types"
)

var (
	replayAlgo     string
	replayInterval time.Duration
	replayAuto     bool
	replayStrategy strategyFlags
)

var replayCmd = &cobra.Command{
	Use:   "replay <scramble>",
	Short: "Step through a solution",
	Long: `Solve a scramble and step through the solution one move at a time,
showing the cube net and heuristic values at every step.

Usage:
  pocketcube replay "R U' R' F' U"            # Step manually
  pocketcube replay --auto "R U' R' F' U"     # Play automatically
  pocketcube replay --algo bidir "F U U F'"   # Replay a bidirectional solution`,
	Args: cobra.MinimumNArgs(1),
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().StringVar(&replayAlgo, "algo", algoAStar, "Search algorithm: astar, bfs or bidir")
	replayCmd.Flags().DurationVar(&replayInterval, "interval", 700*time.Millisecond, "Delay between moves in auto mode")
	replayCmd.Flags().BoolVar(&replayAuto, "auto", false, "Start playing automatically")
	addStrategyFlags(replayCmd, &replayStrategy)
}

func runReplay(cmd *cobra.Command, args []string) error {
	scramble, moves, err := scrambleArg(args)
	if err != nil {
		return err
	}
	solve, _, err := resolveSolver(cmd, replayAlgo, &replayStrategy)
	if err != nil {
		return err
	}

	start := cube.New(moves...)
	path, expanded := solve(start)
	if !start.ApplyMoves(path).IsSolved() {
		return fmt.Errorf("%s found no solution for %q", replayAlgo, scramble)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Solved %q in %d moves (%d expanded)\n", scramble, len(path), expanded)

	model := newReplayModel(harness.Case{Scramble: scramble, Moves: moves}, path, replayInterval, replayAuto)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("replay error: %w", err)
	}
	return nil
}

// replayModel steps a cube through a solution path.
type replayModel struct {
	tc         harness.Case
	path       []types.Move
	states     []cube.Cube
	step       int
	interval   time.Duration
	playing    bool
	strategies []heuristic.Strategy
	quitting   bool
}

func newReplayModel(tc harness.Case, path []types.Move, interval time.Duration, auto bool) *replayModel {
	states := make([]cube.Cube, 0, len(path)+1)
	c := tc.Cube()
	states = append(states, c)
	for _, m := range path {
		c = c.Apply(m)
		states = append(states, c)
	}

	var strategies []heuristic.Strategy
	for _, s := range heuristic.Strategies() {
		if s.Kind == heuristic.Distance {
			strategies = append(strategies, s)
		}
	}

	return &replayModel{
		tc:         tc,
		path:       path,
		states:     states,
		interval:   interval,
		playing:    auto,
		strategies: strategies,
	}
}

type replayTickMsg time.Time

func (m *replayModel) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return replayTickMsg(t)
	})
}

func (m *replayModel) Init() tea.Cmd {
	if m.playing {
		return m.tick()
	}
	return nil
}

func (m *replayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case " ", "n", "right":
			m.forward()

		case "b", "left":
			if m.step > 0 {
				m.step--
			}

		case "p":
			m.playing = !m.playing
			if m.playing {
				return m, m.tick()
			}

		case "r":
			m.step = 0

		case "e":
			m.step = len(m.path)

		case "+", "=":
			m.interval /= 2
			if m.interval < 50*time.Millisecond {
				m.interval = 50 * time.Millisecond
			}

		case "-":
			m.interval *= 2
			if m.interval > 5*time.Second {
				m.interval = 5 * time.Second
			}
		}

	case replayTickMsg:
		if !m.playing {
			return m, nil
		}
		m.forward()
		if m.step >= len(m.path) {
			m.playing = false
			return m, nil
		}
		return m, m.tick()
	}

	return m, nil
}

func (m *replayModel) forward() {
	if m.step < len(m.path) {
		m.step++
	}
}

func (m *replayModel) current() cube.Cube {
	return m.states[m.step]
}

func (m *replayModel) View() string {
	if m.quitting {
		return "Replay ended.\n"
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Pocket Cube Replay"))
	b.WriteString("\n\n")

	progress := fmt.Sprintf("Step %d/%d", m.step, len(m.path))
	if m.playing {
		progress += " [PLAYING]"
	}
	b.WriteString(statusStyle.Render(progress))
	b.WriteString(fmt.Sprintf(" (%s per move)\n", m.interval))
	b.WriteString(fmt.Sprintf("Scramble: %s\n", m.tc.Scramble))
	b.WriteString("\n")

	// Solution with the applied prefix highlighted.
	var notations []string
	for i, mv := range m.path {
		if i < m.step {
			notations = append(notations, moveStyle.Render(mv.Notation()))
		} else {
			notations = append(notations, statusStyle.Render(mv.Notation()))
		}
	}
	b.WriteString("Solution: ")
	b.WriteString(strings.Join(notations, " "))
	b.WriteString("\n\n")

	c := m.current()
	b.WriteString(c.String())
	b.WriteString("\n")

	if c.IsSolved() {
		b.WriteString(fmt.Sprintf("State: %s\n", passStyle.Render("SOLVED!")))
	} else {
		b.WriteString(fmt.Sprintf("State: %s\n", headerStyle.Render(fmt.Sprintf("%d moves to go", len(m.path)-m.step))))
	}
	for _, s := range m.strategies {
		b.WriteString(fmt.Sprintf("  %-22s %5.2f\n", s.Name, s.Evaluate(c)))
	}
	b.WriteString("\n")

	b.WriteString(helpStyle.Render("SPACE/n=next  b=back  p=play/pause  r=reset  e=end  +/-=speed  q=quit"))
	b.WriteString("\n")

	return b.String()
}
