package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `database_depth: 4
battery:
  - R U' R' F' U
  - R U
trials: 2
`

type env struct {
	config string
	db     string
}

func newEnv(t *testing.T) env {
	t.Helper()
	dir := t.TempDir()
	e := env{config: filepath.Join(dir, "config.yaml"), db: filepath.Join(dir, "runs.db")}
	require.NoError(t, os.WriteFile(e.config, []byte(testConfig), 0644))
	return e
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func (e env) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(append([]string{"--config", e.config, "--db", e.db}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestHeuristicsCommand(t *testing.T) {
	out, err := newEnv(t).run(t, "heuristics")
	require.NoError(t, err)
	for _, name := range []string{"zero", "hamming", "manhattan-face-max", "inverse-global-max"} {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "progress")
}

func TestEvalCommand(t *testing.T) {
	out, err := newEnv(t).run(t, "eval", "--show", "R")
	require.NoError(t, err)
	assert.Contains(t, out, "Scramble: R")
	assert.Regexp(t, `hamming\s+8\.00`, out)
	assert.Regexp(t, `inverse-hamming\s+16\.00`, out)
}

func TestEvalRejectsBadScramble(t *testing.T) {
	_, err := newEnv(t).run(t, "eval", "R", "X")
	assert.Error(t, err)
}

func TestBuildCommand(t *testing.T) {
	e := newEnv(t)
	out, err := e.run(t, "build", "--depth", "3", "--builder", "parallel", "--workers", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Builder:  parallel")
	assert.Contains(t, out, "Entries:  154")

	out, err = e.run(t, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "build")
}

func TestSolveAndHistory(t *testing.T) {
	e := newEnv(t)
	out, err := e.run(t, "solve", "--algo", "bfs", "R U")
	require.NoError(t, err)
	assert.Contains(t, out, "Solution:  U' R'")
	assert.Contains(t, out, "Length:    2")
	assert.Contains(t, out, "PASS")

	out, err = e.run(t, "history", "--last")
	require.NoError(t, err)
	assert.Contains(t, out, "Kind:      solve")
	assert.Contains(t, out, "Algorithm: bfs")
	assert.Contains(t, out, "U' R'")
}

func TestSolveAStarUsesDatabase(t *testing.T) {
	out, err := newEnv(t).run(t, "solve", "--db-depth", "3", "R U' R' F' U")
	require.NoError(t, err)
	assert.Contains(t, out, "Heuristic: db+manhattan")
	assert.Contains(t, out, "PASS")
}

func TestSolveUnknownAlgorithm(t *testing.T) {
	_, err := newEnv(t).run(t, "solve", "--algo", "dfs", "R")
	assert.ErrorContains(t, err, "unknown algorithm")
}

func TestTestCommand(t *testing.T) {
	out, err := newEnv(t).run(t, "test", "--algo", "bidir")
	require.NoError(t, err)
	assert.Contains(t, out, "Passed 2/2")
}

func TestVerifyCommand(t *testing.T) {
	e := newEnv(t)
	out, err := e.run(t, "verify", "--plain", "--heuristic", "manhattan", "--trials", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Admissibility: manhattan")
	assert.Contains(t, out, "Trials:   1 x 2 cases")
	assert.Contains(t, out, "PASS")
}

func TestVerifyWrapsHeuristicInDatabase(t *testing.T) {
	assert.Contains(t, verifyCmd.Long, "db+<name>")
	assert.Contains(t, verifyCmd.Long, "--plain")

	e := newEnv(t)
	out, err := e.run(t, "verify", "--heuristic", "hamming", "--db-depth", "3", "--trials", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Admissibility: db+hamming")

	out, err = e.run(t, "verify", "--plain", "--heuristic", "hamming", "--trials", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Admissibility: hamming")
	assert.NotContains(t, out, "db+hamming")
}

func TestHistoryEmptyAndMissing(t *testing.T) {
	e := newEnv(t)
	out, err := e.run(t, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "No runs recorded yet.")

	_, err = e.run(t, "history", "--last")
	assert.Error(t, err)
	_, err = e.run(t, "history", "no-such-run")
	assert.ErrorContains(t, err, "run not found")
}

func TestInvalidConfig(t *testing.T) {
	e := newEnv(t)
	require.NoError(t, os.WriteFile(e.config, []byte("builder: dfs\n"), 0644))
	_, err := e.run(t, "heuristics")
	assert.ErrorContains(t, err, "failed to load config")
}

func TestStatsCommand(t *testing.T) {
	e := newEnv(t)
	out, err := e.run(t, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "No solution paths recorded yet.")

	_, err = e.run(t, "test", "--algo", "bfs")
	require.NoError(t, err)
	_, err = e.run(t, "solve", "--algo", "bfs", "R U")
	require.NoError(t, err)

	out, err = e.run(t, "stats", "--min", "1", "--max", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Paths:        3 from 2 runs")
	assert.Contains(t, out, "1-move sequences")
}

func TestSolveReportsReducedScramble(t *testing.T) {
	out, err := newEnv(t).run(t, "solve", "--algo", "bfs", "R U U' R' F F F")
	require.NoError(t, err)
	assert.Contains(t, out, "Reduced:   F' (1 moves)")
	assert.Contains(t, out, "Solution:  F")
}
