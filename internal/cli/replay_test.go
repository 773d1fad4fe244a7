package cli

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/pocketcube/internal/harness"
	"github.com/SeamusWaldron/pocketcube/pkg/types"
)

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestReplay(auto bool) *replayModel {
	tc := harness.Case{Scramble: "R U", Moves: []types.Move{types.R, types.U}}
	return newReplayModel(tc, []types.Move{types.UPrime, types.RPrime}, time.Millisecond, auto)
}

func TestReplayStepping(t *testing.T) {
	m := newTestReplay(false)
	assert.Nil(t, m.Init())
	require.Len(t, m.states, 3)
	assert.False(t, m.current().IsSolved())

	m.Update(key("n"))
	assert.Equal(t, 1, m.step)
	m.Update(tea.KeyMsg{Type: tea.KeySpace})
	assert.Equal(t, 2, m.step)
	assert.True(t, m.current().IsSolved())
	assert.Contains(t, m.View(), "SOLVED!")

	// Stepping past the end is a no-op.
	m.Update(key("n"))
	assert.Equal(t, 2, m.step)

	m.Update(key("b"))
	assert.Equal(t, 1, m.step)
	assert.Contains(t, m.View(), "1 moves to go")

	m.Update(key("r"))
	assert.Equal(t, 0, m.step)
	m.Update(key("b"))
	assert.Equal(t, 0, m.step)
	m.Update(key("e"))
	assert.Equal(t, 2, m.step)
}

func TestReplayAutoPlay(t *testing.T) {
	m := newTestReplay(true)
	assert.NotNil(t, m.Init())

	_, cmd := m.Update(replayTickMsg(time.Now()))
	assert.Equal(t, 1, m.step)
	assert.NotNil(t, cmd)

	_, cmd = m.Update(replayTickMsg(time.Now()))
	assert.Equal(t, 2, m.step)
	assert.Nil(t, cmd)
	assert.False(t, m.playing)

	// Ticks after stopping do nothing.
	m.Update(key("r"))
	_, cmd = m.Update(replayTickMsg(time.Now()))
	assert.Equal(t, 0, m.step)
	assert.Nil(t, cmd)
}

func TestReplaySpeedBounds(t *testing.T) {
	m := newTestReplay(false)
	m.Update(key("+"))
	assert.Equal(t, 50*time.Millisecond, m.interval)
	for i := 0; i < 10; i++ {
		m.Update(key("-"))
	}
	assert.Equal(t, 5*time.Second, m.interval)
}

func TestReplayQuit(t *testing.T) {
	m := newTestReplay(false)
	_, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
	assert.True(t, m.quitting)
	assert.Equal(t, "Replay ended.\n", m.View())
}
