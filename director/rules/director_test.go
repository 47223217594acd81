package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sweeplab/minesweep/game"
)

func restore(t *testing.T, serialized string) *game.Board {
	t.Helper()
	snapshot := &game.BoardSnapshot{Seed: 1, SerializedBoard: serialized}
	board, err := snapshot.Restore(false)
	require.NoError(t, err)
	return board
}

// The 1 at (1, 0) sees a single hidden neighbor, so it must be the mine;
// once flagged, the 1 at (1, 1) is satisfied and its remaining hidden
// neighbor is safe. One turn of deduction finishes the board.
func TestCountRuleDeductions(t *testing.T) {
	board := restore(t, ""+
		"O..\n"+
		"...\n"+
		"..#")

	director := &Director{}
	director.Init(board)
	director.Act()

	assert.True(t, board.CellAt(0, 0).IsFlagged())
	assert.True(t, board.CellAt(2, 2).IsRevealed())
	assert.Equal(t, game.Won, board.State())
}

// A horizontal 1-2-1 along the bottom row: the cell above the 2 is safe
// and revealing it finishes the board.
func TestPattern121(t *testing.T) {
	board := restore(t, ""+
		"O#O\n"+
		"...")

	director := &Director{Patterns: true}
	director.Init(board)
	director.Act()

	assert.True(t, board.CellAt(1, 0).IsRevealed())
	assert.Equal(t, game.Won, board.State())
}

// Without pattern recognition the 1-2-1 position is a stall: the director
// must still end its turn with a reveal, by guessing.
func TestStalledTurnFallsBackToGuess(t *testing.T) {
	board := restore(t, ""+
		"O#O\n"+
		"...")

	director := &Director{}
	director.Init(board)
	director.Act()

	history := board.History()
	require.NotEmpty(t, history)
	assert.Equal(t, game.ActionReveal, history[len(history)-1].Action)
}

func TestActAfterGameOver(t *testing.T) {
	board := restore(t, "*#\n#O")
	require.Equal(t, game.Lost, board.State())

	director := &Director{Patterns: true}
	director.Init(board)
	director.Act()

	assert.Empty(t, board.History())
}
