package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRoundTrip(t *testing.T) {
	board := mustBoard(t, Config{Width: 9, Height: 9, NumMines: 10, Seed: 21})
	require.NoError(t, board.Reveal(4, 4))
	require.NoError(t, board.ToggleFlag(0, 0))

	snapshot := board.Snapshot()
	loaded, err := LoadSnapshot(snapshot.Serialize())
	require.NoError(t, err)
	assert.Equal(t, snapshot.Seed, loaded.Seed)
	assert.Equal(t, snapshot.SerializedBoard, loaded.SerializedBoard)

	restored, err := loaded.Restore(false)
	require.NoError(t, err)

	assert.Equal(t, board.State(), restored.State())
	assert.Equal(t, board.FlagsLeft(), restored.FlagsLeft())
	assert.Equal(t, snapshot.SerializedBoard, restored.Snapshot().SerializedBoard)
}

func TestSnapshotIsReadOnly(t *testing.T) {
	board := mustBoard(t, Config{Width: 9, Height: 9, NumMines: 10, Seed: 21})
	require.NoError(t, board.Reveal(4, 4))

	first := board.Snapshot().SerializedBoard
	second := board.Snapshot().SerializedBoard

	assert.Equal(t, first, second)
	assert.Equal(t, Ongoing, board.State())
}

func TestSnapshotRestoreFresh(t *testing.T) {
	board := mustRestore(t, ""+
		"O.f\n"+
		"...\n"+
		"..#")

	snapshot := board.Snapshot()
	fresh, err := snapshot.Restore(true)
	require.NoError(t, err)

	assert.Equal(t, Ongoing, fresh.State())
	assert.Equal(t, 1, fresh.NumMines())
	for y := 0; y < fresh.height; y++ {
		for x := 0; x < fresh.width; x++ {
			cell := &fresh.cells[y][x]
			assert.False(t, cell.isRevealed, "(%d, %d)", x, y)
			assert.False(t, cell.isFlagged, "(%d, %d)", x, y)
		}
	}
	assert.True(t, fresh.cells[0][0].isMine)
}

func TestSnapshotRestoreLostGame(t *testing.T) {
	board, err := (&BoardSnapshot{SerializedBoard: "*#\n#O"}).Restore(false)
	require.NoError(t, err)

	assert.Equal(t, Lost, board.State())
	assert.Equal(t, MineLosing, board.cells[0][0].state)
	assert.Equal(t, MineUnrevealed, board.cells[1][1].state)
}

func TestSnapshotRestoreErrors(t *testing.T) {
	tests := []struct {
		name       string
		serialized string
	}{
		{"unknown character", "O#\n#?"},
		{"ragged rows", "O##\n##"},
		{"no mines", "##\n##"},
		{"all mines", "OO\nOO"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			snapshot := &BoardSnapshot{Seed: 1, SerializedBoard: test.serialized}
			_, err := snapshot.Restore(false)
			assert.Error(t, err)
		})
	}
}
