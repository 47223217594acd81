package game

import (
	"math/rand"
	"strings"
	"time"

	"gopkg.in/yaml.v2"
)

// BoardSnapshot is a serializable view of a board: its seed plus one
// character per cell ('#' hidden, '.' revealed, 'f'/'F' flags, 'O' mine,
// '*' the losing mine). Snapshots reconstruct boards for tests, replays of
// a finished layout, and debug dumps.
type BoardSnapshot struct {
	Seed            int64  `yaml:"seed"`
	SerializedBoard string `yaml:"board,flow"`
}

// Snapshot captures the current board. It is read-only: the board is not
// modified.
func (board *Board) Snapshot() *BoardSnapshot {
	var b strings.Builder
	for y := 0; y < board.height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < board.width; x++ {
			b.WriteByte(board.cells[y][x].serialize())
		}
	}

	return &BoardSnapshot{
		Seed:            board.seed,
		SerializedBoard: b.String(),
	}
}

func (snapshot *BoardSnapshot) Serialize() string {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		panic(err)
	}
	return string(out)
}

func LoadSnapshot(in string) (*BoardSnapshot, error) {
	var snapshot BoardSnapshot
	if err := yaml.Unmarshal([]byte(in), &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// Restore builds a board from the snapshot. With fresh set, all cells start
// hidden and unflagged so the recorded layout can be replayed from the
// beginning.
func (snapshot *BoardSnapshot) Restore(fresh bool) (*Board, error) {
	rows := strings.Split(strings.TrimSpace(snapshot.SerializedBoard), "\n")

	height := len(rows)
	width := len(rows[0])
	if height == 0 || width == 0 {
		return nil, InvalidConfigError{Reason: "empty snapshot"}
	}
	for _, row := range rows {
		if len(row) != width {
			return nil, InvalidConfigError{Reason: "snapshot rows differ in length"}
		}
	}

	seed := snapshot.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	board := &Board{
		width:       width,
		height:      height,
		state:       Ongoing,
		rand:        rand.New(rand.NewSource(seed)),
		seed:        seed,
		hintsLeft:   MaxHints,
		minesPlaced: true,
	}
	board.allocCells()

	for y, row := range rows {
		for x := 0; x < width; x++ {
			cell := &board.cells[y][x]
			if !cell.deserialize(row[x]) {
				return nil, InvalidConfigError{
					Reason: "snapshot contains an unknown cell character",
				}
			}

			if fresh {
				cell.isFlagged = false
				cell.isRevealed = false
				cell.isLosingMine = false
				cell.setState(Unrevealed)
			}
		}
	}

	board.recount()
	if board.numMines == 0 || board.numMines >= board.NumCells() {
		return nil, InvalidConfigError{Reason: "snapshot mine count is unplayable"}
	}

	return board, nil
}

// recount rebuilds the derived counters and states from raw cell data after
// deserialization.
func (board *Board) recount() {
	board.numMines = 0
	board.numFlags = 0
	board.numRevealed = 0

	for y := 0; y < board.height; y++ {
		for x := 0; x < board.width; x++ {
			cell := &board.cells[y][x]
			if cell.isMine {
				board.numMines++
				for _, neighbor := range cell.Neighbors() {
					neighbor.numMines++
				}
			}
			if cell.isFlagged {
				board.numFlags++
			}
		}
	}

	for y := 0; y < board.height; y++ {
		for x := 0; x < board.width; x++ {
			cell := &board.cells[y][x]
			if cell.isRevealed {
				if cell.isMine {
					board.state = Lost
				} else {
					cell.setState(CellState(cell.numMines))
					board.numRevealed++
				}
			}
		}
	}

	if board.state == Lost {
		for y := 0; y < board.height; y++ {
			for x := 0; x < board.width; x++ {
				board.cells[y][x].revealLost()
			}
		}
	} else if board.numRevealed == board.NumCells()-board.numMines {
		board.state = Won
	}
}
