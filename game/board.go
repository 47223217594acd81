package game

import (
	"math/rand"
	"time"

	"github.com/sweeplab/minesweep/util/collections"
)

// Board owns the full state of one game. It is not safe for concurrent use;
// all operations are expected to run sequentially on the presentation
// loop's goroutine.
type Board struct {
	width, height int
	numMines      int
	cells         [][]Cell

	state       BoardState
	numFlags    int
	numRevealed int

	minesPlaced bool
	firstClick  FirstClickPolicy
	rand        *rand.Rand
	seed        int64

	hintsLeft int
	history   []Move

	startedAt, endedAt time.Time
}

// New creates a fresh board. Mines are not placed until the first Reveal,
// which guarantees the first revealed cell is never a mine.
func New(config Config) (*Board, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	board := &Board{
		width:      config.Width,
		height:     config.Height,
		numMines:   config.NumMines,
		state:      Ongoing,
		firstClick: config.FirstClick,
		rand:       rand.New(rand.NewSource(seed)),
		seed:       seed,
		hintsLeft:  MaxHints,
	}
	board.allocCells()

	return board, nil
}

func (board *Board) allocCells() {
	board.cells = make([][]Cell, board.height)
	for y := 0; y < board.height; y++ {
		row := make([]Cell, board.width)
		board.cells[y] = row

		for x := 0; x < board.width; x++ {
			cell := &row[x]
			cell.board = board
			cell.x, cell.y = x, y
			cell.state = Unrevealed
		}
	}
}

func (board *Board) Width() int {
	return board.width
}

func (board *Board) Height() int {
	return board.height
}

func (board *Board) NumCells() int {
	return board.width * board.height
}

func (board *Board) NumMines() int {
	return board.numMines
}

// Seed is the seed actually used for mine placement, even when the config
// asked for a time-derived one.
func (board *Board) Seed() int64 {
	return board.seed
}

func (board *Board) State() BoardState {
	return board.state
}

// FlagsLeft is the mine count minus placed flags. It may go negative when
// the player over-flags.
func (board *Board) FlagsLeft() int {
	return board.numMines - board.numFlags
}

func (board *Board) HintsLeft() int {
	return board.hintsLeft
}

// CellAt returns the cell at (x, y), or nil if the coordinates fall outside
// the board.
func (board *Board) CellAt(x, y int) *Cell {
	if x < 0 || y < 0 || x >= board.width || y >= board.height {
		return nil
	}
	return &board.cells[y][x]
}

func (board *Board) checkBounds(x, y int) error {
	if x < 0 || y < 0 || x >= board.width || y >= board.height {
		return OutOfBoundsError{X: x, Y: y, Width: board.width, Height: board.height}
	}
	return nil
}

func (board *Board) canPlay() bool {
	return board.state == Ongoing
}

// Reveal uncovers the cell at (x, y). Revealing a flagged or already
// revealed cell is a no-op, as is any reveal after the game has ended. The
// first reveal of a game places the mines, excluding the clicked cell per
// the board's FirstClickPolicy. Revealing a zero-count cell floods the
// whole connected zero region and its numbered boundary.
func (board *Board) Reveal(x, y int) error {
	if err := board.checkBounds(x, y); err != nil {
		return err
	}
	if !board.canPlay() {
		return nil
	}

	cell := &board.cells[y][x]
	if cell.isFlagged || cell.isRevealed {
		return nil
	}

	if !board.minesPlaced {
		board.placeMines(cell)
		board.startedAt = time.Now()
	}

	board.record(Move{Action: ActionReveal, X: x, Y: y})

	if cell.isMine {
		cell.reveal()
		return nil
	}

	board.flood(cell)
	return nil
}

// ToggleFlag flips the cell at (x, y) between hidden and flagged. Revealed
// cells cannot be flagged; after a terminal state the call is a no-op.
func (board *Board) ToggleFlag(x, y int) error {
	if err := board.checkBounds(x, y); err != nil {
		return err
	}
	if !board.canPlay() {
		return nil
	}

	cell := &board.cells[y][x]
	if cell.isRevealed {
		return nil
	}

	cell.setFlagged(!cell.isFlagged)
	board.record(Move{Action: ActionFlag, X: x, Y: y})
	return nil
}

// Chord reveals all unflagged neighbors of a revealed numbered cell whose
// flagged-neighbor count matches its number. A wrong flag makes chording
// hit a mine, losing the game.
func (board *Board) Chord(x, y int) error {
	if err := board.checkBounds(x, y); err != nil {
		return err
	}
	if !board.canPlay() {
		return nil
	}

	cell := &board.cells[y][x]
	if !cell.isRevealed || cell.numMines == 0 {
		return nil
	}

	numFlagged := 0
	for _, neighbor := range cell.Neighbors() {
		if neighbor.isFlagged {
			numFlagged++
		}
	}
	if numFlagged != cell.numMines {
		return nil
	}

	board.record(Move{Action: ActionChord, X: x, Y: y})

	for _, neighbor := range cell.Neighbors() {
		if !board.canPlay() {
			break
		}
		if neighbor.isFlagged || neighbor.isRevealed {
			continue
		}
		if neighbor.isMine {
			neighbor.reveal()
		} else {
			board.flood(neighbor)
		}
	}
	return nil
}

// Hint returns a random safe hidden cell, or nil when the hint budget is
// spent or no such cell remains. The cell is not revealed; that choice is
// left to the player.
func (board *Board) Hint() *Cell {
	if board.hintsLeft <= 0 || !board.canPlay() || !board.minesPlaced {
		return nil
	}

	safe := make([]*Cell, 0, board.NumCells())
	for y := 0; y < board.height; y++ {
		for x := 0; x < board.width; x++ {
			cell := &board.cells[y][x]
			if !cell.isRevealed && !cell.isFlagged && !cell.isMine {
				safe = append(safe, cell)
			}
		}
	}
	if len(safe) == 0 {
		return nil
	}

	board.hintsLeft--
	cell := safe[board.rand.Intn(len(safe))]
	board.record(Move{Action: ActionHint, X: cell.x, Y: cell.y})
	return cell
}

// Duration is the wall time from the first reveal until the game ended, or
// until now while it is still ongoing.
func (board *Board) Duration() time.Duration {
	if board.startedAt.IsZero() {
		return 0
	}
	if board.endedAt.IsZero() {
		return time.Since(board.startedAt)
	}
	return board.endedAt.Sub(board.startedAt)
}

// placeMines fills the board with mines, excluding the first-clicked cell
// (and, under SafeArea, its whole neighborhood when the density allows) and
// updates the adjacency counts of surrounding cells.
func (board *Board) placeMines(first *Cell) {
	excluded := make(collections.Set[int])
	excluded.Add(first.y*board.width + first.x)

	if board.firstClick == SafeArea {
		area := make(collections.Set[int])
		area.Add(first.y*board.width + first.x)
		for _, neighbor := range first.Neighbors() {
			area.Add(neighbor.y*board.width + neighbor.x)
		}
		if board.NumCells()-len(area) >= board.numMines {
			excluded = area
		}
	}

	candidates := make([]int, 0, board.NumCells()-len(excluded))
	for idx := 0; idx < board.NumCells(); idx++ {
		if !excluded.Contains(idx) {
			candidates = append(candidates, idx)
		}
	}

	board.rand.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	for _, idx := range candidates[:board.numMines] {
		cell := &board.cells[idx/board.width][idx%board.width]
		cell.isMine = true

		for _, neighbor := range cell.Neighbors() {
			neighbor.numMines++
		}
	}

	board.minesPlaced = true
}

// markRevealed counts a newly revealed safe cell and ends the game when
// every safe cell has been revealed.
func (board *Board) markRevealed() {
	board.numRevealed++
	if board.numRevealed == board.NumCells()-board.numMines {
		board.win()
	}
}

func (board *Board) win() {
	board.state = Won
	board.endedAt = time.Now()
}

func (board *Board) lose() {
	board.state = Lost
	board.endedAt = time.Now()

	for y := 0; y < board.height; y++ {
		for x := 0; x < board.width; x++ {
			board.cells[y][x].revealLost()
		}
	}
}
