package game

import "fmt"

// Cell is a single square of the board. All mutation goes through the
// owning Board's operations.
type Cell struct {
	board *Board

	x, y     int
	numMines int

	isMine, isRevealed, isFlagged bool
	isLosingMine                  bool

	state CellState
}

func (cell *Cell) String() string {
	return fmt.Sprintf("Cell(%d, %d)", cell.x, cell.y)
}

func (cell *Cell) X() int {
	return cell.x
}

func (cell *Cell) Y() int {
	return cell.y
}

func (cell *Cell) IsRevealed() bool {
	return cell.isRevealed
}

func (cell *Cell) IsFlagged() bool {
	return cell.isFlagged
}

// NumMines is the number of mines among the up-to-8 neighbors. It is only
// meaningful once mines have been placed, and never for a mine cell.
func (cell *Cell) NumMines() int {
	return cell.numMines
}

// State is the display state of the cell, suitable for rendering.
func (cell *Cell) State() CellState {
	return cell.state
}

var neighborDeltas = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Neighbors returns the in-bounds cells of the 3x3 area around the cell,
// excluding the cell itself.
func (cell *Cell) Neighbors() []*Cell {
	neighbors := make([]*Cell, 0, 8)
	for _, delta := range neighborDeltas {
		if neighbor := cell.board.CellAt(cell.x+delta[0], cell.y+delta[1]); neighbor != nil {
			neighbors = append(neighbors, neighbor)
		}
	}
	return neighbors
}

func (cell *Cell) setState(state CellState) {
	cell.state = state
}

func (cell *Cell) setFlagged(isFlagged bool) {
	cell.isFlagged = isFlagged

	if cell.isFlagged {
		cell.setState(Flag)
		cell.board.numFlags++
	} else {
		cell.setState(Unrevealed)
		cell.board.numFlags--
	}
}

func (cell *Cell) reveal() {
	if cell.isFlagged || cell.isRevealed {
		return
	}
	cell.isRevealed = true

	if cell.isMine {
		cell.isLosingMine = true
		cell.setState(MineLosing)
		cell.board.lose()
	} else {
		cell.setState(CellState(cell.numMines))
		cell.board.markRevealed()
	}
}

// revealLost updates the display state of an untouched cell after the game
// has been lost: unrevealed mines are exposed, wrong flags crossed out.
func (cell *Cell) revealLost() {
	if cell.isFlagged {
		if !cell.isMine {
			cell.setState(FlagWrong)
		}
	} else if cell.isMine && !cell.isLosingMine {
		cell.setState(MineUnrevealed)
	}
}

func (cell *Cell) serialize() byte {
	switch {
	case cell.isMine:
		switch {
		case cell.isLosingMine:
			return '*'
		case cell.isFlagged:
			return 'F'
		default:
			return 'O'
		}
	case cell.isFlagged:
		return 'f'
	case cell.isRevealed:
		return '.'
	default:
		return '#'
	}
}

func (cell *Cell) deserialize(c byte) bool {
	switch c {
	case '*', 'F', 'O':
		cell.isMine = true

		switch c {
		case '*':
			cell.isLosingMine = true
			cell.isRevealed = true
			cell.setState(MineLosing)
		case 'F':
			cell.isFlagged = true
			cell.setState(Flag)
		default:
			cell.setState(Unrevealed)
		}
	case 'f':
		cell.isFlagged = true
		cell.setState(Flag)
	case '.':
		cell.isRevealed = true
		// The numeric state is fixed up once adjacency counts are known.
		cell.setState(Empty)
	case '#':
		cell.isRevealed = false
		cell.setState(Unrevealed)
	default:
		return false
	}

	return true
}
