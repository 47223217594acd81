package game

// CellState is the externally visible state of a single cell. The numeric
// states double as adjacency counts: CellState(n) is a revealed cell with
// n neighboring mines.
type CellState int

const (
	Unrevealed CellState = iota - 1
	Empty
	Number1
	Number2
	Number3
	Number4
	Number5
	Number6
	Number7
	Number8
	Flag
	FlagWrong
	Mine
	MineUnrevealed
	MineLosing
)

var CellStates = []CellState{
	Unrevealed,
	Empty,
	Number1,
	Number2,
	Number3,
	Number4,
	Number5,
	Number6,
	Number7,
	Number8,
	Flag,
	FlagWrong,
	Mine,
	MineUnrevealed,
	MineLosing,
}

// BoardState is the state of the game as a whole. Once a board reaches Won
// or Lost it accepts no further mutation; a new board must be created.
type BoardState int

const (
	Ongoing BoardState = iota
	Won
	Lost
)

func (state BoardState) String() string {
	switch state {
	case Ongoing:
		return "ongoing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// FirstClickPolicy controls how mines are kept away from the first revealed
// cell. Mines are only placed when the first reveal happens, so the first
// click can never lose the game under either policy.
type FirstClickPolicy int

const (
	// SafeCell guarantees only the first-clicked cell is mine-free.
	SafeCell FirstClickPolicy = iota
	// SafeArea clears the whole 3x3 area around the first click, falling
	// back to SafeCell when mines wouldn't fit in the remaining cells.
	SafeArea
)

// MaxHints is the number of hints available per game.
const MaxHints = 3
