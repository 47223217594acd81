package game

// Action is the kind of a recorded move.
type Action int

const (
	ActionReveal Action = iota
	ActionFlag
	ActionChord
	ActionHint
)

func (action Action) String() string {
	switch action {
	case ActionReveal:
		return "reveal"
	case ActionFlag:
		return "flag"
	case ActionChord:
		return "chord"
	case ActionHint:
		return "hint"
	default:
		return "unknown"
	}
}

// Move is one entry of a game's move log.
type Move struct {
	Action Action
	X, Y   int
}

func (board *Board) record(move Move) {
	board.history = append(board.history, move)
}

// History returns the moves played so far, oldest first. The returned slice
// is a copy and safe to hold across further moves.
func (board *Board) History() []Move {
	history := make([]Move, len(board.history))
	copy(history, board.history)
	return history
}
