// Package random implements the easy director: it guesses blindly.
package random

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/sweeplab/minesweep/game"
)

type Director struct {
	board *game.Board
	order []*game.Cell
}

func (director *Director) Init(board *game.Board) {
	director.board = board

	director.order = make([]*game.Cell, 0, board.NumCells())
	for y := 0; y < board.Height(); y++ {
		for x := 0; x < board.Width(); x++ {
			director.order = append(director.order, board.CellAt(x, y))
		}
	}

	rand.Shuffle(len(director.order), func(i, j int) {
		director.order[i], director.order[j] = director.order[j], director.order[i]
	})
}

// Act reveals the next hidden, unflagged cell in the director's shuffled
// visit order.
func (director *Director) Act() {
	if director.board.State() != game.Ongoing {
		return
	}

	for _, cell := range director.order {
		if !cell.IsRevealed() && !cell.IsFlagged() {
			logrus.WithFields(logrus.Fields{
				"x": cell.X(),
				"y": cell.Y(),
			}).Debug("random director reveals")

			director.board.Reveal(cell.X(), cell.Y())
			return
		}
	}
}

func (director *Director) End() {}
