// Package rules implements the deducing director. It plays from revealed
// numbers only: local count rules at the normal level, plus the 1-2-1
// pattern at the hard level. Flag deductions do not end its turn; the first
// reveal does. When no deduction applies it guesses like the random
// director.
package rules

import (
	"github.com/sirupsen/logrus"

	"github.com/sweeplab/minesweep/director/random"
	"github.com/sweeplab/minesweep/game"
)

// maxDeductions caps the flag-deduction loop of a single turn.
const maxDeductions = 100

type Director struct {
	// Patterns enables 1-2-1 pattern recognition (the hard level).
	Patterns bool

	board *game.Board
}

type move struct {
	action game.Action
	x, y   int
}

func (director *Director) Init(board *game.Board) {
	director.board = board
}

// Act performs one turn-ending move: deductions run until they produce a
// reveal, and a blind guess covers for a stalled position.
func (director *Director) Act() {
	if director.board.State() != game.Ongoing {
		return
	}

	for i := 0; i < maxDeductions; i++ {
		mv := director.step()
		if mv == nil {
			break
		}

		logrus.WithFields(logrus.Fields{
			"action": mv.action,
			"x":      mv.x,
			"y":      mv.y,
		}).Debug("rules director deduces")

		if mv.action == game.ActionReveal {
			return
		}
	}

	director.guess()
}

func (director *Director) End() {}

func (director *Director) guess() {
	fallback := &random.Director{}
	fallback.Init(director.board)
	fallback.Act()
	fallback.End()
}

func (director *Director) step() *move {
	if director.Patterns {
		if mv := director.apply121(); mv != nil {
			return mv
		}
	}
	return director.applyCountRules()
}

// applyCountRules runs the two local inference rules around every revealed
// number: when flagged+hidden neighbors match the number all hidden
// neighbors are mines, and when flagged neighbors alone match it the rest
// are safe. The first actionable step is performed and returned.
func (director *Director) applyCountRules() *move {
	board := director.board

	for y := 0; y < board.Height(); y++ {
		for x := 0; x < board.Width(); x++ {
			cell := board.CellAt(x, y)
			if !cell.IsRevealed() || cell.NumMines() == 0 {
				continue
			}

			var hidden, flagged []*game.Cell
			for _, neighbor := range cell.Neighbors() {
				if neighbor.IsRevealed() {
					continue
				}
				if neighbor.IsFlagged() {
					flagged = append(flagged, neighbor)
				} else {
					hidden = append(hidden, neighbor)
				}
			}
			if len(hidden) == 0 {
				continue
			}

			if len(flagged)+len(hidden) == cell.NumMines() {
				target := hidden[0]
				board.ToggleFlag(target.X(), target.Y())
				return &move{action: game.ActionFlag, x: target.X(), y: target.Y()}
			}

			if len(flagged) == cell.NumMines() {
				target := hidden[0]
				board.Reveal(target.X(), target.Y())
				return &move{action: game.ActionReveal, x: target.X(), y: target.Y()}
			}
		}
	}
	return nil
}

// apply121 scans for the classic 1-2-1 shape in both orientations. The
// cells beside the 2 are safe, the outer diagonals next to the 1s are
// mines.
func (director *Director) apply121() *move {
	board := director.board

	for y := 0; y < board.Height(); y++ {
		for x := 1; x < board.Width()-1; x++ {
			if mv := director.check121(x, y, 1, 0); mv != nil {
				return mv
			}
		}
	}
	for y := 1; y < board.Height()-1; y++ {
		for x := 0; x < board.Width(); x++ {
			if mv := director.check121(x, y, 0, 1); mv != nil {
				return mv
			}
		}
	}
	return nil
}

// check121 tests for a 1-2-1 centered at (x, y) along the (dx, dy) axis
// and performs the first consequence it finds. The perpendicular axis is
// (dy, dx).
func (director *Director) check121(x, y, dx, dy int) *move {
	board := director.board

	isNumber := func(cell *game.Cell, n int) bool {
		return cell != nil && cell.IsRevealed() && cell.NumMines() == n
	}
	if !isNumber(board.CellAt(x-dx, y-dy), 1) ||
		!isNumber(board.CellAt(x, y), 2) ||
		!isNumber(board.CellAt(x+dx, y+dy), 1) {
		return nil
	}

	for _, side := range []int{-1, 1} {
		// Beside the 2 is safe.
		middle := board.CellAt(x+side*dy, y+side*dx)
		if middle != nil && !middle.IsRevealed() && !middle.IsFlagged() {
			board.Reveal(middle.X(), middle.Y())
			return &move{action: game.ActionReveal, x: middle.X(), y: middle.Y()}
		}

		// The outer diagonals hold the mines.
		for _, along := range []int{-1, 1} {
			outer := board.CellAt(x+side*dy+along*dx, y+side*dx+along*dy)
			if outer != nil && !outer.IsRevealed() && !outer.IsFlagged() {
				board.ToggleFlag(outer.X(), outer.Y())
				return &move{action: game.ActionFlag, x: outer.X(), y: outer.Y()}
			}
		}
	}
	return nil
}
