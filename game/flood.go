package game

import "github.com/gammazero/deque"

// flood reveals a safe cell and, breadth-first over an explicit work queue,
// every cell reachable through connected zero-count cells. The numbered
// boundary of the region gets revealed; nothing past it does. Revealed
// state doubles as the visited marker, so each cell is handled at most
// once.
func (board *Board) flood(start *Cell) {
	var queue deque.Deque
	queue.PushBack(start)

	for queue.Len() > 0 {
		cell := queue.PopFront().(*Cell)
		if cell.isRevealed || cell.isFlagged {
			continue
		}

		cell.reveal()
		if !board.canPlay() {
			break
		}

		if cell.numMines == 0 {
			for _, neighbor := range cell.Neighbors() {
				if !neighbor.isRevealed && !neighbor.isFlagged {
					queue.PushBack(neighbor)
				}
			}
		}
	}
}
