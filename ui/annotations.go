package ui

import (
	"time"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"github.com/gammazero/deque"

	"github.com/sweeplab/minesweep/game"
)

// annotationQueue trails the board's move history and briefly highlights
// each move's cell, fading it out over the configured duration.
type annotationQueue struct {
	queue deque.Deque
	board *game.Board
	seen  int

	baseAlpha float64
	duration  time.Duration
}

type annotation struct {
	move       game.Move
	firstShown time.Time
}

func newAnnotationQueue(baseAlpha float64, duration time.Duration) *annotationQueue {
	return &annotationQueue{
		baseAlpha: baseAlpha,
		duration:  duration,
	}
}

func (queue *annotationQueue) reset(board *game.Board) {
	queue.board = board
	queue.seen = 0
	queue.queue.Clear()
}

// observe enqueues annotations for any moves played since the last call.
func (queue *annotationQueue) observe() {
	history := queue.board.History()
	for ; queue.seen < len(history); queue.seen++ {
		queue.queue.PushBack(annotation{
			move:       history[queue.seen],
			firstShown: time.Now(),
		})
	}
}

var annotationColors = map[game.Action]pixel.RGBA{
	game.ActionReveal: pixel.RGB(1, 0, 0),
	game.ActionFlag:   pixel.RGB(0, 0, 1),
	game.ActionChord:  pixel.RGB(0, 1, 0),
	game.ActionHint:   pixel.RGB(1, 1, 0),
}

func (queue *annotationQueue) draw(win *pixelgl.Window, boardTop float64) {
	if queue.queue.Len() == 0 {
		return
	}

	imd := imdraw.New(nil)
	now := time.Now()

	for queue.queue.Len() > 0 {
		front := queue.queue.Front().(annotation)
		if now.Sub(front.firstShown) > queue.duration {
			queue.queue.PopFront()
			continue
		}
		break
	}

	for i := 0; i < queue.queue.Len(); i++ {
		a := queue.queue.At(i).(annotation)

		timeShown := now.Sub(a.firstShown)
		if timeShown > queue.duration {
			continue
		}

		min := pixel.V(
			float64(a.move.X*cellWidth),
			boardTop-float64((a.move.Y+1)*cellWidth),
		)
		max := min.Add(pixel.V(cellWidth, cellWidth))

		progress := 1 - float64(timeShown)/float64(queue.duration)
		alpha := queue.baseAlpha * inOutCubic(progress)

		imd.Color = annotationColors[a.move.Action].Mul(pixel.Alpha(alpha))
		imd.Push(min, max)
		imd.Rectangle(0) // 0 = filled
	}

	imd.Draw(win)
}

func inOutCubic(t float64) float64 {
	t *= 2
	if t < 1 {
		return 0.5 * t * t * t
	}
	t -= 2
	return 0.5 * (t*t*t + 2)
}
