// Package ui is the pixel-based presentation layer. It polls input, calls
// into the game package and renders the board every frame; all game rules
// live behind the Board operations.
package ui

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"github.com/faiface/pixel/text"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/sweeplab/minesweep/game"
)

const (
	cellWidth      = 24
	headerHeight   = 50
	minWindowWidth = 260
)

// Config ties a board configuration to the optional director driving it.
type Config struct {
	Game     game.Config
	Director game.Director

	// Time between director moves
	StepInterval time.Duration
	// Transparency of move annotations when first displayed
	AnnotationBaseAlpha float64
	// Total time a move annotation stays visible
	AnnotationDuration time.Duration
}

func NewConfig() Config {
	return Config{
		Game:                game.NewConfig(),
		StepInterval:        500 * time.Millisecond,
		AnnotationBaseAlpha: 0.5,
		AnnotationDuration:  700 * time.Millisecond,
	}
}

// Run opens the window and drives the game loop until the window closes.
// Call it from within pixelgl.Run.
func Run(config Config) {
	cfg := pixelgl.WindowConfig{
		Title: "minesweep",
		Bounds: pixel.R(
			0, 0,
			math.Max(float64(config.Game.Width*cellWidth), minWindowWidth),
			float64(config.Game.Height*cellWidth+headerHeight),
		),
	}
	win, err := pixelgl.NewWindow(cfg)
	if err != nil {
		panic(err)
	}

	basicAtlas := text.NewAtlas(basicfont.Face7x13, text.ASCII)
	scoreText := text.New(pixel.ZV, basicAtlas)
	cellPosText := text.New(pixel.ZV, basicAtlas)
	glyphText := text.New(pixel.ZV, basicAtlas)

	annotations := newAnnotationQueue(config.AnnotationBaseAlpha, config.AnnotationDuration)

	var board *game.Board
	var gameLogged bool
	paused := false

	resetBoard := func() {
		board, err = game.New(config.Game)
		if err != nil {
			// The CLI validates the config before Run; a failure here is
			// a programming error.
			panic(err)
		}
		gameLogged = false
		annotations.reset(board)

		if config.Director != nil {
			config.Director.Init(board)
		}

		logrus.WithFields(logrus.Fields{
			"width":  board.Width(),
			"height": board.Height(),
			"mines":  board.NumMines(),
			"seed":   board.Seed(),
		}).Info("game started")
	}
	resetBoard()

	var (
		frames = 0
		second = time.Tick(time.Second)
		step   = time.Tick(config.StepInterval)
	)

	for !win.Closed() {
		win.Update()
		win.Clear(colornames.Gainsboro)

		frames++
		select {
		case <-second:
			win.SetTitle(fmt.Sprintf("%s | FPS: %d", cfg.Title, frames))
			frames = 0
		default:
		}

		boardTop := float64(board.Height() * cellWidth)
		hovered := hoveredCell(board, win, boardTop)

		drawHeader(win, board, scoreText, cellPosText, hovered)
		drawBoard(win, board, glyphText, boardTop)
		annotations.draw(win, boardTop)

		if board.State() == game.Ongoing {
			if config.Director != nil {
				// Pause with Space, single-step with Right Arrow
				if win.JustPressed(pixelgl.KeySpace) {
					paused = !paused
				}
				if paused && (win.JustPressed(pixelgl.KeyRight) || win.Repeated(pixelgl.KeyRight)) {
					config.Director.Act()
				}

				select {
				case <-step:
					if !paused {
						config.Director.Act()
					}
				default:
				}
			}

			if win.JustPressed(pixelgl.KeyH) {
				if cell := board.Hint(); cell != nil {
					logrus.WithFields(logrus.Fields{
						"x": cell.X(),
						"y": cell.Y(),
					}).Info("hint used")
				}
			}

			if hovered != nil {
				if win.JustPressed(pixelgl.MouseButtonLeft) {
					board.Reveal(hovered.X(), hovered.Y())
				}
				if win.JustPressed(pixelgl.MouseButtonRight) {
					board.ToggleFlag(hovered.X(), hovered.Y())
				}
				if win.JustPressed(pixelgl.MouseButtonMiddle) {
					board.Chord(hovered.X(), hovered.Y())
				}
			}
		} else {
			if !gameLogged {
				gameLogged = true
				if config.Director != nil {
					config.Director.End()
				}

				logrus.WithFields(logrus.Fields{
					"state":    board.State(),
					"duration": board.Duration().Round(time.Millisecond),
					"moves":    len(board.History()),
				}).Info("game over")
				logrus.Debugf("final board:\n%s", board.Snapshot().Serialize())
			}

			// Start a new game with Enter
			if win.JustPressed(pixelgl.KeyEnter) {
				config.Game.Seed = 0
				resetBoard()
			}
		}

		annotations.observe()
	}
}

func hoveredCell(board *game.Board, win *pixelgl.Window, boardTop float64) *game.Cell {
	if !win.MouseInsideWindow() {
		return nil
	}
	pos := win.MousePosition()
	if pos.Y >= boardTop {
		return nil
	}
	x := int(pos.X) / cellWidth
	y := board.Height() - 1 - int(pos.Y)/cellWidth
	return board.CellAt(x, y)
}

func drawHeader(win *pixelgl.Window, board *game.Board, scoreText, cellPosText *text.Text, hovered *game.Cell) {
	topLeft := win.Bounds().Vertices()[1]
	topRight := win.Bounds().Max

	scoreText.Clear()
	scoreText.Orig = topLeft.Add(pixel.V(20, -30))
	scoreText.Dot = scoreText.Orig
	scoreText.Color = colornames.Black

	fmt.Fprintf(scoreText, "%03d", board.FlagsLeft())

	switch board.State() {
	case game.Won:
		scoreText.Color = colornames.Green
		fmt.Fprint(scoreText, "   WIN!")
	case game.Lost:
		scoreText.Color = colornames.Red
		fmt.Fprint(scoreText, "   LOSE :(")
	default:
		scoreText.Color = colornames.Dimgray
		fmt.Fprintf(scoreText, "   %3ds   hints: %d", int(board.Duration().Seconds()), board.HintsLeft())
	}
	scoreText.Draw(win, pixel.IM)

	cellPosText.Clear()
	if hovered != nil {
		cellPosText.Orig = topRight.Add(pixel.V(-80, -30))
		cellPosText.Dot = cellPosText.Orig
		cellPosText.Color = colornames.Darkcyan
		fmt.Fprintf(cellPosText, "(%d, %d)", hovered.X(), hovered.Y())
		cellPosText.Draw(win, pixel.IM)
	}
}

var numberColors = map[game.CellState]color.RGBA{
	game.Number1: colornames.Blue,
	game.Number2: colornames.Green,
	game.Number3: colornames.Red,
	game.Number4: colornames.Navy,
	game.Number5: colornames.Maroon,
	game.Number6: colornames.Teal,
	game.Number7: colornames.Black,
	game.Number8: colornames.Gray,
}

// drawBoard renders every cell as a filled rectangle plus a text glyph.
// Boards are small enough that redrawing each frame is cheaper than dirty
// tracking would be worth.
func drawBoard(win *pixelgl.Window, board *game.Board, glyphText *text.Text, boardTop float64) {
	imd := imdraw.New(nil)
	glyphText.Clear()

	for y := 0; y < board.Height(); y++ {
		for x := 0; x < board.Width(); x++ {
			cell := board.CellAt(x, y)
			min := pixel.V(
				float64(x*cellWidth),
				boardTop-float64((y+1)*cellWidth),
			)
			max := min.Add(pixel.V(cellWidth-1, cellWidth-1))
			center := min.Add(pixel.V(cellWidth/2, cellWidth/2))

			background, glyph, glyphColor := cellAppearance(cell.State())

			imd.Color = background
			imd.Push(min, max)
			imd.Rectangle(0)

			if glyph != "" {
				bounds := glyphText.BoundsOf(glyph)
				glyphText.Dot = center.Sub(pixel.V(bounds.W()/2, bounds.H()/2-2))
				glyphText.Color = glyphColor
				glyphText.WriteString(glyph)
			}
		}
	}

	imd.Draw(win)
	glyphText.Draw(win, pixel.IM)
}

func cellAppearance(state game.CellState) (background color.RGBA, glyph string, glyphColor color.RGBA) {
	switch state {
	case game.Unrevealed:
		return colornames.Silver, "", colornames.Black
	case game.Empty:
		return colornames.Whitesmoke, "", colornames.Black
	case game.Flag:
		return colornames.Silver, "F", colornames.Darkred
	case game.FlagWrong:
		return colornames.Silver, "X", colornames.Darkred
	case game.Mine, game.MineUnrevealed:
		return colornames.Whitesmoke, "*", colornames.Black
	case game.MineLosing:
		return colornames.Lightcoral, "*", colornames.Black
	default:
		return colornames.Whitesmoke, fmt.Sprintf("%d", int(state)), numberColors[state]
	}
}
