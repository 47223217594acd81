package game

// Director plays the game in place of a human. Implementations act through
// the same Board operations the presentation layer uses; they never touch
// hidden mine information.
type Director interface {
	// Init binds the director to a fresh board.
	Init(*Board)

	// Act performs a single turn-ending move.
	Act()

	// End releases any resources once the game is over.
	End()
}
