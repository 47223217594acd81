package game

// Config describes a board to be created. The zero Seed selects a
// time-derived seed; any other value makes mine placement reproducible.
type Config struct {
	Width, Height int
	NumMines      int

	FirstClick FirstClickPolicy

	Seed int64
}

// NewConfig returns the default configuration: an expert-sized board with
// classic single-cell first-click safety.
func NewConfig() Config {
	return Config{
		Width:      30,
		Height:     16,
		NumMines:   99,
		FirstClick: SafeCell,
	}
}

// Validate reports whether the configuration can produce a playable board.
func (config Config) Validate() error {
	if config.Width < 1 || config.Height < 1 {
		return InvalidConfigError{Reason: "board dimensions must be positive"}
	}
	if config.NumMines < 1 {
		return InvalidConfigError{Reason: "board must contain at least one mine"}
	}
	if config.NumMines >= config.Width*config.Height {
		return InvalidConfigError{Reason: "mines must not fill the entire board"}
	}
	return nil
}
