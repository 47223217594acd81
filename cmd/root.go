package cmd

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/faiface/pixel/pixelgl"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/sweeplab/minesweep/director/random"
	"github.com/sweeplab/minesweep/director/rules"
	"github.com/sweeplab/minesweep/game"
	"github.com/sweeplab/minesweep/ui"
)

var (
	uiConfig = ui.NewConfig()

	difficulty  = directorNone
	presetName  string
	presetsFile string
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "minesweep",
	Short: "Play manual or computer-driven Minesweeper",
	Long: `minesweep is a Minesweeper game which supports human- or
computer-driven playing.

Run with no arguments to play manually
	minesweep

Use the director flag to make the computer play for you
	minesweep --director hard
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		setupLogging()

		if presetName != "" {
			if err := applyPreset(cmd, presetName); err != nil {
				return err
			}
		}

		if err := uiConfig.Game.Validate(); err != nil {
			return err
		}

		uiConfig.Director = difficulty.director()

		pixelgl.Run(func() {
			ui.Run(uiConfig)
		})
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func setupLogging() {
	logLevel := logrus.InfoLevel
	if verbose {
		logLevel = logrus.DebugLevel
	}
	logrus.SetLevel(logLevel)
	logrus.SetFormatter(&logrus.TextFormatter{ForceColors: true})
}

// preset is a named board size from the built-in table or a presets file.
type preset struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Mines  int `yaml:"mines"`
}

var builtinPresets = map[string]preset{
	"beginner":     {Width: 9, Height: 9, Mines: 10},
	"intermediate": {Width: 16, Height: 16, Mines: 40},
	"expert":       {Width: 30, Height: 16, Mines: 99},
}

// applyPreset fills width/height/mines from the named preset. Explicitly
// set flags still win over the preset's values.
func applyPreset(cmd *cobra.Command, name string) error {
	presets := builtinPresets

	if presetsFile != "" {
		raw, err := ioutil.ReadFile(presetsFile)
		if err != nil {
			return err
		}

		filePresets := make(map[string]preset)
		if err := yaml.Unmarshal(raw, filePresets); err != nil {
			return err
		}

		presets = make(map[string]preset, len(builtinPresets)+len(filePresets))
		for name, p := range builtinPresets {
			presets[name] = p
		}
		for name, p := range filePresets {
			presets[name] = p
		}
	}

	p, ok := presets[name]
	if !ok {
		return fmt.Errorf("unknown preset %q", name)
	}

	if !cmd.Flags().Changed("width") {
		uiConfig.Game.Width = p.Width
	}
	if !cmd.Flags().Changed("height") {
		uiConfig.Game.Height = p.Height
	}
	if !cmd.Flags().Changed("mines") {
		uiConfig.Game.NumMines = p.Mines
	}
	return nil
}

type directorValue int

const (
	directorNone directorValue = iota
	directorEasy
	directorNormal
	directorHard
)

var directorNames = map[string]directorValue{
	"none":   directorNone,
	"easy":   directorEasy,
	"normal": directorNormal,
	"hard":   directorHard,
}

func (val *directorValue) String() string {
	for name, value := range directorNames {
		if value == *val {
			return name
		}
	}
	return fmt.Sprint(int(*val))
}

func (val *directorValue) Set(value string) error {
	if parsed, isValid := directorNames[value]; isValid {
		*val = parsed
		return nil
	}
	return fmt.Errorf("invalid director difficulty (none, easy, normal, hard)")
}

func (val *directorValue) Type() string {
	return "difficulty"
}

func (val directorValue) director() game.Director {
	switch val {
	case directorEasy:
		return &random.Director{}
	case directorNormal:
		return &rules.Director{}
	case directorHard:
		return &rules.Director{Patterns: true}
	default:
		return nil
	}
}

type firstClickValue game.FirstClickPolicy

var firstClickNames = map[string]game.FirstClickPolicy{
	"classic": game.SafeCell,
	"area":    game.SafeArea,
}

func newFirstClickValue(val game.FirstClickPolicy, p *game.FirstClickPolicy) *firstClickValue {
	*p = val
	return (*firstClickValue)(p)
}

func (val *firstClickValue) String() string {
	for name, policy := range firstClickNames {
		if policy == game.FirstClickPolicy(*val) {
			return name
		}
	}
	return fmt.Sprint(int(*val))
}

func (val *firstClickValue) Set(value string) error {
	if policy, isValid := firstClickNames[value]; isValid {
		*val = firstClickValue(policy)
		return nil
	}
	return fmt.Errorf("invalid first-click policy (classic, area)")
}

func (val *firstClickValue) Type() string {
	return "game.FirstClickPolicy"
}

func init() {
	// Define our root --help without a shorthand, as we'll use -h for --height
	// Ref: https://github.com/spf13/cobra/issues/291
	rootCmd.Flags().Bool("help", false, "Help for this command")

	rootCmd.Flags().IntVarP(&uiConfig.Game.Width, "width", "w", uiConfig.Game.Width, "Width of game board, in cells")
	rootCmd.Flags().IntVarP(&uiConfig.Game.Height, "height", "h", uiConfig.Game.Height, "Height of game board, in cells")
	rootCmd.Flags().IntVarP(&uiConfig.Game.NumMines, "mines", "m", uiConfig.Game.NumMines, "Number of mines to place in the game board")
	rootCmd.Flags().Int64Var(&uiConfig.Game.Seed, "seed", 0, "Mine placement seed (0 picks one from the clock)")
	rootCmd.Flags().Var(newFirstClickValue(game.SafeCell, &uiConfig.Game.FirstClick), "first-click", `First-click safety policy.
classic: only the first-clicked cell is guaranteed mine-free
area: all cells surrounding the first click are cleared of mines`)
	rootCmd.Flags().VarP(&difficulty, "director", "d", "Make the computer play (none, easy, normal, hard)")
	rootCmd.Flags().DurationVar(&uiConfig.StepInterval, "interval", uiConfig.StepInterval, "Time between director moves")
	rootCmd.Flags().StringVarP(&presetName, "preset", "p", "", "Board preset (beginner, intermediate, expert, or one from --presets-file)")
	rootCmd.Flags().StringVar(&presetsFile, "presets-file", "", "YAML file of additional board presets")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}
