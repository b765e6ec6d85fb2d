package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-asteroids/internal/audio"
	"github.com/vovakirdan/tui-asteroids/internal/controls"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
	"github.com/vovakirdan/tui-asteroids/internal/highscore"
	"github.com/vovakirdan/tui-asteroids/internal/platform/tui"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagSound      bool
	flagVolume     float64
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play asteroids",
	Long: `Start a session on the title screen.

Default controls (change them with O on the title screen or 'asteroids keys'):
  A / D      - Rotate left / right
  W          - Thrust
  Space      - Fire
  S          - Hyperspace
  P          - Pause
  Esc        - Leave the game
  Ctrl+C     - Quit

Variants:
  asteroids          - Frame-rate independent timing
  asteroids_classic  - Per-frame rates applied literally, no difficulty ramp

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  asteroids play
  asteroids play asteroids_classic
  asteroids play --difficulty hard --sound
  asteroids play --config ./my-asteroids.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects through the default audio device")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0.6, "Sound volume from 0 to 1")
}

func runPlay(cmd *cobra.Command, args []string) {
	variant := variantArg(args)

	if !registry.Exists(variant) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", variant)
		fmt.Fprintln(os.Stderr, "Run 'asteroids list' to see available variants.")
		os.Exit(1)
	}

	dir, err := dataDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger, closeLog := openLogger(dir)
	defer closeLog()

	asteroids.SetConfigPath(flagConfig)
	asteroids.SetDifficultyPreset(flagDifficulty)

	runtime := core.DefaultConfig()
	runtime.TickRate = flagFPS
	runtime.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		runtime.ScreenW = w
		runtime.ScreenH = h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open history database: %v\n", err)
		// Continue without history - game still works
		store = nil
	}

	player := audio.New(flagSound, flagVolume, logger)

	runErr := tui.Run(tui.SessionConfig{
		Variant:      variant,
		Runtime:      runtime,
		Player:       os.Getenv("USER"),
		Highscores:   highscore.Open(filepath.Join(dir, highscore.DefaultFile), logger),
		History:      store,
		Bindings:     controls.Load(filepath.Join(dir, controls.DefaultFile), logger),
		ControlsPath: filepath.Join(dir, controls.DefaultFile),
		Audio:        player,
		Logger:       logger,
	})

	player.Close()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		closeLog()
		os.Exit(1)
	}
}
