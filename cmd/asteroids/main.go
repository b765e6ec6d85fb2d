// asteroids is a vector-style asteroid shooter for the terminal.
//
// Usage:
//
//	asteroids list              - List available variants
//	asteroids play [variant]    - Play (default: asteroids)
//	asteroids scores [variant]  - Show the highscore ladder and game history
//	asteroids keys              - Show or change the control keys
//	asteroids serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--db <path>        - Set history database path (default: ~/.asteroids/history.db)
//	--data-dir <path>  - Directory for highscores, controls and logs (default: ~/.asteroids)
//	--debug            - Write a debug log to <data-dir>/asteroids.log
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
	"github.com/vovakirdan/tui-asteroids/internal/platform/tui"
)

// logFile is the debug log name inside the data directory.
const logFile = "asteroids.log"

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagDataDir string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "asteroids",
	Short: "Asteroids - vector arcade shooter in your terminal",
	Long: `Asteroids is a terminal rendition of the vector arcade classic: pilot a
ship through a wrap-around field of splitting rocks while saucers hunt you.

Available commands:
  list     - Show the playable variants
  play     - Play a variant
  scores   - View the highscore ladder and game history
  keys     - Show or change the control keys
  serve    - Start SSH server for remote play

Examples:
  asteroids play
  asteroids play asteroids_classic
  asteroids keys set fire j
  asteroids serve --ssh :2222
  asteroids scores`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.asteroids/history.db", "Path to game history database")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "~/.asteroids", "Directory for highscores, controls and logs")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Write a debug log to <data-dir>/"+logFile)

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(serveCmd)
}

// dataDir returns the expanded data directory.
func dataDir() (string, error) {
	return tui.ExpandHome(flagDataDir)
}

// openLogger returns the debug file logger when --debug is set, otherwise a
// logger that discards everything. The terminal belongs to the game, so
// nothing is logged to stdout or stderr while playing.
func openLogger(dir string) (*log.Logger, func()) {
	if !flagDebug {
		return log.New(io.Discard), func() {}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: cannot create %s: %v\n", dir, err)
		return log.New(io.Discard), func() {}
	}
	path := filepath.Join(dir, logFile)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: cannot open log %s: %v\n", path, err)
		return log.New(io.Discard), func() {}
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "asteroids",
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }
}

// variantArg returns the variant named in args, or the default.
func variantArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return asteroids.GameID
}
