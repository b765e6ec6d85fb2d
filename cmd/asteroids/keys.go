package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asteroids/internal/controls"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Show or change the control keys",
	Long: `Show the control keys stored in <data-dir>/controls.bin, or change them.

Keys are letters, digits, punctuation, space, or the arrows (left, right,
up, down). Every control needs a different key.

Examples:
  asteroids keys
  asteroids keys set thrust up
  asteroids keys set fire space
  asteroids keys reset`,
	Args: cobra.NoArgs,
	Run:  runKeysShow,
}

var keysSetCmd = &cobra.Command{
	Use:   "set <control> <key>",
	Short: "Bind a key to a control",
	Args:  cobra.ExactArgs(2),
	RunE:  runKeysSet,
}

var keysResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the default keys",
	Args:  cobra.NoArgs,
	RunE:  runKeysReset,
}

func init() {
	keysCmd.AddCommand(keysSetCmd)
	keysCmd.AddCommand(keysResetCmd)
}

func controlsPath() (string, error) {
	dir, err := dataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, controls.DefaultFile), nil
}

func printBindings(b controls.Bindings) {
	for c := controls.Control(0); c < controls.ControlCount; c++ {
		fmt.Printf("  %-10s  %s\n", c, controls.KeyName(b[c]))
	}
}

func runKeysShow(cmd *cobra.Command, args []string) {
	path, err := controlsPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	printBindings(controls.Load(path, nil))
}

func runKeysSet(cmd *cobra.Command, args []string) error {
	path, err := controlsPath()
	if err != nil {
		return err
	}
	c, err := controls.ParseControl(args[0])
	if err != nil {
		return err
	}
	k, err := controls.ParseKey(args[1])
	if err != nil {
		return err
	}

	b := controls.Load(path, nil)
	if err := b.Set(c, k); err != nil {
		return err
	}
	if err := b.Validate(); err != nil {
		return err
	}
	if err := controls.Save(path, b); err != nil {
		return err
	}
	printBindings(b)
	return nil
}

func runKeysReset(cmd *cobra.Command, args []string) error {
	path, err := controlsPath()
	if err != nil {
		return err
	}
	b := controls.Defaults()
	if err := controls.Save(path, b); err != nil {
		return err
	}
	printBindings(b)
	return nil
}
