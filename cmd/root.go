package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile     string
	verbose     bool
	variantFlag string
)

var rootCmd = &cobra.Command{
	Use:   "vrforce",
	Short: "vrforce builds helper executables that force a game into VR mode",
	Long: `vrforce generates, compiles and installs tiny helper programs that start a
game with forced VR arguments, overriding the launch options a game platform
would otherwise pass.

Two variants are available:
  launcher  a separate <Game>Launcher.exe next to the untouched game exe
  wrapper   the game exe is renamed to <Game>Real.exe and replaced by a wrapper`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		setupLogging()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var rep *reportedError
		if !errors.As(err, &rep) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "settings file (default is <data dir>/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&variantFlag, "variant", "launcher", "helper variant: launcher or wrapper")
}

func setupLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	// Using TextHandler for CLI friendliness
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}

// reportedError marks an error that was already shown in the log panel.
type reportedError struct{ err error }

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

func reported(err error) error {
	if err == nil {
		return nil
	}
	return &reportedError{err: err}
}
