// Package main provides the pagekit command: HTML-aware truncation and
// page summaries from the command line.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/pagekit/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// app holds the global flags and the configuration resolved from them.
type app struct {
	configPath string
	envFile    string
	verbose    bool

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "pagekit",
		Short: "Truncate HTML and summarize content pages",
		Long: `pagekit shortens HTML to a visible-character budget without breaking
markup, and builds page summaries and descriptions.

Settings come from an optional YAML or TOML file (--config), overridden by
PAGEKIT_* environment variables, which may be loaded from a .env file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Config file (.yaml, .yml or .toml)")
	root.PersistentFlags().StringVar(&a.envFile, "env-file", "", "Load environment variables from this file (default .env if present)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(
		a.truncateCmd(),
		a.summaryCmd(),
		a.describeCmd(),
		a.listCmd(),
		a.renderCmd(),
		a.schemaCmd(),
		a.watchCmd(),
	)

	return root
}

// init installs the logger and resolves the configuration.
func (a *app) init(cmd *cobra.Command) error {
	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

	var envFiles []string
	if a.envFile != "" {
		envFiles = append(envFiles, a.envFile)
	}
	if err := config.LoadDotEnv(envFiles...); err != nil {
		return err
	}

	cfg, err := config.Resolve(a.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	a.cfg = cfg

	slog.Debug("config resolved",
		slog.String("path", a.configPath),
		slog.Int("truncate_length", cfg.Truncate.MaxLength),
		slog.String("summary_format", cfg.Summary.Format))
	return nil
}

// readInput reads the named file, or stdin when no file or "-" is given.
// A single trailing newline is dropped.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	var data []byte
	var err error
	if len(args) == 0 || args[0] == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSuffix(string(data), "\n"), nil
}
