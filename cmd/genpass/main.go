// Package main provides the CLI entrypoint for genpass.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/verte-zerg/genpass/internal/config"
	"github.com/verte-zerg/genpass/internal/generator"
	"github.com/verte-zerg/genpass/internal/logging"
	"github.com/verte-zerg/genpass/internal/render"
	"github.com/verte-zerg/genpass/internal/tui"
)

var (
	verbose    bool
	forceColor bool
	configPath string
	dbPath     string

	log = zap.NewNop()
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	rootCmd := newRootCmd()
	err := rootCmd.ExecuteContext(ctx)
	stop()
	_ = log.Sync()
	if err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "genpass",
		Short:         "Generate passwords and passphrases and measure their strength",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			log = logging.New(verbose)
			if forceColor {
				render.ForceColor()
			}
			return nil
		},
		RunE: runMeterCmd,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&forceColor, "color", false, "colour output even when it is not a terminal (NO_COLOR still wins)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultConfigPath(), "config file path")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", config.DefaultDBPath(), "history database path")

	rootCmd.AddCommand(newPasswordCmd())
	rootCmd.AddCommand(newPassphraseCmd())
	rootCmd.AddCommand(newAnalyzeCmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newPresetsCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newWordListsCmd())

	return rootCmd
}

func runMeterCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := loadFileConfig()
	if err != nil {
		return err
	}
	pwCfg, err := resolvePasswordConfig(cmd, fileCfg.Password)
	if err != nil {
		return err
	}
	ppCfg := resolvePassphraseConfig(cmd, fileCfg.Passphrase)
	wordList := ""
	setFromConfig(&wordList, fileCfg.Passphrase.WordList)
	gen, err := newGenerator(wordList)
	if err != nil {
		return err
	}

	opts := tui.Options{Password: pwCfg, Passphrase: ppCfg, Logger: log}
	if historyEnabled(cmd, fileCfg) {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer closeStore(st)
		opts.Recorder = st
	}

	program := tea.NewProgram(tui.NewModel(gen, opts), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return errors.Wrap(err, "failed to run strength meter")
	}
	return nil
}

func loadFileConfig() (config.FileConfig, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return config.FileConfig{}, errors.Wrap(err, "failed to load config")
	}
	log.Debug("loaded config", zap.String("path", configPath))
	return cfg, nil
}

// newGenerator uses the built-in English list unless another list is named.
func newGenerator(wordList string) (*generator.Generator, error) {
	if wordList == "" || wordList == "en" {
		return generator.New(), nil
	}
	words, err := loadWordList(wordList)
	if err != nil {
		return nil, err
	}
	return generator.New(generator.WithWords(words)), nil
}

func printError(w io.Writer, err error) {
	if _, werr := fmt.Fprintf(w, "Error: %v\n", err); werr != nil {
		// Best-effort error output.
		_ = werr
	}
	for _, hint := range errors.GetAllHints(err) {
		if _, werr := fmt.Fprintf(w, "hint: %s\n", hint); werr != nil {
			_ = werr
		}
	}
}
