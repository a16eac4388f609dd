package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/genpass/internal/model"
	"github.com/verte-zerg/genpass/internal/render"
)

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := configPath
	if err := ensureConfigFile(path); err != nil {
		return err
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return errors.New("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return errors.WithHint(errors.Wrap(err, "failed to open editor"), "set $EDITOR to your editor command")
	}
	return nil
}

// ensureConfigFile writes the commented template when no config exists yet.
func ensureConfigFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return errors.Wrap(err, "failed to stat config")
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return errors.Wrap(err, "failed to write config")
		}
	}
	return nil
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# genpass configuration
# Uncomment a value to enable it. CLI flags override config values.

[password]
# preset = "high"            # One of: %s (replaces length and classes)
# length = %d                # Password length
# count = %d                  # Passwords per run
# lowercase = true
# uppercase = true
# digits = true
# symbols = true
# exclude-ambiguous = false  # Drop 0, O, 1, l and I
# exclude-similar = false    # Drop i, l, 1, L, o, 0 and O
# min-per-class = 1          # Characters guaranteed from each class

[passphrase]
# words = %d                  # Words per passphrase
# count = %d                  # Passphrases per run
# separator = %q
# capitalize = true
# numbers = true             # Append a 1-3 digit number
# symbols = false            # Append 1-2 symbols
# wordlist = "de"            # Name under %s or a path
#                            # "en" keeps a-z words, other lists any letters

[history]
# record = false             # Record analysis metadata (never the password)
# window = %d                # Recent-analysis window for history trends
`,
		strings.Join(model.PresetNames(), ", "),
		defaultLength,
		defaultCount,
		defaultWords,
		defaultCount,
		defaultSeparator,
		"$XDG_CONFIG_HOME/genpass/wordlists",
		defaultHistoryWindow,
	)
}

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List complexity presets",
		Args:  cobra.NoArgs,
		RunE:  runPresetsCmd,
	}
}

func runPresetsCmd(cmd *cobra.Command, _ []string) error {
	headers := []string{"Preset", "Length", "Classes", "Min bits", "Description"}
	var rows [][]string
	for _, p := range model.Presets() {
		classes := make([]string, 0, 4)
		for _, c := range p.Config.EnabledClasses() {
			classes = append(classes, string(c))
		}
		rows = append(rows, []string{
			p.Name,
			fmt.Sprintf("%d", p.Config.Length),
			strings.Join(classes, ","),
			fmt.Sprintf("%.0f", p.MinEntropy),
			p.Description,
		})
	}
	for _, line := range render.Table(headers, rows, map[int]bool{1: true, 3: true}) {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
			return errors.Wrap(err, "failed to write output")
		}
	}
	return nil
}
