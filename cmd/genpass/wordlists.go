package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/genpass/internal/config"
)

func newWordListsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "wordlists",
		Short: "List named word lists usable with --wordlist",
		Args:  cobra.NoArgs,
		RunE:  runWordListsCmd,
	}
}

func runWordListsCmd(cmd *cobra.Command, _ []string) error {
	dir := config.DefaultWordListDir()
	entries, err := os.ReadDir(dir)
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "failed to read wordlist directory")
	}
	names := []string{"en (built-in)"}
	custom := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".txt") {
			continue
		}
		custom = append(custom, strings.TrimSuffix(name, ".txt"))
	}
	sort.Strings(custom)
	names = append(names, custom...)
	for _, name := range names {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
			return errors.Wrap(err, "failed to write output")
		}
	}
	if len(custom) == 0 {
		log.Info("add word lists as one-word-per-line .txt files in " + dir)
	}
	return nil
}
