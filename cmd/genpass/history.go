package main

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/verte-zerg/genpass/internal/config"
	"github.com/verte-zerg/genpass/internal/model"
	"github.com/verte-zerg/genpass/internal/render"
	"github.com/verte-zerg/genpass/internal/stats"
	"github.com/verte-zerg/genpass/internal/store"
)

const defaultHistoryWindow = 20

var (
	historySince  string
	historyLast   int
	historyWindow int
)

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Summarize recorded analyses",
		Args:  cobra.NoArgs,
		RunE:  runHistoryCmd,
	}
	cmd.Flags().StringVar(&historySince, "since", "", "start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&historyLast, "last", 0, "limit to last N analyses")
	cmd.Flags().IntVar(&historyWindow, "window", defaultHistoryWindow, "moving average and recent-weakness window")
	return cmd
}

func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := loadFileConfig()
	if err != nil {
		return err
	}
	applyIntConfig(cmd, "window", &historyWindow, fileCfg.History.Window)

	var sinceTime *time.Time
	if historySince != "" {
		parsed, err := time.ParseInLocation("2006-01-02", historySince, time.Local)
		if err != nil {
			return errors.WithHint(model.InvalidConfigf("invalid --since value %q", historySince), "use the YYYY-MM-DD format")
		}
		sinceTime = &parsed
	}
	if historyLast < 0 {
		return model.InvalidConfigf("--last must be >= 0")
	}
	if historyWindow < 1 {
		return model.InvalidConfigf("--window must be >= 1")
	}

	cfg := model.HistoryConfig{
		Since:  sinceTime,
		Last:   historyLast,
		Window: historyWindow,
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)

	rep, err := stats.BuildReport(cmd.Context(), st, cfg)
	if err != nil {
		return errors.Wrap(err, "failed to load history")
	}
	out := cmd.OutOrStdout()
	return stats.RenderAll(out, rep, cfg.Window, render.TerminalWidth(out), render.ShouldUseColor(out, forceColor), time.Now())
}

// historyEnabled reports whether analyses should be recorded for this run.
func historyEnabled(cmd *cobra.Command, fileCfg config.FileConfig) bool {
	record := outRecord
	applyBoolConfig(cmd, "record", &record, fileCfg.History.Record)
	return record
}

func openStore() (*store.Store, error) {
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open db")
	}
	return st, nil
}

func closeStore(st *store.Store) {
	if err := st.Close(); err != nil {
		log.Warn("failed to close db", zap.Error(err))
	}
}
