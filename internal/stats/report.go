package stats

import (
	"context"

	"github.com/verte-zerg/genpass/internal/model"
)

// HistorySource is the subset of the store used for reports.
type HistorySource interface {
	ListAnalyses(ctx context.Context, cfg model.HistoryConfig) ([]model.AnalysisRecord, error)
	CountWeaknesses(ctx context.Context, ids []int64) ([]model.WeaknessCount, error)
}

// Report contains precomputed data for history rendering.
type Report struct {
	Records          []model.AnalysisRecord
	WindowIDs        []int64
	WeaknessesAll    []model.WeaknessCount
	WeaknessesWindow []model.WeaknessCount
}

// BuildReport loads and prepares data for history rendering.
func BuildReport(ctx context.Context, src HistorySource, cfg model.HistoryConfig) (Report, error) {
	records, err := src.ListAnalyses(ctx, cfg)
	if err != nil {
		return Report{}, err
	}
	if cfg.Last > 0 && len(records) > cfg.Last {
		records = records[len(records)-cfg.Last:]
	}

	allIDs := recordIDs(records)
	windowIDs := lastRecordIDs(records, cfg.Window)
	weakAll, err := src.CountWeaknesses(ctx, allIDs)
	if err != nil {
		return Report{}, err
	}
	weakWindow, err := src.CountWeaknesses(ctx, windowIDs)
	if err != nil {
		return Report{}, err
	}

	return Report{
		Records:          records,
		WindowIDs:        windowIDs,
		WeaknessesAll:    weakAll,
		WeaknessesWindow: weakWindow,
	}, nil
}

func recordIDs(records []model.AnalysisRecord) []int64 {
	ids := make([]int64, len(records))
	for i, r := range records {
		ids[i] = r.ID
	}
	return ids
}

func lastRecordIDs(records []model.AnalysisRecord, window int) []int64 {
	if window <= 0 || len(records) <= window {
		return recordIDs(records)
	}
	return recordIDs(records[len(records)-window:])
}
