package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/genpass/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "nested", "genpass.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

func TestInsertAndListAnalyses(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	base := time.Unix(1_700_000_000, 0).UTC()
	recs := []model.AnalysisRecord{
		{
			CreatedAt:   base,
			Source:      model.SourceEntered,
			Length:      8,
			Classes:     []model.CharClass{model.ClassLowercase},
			EntropyBits: 37.6,
			Score:       0,
			Tier:        model.TierVeryWeak,
			Weaknesses:  []model.WeaknessCode{model.WeaknessFewClasses, model.WeaknessCommon, model.WeaknessSingleKind},
		},
		{
			CreatedAt:   base.Add(time.Hour),
			Source:      model.SourceGenerated,
			Length:      16,
			Classes:     model.AllClasses,
			EntropyBits: 103.3,
			Score:       94,
			Tier:        model.TierVeryStrong,
		},
	}
	for _, rec := range recs {
		_, err := st.InsertAnalysis(ctx, rec)
		require.NoError(t, err)
	}

	got, err := st.ListAnalyses(ctx, model.HistoryConfig{})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, model.SourceEntered, got[0].Source)
	assert.True(t, got[0].CreatedAt.Equal(base))
	assert.Equal(t, recs[0].Weaknesses, got[0].Weaknesses)
	assert.Equal(t, model.AllClasses, got[1].Classes)
	assert.Empty(t, got[1].Weaknesses)
	assert.InDelta(t, 103.3, got[1].EntropyBits, 1e-9)

	since := base.Add(30 * time.Minute)
	got, err = st.ListAnalyses(ctx, model.HistoryConfig{Since: &since})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 94, got[0].Score)
}

func TestCountWeaknesses(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	var ids []int64
	for i, codes := range [][]model.WeaknessCode{
		{model.WeaknessShort, model.WeaknessRepeated},
		{model.WeaknessShort},
		{model.WeaknessSequential},
	} {
		id, err := st.InsertAnalysis(ctx, model.AnalysisRecord{
			CreatedAt:  time.Unix(int64(i), 0),
			Source:     model.SourceEntered,
			Tier:       model.TierWeak,
			Weaknesses: codes,
		})
		require.NoError(t, err)
		ids = append(ids, id)
	}

	counts, err := st.CountWeaknesses(ctx, ids)
	require.NoError(t, err)
	require.Len(t, counts, 3)
	assert.Equal(t, model.WeaknessCount{Code: model.WeaknessShort, Count: 2}, counts[0])

	counts, err = st.CountWeaknesses(ctx, ids[2:])
	require.NoError(t, err)
	assert.Equal(t, []model.WeaknessCount{{Code: model.WeaknessSequential, Count: 1}}, counts)

	counts, err = st.CountWeaknesses(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, counts)
}

func TestListAnalysesLast(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	base := time.Unix(1_700_000_000, 0).UTC()
	recs := make([]model.AnalysisRecord, 5)
	for i := range recs {
		recs[i] = model.AnalysisRecord{
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
			Source:    model.SourceGenerated,
			Score:     i,
			Tier:      model.TierVeryWeak,
		}
	}
	_, err := st.InsertAnalyses(ctx, recs)
	require.NoError(t, err)

	got, err := st.ListAnalyses(ctx, model.HistoryConfig{Last: 2})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 3, got[0].Score)
	assert.Equal(t, 4, got[1].Score)
}

func TestLargeHistory(t *testing.T) {
	if testing.Short() {
		t.Skip("large history insert")
	}
	st := openTestStore(t)
	ctx := context.Background()

	const n = 40000
	base := time.Unix(1_700_000_000, 0).UTC()
	recs := make([]model.AnalysisRecord, n)
	for i := range recs {
		recs[i] = model.AnalysisRecord{
			CreatedAt:  base.Add(time.Duration(i) * time.Millisecond),
			Source:     model.SourceGenerated,
			Length:     16,
			Classes:    model.AllClasses,
			Score:      90,
			Tier:       model.TierVeryStrong,
			Weaknesses: []model.WeaknessCode{model.WeaknessRepeated},
		}
	}
	recs[n-1].Weaknesses = append(recs[n-1].Weaknesses, model.WeaknessKeyboard)
	ids, err := st.InsertAnalyses(ctx, recs)
	require.NoError(t, err)
	require.Len(t, ids, n)

	got, err := st.ListAnalyses(ctx, model.HistoryConfig{})
	require.NoError(t, err)
	require.Len(t, got, n)
	assert.Equal(t, []model.WeaknessCode{model.WeaknessRepeated}, got[0].Weaknesses)
	assert.Equal(t, []model.WeaknessCode{model.WeaknessRepeated, model.WeaknessKeyboard}, got[n-1].Weaknesses)

	counts, err := st.CountWeaknesses(ctx, ids)
	require.NoError(t, err)
	assert.Equal(t, []model.WeaknessCount{
		{Code: model.WeaknessRepeated, Count: n},
		{Code: model.WeaknessKeyboard, Count: 1},
	}, counts)
}
