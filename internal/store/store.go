// Package store handles SQLite persistence of analysis history.
//
// Only metadata is written: the analysed string itself never reaches disk.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/verte-zerg/genpass/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for analysis history.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, errors.Wrapf(err, "create history dir %s", dir)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrapf(err, "open history %s", path)
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, errors.Wrap(err, "migrate history")
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS analyses (
			id INTEGER PRIMARY KEY,
			created_at TEXT NOT NULL,
			source TEXT NOT NULL,
			length INTEGER NOT NULL,
			classes TEXT NOT NULL,
			entropy_bits REAL NOT NULL,
			score INTEGER NOT NULL,
			tier TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS analysis_weaknesses (
			analysis_id INTEGER NOT NULL,
			code TEXT NOT NULL,
			PRIMARY KEY (analysis_id, code)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_analyses_created_at ON analyses(created_at);`,
		`CREATE INDEX IF NOT EXISTS idx_analysis_weaknesses_code ON analysis_weaknesses(code);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertAnalysis stores one analysis record and its weakness codes.
func (s *Store) InsertAnalysis(ctx context.Context, rec model.AnalysisRecord) (int64, error) {
	ids, err := s.InsertAnalyses(ctx, []model.AnalysisRecord{rec})
	if err != nil {
		return 0, err
	}
	return ids[0], nil
}

// InsertAnalyses stores records and their weakness codes in one transaction.
func (s *Store) InsertAnalyses(ctx context.Context, recs []model.AnalysisRecord) (ids []int64, err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	analysisStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO analyses (created_at, source, length, classes, entropy_bits, score, tier)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return nil, err
	}
	defer closeStmt(analysisStmt)
	weaknessStmt, err := tx.PrepareContext(ctx,
		`INSERT OR IGNORE INTO analysis_weaknesses (analysis_id, code) VALUES (?, ?)`)
	if err != nil {
		return nil, err
	}
	defer closeStmt(weaknessStmt)

	ids = make([]int64, 0, len(recs))
	for _, rec := range recs {
		res, err := analysisStmt.ExecContext(ctx,
			rec.CreatedAt.UTC().Format(time.RFC3339Nano),
			string(rec.Source),
			rec.Length,
			joinClasses(rec.Classes),
			rec.EntropyBits,
			rec.Score,
			string(rec.Tier),
		)
		if err != nil {
			return nil, errors.Wrap(err, "insert analysis")
		}
		id, err := res.LastInsertId()
		if err != nil {
			return nil, err
		}
		for _, code := range rec.Weaknesses {
			if _, err := weaknessStmt.ExecContext(ctx, id, string(code)); err != nil {
				return nil, errors.Wrapf(err, "insert weakness %s", code)
			}
		}
		ids = append(ids, id)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return ids, nil
}

func closeStmt(stmt *sql.Stmt) {
	if cerr := stmt.Close(); cerr != nil {
		// Best-effort statement close.
		_ = cerr
	}
}

// ListAnalyses returns records filtered by cfg.Since and limited to the newest
// cfg.Last, oldest first, with weaknesses attached.
func (s *Store) ListAnalyses(ctx context.Context, cfg model.HistoryConfig) ([]model.AnalysisRecord, error) {
	clauses := []string{"1=1"}
	args := []any{}
	if cfg.Since != nil {
		clauses = append(clauses, "created_at >= ?")
		args = append(args, cfg.Since.UTC().Format(time.RFC3339Nano))
	}
	limit := ""
	if cfg.Last > 0 {
		limit = "LIMIT ?"
		args = append(args, cfg.Last)
	}
	query := fmt.Sprintf(`SELECT * FROM (
			SELECT id, created_at, source, length, classes, entropy_bits, score, tier
			FROM analyses
			WHERE %s
			ORDER BY created_at DESC, id DESC
			%s
		)
		ORDER BY created_at ASC, id ASC`, strings.Join(clauses, " AND "), limit)
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "list analyses")
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var records []model.AnalysisRecord
	for rows.Next() {
		var rec model.AnalysisRecord
		var createdAt, source, classes, tier string
		if err := rows.Scan(&rec.ID, &createdAt, &source, &rec.Length, &classes, &rec.EntropyBits, &rec.Score, &tier); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, errors.Wrapf(err, "parse created_at of analysis %d", rec.ID)
		}
		rec.CreatedAt = parsed
		rec.Source = model.Source(source)
		rec.Classes = splitClasses(classes)
		rec.Tier = model.Tier(tier)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	codes, err := s.listWeaknessCodes(ctx, analysisIDs(records))
	if err != nil {
		return nil, err
	}
	for i := range records {
		records[i].Weaknesses = codes[records[i].ID]
	}
	return records, nil
}

// CountWeaknesses counts weakness codes across the given analyses, most frequent first.
func (s *Store) CountWeaknesses(ctx context.Context, ids []int64) ([]model.WeaknessCount, error) {
	counts := map[model.WeaknessCode]int{}
	err := forEachChunk(ids, func(chunk []int64) error {
		placeholders, args := inClause(chunk)
		query := fmt.Sprintf(`SELECT code, COUNT(*)
			FROM analysis_weaknesses
			WHERE analysis_id IN (%s)
			GROUP BY code`, placeholders)
		return s.scanRows(ctx, query, args, func(rows *sql.Rows) error {
			var code string
			var n int
			if err := rows.Scan(&code, &n); err != nil {
				return err
			}
			counts[model.WeaknessCode(code)] += n
			return nil
		})
	})
	if err != nil {
		return nil, errors.Wrap(err, "count weaknesses")
	}
	if len(counts) == 0 {
		return nil, nil
	}

	result := make([]model.WeaknessCount, 0, len(counts))
	for code, n := range counts {
		result = append(result, model.WeaknessCount{Code: code, Count: n})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Code < result[j].Code
	})
	return result, nil
}

func (s *Store) listWeaknessCodes(ctx context.Context, ids []int64) (map[int64][]model.WeaknessCode, error) {
	result := map[int64][]model.WeaknessCode{}
	err := forEachChunk(ids, func(chunk []int64) error {
		placeholders, args := inClause(chunk)
		query := fmt.Sprintf(`SELECT analysis_id, code
			FROM analysis_weaknesses
			WHERE analysis_id IN (%s)
			ORDER BY rowid ASC`, placeholders)
		return s.scanRows(ctx, query, args, func(rows *sql.Rows) error {
			var id int64
			var code string
			if err := rows.Scan(&id, &code); err != nil {
				return err
			}
			result[id] = append(result[id], model.WeaknessCode(code))
			return nil
		})
	})
	if err != nil {
		return nil, errors.Wrap(err, "list weaknesses")
	}
	return result, nil
}

func (s *Store) scanRows(ctx context.Context, query string, args []any, scan func(*sql.Rows) error) error {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()
	for rows.Next() {
		if err := scan(rows); err != nil {
			return err
		}
	}
	return rows.Err()
}

// maxIDsPerQuery keeps IN lists well below SQLite's bound-variable limit.
const maxIDsPerQuery = 500

func forEachChunk(ids []int64, fn func([]int64) error) error {
	for start := 0; start < len(ids); start += maxIDsPerQuery {
		end := min(start+maxIDsPerQuery, len(ids))
		if err := fn(ids[start:end]); err != nil {
			return err
		}
	}
	return nil
}

func inClause(ids []int64) (string, []any) {
	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		placeholders[i] = "?"
		args[i] = id
	}
	return strings.Join(placeholders, ","), args
}

func analysisIDs(records []model.AnalysisRecord) []int64 {
	ids := make([]int64, len(records))
	for i, r := range records {
		ids[i] = r.ID
	}
	return ids
}

func joinClasses(classes []model.CharClass) string {
	parts := make([]string, len(classes))
	for i, c := range classes {
		parts[i] = string(c)
	}
	return strings.Join(parts, ",")
}

func splitClasses(raw string) []model.CharClass {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]model.CharClass, len(parts))
	for i, p := range parts {
		out[i] = model.CharClass(p)
	}
	return out
}
