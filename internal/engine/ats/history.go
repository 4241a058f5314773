package ats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Package-level singleton, set from main.go. Nil means history is disabled
// and score_ats simply skips persistence.
var historyDB *HistoryDB

// SetHistory sets the package-level history DB instance.
func SetHistory(db *HistoryDB) { historyDB = db }

// GetHistory returns the package-level history DB instance (may be nil).
func GetHistory() *HistoryDB { return historyDB }

// HistoryDB stores past ATS reports in PostgreSQL.
type HistoryDB struct {
	pool *pgxpool.Pool
}

// StoredReport is a single history entry.
type StoredReport struct {
	ID        int64   `json:"id"`
	Label     string  `json:"label,omitempty"`
	Score     float64 `json:"score"`
	Report    Report  `json:"report"`
	CreatedAt string  `json:"created_at"`
}

const historySchema = `CREATE TABLE IF NOT EXISTS ats_reports (
	id         BIGSERIAL PRIMARY KEY,
	label      TEXT NOT NULL DEFAULT '',
	score      DOUBLE PRECISION NOT NULL,
	report     JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// ConnectHistory creates a pgx pool and ensures the reports table exists.
func ConnectHistory(ctx context.Context, databaseURL string) (*HistoryDB, error) {
	if databaseURL == "" {
		return nil, errors.New("DATABASE_URL is required")
	}

	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse DATABASE_URL: %w", err)
	}
	config.MaxConns = 5
	config.MinConns = 1

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("history: connect: %w", err)
	}

	if _, err := pool.Exec(ctx, historySchema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("history: init schema: %w", err)
	}

	return &HistoryDB{pool: pool}, nil
}

// Close releases the connection pool.
func (h *HistoryDB) Close() {
	h.pool.Close()
}

// SaveReport persists a computed report under an optional label.
func (h *HistoryDB) SaveReport(ctx context.Context, label string, r *Report) (int64, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return 0, fmt.Errorf("history: marshal report: %w", err)
	}

	var id int64
	err = h.pool.QueryRow(ctx,
		`INSERT INTO ats_reports (label, score, report) VALUES ($1, $2, $3) RETURNING id`,
		label, r.Score, data,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("history: insert: %w", err)
	}
	return id, nil
}

// ListReports returns the most recent stored reports, newest first.
func (h *HistoryDB) ListReports(ctx context.Context, limit int) ([]StoredReport, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	rows, err := h.pool.Query(ctx,
		`SELECT id, label, score, report, created_at
		 FROM ats_reports ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("history: query: %w", err)
	}
	defer rows.Close()

	var reports []StoredReport
	for rows.Next() {
		var sr StoredReport
		var data []byte
		var createdAt time.Time
		if err := rows.Scan(&sr.ID, &sr.Label, &sr.Score, &data, &createdAt); err != nil {
			continue
		}
		if err := json.Unmarshal(data, &sr.Report); err != nil {
			continue
		}
		sr.CreatedAt = createdAt.UTC().Format(time.RFC3339)
		reports = append(reports, sr)
	}

	if reports == nil {
		reports = []StoredReport{}
	}
	return reports, nil
}
