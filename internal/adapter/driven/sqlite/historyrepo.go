package sqlite

import (
	"context"
	"fmt"

	"github.com/cwinters/braveport/internal/domain/model"
	"github.com/cwinters/braveport/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.HistoryStore = (*HistoryRepo)(nil)

// HistoryRepo reads the browser's History database. It is read-only: imports
// replace the history file wholesale rather than merging rows.
type HistoryRepo struct {
	path string
}

// NewHistoryRepo creates a HistoryRepo for the store file at path.
func NewHistoryRepo(path string) *HistoryRepo {
	return &HistoryRepo{path: path}
}

// ReadAll returns history entries newest first.
func (r *HistoryRepo) ReadAll(ctx context.Context, filter model.HistoryFilter) ([]model.HistoryEntry, error) {
	wc, err := OpenWorkingCopy(r.path)
	if err != nil {
		return nil, err
	}
	defer wc.Close()

	query := `SELECT url, title, visit_count, last_visit_time FROM urls`
	var args []any
	if !filter.Since.IsZero() {
		query += ` WHERE last_visit_time > ?`
		args = append(args, model.ToChromeTime(filter.Since))
	}
	query += ` ORDER BY last_visit_time DESC`
	if filter.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, filter.Limit)
	}

	rows, err := wc.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var entries []model.HistoryEntry
	for rows.Next() {
		var (
			entry     model.HistoryEntry
			lastVisit int64
		)
		if err := rows.Scan(&entry.URL, &entry.Title, &entry.VisitCount, &lastVisit); err != nil {
			return nil, fmt.Errorf("scan history entry: %w", err)
		}
		entry.LastVisit = model.FromChromeTime(lastVisit)
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history: %w", err)
	}

	return entries, nil
}
