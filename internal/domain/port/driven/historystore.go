package driven

import (
	"context"

	"github.com/cwinters/braveport/internal/domain/model"
)

// HistoryStore is the driven port for the browser's visited-URL database.
// Reads go through a working copy of the store file; history is imported by
// wholesale file replacement (see ProfileFiles), so no write method exists.
type HistoryStore interface {
	// ReadAll returns history entries newest first, honoring the filter.
	ReadAll(ctx context.Context, filter model.HistoryFilter) ([]model.HistoryEntry, error)
}
