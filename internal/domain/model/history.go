package model

import "time"

// HistoryEntry is one row of the browser's visited-URL table.
type HistoryEntry struct {
	URL        string    `json:"url"`
	Title      string    `json:"title"`
	VisitCount int       `json:"visit_count"`
	LastVisit  time.Time `json:"last_visit,omitzero"`
}

// HistoryFilter narrows a history read. The zero value selects everything.
type HistoryFilter struct {
	// Limit caps the number of entries returned; 0 means no cap.
	Limit int
	// Since drops entries last visited at or before this instant.
	Since time.Time
}
