// Package application contains use-case orchestration services.
package application

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Archive artifact names.
const (
	passwordsArtifact = "passwords.json"
	historyArtifact   = "history.json"
	bookmarksArtifact = "bookmarks.json"
	bookmarksHTML     = "bookmarks.html"
	metadataArtifact  = "metadata.json"
)

// rawProfileFiles are copied into the archive as-is when present.
var rawProfileFiles = []string{
	"History",
	"Bookmarks",
	"Login Data",
	"Preferences",
	"Favicons",
	"Cookies",
	"Web Data",
}

// metadata describes an archive so the importing side can log provenance and
// future versions can detect incompatibilities.
type metadata struct {
	ExportDate  time.Time `json:"export_date"`
	System      string    `json:"system"`
	ProfileDir  string    `json:"profile_dir"`
	Passwords   bool      `json:"exported_passwords"`
	History     bool      `json:"exported_history"`
	Bookmarks   bool      `json:"exported_bookmarks"`
	HistoryDays int       `json:"history_days,omitempty"`
}

func writeJSON(path string, v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func readJSON(path string, v any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
