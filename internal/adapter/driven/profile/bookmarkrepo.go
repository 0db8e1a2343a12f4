// Package profile works with the flat files of a browser profile directory:
// the Bookmarks JSON document and the store files that move between machines
// without transcoding.
package profile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/natefinch/atomic"

	"github.com/cwinters/braveport/internal/backup"
	"github.com/cwinters/braveport/internal/domain/model"
	"github.com/cwinters/braveport/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.BookmarkStore = (*BookmarkRepo)(nil)

// BookmarkRepo reads and writes a profile's Bookmarks JSON document.
type BookmarkRepo struct {
	path string
	log  *slog.Logger
}

// NewBookmarkRepo creates a BookmarkRepo for the document at path.
func NewBookmarkRepo(path string, log *slog.Logger) *BookmarkRepo {
	if log == nil {
		log = slog.Default()
	}
	return &BookmarkRepo{path: path, log: log}
}

// Read parses the bookmark tree from disk.
func (r *BookmarkRepo) Read() (*model.BookmarkFile, error) {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("read bookmarks %s: %w", r.path, err)
	}

	var file model.BookmarkFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse bookmarks %s: %w", r.path, err)
	}
	return &file, nil
}

// Write backs up any existing Bookmarks document and atomically replaces it.
func (r *BookmarkRepo) Write(file *model.BookmarkFile) error {
	raw, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("encode bookmarks: %w", err)
	}

	if _, err := os.Stat(r.path); err == nil {
		backupPath, err := backup.Copy(r.path)
		if err != nil {
			return fmt.Errorf("back up bookmarks: %w", err)
		}
		r.log.Info("backed up bookmarks", "backup", backupPath)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat bookmarks %s: %w", r.path, err)
	}

	if err := atomic.WriteFile(r.path, bytes.NewReader(raw)); err != nil {
		return fmt.Errorf("write bookmarks %s: %w", r.path, err)
	}
	return nil
}
