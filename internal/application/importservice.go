package application

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cwinters/braveport/internal/config"
	"github.com/cwinters/braveport/internal/domain/model"
	"github.com/cwinters/braveport/internal/domain/port/driven"
)

// ImportOptions control what one import run installs.
type ImportOptions struct {
	Input     string
	Passwords bool
	History   bool
	Bookmarks bool
}

// ImportSummary reports what an import run actually wrote.
type ImportSummary struct {
	Passwords       int
	Bookmarks       int
	HistoryReplaced bool
}

// ImportService unpacks an archive and installs its contents into the local
// profile. Every destination that previously existed gets a timestamped
// backup before it is overwritten; a run that fails before commit leaves the
// originals untouched.
type ImportService struct {
	cfg       *config.Config
	logins    driven.LoginStore
	bookmarks driven.BookmarkStore
	files     driven.ProfileFiles
	archiver  driven.Archiver
	log       *slog.Logger
}

// NewImportService creates an ImportService. The login store may be nil when
// the caller never imports passwords.
func NewImportService(
	cfg *config.Config,
	logins driven.LoginStore,
	bookmarks driven.BookmarkStore,
	files driven.ProfileFiles,
	archiver driven.Archiver,
	log *slog.Logger,
) *ImportService {
	if log == nil {
		log = slog.Default()
	}
	return &ImportService{
		cfg:       cfg,
		logins:    logins,
		bookmarks: bookmarks,
		files:     files,
		archiver:  archiver,
		log:       log,
	}
}

// Run extracts the archive into a scratch directory and dispatches each
// requested category to its store.
func (s *ImportService) Run(ctx context.Context, opts ImportOptions) (*ImportSummary, error) {
	staging, err := os.MkdirTemp("", "braveport-import-*")
	if err != nil {
		return nil, fmt.Errorf("create staging directory: %w", err)
	}
	defer os.RemoveAll(staging)

	if err := s.archiver.Extract(opts.Input, staging); err != nil {
		return nil, err
	}
	s.logProvenance(staging)

	summary := &ImportSummary{}

	if opts.Passwords {
		if err := s.importPasswords(ctx, staging, summary); err != nil {
			return nil, err
		}
	}
	if opts.Bookmarks {
		if err := s.importBookmarks(staging, summary); err != nil {
			return nil, err
		}
	}
	if opts.History {
		if err := s.importHistory(staging, summary); err != nil {
			return nil, err
		}
	}

	s.log.Info("import complete",
		"passwords", summary.Passwords,
		"bookmarks", summary.Bookmarks,
		"history_replaced", summary.HistoryReplaced,
	)
	return summary, nil
}

// logProvenance reports where the archive came from when metadata is
// present. Its absence is not an error; older archives carry none.
func (s *ImportService) logProvenance(staging string) {
	var meta metadata
	if err := readJSON(filepath.Join(staging, metadataArtifact), &meta); err != nil {
		s.log.Warn("archive carries no readable metadata", "error", err)
		return
	}
	s.log.Info("importing archive", "exported", meta.ExportDate, "system", meta.System)
}

func (s *ImportService) importPasswords(ctx context.Context, staging string, summary *ImportSummary) error {
	path := filepath.Join(staging, passwordsArtifact)
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		s.log.Warn("archive contains no password artifact")
		return nil
	}

	var exported []model.ExportedLogin
	if err := readJSON(path, &exported); err != nil {
		return err
	}

	logins := make([]model.Login, 0, len(exported))
	for _, e := range exported {
		logins = append(logins, e.Login())
	}

	count, err := s.logins.WriteAll(ctx, logins)
	if err != nil {
		return fmt.Errorf("import passwords: %w", err)
	}
	summary.Passwords = count
	s.log.Info("imported passwords", "written", count, "attempted", len(logins))
	return nil
}

func (s *ImportService) importBookmarks(staging string, summary *ImportSummary) error {
	path := filepath.Join(staging, bookmarksArtifact)
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		s.log.Warn("archive contains no bookmark artifact")
		return nil
	}

	var file model.BookmarkFile
	if err := readJSON(path, &file); err != nil {
		return err
	}

	if err := s.bookmarks.Write(&file); err != nil {
		return fmt.Errorf("import bookmarks: %w", err)
	}
	summary.Bookmarks = file.Count()
	s.log.Info("imported bookmarks", "count", summary.Bookmarks)
	return nil
}

func (s *ImportService) importHistory(staging string, summary *ImportSummary) error {
	src := filepath.Join(staging, config.HistoryFile)
	if _, err := os.Stat(src); errors.Is(err, fs.ErrNotExist) {
		s.log.Warn("archive contains no history store")
		return nil
	}

	if err := s.files.Install(src, config.HistoryFile); err != nil {
		return fmt.Errorf("import history: %w", err)
	}
	summary.HistoryReplaced = true
	s.log.Info("imported history store")
	return nil
}
