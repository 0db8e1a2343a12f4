package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/cwinters/braveport/internal/backup"
	"github.com/cwinters/braveport/internal/config"
	"github.com/cwinters/braveport/internal/domain/model"
	"github.com/cwinters/braveport/internal/domain/port/driven"
)

// ExportOptions control what one export run bundles.
type ExportOptions struct {
	Output      string
	Passwords   bool
	History     bool
	Bookmarks   bool
	HistoryDays int
}

// ExportSummary reports what an export run actually recovered.
type ExportSummary struct {
	Passwords          int
	PasswordsAttempted int
	HistoryEntries     int
	Bookmarks          int
	ArchivePath        string
}

// ExportService bundles profile data into a portable archive. Per-record
// decryption failures are recovered inside the login store; a failure to
// obtain the master key aborts the run.
type ExportService struct {
	cfg       *config.Config
	logins    driven.LoginStore
	history   driven.HistoryStore
	bookmarks driven.BookmarkStore
	archiver  driven.Archiver
	log       *slog.Logger
}

// NewExportService creates an ExportService. The login store may be nil when
// the caller never exports passwords.
func NewExportService(
	cfg *config.Config,
	logins driven.LoginStore,
	history driven.HistoryStore,
	bookmarks driven.BookmarkStore,
	archiver driven.Archiver,
	log *slog.Logger,
) *ExportService {
	if log == nil {
		log = slog.Default()
	}
	return &ExportService{
		cfg:       cfg,
		logins:    logins,
		history:   history,
		bookmarks: bookmarks,
		archiver:  archiver,
		log:       log,
	}
}

// Run stages all requested artifacts in a scratch directory and packs them
// into the output archive. The scratch directory is removed on every exit
// path; plaintext secrets only persist inside the requested archive.
func (s *ExportService) Run(ctx context.Context, opts ExportOptions) (*ExportSummary, error) {
	staging, err := os.MkdirTemp("", "braveport-export-*")
	if err != nil {
		return nil, fmt.Errorf("create staging directory: %w", err)
	}
	defer os.RemoveAll(staging)

	summary := &ExportSummary{ArchivePath: opts.Output}

	s.copyRawFiles(staging)

	if opts.Passwords {
		if err := s.exportPasswords(ctx, staging, summary); err != nil {
			return nil, err
		}
	}
	if opts.History {
		if err := s.exportHistory(ctx, staging, opts, summary); err != nil {
			return nil, err
		}
	}
	if opts.Bookmarks {
		if err := s.exportBookmarks(staging, summary); err != nil {
			return nil, err
		}
	}

	meta := metadata{
		ExportDate:  time.Now().UTC(),
		System:      runtime.GOOS,
		ProfileDir:  s.cfg.ProfileDir,
		Passwords:   opts.Passwords,
		History:     opts.History,
		Bookmarks:   opts.Bookmarks,
		HistoryDays: opts.HistoryDays,
	}
	if err := writeJSON(filepath.Join(staging, metadataArtifact), meta); err != nil {
		return nil, err
	}

	if err := s.archiver.Create(opts.Output, staging); err != nil {
		return nil, err
	}

	s.log.Info("export complete", "archive", opts.Output)
	return summary, nil
}

// copyRawFiles stages verbatim copies of the profile's store files. A file
// that is missing or unreadable is logged and skipped; the archive is still
// useful without it.
func (s *ExportService) copyRawFiles(staging string) {
	for _, name := range rawProfileFiles {
		src := filepath.Join(s.cfg.ProfileDir, name)
		if _, err := os.Stat(src); err != nil {
			s.log.Warn("profile file not found", "file", name)
			continue
		}
		if err := backup.CopyFile(src, filepath.Join(staging, name)); err != nil {
			s.log.Warn("could not copy profile file", "file", name, "error", err)
		}
	}
}

func (s *ExportService) exportPasswords(ctx context.Context, staging string, summary *ExportSummary) error {
	logins, attempted, err := s.logins.ReadAll(ctx)
	if err != nil {
		return fmt.Errorf("export passwords: %w", err)
	}

	exported := make([]model.ExportedLogin, 0, len(logins))
	for _, login := range logins {
		exported = append(exported, login.Exported())
	}
	if err := writeJSON(filepath.Join(staging, passwordsArtifact), exported); err != nil {
		return err
	}

	summary.Passwords = len(logins)
	summary.PasswordsAttempted = attempted
	s.log.Info("exported passwords", "recovered", len(logins), "attempted", attempted)
	return nil
}

func (s *ExportService) exportHistory(ctx context.Context, staging string, opts ExportOptions, summary *ExportSummary) error {
	filter := model.HistoryFilter{}
	if opts.HistoryDays > 0 {
		filter.Since = time.Now().AddDate(0, 0, -opts.HistoryDays)
	}

	entries, err := s.history.ReadAll(ctx, filter)
	if err != nil {
		// History is peripheral; a missing or unreadable store should not
		// block the credential export.
		s.log.Warn("could not export history", "error", err)
		return nil
	}
	if err := writeJSON(filepath.Join(staging, historyArtifact), entries); err != nil {
		return err
	}

	summary.HistoryEntries = len(entries)
	s.log.Info("exported history", "entries", len(entries))
	return nil
}

func (s *ExportService) exportBookmarks(staging string, summary *ExportSummary) error {
	file, err := s.bookmarks.Read()
	if err != nil {
		s.log.Warn("could not export bookmarks", "error", err)
		return nil
	}
	if err := writeJSON(filepath.Join(staging, bookmarksArtifact), file); err != nil {
		return err
	}

	htmlOut, err := os.Create(filepath.Join(staging, bookmarksHTML))
	if err != nil {
		return fmt.Errorf("create %s: %w", bookmarksHTML, err)
	}
	if err := s.bookmarks.RenderHTML(htmlOut, file); err != nil {
		htmlOut.Close()
		return fmt.Errorf("render %s: %w", bookmarksHTML, err)
	}
	if err := htmlOut.Close(); err != nil {
		return err
	}

	summary.Bookmarks = file.Count()
	s.log.Info("exported bookmarks", "count", summary.Bookmarks)
	return nil
}
