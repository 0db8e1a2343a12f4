package profile

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cwinters/braveport/internal/backup"
	"github.com/cwinters/braveport/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.ProfileFiles = (*Files)(nil)

// Files installs store files into a profile directory wholesale, for data
// (History, Favicons, ...) that migrates by file replacement rather than
// record-level transcoding.
type Files struct {
	dir string
	log *slog.Logger
}

// NewFiles creates a Files adapter rooted at the profile directory.
func NewFiles(dir string, log *slog.Logger) *Files {
	if log == nil {
		log = slog.Default()
	}
	return &Files{dir: dir, log: log}
}

// Install places the file at src as the named profile file. Any existing
// copy is backed up first; the write itself is atomic.
func (f *Files) Install(src, name string) error {
	dst := filepath.Join(f.dir, name)

	if _, err := os.Stat(dst); err == nil {
		backupPath, err := backup.Copy(dst)
		if err != nil {
			return fmt.Errorf("back up %s: %w", name, err)
		}
		f.log.Info("backed up profile file", "file", name, "backup", backupPath)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat %s: %w", dst, err)
	}

	if err := backup.CopyFile(src, dst); err != nil {
		return fmt.Errorf("install %s: %w", name, err)
	}
	return nil
}
