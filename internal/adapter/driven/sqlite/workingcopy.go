package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cwinters/braveport/internal/backup"
)

// WorkingCopy is a transient copy of a profile database. All intermediate
// reads and writes hit the copy; the original file is only touched at
// Commit, and only after a timestamped backup of it exists. The copy lives
// in the original's directory so the final move stays on one filesystem.
type WorkingCopy struct {
	db        *sql.DB
	path      string
	original  string
	committed bool
}

// OpenWorkingCopy copies the store at original and opens the copy. The
// original must exist; use CreateWorkingCopy for import destinations that
// may not.
func OpenWorkingCopy(original string) (*WorkingCopy, error) {
	if _, err := os.Stat(original); err != nil {
		return nil, fmt.Errorf("store %s: %w", original, err)
	}
	return newWorkingCopy(original, false)
}

// CreateWorkingCopy prepares a working copy for an import run: a copy of the
// original when it exists, otherwise a fresh store carrying the login
// schema.
func CreateWorkingCopy(original string) (*WorkingCopy, error) {
	_, err := os.Stat(original)
	switch {
	case err == nil:
		return newWorkingCopy(original, false)
	case errors.Is(err, fs.ErrNotExist):
		wc, err := newWorkingCopy(original, true)
		if err != nil {
			return nil, err
		}
		if err := RunMigrations(wc.db); err != nil {
			wc.Close()
			return nil, err
		}
		return wc, nil
	default:
		return nil, fmt.Errorf("stat %s: %w", original, err)
	}
}

func newWorkingCopy(original string, fresh bool) (*WorkingCopy, error) {
	dir := filepath.Dir(original)
	if fresh {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create store directory %s: %w", dir, err)
		}
	}

	tmp, err := os.CreateTemp(dir, ".braveport-*.tmp")
	if err != nil {
		return nil, fmt.Errorf("create working copy: %w", err)
	}
	tmpPath := tmp.Name()
	tmp.Close()

	if !fresh {
		if err := backup.CopyFile(original, tmpPath); err != nil {
			os.Remove(tmpPath)
			return nil, fmt.Errorf("copy store: %w", err)
		}
	}

	db, err := Open(tmpPath)
	if err != nil {
		os.Remove(tmpPath)
		return nil, err
	}
	return &WorkingCopy{db: db, path: tmpPath, original: original}, nil
}

// DB returns the handle on the working copy.
func (w *WorkingCopy) DB() *sql.DB { return w.db }

// Commit closes the copy, backs up the original when it exists, and
// atomically moves the copy into its place. Returns the backup path, empty
// when nothing existed to back up. After Commit the copy file is gone.
func (w *WorkingCopy) Commit() (string, error) {
	if err := w.db.Close(); err != nil {
		return "", fmt.Errorf("close working copy: %w", err)
	}
	w.db = nil

	backupPath, err := backup.Replace(w.path, w.original)
	if err != nil {
		return backupPath, err
	}
	w.committed = true
	return backupPath, nil
}

// Close discards the working copy. It runs on every exit path; after a
// successful Commit it is a no-op.
func (w *WorkingCopy) Close() error {
	var firstErr error
	if w.db != nil {
		firstErr = w.db.Close()
		w.db = nil
	}
	if !w.committed {
		if err := os.Remove(w.path); err != nil && !errors.Is(err, fs.ErrNotExist) && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
