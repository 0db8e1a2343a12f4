// Package backup creates timestamped copies of profile files and performs
// backup-then-replace commits. The invariant it guards: an original store
// file is never overwritten without a restorable copy existing first.
package backup

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/natefinch/atomic"
)

// timestampLayout produces the <file>.bak.YYYYMMDDHHMMSS suffix.
const timestampLayout = "20060102150405"

// Path returns the backup path for file at the given moment.
func Path(file string, at time.Time) string {
	return fmt.Sprintf("%s.bak.%s", file, at.Format(timestampLayout))
}

// CopyFile copies src to dst atomically: dst either keeps its old content or
// holds a complete copy of src, never a partial write.
func CopyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open %s: %w", src, err)
	}
	defer in.Close()

	if err := atomic.WriteFile(dst, in); err != nil {
		return fmt.Errorf("write %s: %w", dst, err)
	}
	return nil
}

// Copy writes a timestamped copy of file next to it and returns the backup
// path. The file must exist.
func Copy(file string) (string, error) {
	dst := Path(file, time.Now())
	if err := CopyFile(file, dst); err != nil {
		return "", err
	}
	return dst, nil
}

// Replace backs up dst when it exists and then atomically moves src into its
// place. Returns the backup path, empty when dst did not previously exist.
// src is consumed by the move.
func Replace(src, dst string) (string, error) {
	backupPath := ""
	if _, err := os.Stat(dst); err == nil {
		backupPath, err = Copy(dst)
		if err != nil {
			return "", fmt.Errorf("back up %s: %w", dst, err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("stat %s: %w", dst, err)
	}

	if err := atomic.ReplaceFile(src, dst); err != nil {
		return backupPath, fmt.Errorf("replace %s: %w", dst, err)
	}
	return backupPath, nil
}
