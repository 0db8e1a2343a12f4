// Package archive packs and unpacks the ZIP bundles braveport moves between
// machines.
package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/cwinters/braveport/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.Archiver = (*ZipArchiver)(nil)

// ZipArchiver implements the Archiver port with ZIP/deflate.
type ZipArchiver struct{}

// NewZipArchiver creates a ZipArchiver.
func NewZipArchiver() *ZipArchiver { return &ZipArchiver{} }

// Create writes every regular file under dir into a ZIP at path, using
// forward-slash names relative to dir.
func (a *ZipArchiver) Create(path, dir string) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create archive %s: %w", path, err)
	}
	defer out.Close()

	zw := zip.NewWriter(out)
	err = filepath.WalkDir(dir, func(file string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(dir, file)
		if err != nil {
			return err
		}
		w, err := zw.Create(filepath.ToSlash(rel))
		if err != nil {
			return fmt.Errorf("add %s: %w", rel, err)
		}

		in, err := os.Open(file)
		if err != nil {
			return err
		}
		defer in.Close()

		_, err = io.Copy(w, in)
		return err
	})
	if err != nil {
		zw.Close()
		return fmt.Errorf("pack %s: %w", path, err)
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("finish archive %s: %w", path, err)
	}
	return out.Close()
}

// Extract unpacks the ZIP at path into dir, refusing entries whose names
// would escape it.
func (a *ZipArchiver) Extract(path, dir string) error {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return fmt.Errorf("open archive %s: %w", path, err)
	}
	defer zr.Close()

	for _, entry := range zr.File {
		if err := extractEntry(entry, dir); err != nil {
			return fmt.Errorf("extract %s: %w", entry.Name, err)
		}
	}
	return nil
}

func extractEntry(entry *zip.File, dir string) error {
	dst := filepath.Join(dir, filepath.FromSlash(entry.Name))
	if !strings.HasPrefix(dst, filepath.Clean(dir)+string(os.PathSeparator)) {
		return fmt.Errorf("entry name escapes destination")
	}

	if entry.FileInfo().IsDir() {
		return os.MkdirAll(dst, 0o755)
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}

	in, err := entry.Open()
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
