package driven

import (
	"io"

	"github.com/cwinters/braveport/internal/domain/model"
)

// BookmarkStore is the driven port for the profile's Bookmarks JSON document.
type BookmarkStore interface {
	// Read parses the bookmark tree from disk.
	Read() (*model.BookmarkFile, error)

	// Write replaces the bookmark tree on disk, creating a timestamped
	// backup of any existing document first.
	Write(file *model.BookmarkFile) error

	// RenderHTML writes the tree to w in the Netscape bookmark-file format
	// most browsers accept for import.
	RenderHTML(w io.Writer, file *model.BookmarkFile) error
}
