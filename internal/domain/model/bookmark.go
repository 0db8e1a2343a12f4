package model

// Bookmark node types as they appear in the on-disk JSON document.
const (
	BookmarkTypeURL    = "url"
	BookmarkTypeFolder = "folder"
)

// BookmarkNode is one node of the browser's bookmark tree. DateAdded carries
// the browser's own string-encoded timestamp and is passed through untouched.
type BookmarkNode struct {
	Type      string         `json:"type"`
	Name      string         `json:"name"`
	URL       string         `json:"url,omitempty"`
	DateAdded string         `json:"date_added,omitempty"`
	Children  []BookmarkNode `json:"children,omitempty"`
}

// BookmarkFile mirrors the profile's Bookmarks JSON document. Fields the
// tool does not interpret (checksum, version) round-trip unchanged so an
// imported file stays valid for the browser.
type BookmarkFile struct {
	Checksum string                  `json:"checksum,omitempty"`
	Roots    map[string]BookmarkNode `json:"roots"`
	Version  int                     `json:"version"`
}

// Count returns the number of url-type nodes across all roots.
func (f *BookmarkFile) Count() int {
	total := 0
	for _, root := range f.Roots {
		total += countNodes(root)
	}
	return total
}

func countNodes(node BookmarkNode) int {
	total := 0
	if node.Type == BookmarkTypeURL {
		total++
	}
	for _, child := range node.Children {
		total += countNodes(child)
	}
	return total
}
