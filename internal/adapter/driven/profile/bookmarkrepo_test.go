package profile

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwinters/braveport/internal/domain/model"
)

func sampleBookmarks() *model.BookmarkFile {
	return &model.BookmarkFile{
		Checksum: "abc123",
		Version:  1,
		Roots: map[string]model.BookmarkNode{
			"bookmark_bar": {
				Type: model.BookmarkTypeFolder,
				Name: "Bookmarks Bar",
				Children: []model.BookmarkNode{
					{Type: model.BookmarkTypeURL, Name: "Example", URL: "https://example.com/", DateAdded: "13300000000000000"},
					{
						Type: model.BookmarkTypeFolder,
						Name: "Work",
						Children: []model.BookmarkNode{
							{Type: model.BookmarkTypeURL, Name: "Tracker", URL: "https://tracker.test/"},
						},
					},
				},
			},
			"other": {
				Type: model.BookmarkTypeFolder,
				Name: "Other Bookmarks",
				Children: []model.BookmarkNode{
					{Type: model.BookmarkTypeURL, Name: "Recipes", URL: "https://recipes.test/"},
				},
			},
		},
	}
}

func TestBookmarkRepo_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Bookmarks")
	repo := NewBookmarkRepo(path, slog.Default())

	want := sampleBookmarks()
	require.NoError(t, repo.Write(want))

	got, err := repo.Read()
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, 3, got.Count())
}

func TestBookmarkRepo_WriteBacksUpExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Bookmarks")
	require.NoError(t, os.WriteFile(path, []byte(`{"roots":{},"version":1}`), 0o600))

	repo := NewBookmarkRepo(path, slog.Default())
	require.NoError(t, repo.Write(sampleBookmarks()))

	backups, err := filepath.Glob(path + ".bak.*")
	require.NoError(t, err)
	require.Len(t, backups, 1)

	original, err := os.ReadFile(backups[0])
	require.NoError(t, err)
	assert.JSONEq(t, `{"roots":{},"version":1}`, string(original))
}

func TestBookmarkRepo_ReadMissingFile(t *testing.T) {
	repo := NewBookmarkRepo(filepath.Join(t.TempDir(), "Bookmarks"), slog.Default())
	_, err := repo.Read()
	assert.Error(t, err)
}

func TestBookmarkRepo_ReadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Bookmarks")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	repo := NewBookmarkRepo(path, slog.Default())
	_, err := repo.Read()
	assert.Error(t, err)
}

func TestBookmarkRepo_RenderHTML(t *testing.T) {
	repo := NewBookmarkRepo("", slog.Default())

	var out strings.Builder
	require.NoError(t, repo.RenderHTML(&out, sampleBookmarks()))
	rendered := out.String()

	assert.Contains(t, rendered, "<!DOCTYPE NETSCAPE-Bookmark-file-1>")
	assert.Contains(t, rendered, `PERSONAL_TOOLBAR_FOLDER="true"`)
	assert.Contains(t, rendered, `<A HREF="https://example.com/" ADD_DATE="13300000000000000">Example</A>`)
	assert.Contains(t, rendered, "<H3 ADD_DATE=\"\">Work</H3>")
	assert.Contains(t, rendered, `<A HREF="https://tracker.test/"`)
	assert.Contains(t, rendered, "Other Bookmarks")
}

func TestBookmarkRepo_RenderHTMLEscapes(t *testing.T) {
	repo := NewBookmarkRepo("", slog.Default())
	file := &model.BookmarkFile{
		Version: 1,
		Roots: map[string]model.BookmarkNode{
			"bookmark_bar": {
				Type: model.BookmarkTypeFolder,
				Children: []model.BookmarkNode{
					{Type: model.BookmarkTypeURL, Name: `<script>alert("x")</script>`, URL: `https://example.com/?a=1&b="2"`},
				},
			},
		},
	}

	var out strings.Builder
	require.NoError(t, repo.RenderHTML(&out, file))
	rendered := out.String()

	assert.NotContains(t, rendered, "<script>")
	assert.Contains(t, rendered, "&lt;script&gt;")
	assert.Contains(t, rendered, "https://example.com/?a=1&amp;b=&#34;2&#34;")
}
