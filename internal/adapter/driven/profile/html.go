package profile

import (
	"fmt"
	"html"
	"io"
	"strings"
	"time"

	"github.com/cwinters/braveport/internal/domain/model"
)

// RenderHTML renders the bookmark tree in the Netscape bookmark-file format,
// which most browsers accept for import. Names and URLs are HTML-escaped;
// bookmark titles are user-controlled text.
func (r *BookmarkRepo) RenderHTML(w io.Writer, file *model.BookmarkFile) error {
	now := fmt.Sprint(time.Now().Unix())

	if _, err := fmt.Fprint(w, "<!DOCTYPE NETSCAPE-Bookmark-file-1>\n"+
		"<META HTTP-EQUIV=\"Content-Type\" CONTENT=\"text/html; charset=UTF-8\">\n"+
		"<TITLE>Bookmarks</TITLE>\n<H1>Bookmarks</H1>\n<DL><p>\n"); err != nil {
		return err
	}

	if err := writeRoot(w, file, "bookmark_bar", "Bookmarks Bar", now, true); err != nil {
		return err
	}
	if err := writeRoot(w, file, "other", "Other Bookmarks", now, false); err != nil {
		return err
	}

	_, err := fmt.Fprint(w, "</DL><p>\n")
	return err
}

func writeRoot(w io.Writer, file *model.BookmarkFile, root, fallback, addDate string, toolbar bool) error {
	node, ok := file.Roots[root]
	if !ok {
		return nil
	}
	name := node.Name
	if name == "" {
		name = fallback
	}

	attrs := fmt.Sprintf("ADD_DATE=\"%s\"", addDate)
	if toolbar {
		attrs += " PERSONAL_TOOLBAR_FOLDER=\"true\""
	}
	if _, err := fmt.Fprintf(w, "<DT><H3 %s>%s</H3>\n<DL><p>\n", attrs, html.EscapeString(name)); err != nil {
		return err
	}
	if err := writeFolder(w, node, 1); err != nil {
		return err
	}
	_, err := fmt.Fprint(w, "</DL><p>\n")
	return err
}

func writeFolder(w io.Writer, folder model.BookmarkNode, depth int) error {
	indent := strings.Repeat("  ", depth)

	for _, child := range folder.Children {
		switch child.Type {
		case model.BookmarkTypeURL:
			name := child.Name
			if name == "" {
				name = child.URL
			}
			if _, err := fmt.Fprintf(w, "%s<DT><A HREF=\"%s\" ADD_DATE=\"%s\">%s</A>\n",
				indent, html.EscapeString(child.URL), html.EscapeString(child.DateAdded),
				html.EscapeString(name)); err != nil {
				return err
			}
		case model.BookmarkTypeFolder:
			if _, err := fmt.Fprintf(w, "%s<DT><H3 ADD_DATE=\"%s\">%s</H3>\n%s<DL><p>\n",
				indent, html.EscapeString(child.DateAdded), html.EscapeString(child.Name), indent); err != nil {
				return err
			}
			if err := writeFolder(w, child, depth+1); err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, "%s</DL><p>\n", indent); err != nil {
				return err
			}
		}
	}
	return nil
}
