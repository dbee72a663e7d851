package document

import (
	"fmt"
	"strings"
)

// Reference names a local source document by path. Immutable once created;
// resolving URIs or remote locations is the caller's concern.
type Reference string

func (r Reference) String() string { return string(r) }

// Page holds the non-empty text of a single source page, tagged with its
// original 1-based page number. Blank pages are never represented.
type Page struct {
	Number int    `json:"number"`
	Text   string `json:"text"`
}

// Extracted is the ordered page content pulled from one document. Pages
// preserve source order and keep their source numbering even when earlier
// pages were skipped for being blank.
type Extracted struct {
	Pages []Page `json:"pages"`
}

// Empty reports whether extraction yielded no text at all. This is a defined
// successful outcome, distinct from an extraction error.
func (e Extracted) Empty() bool { return len(e.Pages) == 0 }

// Text concatenates the surviving pages, each prefixed with its page marker.
func (e Extracted) Text() string {
	if e.Empty() {
		return ""
	}
	parts := make([]string, 0, len(e.Pages))
	for _, p := range e.Pages {
		parts = append(parts, fmt.Sprintf("--- Page %d ---\n%s", p.Number, p.Text))
	}
	return strings.Join(parts, "\n\n")
}
