package document

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"

	apperrors "github.com/sweetpotato0/docsum/errors"
)

// ExtractHTML flattens an HTML document into plain text suitable for the
// raw-text summarization path. Script, style and noscript content is dropped
// and blank lines are collapsed; no further normalization is applied.
func ExtractHTML(r io.Reader) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", fmt.Errorf("%w: parse html: %w", apperrors.ErrExtraction, err)
	}

	doc.Find("script, style, noscript").Remove()

	scope := doc.Find("body")
	var raw string
	if scope.Length() > 0 {
		raw = scope.Text()
	} else {
		raw = doc.Text()
	}

	lines := strings.Split(raw, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return strings.Join(out, "\n"), nil
}

// ExtractHTMLFile reads a local HTML file and flattens it to plain text.
func ExtractHTMLFile(ref Reference) (string, error) {
	f, err := os.Open(ref.String())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", apperrors.ErrNotFound, ref)
		}
		return "", fmt.Errorf("%w: open %s: %w", apperrors.ErrExtraction, ref, err)
	}
	defer f.Close()

	return ExtractHTML(f)
}
