package document

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	apperrors "github.com/sweetpotato0/docsum/errors"
)

// fakeSource serves canned page text; an entry of "" is a blank page and a
// nil-returning errAt triggers a decode fault at that page.
type fakeSource struct {
	pages []string
	errAt int
	err   error
}

func (s fakeSource) NumPages() int { return len(s.pages) }

func (s fakeSource) PageText(n int) (string, error) {
	if s.errAt == n {
		return "", s.err
	}
	return s.pages[n-1], nil
}

func TestCollectPagesSkipsBlankPages(t *testing.T) {
	src := fakeSource{pages: []string{"first page", "   \n\t ", "third page"}}

	out, err := collectPages(context.Background(), src, 0)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(out.Pages) != 2 {
		t.Fatalf("Expected 2 page blocks, got %d", len(out.Pages))
	}
	if out.Pages[0].Number != 1 || out.Pages[1].Number != 3 {
		t.Errorf("Expected source page numbers 1 and 3, got %d and %d",
			out.Pages[0].Number, out.Pages[1].Number)
	}
}

func TestCollectPagesHonorsMaxPages(t *testing.T) {
	src := fakeSource{pages: []string{"one", "two", "three", "four"}}

	out, err := collectPages(context.Background(), src, 2)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(out.Pages) != 2 {
		t.Errorf("Expected 2 page blocks with max_pages=2, got %d", len(out.Pages))
	}

	// A limit beyond the page count reads everything.
	out, err = collectPages(context.Background(), src, 10)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(out.Pages) != 4 {
		t.Errorf("Expected 4 page blocks with max_pages=10, got %d", len(out.Pages))
	}
}

func TestCollectPagesBlankWithinBound(t *testing.T) {
	// max_pages counts source pages, not surviving pages.
	src := fakeSource{pages: []string{"one", "", "three"}}

	out, err := collectPages(context.Background(), src, 2)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(out.Pages) != 1 {
		t.Fatalf("Expected 1 page block, got %d", len(out.Pages))
	}
	if out.Pages[0].Number != 1 {
		t.Errorf("Expected page 1, got %d", out.Pages[0].Number)
	}
}

func TestCollectPagesAllBlank(t *testing.T) {
	src := fakeSource{pages: []string{"", "  ", "\n"}}

	out, err := collectPages(context.Background(), src, 0)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !out.Empty() {
		t.Errorf("Expected empty result for all-blank document, got %d pages", len(out.Pages))
	}
}

func TestCollectPagesDeterministic(t *testing.T) {
	src := fakeSource{pages: []string{"alpha", "", "gamma", "delta"}}

	first, err := collectPages(context.Background(), src, 0)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	second, err := collectPages(context.Background(), src, 0)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if first.Text() != second.Text() {
		t.Error("Expected identical extraction results for the same source")
	}
}

func TestCollectPagesFaultAbortsExtraction(t *testing.T) {
	src := fakeSource{
		pages: []string{"one", "two", "three"},
		errAt: 2,
		err:   errors.New("bad xref"),
	}

	out, err := collectPages(context.Background(), src, 0)
	if err == nil {
		t.Fatal("Expected error for page fault, got nil")
	}
	if len(out.Pages) != 0 {
		t.Errorf("Expected no partial result on failure, got %d pages", len(out.Pages))
	}
}

func TestCollectPagesCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := collectPages(ctx, fakeSource{pages: []string{"one"}}, 0)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestExtractMissingFile(t *testing.T) {
	extractor := NewPDFExtractor(nil)

	_, err := extractor.Extract(context.Background(), Reference("/nonexistent/report.pdf"), 0)
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestExtractEmptyReference(t *testing.T) {
	extractor := NewPDFExtractor(nil)

	_, err := extractor.Extract(context.Background(), Reference(""), 0)
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput, got %v", err)
	}
}

func TestExtractCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.pdf")
	if err := os.WriteFile(path, []byte("this is not a pdf"), 0o644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	extractor := NewPDFExtractor(nil)
	_, err := extractor.Extract(context.Background(), Reference(path), 0)
	if !errors.Is(err, apperrors.ErrExtraction) {
		t.Errorf("Expected ErrExtraction, got %v", err)
	}
}
