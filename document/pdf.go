package document

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"

	apperrors "github.com/sweetpotato0/docsum/errors"
	"github.com/sweetpotato0/docsum/pkg/logging"
)

// PDFExtractor extracts page text from local PDF files.
type PDFExtractor struct {
	logger *slog.Logger
}

// NewPDFExtractor creates a PDF extractor. A nil logger falls back to the
// shared component logger.
func NewPDFExtractor(logger *slog.Logger) *PDFExtractor {
	if logger == nil {
		logger = logging.WithComponent("document")
	}
	return &PDFExtractor{logger: logger}
}

// Extract opens the referenced PDF and returns the text of its non-blank
// pages, in source order, up to maxPages. The file handle is closed on every
// exit path. A document whose every page is blank yields an empty Extracted,
// not an error.
func (e *PDFExtractor) Extract(ctx context.Context, ref Reference, maxPages int) (out Extracted, err error) {
	// The underlying parser panics on some malformed files; surface those
	// as extraction faults like any other decode error.
	defer func() {
		if r := recover(); r != nil {
			out = Extracted{}
			err = fmt.Errorf("%w: %s: parser panic: %v", apperrors.ErrExtraction, ref, r)
		}
	}()

	if ref == "" {
		return Extracted{}, fmt.Errorf("%w: empty document reference", apperrors.ErrInvalidInput)
	}

	if _, err := os.Stat(ref.String()); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Extracted{}, fmt.Errorf("%w: %s", apperrors.ErrNotFound, ref)
		}
		return Extracted{}, fmt.Errorf("%w: stat %s: %w", apperrors.ErrExtraction, ref, err)
	}

	e.logger.Info("reading pdf", "path", ref.String(), "max_pages", maxPages)

	f, reader, err := pdf.Open(ref.String())
	if err != nil {
		return Extracted{}, fmt.Errorf("%w: open %s: %w", apperrors.ErrExtraction, ref, err)
	}
	defer f.Close()

	out, err = collectPages(ctx, pdfSource{reader: reader}, maxPages)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return Extracted{}, err
		}
		return Extracted{}, fmt.Errorf("%w: %s: %w", apperrors.ErrExtraction, ref, err)
	}

	e.logger.Info("pdf extracted",
		"path", ref.String(),
		"total_pages", reader.NumPage(),
		"pages_with_text", len(out.Pages))
	return out, nil
}

// pageSource abstracts a paginated document so the page loop can be tested
// without a real PDF on disk.
type pageSource interface {
	NumPages() int
	// PageText returns the raw text of the 1-based page n. An empty string
	// marks a blank page; an error marks a decode fault.
	PageText(n int) (string, error)
}

type pdfSource struct {
	reader *pdf.Reader
}

func (s pdfSource) NumPages() int { return s.reader.NumPage() }

func (s pdfSource) PageText(n int) (string, error) {
	page := s.reader.Page(n)
	if page.V.IsNull() {
		return "", nil
	}
	return page.GetPlainText(nil)
}

// collectPages walks pages 1..min(total, maxPages), skipping pages whose text
// is empty or whitespace-only. Page numbering in the result matches the
// source, not a renumbered sequence. Any page fault aborts the whole
// extraction; no partial result is returned.
func collectPages(ctx context.Context, src pageSource, maxPages int) (Extracted, error) {
	total := src.NumPages()
	limit := total
	if maxPages > 0 && maxPages < total {
		limit = maxPages
	}

	var out Extracted
	for n := 1; n <= limit; n++ {
		if err := ctx.Err(); err != nil {
			return Extracted{}, err
		}
		text, err := src.PageText(n)
		if err != nil {
			return Extracted{}, fmt.Errorf("page %d: %w", n, err)
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		out.Pages = append(out.Pages, Page{Number: n, Text: text})
	}
	return out, nil
}
