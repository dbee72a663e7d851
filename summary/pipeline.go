package summary

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/sweetpotato0/docsum/document"
	apperrors "github.com/sweetpotato0/docsum/errors"
	"github.com/sweetpotato0/docsum/pkg/logging"
	"github.com/sweetpotato0/docsum/provider"
)

// NoContentSentinel is the defined successful result when a document yields
// no extractable text. The backend is never invoked in that case.
const NoContentSentinel = "No text content found in document"

// TokenCounter estimates the token footprint of a prompt. Used for
// observability only; the embedding bound stays character-based.
type TokenCounter interface {
	Count(text string) int
}

// Pipeline runs the two-stage flow: extract document text, then build a
// summarization request and normalize the backend's response. Stateless
// across invocations; safe for concurrent use.
type Pipeline struct {
	extractor document.Extractor
	client    provider.Client
	tokens    TokenCounter
	logger    *slog.Logger
	tracer    trace.Tracer
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithExtractor replaces the default PDF extractor.
func WithExtractor(e document.Extractor) Option {
	return func(p *Pipeline) { p.extractor = e }
}

// WithTokenCounter enables prompt token estimates in logs.
func WithTokenCounter(tc TokenCounter) Option {
	return func(p *Pipeline) { p.tokens = tc }
}

// WithLogger overrides the injected logger.
func WithLogger(l *slog.Logger) Option {
	return func(p *Pipeline) { p.logger = l }
}

// New creates a Pipeline around the given backend client.
func New(client provider.Client, opts ...Option) *Pipeline {
	p := &Pipeline{
		client: client,
		logger: logging.WithComponent("summary"),
		tracer: otel.Tracer("docsum/summary"),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.extractor == nil {
		p.extractor = document.NewPDFExtractor(p.logger)
	}
	return p
}

// SummarizeDocument extracts the referenced document and summarizes its
// content. Extraction failures prevent the backend from ever being invoked;
// an empty document short-circuits to the sentinel result.
func (p *Pipeline) SummarizeDocument(ctx context.Context, ref document.Reference, cfg Config) (string, error) {
	cfg = cfg.resolved()
	if err := cfg.Validate(); err != nil {
		return "", err
	}

	ctx, span := p.tracer.Start(ctx, "summary.document",
		trace.WithAttributes(attribute.String("document.ref", ref.String())))
	defer span.End()

	extracted, err := p.extractor.Extract(ctx, ref, cfg.MaxPages)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "extraction failed")
		return "", err
	}
	span.SetAttributes(attribute.Int("document.pages_with_text", len(extracted.Pages)))

	if extracted.Empty() {
		p.logger.Info("document has no extractable text", "ref", ref.String())
		return NoContentSentinel, nil
	}

	return p.SummarizeText(ctx, extracted.Text(), cfg)
}

// SummarizeText summarizes raw text. Empty or whitespace-only input yields
// the sentinel result without invoking the backend.
func (p *Pipeline) SummarizeText(ctx context.Context, text string, cfg Config) (string, error) {
	cfg = cfg.resolved()
	if err := cfg.Validate(); err != nil {
		return "", err
	}

	if strings.TrimSpace(text) == "" {
		return NoContentSentinel, nil
	}

	ctx, span := p.tracer.Start(ctx, "summary.text",
		trace.WithAttributes(
			attribute.String("summary.style", string(cfg.Style)),
			attribute.Int("summary.target_length", cfg.TargetLength),
		))
	defer span.End()

	composed, err := BuildPrompt(cfg, text)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "prompt build failed")
		return "", fmt.Errorf("%w: build prompt: %w", apperrors.ErrInvalidInput, err)
	}

	attrs := []any{"style", string(cfg.Style), "prompt_chars", len(composed)}
	if p.tokens != nil {
		attrs = append(attrs, "prompt_tokens_est", p.tokens.Count(composed))
	}
	p.logger.Info("generating summary", attrs...)
	span.SetAttributes(attribute.Int("summary.prompt_chars", len(composed)))

	resp, err := p.client.Invoke(ctx, composed)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "backend invocation failed")
		return "", fmt.Errorf("%w: %w", apperrors.ErrBackend, err)
	}

	out, err := provider.Normalize(resp)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "malformed response")
		return "", err
	}

	p.logger.Info("summary generated", "chars", len(out))
	return out, nil
}
