package tool

import (
	"context"
	"fmt"

	"github.com/sweetpotato0/docsum/document"
	"github.com/sweetpotato0/docsum/summary"
)

// Builtins wires the summarization pipeline into the registry as callable
// tools, the explicit registration performed once at process start.
type Builtins struct {
	Pipeline  *summary.Pipeline
	Extractor document.Extractor

	// Optional description overrides, mirroring the configurable tool
	// descriptions hosts may want to surface.
	ReadDescription      string
	SummarizeDescription string
}

// Register adds the read_document, summarize_text and summarize_document
// tools to the registry.
func (b Builtins) Register(reg *Registry) error {
	if b.Pipeline == nil {
		return fmt.Errorf("builtins require a pipeline")
	}
	if b.Extractor == nil {
		b.Extractor = document.NewPDFExtractor(nil)
	}

	readDesc := b.ReadDescription
	if readDesc == "" {
		readDesc = "Reads a PDF file and extracts text content"
	}
	sumDesc := b.SummarizeDescription
	if sumDesc == "" {
		sumDesc = "Generates a detailed summary of the provided text"
	}

	tools := []*Tool{
		{
			Name:        "read_document",
			Description: readDesc,
			Parameters: []Parameter{
				{Name: "file_path", Type: "string", Description: "Path to the PDF file", Required: true},
				{Name: "max_pages", Type: "number", Description: "Maximum number of pages to read (all pages if omitted)"},
			},
			Handler: b.readDocument,
		},
		{
			Name:        "summarize_text",
			Description: sumDesc,
			Parameters:  summaryParameters(false),
			Handler:     b.summarizeText,
		},
		{
			Name:        "summarize_document",
			Description: "Reads a PDF file and generates a styled summary of its content",
			Parameters:  summaryParameters(true),
			Handler:     b.summarizeDocument,
		},
	}

	for _, t := range tools {
		if err := reg.Register(t); err != nil {
			return err
		}
	}
	return nil
}

func summaryParameters(forDocument bool) []Parameter {
	params := []Parameter{
		{
			// Not an enum on purpose: unrecognized styles resolve to
			// comprehensive instead of failing the call.
			Name:        "summary_style",
			Type:        "string",
			Description: "Style of summary: 'brief', 'comprehensive', or 'detailed'",
			Default:     "comprehensive",
		},
		{
			Name:        "target_length",
			Type:        "number",
			Description: "Target maximum length for the summary in words",
			Default:     500,
		},
		{
			Name:        "include_key_points",
			Type:        "boolean",
			Description: "Whether to include bullet points of key insights",
			Default:     true,
		},
	}
	if forDocument {
		params = append([]Parameter{
			{Name: "file_path", Type: "string", Description: "Path to the PDF file", Required: true},
			{Name: "max_pages", Type: "number", Description: "Maximum number of pages to read (all pages if omitted)"},
		}, params...)
	} else {
		params = append([]Parameter{
			{Name: "text", Type: "string", Description: "The text content to summarize", Required: true},
		}, params...)
	}
	return params
}

func (b Builtins) readDocument(ctx context.Context, args map[string]interface{}) (string, error) {
	path := stringArg(args, "file_path", "")
	extracted, err := b.Extractor.Extract(ctx, document.Reference(path), intArg(args, "max_pages", 0))
	if err != nil {
		return "", err
	}
	if extracted.Empty() {
		return summary.NoContentSentinel, nil
	}
	return extracted.Text(), nil
}

func (b Builtins) summarizeText(ctx context.Context, args map[string]interface{}) (string, error) {
	return b.Pipeline.SummarizeText(ctx, stringArg(args, "text", ""), configFromArgs(args))
}

func (b Builtins) summarizeDocument(ctx context.Context, args map[string]interface{}) (string, error) {
	path := stringArg(args, "file_path", "")
	return b.Pipeline.SummarizeDocument(ctx, document.Reference(path), configFromArgs(args))
}

func configFromArgs(args map[string]interface{}) summary.Config {
	return summary.Config{
		Style:            summary.Style(stringArg(args, "summary_style", string(summary.StyleComprehensive))),
		TargetLength:     intArg(args, "target_length", 500),
		IncludeKeyPoints: boolArg(args, "include_key_points", true),
		MaxPages:         intArg(args, "max_pages", 0),
	}
}

func stringArg(args map[string]interface{}, name, fallback string) string {
	if v, ok := args[name].(string); ok {
		return v
	}
	return fallback
}

// intArg accepts both float64 (JSON numbers) and int values.
func intArg(args map[string]interface{}, name string, fallback int) int {
	switch v := args[name].(type) {
	case float64:
		return int(v)
	case int:
		return v
	default:
		return fallback
	}
}

func boolArg(args map[string]interface{}, name string, fallback bool) bool {
	if v, ok := args[name].(bool); ok {
		return v
	}
	return fallback
}
