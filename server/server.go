package server

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/sweetpotato0/docsum/document"
	"github.com/sweetpotato0/docsum/summary"
)

// Version is stamped at build time.
var Version = "0.1.0"

// New builds the MCP server exposing the extraction and summarization
// operations to a host orchestrator.
func New(name string, pipe *summary.Pipeline, extractor document.Extractor) *mcp.Server {
	if extractor == nil {
		extractor = document.NewPDFExtractor(nil)
	}

	server := mcp.NewServer(&mcp.Implementation{
		Name:    name,
		Version: Version,
		Title:   "docsum document summarization server",
	}, nil)

	addReadDocumentTool(server, extractor)
	addSummarizeTextTool(server, pipe)
	addSummarizeDocumentTool(server, pipe)

	return server
}

// RunStdio serves over stdio until the context is cancelled.
func RunStdio(ctx context.Context, server *mcp.Server) error {
	return server.Run(ctx, &mcp.StdioTransport{})
}

type summaryArgs struct {
	SummaryStyle     string `json:"summary_style,omitempty" jsonschema:"Style of summary: brief, comprehensive or detailed"`
	TargetLength     int    `json:"target_length,omitempty" jsonschema:"Target maximum length for the summary in words"`
	IncludeKeyPoints *bool  `json:"include_key_points,omitempty" jsonschema:"Whether to include bullet points of key insights"`
}

func (a summaryArgs) config() summary.Config {
	cfg := summary.DefaultConfig()
	if a.SummaryStyle != "" {
		cfg.Style = summary.Style(a.SummaryStyle)
	}
	// Zero means "not provided"; anything else, including invalid negative
	// values, flows through so Config.Validate reports it the same way the
	// registry path does.
	if a.TargetLength != 0 {
		cfg.TargetLength = a.TargetLength
	}
	if a.IncludeKeyPoints != nil {
		cfg.IncludeKeyPoints = *a.IncludeKeyPoints
	}
	return cfg
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}
}

func addReadDocumentTool(server *mcp.Server, extractor document.Extractor) {
	type args struct {
		FilePath string `json:"file_path" jsonschema:"Path to the PDF file"`
		MaxPages int    `json:"max_pages,omitempty" jsonschema:"Maximum number of pages to read (all pages if omitted)"`
	}

	mcp.AddTool(server, &mcp.Tool{
		Name:        "read_document",
		Description: "Reads a PDF file and extracts text content",
	}, func(ctx context.Context, req *mcp.CallToolRequest, a args) (*mcp.CallToolResult, any, error) {
		extracted, err := extractor.Extract(ctx, document.Reference(a.FilePath), a.MaxPages)
		if err != nil {
			return nil, nil, err
		}
		if extracted.Empty() {
			return textResult(summary.NoContentSentinel), nil, nil
		}
		return textResult(extracted.Text()), nil, nil
	})
}

func addSummarizeTextTool(server *mcp.Server, pipe *summary.Pipeline) {
	type args struct {
		Text string `json:"text" jsonschema:"The text content to summarize"`
		summaryArgs
	}

	mcp.AddTool(server, &mcp.Tool{
		Name:        "summarize_text",
		Description: "Generates a detailed summary of the provided text",
	}, func(ctx context.Context, req *mcp.CallToolRequest, a args) (*mcp.CallToolResult, any, error) {
		out, err := pipe.SummarizeText(ctx, a.Text, a.config())
		if err != nil {
			return nil, nil, err
		}
		return textResult(out), nil, nil
	})
}

func addSummarizeDocumentTool(server *mcp.Server, pipe *summary.Pipeline) {
	type args struct {
		FilePath string `json:"file_path" jsonschema:"Path to the PDF file"`
		MaxPages int    `json:"max_pages,omitempty" jsonschema:"Maximum number of pages to read (all pages if omitted)"`
		summaryArgs
	}

	mcp.AddTool(server, &mcp.Tool{
		Name:        "summarize_document",
		Description: "Reads a PDF file and generates a styled summary of its content",
	}, func(ctx context.Context, req *mcp.CallToolRequest, a args) (*mcp.CallToolResult, any, error) {
		cfg := a.config()
		cfg.MaxPages = a.MaxPages
		out, err := pipe.SummarizeDocument(ctx, document.Reference(a.FilePath), cfg)
		if err != nil {
			return nil, nil, err
		}
		return textResult(out), nil, nil
	})
}
