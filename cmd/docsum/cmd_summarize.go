package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sweetpotato0/docsum/document"
	"github.com/sweetpotato0/docsum/summary"
)

func newSummarizeCmd() *cobra.Command {
	var (
		rawText   string
		style     string
		length    int
		keyPoints bool
		maxPages  int
	)

	cmd := &cobra.Command{
		Use:   "summarize [file]",
		Short: "Summarize a PDF, HTML file or raw text",
		Long: `Summarize extracts text from the given document and produces a styled
summary. With --text the extraction stage is skipped and the provided
string is summarized directly. HTML files are flattened to plain text
before summarization.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if rawText == "" && len(args) == 0 {
				return fmt.Errorf("provide a file argument or --text")
			}

			ctx := cmd.Context()
			pipe, cleanup, err := buildPipeline(ctx)
			if err != nil {
				return err
			}
			defer cleanup(ctx)

			cfg := summary.Config{
				Style:            summary.Style(style),
				TargetLength:     length,
				IncludeKeyPoints: keyPoints,
				MaxPages:         maxPages,
			}

			var out string
			switch {
			case rawText != "":
				out, err = pipe.SummarizeText(ctx, rawText, cfg)
			case isHTMLPath(args[0]):
				var text string
				text, err = document.ExtractHTMLFile(document.Reference(args[0]))
				if err == nil {
					out, err = pipe.SummarizeText(ctx, text, cfg)
				}
			default:
				out, err = pipe.SummarizeDocument(ctx, document.Reference(args[0]), cfg)
			}
			if err != nil {
				return err
			}

			fmt.Println(out)
			return nil
		},
	}

	cmd.Flags().StringVar(&rawText, "text", "", "Summarize this raw text instead of a file")
	cmd.Flags().StringVar(&style, "style", "comprehensive", "Summary style: brief, comprehensive or detailed")
	cmd.Flags().IntVar(&length, "length", 500, "Target summary length in words")
	cmd.Flags().BoolVar(&keyPoints, "key-points", true, "Include bullet points of key insights")
	cmd.Flags().IntVar(&maxPages, "max-pages", 0, "Maximum number of pages to read (0 for all)")

	return cmd
}

func isHTMLPath(path string) bool {
	lower := strings.ToLower(path)
	return strings.HasSuffix(lower, ".html") || strings.HasSuffix(lower, ".htm")
}
