package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sweetpotato0/docsum/document"
	"github.com/sweetpotato0/docsum/summary"
)

func newReadCmd() *cobra.Command {
	var maxPages int

	cmd := &cobra.Command{
		Use:   "read <file>",
		Short: "Extract text from a PDF without summarizing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			extractor := document.NewPDFExtractor(nil)
			extracted, err := extractor.Extract(cmd.Context(), document.Reference(args[0]), maxPages)
			if err != nil {
				return err
			}
			if extracted.Empty() {
				fmt.Println(summary.NoContentSentinel)
				return nil
			}
			fmt.Println(extracted.Text())
			return nil
		},
	}

	cmd.Flags().IntVar(&maxPages, "max-pages", 0, "Maximum number of pages to read (0 for all)")
	return cmd
}
