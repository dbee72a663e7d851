package main

import (
	"github.com/spf13/cobra"

	"github.com/sweetpotato0/docsum/server"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the summarization tools over MCP stdio",
		Long: `Serve registers the read_document, summarize_text and summarize_document
tools with an MCP server and speaks the protocol over stdin/stdout until
the host disconnects.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			pipe, cleanup, err := buildPipeline(ctx)
			if err != nil {
				return err
			}
			defer cleanup(ctx)

			srv := server.New("docsum", pipe, nil)
			return server.RunStdio(ctx, srv)
		},
	}
}
