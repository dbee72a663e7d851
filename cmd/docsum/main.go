package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "docsum",
		Short: "Document extraction and LLM summarization pipeline",
		Long: `docsum converts long-form source material (PDF or raw text) into a
styled, length-bounded summary using a generative text backend.

It can run as a one-shot CLI or serve its operations to an MCP host.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newSummarizeCmd(),
		newReadCmd(),
		newServeCmd(),
		newVersionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the docsum version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}
}
