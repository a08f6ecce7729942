package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "briefing",
		Short: "Investor briefing validation and thematic scoring",
		Long: "briefing ingests batches of investor-briefing records (CSV or JSON), " +
			"validates them against the briefing schema and computes per-record " +
			"thematic metrics and recommendations.",
		SilenceUsage: true,
	}

	root.AddCommand(newServeCmd())
	root.AddCommand(newAnalyzeCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
