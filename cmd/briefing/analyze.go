package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/briefing-team/briefing-analyzer/internal/adapter/presenter"
	"github.com/briefing-team/briefing-analyzer/internal/usecase/analysis"
	"github.com/briefing-team/briefing-analyzer/pkg/config"
)

func newAnalyzeCmd() *cobra.Command {
	var (
		file   string
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze a briefing batch from a file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(file, format, output)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "path to the batch file (required)")
	cmd.Flags().StringVar(&format, "format", "json", "input format: csv or json")
	cmd.Flags().StringVarP(&output, "output", "o", "markdown", "output: markdown or json")
	cmd.MarkFlagRequired("file")

	return cmd
}

func runAnalyze(file, formatName, output string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	format, err := analysis.ParseFormat(formatName)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", file, err)
	}

	pipeline := analysis.NewPipeline(cfg.Analysis, nil)
	result, err := pipeline.Analyze(context.Background(), string(data), format)
	if err != nil {
		return err
	}

	if result.State == analysis.StateRejected {
		// Rejected batches always render the validation report; the caller
		// must correct every listed field and resubmit.
		fmt.Print(presenter.RenderValidationReport(result.Report))
		os.Exit(1)
	}

	switch output {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result.Batch)
	default:
		fmt.Print(presenter.RenderBatchReport(result.Batch, cfg.Analysis.Keywords))
	}
	return nil
}
