package handlers

import (
	"fmt"

	"github.com/spf13/cobra"

	"autonews/internal/config"
	"autonews/internal/llm"
	"autonews/internal/logger"
	"autonews/internal/pipeline"
	"autonews/internal/report"
	"autonews/internal/sources"
	"autonews/internal/summarize"
)

// NewRunCmd creates the command that executes the full pipeline.
func NewRunCmd() *cobra.Command {
	var (
		inputDir      string
		outputPath    string
		withSummaries bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the full pipeline and write the results report",
		Long: `Run loads the input corpus, filters it for automotive relevance, classifies
each relevant article into one of the eight fixed categories, groups duplicate
coverage into stories and writes the results report as JSON.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			if inputDir != "" {
				cfg.App.InputDir = inputDir
			}
			if outputPath != "" {
				cfg.Output.Path = outputPath
			}
			if cmd.Flags().Changed("summarize") {
				cfg.Summarize.Enabled = withSummaries
			}
			if err := config.Validate(cfg); err != nil {
				return err
			}

			ctx := cmd.Context()

			client, err := llm.NewClient(ctx, cfg.Embedding.APIKey,
				llm.WithEmbeddingModel(cfg.Embedding.Model),
				llm.WithDimensions(cfg.Embedding.Dimensions),
				llm.WithSummaryModel(cfg.Summarize.Model))
			if err != nil {
				return err
			}

			summarizer := summarize.Disabled()
			if cfg.Summarize.Enabled {
				summarizer = client
			}

			p := pipeline.New(cfg, sources.NewLoader(), client, summarizer)
			result, err := p.Run(ctx)
			if err != nil {
				logger.Error("Pipeline failed", err)
				return err
			}

			if err := report.WriteJSON(result, cfg.Output.Path); err != nil {
				return err
			}

			stories := 0
			for _, cat := range result.Categories {
				stories += cat.UniqueStories
			}
			fmt.Printf("Input articles:    %d\n", result.Stats.TotalInput)
			fmt.Printf("Automotive:        %d\n", result.Stats.TotalAutomobile)
			fmt.Printf("Unique sources:    %d\n", result.Stats.UniqueSources)
			fmt.Printf("Categories:        %d\n", len(result.Categories))
			fmt.Printf("Unique stories:    %d\n", stories)
			fmt.Printf("Report written to: %s\n", cfg.Output.Path)

			return nil
		},
	}

	cmd.Flags().StringVar(&inputDir, "input", "", "directory of input article JSON files (overrides config)")
	cmd.Flags().StringVar(&outputPath, "output", "", "path for the results report (overrides config)")
	cmd.Flags().BoolVar(&withSummaries, "summarize", false, "generate story summaries with the configured model")

	return cmd
}
