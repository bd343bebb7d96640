package main

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/insight-cli/internal/model"
)

var (
	analyzeDescription string
	analyzeMaxPages    int
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [url]",
	Short: "Analyze a business website or description",
	Long:  "Produces a JSON insight report for a website URL, or for a free-text business description with --description.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Validate("analyze"); err != nil {
			return err
		}

		url := ""
		if len(args) == 1 {
			url = args[0]
		}
		if url == "" && analyzeDescription == "" {
			return eris.New("analyze: provide a URL argument or --description")
		}

		ctx := cmd.Context()
		a := buildAnalyzer(cfg)

		var report *model.InsightReport
		if url != "" {
			scraper := buildScraper(cfg, analyzeMaxPages)
			content := scraper.FetchSite(ctx, url)
			zap.L().Info("site fetched",
				zap.String("url", content.URL),
				zap.Int("text_len", len(content.Text)),
				zap.Int("links", len(content.Links)),
			)
			report = a.AnalyzeContent(ctx, content)
		} else {
			report = a.AnalyzeText(ctx, analyzeDescription, map[string]any{})
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return eris.Wrap(err, "analyze: encode report")
		}
		return nil
	},
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeDescription, "description", "", "free-text business description to analyze instead of a URL")
	analyzeCmd.Flags().IntVar(&analyzeMaxPages, "max-pages", 0, "pages to aggregate per site (default from config)")
	rootCmd.AddCommand(analyzeCmd)
}
