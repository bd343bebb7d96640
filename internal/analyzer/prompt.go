package analyzer

import (
	"encoding/json"
	"fmt"
)

// Caps keep the prompt bounded regardless of page size.
const (
	maxPromptMeta = 4000
	maxPromptText = 8000
)

// promptTemplate names the exact report-field contract the provider must
// fill. Field names match the InsightReport JSON tags.
const promptTemplate = "Analyze the following website content and metadata. " +
	"Return a concise JSON object with keys: industry, key_products (array), " +
	"target_audience, website_strength, growth_opportunities (array), competitors (array), " +
	"seo_summary, sentiment_summary, raw_findings (object), report_text.\n\n" +
	"Metadata: %s\n\n" +
	"Content (truncated): %s\n\n" +
	"Respond ONLY with valid JSON, no code fences."

// BuildPrompt serializes page text and metadata into a bounded instruction
// payload: metadata JSON capped at 4000 chars, raw text at 8000.
func BuildPrompt(text string, meta map[string]any) string {
	metaJSON, err := json.Marshal(meta)
	if err != nil {
		metaJSON = []byte("{}")
	}
	return fmt.Sprintf(promptTemplate, truncate(string(metaJSON), maxPromptMeta), truncate(text, maxPromptText))
}
