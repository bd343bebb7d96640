package analyzer

import (
	"encoding/json"
	"strings"

	"github.com/sells-group/insight-cli/internal/model"
)

// cleanJSON extracts a JSON object from text that may contain markdown
// code fences or surrounding prose. Returns "" when no object-looking span
// is present.
func cleanJSON(text string) string {
	text = strings.TrimSpace(text)

	// Strip a wrapping code fence, case-insensitively.
	fenced := false
	lower := strings.ToLower(text)
	if strings.HasPrefix(lower, "```json") {
		text = text[len("```json"):]
		fenced = true
	} else if strings.HasPrefix(lower, "```") {
		text = text[len("```"):]
		fenced = true
	}
	if fenced {
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
	}

	// Greedy span: first { through last }.
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return ""
	}
	return strings.TrimSpace(text[start : end+1])
}

// ParseReport decodes a provider reply into an InsightReport. The second
// return is false when no JSON object is found or decoding fails; that is
// the no-result signal, not an error, since the caller treats absence as a
// fallback trigger.
func ParseReport(text string) (*model.InsightReport, bool) {
	cleaned := cleanJSON(text)
	if cleaned == "" {
		return nil, false
	}

	var report model.InsightReport
	if err := json.Unmarshal([]byte(cleaned), &report); err != nil {
		return nil, false
	}
	return &report, true
}
