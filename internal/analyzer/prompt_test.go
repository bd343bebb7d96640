package analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt("page text", map[string]any{"title": "Acme"})

	assert.Contains(t, prompt, "Respond ONLY with valid JSON")
	assert.Contains(t, prompt, `"title":"Acme"`)
	assert.Contains(t, prompt, "page text")
	assert.Contains(t, prompt, "key_products (array)")
	assert.Contains(t, prompt, "report_text")
}

func TestBuildPrompt_CapsText(t *testing.T) {
	long := strings.Repeat("x", maxPromptText+5000)
	prompt := BuildPrompt(long, nil)

	assert.Less(t, len(prompt), maxPromptText+2000)
}

func TestBuildPrompt_CapsMeta(t *testing.T) {
	meta := map[string]any{"big": strings.Repeat("y", maxPromptMeta+5000)}
	prompt := BuildPrompt("", meta)

	assert.Less(t, len(prompt), maxPromptMeta+2000)
}
