package enrich

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalysisPrompt(t *testing.T) {
	prompt := analysisPrompt("Show HN: Things", "https://example.com/things")

	assert.Contains(t, prompt, "Title: Show HN: Things")
	assert.Contains(t, prompt, "URL: https://example.com/things")
	assert.Contains(t, prompt, "Tech, Business, Science, Society", "L1 vocabulary is embedded")
	assert.Contains(t, prompt, "OpenAI (not GPT-4)")
}

func TestAnalysisPrompt_NoURL(t *testing.T) {
	prompt := analysisPrompt("Ask HN: Anything", "")

	assert.Contains(t, prompt, "URL: No URL provided")
}
