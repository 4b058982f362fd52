// Package enrich generates summaries and tags for scraped stories.
package enrich

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"

	"github.com/hnscribe/hnscribe/pkg/llm"
	"github.com/hnscribe/hnscribe/pkg/models"
)

// Oracle produces the summary and tag extraction for one story.
// A successful Analyze always returns a non-nil analysis.
type Oracle interface {
	Analyze(ctx context.Context, title, url string) (*models.StoryAnalysis, error)
}

// LLMOracle asks a chat model for a schema-constrained StoryAnalysis
type LLMOracle struct {
	llm    *llm.Client
	model  string
	schema *jsonschema.Definition
}

// NewLLMOracle builds an oracle on client, or returns nil when model
// access is not configured.
func NewLLMOracle(client *llm.Client, model string) (*LLMOracle, error) {
	if !client.Enabled() {
		return nil, nil
	}
	schema, err := jsonschema.GenerateSchemaForType(models.StoryAnalysis{})
	if err != nil {
		return nil, fmt.Errorf("failed to build analysis schema: %w", err)
	}
	return &LLMOracle{
		llm:    client,
		model:  model,
		schema: schema,
	}, nil
}

// Analyze implements Oracle
func (o *LLMOracle) Analyze(ctx context.Context, title, url string) (*models.StoryAnalysis, error) {
	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleUser, Content: analysisPrompt(title, url)},
	}

	var analysis models.StoryAnalysis
	if err := o.llm.CompleteJSON(ctx, o.model, "story_analysis", o.schema, messages, &analysis); err != nil {
		return nil, err
	}
	return &analysis, nil
}
