// Package llm wraps the OpenAI chat completions API with schema-constrained
// JSON output.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"

	"github.com/hnscribe/hnscribe/pkg/metrics"
)

// Client wraps the OpenAI API client. A nil *Client is valid and means
// model access is not configured; callers check Enabled before use.
type Client struct {
	api     *openai.Client
	metrics *metrics.CSVLogger
}

// NewClient creates a client, or returns nil when apiKey is empty
func NewClient(apiKey string, metricsLog *metrics.CSVLogger) *Client {
	if apiKey == "" {
		return nil
	}
	return &Client{
		api:     openai.NewClient(apiKey),
		metrics: metricsLog,
	}
}

// Enabled reports whether model access is configured
func (c *Client) Enabled() bool {
	return c != nil
}

// CompleteJSON sends messages to model and decodes the schema-constrained
// response into out. schemaName doubles as the metrics operation name.
func (c *Client) CompleteJSON(ctx context.Context, model, schemaName string, schema *jsonschema.Definition, messages []openai.ChatCompletionMessage, out any) error {
	start := time.Now()

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    model,
		Messages: messages,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   schemaName,
				Schema: schema,
				Strict: true,
			},
		},
	})
	if err != nil {
		return fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return fmt.Errorf("chat completion returned no choices")
	}

	content := resp.Choices[0].Message.Content
	if err := json.Unmarshal([]byte(content), out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", schemaName, err)
	}

	c.metrics.Record(schemaName, time.Since(start), 1, resp.Usage.TotalTokens)
	return nil
}
