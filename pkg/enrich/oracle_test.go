package enrich

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hnscribe/hnscribe/pkg/llm"
)

func TestNewLLMOracle(t *testing.T) {
	t.Run("no model access", func(t *testing.T) {
		oracle, err := NewLLMOracle(nil, "gpt-4o-mini")
		require.NoError(t, err, "a missing API key is not an error")
		assert.Nil(t, oracle)
	})

	t.Run("configured client", func(t *testing.T) {
		client := llm.NewClient("test-key", nil)
		oracle, err := NewLLMOracle(client, "gpt-4o-mini")
		require.NoError(t, err)
		assert.NotNil(t, oracle)
	})
}
