package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewClient(t *testing.T) {
	assert.Nil(t, NewClient("", nil), "empty key disables model access")
	assert.NotNil(t, NewClient("test-key", nil))
}

func TestClient_Enabled(t *testing.T) {
	var absent *Client
	assert.False(t, absent.Enabled())
	assert.True(t, NewClient("test-key", nil).Enabled())
}
