package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeMergeData(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		raw := json.RawMessage(`{"source_tags":["Postgres","postgresql"],"target_tag":"PostgreSQL"}`)
		d, err := DecodeMergeData(raw)
		require.NoError(t, err)
		assert.Equal(t, []string{"Postgres", "postgresql"}, d.SourceTags)
		assert.Equal(t, "PostgreSQL", d.TargetTag)
	})

	t.Run("missing target rejected", func(t *testing.T) {
		_, err := DecodeMergeData(json.RawMessage(`{"source_tags":["a"]}`))
		require.Error(t, err)
		assert.ErrorContains(t, err, "source_tags and target_tag")
	})

	t.Run("empty sources rejected", func(t *testing.T) {
		_, err := DecodeMergeData(json.RawMessage(`{"source_tags":[],"target_tag":"x"}`))
		require.Error(t, err)
	})

	t.Run("malformed json rejected", func(t *testing.T) {
		_, err := DecodeMergeData(json.RawMessage(`{"source_tags":`))
		require.Error(t, err)
		assert.ErrorContains(t, err, "invalid merge_tags payload")
	})
}

func TestDecodeCreateData(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		d, err := DecodeCreateData(json.RawMessage(`{"name":"Quantum","category":"Science"}`))
		require.NoError(t, err)
		assert.Equal(t, "Quantum", d.Name)
		assert.Equal(t, "Science", d.Category)
	})

	t.Run("category is optional", func(t *testing.T) {
		d, err := DecodeCreateData(json.RawMessage(`{"name":"Quantum"}`))
		require.NoError(t, err)
		assert.Empty(t, d.Category)
	})

	t.Run("missing name rejected", func(t *testing.T) {
		_, err := DecodeCreateData(json.RawMessage(`{"category":"Science"}`))
		require.Error(t, err)
		assert.ErrorContains(t, err, "requires name")
	})
}

func TestDecodeRetireData(t *testing.T) {
	t.Run("replacement is optional", func(t *testing.T) {
		d, err := DecodeRetireData(json.RawMessage(`{"name":"old-tag"}`))
		require.NoError(t, err)
		assert.Equal(t, "old-tag", d.Name)
		assert.Empty(t, d.Replacement)
	})

	t.Run("with replacement", func(t *testing.T) {
		d, err := DecodeRetireData(json.RawMessage(`{"name":"old-tag","replacement":"new-tag"}`))
		require.NoError(t, err)
		assert.Equal(t, "new-tag", d.Replacement)
	})

	t.Run("missing name rejected", func(t *testing.T) {
		_, err := DecodeRetireData(json.RawMessage(`{}`))
		require.Error(t, err)
	})
}
