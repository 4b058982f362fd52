package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTagFilter_IsEmpty(t *testing.T) {
	tests := []struct {
		name     string
		filter   TagFilter
		expected bool
	}{
		{name: "zero value", filter: TagFilter{}, expected: true},
		{name: "empty slices", filter: TagFilter{L1Include: []string{}, L3Include: []string{}}, expected: true},
		{name: "l1 include set", filter: TagFilter{L1Include: []string{"Tech"}}, expected: false},
		{name: "l1 exclude set", filter: TagFilter{L1Exclude: []string{"Society"}}, expected: false},
		{name: "l2 include set", filter: TagFilter{L2Include: []string{"Go"}}, expected: false},
		{name: "l2 exclude set", filter: TagFilter{L2Exclude: []string{"Web"}}, expected: false},
		{name: "l3 include set", filter: TagFilter{L3Include: []string{"OpenAI"}}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.filter.IsEmpty())
		})
	}
}
