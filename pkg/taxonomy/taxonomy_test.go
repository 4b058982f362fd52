package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSlug(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "simple name lowercases", input: "Go", expected: "go"},
		{name: "slash collapses to dash", input: "AI/ML", expected: "ai-ml"},
		{name: "spaces collapse to dash", input: "Open Source", expected: "open-source"},
		{name: "surrounding whitespace trimmed", input: "  Rust  ", expected: "rust"},
		{name: "punctuation run collapses to one dash", input: "Node.js", expected: "node-js"},
		{name: "trailing punctuation trimmed", input: "C++", expected: "c"},
		{name: "leading and trailing dashes trimmed", input: "--hello--", expected: "hello"},
		{name: "digits survive", input: "Web3", expected: "web3"},
		{name: "empty input", input: "", expected: ""},
		{name: "only punctuation", input: "!!!", expected: ""},
		{name: "already normalized is unchanged", input: "open-source", expected: "open-source"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeSlug(tt.input)
			assert.Equal(t, tt.expected, got)

			// Normalization is idempotent.
			assert.Equal(t, got, NormalizeSlug(got))
		})
	}
}

func TestLevelFor(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{name: "L1 domain", input: "Tech", expected: 1},
		{name: "Business is the L1 tag, not the L2 category", input: "Business", expected: 1},
		{name: "L2 tech stack", input: "Python", expected: 2},
		{name: "L2 with punctuation", input: "AI/ML", expected: 2},
		{name: "L2 region", input: "EU", expected: 2},
		{name: "unknown name is L3", input: "OpenAI", expected: 3},
		{name: "membership is case-sensitive", input: "tech", expected: 3},
		{name: "empty name is L3", input: "", expected: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, LevelFor(tt.input))
		})
	}
}

func TestCategoryFor(t *testing.T) {
	assert.Equal(t, "Tech Stacks", CategoryFor("Python"))
	assert.Equal(t, "Region", CategoryFor("EU"))
	assert.Equal(t, "Science", CategoryFor("Space"))

	// L1 tags and unknown names have no category.
	assert.Equal(t, "", CategoryFor("Tech"))
	assert.Equal(t, "", CategoryFor("OpenAI"))
}

func TestSpecFor(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected TagSpec
	}{
		{
			name:  "L1 tag",
			input: "Tech",
			expected: TagSpec{
				Name:  "Tech",
				Slug:  "tech",
				Level: 1,
			},
		},
		{
			name:  "L2 tag carries its category",
			input: "AI/ML",
			expected: TagSpec{
				Name:     "AI/ML",
				Slug:     "ai-ml",
				Level:    2,
				Category: "Tech Topics",
			},
		},
		{
			name:  "L3 tag is misc",
			input: "OpenAI",
			expected: TagSpec{
				Name:   "OpenAI",
				Slug:   "openai",
				Level:  3,
				IsMisc: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SpecFor(tt.input))
		})
	}
}

func TestL2Names(t *testing.T) {
	names := L2Names()

	want := 0
	for _, category := range Categories {
		want += len(L2ByCategory[category])
	}
	assert.Len(t, names, want)

	// Category order: Region entries come first.
	assert.Equal(t, "EU", names[0])

	// Every name classifies as level 2, and no name repeats.
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		assert.Equal(t, 2, LevelFor(name), "L2Names should only contain canonical L2 tags: %s", name)
		_, dup := seen[name]
		assert.False(t, dup, "duplicate L2 name: %s", name)
		seen[name] = struct{}{}
	}
}
