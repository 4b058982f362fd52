// Package taxonomy defines the canonical tag vocabulary: a closed L1 set of
// broad domains, a closed L2 set of topics grouped by category, and the open
// L3 long tail. Slug normalization and level/category classification are
// pure functions; Resolver adds the job-local store cache.
package taxonomy

import (
	"regexp"
	"strings"
)

// L1 is the closed set of broad domain tags.
var L1 = []string{"Tech", "Business", "Science", "Society"}

// L2ByCategory is the closed set of topic tags, grouped by category.
var L2ByCategory = map[string][]string{
	"Region":      {"EU", "USA", "China", "Canada", "India", "Germany", "France", "Netherlands", "UK"},
	"Tech Stacks": {"Python", "Rust", "Go", "JavaScript", "Linux"},
	"Tech Topics": {"AI/ML", "Web", "Systems", "Security", "Mobile", "DevOps", "Data", "Cloud", "Open Source", "Hardware"},
	"Business":    {"Startups", "Finance", "Career", "Products", "Legal", "Marketing"},
	"Science":     {"Research", "Space", "Biology", "Physics"},
}

// Categories lists the L2 category names in display order.
var Categories = []string{"Region", "Tech Stacks", "Tech Topics", "Business", "Science"}

// L2Names returns the canonical L2 tag names in category order.
func L2Names() []string {
	names := make([]string, 0, len(l2Category))
	for _, category := range Categories {
		names = append(names, L2ByCategory[category]...)
	}
	return names
}

var (
	l1Set      map[string]struct{}
	l2Category map[string]string
)

func init() {
	l1Set = make(map[string]struct{}, len(L1))
	for _, name := range L1 {
		l1Set[name] = struct{}{}
	}
	l2Category = make(map[string]string)
	for category, names := range L2ByCategory {
		for _, name := range names {
			l2Category[name] = category
		}
	}
}

var slugRe = regexp.MustCompile(`[^a-z0-9]+`)

// NormalizeSlug lowercases the name, collapses every non-alphanumeric run
// to a single '-', and trims leading/trailing dashes. Idempotent.
func NormalizeSlug(name string) string {
	slug := slugRe.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
	return strings.Trim(slug, "-")
}

// LevelFor classifies a tag name: 1 for canonical L1, 2 for canonical L2,
// 3 for everything else. Membership is exact and case-sensitive.
func LevelFor(name string) int {
	if _, ok := l1Set[name]; ok {
		return 1
	}
	if _, ok := l2Category[name]; ok {
		return 2
	}
	return 3
}

// CategoryFor returns the category of a canonical L2 tag, or "" otherwise.
func CategoryFor(name string) string {
	return l2Category[name]
}

// TagSpec carries the computed attributes a new tag row is created with.
type TagSpec struct {
	Name     string
	Slug     string
	Level    int
	Category string
	IsMisc   bool
}

// SpecFor computes the storage attributes for a tag name.
func SpecFor(name string) TagSpec {
	level := LevelFor(name)
	return TagSpec{
		Name:     name,
		Slug:     NormalizeSlug(name),
		Level:    level,
		Category: CategoryFor(name),
		IsMisc:   level >= 3,
	}
}
