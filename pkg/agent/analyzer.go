package agent

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/hnscribe/hnscribe/pkg/config"
	"github.com/hnscribe/hnscribe/pkg/models"
	"github.com/hnscribe/hnscribe/pkg/services"
)

// Taxonomy health thresholds. An L1 tag owning more than 30% of windowed
// stories (or a sliver under 5%) signals drift; an L2 category holding
// more than 15 tags is due for consolidation.
const (
	overrepresentedPct   = 30.0
	underrepresentedPct  = 5.0
	bloatedCategoryLimit = 15
	duplicateThreshold   = 0.85
)

// Analyzer measures tag health over a rolling window and reports the
// problems the proposer knows how to act on.
type Analyzer struct {
	tags        *services.TagService
	stories     *services.StoryService
	windowDays  int
	minTagUsage int
}

// NewAnalyzer creates an analyzer with thresholds taken from config.
func NewAnalyzer(tags *services.TagService, stories *services.StoryService, cfg *config.Config) *Analyzer {
	return &Analyzer{
		tags:        tags,
		stories:     stories,
		windowDays:  cfg.AgentAnalysisWindowDays,
		minTagUsage: cfg.AgentMinTagUsage,
	}
}

// Analyze builds the full taxonomy health report for the current window.
func (a *Analyzer) Analyze(ctx context.Context) (*models.TaxonomyAnalysis, error) {
	cutoff := time.Now().AddDate(0, 0, -a.windowDays)

	stats, err := a.tags.UsageStatsSince(ctx, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to load tag usage stats: %w", err)
	}
	totalStories, err := a.stories.CountStoriesSince(ctx, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to count stories in window: %w", err)
	}
	orphans, err := a.stories.CountOrphanStories(ctx, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to count orphan stories: %w", err)
	}

	analysis := &models.TaxonomyAnalysis{
		WindowDays:          a.windowDays,
		GeneratedAt:         time.Now().UTC(),
		TotalTags:           len(stats),
		TotalStories:        totalStories,
		UnevenDistribution:  unevenDistribution(stats, totalStories),
		OrphanStories:       orphans,
		BloatedCategories:   bloatedCategories(stats),
		SparseTags:          sparseTags(stats, a.minTagUsage),
		DuplicateCandidates: duplicateCandidates(stats),
	}

	slog.Info("Taxonomy analysis complete",
		"window_days", a.windowDays,
		"uneven", len(analysis.UnevenDistribution),
		"orphans", analysis.OrphanStories,
		"bloated", len(analysis.BloatedCategories),
		"sparse", len(analysis.SparseTags),
		"duplicates", len(analysis.DuplicateCandidates))
	return analysis, nil
}

// unevenDistribution flags L1 tags whose share of windowed stories falls
// outside the healthy band. Tags with zero windowed usage are not flagged
// as underrepresented; silence is handled by the sparse check instead.
func unevenDistribution(stats []models.TagStat, totalStories int) []models.DistributionIssue {
	issues := []models.DistributionIssue{}
	if totalStories == 0 {
		return issues
	}
	for _, st := range stats {
		if st.Level != 1 {
			continue
		}
		pct := float64(st.RecentCount) / float64(totalStories) * 100
		switch {
		case pct > overrepresentedPct:
			issues = append(issues, models.DistributionIssue{
				Tag:        st.Name,
				Issue:      "overrepresented",
				Percentage: round2(pct),
				StoryCount: st.RecentCount,
			})
		case st.RecentCount > 0 && pct < underrepresentedPct:
			issues = append(issues, models.DistributionIssue{
				Tag:        st.Name,
				Issue:      "underrepresented",
				Percentage: round2(pct),
				StoryCount: st.RecentCount,
			})
		}
	}
	return issues
}

// bloatedCategories groups L2 tags by category and flags categories over
// the tag limit. Categories come out name-sorted, tags usage-sorted.
func bloatedCategories(stats []models.TagStat) []models.BloatedCategory {
	byCategory := make(map[string][]models.TagUsage)
	for _, st := range stats {
		if st.Level != 2 || st.Category == nil || *st.Category == "" {
			continue
		}
		byCategory[*st.Category] = append(byCategory[*st.Category], models.TagUsage{
			Name:  st.Name,
			Count: st.RecentCount,
		})
	}

	names := make([]string, 0, len(byCategory))
	for name := range byCategory {
		names = append(names, name)
	}
	sort.Strings(names)

	bloated := []models.BloatedCategory{}
	for _, name := range names {
		tags := byCategory[name]
		if len(tags) <= bloatedCategoryLimit {
			continue
		}
		sort.SliceStable(tags, func(i, j int) bool {
			if tags[i].Count != tags[j].Count {
				return tags[i].Count > tags[j].Count
			}
			return tags[i].Name < tags[j].Name
		})
		bloated = append(bloated, models.BloatedCategory{
			Category: name,
			TagCount: len(tags),
			Tags:     tags,
		})
	}
	return bloated
}

// sparseTags returns non-L1 tags with windowed usage below the threshold,
// sorted by (level, recent count, name). L1 tags are canonical and never
// sparse by definition.
func sparseTags(stats []models.TagStat, minUsage int) []models.SparseTag {
	sparse := []models.SparseTag{}
	for _, st := range stats {
		if st.Level < 2 || st.RecentCount >= minUsage {
			continue
		}
		sparse = append(sparse, models.SparseTag{
			Name:        st.Name,
			Level:       st.Level,
			RecentCount: st.RecentCount,
		})
	}
	sort.SliceStable(sparse, func(i, j int) bool {
		if sparse[i].Level != sparse[j].Level {
			return sparse[i].Level < sparse[j].Level
		}
		if sparse[i].RecentCount != sparse[j].RecentCount {
			return sparse[i].RecentCount < sparse[j].RecentCount
		}
		return sparse[i].Name < sparse[j].Name
	})
	return sparse
}

// duplicateCandidates scans non-L1 tag pairs for near-identical names.
// The O(n^2) pass is fine at taxonomy scale (well under a thousand tags).
func duplicateCandidates(stats []models.TagStat) []models.DuplicatePair {
	var candidates []models.TagStat
	for _, st := range stats {
		if st.Level >= 2 {
			candidates = append(candidates, st)
		}
	}

	seen := make(map[string]struct{})
	pairs := []models.DuplicatePair{}
	for i, t1 := range candidates {
		for _, t2 := range candidates[i+1:] {
			lo, hi := t1.Name, t2.Name
			if lo > hi {
				lo, hi = hi, lo
			}
			key := lo + "\x00" + hi
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}

			ratio := similarity(strings.ToLower(t1.Name), strings.ToLower(t2.Name))
			if ratio <= duplicateThreshold {
				continue
			}
			pairs = append(pairs, models.DuplicatePair{
				Tag1:       t1.Name,
				Tag2:       t2.Name,
				Count1:     t1.RecentCount,
				Count2:     t2.RecentCount,
				Similarity: round3(ratio),
			})
		}
	}

	sort.SliceStable(pairs, func(i, j int) bool {
		if pairs[i].Similarity != pairs[j].Similarity {
			return pairs[i].Similarity > pairs[j].Similarity
		}
		return pairs[i].Tag1 < pairs[j].Tag1
	})
	return pairs
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
