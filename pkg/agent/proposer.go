package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"

	"github.com/hnscribe/hnscribe/pkg/config"
	"github.com/hnscribe/hnscribe/pkg/llm"
	"github.com/hnscribe/hnscribe/pkg/models"
	"github.com/hnscribe/hnscribe/pkg/taxonomy"
)

const (
	// Similarity above this bumps a duplicate merge to medium priority.
	highSimilarity = 0.9
	// At most this many sparse tags are sent to the oracle per run.
	sparseSampleLimit = 20
	// A review_category payload carries at most this many tags.
	reviewSampleTags = 10
)

const consolidationSystemPrompt = "You are a taxonomy expert. Analyze tag usage " +
	"and propose consolidations. Be conservative - only suggest merges when tags " +
	"are clearly related."

// Proposer turns analyzer findings into a bounded, prioritized list of
// proposal drafts. Duplicates and bloat convert mechanically; sparse tags
// go through the oracle for consolidation advice.
type Proposer struct {
	llm          *llm.Client
	model        string
	minTagUsage  int
	maxProposals int
	planSchema   *jsonschema.Definition
}

// NewProposer creates a proposer. Without model access the sparse-tag
// consultation is skipped and only mechanical drafts are produced.
func NewProposer(client *llm.Client, cfg *config.Config) (*Proposer, error) {
	p := &Proposer{
		llm:          client,
		model:        cfg.AgentModel,
		minTagUsage:  cfg.AgentMinTagUsage,
		maxProposals: cfg.AgentMaxProposalsPerRun,
	}
	if client.Enabled() {
		schema, err := jsonschema.GenerateSchemaForType(models.ConsolidationPlan{})
		if err != nil {
			return nil, fmt.Errorf("failed to build consolidation plan schema: %w", err)
		}
		p.planSchema = schema
	}
	return p, nil
}

// Propose converts the analysis into drafts sorted by (priority, affected
// stories) and truncated to the per-run limit. Oracle trouble degrades to
// zero sparse-tag drafts; it never fails the run.
func (p *Proposer) Propose(ctx context.Context, analysis *models.TaxonomyAnalysis) []models.ProposalDraft {
	drafts := mergeDraftsFromDuplicates(analysis.DuplicateCandidates)
	drafts = append(drafts, p.draftsFromSparse(ctx, analysis.SparseTags)...)
	drafts = append(drafts, reviewDraftsFromBloat(analysis.BloatedCategories)...)

	sortDrafts(drafts)
	if len(drafts) > p.maxProposals {
		drafts = drafts[:p.maxProposals]
	}
	return drafts
}

// mergeDraftsFromDuplicates folds each duplicate pair into the more-used
// name. Affected count is the loser's windowed usage.
func mergeDraftsFromDuplicates(pairs []models.DuplicatePair) []models.ProposalDraft {
	drafts := make([]models.ProposalDraft, 0, len(pairs))
	for _, pair := range pairs {
		target, source, affected := pair.Tag1, pair.Tag2, pair.Count2
		if pair.Count2 > pair.Count1 {
			target, source, affected = pair.Tag2, pair.Tag1, pair.Count1
		}
		priority := models.PriorityLow
		if pair.Similarity > highSimilarity {
			priority = models.PriorityMedium
		}
		drafts = append(drafts, models.ProposalDraft{
			Type:     models.ProposalMergeTags,
			Priority: priority,
			Reason: fmt.Sprintf("Tags '%s' and '%s' are %.0f%% similar. Merging into '%s' for consistency.",
				source, target, pair.Similarity*100, target),
			Data:            models.MergeData{SourceTags: []string{source}, TargetTag: target},
			AffectedStories: affected,
		})
	}
	return drafts
}

// draftsFromSparse asks the oracle for a consolidation plan over the
// first sparseSampleLimit tags and converts whatever comes back.
func (p *Proposer) draftsFromSparse(ctx context.Context, sparse []models.SparseTag) []models.ProposalDraft {
	if len(sparse) == 0 || !p.llm.Enabled() {
		return nil
	}
	sample := sparse
	if len(sample) > sparseSampleLimit {
		sample = sample[:sparseSampleLimit]
	}

	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: consolidationSystemPrompt},
		{Role: openai.ChatMessageRoleUser, Content: consolidationPrompt(sample, p.minTagUsage)},
	}
	var plan models.ConsolidationPlan
	if err := p.llm.CompleteJSON(ctx, p.model, "consolidation_plan", p.planSchema, messages, &plan); err != nil {
		slog.Warn("Tag consolidation oracle call failed", "error", err)
		return nil
	}
	return planDrafts(&plan)
}

// consolidationPrompt renders the sparse-tag sample plus the canonical
// vocabulary so the oracle merges into existing names where possible.
func consolidationPrompt(sample []models.SparseTag, minUsage int) string {
	payload, _ := json.MarshalIndent(sample, "", "  ")

	var b strings.Builder
	b.WriteString("Analyze these underused tags and suggest consolidations.\n\n")
	fmt.Fprintf(&b, "Current L1 categories: %s\n", strings.Join(taxonomy.L1, ", "))
	fmt.Fprintf(&b, "Current L2 tags: %s\n\n", strings.Join(taxonomy.L2Names(), ", "))
	fmt.Fprintf(&b, "Sparse tags (fewer than %d recent uses):\n%s\n\n", minUsage, payload)
	b.WriteString("For each sparse tag, decide if it should be:\n")
	b.WriteString("1. MERGED into an existing tag (if semantically similar)\n")
	b.WriteString("2. RETIRED (if too specific or no longer relevant)\n")
	b.WriteString("3. KEPT (if it serves a unique purpose)\n\n")
	b.WriteString("Only propose merges/retirements for tags that clearly overlap with existing ones.\n")
	b.WriteString("Be conservative - when in doubt, keep the tag.")
	return b.String()
}

// planDrafts converts an oracle plan into drafts, dropping entries with
// missing names. Oracle priorities are clamped to the known set.
func planDrafts(plan *models.ConsolidationPlan) []models.ProposalDraft {
	var drafts []models.ProposalDraft
	for _, m := range plan.MergeProposals {
		if len(m.SourceTags) == 0 || m.TargetTag == "" {
			continue
		}
		reason := m.Reason
		if strings.TrimSpace(reason) == "" {
			reason = fmt.Sprintf("Merge rarely used tags into '%s'.", m.TargetTag)
		}
		drafts = append(drafts, models.ProposalDraft{
			Type:     models.ProposalMergeTags,
			Priority: normalizePriority(m.Priority),
			Reason:   reason,
			Data:     models.MergeData{SourceTags: m.SourceTags, TargetTag: m.TargetTag},
		})
	}
	for _, c := range plan.CreateProposals {
		if c.Name == "" {
			continue
		}
		reason := c.Reason
		if strings.TrimSpace(reason) == "" {
			reason = fmt.Sprintf("Create tag '%s' to cover a recurring topic.", c.Name)
		}
		drafts = append(drafts, models.ProposalDraft{
			Type:     models.ProposalCreateTag,
			Priority: normalizePriority(c.Priority),
			Reason:   reason,
			Data:     models.CreateData{Name: c.Name, Category: c.Category},
		})
	}
	for _, r := range plan.RetireProposals {
		if r.Name == "" {
			continue
		}
		reason := r.Reason
		if strings.TrimSpace(reason) == "" {
			reason = fmt.Sprintf("Retire rarely used tag '%s'.", r.Name)
		}
		drafts = append(drafts, models.ProposalDraft{
			Type:     models.ProposalRetireTag,
			Priority: normalizePriority(r.Priority),
			Reason:   reason,
			Data:     models.RetireData{Name: r.Name, Replacement: r.Replacement},
		})
	}
	return drafts
}

// reviewDraftsFromBloat flags each over-limit category for human review
// instead of auto-merging inside it.
func reviewDraftsFromBloat(categories []models.BloatedCategory) []models.ProposalDraft {
	drafts := make([]models.ProposalDraft, 0, len(categories))
	for _, cat := range categories {
		affected := 0
		for _, t := range cat.Tags {
			affected += t.Count
		}
		sample := cat.Tags
		if len(sample) > reviewSampleTags {
			sample = sample[:reviewSampleTags]
		}
		drafts = append(drafts, models.ProposalDraft{
			Type:     models.ProposalReviewCategory,
			Priority: models.PriorityLow,
			Reason: fmt.Sprintf("Category '%s' has %d tags, which exceeds the recommended limit of %d. Consider consolidating similar tags.",
				cat.Category, cat.TagCount, bloatedCategoryLimit),
			Data:            models.ReviewData{Category: cat.Category, TagCount: cat.TagCount, Tags: sample},
			AffectedStories: affected,
		})
	}
	return drafts
}

var priorityRank = map[string]int{
	models.PriorityHigh:   0,
	models.PriorityMedium: 1,
	models.PriorityLow:    2,
}

func rankOf(priority string) int {
	if r, ok := priorityRank[priority]; ok {
		return r
	}
	return priorityRank[models.PriorityLow]
}

// sortDrafts orders by priority, then by blast radius descending.
func sortDrafts(drafts []models.ProposalDraft) {
	sort.SliceStable(drafts, func(i, j int) bool {
		ri, rj := rankOf(drafts[i].Priority), rankOf(drafts[j].Priority)
		if ri != rj {
			return ri < rj
		}
		return drafts[i].AffectedStories > drafts[j].AffectedStories
	})
}

// normalizePriority clamps an oracle-supplied priority to the known set.
func normalizePriority(p string) string {
	switch strings.ToLower(strings.TrimSpace(p)) {
	case models.PriorityLow:
		return models.PriorityLow
	case models.PriorityHigh:
		return models.PriorityHigh
	default:
		return models.PriorityMedium
	}
}
