package services

import (
	"context"
	"fmt"
	"time"

	"github.com/hnscribe/hnscribe/ent"
	"github.com/hnscribe/hnscribe/ent/story"
	"github.com/hnscribe/hnscribe/ent/tag"
	"github.com/hnscribe/hnscribe/pkg/models"
	"github.com/hnscribe/hnscribe/pkg/taxonomy"
)

// TagService manages the tag vocabulary and the story/tag attachment table
type TagService struct {
	client *ent.Client
}

// NewTagService creates a new TagService
func NewTagService(client *ent.Client) *TagService {
	return &TagService{client: client}
}

// GetOrCreateTag returns the tag whose slug matches name, creating it with
// taxonomy-derived attributes when absent. A lost create race resolves to
// the winner's row.
func (s *TagService) GetOrCreateTag(ctx context.Context, name string) (*ent.Tag, error) {
	spec := taxonomy.SpecFor(name)
	if spec.Slug == "" {
		return nil, NewValidationError("name", "tag name must contain at least one alphanumeric character")
	}

	existing, err := s.client.Tag.Query().Where(tag.Slug(spec.Slug)).Only(ctx)
	if err == nil {
		return existing, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to look up tag: %w", err)
	}

	create := s.client.Tag.Create().
		SetName(spec.Name).
		SetSlug(spec.Slug).
		SetLevel(spec.Level).
		SetIsMisc(spec.IsMisc)
	if spec.Category != "" {
		create.SetCategory(spec.Category)
	}
	created, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			winner, qerr := s.client.Tag.Query().Where(tag.Slug(spec.Slug)).Only(ctx)
			if qerr != nil {
				return nil, fmt.Errorf("failed to re-fetch tag after create race: %w", qerr)
			}
			return winner, nil
		}
		return nil, fmt.Errorf("failed to create tag: %w", err)
	}
	return created, nil
}

// CreateTag inserts a new level-2 tag with an explicit name. The category
// falls back to the canonical mapping when the caller gives none.
func (s *TagService) CreateTag(ctx context.Context, name string, category *string) (*ent.Tag, error) {
	slug := taxonomy.NormalizeSlug(name)
	if slug == "" {
		return nil, NewValidationError("name", "tag name must contain at least one alphanumeric character")
	}

	create := s.client.Tag.Create().
		SetName(name).
		SetSlug(slug).
		SetLevel(2).
		SetIsMisc(false)
	switch {
	case category != nil && *category != "":
		create.SetCategory(*category)
	default:
		if cat := taxonomy.CategoryFor(name); cat != "" {
			create.SetCategory(cat)
		}
	}

	created, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create tag: %w", err)
	}
	return created, nil
}

// GetBySlug retrieves a tag by its slug
func (s *TagService) GetBySlug(ctx context.Context, slug string) (*ent.Tag, error) {
	t, err := s.client.Tag.Query().Where(tag.Slug(slug)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tag: %w", err)
	}
	return t, nil
}

// ListTags returns all tags ordered by level, then name
func (s *TagService) ListTags(ctx context.Context) ([]*ent.Tag, error) {
	tags, err := s.client.Tag.Query().
		Order(ent.Asc(tag.FieldLevel), ent.Asc(tag.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	return tags, nil
}

// GroupedTags buckets the full vocabulary by level, with level-2 tags
// additionally keyed by category. Uncategorized level-2 tags land in
// "Other".
func (s *TagService) GroupedTags(ctx context.Context) (*models.GroupedTags, error) {
	tags, err := s.ListTags(ctx)
	if err != nil {
		return nil, err
	}

	grouped := &models.GroupedTags{Categories: make(map[string][]*ent.Tag)}
	for _, t := range tags {
		switch t.Level {
		case 1:
			grouped.L1 = append(grouped.L1, t)
		case 2:
			grouped.L2 = append(grouped.L2, t)
			cat := "Other"
			if t.Category != nil && *t.Category != "" {
				cat = *t.Category
			}
			grouped.Categories[cat] = append(grouped.Categories[cat], t)
		default:
			grouped.L3 = append(grouped.L3, t)
		}
	}
	return grouped, nil
}

// CountTags returns the total number of tags
func (s *TagService) CountTags(ctx context.Context) (int, error) {
	count, err := s.client.Tag.Query().Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count tags: %w", err)
	}
	return count, nil
}

// UsageStatsSince returns one row per tag with its all-time usage counter
// and the number of attachments to stories published at or after cutoff.
// Tags with no recent usage still appear, with a zero recent count.
func (s *TagService) UsageStatsSince(ctx context.Context, cutoff time.Time) ([]models.TagStat, error) {
	rows, err := s.client.QueryContext(ctx, `
		SELECT t.id, t.name, t.slug, t.level, t.category, t.usage_count,
		       COUNT(s.id) AS recent_count
		FROM tags t
		LEFT JOIN story_tags st ON st.tag_id = t.id
		LEFT JOIN stories s ON s.id = st.story_id AND s.hn_created_at >= $1
		GROUP BY t.id
		ORDER BY t.level, t.name`, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to query tag usage stats: %w", err)
	}
	defer rows.Close()

	var stats []models.TagStat
	for rows.Next() {
		var st models.TagStat
		if err := rows.Scan(&st.ID, &st.Name, &st.Slug, &st.Level, &st.Category, &st.UsageCount, &st.RecentCount); err != nil {
			return nil, fmt.Errorf("failed to scan tag usage row: %w", err)
		}
		stats = append(stats, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read tag usage rows: %w", err)
	}
	return stats, nil
}

// CountStoriesWithAnyTag counts the distinct stories attached to at least
// one of the given tags.
func (s *TagService) CountStoriesWithAnyTag(ctx context.Context, tagIDs []int) (int, error) {
	if len(tagIDs) == 0 {
		return 0, nil
	}
	count, err := s.client.Story.Query().
		Where(story.HasTagsWith(tag.IDIn(tagIDs...))).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count stories with tags: %w", err)
	}
	return count, nil
}

// MergeTags repoints every attachment of the source tags onto the target,
// deletes the source tags, and refreshes the target's usage counter.
// Returns the number of distinct stories touched, counted before the
// rewrite.
func (s *TagService) MergeTags(ctx context.Context, sourceIDs []int, targetID int) (int, error) {
	if len(sourceIDs) == 0 {
		return 0, nil
	}
	affected, err := s.CountStoriesWithAnyTag(ctx, sourceIDs)
	if err != nil {
		return 0, err
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	for _, src := range sourceIDs {
		if err := reassignAttachments(ctx, tx, src, targetID); err != nil {
			return 0, err
		}
		if err := tx.Tag.DeleteOneID(src).Exec(ctx); err != nil && !ent.IsNotFound(err) {
			return 0, fmt.Errorf("failed to delete merged tag: %w", err)
		}
	}
	if err := recountUsage(ctx, tx, targetID); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit tag merge: %w", err)
	}
	return affected, nil
}

// RetireTag deletes a tag. With a replacement, attachments move to the
// replacement first; without one they go away with the tag. Returns the
// number of distinct stories that carried the retired tag.
func (s *TagService) RetireTag(ctx context.Context, tagID int, replacementID *int) (int, error) {
	affected, err := s.CountStoriesWithAnyTag(ctx, []int{tagID})
	if err != nil {
		return 0, err
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if replacementID != nil {
		if err := reassignAttachments(ctx, tx, tagID, *replacementID); err != nil {
			return 0, err
		}
		if err := recountUsage(ctx, tx, *replacementID); err != nil {
			return 0, err
		}
	}
	if err := tx.Tag.DeleteOneID(tagID).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("failed to delete retired tag: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit tag retirement: %w", err)
	}
	return affected, nil
}

// reassignAttachments moves story_tags rows from src to dst. Pairs the
// destination already holds are dropped first so the rewrite cannot
// violate the pair uniqueness.
func reassignAttachments(ctx context.Context, tx *ent.Tx, src, dst int) error {
	_, err := tx.ExecContext(ctx,
		`DELETE FROM story_tags
		 WHERE tag_id = $1
		   AND story_id IN (SELECT story_id FROM story_tags WHERE tag_id = $2)`,
		src, dst)
	if err != nil {
		return fmt.Errorf("failed to drop overlapping attachments: %w", err)
	}
	_, err = tx.ExecContext(ctx,
		`UPDATE story_tags SET tag_id = $1 WHERE tag_id = $2`, dst, src)
	if err != nil {
		return fmt.Errorf("failed to reassign attachments: %w", err)
	}
	return nil
}

// recountUsage rewrites a tag's usage counter from the attachment table
func recountUsage(ctx context.Context, tx *ent.Tx, tagID int) error {
	_, err := tx.ExecContext(ctx,
		`UPDATE tags
		 SET usage_count = (SELECT COUNT(*) FROM story_tags WHERE tag_id = $1)
		 WHERE id = $1`, tagID)
	if err != nil {
		return fmt.Errorf("failed to recount tag usage: %w", err)
	}
	return nil
}
