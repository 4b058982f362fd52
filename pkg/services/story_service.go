package services

import (
	"context"
	"fmt"
	"time"

	"github.com/hnscribe/hnscribe/ent"
	"github.com/hnscribe/hnscribe/ent/predicate"
	"github.com/hnscribe/hnscribe/ent/story"
	"github.com/hnscribe/hnscribe/ent/tag"
	"github.com/hnscribe/hnscribe/pkg/models"
)

// existingIDChunkSize bounds the IN-clause size when checking which
// upstream ids are already stored.
const existingIDChunkSize = 1000

// StoryService manages story rows, their summaries, and tag attachments
type StoryService struct {
	client *ent.Client
}

// NewStoryService creates a new StoryService
func NewStoryService(client *ent.Client) *StoryService {
	return &StoryService{client: client}
}

// ExistingHNIDs returns the subset of ids already present, as a set.
// Input is chunked so the IN clause stays bounded regardless of batch size.
func (s *StoryService) ExistingHNIDs(ctx context.Context, ids []int64) (map[int64]struct{}, error) {
	existing := make(map[int64]struct{}, len(ids))
	for start := 0; start < len(ids); start += existingIDChunkSize {
		end := start + existingIDChunkSize
		if end > len(ids) {
			end = len(ids)
		}
		var chunk []int64
		err := s.client.Story.Query().
			Where(story.HnIDIn(ids[start:end]...)).
			Select(story.FieldHnID).
			Scan(ctx, &chunk)
		if err != nil {
			return nil, fmt.Errorf("failed to query existing hn ids: %w", err)
		}
		for _, id := range chunk {
			existing[id] = struct{}{}
		}
	}
	return existing, nil
}

// UpsertBatch inserts the given stories in one statement, updating the
// mutable fields (title, url, score, author, comment_count) on hn_id
// conflict. hn_created_at is never rewritten. Returns the number of rows
// written.
func (s *StoryService) UpsertBatch(ctx context.Context, stories []*models.ScrapedStory) (int, error) {
	if len(stories) == 0 {
		return 0, nil
	}

	builders := make([]*ent.StoryCreate, 0, len(stories))
	for _, st := range stories {
		builders = append(builders, s.client.Story.Create().
			SetHnID(st.HNID).
			SetTitle(st.Title).
			SetNillableURL(st.URL).
			SetScore(st.Score).
			SetAuthor(st.Author).
			SetCommentCount(st.CommentCount).
			SetHnCreatedAt(st.HNCreatedAt))
	}

	err := s.client.Story.CreateBulk(builders...).
		OnConflictColumns(story.FieldHnID).
		Update(func(u *ent.StoryUpsert) {
			u.UpdateTitle()
			u.UpdateURL()
			u.UpdateScore()
			u.UpdateAuthor()
			u.UpdateCommentCount()
			u.SetUpdatedAt(time.Now())
		}).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to upsert stories: %w", err)
	}
	return len(stories), nil
}

// GetStory retrieves a story by ID with its summary and tags loaded
func (s *StoryService) GetStory(ctx context.Context, id int) (*ent.Story, error) {
	st, err := s.client.Story.Query().
		Where(story.ID(id)).
		WithSummary().
		WithTags().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get story: %w", err)
	}
	return st, nil
}

// ListStories returns stories ordered by score desc with the total count
func (s *StoryService) ListStories(ctx context.Context, offset, limit int) (*models.StoryListResponse, error) {
	return s.listWhere(ctx, nil, offset, limit)
}

// FilterStories applies the multi-level tag filter; an empty filter is the
// plain listing. Listing and count share the same predicates.
func (s *StoryService) FilterStories(ctx context.Context, f *models.TagFilter, offset, limit int) (*models.StoryListResponse, error) {
	return s.listWhere(ctx, filterPredicates(f), offset, limit)
}

// CountFiltered counts stories matching the filter
func (s *StoryService) CountFiltered(ctx context.Context, f *models.TagFilter) (int, error) {
	count, err := s.client.Story.Query().Where(filterPredicates(f)...).Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count filtered stories: %w", err)
	}
	return count, nil
}

func (s *StoryService) listWhere(ctx context.Context, preds []predicate.Story, offset, limit int) (*models.StoryListResponse, error) {
	total, err := s.client.Story.Query().Where(preds...).Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count stories: %w", err)
	}

	stories, err := s.client.Story.Query().
		Where(preds...).
		WithSummary().
		WithTags().
		Order(ent.Desc(story.FieldScore)).
		Offset(offset).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list stories: %w", err)
	}

	return &models.StoryListResponse{
		Stories:    stories,
		TotalCount: total,
		Offset:     offset,
		Limit:      limit,
	}, nil
}

// filterPredicates translates a TagFilter into semijoin predicates: each
// include list requires at least one matching tag at its level (EXISTS);
// each exclude list forbids any (NOT EXISTS). Clauses AND across levels.
func filterPredicates(f *models.TagFilter) []predicate.Story {
	if f == nil || f.IsEmpty() {
		return nil
	}
	var preds []predicate.Story
	if len(f.L1Include) > 0 {
		preds = append(preds, story.HasTagsWith(tag.LevelEQ(1), tag.NameIn(f.L1Include...)))
	}
	if len(f.L1Exclude) > 0 {
		preds = append(preds, story.Not(story.HasTagsWith(tag.LevelEQ(1), tag.NameIn(f.L1Exclude...))))
	}
	if len(f.L2Include) > 0 {
		preds = append(preds, story.HasTagsWith(tag.LevelEQ(2), tag.NameIn(f.L2Include...)))
	}
	if len(f.L2Exclude) > 0 {
		preds = append(preds, story.Not(story.HasTagsWith(tag.LevelEQ(2), tag.NameIn(f.L2Exclude...))))
	}
	if len(f.L3Include) > 0 {
		preds = append(preds, story.HasTagsWith(tag.LevelEQ(3), tag.NameIn(f.L3Include...)))
	}
	return preds
}

// StoriesWithoutSummary returns the highest-scored stories that have no
// summary row yet; the enrichment pipeline works through these.
func (s *StoryService) StoriesWithoutSummary(ctx context.Context, limit int) ([]*ent.Story, error) {
	stories, err := s.client.Story.Query().
		Where(story.Not(story.HasSummary())).
		Order(ent.Desc(story.FieldScore)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query stories without summary: %w", err)
	}
	return stories, nil
}

// UnprocessedStories returns stories the recovery loop should revisit:
// missing either the summary flag or the tagged flag.
func (s *StoryService) UnprocessedStories(ctx context.Context, limit int) ([]*ent.Story, error) {
	stories, err := s.client.Story.Query().
		Where(story.Or(
			story.IsSummarized(false),
			story.IsTagged(false),
		)).
		Order(ent.Desc(story.FieldScore)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query unprocessed stories: %w", err)
	}
	return stories, nil
}

// CountStories returns the total number of stories
func (s *StoryService) CountStories(ctx context.Context) (int, error) {
	count, err := s.client.Story.Query().Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count stories: %w", err)
	}
	return count, nil
}

// CountStoriesSince counts stories created upstream at or after cutoff
func (s *StoryService) CountStoriesSince(ctx context.Context, cutoff time.Time) (int, error) {
	count, err := s.client.Story.Query().
		Where(story.HnCreatedAtGTE(cutoff)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count stories in window: %w", err)
	}
	return count, nil
}

// CountOrphanStories counts windowed stories that carry tags but none at
// level 1 or 2.
func (s *StoryService) CountOrphanStories(ctx context.Context, cutoff time.Time) (int, error) {
	count, err := s.client.Story.Query().
		Where(
			story.HnCreatedAtGTE(cutoff),
			story.HasTags(),
			story.Not(story.HasTagsWith(tag.LevelIn(1, 2))),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count orphan stories: %w", err)
	}
	return count, nil
}

// CreateSummary stores the summary for a story; at most one per story.
func (s *StoryService) CreateSummary(ctx context.Context, storyID int, text, model string) (*ent.Summary, error) {
	sum, err := s.client.Summary.Create().
		SetStoryID(storyID).
		SetText(text).
		SetModel(model).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create summary: %w", err)
	}
	return sum, nil
}

// AttachTags links the given tags to the story, skipping pairs that
// already exist, and bumps the usage counter of each newly attached tag.
// Returns the number of newly attached tags.
func (s *StoryService) AttachTags(ctx context.Context, storyID int, tagIDs []int) (int, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	current, err := tx.Story.Query().
		Where(story.ID(storyID)).
		QueryTags().
		IDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query attached tags: %w", err)
	}
	attached := make(map[int]struct{}, len(current))
	for _, id := range current {
		attached[id] = struct{}{}
	}

	missing := make([]int, 0, len(tagIDs))
	for _, id := range tagIDs {
		if _, ok := attached[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) == 0 {
		return 0, nil
	}

	err = tx.Story.UpdateOneID(storyID).
		AddTagIDs(missing...).
		Exec(ctx)
	if err != nil {
		// A concurrent attacher may have won the race; the pair set is
		// still correct.
		if ent.IsConstraintError(err) {
			return 0, nil
		}
		if ent.IsNotFound(err) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("failed to attach tags: %w", err)
	}
	err = tx.Tag.Update().
		Where(tag.IDIn(missing...)).
		AddUsageCount(1).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to bump tag usage: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit tag attachment: %w", err)
	}
	return len(missing), nil
}

// MarkEnriched flips both enrichment flags once summary and tags are in
func (s *StoryService) MarkEnriched(ctx context.Context, storyID int) error {
	err := s.client.Story.UpdateOneID(storyID).
		SetIsSummarized(true).
		SetIsTagged(true).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to mark story enriched: %w", err)
	}
	return nil
}
