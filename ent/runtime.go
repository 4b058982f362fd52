// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/hnscribe/hnscribe/ent/agentrun"
	"github.com/hnscribe/hnscribe/ent/schema"
	"github.com/hnscribe/hnscribe/ent/scraperstate"
	"github.com/hnscribe/hnscribe/ent/story"
	"github.com/hnscribe/hnscribe/ent/summary"
	"github.com/hnscribe/hnscribe/ent/tag"
	"github.com/hnscribe/hnscribe/ent/tagproposal"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentrunFields := schema.AgentRun{}.Fields()
	_ = agentrunFields
	// agentrunDescStartedAt is the schema descriptor for started_at field.
	agentrunDescStartedAt := agentrunFields[3].Descriptor()
	// agentrun.DefaultStartedAt holds the default value on creation for the started_at field.
	agentrun.DefaultStartedAt = agentrunDescStartedAt.Default.(func() time.Time)
	scraperstateFields := schema.ScraperState{}.Fields()
	_ = scraperstateFields
	// scraperstateDescCurrentItemID is the schema descriptor for current_item_id field.
	scraperstateDescCurrentItemID := scraperstateFields[1].Descriptor()
	// scraperstate.DefaultCurrentItemID holds the default value on creation for the current_item_id field.
	scraperstate.DefaultCurrentItemID = scraperstateDescCurrentItemID.Default.(int64)
	// scraperstateDescItemsProcessed is the schema descriptor for items_processed field.
	scraperstateDescItemsProcessed := scraperstateFields[4].Descriptor()
	// scraperstate.DefaultItemsProcessed holds the default value on creation for the items_processed field.
	scraperstate.DefaultItemsProcessed = scraperstateDescItemsProcessed.Default.(int64)
	// scraperstateDescStoriesFound is the schema descriptor for stories_found field.
	scraperstateDescStoriesFound := scraperstateFields[5].Descriptor()
	// scraperstate.DefaultStoriesFound holds the default value on creation for the stories_found field.
	scraperstate.DefaultStoriesFound = scraperstateDescStoriesFound.Default.(int64)
	// scraperstateDescLastRunAt is the schema descriptor for last_run_at field.
	scraperstateDescLastRunAt := scraperstateFields[6].Descriptor()
	// scraperstate.DefaultLastRunAt holds the default value on creation for the last_run_at field.
	scraperstate.DefaultLastRunAt = scraperstateDescLastRunAt.Default.(func() time.Time)
	// scraperstateDescCreatedAt is the schema descriptor for created_at field.
	scraperstateDescCreatedAt := scraperstateFields[7].Descriptor()
	// scraperstate.DefaultCreatedAt holds the default value on creation for the created_at field.
	scraperstate.DefaultCreatedAt = scraperstateDescCreatedAt.Default.(func() time.Time)
	// scraperstateDescUpdatedAt is the schema descriptor for updated_at field.
	scraperstateDescUpdatedAt := scraperstateFields[8].Descriptor()
	// scraperstate.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	scraperstate.DefaultUpdatedAt = scraperstateDescUpdatedAt.Default.(func() time.Time)
	// scraperstate.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	scraperstate.UpdateDefaultUpdatedAt = scraperstateDescUpdatedAt.UpdateDefault.(func() time.Time)
	storyFields := schema.Story{}.Fields()
	_ = storyFields
	// storyDescTitle is the schema descriptor for title field.
	storyDescTitle := storyFields[1].Descriptor()
	// story.DefaultTitle holds the default value on creation for the title field.
	story.DefaultTitle = storyDescTitle.Default.(string)
	// story.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	story.TitleValidator = storyDescTitle.Validators[0].(func(string) error)
	// storyDescURL is the schema descriptor for url field.
	storyDescURL := storyFields[2].Descriptor()
	// story.URLValidator is a validator for the "url" field. It is called by the builders before save.
	story.URLValidator = storyDescURL.Validators[0].(func(string) error)
	// storyDescScore is the schema descriptor for score field.
	storyDescScore := storyFields[3].Descriptor()
	// story.DefaultScore holds the default value on creation for the score field.
	story.DefaultScore = storyDescScore.Default.(int)
	// storyDescAuthor is the schema descriptor for author field.
	storyDescAuthor := storyFields[4].Descriptor()
	// story.DefaultAuthor holds the default value on creation for the author field.
	story.DefaultAuthor = storyDescAuthor.Default.(string)
	// story.AuthorValidator is a validator for the "author" field. It is called by the builders before save.
	story.AuthorValidator = storyDescAuthor.Validators[0].(func(string) error)
	// storyDescCommentCount is the schema descriptor for comment_count field.
	storyDescCommentCount := storyFields[5].Descriptor()
	// story.DefaultCommentCount holds the default value on creation for the comment_count field.
	story.DefaultCommentCount = storyDescCommentCount.Default.(int)
	// storyDescIsSummarized is the schema descriptor for is_summarized field.
	storyDescIsSummarized := storyFields[7].Descriptor()
	// story.DefaultIsSummarized holds the default value on creation for the is_summarized field.
	story.DefaultIsSummarized = storyDescIsSummarized.Default.(bool)
	// storyDescIsTagged is the schema descriptor for is_tagged field.
	storyDescIsTagged := storyFields[8].Descriptor()
	// story.DefaultIsTagged holds the default value on creation for the is_tagged field.
	story.DefaultIsTagged = storyDescIsTagged.Default.(bool)
	// storyDescCreatedAt is the schema descriptor for created_at field.
	storyDescCreatedAt := storyFields[9].Descriptor()
	// story.DefaultCreatedAt holds the default value on creation for the created_at field.
	story.DefaultCreatedAt = storyDescCreatedAt.Default.(func() time.Time)
	// storyDescUpdatedAt is the schema descriptor for updated_at field.
	storyDescUpdatedAt := storyFields[10].Descriptor()
	// story.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	story.DefaultUpdatedAt = storyDescUpdatedAt.Default.(func() time.Time)
	// story.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	story.UpdateDefaultUpdatedAt = storyDescUpdatedAt.UpdateDefault.(func() time.Time)
	summaryFields := schema.Summary{}.Fields()
	_ = summaryFields
	// summaryDescModel is the schema descriptor for model field.
	summaryDescModel := summaryFields[2].Descriptor()
	// summary.DefaultModel holds the default value on creation for the model field.
	summary.DefaultModel = summaryDescModel.Default.(string)
	// summary.ModelValidator is a validator for the "model" field. It is called by the builders before save.
	summary.ModelValidator = summaryDescModel.Validators[0].(func(string) error)
	// summaryDescCreatedAt is the schema descriptor for created_at field.
	summaryDescCreatedAt := summaryFields[3].Descriptor()
	// summary.DefaultCreatedAt holds the default value on creation for the created_at field.
	summary.DefaultCreatedAt = summaryDescCreatedAt.Default.(func() time.Time)
	tagFields := schema.Tag{}.Fields()
	_ = tagFields
	// tagDescName is the schema descriptor for name field.
	tagDescName := tagFields[0].Descriptor()
	// tag.NameValidator is a validator for the "name" field. It is called by the builders before save.
	tag.NameValidator = tagDescName.Validators[0].(func(string) error)
	// tagDescSlug is the schema descriptor for slug field.
	tagDescSlug := tagFields[1].Descriptor()
	// tag.SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	tag.SlugValidator = tagDescSlug.Validators[0].(func(string) error)
	// tagDescCategory is the schema descriptor for category field.
	tagDescCategory := tagFields[3].Descriptor()
	// tag.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	tag.CategoryValidator = tagDescCategory.Validators[0].(func(string) error)
	// tagDescIsMisc is the schema descriptor for is_misc field.
	tagDescIsMisc := tagFields[4].Descriptor()
	// tag.DefaultIsMisc holds the default value on creation for the is_misc field.
	tag.DefaultIsMisc = tagDescIsMisc.Default.(bool)
	// tagDescUsageCount is the schema descriptor for usage_count field.
	tagDescUsageCount := tagFields[5].Descriptor()
	// tag.DefaultUsageCount holds the default value on creation for the usage_count field.
	tag.DefaultUsageCount = tagDescUsageCount.Default.(int)
	// tagDescCreatedAt is the schema descriptor for created_at field.
	tagDescCreatedAt := tagFields[6].Descriptor()
	// tag.DefaultCreatedAt holds the default value on creation for the created_at field.
	tag.DefaultCreatedAt = tagDescCreatedAt.Default.(func() time.Time)
	tagproposalFields := schema.TagProposal{}.Fields()
	_ = tagproposalFields
	// tagproposalDescAffectedStoriesCount is the schema descriptor for affected_stories_count field.
	tagproposalDescAffectedStoriesCount := tagproposalFields[7].Descriptor()
	// tagproposal.DefaultAffectedStoriesCount holds the default value on creation for the affected_stories_count field.
	tagproposal.DefaultAffectedStoriesCount = tagproposalDescAffectedStoriesCount.Default.(int)
	// tagproposalDescCreatedAt is the schema descriptor for created_at field.
	tagproposalDescCreatedAt := tagproposalFields[8].Descriptor()
	// tagproposal.DefaultCreatedAt holds the default value on creation for the created_at field.
	tagproposal.DefaultCreatedAt = tagproposalDescCreatedAt.Default.(func() time.Time)
	// tagproposalDescReviewedBy is the schema descriptor for reviewed_by field.
	tagproposalDescReviewedBy := tagproposalFields[10].Descriptor()
	// tagproposal.ReviewedByValidator is a validator for the "reviewed_by" field. It is called by the builders before save.
	tagproposal.ReviewedByValidator = tagproposalDescReviewedBy.Validators[0].(func(string) error)
}
