package scraper

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hnscribe/hnscribe/ent"
	"github.com/hnscribe/hnscribe/ent/scraperstate"
	"github.com/hnscribe/hnscribe/ent/story"
	"github.com/hnscribe/hnscribe/pkg/config"
	"github.com/hnscribe/hnscribe/pkg/database"
	"github.com/hnscribe/hnscribe/pkg/hn"
	"github.com/hnscribe/hnscribe/pkg/models"
	"github.com/hnscribe/hnscribe/pkg/services"
	testdb "github.com/hnscribe/hnscribe/test/database"
)

// fakeHN serves the endpoints the scraper touches. Item bodies are raw
// JSON keyed by id; unknown ids answer "null" like the real API. Item
// hits are counted so tests can assert which ids were actually fetched.
type fakeHN struct {
	mu       sync.Mutex
	maxID    int64
	items    map[int64]string
	top      []int64
	newest   []int64
	best     []int64
	itemHits map[int64]int
}

func newFakeHN(maxID int64) *fakeHN {
	return &fakeHN{
		maxID:    maxID,
		items:    make(map[int64]string),
		itemHits: make(map[int64]int),
	}
}

func (f *fakeHN) setItem(id int64, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items[id] = body
}

func (f *fakeHN) hits(id int64) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.itemHits[id]
}

func (f *fakeHN) totalHits() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	total := 0
	for _, n := range f.itemHits {
		total += n
	}
	return total
}

func (f *fakeHN) writeList(w http.ResponseWriter, ids []int64) {
	if ids == nil {
		ids = []int64{}
	}
	json.NewEncoder(w).Encode(ids)
}

func (f *fakeHN) server(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/maxitem.json", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		fmt.Fprintf(w, "%d", f.maxID)
	})
	mux.HandleFunc("/topstories.json", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.writeList(w, f.top)
	})
	mux.HandleFunc("/newstories.json", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.writeList(w, f.newest)
	})
	mux.HandleFunc("/beststories.json", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.writeList(w, f.best)
	})
	mux.HandleFunc("/item/", func(w http.ResponseWriter, r *http.Request) {
		raw := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/item/"), ".json")
		id, err := strconv.ParseInt(raw, 10, 64)
		require.NoError(t, err, "item path %q", r.URL.Path)

		f.mu.Lock()
		f.itemHits[id]++
		body, ok := f.items[id]
		f.mu.Unlock()

		if !ok {
			w.Write([]byte("null"))
			return
		}
		w.Write([]byte(body))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func storyJSON(id int64, title string, at time.Time, score int) string {
	return fmt.Sprintf(`{"id":%d,"type":"story","by":"tester","time":%d,"title":%q,"url":"https://example.com/%d","score":%d,"descendants":4}`,
		id, at.Unix(), title, id, score)
}

func commentJSON(id int64, at time.Time) string {
	return fmt.Sprintf(`{"id":%d,"type":"comment","by":"tester","time":%d,"text":"nested"}`, id, at.Unix())
}

type scraperHarness struct {
	scraper *Scraper
	fake    *fakeHN
	client  *database.Client
	stories *services.StoryService
	states  *services.StateService
}

func newHarness(t *testing.T, fake *fakeHN, cfg *config.Config) *scraperHarness {
	t.Helper()
	srv := fake.server(t)

	hnClient := hn.NewClient(srv.URL)
	t.Cleanup(hnClient.Close)

	client := testdb.NewTestClient(t)
	stories := services.NewStoryService(client.Client)
	states := services.NewStateService(client.Client)
	return &scraperHarness{
		scraper: New(hnClient, stories, states, cfg, nil),
		fake:    fake,
		client:  client,
		stories: stories,
		states:  states,
	}
}

func (h *scraperHarness) storedHNIDs(t *testing.T) []int64 {
	t.Helper()
	stories, err := h.client.Client.Story.Query().
		Order(ent.Asc(story.FieldHnID)).
		All(context.Background())
	require.NoError(t, err)

	ids := make([]int64, 0, len(stories))
	for _, st := range stories {
		ids = append(ids, st.HnID)
	}
	return ids
}

func TestScraper_RunBackfill(t *testing.T) {
	ctx := context.Background()

	recent := time.Now().UTC().Add(-time.Hour)
	old := time.Now().UTC().AddDate(0, 0, -30)

	fake := newFakeHN(10)
	fake.setItem(10, storyJSON(10, "Tail story", recent, 80))
	fake.setItem(9, commentJSON(9, recent))
	fake.setItem(8, storyJSON(8, "Middle story", recent, 40))
	fake.setItem(7, commentJSON(7, recent))
	fake.setItem(6, storyJSON(6, "Head story", recent, 10))
	// 5 predates the backfill target and must be cut, 1..4 stay null.
	fake.setItem(5, storyJSON(5, "Ancient story", old, 5))

	cfg := &config.Config{
		BackfillBatchSize:  5,
		BackfillMaxBatches: 10,
		BackfillDaysDev:    7,
	}
	h := newHarness(t, fake, cfg)

	result, err := h.scraper.RunBackfill(ctx)
	require.NoError(t, err)

	assert.Equal(t, models.ScrapeCompleted, result.Status)
	assert.Equal(t, 2, result.BatchesProcessed)
	assert.Equal(t, 10, result.ItemsScanned)
	assert.Equal(t, 3, result.StoriesAdded)
	assert.Equal(t, int64(0), result.CurrentItemID)

	assert.Equal(t, []int64{6, 8, 10}, h.storedHNIDs(t), "the pre-target story is dropped")

	state, err := h.states.GetState(ctx, scraperstate.StateTypeBackfill)
	require.NoError(t, err)
	assert.Equal(t, scraperstate.StatusCompleted, state.Status)
	assert.Equal(t, int64(0), state.CurrentItemID)
	assert.Equal(t, int64(10), state.ItemsProcessed)
	assert.Equal(t, int64(3), state.StoriesFound)

	t.Run("second run short-circuits", func(t *testing.T) {
		before := fake.totalHits()

		again, err := h.scraper.RunBackfill(ctx)
		require.NoError(t, err)
		assert.Equal(t, models.ScrapeAlreadyCompleted, again.Status)
		assert.Equal(t, int64(0), again.CurrentItemID)
		assert.Zero(t, again.BatchesProcessed)
		assert.Equal(t, before, fake.totalHits(), "a completed backfill fetches no items")
	})

	t.Run("status reflects the stored state", func(t *testing.T) {
		status, err := h.scraper.Status(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(10), status.HNMaxItem)
		assert.Equal(t, 3, status.TotalStories)

		backfill := status.States[string(scraperstate.StateTypeBackfill)]
		require.NotNil(t, backfill)
		assert.Equal(t, string(scraperstate.StatusCompleted), backfill.Status)
		assert.Equal(t, int64(10), backfill.ItemsProcessed)
		assert.Equal(t, int64(3), backfill.StoriesFound)
		require.NotNil(t, backfill.TargetTimestamp)
	})
}

func TestScraper_RunBackfill_ResumesAcrossRuns(t *testing.T) {
	ctx := context.Background()
	recent := time.Now().UTC().Add(-time.Hour)

	fake := newFakeHN(8)
	for id := int64(1); id <= 8; id++ {
		fake.setItem(id, storyJSON(id, fmt.Sprintf("Story %d", id), recent, int(id)))
	}

	cfg := &config.Config{
		BackfillBatchSize:  4,
		BackfillMaxBatches: 1,
		BackfillDaysDev:    365,
	}
	h := newHarness(t, fake, cfg)

	first, err := h.scraper.RunBackfill(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.ScrapeInProgress, first.Status)
	assert.Equal(t, 1, first.BatchesProcessed)
	assert.Equal(t, 4, first.StoriesAdded)
	assert.Equal(t, int64(4), first.CurrentItemID)

	state, err := h.states.GetState(ctx, scraperstate.StateTypeBackfill)
	require.NoError(t, err)
	assert.Equal(t, scraperstate.StatusActive, state.Status)

	second, err := h.scraper.RunBackfill(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.ScrapeCompleted, second.Status, "the walk hits item 1 and finishes")
	assert.Equal(t, 1, second.BatchesProcessed)
	assert.Equal(t, 4, second.StoriesAdded)
	assert.Equal(t, int64(0), second.CurrentItemID)

	assert.Len(t, h.storedHNIDs(t), 8)

	state, err = h.states.GetState(ctx, scraperstate.StateTypeBackfill)
	require.NoError(t, err)
	assert.Equal(t, scraperstate.StatusCompleted, state.Status)
	assert.Equal(t, int64(8), state.ItemsProcessed)
	assert.Equal(t, int64(8), state.StoriesFound)
}

func TestScraper_RunContinuous(t *testing.T) {
	ctx := context.Background()
	recent := time.Now().UTC().Add(-time.Hour)

	fake := newFakeHN(20)
	fake.setItem(13, storyJSON(13, "Fresh 13", recent, 5))
	fake.setItem(14, commentJSON(14, recent))
	fake.setItem(15, storyJSON(15, "Already stored", recent, 50))
	// 16 stays null
	fake.setItem(17, storyJSON(17, "Fresh 17", recent, 7))
	fake.setItem(18, storyJSON(18, "Fresh 18", recent, 9))
	fake.setItem(19, commentJSON(19, recent))
	fake.setItem(20, storyJSON(20, "Fresh 20", recent, 11))
	fake.top = []int64{100, 101}
	fake.newest = []int64{101, 102}
	fake.best = []int64{100, 103}
	fake.setItem(100, storyJSON(100, "Front page", recent, 300))
	fake.setItem(101, storyJSON(101, "New arrival", recent, 2))
	fake.setItem(102, commentJSON(102, recent))
	fake.setItem(103, storyJSON(103, "Best of", recent, 150))

	cfg := &config.Config{ContinuousBatchSize: 5}
	h := newHarness(t, fake, cfg)

	// Story 15 is known beforehand and must not be fetched again.
	url := "https://example.com/15"
	_, err := h.stories.UpsertBatch(ctx, []*models.ScrapedStory{{
		HNID:        15,
		Title:       "Already stored",
		URL:         &url,
		Score:       50,
		Author:      "tester",
		HNCreatedAt: recent,
	}})
	require.NoError(t, err)

	// Park the cursor behind the tail so the walk covers 13..20.
	_, created, err := h.states.GetOrCreate(ctx, scraperstate.StateTypeContinuous, services.StateSeed{CurrentItemID: 12})
	require.NoError(t, err)
	require.True(t, created)

	result, err := h.scraper.RunContinuous(ctx)
	require.NoError(t, err)

	assert.Equal(t, models.ScrapeCompleted, result.Status)
	assert.Equal(t, 8, result.ItemsScanned)
	assert.Equal(t, 4, result.StoriesAdded)
	assert.Equal(t, 3, result.CuratedAdded)
	assert.Equal(t, int64(20), result.CurrentItemID)

	assert.Zero(t, fake.hits(15), "stored ids are filtered before fetching")
	assert.Equal(t, 1, fake.hits(101), "curated lists are deduplicated before fetching")

	assert.Equal(t, []int64{13, 15, 17, 18, 20, 100, 101, 103}, h.storedHNIDs(t))

	state, err := h.states.GetState(ctx, scraperstate.StateTypeContinuous)
	require.NoError(t, err)
	assert.Equal(t, int64(20), state.CurrentItemID)
	assert.Equal(t, int64(8), state.ItemsProcessed)
	assert.Equal(t, int64(4), state.StoriesFound)

	t.Run("steady state is a no-op", func(t *testing.T) {
		before := fake.totalHits()

		again, err := h.scraper.RunContinuous(ctx)
		require.NoError(t, err)
		assert.Zero(t, again.ItemsScanned)
		assert.Zero(t, again.StoriesAdded)
		assert.Zero(t, again.CuratedAdded)
		assert.Equal(t, int64(20), again.CurrentItemID)
		assert.Equal(t, before, fake.totalHits(), "everything is stored already")
	})
}

func TestScraper_RunContinuous_InitializesAtTail(t *testing.T) {
	ctx := context.Background()
	recent := time.Now().UTC().Add(-time.Hour)

	fake := newFakeHN(30)
	fake.setItem(30, storyJSON(30, "The very tip", recent, 1))

	h := newHarness(t, fake, &config.Config{ContinuousBatchSize: 50})

	result, err := h.scraper.RunContinuous(ctx)
	require.NoError(t, err)

	// A fresh cursor starts one behind the max id, so only the tip is new.
	assert.Equal(t, 1, result.ItemsScanned)
	assert.Equal(t, 1, result.StoriesAdded)
	assert.Zero(t, result.CuratedAdded)
	assert.Equal(t, int64(30), result.CurrentItemID)
}

func TestScraper_RefreshTopStories(t *testing.T) {
	ctx := context.Background()
	recent := time.Now().UTC().Add(-time.Hour)

	fake := newFakeHN(50)
	fake.top = []int64{5, 6, 7}
	fake.setItem(5, storyJSON(5, "Leader", recent, 100))
	fake.setItem(6, storyJSON(6, "Runner up", recent, 90))
	fake.setItem(7, commentJSON(7, recent))

	cfg := &config.Config{TopStoriesCount: 3}
	h := newHarness(t, fake, cfg)

	written, err := h.scraper.RefreshTopStories(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, written, "the comment is not a story")

	leader, err := h.client.Client.Story.Query().Where(story.HnID(5)).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, 100, leader.Score)

	// A later refresh rewrites the stored scores.
	fake.setItem(5, storyJSON(5, "Leader", recent, 250))
	written, err = h.scraper.RefreshTopStories(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, written)

	leader, err = h.client.Client.Story.Query().Where(story.HnID(5)).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, 250, leader.Score)

	t.Run("unreachable list is an error", func(t *testing.T) {
		broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer broken.Close()

		hnClient := hn.NewClient(broken.URL)
		defer hnClient.Close()

		scr := New(hnClient, h.stories, h.states, cfg, nil)
		_, err := scr.RefreshTopStories(ctx)
		assert.ErrorContains(t, err, "top story ids")
	})
}

func TestIDRange(t *testing.T) {
	tests := []struct {
		name       string
		start, end int64
		want       []int64
	}{
		{name: "ascending", start: 3, end: 6, want: []int64{3, 4, 5, 6}},
		{name: "single id", start: 9, end: 9, want: []int64{9}},
		{name: "inverted", start: 5, end: 4, want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, idRange(tt.start, tt.end))
		})
	}
}
