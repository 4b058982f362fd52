// Package hn provides a rate-limited client for the Hacker News Firebase API.
package hn

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/sync/semaphore"

	"github.com/hnscribe/hnscribe/pkg/models"
)

const (
	// maxConcurrent caps in-flight requests across all callers
	maxConcurrent = 10

	// requestTimeout bounds one fetch including all retries
	requestTimeout = 30 * time.Second

	retryInitialWait = time.Second

	// maxRetries is on top of the initial attempt
	maxRetries = 2
)

// Client talks to the Hacker News Firebase API. Fetch failures degrade to
// absent values after retries; callers treat missing items as skippable.
type Client struct {
	baseURL string
	httpc   *http.Client
	sem     *semaphore.Weighted

	closeOnce sync.Once
}

// NewClient creates a client for the API at baseURL
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{},
		sem:     semaphore.NewWeighted(maxConcurrent),
	}
}

// Close releases idle connections. Safe to call more than once.
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		c.httpc.CloseIdleConnections()
	})
}

// MaxItemID returns the highest item id the API knows about
func (c *Client) MaxItemID(ctx context.Context) (int64, bool) {
	var id int64
	if err := c.getJSON(ctx, c.baseURL+"/maxitem.json", &id); err != nil {
		slog.Warn("Failed to fetch HN max item id", "error", err)
		return 0, false
	}
	return id, true
}

// Item fetches a single item. Unknown ids (the API serves a literal null)
// and ids that keep failing come back as (nil, false).
func (c *Client) Item(ctx context.Context, id int64) (*models.Item, bool) {
	var it *models.Item
	url := fmt.Sprintf("%s/item/%d.json", c.baseURL, id)
	if err := c.getJSON(ctx, url, &it); err != nil {
		slog.Warn("Failed to fetch HN item",
			"item_id", id,
			"error", err)
		return nil, false
	}
	if it == nil {
		return nil, false
	}
	return it, true
}

// TopStoryIDs returns up to limit ids from the top stories list
func (c *Client) TopStoryIDs(ctx context.Context, limit int) []int64 {
	return c.storyList(ctx, "topstories", limit)
}

// NewStoryIDs returns up to limit ids from the new stories list
func (c *Client) NewStoryIDs(ctx context.Context, limit int) []int64 {
	return c.storyList(ctx, "newstories", limit)
}

// BestStoryIDs returns up to limit ids from the best stories list
func (c *Client) BestStoryIDs(ctx context.Context, limit int) []int64 {
	return c.storyList(ctx, "beststories", limit)
}

func (c *Client) storyList(ctx context.Context, list string, limit int) []int64 {
	var ids []int64
	if err := c.getJSON(ctx, fmt.Sprintf("%s/%s.json", c.baseURL, list), &ids); err != nil {
		slog.Warn("Failed to fetch HN story list",
			"list", list,
			"error", err)
		return nil
	}
	if limit > 0 && len(ids) > limit {
		ids = ids[:limit]
	}
	return ids
}

// StoriesBatch fetches the given ids concurrently and returns the live
// stories among them, preserving input order. Failed fetches and
// non-story items are dropped.
func (c *Client) StoriesBatch(ctx context.Context, ids []int64) []*models.Item {
	if len(ids) == 0 {
		return nil
	}

	items := make([]*models.Item, len(ids))
	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(1)
		go func(idx int, id int64) {
			defer wg.Done()
			if it, ok := c.Item(ctx, id); ok {
				items[idx] = it
			}
		}(i, id)
	}
	wg.Wait()

	stories := make([]*models.Item, 0, len(items))
	for _, it := range items {
		if it != nil && it.IsStory() {
			stories = append(stories, it)
		}
	}
	return stories
}

// rateAwareBackOff doubles the next wait after an upstream 429 so the
// client yields harder while the API sheds load.
type rateAwareBackOff struct {
	base        backoff.BackOff
	rateLimited bool
}

func (b *rateAwareBackOff) NextBackOff() time.Duration {
	d := b.base.NextBackOff()
	if d == backoff.Stop {
		return backoff.Stop
	}
	if b.rateLimited {
		b.rateLimited = false
		d *= 2
	}
	return d
}

func (b *rateAwareBackOff) Reset() {
	b.rateLimited = false
	b.base.Reset()
}

// getJSON fetches url into v, retrying transient failures. Non-200
// responses other than 429 do not retry: for item endpoints they mean the
// id has nothing behind it.
func (c *Client) getJSON(ctx context.Context, url string, v any) error {
	// The slot is held across retries so concurrency counts real pressure
	// on the upstream, not just first attempts.
	if err := c.sem.Acquire(ctx, 1); err != nil {
		return fmt.Errorf("failed to acquire request slot: %w", err)
	}
	defer c.sem.Release(1)

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	expo := backoff.NewExponentialBackOff()
	expo.InitialInterval = retryInitialWait
	expo.MaxElapsedTime = 0 // the context deadline is the budget
	bo := &rateAwareBackOff{base: expo}

	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		resp, err := c.httpc.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		switch resp.StatusCode {
		case http.StatusOK:
		case http.StatusTooManyRequests:
			bo.rateLimited = true
			return fmt.Errorf("rate limited (%s)", resp.Status)
		default:
			return backoff.Permanent(fmt.Errorf("unexpected status %s", resp.Status))
		}

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		if err := json.Unmarshal(body, v); err != nil {
			return backoff.Permanent(fmt.Errorf("failed to decode response: %w", err))
		}
		return nil
	}

	return backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(bo, maxRetries), ctx))
}
