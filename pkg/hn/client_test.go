package hn

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_MaxItemID(t *testing.T) {
	t.Run("returns the current max id", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/maxitem.json", r.URL.Path)
			w.Write([]byte("42123"))
		}))
		defer srv.Close()

		// Trailing slash on the base URL is tolerated.
		client := NewClient(srv.URL + "/")
		defer client.Close()

		id, ok := client.MaxItemID(t.Context())
		require.True(t, ok)
		assert.Equal(t, int64(42123), id)
	})

	t.Run("server failure", func(t *testing.T) {
		var requests atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests.Add(1)
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		client := NewClient(srv.URL)
		defer client.Close()

		_, ok := client.MaxItemID(t.Context())
		assert.False(t, ok)
		assert.Equal(t, int32(1), requests.Load(), "non-429 errors do not retry")
	})

	t.Run("non-integer body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`"soon"`))
		}))
		defer srv.Close()

		client := NewClient(srv.URL)
		defer client.Close()

		_, ok := client.MaxItemID(t.Context())
		assert.False(t, ok)
	})
}

func TestClient_Item(t *testing.T) {
	var requests atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/item/1.json", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":1,"type":"story","by":"pg","time":1700000000,"title":"Show HN: Things","url":"https://example.com/things","score":100,"descendants":12}`))
	})
	mux.HandleFunc("/item/2.json", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("null"))
	})
	mux.HandleFunc("/item/3.json", func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		http.NotFound(w, r)
	})
	mux.HandleFunc("/item/4.json", func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.Write([]byte(`{"id":4,`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := NewClient(srv.URL)
	defer client.Close()

	t.Run("live item", func(t *testing.T) {
		item, ok := client.Item(t.Context(), 1)
		require.True(t, ok)
		assert.Equal(t, int64(1), item.ID)
		assert.Equal(t, "story", item.Type)
		assert.Equal(t, "pg", item.By)
		assert.Equal(t, "Show HN: Things", item.Title)
		assert.Equal(t, 100, item.Score)
	})

	t.Run("unknown id serves null", func(t *testing.T) {
		item, ok := client.Item(t.Context(), 2)
		assert.False(t, ok)
		assert.Nil(t, item)
	})

	t.Run("not found does not retry", func(t *testing.T) {
		requests.Store(0)
		_, ok := client.Item(t.Context(), 3)
		assert.False(t, ok)
		assert.Equal(t, int32(1), requests.Load())
	})

	t.Run("malformed body does not retry", func(t *testing.T) {
		requests.Store(0)
		_, ok := client.Item(t.Context(), 4)
		assert.False(t, ok)
		assert.Equal(t, int32(1), requests.Load())
	})
}

func TestClient_RateLimitRetry(t *testing.T) {
	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if requests.Add(1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte("7"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	defer client.Close()

	start := time.Now()
	id, ok := client.MaxItemID(t.Context())
	elapsed := time.Since(start)

	require.True(t, ok, "the retry after a 429 should succeed")
	assert.Equal(t, int64(7), id)
	assert.Equal(t, int32(2), requests.Load())
	assert.GreaterOrEqual(t, elapsed, 900*time.Millisecond,
		"a 429 doubles the backoff wait before the retry")
}

func TestClient_StoryLists(t *testing.T) {
	var lastPath atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lastPath.Store(r.URL.Path)
		w.Write([]byte("[1,2,3,4,5,6,7,8,9,10]"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	defer client.Close()

	t.Run("truncates to the limit", func(t *testing.T) {
		ids := client.TopStoryIDs(t.Context(), 3)
		assert.Equal(t, []int64{1, 2, 3}, ids)
		assert.Equal(t, "/topstories.json", lastPath.Load())
	})

	t.Run("zero limit returns everything", func(t *testing.T) {
		ids := client.NewStoryIDs(t.Context(), 0)
		assert.Len(t, ids, 10)
		assert.Equal(t, "/newstories.json", lastPath.Load())
	})

	t.Run("best stories endpoint", func(t *testing.T) {
		ids := client.BestStoryIDs(t.Context(), 5)
		assert.Len(t, ids, 5)
		assert.Equal(t, "/beststories.json", lastPath.Load())
	})

	t.Run("failure returns nil", func(t *testing.T) {
		broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer broken.Close()

		brokenClient := NewClient(broken.URL)
		defer brokenClient.Close()

		assert.Nil(t, brokenClient.TopStoryIDs(t.Context(), 3))
	})
}

func TestClient_StoriesBatch(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/item/10.json", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":10,"type":"story","title":"First","time":1700000000}`))
	})
	mux.HandleFunc("/item/11.json", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":11,"type":"comment","text":"not a story","time":1700000001}`))
	})
	mux.HandleFunc("/item/12.json", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("null"))
	})
	mux.HandleFunc("/item/13.json", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":13,"type":"story","title":"Walking dead","dead":true,"time":1700000002}`))
	})
	mux.HandleFunc("/item/14.json", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":14,"type":"story","title":"Last","time":1700000003}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := NewClient(srv.URL)
	defer client.Close()

	stories := client.StoriesBatch(t.Context(), []int64{10, 11, 12, 13, 14})

	require.Len(t, stories, 2, "comments, missing items, and dead stories are dropped")
	assert.Equal(t, int64(10), stories[0].ID, "input order is preserved")
	assert.Equal(t, int64(14), stories[1].ID)

	assert.Nil(t, client.StoriesBatch(t.Context(), nil))
}
