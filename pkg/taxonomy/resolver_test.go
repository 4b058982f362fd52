package taxonomy

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hnscribe/hnscribe/ent"
	"github.com/hnscribe/hnscribe/pkg/models"
)

// fakeTagStore hands out tag rows keyed by slug and counts store hits so
// tests can tell cached lookups from real ones.
type fakeTagStore struct {
	calls int
	tags  map[string]*ent.Tag
	err   error
}

func newFakeTagStore() *fakeTagStore {
	return &fakeTagStore{tags: make(map[string]*ent.Tag)}
}

func (s *fakeTagStore) GetOrCreateTag(ctx context.Context, name string) (*ent.Tag, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	spec := SpecFor(name)
	if t, ok := s.tags[spec.Slug]; ok {
		return t, nil
	}
	t := &ent.Tag{
		ID:    len(s.tags) + 1,
		Name:  spec.Name,
		Slug:  spec.Slug,
		Level: spec.Level,
	}
	s.tags[spec.Slug] = t
	return t, nil
}

func TestResolver_GetOrCreate_CachesBySlug(t *testing.T) {
	store := newFakeTagStore()
	r := NewResolver(store)
	ctx := context.Background()

	first, err := r.GetOrCreate(ctx, "Go")
	require.NoError(t, err)

	// Different spelling, same slug: must come from the cache.
	second, err := r.GetOrCreate(ctx, "go")
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, store.calls)
}

func TestResolver_ResolveTags(t *testing.T) {
	store := newFakeTagStore()
	r := NewResolver(store)
	ctx := context.Background()

	resolved, err := r.ResolveTags(ctx, models.FlatTags{
		L1: []string{"Tech"},
		L2: []string{"Go", "go"},
		L3: []string{"   ", "OpenAI", "Tech"},
	})
	require.NoError(t, err)

	// Level order preserved, slug duplicates and blanks dropped.
	names := make([]string, 0, len(resolved))
	for _, tag := range resolved {
		names = append(names, tag.Name)
	}
	assert.Equal(t, []string{"Tech", "Go", "OpenAI"}, names)
	assert.Equal(t, 3, store.calls)
}

func TestResolver_ResolveTags_EmptyInput(t *testing.T) {
	store := newFakeTagStore()
	r := NewResolver(store)

	resolved, err := r.ResolveTags(context.Background(), models.FlatTags{})
	require.NoError(t, err)
	assert.Empty(t, resolved)
	assert.Equal(t, 0, store.calls)
}

func TestResolver_ResolveTags_StoreError(t *testing.T) {
	store := newFakeTagStore()
	store.err = errors.New("connection reset")
	r := NewResolver(store)

	_, err := r.ResolveTags(context.Background(), models.FlatTags{L1: []string{"Tech"}})
	require.Error(t, err)
	assert.ErrorContains(t, err, "connection reset")
}
