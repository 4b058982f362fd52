package taxonomy

import (
	"context"
	"strings"

	"github.com/hnscribe/hnscribe/ent"
	"github.com/hnscribe/hnscribe/pkg/models"
)

// TagStore is the persistence capability the resolver needs.
type TagStore interface {
	GetOrCreateTag(ctx context.Context, name string) (*ent.Tag, error)
}

// Resolver resolves extracted tag names to tag rows through a slug-keyed
// cache. The cache is job-local: construct one resolver per enrichment run
// and drop it afterwards, so reorganizer edits in other jobs are never
// shadowed by stale entries.
type Resolver struct {
	store TagStore
	cache map[string]*ent.Tag
}

// NewResolver creates a resolver with an empty cache.
func NewResolver(store TagStore) *Resolver {
	return &Resolver{
		store: store,
		cache: make(map[string]*ent.Tag),
	}
}

// GetOrCreate returns the tag for name, consulting the cache first.
func (r *Resolver) GetOrCreate(ctx context.Context, name string) (*ent.Tag, error) {
	slug := NormalizeSlug(name)
	if t, ok := r.cache[slug]; ok {
		return t, nil
	}
	t, err := r.store.GetOrCreateTag(ctx, name)
	if err != nil {
		return nil, err
	}
	r.cache[slug] = t
	return t, nil
}

// ResolveTags maps all extracted names (L1 then L2 then L3) to tag rows,
// deduplicating by slug while preserving first-seen order. Blank names are
// dropped.
func (r *Resolver) ResolveTags(ctx context.Context, tags models.FlatTags) ([]*ent.Tag, error) {
	names := make([]string, 0, len(tags.L1)+len(tags.L2)+len(tags.L3))
	names = append(names, tags.L1...)
	names = append(names, tags.L2...)
	names = append(names, tags.L3...)

	seen := make(map[string]struct{}, len(names))
	resolved := make([]*ent.Tag, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		slug := NormalizeSlug(name)
		if slug == "" {
			continue
		}
		if _, dup := seen[slug]; dup {
			continue
		}
		seen[slug] = struct{}{}

		t, err := r.GetOrCreate(ctx, name)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, t)
	}
	return resolved, nil
}
