package services

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/hnscribe/hnscribe/ent/scraperstate"
	testdb "github.com/hnscribe/hnscribe/test/database"
)

func TestStateService_GetOrCreate(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewStateService(client.Client)
	ctx := context.Background()

	target := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	st, created, err := svc.GetOrCreate(ctx, scraperstate.StateTypeBackfill, StateSeed{
		CurrentItemID:   45000000,
		TargetTimestamp: &target,
	})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, scraperstate.StateTypeBackfill, st.StateType)
	assert.Equal(t, int64(45000000), st.CurrentItemID)
	require.NotNil(t, st.TargetTimestamp)
	assert.True(t, st.TargetTimestamp.Equal(target))
	assert.Equal(t, scraperstate.StatusActive, st.Status)

	again, created, err := svc.GetOrCreate(ctx, scraperstate.StateTypeBackfill, StateSeed{CurrentItemID: 1})
	require.NoError(t, err)
	assert.False(t, created, "a second initializer sees the existing row")
	assert.Equal(t, st.ID, again.ID)
	assert.Equal(t, int64(45000000), again.CurrentItemID, "a later seed must not overwrite the row")
}

func TestStateService_GetOrCreate_Concurrent(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewStateService(client.Client)

	var created atomic.Int32
	g, ctx := errgroup.WithContext(context.Background())
	for i := 0; i < 8; i++ {
		g.Go(func() error {
			_, didCreate, err := svc.GetOrCreate(ctx, scraperstate.StateTypeContinuous, StateSeed{CurrentItemID: 100})
			if err != nil {
				return err
			}
			if didCreate {
				created.Add(1)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	assert.Equal(t, int32(1), created.Load(), "exactly one caller must create the row")

	states, err := svc.ListStates(context.Background())
	require.NoError(t, err)
	assert.Len(t, states, 1)
}

func TestStateService_GetOrCreate_AcrossReplicas(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)
	first := NewStateService(shared.NewClient(t).Client)
	second := NewStateService(shared.NewClient(t).Client)

	var created atomic.Int32
	g, ctx := errgroup.WithContext(context.Background())
	for _, svc := range []*StateService{first, second} {
		g.Go(func() error {
			_, didCreate, err := svc.GetOrCreate(ctx, scraperstate.StateTypeBackfill, StateSeed{CurrentItemID: 500})
			if err != nil {
				return err
			}
			if didCreate {
				created.Add(1)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	assert.Equal(t, int32(1), created.Load(),
		"the advisory lock must serialize initializers across connection pools")
}

func TestStateService_SaveProgress(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewStateService(client.Client)
	ctx := context.Background()

	st, _, err := svc.GetOrCreate(ctx, scraperstate.StateTypeBackfill, StateSeed{CurrentItemID: 1000})
	require.NoError(t, err)

	require.NoError(t, svc.SaveProgress(ctx, st.ID, 900, 100, 37))
	require.NoError(t, svc.SaveProgress(ctx, st.ID, 800, 100, 25))

	got, err := svc.GetState(ctx, scraperstate.StateTypeBackfill)
	require.NoError(t, err)
	assert.Equal(t, int64(800), got.CurrentItemID)
	assert.Equal(t, int64(200), got.ItemsProcessed, "progress counters accumulate")
	assert.Equal(t, int64(62), got.StoriesFound)
	assert.False(t, got.LastRunAt.IsZero())

	assert.ErrorIs(t, svc.SaveProgress(ctx, 999999, 1, 1, 1), ErrNotFound)
}

func TestStateService_MarkCompleted(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewStateService(client.Client)
	ctx := context.Background()

	st, _, err := svc.GetOrCreate(ctx, scraperstate.StateTypeBackfill, StateSeed{CurrentItemID: 10})
	require.NoError(t, err)

	require.NoError(t, svc.MarkCompleted(ctx, st.ID))

	got, err := svc.GetState(ctx, scraperstate.StateTypeBackfill)
	require.NoError(t, err)
	assert.Equal(t, scraperstate.StatusCompleted, got.Status)

	assert.ErrorIs(t, svc.MarkCompleted(ctx, 999999), ErrNotFound)
}

func TestStateService_GetState_Missing(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewStateService(client.Client)

	_, err := svc.GetState(context.Background(), scraperstate.StateTypeContinuous)
	assert.ErrorIs(t, err, ErrNotFound)
}
