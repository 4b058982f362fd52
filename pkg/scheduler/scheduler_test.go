package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hnscribe/hnscribe/pkg/config"
)

func testConfig() *config.Config {
	return &config.Config{
		SummarizationBatchSize: 5,
		BackfillInterval:       5 * time.Minute,
		ContinuousInterval:     2 * time.Minute,
		RecoveryInterval:       5 * time.Minute,
		AgentRunInterval:       7 * 24 * time.Hour,
	}
}

func TestNew_RegistersAllJobs(t *testing.T) {
	s, err := New(nil, nil, nil, testConfig())
	require.NoError(t, err)
	assert.Len(t, s.cron.Entries(), 4)
}

func TestScheduler_StartStop(t *testing.T) {
	s, err := New(nil, nil, nil, testConfig())
	require.NoError(t, err)

	s.Start()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	assert.NoError(t, s.Stop(ctx))
}

func TestScheduler_BackfillShortCircuits(t *testing.T) {
	s, err := New(nil, nil, nil, testConfig())
	require.NoError(t, err)

	// Once backfill reports completion the job body must not touch the
	// scraper again; with a nil scraper a non-short-circuited call would
	// panic.
	s.backfillDone.Store(true)
	assert.NotPanics(t, s.runBackfill)
}
