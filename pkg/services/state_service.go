package services

import (
	"context"
	"fmt"
	"hash/fnv"
	"math"
	"time"

	"github.com/hnscribe/hnscribe/ent"
	"github.com/hnscribe/hnscribe/ent/scraperstate"
)

// StateService manages scraper cursor rows, one per state type
type StateService struct {
	client *ent.Client
}

// NewStateService creates a new StateService
func NewStateService(client *ent.Client) *StateService {
	return &StateService{client: client}
}

// StateSeed carries the initial cursor values for a state row that does
// not exist yet.
type StateSeed struct {
	CurrentItemID   int64
	TargetTimestamp *time.Time
}

// lockIDFor derives a stable advisory lock key for a state type
func lockIDFor(stateType scraperstate.StateType) int64 {
	h := fnv.New64a()
	h.Write([]byte("scraper_state_" + string(stateType)))
	return int64(h.Sum64() % uint64(math.MaxInt32))
}

// GetOrCreate returns the state row for stateType, creating it from seed
// when absent. Concurrent initializers serialize on a transaction-scoped
// advisory lock, so exactly one of them creates the row. The boolean
// reports whether this call created it.
func (s *StateService) GetOrCreate(ctx context.Context, stateType scraperstate.StateType, seed StateSeed) (*ent.ScraperState, bool, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	// Released automatically when the transaction ends.
	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, lockIDFor(stateType)); err != nil {
		return nil, false, fmt.Errorf("failed to take state lock: %w", err)
	}

	st, err := tx.ScraperState.Query().
		Where(scraperstate.StateTypeEQ(stateType)).
		Only(ctx)
	switch {
	case err == nil:
		if err := tx.Commit(); err != nil {
			return nil, false, fmt.Errorf("failed to commit state read: %w", err)
		}
		return st, false, nil
	case !ent.IsNotFound(err):
		return nil, false, fmt.Errorf("failed to query scraper state: %w", err)
	}

	create := tx.ScraperState.Create().
		SetStateType(stateType).
		SetCurrentItemID(seed.CurrentItemID)
	if seed.TargetTimestamp != nil {
		create.SetTargetTimestamp(*seed.TargetTimestamp)
	}
	st, err = create.Save(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to create scraper state: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, false, fmt.Errorf("failed to commit state create: %w", err)
	}
	return st, true, nil
}

// GetState retrieves the state row for stateType
func (s *StateService) GetState(ctx context.Context, stateType scraperstate.StateType) (*ent.ScraperState, error) {
	st, err := s.client.ScraperState.Query().
		Where(scraperstate.StateTypeEQ(stateType)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get scraper state: %w", err)
	}
	return st, nil
}

// ListStates returns every state row
func (s *StateService) ListStates(ctx context.Context) ([]*ent.ScraperState, error) {
	states, err := s.client.ScraperState.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list scraper states: %w", err)
	}
	return states, nil
}

// SaveProgress moves the cursor and accumulates the progress counters
func (s *StateService) SaveProgress(ctx context.Context, id int, currentItemID int64, itemsDelta, storiesDelta int64) error {
	err := s.client.ScraperState.UpdateOneID(id).
		SetCurrentItemID(currentItemID).
		AddItemsProcessed(itemsDelta).
		AddStoriesFound(storiesDelta).
		SetLastRunAt(time.Now()).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to save scraper progress: %w", err)
	}
	return nil
}

// MarkCompleted finalizes a state row once its work is exhausted
func (s *StateService) MarkCompleted(ctx context.Context, id int) error {
	err := s.client.ScraperState.UpdateOneID(id).
		SetStatus(scraperstate.StatusCompleted).
		SetLastRunAt(time.Now()).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to mark scraper state completed: %w", err)
	}
	return nil
}
