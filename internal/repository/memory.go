package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/maxviazov/fundtable/internal/table"
)

// NewID returns a fresh table id.
func NewID() string { return uuid.NewString() }

// memoryRepository holds tables in process memory; nothing outlives the process.
type memoryRepository struct {
	mu     sync.RWMutex
	tables map[string]*table.Component
	limit  int
	log    zerolog.Logger
}

// NewMemory builds an in-memory repository. limit <= 0 means unbounded.
func NewMemory(limit int, logger zerolog.Logger) TableRepository {
	return &memoryRepository{
		tables: make(map[string]*table.Component),
		limit:  limit,
		log:    logger.With().Str("module", "repository").Str("component", "memory").Logger(),
	}
}

func (r *memoryRepository) Add(_ context.Context, c *table.Component) (*table.Component, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tables[c.ID()]; ok {
		return nil, ErrAlreadyExists
	}
	var evicted *table.Component
	if r.limit > 0 && len(r.tables) >= r.limit {
		evicted = r.leastRecentlyUsedFinished()
		if evicted == nil {
			r.log.Warn().Int("limit", r.limit).Msg("table limit reached")
			return nil, ErrLimitReached
		}
		delete(r.tables, evicted.ID())
		r.log.Debug().Str("table_id", evicted.ID()).Time("last_access", evicted.LastAccess()).Msg("evicting idle table")
	}
	r.tables[c.ID()] = c
	return evicted, nil
}

// leastRecentlyUsedFinished skips tables that are still loading. Callers hold r.mu.
func (r *memoryRepository) leastRecentlyUsedFinished() *table.Component {
	var oldest *table.Component
	for _, c := range r.tables {
		if !c.Finished() {
			continue
		}
		if oldest == nil || c.LastAccess().Before(oldest.LastAccess()) {
			oldest = c
		}
	}
	return oldest
}

func (r *memoryRepository) Get(_ context.Context, id string) (*table.Component, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.tables[id]
	if !ok {
		return nil, ErrNotFound
	}
	return c, nil
}

func (r *memoryRepository) Remove(_ context.Context, id string) (*table.Component, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.tables[id]
	if !ok {
		return nil, ErrNotFound
	}
	delete(r.tables, id)
	return c, nil
}

func (r *memoryRepository) Drain(_ context.Context) []*table.Component {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*table.Component, 0, len(r.tables))
	for id, c := range r.tables {
		out = append(out, c)
		delete(r.tables, id)
	}
	return out
}

func (r *memoryRepository) Count(_ context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tables)
}
