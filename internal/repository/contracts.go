package repository

import (
	"context"

	"github.com/maxviazov/fundtable/internal/table"
)

// TableRepository keeps track of mounted tables by id.
// It only stores components; mounting and unmounting them is the service's job.
type TableRepository interface {
	// Add registers c. At the limit it makes room by detaching the finished table
	// that was accessed least recently and returns it so the caller can unmount it.
	Add(ctx context.Context, c *table.Component) (evicted *table.Component, err error)
	Get(ctx context.Context, id string) (*table.Component, error)
	// Remove detaches the table and returns it so the caller can unmount it.
	Remove(ctx context.Context, id string) (*table.Component, error)
	// Drain detaches and returns every table.
	Drain(ctx context.Context) []*table.Component
	Count(ctx context.Context) int
}
