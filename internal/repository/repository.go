package repository

import (
	"context"
	"errors"
)

var (
	// ErrSnapshotCorrupt is returned when a stored value is not valid JSON for the target type.
	ErrSnapshotCorrupt = errors.New("repository: snapshot is not valid JSON")
)

// SlotRepository defines the interface for string-keyed snapshot storage.
// Each store owns one key and writes its whole state on every mutation.
type SlotRepository interface {
	// Get returns the stored value and whether the key exists
	Get(ctx context.Context, key string) (string, bool, error)

	// Set creates or replaces the value stored under key
	Set(ctx context.Context, key, value string) error

	// Delete removes the key; deleting a missing key is not an error
	Delete(ctx context.Context, key string) error
}
