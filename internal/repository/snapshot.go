package repository

import (
	"context"
	"encoding/json"
	"fmt"
)

// LoadSnapshot decodes the value stored under key into dst. It reports
// false when the key is absent or empty. A value that does not decode
// yields an error wrapping ErrSnapshotCorrupt and leaves dst untouched.
func LoadSnapshot[T any](ctx context.Context, slots SlotRepository, key string, dst *T) (bool, error) {
	raw, found, err := slots.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("failed to read slot %s: %w", key, err)
	}
	if !found || raw == "" {
		return false, nil
	}

	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return false, fmt.Errorf("%w: slot %s: %v", ErrSnapshotCorrupt, key, err)
	}
	*dst = v
	return true, nil
}

// SaveSnapshot encodes v as JSON and writes it under key.
func SaveSnapshot[T any](ctx context.Context, slots SlotRepository, key string, v T) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode slot %s: %w", key, err)
	}
	if err := slots.Set(ctx, key, string(b)); err != nil {
		return fmt.Errorf("failed to write slot %s: %w", key, err)
	}
	return nil
}
