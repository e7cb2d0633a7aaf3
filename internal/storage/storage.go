// Package storage defines the persistence collaborator of the letter core:
// a key-value style contract over one opaque serialized blob, plus the
// concrete backends (in-memory, file, SQLite, Postgres, S3).
//
// The repository owns serialization; backends only store and retrieve bytes.
package storage

import "context"

// Storage persists the serialized letter collection as a single blob.
type Storage interface {
	// Load returns the previously saved blob, or (nil, nil) when no prior
	// state exists.
	Load(ctx context.Context) ([]byte, error)

	// Save durably stores blob, replacing any previous state.
	Save(ctx context.Context, blob []byte) error
}
