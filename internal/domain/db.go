package domain

import "context"

// Database defines lifecycle operations for the persisted store backend.
// The store contract is key/value with JSON-encoded values, so the backend
// (SQLite here, anything else later) stays swappable as a unit.
type Database interface {
	Migrate(ctx context.Context) error
	Close() error
}
