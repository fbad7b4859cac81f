package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
)

// Store key names. Values are JSON-encoded text, one blob per logical key.
const (
	keyUsers       = "users"
	keyCurrentUser = "currentUser"
	keyUserEvents  = "userEvents"
	keyFavorites   = "favoriteEvents"
)

// querier is satisfied by both *sql.DB and *sql.Tx, so the key/value helpers
// work inside and outside transactions.
type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// getValue returns the raw text stored under key, and whether the key exists.
func getValue(ctx context.Context, q querier, key string) (string, bool, error) {
	var value string
	err := q.QueryRowContext(ctx, "SELECT value FROM kv_store WHERE key = ?", key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("query key %s: %w", key, err)
	}
	return value, true, nil
}

// setValue upserts the text stored under key.
func setValue(ctx context.Context, q querier, key, value string) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO kv_store (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("set key %s: %w", key, err)
	}
	return nil
}

// deleteValue removes key. Deleting an absent key is not an error.
func deleteValue(ctx context.Context, q querier, key string) error {
	if _, err := q.ExecContext(ctx, "DELETE FROM kv_store WHERE key = ?", key); err != nil {
		return fmt.Errorf("delete key %s: %w", key, err)
	}
	return nil
}

// getCollection reads and decodes the JSON array stored under key. A missing
// key yields an empty collection. So does a malformed value: stored data that
// no longer parses is logged and treated as empty rather than propagated,
// which keeps every store read recoverable.
func getCollection[T any](ctx context.Context, q querier, key string) ([]T, error) {
	raw, ok, err := getValue(ctx, q, key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		slog.Warn("malformed stored data, treating as empty collection", "key", key, "error", err)
		return nil, nil
	}
	return items, nil
}

// setCollection encodes items as JSON and stores them under key.
func setCollection[T any](ctx context.Context, q querier, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode collection %s: %w", key, err)
	}
	return setValue(ctx, q, key, string(data))
}

// withTx runs fn inside a transaction, committing on success.
func withTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}
