package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/campusevents/campus-events/internal/repository/sqlite/migrations"
)

// DB wraps the SQLite connection backing the persisted store and hands out
// the typed repositories built over it.
type DB struct {
	sql *sql.DB
}

// New opens a SQLite database at the given path and configures it for use.
// It enables WAL mode and foreign keys.
func New(dbPath string) (*DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Enable WAL mode for better concurrent read performance.
	if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	if _, err := db.ExecContext(context.Background(), "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	// A single connection serializes the store's read-modify-write cycles.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &DB{sql: db}, nil
}

// Migrate applies any unapplied schema migrations.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Run(ctx, db.sql)
}

// Close closes the underlying connection.
func (db *DB) Close() error {
	return db.sql.Close()
}

// Users returns the repository over the "users" and "currentUser" keys.
func (db *DB) Users() *UserRepository {
	return &UserRepository{db: db.sql}
}

// Events returns the repository over the "userEvents" key.
func (db *DB) Events() *EventRepository {
	return &EventRepository{db: db.sql}
}

// Favorites returns the repository over the "favoriteEvents" key.
func (db *DB) Favorites() *FavoriteRepository {
	return &FavoriteRepository{db: db.sql}
}
