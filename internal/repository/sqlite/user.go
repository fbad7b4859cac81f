package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/campusevents/campus-events/internal/domain"
)

// UserRepository implements domain.UserRepository over the "users" and
// "currentUser" store keys.
type UserRepository struct {
	db *sql.DB
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	return getCollection[domain.User](ctx, r.db, keyUsers)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email {
			return users[i].Clone(), nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		users, err := getCollection[domain.User](ctx, tx, keyUsers)
		if err != nil {
			return err
		}
		for i := range users {
			if users[i].Email == user.Email {
				return domain.ErrUserAlreadyExists
			}
		}
		users = append(users, *user.Clone())
		return setCollection(ctx, tx, keyUsers, users)
	})
}

// Commit persists the user as the current user and, when the user appears in
// the users collection, folds the membership relations back into that entry.
// The stored credential fields are left untouched; only the relations move.
// Both keys are written in one transaction so the dual-write cannot be torn.
func (r *UserRepository) Commit(ctx context.Context, user *domain.User) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		users, err := getCollection[domain.User](ctx, tx, keyUsers)
		if err != nil {
			return err
		}
		for i := range users {
			if users[i].ID == user.ID {
				users[i].RegisteredEvents = append([]string(nil), user.RegisteredEvents...)
				users[i].CreatedEvents = append([]string(nil), user.CreatedEvents...)
				if err := setCollection(ctx, tx, keyUsers, users); err != nil {
					return err
				}
				break
			}
		}
		return setCurrentUser(ctx, tx, user)
	})
}

func (r *UserRepository) Current(ctx context.Context) (*domain.User, error) {
	raw, ok, err := getValue(ctx, r.db, keyCurrentUser)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrNotFound
	}

	user := &domain.User{}
	if err := json.Unmarshal([]byte(raw), user); err != nil {
		// Same fallback as collections: a record that no longer parses is
		// treated as absent, not fatal.
		slog.Warn("malformed stored data, treating as absent", "key", keyCurrentUser, "error", err)
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (r *UserRepository) SetCurrent(ctx context.Context, user *domain.User) error {
	return setCurrentUser(ctx, r.db, user)
}

func (r *UserRepository) ClearCurrent(ctx context.Context) error {
	return deleteValue(ctx, r.db, keyCurrentUser)
}

// setCurrentUser stores the user under "currentUser" with the password hash
// stripped, mirroring how the users collection keeps credentials to itself.
func setCurrentUser(ctx context.Context, q querier, user *domain.User) error {
	stored := user.Clone()
	stored.PasswordHash = ""
	data, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("encode current user: %w", err)
	}
	return setValue(ctx, q, keyCurrentUser, string(data))
}
