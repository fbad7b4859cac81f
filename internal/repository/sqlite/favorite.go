package sqlite

import (
	"context"
	"database/sql"
)

// FavoriteRepository implements domain.FavoriteRepository over the
// "favoriteEvents" store key. Favorites are instance-scoped, not per-user.
type FavoriteRepository struct {
	db *sql.DB
}

func (r *FavoriteRepository) List(ctx context.Context) ([]string, error) {
	return getCollection[string](ctx, r.db, keyFavorites)
}

func (r *FavoriteRepository) Save(ctx context.Context, eventIDs []string) error {
	return setCollection(ctx, r.db, keyFavorites, eventIDs)
}
