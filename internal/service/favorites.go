package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/campusevents/campus-events/internal/domain"
)

// FavoriteService maintains the instance-scoped favorite event ids, kept in
// the persisted store under a single key. Toggles are serialized so the
// read-modify-write cycle cannot interleave.
type FavoriteService struct {
	mu   sync.Mutex
	repo domain.FavoriteRepository
}

// NewFavoriteService creates a FavoriteService.
func NewFavoriteService(repo domain.FavoriteRepository) *FavoriteService {
	return &FavoriteService{repo: repo}
}

// List returns the favorited event ids in insertion order.
func (s *FavoriteService) List(ctx context.Context) ([]string, error) {
	return s.repo.List(ctx)
}

// Toggle adds the event id to the favorites if absent, removes it if
// present, and returns the resulting list.
func (s *FavoriteService) Toggle(ctx context.Context, eventID string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	favorites, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}

	updated := removeFromSet(append([]string(nil), favorites...), eventID)
	if len(updated) == len(favorites) {
		updated = append(updated, eventID)
	}

	if err := s.repo.Save(ctx, updated); err != nil {
		return nil, fmt.Errorf("save favorites: %w", err)
	}
	return updated, nil
}
