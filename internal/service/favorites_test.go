package service_test

import (
	"context"
	"testing"

	"github.com/campusevents/campus-events/internal/service"
)

func TestFavoriteToggle(t *testing.T) {
	db := newTestDB(t)
	favorites := service.NewFavoriteService(db.Favorites())
	ctx := context.Background()

	got, err := favorites.Toggle(ctx, "3")
	if err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	if len(got) != 1 || got[0] != "3" {
		t.Errorf("got favorites %v", got)
	}

	got, err = favorites.Toggle(ctx, "7")
	if err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	if len(got) != 2 || got[0] != "3" || got[1] != "7" {
		t.Errorf("got favorites %v", got)
	}

	// Toggling again removes the id, keeping the rest in order.
	got, err = favorites.Toggle(ctx, "3")
	if err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	if len(got) != 1 || got[0] != "7" {
		t.Errorf("got favorites %v", got)
	}

	// The list survives a fresh service over the same store.
	reopened := service.NewFavoriteService(db.Favorites())
	got, err = reopened.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(got) != 1 || got[0] != "7" {
		t.Errorf("got persisted favorites %v", got)
	}
}
