package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/campusevents/campus-events/internal/domain"
	"github.com/campusevents/campus-events/internal/service"
)

func TestCatalogListMergesSeedAndUserEvents(t *testing.T) {
	db := newTestDB(t)
	catalog := service.NewCatalogService(db.Events())
	ctx := context.Background()

	events, err := catalog.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(events) != 12 {
		t.Fatalf("expected 12 seed events, got %d", len(events))
	}
	if events[0].ID != "1" || events[11].ID != "12" {
		t.Errorf("got seed order %s..%s", events[0].ID, events[11].ID)
	}

	created, err := catalog.Create(ctx, service.CreateEventInput{
		Title:    "Debate Club Finals",
		Date:     "2025-02-10T17:00:00Z",
		Location: "Lecture Hall B",
		Category: "clubs",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	events, err = catalog.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(events) != 13 {
		t.Fatalf("expected 13 events after create, got %d", len(events))
	}
	// User events come after the seed catalog.
	if events[12].ID != created.ID {
		t.Errorf("expected created event last, got %s", events[12].ID)
	}
}

func TestCatalogGet(t *testing.T) {
	db := newTestDB(t)
	catalog := service.NewCatalogService(db.Events())
	ctx := context.Background()

	event, err := catalog.Get(ctx, "5")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if event.Title != "Tech Career Fair 2025" {
		t.Errorf("got event %q", event.Title)
	}

	if _, err := catalog.Get(ctx, "does-not-exist"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestCatalogCreateValidation(t *testing.T) {
	db := newTestDB(t)
	catalog := service.NewCatalogService(db.Events())
	ctx := context.Background()

	valid := service.CreateEventInput{
		Title:    "Movie Night",
		Date:     "2025-02-15T20:00:00Z",
		Location: "Auditorium",
		Category: "social",
	}

	tests := []struct {
		name    string
		mutate  func(*service.CreateEventInput)
		wantErr error
	}{
		{"missing title", func(in *service.CreateEventInput) { in.Title = "  " }, domain.ErrInvalidInput},
		{"missing date", func(in *service.CreateEventInput) { in.Date = "" }, domain.ErrInvalidInput},
		{"missing location", func(in *service.CreateEventInput) { in.Location = "" }, domain.ErrInvalidInput},
		{"unknown category", func(in *service.CreateEventInput) { in.Category = "party" }, domain.ErrInvalidCategory},
		{"negative price", func(in *service.CreateEventInput) { in.Price = -1 }, domain.ErrInvalidInput},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			input := valid
			tc.mutate(&input)
			if _, err := catalog.Create(ctx, input); !errors.Is(err, tc.wantErr) {
				t.Errorf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}

	// None of the rejected inputs may have reached the store.
	events, err := catalog.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(events) != 12 {
		t.Errorf("expected catalog unchanged, got %d events", len(events))
	}
}

func TestCatalogCreateNormalizesInput(t *testing.T) {
	db := newTestDB(t)
	catalog := service.NewCatalogService(db.Events())
	ctx := context.Background()

	event, err := catalog.Create(ctx, service.CreateEventInput{
		Title:    "  Hackathon  ",
		Date:     "2025-03-01T09:00:00Z",
		Location: " Innovation Lab ",
		Category: "academic",
		Price:    0,
		Tags:     []string{" Tech ", "", "Coding"},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if event.Title != "Hackathon" {
		t.Errorf("got title %q", event.Title)
	}
	if event.Location != "Innovation Lab" {
		t.Errorf("got location %q", event.Location)
	}
	if len(event.Tags) != 2 || event.Tags[0] != "Tech" || event.Tags[1] != "Coding" {
		t.Errorf("got tags %v", event.Tags)
	}
	if event.Attendees != 0 {
		t.Errorf("got attendees %d, want 0", event.Attendees)
	}
}

func TestCatalogCreateAssignsUniqueIDs(t *testing.T) {
	db := newTestDB(t)
	catalog := service.NewCatalogService(db.Events())
	ctx := context.Background()

	seen := make(map[string]bool)
	for _, ev := range seedEventIDs() {
		seen[ev] = true
	}

	for i := 0; i < 20; i++ {
		event, err := catalog.Create(ctx, service.CreateEventInput{
			Title:    "Pop-up Event",
			Date:     "2025-03-05T12:00:00Z",
			Location: "Quad",
			Category: "social",
		})
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if seen[event.ID] {
			t.Fatalf("duplicate event id %q", event.ID)
		}
		seen[event.ID] = true
	}
}

func seedEventIDs() []string {
	return []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12"}
}

func TestCatalogEventsByID(t *testing.T) {
	db := newTestDB(t)
	catalog := service.NewCatalogService(db.Events())
	ctx := context.Background()

	events, err := catalog.EventsByID(ctx, []string{"4", "stale-id", "2"})
	if err != nil {
		t.Fatalf("EventsByID failed: %v", err)
	}
	// Relation order is preserved; ids that no longer resolve are skipped.
	if len(events) != 2 || events[0].ID != "4" || events[1].ID != "2" {
		t.Errorf("got events %v", events)
	}

	events, err = catalog.EventsByID(ctx, nil)
	if err != nil {
		t.Fatalf("EventsByID failed: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("expected no events for empty relation, got %v", events)
	}
}
