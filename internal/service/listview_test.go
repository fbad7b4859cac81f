package service_test

import (
	"testing"

	"github.com/campusevents/campus-events/internal/domain"
	"github.com/campusevents/campus-events/internal/service"
)

func sampleCatalog() []domain.Event {
	return []domain.Event{
		{ID: "1", Title: "Machine Learning Workshop", Description: "Hands-on ML", Location: "Engineering Building", Category: domain.CategoryAcademic, Date: "2025-02-01T14:00:00Z", Attendees: 45},
		{ID: "2", Title: "Winter Formal Dance", Description: "Music and dancing", Location: "Student Union Ballroom", Category: domain.CategorySocial, Date: "2025-01-20T19:00:00Z", Attendees: 120},
	}
}

func eventIDs(events []domain.Event) []string {
	ids := make([]string, len(events))
	for i, ev := range events {
		ids[i] = ev.ID
	}
	return ids
}

func TestFilterEventsSortsByDateAscending(t *testing.T) {
	got := service.FilterEvents(sampleCatalog(), service.ListQuery{Sort: service.SortByDate})
	if len(got) != 2 || got[0].ID != "2" || got[1].ID != "1" {
		t.Errorf("got order %v, want [2 1]", eventIDs(got))
	}

	// The zero sort key means date order too.
	got = service.FilterEvents(sampleCatalog(), service.ListQuery{})
	if len(got) != 2 || got[0].ID != "2" {
		t.Errorf("default sort: got order %v, want [2 1]", eventIDs(got))
	}
}

func TestFilterEventsSortsByPopularity(t *testing.T) {
	got := service.FilterEvents(sampleCatalog(), service.ListQuery{Sort: service.SortByPopularity})
	if len(got) != 2 || got[0].Attendees != 120 || got[1].Attendees != 45 {
		t.Errorf("got order %v", eventIDs(got))
	}
}

func TestFilterEventsSearch(t *testing.T) {
	catalog := sampleCatalog()

	tests := []struct {
		search string
		want   []string
	}{
		{"machine", []string{"1"}},     // title, case-insensitive
		{"DANCING", []string{"2"}},     // description
		{"ballroom", []string{"2"}},    // location
		{"zzz", nil},                   // no match
		{"", []string{"2", "1"}},       // empty term matches everything
	}

	for _, tc := range tests {
		got := service.FilterEvents(catalog, service.ListQuery{Search: tc.search})
		if len(got) != len(tc.want) {
			t.Errorf("search %q: got %v, want %v", tc.search, eventIDs(got), tc.want)
			continue
		}
		for i := range tc.want {
			if got[i].ID != tc.want[i] {
				t.Errorf("search %q: got %v, want %v", tc.search, eventIDs(got), tc.want)
				break
			}
		}
	}
}

func TestFilterEventsCategory(t *testing.T) {
	catalog := sampleCatalog()

	got := service.FilterEvents(catalog, service.ListQuery{Category: "social"})
	if len(got) != 1 || got[0].ID != "2" {
		t.Errorf("category social: got %v", eventIDs(got))
	}

	for _, category := range []string{"", service.CategoryAll} {
		got := service.FilterEvents(catalog, service.ListQuery{Category: category})
		if len(got) != 2 {
			t.Errorf("category %q: got %v, want all events", category, eventIDs(got))
		}
	}
}

func TestFilterEventsIsPure(t *testing.T) {
	catalog := sampleCatalog()
	query := service.ListQuery{Sort: service.SortByPopularity}

	first := service.FilterEvents(catalog, query)
	second := service.FilterEvents(catalog, query)
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatalf("repeated call changed order: %v vs %v", eventIDs(first), eventIDs(second))
		}
	}

	// The input slice is never reordered.
	if catalog[0].ID != "1" || catalog[1].ID != "2" {
		t.Errorf("input catalog was modified: %v", eventIDs(catalog))
	}
}

func TestFilterEventsStableForEqualKeys(t *testing.T) {
	catalog := []domain.Event{
		{ID: "a", Date: "2025-02-01T10:00:00Z", Attendees: 50},
		{ID: "b", Date: "2025-02-01T10:00:00Z", Attendees: 50},
		{ID: "c", Date: "2025-02-01T10:00:00Z", Attendees: 50},
	}

	for _, sortKey := range []string{service.SortByDate, service.SortByPopularity} {
		got := service.FilterEvents(catalog, service.ListQuery{Sort: sortKey})
		if got[0].ID != "a" || got[1].ID != "b" || got[2].ID != "c" {
			t.Errorf("sort %q: equal keys reordered to %v", sortKey, eventIDs(got))
		}
	}
}

func TestFilterEventsUnparsableDates(t *testing.T) {
	catalog := []domain.Event{
		{ID: "later", Date: "2025-03-01T10:00:00Z"},
		{ID: "bad1", Date: "next tuesday"},
		{ID: "bad2", Date: ""},
	}

	got := service.FilterEvents(catalog, service.ListQuery{Sort: service.SortByDate})
	// Unparsable dates sort as zero, before any real date, keeping their
	// relative order.
	if got[0].ID != "bad1" || got[1].ID != "bad2" || got[2].ID != "later" {
		t.Errorf("got order %v", eventIDs(got))
	}
}

func TestTotalAttendees(t *testing.T) {
	if got := service.TotalAttendees(sampleCatalog()); got != 165 {
		t.Errorf("got %d, want 165", got)
	}
	if got := service.TotalAttendees(nil); got != 0 {
		t.Errorf("got %d for empty list, want 0", got)
	}
}
