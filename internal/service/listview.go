package service

import (
	"sort"
	"strings"
	"time"

	"github.com/campusevents/campus-events/internal/domain"
)

// Sort keys for the event list.
const (
	SortByDate       = "date"       // ascending by parsed date
	SortByPopularity = "popularity" // descending by attendee count
)

// CategoryAll selects every category.
const CategoryAll = "all"

// ListQuery is the input to the event list view: a free-text search term, a
// category filter, and a sort key. The zero Category and Sort mean "all" and
// SortByDate respectively.
type ListQuery struct {
	Search   string
	Category string
	Sort     string
}

// FilterEvents derives the visible, ordered event list from the catalog and
// query. It is a pure function: identical inputs yield identical ordered
// output, and the input slice is never modified.
//
// Filtering matches the search term case-insensitively against title,
// description, or location, and requires category equality unless the filter
// is "all". Sorting is stable, so events whose keys compare equal (including
// events with unparsable dates) keep their catalog order.
func FilterEvents(catalog []domain.Event, q ListQuery) []domain.Event {
	term := strings.ToLower(q.Search)

	filtered := make([]domain.Event, 0, len(catalog))
	for _, ev := range catalog {
		if term != "" &&
			!strings.Contains(strings.ToLower(ev.Title), term) &&
			!strings.Contains(strings.ToLower(ev.Description), term) &&
			!strings.Contains(strings.ToLower(ev.Location), term) {
			continue
		}
		if q.Category != "" && q.Category != CategoryAll && string(ev.Category) != q.Category {
			continue
		}
		filtered = append(filtered, ev)
	}

	switch q.Sort {
	case SortByPopularity:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Attendees > filtered[j].Attendees
		})
	default:
		sort.SliceStable(filtered, func(i, j int) bool {
			return eventTimestamp(filtered[i].Date) < eventTimestamp(filtered[j].Date)
		})
	}

	return filtered
}

// TotalAttendees sums the attendee counts of the given events.
func TotalAttendees(events []domain.Event) int {
	total := 0
	for _, ev := range events {
		total += ev.Attendees
	}
	return total
}

// eventTimestamp parses an ISO-8601 date for sorting. Unparsable dates sort
// as timestamp zero; their relative order is left to the stable sort.
func eventTimestamp(date string) int64 {
	t, err := time.Parse(time.RFC3339, date)
	if err != nil {
		return 0
	}
	return t.UnixNano()
}
