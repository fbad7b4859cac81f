package domain

import "context"

// Category classifies an event. The set is fixed; user-created events must
// use one of these values.
type Category string

const (
	CategoryAcademic Category = "academic"
	CategorySocial   Category = "social"
	CategorySports   Category = "sports"
	CategoryClubs    Category = "clubs"
	CategoryCareer   Category = "career"
)

// Categories lists every valid category, in display order.
var Categories = []Category{
	CategoryAcademic,
	CategorySocial,
	CategorySports,
	CategoryClubs,
	CategoryCareer,
}

// Valid reports whether c is one of the fixed categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryAcademic, CategorySocial, CategorySports, CategoryClubs, CategoryCareer:
		return true
	}
	return false
}

// Event is a catalog entry. Date is kept as the ISO-8601 text it was created
// with and only parsed when sorting or formatting; an unparsable date is not
// an error anywhere in the system. Attendees is display-only and is never
// incremented by registration.
type Event struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Date        string   `json:"date"`
	Location    string   `json:"location"`
	Category    Category `json:"category"`
	Image       string   `json:"image"`
	Attendees   int      `json:"attendees"`
	Price       float64  `json:"price"`
	Tags        []string `json:"tags"`
}

// EventRepository defines persistence operations over the "userEvents" store
// key, which holds events contributed by users. Seed events are compiled in
// and never pass through here.
type EventRepository interface {
	// ListUserEvents returns all user-created events, oldest first.
	ListUserEvents(ctx context.Context) ([]Event, error)
	// AppendUserEvent appends an event to the collection. Events are never
	// mutated or deleted after creation.
	AppendUserEvent(ctx context.Context, event *Event) error
}

// FavoriteRepository defines persistence operations over the
// "favoriteEvents" store key: an ordered list of event ids, scoped to the
// running instance rather than to a user.
type FavoriteRepository interface {
	List(ctx context.Context) ([]string, error)
	Save(ctx context.Context, eventIDs []string) error
}
