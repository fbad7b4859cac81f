package domain

import "context"

// User represents a registered user of the application. The JSON tags define
// how user records are encoded inside the persisted store; PasswordHash never
// leaves the store layer in API responses (the handler DTOs strip it).
//
// RegisteredEvents and CreatedEvents are maintained as sets: an event id
// appears at most once, in insertion order.
type User struct {
	ID               string   `json:"id"`
	Email            string   `json:"email"`
	Name             string   `json:"name"`
	Avatar           string   `json:"avatar,omitempty"`
	PasswordHash     string   `json:"password,omitempty"`
	RegisteredEvents []string `json:"registeredEvents"`
	CreatedEvents    []string `json:"createdEvents"`
}

// Clone returns a detached copy of the user. Session state holds clones so
// that store mutations never alias the in-memory session user.
func (u *User) Clone() *User {
	c := *u
	c.RegisteredEvents = append([]string(nil), u.RegisteredEvents...)
	c.CreatedEvents = append([]string(nil), u.CreatedEvents...)
	return &c
}

// Session status values. A session starts in StatusRestoring until Restore
// has checked the store for a persisted current user.
const (
	StatusRestoring       = "restoring"
	StatusUnauthenticated = "unauthenticated"
	StatusAuthenticated   = "authenticated"
)

// AuthState is a snapshot of the session: which user, if any, is currently
// authenticated. User is nil unless Status is StatusAuthenticated.
type AuthState struct {
	User   *User
	Status string
}

// UserRepository defines persistence operations over the "users" and
// "currentUser" store keys.
type UserRepository interface {
	// List returns every stored user record, in insertion order.
	List(ctx context.Context) ([]User, error)
	// GetByEmail returns the user with the given email, or ErrNotFound.
	GetByEmail(ctx context.Context, email string) (*User, error)
	// Create appends a new user. Returns ErrUserAlreadyExists if the email
	// is already taken.
	Create(ctx context.Context, user *User) error
	// Commit writes the current-user record and, when a matching entry
	// exists, folds the user's membership relations back into the users
	// collection. Both writes happen in one transaction. A user absent from
	// the collection (an external-identity user) is skipped, not an error.
	Commit(ctx context.Context, user *User) error
	// Current returns the persisted current user, or ErrNotFound.
	Current(ctx context.Context) (*User, error)
	// SetCurrent persists the given user as the current user.
	SetCurrent(ctx context.Context, user *User) error
	// ClearCurrent removes the current-user record. Clearing an absent
	// record is not an error.
	ClearCurrent(ctx context.Context) error
}
