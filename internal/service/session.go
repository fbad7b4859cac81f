package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/campusevents/campus-events/internal/domain"
)

// SessionService owns the authentication lifecycle and the user's membership
// relations (registered and created events). At most one user is
// authenticated per running instance; every mutation is synchronized back to
// the persisted store. The service is an explicit dependency of its
// consumers, constructed once at startup.
type SessionService struct {
	users    domain.UserRepository
	notifier Notifier
	provider IdentityProvider

	jwtSecret  []byte
	bcryptCost int

	mu     sync.Mutex
	status string
	user   *domain.User // detached copy, never aliased into the store
}

// NewSessionService creates a SessionService. The session starts in the
// restoring state until Restore has run.
func NewSessionService(users domain.UserRepository, notifier Notifier, provider IdentityProvider, jwtSecret string, bcryptCost int) *SessionService {
	return &SessionService{
		users:      users,
		notifier:   notifier,
		provider:   provider,
		jwtSecret:  []byte(jwtSecret),
		bcryptCost: bcryptCost,
		status:     domain.StatusRestoring,
	}
}

// Restore loads a previously persisted current-user record. The session
// becomes authenticated with that user, or unauthenticated if no record
// exists. Restore never fails: a store error is logged and treated the same
// as an absent record.
func (s *SessionService) Restore(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.users.Current(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			slog.Warn("session restore failed, starting unauthenticated", "error", err)
		}
		s.status = domain.StatusUnauthenticated
		s.user = nil
		return
	}

	s.status = domain.StatusAuthenticated
	s.user = user
	slog.Info("session restored", "user", user.Email)
}

// Login authenticates by exact email match and password check against the
// stored users collection. On success the user becomes the persisted current
// user. Failure is reported as ErrInvalidCredentials without distinguishing
// an unknown email from a wrong password.
func (s *SessionService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	stored, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	user := stored.Clone()
	user.PasswordHash = ""
	if err := s.users.SetCurrent(ctx, user); err != nil {
		return nil, fmt.Errorf("persist current user: %w", err)
	}

	s.setAuthenticated(user)
	return user.Clone(), nil
}

// Signup creates a new user with empty membership relations and
// authenticates as them. Returns ErrUserAlreadyExists if the email is taken.
func (s *SessionService) Signup(ctx context.Context, email, password, name string) (*domain.User, error) {
	if email == "" || password == "" || name == "" {
		return nil, fmt.Errorf("%w: email, password, and name are required", domain.ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		ID:               nextID(),
		Email:            email,
		Name:             name,
		PasswordHash:     string(hash),
		RegisteredEvents: []string{},
		CreatedEvents:    []string{},
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	user.PasswordHash = ""
	if err := s.users.SetCurrent(ctx, user); err != nil {
		return nil, fmt.Errorf("persist current user: %w", err)
	}

	s.setAuthenticated(user)
	return user.Clone(), nil
}

// LoginWithGoogle authenticates through the external identity provider. The
// resulting user is persisted as the current user but is not added to the
// users collection: external identities have no local credential record.
func (s *SessionService) LoginWithGoogle(ctx context.Context) (*domain.User, error) {
	ident, err := s.provider.Authenticate(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidCredentials, err)
	}

	user := &domain.User{
		ID:               "google_" + ident.Subject,
		Email:            ident.Email,
		Name:             ident.Name,
		Avatar:           ident.Avatar,
		RegisteredEvents: []string{},
		CreatedEvents:    []string{},
	}

	if err := s.users.SetCurrent(ctx, user); err != nil {
		return nil, fmt.Errorf("persist current user: %w", err)
	}

	s.setAuthenticated(user)
	return user.Clone(), nil
}

// Logout clears the session and removes the persisted current-user record.
// The users collection is untouched.
func (s *SessionService) Logout(ctx context.Context) error {
	if err := s.users.ClearCurrent(ctx); err != nil {
		return fmt.Errorf("clear current user: %w", err)
	}

	s.mu.Lock()
	s.status = domain.StatusUnauthenticated
	s.user = nil
	s.mu.Unlock()
	return nil
}

// RegisterForEvent adds the event id to the current user's registered set.
// Registering twice is a no-op. Requires an authenticated session.
func (s *SessionService) RegisterForEvent(ctx context.Context, eventID string) error {
	return s.mutateRelations(ctx, func(u *domain.User) {
		u.RegisteredEvents = addToSet(u.RegisteredEvents, eventID)
	})
}

// UnregisterFromEvent removes the event id from the current user's
// registered set. Removing an absent id is a no-op. Requires authentication.
func (s *SessionService) UnregisterFromEvent(ctx context.Context, eventID string) error {
	return s.mutateRelations(ctx, func(u *domain.User) {
		u.RegisteredEvents = removeFromSet(u.RegisteredEvents, eventID)
	})
}

// AddCreatedEvent records the event id in the current user's created set.
// Requires authentication.
func (s *SessionService) AddCreatedEvent(ctx context.Context, eventID string) error {
	return s.mutateRelations(ctx, func(u *domain.User) {
		u.CreatedEvents = addToSet(u.CreatedEvents, eventID)
	})
}

// mutateRelations applies fn to a copy of the session user, commits the
// result to the store (current-user record plus the matching users entry in
// one transaction), and only then swaps the session copy.
func (s *SessionService) mutateRelations(ctx context.Context, fn func(*domain.User)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != domain.StatusAuthenticated || s.user == nil {
		return domain.ErrNotAuthenticated
	}

	updated := s.user.Clone()
	fn(updated)

	if err := s.users.Commit(ctx, updated); err != nil {
		return fmt.Errorf("commit user: %w", err)
	}

	s.user = updated
	return nil
}

// SendRegistrationEmail submits a registration notice for the current user
// to the notification sink. Delivery is best-effort: any failure is logged
// and swallowed so the registration flow never fails on notification.
func (s *SessionService) SendRegistrationEmail(ctx context.Context, eventTitle, eventDate, eventLocation string) error {
	s.mu.Lock()
	if s.status != domain.StatusAuthenticated || s.user == nil {
		s.mu.Unlock()
		return domain.ErrNotAuthenticated
	}
	notice := RegistrationNotice{
		UserEmail:     s.user.Email,
		UserName:      s.user.Name,
		EventTitle:    eventTitle,
		EventDate:     eventDate,
		EventLocation: eventLocation,
	}
	s.mu.Unlock()

	if err := s.notifier.SendRegistration(ctx, notice); err != nil {
		slog.Warn("registration notification failed",
			"event", eventTitle, "user", notice.UserEmail, "error", err)
	}
	return nil
}

// State returns a detached snapshot of the session.
func (s *SessionService) State() domain.AuthState {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := domain.AuthState{Status: s.status}
	if s.user != nil {
		state.User = s.user.Clone()
	}
	return state
}

// Authenticated returns the session user when the session is authenticated
// as the given user id. Used by the HTTP middleware to tie bearer tokens to
// the single-session invariant.
func (s *SessionService) Authenticated(userID string) (*domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != domain.StatusAuthenticated || s.user == nil || s.user.ID != userID {
		return nil, false
	}
	return s.user.Clone(), true
}

func (s *SessionService) setAuthenticated(user *domain.User) {
	s.mu.Lock()
	s.status = domain.StatusAuthenticated
	s.user = user.Clone()
	s.mu.Unlock()
}

// IssueToken signs a JWT naming the user, for the HTTP surface's auth cookie.
func (s *SessionService) IssueToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"name":  user.Name,
		"iat":   now.Unix(),
		"exp":   now.Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// ValidateToken parses and validates a JWT token string and returns the user
// id from the sub claim.
func (s *SessionService) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return "", domain.ErrUnauthorized
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", domain.ErrUnauthorized
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return "", domain.ErrUnauthorized
	}
	return sub, nil
}

// addToSet appends id if absent, preserving insertion order.
func addToSet(ids []string, id string) []string {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}

// removeFromSet removes id if present, preserving the order of the rest.
func removeFromSet(ids []string, id string) []string {
	out := ids[:0]
	for _, existing := range ids {
		if existing != id {
			out = append(out, existing)
		}
	}
	return out
}
