package service

import (
	"context"

	"github.com/google/uuid"
)

// ExternalIdentity is the profile an identity provider vouches for: a stable
// external subject id plus basic profile fields.
type ExternalIdentity struct {
	Subject string
	Email   string
	Name    string
	Avatar  string
}

// IdentityProvider is the external collaborator behind "login with Google".
// Given a provider assertion it returns a stable identity or an auth error.
type IdentityProvider interface {
	Authenticate(ctx context.Context) (*ExternalIdentity, error)
}

// StubIdentityProvider stands in for a real OAuth provider and always
// succeeds with a synthetic profile. Each authentication mints a fresh
// subject, so stub sessions never collide with one another or with local
// user ids.
type StubIdentityProvider struct{}

func (StubIdentityProvider) Authenticate(ctx context.Context) (*ExternalIdentity, error) {
	return &ExternalIdentity{
		Subject: uuid.NewString(),
		Email:   "user@gmail.com",
		Name:    "Google User",
		Avatar:  "https://images.pexels.com/photos/1239291/pexels-photo-1239291.jpeg?auto=compress&cs=tinysrgb&w=100",
	}, nil
}
