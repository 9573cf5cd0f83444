// Package session tracks the authenticated identity for the lifetime of
// the program. It owns no persistence: the credential itself lives in the
// gateway's cookie jar.
package session

import (
	"context"

	"github.com/neevamind/mindcli/internal/api"
)

// Gateway is the slice of the API client the store needs.
type Gateway interface {
	CheckAuth(ctx context.Context) (*api.User, error)
	Login(ctx context.Context, email, password string) (*api.User, error)
	Signup(ctx context.Context, name, email, password string) (*api.User, error)
	Logout(ctx context.Context) error
}

// Store holds the current user, or nil when unauthenticated. All access
// happens on the UI event loop, so no locking.
type Store struct {
	gw   Gateway
	user *api.User
}

func New(gw Gateway) *Store {
	return &Store{gw: gw}
}

// User returns the current identity, nil when unauthenticated.
func (s *Store) User() *api.User { return s.user }

func (s *Store) Authenticated() bool { return s.user != nil }

// Check probes for an existing credential-backed session. Absence and
// failure are both silent: the store just stays empty.
func (s *Store) Check(ctx context.Context) *api.User {
	user, err := s.gw.CheckAuth(ctx)
	if err != nil {
		return nil
	}
	s.user = user
	return user
}

// Login establishes a session. The store is only mutated on success; a
// rejection comes back with the server's reason.
func (s *Store) Login(ctx context.Context, email, password string) (*api.User, error) {
	user, err := s.gw.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	s.user = user
	return user, nil
}

// Signup creates an account and establishes a session. Mismatched
// passwords are rejected locally, before any network call.
func (s *Store) Signup(ctx context.Context, name, email, password, confirm string) (*api.User, error) {
	if password != confirm {
		return nil, &api.Error{Reason: "Passwords do not match"}
	}
	user, err := s.gw.Signup(ctx, name, email, password)
	if err != nil {
		return nil, err
	}
	s.user = user
	return user, nil
}

// Logout ends the session. The store is cleared only once the server
// acknowledges, so a failed logout leaves the session usable.
func (s *Store) Logout(ctx context.Context) error {
	if err := s.gw.Logout(ctx); err != nil {
		return err
	}
	s.user = nil
	return nil
}
