package session

import (
	"context"
	"errors"
	"fmt"
)

// Persisted keys.
const (
	KeyIsLoggedIn = "isLoggedIn"
	KeyUserName   = "userName"
	KeyDarkMode   = "darkMode"
)

const keyPrefix = "bluesky:session:"

// Session is the explicit holder of the persisted flags of one browser session.
type Session struct {
	id    string
	store Store
}

func New(id string, store Store) *Session {
	return &Session{id: id, store: store}
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) key(name string) string {
	return keyPrefix + s.id + ":" + name
}

func (s *Session) get(ctx context.Context, name string) (string, error) {
	v, err := s.store.Get(ctx, s.key(name))
	if errors.Is(err, ErrKeyNotFound) {
		return "", nil
	}
	return v, err
}

func (s *Session) IsLoggedIn(ctx context.Context) (bool, error) {
	v, err := s.get(ctx, KeyIsLoggedIn)
	return v == "true", err
}

func (s *Session) UserName(ctx context.Context) (string, error) {
	return s.get(ctx, KeyUserName)
}

func (s *Session) DarkMode(ctx context.Context) (bool, error) {
	v, err := s.get(ctx, KeyDarkMode)
	return v == "true", err
}

// Login records the logged-in flag and display name.
func (s *Session) Login(ctx context.Context, userName string) error {
	if err := s.store.Set(ctx, s.key(KeyIsLoggedIn), "true"); err != nil {
		return fmt.Errorf("failed to set login flag: %w", err)
	}
	if err := s.store.Set(ctx, s.key(KeyUserName), userName); err != nil {
		return fmt.Errorf("failed to set user name: %w", err)
	}
	return nil
}

// Logout removes the login keys. The dark-mode preference stays.
func (s *Session) Logout(ctx context.Context) error {
	return s.store.Delete(ctx, s.key(KeyIsLoggedIn), s.key(KeyUserName))
}

// ToggleDarkMode flips and persists the dark-mode flag, returning the new value.
func (s *Session) ToggleDarkMode(ctx context.Context) (bool, error) {
	cur, err := s.DarkMode(ctx)
	if err != nil {
		return false, err
	}
	next := !cur
	value := "false"
	if next {
		value = "true"
	}
	if err := s.store.Set(ctx, s.key(KeyDarkMode), value); err != nil {
		return cur, fmt.Errorf("failed to set dark mode: %w", err)
	}
	return next, nil
}
