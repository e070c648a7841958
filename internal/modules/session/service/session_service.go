package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"worksphere/internal/modules/session/domain"
	sessionout "worksphere/internal/modules/session/port/out"
	apperrors "worksphere/internal/platform/errors"
)

type SessionService struct {
	store sessionout.KVStore
	nav   sessionout.EntryNavigator
	log   *slog.Logger
}

func NewSessionService(store sessionout.KVStore, nav sessionout.EntryNavigator, log *slog.Logger) *SessionService {
	return &SessionService{store: store, nav: nav, log: log}
}

func (s *SessionService) IsAuthenticated(ctx context.Context) bool {
	_, ok := s.Token(ctx)
	return ok
}

func (s *SessionService) Token(ctx context.Context) (string, bool) {
	token, ok, err := s.store.Get(ctx, domain.KeyToken)
	if err != nil {
		s.log.Warn("read token", "error", err)
		return "", false
	}
	if !ok || token == "" {
		return "", false
	}
	return token, true
}

func (s *SessionService) Save(ctx context.Context, session domain.Session) error {
	if strings.TrimSpace(session.Token) == "" {
		return fmt.Errorf("%w: token is required", apperrors.ErrInvalidInput)
	}
	payload, err := json.Marshal(session.User)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	if err := s.store.SetMany(ctx, map[string]string{
		domain.KeyToken: session.Token,
		domain.KeyUser:  string(payload),
	}); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	s.log.Info("session saved", "username", session.User.Username)
	return nil
}

func (s *SessionService) Clear(ctx context.Context) error {
	if err := s.store.Delete(ctx, domain.KeyToken, domain.KeyUser); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	s.log.Info("session cleared")
	if s.nav == nil {
		return nil
	}
	return s.nav.ToEntry(ctx)
}

// CurrentUser decodes the cached profile. A missing or malformed entry is
// reported as absent.
func (s *SessionService) CurrentUser(ctx context.Context) (domain.UserProfile, bool) {
	raw, ok, err := s.store.Get(ctx, domain.KeyUser)
	if err != nil {
		s.log.Warn("read user", "error", err)
		return domain.UserProfile{}, false
	}
	if !ok || raw == "" {
		return domain.UserProfile{}, false
	}
	user := domain.UserProfile{}
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		s.log.Warn("cached user is malformed", "error", err)
		return domain.UserProfile{}, false
	}
	return user, true
}

// UpdateUser replaces the cached profile, keeping the token.
func (s *SessionService) UpdateUser(ctx context.Context, user domain.UserProfile) error {
	if !s.IsAuthenticated(ctx) {
		return apperrors.ErrNotAuthenticated
	}
	payload, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	if err := s.store.SetMany(ctx, map[string]string{domain.KeyUser: string(payload)}); err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

func (s *SessionService) Theme(ctx context.Context) domain.Theme {
	raw, ok, err := s.store.Get(ctx, domain.KeyTheme)
	if err != nil || !ok {
		return domain.ThemeLight
	}
	theme, err := domain.ParseTheme(raw)
	if err != nil {
		return domain.ThemeLight
	}
	return theme
}

func (s *SessionService) SetTheme(ctx context.Context, theme domain.Theme) error {
	if err := s.store.SetMany(ctx, map[string]string{domain.KeyTheme: string(theme)}); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	return nil
}

func (s *SessionService) ToggleTheme(ctx context.Context) (domain.Theme, error) {
	next := s.Theme(ctx).Toggle()
	if err := s.SetTheme(ctx, next); err != nil {
		return "", err
	}
	return next, nil
}
