package usecase_test

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	sessionout "worksphere/internal/modules/session/adapter/out"
	"worksphere/internal/modules/session/domain"
	sessiondto "worksphere/internal/modules/session/dto"
	sessionin "worksphere/internal/modules/session/port/in"
	"worksphere/internal/modules/session/service"
	"worksphere/internal/modules/session/usecase"
	apperrors "worksphere/internal/platform/errors"
	"worksphere/internal/platform/logger"
)

type harness struct {
	uc        sessionin.Usecase
	store     *sessionout.SQLiteKVStore
	redirects int
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	store, err := sessionout.NewSQLiteKVStore(filepath.Join(t.TempDir(), "worksphere.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	h := &harness{store: store}
	nav := sessionout.NewFuncNavigator(func(context.Context) error {
		h.redirects++
		return nil
	})
	h.uc = usecase.NewInteractor(service.NewSessionService(store, nav, logger.Discard()))
	return h
}

func TestSaveThenCurrentUserRoundTrips(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	ctx := context.Background()
	user := sessiondto.UserProfile{
		ID:         7,
		FirstName:  "Ada",
		LastName:   "Lovelace",
		Username:   "ada",
		Email:      "ada@example.com",
		UserType:   "worker",
		TrustScore: 82.5,
		Level:      3,
		XPPoints:   420,
	}
	if err := h.uc.Save(ctx, "tok-1", user); err != nil {
		t.Fatalf("save: %v", err)
	}
	if !h.uc.IsAuthenticated(ctx) {
		t.Fatalf("expected authenticated after save")
	}
	got, ok := h.uc.CurrentUser(ctx)
	if !ok {
		t.Fatalf("expected cached user")
	}
	if !reflect.DeepEqual(got, user) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, user)
	}
}

func TestClearRemovesSessionAndRedirects(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	ctx := context.Background()
	if err := h.uc.Save(ctx, "tok-1", sessiondto.UserProfile{Username: "ada"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := h.uc.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if h.uc.IsAuthenticated(ctx) {
		t.Fatalf("expected unauthenticated after clear")
	}
	if _, ok := h.uc.CurrentUser(ctx); ok {
		t.Fatalf("expected no cached user after clear")
	}
	if h.redirects != 1 {
		t.Fatalf("expected one redirect to entry, got %d", h.redirects)
	}
}

func TestMalformedUserIsAbsentNotError(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	ctx := context.Background()
	if err := h.store.SetMany(ctx, map[string]string{domain.KeyToken: "tok", domain.KeyUser: "{not json"}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, ok := h.uc.CurrentUser(ctx); ok {
		t.Fatalf("malformed profile must read as absent")
	}
	if !h.uc.IsAuthenticated(ctx) {
		t.Fatalf("token presence alone decides authentication")
	}
}

func TestSaveRequiresToken(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	err := h.uc.Save(context.Background(), " ", sessiondto.UserProfile{Username: "ada"})
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestUpdateUserKeepsTokenAndNeedsSession(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	ctx := context.Background()
	if err := h.uc.UpdateUser(ctx, sessiondto.UserProfile{Username: "ada"}); !errors.Is(err, apperrors.ErrNotAuthenticated) {
		t.Fatalf("expected not authenticated, got %v", err)
	}
	if err := h.uc.Save(ctx, "tok-1", sessiondto.UserProfile{Username: "ada"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := h.uc.UpdateUser(ctx, sessiondto.UserProfile{Username: "ada", TrustScore: 90}); err != nil {
		t.Fatalf("update: %v", err)
	}
	user, _ := h.uc.CurrentUser(ctx)
	token, _ := h.uc.Token(ctx)
	if user.TrustScore != 90 || token != "tok-1" {
		t.Fatalf("expected replaced profile and kept token, got %+v %q", user, token)
	}
}

func TestThemeDefaultsToggleAndValidation(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	ctx := context.Background()
	if got := h.uc.Theme(ctx); got != "light" {
		t.Fatalf("expected light default, got %q", got)
	}
	next, err := h.uc.ToggleTheme(ctx)
	if err != nil || next != "dark" {
		t.Fatalf("expected dark after toggle, got %q %v", next, err)
	}
	if got := h.uc.Theme(ctx); got != "dark" {
		t.Fatalf("expected persisted dark, got %q", got)
	}
	if err := h.uc.SetTheme(ctx, "neon"); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid theme error, got %v", err)
	}
}
