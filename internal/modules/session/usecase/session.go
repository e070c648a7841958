package usecase

import (
	"context"
	"fmt"

	"worksphere/internal/modules/session/domain"
	sessiondto "worksphere/internal/modules/session/dto"
	sessionin "worksphere/internal/modules/session/port/in"
	"worksphere/internal/modules/session/service"
	apperrors "worksphere/internal/platform/errors"
)

type Interactor struct {
	svc *service.SessionService
}

func NewInteractor(svc *service.SessionService) sessionin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) IsAuthenticated(ctx context.Context) bool {
	return i.svc.IsAuthenticated(ctx)
}

func (i *Interactor) Save(ctx context.Context, token string, user sessiondto.UserProfile) error {
	return i.svc.Save(ctx, domain.Session{Token: token, User: toDomain(user)})
}

func (i *Interactor) Clear(ctx context.Context) error {
	return i.svc.Clear(ctx)
}

func (i *Interactor) CurrentUser(ctx context.Context) (sessiondto.UserProfile, bool) {
	user, ok := i.svc.CurrentUser(ctx)
	if !ok {
		return sessiondto.UserProfile{}, false
	}
	return toDTO(user), true
}

func (i *Interactor) Token(ctx context.Context) (string, bool) {
	return i.svc.Token(ctx)
}

func (i *Interactor) UpdateUser(ctx context.Context, user sessiondto.UserProfile) error {
	return i.svc.UpdateUser(ctx, toDomain(user))
}

func (i *Interactor) Theme(ctx context.Context) string {
	return string(i.svc.Theme(ctx))
}

func (i *Interactor) SetTheme(ctx context.Context, raw string) error {
	theme, err := domain.ParseTheme(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	return i.svc.SetTheme(ctx, theme)
}

func (i *Interactor) ToggleTheme(ctx context.Context) (string, error) {
	theme, err := i.svc.ToggleTheme(ctx)
	return string(theme), err
}

func toDomain(u sessiondto.UserProfile) domain.UserProfile {
	return domain.UserProfile{
		ID:         u.ID,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Username:   u.Username,
		Email:      u.Email,
		UserType:   domain.UserType(u.UserType),
		TrustScore: u.TrustScore,
		Level:      u.Level,
		XPPoints:   u.XPPoints,
	}
}

func toDTO(u domain.UserProfile) sessiondto.UserProfile {
	return sessiondto.UserProfile{
		ID:         u.ID,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Username:   u.Username,
		Email:      u.Email,
		UserType:   string(u.UserType),
		TrustScore: u.TrustScore,
		Level:      u.Level,
		XPPoints:   u.XPPoints,
	}
}
