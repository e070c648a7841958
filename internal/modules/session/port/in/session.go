package in

import (
	"context"

	"worksphere/internal/modules/session/dto"
)

type Usecase interface {
	IsAuthenticated(ctx context.Context) bool
	Save(ctx context.Context, token string, user dto.UserProfile) error
	Clear(ctx context.Context) error
	CurrentUser(ctx context.Context) (dto.UserProfile, bool)
	Token(ctx context.Context) (string, bool)
	UpdateUser(ctx context.Context, user dto.UserProfile) error
	Theme(ctx context.Context) string
	SetTheme(ctx context.Context, theme string) error
	ToggleTheme(ctx context.Context) (string, error)
}
