package in

import (
	"context"

	sessiondto "worksphere/internal/modules/session/dto"
	sessionin "worksphere/internal/modules/session/port/in"
)

type CLIHandler struct {
	usecase sessionin.Usecase
}

func NewCLIHandler(usecase sessionin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) IsAuthenticated(ctx context.Context) bool {
	return h.usecase.IsAuthenticated(ctx)
}

func (h CLIHandler) CurrentUser(ctx context.Context) (sessiondto.UserProfile, bool) {
	return h.usecase.CurrentUser(ctx)
}

func (h CLIHandler) Logout(ctx context.Context) error {
	return h.usecase.Clear(ctx)
}

func (h CLIHandler) WhoAmI(ctx context.Context) sessiondto.WhoAmIOutput {
	token, authed := h.usecase.Token(ctx)
	user, hasUser := h.usecase.CurrentUser(ctx)
	return sessiondto.WhoAmIOutput{Authenticated: authed, HasUser: hasUser, User: user, Token: token}
}

func (h CLIHandler) Theme(ctx context.Context) string {
	return h.usecase.Theme(ctx)
}

func (h CLIHandler) SetTheme(ctx context.Context, theme string) error {
	return h.usecase.SetTheme(ctx, theme)
}

func (h CLIHandler) ToggleTheme(ctx context.Context) (string, error) {
	return h.usecase.ToggleTheme(ctx)
}
