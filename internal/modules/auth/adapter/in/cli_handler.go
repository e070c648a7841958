package in

import (
	"context"

	authdto "worksphere/internal/modules/auth/dto"
	authin "worksphere/internal/modules/auth/port/in"
	sessiondto "worksphere/internal/modules/session/dto"
)

type CLIHandler struct {
	usecase authin.Usecase
}

func NewCLIHandler(usecase authin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Login(ctx context.Context, email, password string) authdto.Result {
	return h.usecase.Login(ctx, authdto.LoginInput{Email: email, Password: password})
}

func (h CLIHandler) Register(ctx context.Context, input authdto.RegisterInput) authdto.Result {
	return h.usecase.Register(ctx, input)
}

// Google exchanges credential when given, otherwise runs the interactive
// provider sign-in.
func (h CLIHandler) Google(ctx context.Context, credential string) authdto.Result {
	if credential != "" {
		return h.usecase.FederatedAuth(ctx, credential)
	}
	return h.usecase.SignInWithProvider(ctx)
}

func (h CLIHandler) RefreshProfile(ctx context.Context) (sessiondto.UserProfile, error) {
	return h.usecase.Profile(ctx)
}

func (h CLIHandler) Claims(ctx context.Context) (authdto.TokenClaims, error) {
	return h.usecase.Claims(ctx)
}
