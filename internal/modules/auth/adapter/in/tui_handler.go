package in

import (
	"context"

	authdto "worksphere/internal/modules/auth/dto"
	authin "worksphere/internal/modules/auth/port/in"
	sessiondto "worksphere/internal/modules/session/dto"
)

type TUIHandler struct {
	usecase authin.Usecase
}

func NewTUIHandler(usecase authin.Usecase) TUIHandler {
	return TUIHandler{usecase: usecase}
}

func (h TUIHandler) Login(ctx context.Context, input authdto.LoginInput) authdto.Result {
	return h.usecase.Login(ctx, input)
}

func (h TUIHandler) Register(ctx context.Context, input authdto.RegisterInput) authdto.Result {
	return h.usecase.Register(ctx, input)
}

func (h TUIHandler) FederatedAuth(ctx context.Context, credential string) authdto.Result {
	return h.usecase.FederatedAuth(ctx, credential)
}

func (h TUIHandler) SignInWithProvider(ctx context.Context) authdto.Result {
	return h.usecase.SignInWithProvider(ctx)
}

func (h TUIHandler) Profile(ctx context.Context) (sessiondto.UserProfile, error) {
	return h.usecase.Profile(ctx)
}
