package in

import (
	"context"

	authdto "worksphere/internal/modules/auth/dto"
	sessiondto "worksphere/internal/modules/session/dto"
)

type Usecase interface {
	Login(ctx context.Context, input authdto.LoginInput) authdto.Result
	Register(ctx context.Context, input authdto.RegisterInput) authdto.Result
	FederatedAuth(ctx context.Context, credential string) authdto.Result
	SignInWithProvider(ctx context.Context) authdto.Result
	ProviderAvailable(ctx context.Context) bool
	Profile(ctx context.Context) (sessiondto.UserProfile, error)
	Claims(ctx context.Context) (authdto.TokenClaims, error)
}
