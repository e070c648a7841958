package usecase

import (
	"context"
	"errors"
	"log/slog"

	"worksphere/internal/modules/auth/domain"
	authdto "worksphere/internal/modules/auth/dto"
	authin "worksphere/internal/modules/auth/port/in"
	authout "worksphere/internal/modules/auth/port/out"
	"worksphere/internal/modules/auth/service"
	sessiondto "worksphere/internal/modules/session/dto"
	"worksphere/internal/platform/notice"
)

const (
	MsgSignedIn       = "Signed in successfully"
	MsgAccountCreated = "Account created successfully"
)

type Interactor struct {
	svc      *service.AuthService
	provider authout.IdentityProvider
	log      *slog.Logger
}

func NewInteractor(svc *service.AuthService, provider authout.IdentityProvider, log *slog.Logger) authin.Usecase {
	return &Interactor{svc: svc, provider: provider, log: log}
}

func (i *Interactor) Login(ctx context.Context, input authdto.LoginInput) authdto.Result {
	req := domain.LoginRequest{Email: input.Email, Password: input.Password}
	if err := req.Validate(); err != nil {
		return rejected(err)
	}
	return finish(i.svc.Login(ctx, req), MsgSignedIn)
}

func (i *Interactor) Register(ctx context.Context, input authdto.RegisterInput) authdto.Result {
	req := domain.RegistrationRequest{
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Email:       input.Email,
		Username:    input.Username,
		UserType:    input.UserType,
		Password:    input.Password,
		Confirm:     input.Confirm,
		AcceptTerms: input.AcceptTerms,
	}
	if err := req.Validate(); err != nil {
		return rejected(err)
	}
	return finish(i.svc.Register(ctx, req), MsgAccountCreated)
}

func (i *Interactor) FederatedAuth(ctx context.Context, credential string) authdto.Result {
	return finish(i.svc.FederatedAuth(ctx, domain.FederatedRequest{Credential: credential}), MsgSignedIn)
}

// SignInWithProvider runs the provider's interactive sign-in and exchanges
// the credential it yields. An unavailable provider sets Fallback so the
// caller can offer manual entry.
func (i *Interactor) SignInWithProvider(ctx context.Context) authdto.Result {
	if i.provider == nil {
		return unavailable()
	}
	if err := i.provider.Available(ctx); err != nil {
		i.log.Warn("identity provider unavailable", "error", err)
		return unavailable()
	}
	credential, err := i.provider.Credential(ctx)
	if err != nil {
		i.log.Warn("identity provider sign-in failed", "error", err)
		return authdto.Result{Message: domain.MsgFederatedFailed, Notice: notice.Error(domain.MsgFederatedFailed)}
	}
	return i.FederatedAuth(ctx, credential)
}

func (i *Interactor) ProviderAvailable(ctx context.Context) bool {
	return i.provider != nil && i.provider.Available(ctx) == nil
}

func (i *Interactor) Profile(ctx context.Context) (sessiondto.UserProfile, error) {
	return i.svc.Profile(ctx)
}

func (i *Interactor) Claims(ctx context.Context) (authdto.TokenClaims, error) {
	return i.svc.Claims(ctx)
}

func rejected(err error) authdto.Result {
	msg := err.Error()
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		msg = verr.Message
	}
	return authdto.Result{Message: msg, Notice: notice.Error(msg)}
}

func unavailable() authdto.Result {
	return authdto.Result{
		Message:  domain.MsgProviderUnavailable,
		Notice:   notice.Error(domain.MsgProviderUnavailable),
		Fallback: true,
	}
}

func finish(res authdto.Result, success string) authdto.Result {
	if res.Success {
		res.Notice = notice.Success(success)
		return res
	}
	res.Notice = notice.Error(res.Message)
	return res
}
