package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/sync/singleflight"

	"worksphere/internal/modules/auth/domain"
	authdto "worksphere/internal/modules/auth/dto"
	authout "worksphere/internal/modules/auth/port/out"
	sessiondto "worksphere/internal/modules/session/dto"
	"worksphere/internal/platform/clock"
	apperrors "worksphere/internal/platform/errors"
)

// AuthService is the API client: one call per credential flow plus the
// profile fetch. Every credential call returns a result and never an error.
type AuthService struct {
	gateway  authout.Gateway
	sessions authout.SessionWriter
	clock    clock.Clock
	log      *slog.Logger
	profiles singleflight.Group
}

func NewAuthService(gateway authout.Gateway, sessions authout.SessionWriter, clk clock.Clock, log *slog.Logger) *AuthService {
	return &AuthService{gateway: gateway, sessions: sessions, clock: clk, log: log}
}

type loginBody struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// federatedBody repeats the credential under access_token, the key the
// reference backend reads.
type federatedBody struct {
	Credential  string `json:"credential"`
	AccessToken string `json:"access_token"`
}

type authPayload struct {
	Tokens struct {
		Access string `json:"access"`
	} `json:"tokens"`
	User sessiondto.UserProfile `json:"user"`
}

type profilePayload struct {
	User sessiondto.UserProfile `json:"user"`
}

func (s *AuthService) Login(ctx context.Context, req domain.LoginRequest) authdto.Result {
	return s.exchange(ctx, domain.FlowLogin, loginBody{Username: req.Email, Password: req.Password})
}

func (s *AuthService) Register(ctx context.Context, req domain.RegistrationRequest) authdto.Result {
	return s.exchange(ctx, domain.FlowRegister, req)
}

func (s *AuthService) FederatedAuth(ctx context.Context, req domain.FederatedRequest) authdto.Result {
	return s.exchange(ctx, domain.FlowFederated, federatedBody{Credential: req.Credential, AccessToken: req.Credential})
}

func (s *AuthService) exchange(ctx context.Context, flow domain.Flow, body any) authdto.Result {
	log := s.log.With("flow", string(flow))
	reply, err := s.gateway.PostJSON(ctx, flow.Path(), body)
	if err != nil {
		log.Warn("auth request failed", "error", err)
		return failure(domain.MsgNetworkError)
	}
	if !reply.OK() {
		msg := domain.ErrorMessage(flow, reply.Body)
		log.Info("auth rejected", "status", reply.Status, "message", msg)
		return failure(msg)
	}
	if err := checkShape(authSchema, reply.Raw); err != nil {
		log.Warn("auth response rejected", "error", err)
		return failure(domain.MsgNetworkError)
	}
	payload := authPayload{}
	if err := json.Unmarshal(reply.Raw, &payload); err != nil {
		log.Warn("decode auth response", "error", err)
		return failure(domain.MsgNetworkError)
	}
	if err := s.sessions.Save(ctx, payload.Tokens.Access, payload.User); err != nil {
		log.Error("store session", "error", err)
		return failure(domain.MsgNetworkError)
	}
	log.Info("authenticated", "username", payload.User.Username)
	return authdto.Result{Success: true, Payload: reply.Body}
}

// Profile fetches the signed-in user's profile and replaces the cached copy.
// Overlapping calls share one request.
func (s *AuthService) Profile(ctx context.Context) (sessiondto.UserProfile, error) {
	v, err, _ := s.profiles.Do("profile", func() (any, error) {
		return s.fetchProfile(ctx)
	})
	if err != nil {
		return sessiondto.UserProfile{}, err
	}
	return v.(sessiondto.UserProfile), nil
}

func (s *AuthService) fetchProfile(ctx context.Context) (sessiondto.UserProfile, error) {
	token, ok := s.sessions.Token(ctx)
	if !ok {
		return sessiondto.UserProfile{}, apperrors.ErrNotAuthenticated
	}
	reply, err := s.gateway.GetJSON(ctx, "/profile/", token)
	if err != nil {
		return sessiondto.UserProfile{}, fmt.Errorf("fetch profile: %w", err)
	}
	if !reply.OK() {
		return sessiondto.UserProfile{}, fmt.Errorf("fetch profile: status %d: %s", reply.Status, domain.ErrorMessage(domain.FlowLogin, reply.Body))
	}
	if err := checkShape(profileSchema, reply.Raw); err != nil {
		return sessiondto.UserProfile{}, fmt.Errorf("fetch profile: %w", err)
	}
	payload := profilePayload{}
	if err := json.Unmarshal(reply.Raw, &payload); err != nil {
		return sessiondto.UserProfile{}, fmt.Errorf("decode profile: %w", err)
	}
	if err := s.sessions.UpdateUser(ctx, payload.User); err != nil {
		return sessiondto.UserProfile{}, err
	}
	return payload.User, nil
}

// Claims decodes the stored access token without verifying its signature;
// the client only displays what it holds.
func (s *AuthService) Claims(ctx context.Context) (authdto.TokenClaims, error) {
	token, ok := s.sessions.Token(ctx)
	if !ok {
		return authdto.TokenClaims{}, apperrors.ErrNotAuthenticated
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return authdto.TokenClaims{}, fmt.Errorf("decode access token: %w", err)
	}
	out := authdto.TokenClaims{}
	out.Subject, _ = claims.GetSubject()
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		out.ExpiresAt = exp.Time.UTC()
		out.Expired = !out.ExpiresAt.After(s.clock.Now())
	}
	if iat, err := claims.GetIssuedAt(); err == nil && iat != nil {
		out.IssuedAt = iat.Time.UTC()
	}
	switch v := claims["user_id"].(type) {
	case string:
		out.UserID = v
	case float64:
		out.UserID = fmt.Sprintf("%.0f", v)
	}
	return out, nil
}

func failure(msg string) authdto.Result {
	return authdto.Result{Success: false, Message: msg}
}
