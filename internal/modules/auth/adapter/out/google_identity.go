package out

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	gooidc "github.com/coreos/go-oidc/v3/oidc"
	"github.com/gorilla/mux"
	"golang.org/x/oauth2"

	apperrors "worksphere/internal/platform/errors"
	"worksphere/internal/platform/id"
	"worksphere/internal/platform/logger"
)

const callbackPath = "/callback"

// GoogleConfig configures the loopback OAuth2 sign-in. Open presents the
// authorization URL to the user, usually by launching a browser.
type GoogleConfig struct {
	ClientID     string
	ClientSecret string
	Issuer       string
	HTTPClient   *http.Client
	Open         func(ctx context.Context, url string) error
	IDs          id.Generator
	Log          *slog.Logger
	Timeout      time.Duration
}

// GoogleIdentityProvider obtains an OAuth access token from Google using the
// authorization code flow with a callback server on 127.0.0.1.
type GoogleIdentityProvider struct {
	cfg GoogleConfig

	mu       sync.Mutex
	provider *gooidc.Provider
}

func NewGoogleIdentityProvider(cfg GoogleConfig) *GoogleIdentityProvider {
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: 30 * time.Second}
	}
	if cfg.IDs == nil {
		cfg.IDs = id.UUID{}
	}
	if cfg.Log == nil {
		cfg.Log = logger.Discard()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Minute
	}
	cfg.Issuer = strings.TrimSuffix(strings.TrimSpace(cfg.Issuer), "/")
	return &GoogleIdentityProvider{cfg: cfg}
}

// Available loads the issuer's discovery document once; later calls reuse it.
func (p *GoogleIdentityProvider) Available(ctx context.Context) error {
	_, err := p.discover(ctx)
	return err
}

func (p *GoogleIdentityProvider) discover(ctx context.Context) (*gooidc.Provider, error) {
	if strings.TrimSpace(p.cfg.ClientID) == "" {
		return nil, fmt.Errorf("%w: google client id is not configured", apperrors.ErrProviderUnavailable)
	}
	if p.cfg.Issuer == "" {
		return nil, fmt.Errorf("%w: issuer is not configured", apperrors.ErrProviderUnavailable)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.provider != nil {
		return p.provider, nil
	}
	op, err := gooidc.NewProvider(p.clientContext(ctx), p.cfg.Issuer)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrProviderUnavailable, err)
	}
	p.provider = op
	return op, nil
}

func (p *GoogleIdentityProvider) clientContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, oauth2.HTTPClient, p.cfg.HTTPClient)
}

type callbackResult struct {
	code string
	err  error
}

// Credential runs one interactive sign-in and returns the access token.
func (p *GoogleIdentityProvider) Credential(ctx context.Context) (string, error) {
	op, err := p.discover(ctx)
	if err != nil {
		return "", err
	}
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return "", fmt.Errorf("listen for callback: %w", err)
	}
	redirect := fmt.Sprintf("http://%s%s", listener.Addr().String(), callbackPath)
	conf := &oauth2.Config{
		ClientID:     p.cfg.ClientID,
		ClientSecret: p.cfg.ClientSecret,
		RedirectURL:  redirect,
		Endpoint:     op.Endpoint(),
		Scopes:       []string{gooidc.ScopeOpenID, "profile", "email"},
	}
	state := p.cfg.IDs.New()
	nonce := p.cfg.IDs.New()

	results := make(chan callbackResult, 1)
	server := &http.Server{Handler: callbackRouter(state, results), ReadHeaderTimeout: 10 * time.Second}
	go func() {
		if serveErr := server.Serve(listener); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			p.cfg.Log.Warn("callback server stopped", "error", serveErr)
		}
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	authURL := conf.AuthCodeURL(state,
		gooidc.Nonce(nonce),
		oauth2.SetAuthURLParam("prompt", "select_account"),
	)
	if p.cfg.Open == nil {
		return "", errors.New("no way to present the sign-in page")
	}
	if err := p.cfg.Open(ctx, authURL); err != nil {
		return "", fmt.Errorf("open sign-in page: %w", err)
	}
	p.cfg.Log.Info("waiting for google sign-in", "redirect", redirect)

	waitCtx, cancel := context.WithTimeout(ctx, p.cfg.Timeout)
	defer cancel()
	var res callbackResult
	select {
	case res = <-results:
	case <-waitCtx.Done():
		return "", fmt.Errorf("wait for sign-in: %w", waitCtx.Err())
	}
	if res.err != nil {
		return "", res.err
	}
	return p.exchange(ctx, op, conf, res.code, nonce)
}

func (p *GoogleIdentityProvider) exchange(ctx context.Context, op *gooidc.Provider, conf *oauth2.Config, code, nonce string) (string, error) {
	ctx = p.clientContext(ctx)
	token, err := conf.Exchange(ctx, code)
	if err != nil {
		return "", fmt.Errorf("exchange code for token: %w", err)
	}
	rawID, ok := token.Extra("id_token").(string)
	if !ok || rawID == "" {
		return "", errors.New("missing id_token in token response")
	}
	idToken, err := op.Verifier(&gooidc.Config{ClientID: p.cfg.ClientID}).Verify(ctx, rawID)
	if err != nil {
		return "", fmt.Errorf("verify id_token: %w", err)
	}
	if idToken.Nonce != nonce {
		return "", errors.New("invalid nonce")
	}
	if token.AccessToken == "" {
		return "", errors.New("missing access token")
	}
	return token.AccessToken, nil
}

// callbackRouter accepts exactly one redirect carrying the expected state.
func callbackRouter(state string, results chan<- callbackResult) http.Handler {
	var once sync.Once
	deliver := func(res callbackResult) {
		once.Do(func() { results <- res })
	}
	r := mux.NewRouter()
	r.HandleFunc(callbackPath, func(w http.ResponseWriter, req *http.Request) {
		q := req.URL.Query()
		if reason := q.Get("error"); reason != "" {
			deliver(callbackResult{err: fmt.Errorf("sign-in declined: %s", reason)})
			http.Error(w, "Sign-in was cancelled. You can close this window.", http.StatusBadRequest)
			return
		}
		if q.Get("state") != state {
			deliver(callbackResult{err: errors.New("state mismatch")})
			http.Error(w, "Sign-in could not be verified. You can close this window.", http.StatusBadRequest)
			return
		}
		code := q.Get("code")
		if code == "" {
			deliver(callbackResult{err: errors.New("authorization code missing")})
			http.Error(w, "Sign-in did not return a code. You can close this window.", http.StatusBadRequest)
			return
		}
		deliver(callbackResult{code: code})
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("WorkSphere sign-in complete. You can close this window."))
	}).Methods(http.MethodGet)
	return r
}
