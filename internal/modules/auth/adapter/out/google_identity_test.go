package out

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "worksphere/internal/platform/errors"
)

func discoveryServer(t *testing.T, hits *atomic.Int32) *httptest.Server {
	t.Helper()
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/.well-known/openid-configuration" {
			http.NotFound(w, r)
			return
		}
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"issuer":                 srv.URL,
			"authorization_endpoint": srv.URL + "/auth",
			"token_endpoint":         srv.URL + "/token",
			"jwks_uri":               srv.URL + "/jwks",
			"id_token_signing_alg_values_supported": []string{"RS256"},
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestGoogleIdentityProvider_MissingClientID(t *testing.T) {
	p := NewGoogleIdentityProvider(GoogleConfig{Issuer: "https://accounts.google.com"})

	err := p.Available(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrProviderUnavailable)

	_, err = p.Credential(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrProviderUnavailable)
}

func TestGoogleIdentityProvider_DiscoveryIsCached(t *testing.T) {
	var hits atomic.Int32
	srv := discoveryServer(t, &hits)
	p := NewGoogleIdentityProvider(GoogleConfig{ClientID: "client", Issuer: srv.URL + "/"})

	require.NoError(t, p.Available(context.Background()))
	require.NoError(t, p.Available(context.Background()))
	assert.Equal(t, int32(1), hits.Load())
}

func TestGoogleIdentityProvider_DiscoveryFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()
	p := NewGoogleIdentityProvider(GoogleConfig{ClientID: "client", Issuer: srv.URL})

	err := p.Available(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrProviderUnavailable)
}

func TestGoogleIdentityProvider_OpenFailureAborts(t *testing.T) {
	var hits atomic.Int32
	srv := discoveryServer(t, &hits)
	var opened string
	p := NewGoogleIdentityProvider(GoogleConfig{
		ClientID: "client",
		Issuer:   srv.URL,
		Open: func(_ context.Context, url string) error {
			opened = url
			return assert.AnError
		},
	})

	_, err := p.Credential(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, opened, srv.URL+"/auth")
	assert.Contains(t, opened, "client_id=client")
	assert.Contains(t, opened, "nonce=")
	assert.Contains(t, opened, "prompt=select_account")
}

func TestCallbackRouter(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		status   int
		wantCode string
		wantErr  string
	}{
		{name: "valid", query: "?state=s1&code=abc", status: http.StatusOK, wantCode: "abc"},
		{name: "state mismatch", query: "?state=other&code=abc", status: http.StatusBadRequest, wantErr: "state mismatch"},
		{name: "declined", query: "?error=access_denied&state=s1", status: http.StatusBadRequest, wantErr: "access_denied"},
		{name: "missing code", query: "?state=s1", status: http.StatusBadRequest, wantErr: "code missing"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := make(chan callbackResult, 1)
			handler := callbackRouter("s1", results)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, callbackPath+tt.query, nil))

			assert.Equal(t, tt.status, rec.Code)
			res := <-results
			if tt.wantErr != "" {
				require.Error(t, res.err)
				assert.Contains(t, res.err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, res.err)
			assert.Equal(t, tt.wantCode, res.code)
		})
	}
}

func TestCallbackRouter_DeliversOnce(t *testing.T) {
	results := make(chan callbackResult, 1)
	handler := callbackRouter("s1", results)

	for range 2 {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, callbackPath+"?state=s1&code=abc", nil))
	}

	assert.Len(t, results, 1)
}
