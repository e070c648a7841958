package out

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	authout "worksphere/internal/modules/auth/port/out"
)

// HTTPGateway is the JSON client for the backend auth API rooted at BaseURL.
type HTTPGateway struct {
	baseURL string
	client  *http.Client
}

// NewHTTPGateway builds a gateway. A zero timeout leaves requests bounded
// only by their context.
func NewHTTPGateway(baseURL string, timeout time.Duration, client *http.Client) *HTTPGateway {
	if client == nil {
		client = &http.Client{Timeout: timeout}
	}
	return &HTTPGateway{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

func (g *HTTPGateway) PostJSON(ctx context.Context, path string, body any) (authout.Reply, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return authout.Reply{}, fmt.Errorf("encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url(path), bytes.NewReader(payload))
	if err != nil {
		return authout.Reply{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return g.do(req)
}

func (g *HTTPGateway) GetJSON(ctx context.Context, path, bearer string) (authout.Reply, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.url(path), nil)
	if err != nil {
		return authout.Reply{}, fmt.Errorf("build request: %w", err)
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	return g.do(req)
}

func (g *HTTPGateway) url(path string) string {
	return g.baseURL + "/" + strings.TrimLeft(path, "/")
}

func (g *HTTPGateway) do(req *http.Request) (authout.Reply, error) {
	req.Header.Set("Accept", "application/json")
	resp, err := g.client.Do(req)
	if err != nil {
		return authout.Reply{}, fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return authout.Reply{}, fmt.Errorf("read response: %w", err)
	}
	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return authout.Reply{}, fmt.Errorf("decode response (status %d): %w", resp.StatusCode, err)
	}
	body, _ := decoded.(map[string]any)
	if body == nil {
		body = map[string]any{}
	}
	return authout.Reply{Status: resp.StatusCode, Body: body, Raw: raw}, nil
}
