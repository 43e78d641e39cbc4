package coc

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

type CocHttpResult[T any] struct {
	Success bool
	Data    *T
	Error   *ClientError
}

func (r *CocHttpResult[T]) FormatError(keys ...string) error {
	if len(keys) == 0 {
		return r.Error
	}
	return fmt.Errorf("%s: %w", strings.Join(keys, " | "), r.Error)
}

// Config carries everything a Client needs. The API key is passed in
// explicitly so nothing reads it from global state.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
	// RequestsPerSecond paces outbound requests; 0 disables pacing.
	RequestsPerSecond float64
	// Transport overrides the underlying round tripper (tests).
	Transport http.RoundTripper
}

type CocClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewClient builds a client from cfg.
func NewClient(cfg Config) *CocClient {
	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}
	base := cfg.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	return &CocClient{
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: newTransport(base, rate.NewLimiter(limit, 1)),
		},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
	}
}

func get[T any](ctx context.Context, c *CocClient, endpoint string) (*CocHttpResult[T], int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, -1, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, -1, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		errorResponse, err := decodeResponse[ClientError](resp.Body)
		if err != nil {
			// Proxies answer some failures with HTML; keep the status.
			errorResponse = &ClientError{Reason: http.StatusText(resp.StatusCode)}
		}
		return &CocHttpResult[T]{
			Success: false,
			Error:   errorResponse,
		}, resp.StatusCode, nil
	}

	data, err := decodeResponse[T](resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("decode response: %w", err)
	}
	return &CocHttpResult[T]{
		Success: true,
		Data:    data,
	}, resp.StatusCode, nil
}

func decodeResponse[T any](body io.Reader) (*T, error) {
	var data T
	if err := json.NewDecoder(body).Decode(&data); err != nil {
		return nil, err
	}
	return &data, nil
}

// GetClan looks up a clan by tag. The tag keeps its leading '#', which is
// escaped in the path.
func (c *CocClient) GetClan(ctx context.Context, clanTag string) (*CocHttpResult[Clan], int, error) {
	endpoint := fmt.Sprintf("%s/clans/%s", c.baseURL, url.PathEscape(clanTag))
	return get[Clan](ctx, c, endpoint)
}

// GetPlayer looks up a player by tag.
func (c *CocClient) GetPlayer(ctx context.Context, playerTag string) (*CocHttpResult[Player], int, error) {
	endpoint := fmt.Sprintf("%s/players/%s", c.baseURL, url.PathEscape(playerTag))
	return get[Player](ctx, c, endpoint)
}
