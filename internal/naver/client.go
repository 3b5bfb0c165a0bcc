package naver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/kogoapp/kogo-server/internal/ratelimit"
)

const (
	directionsBase  = "https://naveropenapi.apigw.ntruss.com/map-direction/v1/driving"
	searchLocalBase = "https://openapi.naver.com/v1/search/local.json"
)

// ErrMissingCredentials is a configuration failure: the request was never
// issued and retrying without new config is pointless.
var ErrMissingCredentials = errors.New(
	"missing NAVER credentials: set NAVER_MAP_CLIENT_ID and NAVER_MAP_CLIENT_SECRET")

// UpstreamError is a non-success response from a provider endpoint, carrying
// the status and body so the boundary can pass them through.
type UpstreamError struct {
	Endpoint string
	Status   int
	Body     string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("naver %s API error %d: %s", e.Endpoint, e.Status, e.Body)
}

// Client calls the Naver driving-directions and local-search APIs.
type Client struct {
	clientID     string
	clientSecret string
	httpClient   *http.Client
	limiter      *ratelimit.Limiter

	directionsURL string
	searchURL     string
}

type Config struct {
	ClientID     string
	ClientSecret string
	// HTTPClient defaults to http.DefaultClient; no extra timeout is imposed
	// beyond the network stack's.
	HTTPClient *http.Client
	Limiter    *ratelimit.Limiter

	// Endpoint overrides for tests.
	DirectionsURL string
	SearchURL     string
}

func NewClient(cfg Config) *Client {
	c := &Client{
		clientID:      cfg.ClientID,
		clientSecret:  cfg.ClientSecret,
		httpClient:    cfg.HTTPClient,
		limiter:       cfg.Limiter,
		directionsURL: cfg.DirectionsURL,
		searchURL:     cfg.SearchURL,
	}
	if c.httpClient == nil {
		c.httpClient = http.DefaultClient
	}
	if c.directionsURL == "" {
		c.directionsURL = directionsBase
	}
	if c.searchURL == "" {
		c.searchURL = searchLocalBase
	}
	return c
}

func (c *Client) checkCredentials() error {
	if c.clientID == "" || c.clientSecret == "" {
		return ErrMissingCredentials
	}
	return nil
}

func (c *Client) wait(ctx context.Context, endpoint string) error {
	if c.limiter == nil {
		return nil
	}
	return c.limiter.Wait(ctx, endpoint)
}

// get issues an authenticated request and enforces the upstream-error
// contract: any non-2xx status becomes an UpstreamError with the body text.
func (c *Client) get(ctx context.Context, endpoint, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Naver-Client-Id", c.clientID)
	req.Header.Set("X-Naver-Client-Secret", c.clientSecret)
	req.Header.Set("Accept", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, &UpstreamError{
			Endpoint: endpoint,
			Status:   res.StatusCode,
			Body:     string(body),
		}
	}
	return body, nil
}
