package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	testBaseURL       = "https://test.api.amadeus.com"
	productionBaseURL = "https://api.amadeus.com"

	// Refresh the token this long before Amadeus says it expires.
	tokenSafetyMargin = 30 * time.Second
)

// credential is the cached OAuth2 access token together with its expiry.
// A token with an unknown expiry is never trusted.
type credential struct {
	token     string
	expiresAt time.Time
}

func (c credential) valid(now time.Time) bool {
	return c.token != "" && !c.expiresAt.IsZero() && now.Before(c.expiresAt)
}

// Client talks to the Amadeus self-service APIs.
type Client struct {
	clientID     string
	clientSecret string
	baseURL      string
	httpClient   *http.Client
	logger       *zap.Logger

	mu   sync.Mutex
	cred credential

	mockFlights bool
	mockHotels  bool
}

// Options configures a Client.
type Options struct {
	ClientID     string
	ClientSecret string
	// Env selects the Amadeus environment, "test" (default) or "production".
	Env                 string
	UseMockFlightSearch bool
	UseMockHotelSearch  bool
	Logger              *zap.Logger
}

// NewClient builds an Amadeus client. Credentials may be empty when the mock
// toggles are on; real calls then fail with ErrNotConfigured.
func NewClient(opts Options) *Client {
	baseURL := testBaseURL
	if opts.Env == "production" {
		baseURL = productionBaseURL
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.L()
	}
	return &Client{
		clientID:     opts.ClientID,
		clientSecret: opts.ClientSecret,
		baseURL:      baseURL,
		httpClient:   &http.Client{Timeout: 30 * time.Second},
		logger:       logger,
		mockFlights:  opts.UseMockFlightSearch,
		mockHotels:   opts.UseMockHotelSearch,
	}
}

// ErrNotConfigured is returned when no Amadeus credentials were supplied.
var ErrNotConfigured = fmt.Errorf("amadeus: client credentials not configured")

func (c *Client) refreshToken(ctx context.Context) error {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.clientID)
	form.Set("client_secret", c.clientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/security/oauth2/token",
		strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("amadeus: token request failed (%d): %s", resp.StatusCode, string(body))
	}

	var result struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return fmt.Errorf("amadeus: failed to parse token response: %w", err)
	}

	c.mu.Lock()
	c.cred = credential{
		token:     result.AccessToken,
		expiresAt: time.Now().Add(time.Duration(result.ExpiresIn)*time.Second - tokenSafetyMargin),
	}
	c.mu.Unlock()

	return nil
}

// getToken returns a valid access token, refreshing when the cached one is
// absent or inside the safety margin of its expiry.
func (c *Client) getToken(ctx context.Context) (string, error) {
	if c.clientID == "" || c.clientSecret == "" {
		return "", ErrNotConfigured
	}

	c.mu.Lock()
	cred := c.cred
	c.mu.Unlock()

	if cred.valid(time.Now()) {
		return cred.token, nil
	}

	if err := c.refreshToken(ctx); err != nil {
		return "", err
	}

	c.mu.Lock()
	token := c.cred.token
	c.mu.Unlock()
	return token, nil
}

func (c *Client) doRequest(ctx context.Context, method, path string, body io.Reader) ([]byte, error) {
	token, err := c.getToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("amadeus: auth failed: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("amadeus: %s %s returned %d: %s", method, path, resp.StatusCode, string(respBody))
	}
	return respBody, nil
}

// VerifyCredentials performs a cheap reference-data lookup to confirm the
// configured credentials work. Used at startup, failure is non-fatal.
func (c *Client) VerifyCredentials(ctx context.Context) error {
	_, err := c.ResolveLocation(ctx, "NYC", []string{"CITY"})
	return err
}
