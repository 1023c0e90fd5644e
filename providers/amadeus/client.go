// Package amadeus is a thin client for the Amadeus Self-Service REST APIs,
// covering the flight-offer and hotel-offer search endpoints.
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

	"golang.org/x/sync/singleflight"

	"github.com/travelwise/amadeus-mcp/log"
)

const (
	BaseURLTest       = "https://test.api.amadeus.com"
	BaseURLProduction = "https://api.amadeus.com"

	// Expiry buffer so a token is renewed before the provider rejects it
	tokenExpiryBuffer = 10 * time.Second
)

// APIError is a non-2xx response or transport-level failure from Amadeus
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("amadeus: %s", e.Message)
	}
	return fmt.Sprintf("amadeus: %d %s", e.StatusCode, e.Message)
}

// errorBody is the provider's error envelope:
// {"errors":[{"status":400,"title":"INVALID FORMAT","detail":"..."}]}
type errorBody struct {
	Errors []struct {
		Status int    `json:"status"`
		Code   int    `json:"code"`
		Title  string `json:"title"`
		Detail string `json:"detail"`
	} `json:"errors"`
}

// AuthToken represents the OAuth2 token response
type AuthToken struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
	TokenType   string `json:"token_type"`
	Expiry      time.Time
}

// Client is the main Amadeus API client. It owns the authenticated
// session and is safe for concurrent use.
type Client struct {
	ClientID     string
	ClientSecret string
	BaseURL      string
	HTTPClient   *http.Client

	mu    sync.RWMutex
	token *AuthToken

	// Collapses concurrent re-authentication so racing 401s do not each
	// burn a token and invalidate one another.
	authGroup singleflight.Group
}

// NewClient creates a new Amadeus client
// Returns an error if the client cannot be initialized
func NewClient(clientID, clientSecret string, isProduction bool, timeout time.Duration) (*Client, error) {
	if clientID == "" {
		return nil, fmt.Errorf("client ID is required")
	}
	if clientSecret == "" {
		return nil, fmt.Errorf("client secret is required")
	}

	baseURL := BaseURLTest
	if isProduction {
		baseURL = BaseURLProduction
	}

	return &Client{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		BaseURL:      baseURL,
		HTTPClient:   &http.Client{Timeout: timeout},
	}, nil
}

// Authenticate obtains a new access token
func (c *Client) Authenticate(ctx context.Context) error {
	data := url.Values{}
	data.Set("grant_type", "client_credentials")
	data.Set("client_id", c.ClientID)
	data.Set("client_secret", c.ClientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.BaseURL+"/v1/security/oauth2/token", strings.NewReader(data.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return newAPIError(resp)
	}

	var token AuthToken
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return err
	}

	token.Expiry = time.Now().Add(time.Duration(token.ExpiresIn)*time.Second - tokenExpiryBuffer)

	c.mu.Lock()
	c.token = &token
	c.mu.Unlock()

	return nil
}

// refreshToken authenticates through singleflight so concurrent callers
// share one token request.
func (c *Client) refreshToken(ctx context.Context) error {
	_, err, _ := c.authGroup.Do("token", func() (interface{}, error) {
		return nil, c.Authenticate(ctx)
	})
	return err
}

func (c *Client) bearer() (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.token == nil || time.Now().After(c.token.Expiry) {
		return "", false
	}
	return c.token.AccessToken, true
}

func (c *Client) send(ctx context.Context, endpoint string) (*http.Response, error) {
	token, ok := c.bearer()
	if !ok {
		if err := c.refreshToken(ctx); err != nil {
			return nil, fmt.Errorf("failed to refresh token: %w", err)
		}
		token, _ = c.bearer()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	return c.HTTPClient.Do(req)
}

// get performs an authenticated GET and decodes the 200 body into out.
// A 401 triggers exactly one re-authentication and one retry; a second
// 401 comes back as *APIError like any other non-2xx status.
func (c *Client) get(ctx context.Context, endpoint string, out interface{}) error {
	resp, err := c.send(ctx, endpoint)
	if err != nil {
		log.Errorf(ctx, "Amadeus API request failed: %v", err)
		return err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		log.Warnf(ctx, "Amadeus token rejected, re-authenticating")
		if err := c.refreshToken(ctx); err != nil {
			return fmt.Errorf("failed to refresh token: %w", err)
		}

		resp, err = c.send(ctx, endpoint)
		if err != nil {
			log.Errorf(ctx, "Amadeus API retry failed: %v", err)
			return err
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return newAPIError(resp)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// newAPIError builds an APIError from the provider's error envelope,
// falling back to the HTTP status line.
func newAPIError(resp *http.Response) *APIError {
	apiErr := &APIError{StatusCode: resp.StatusCode, Message: resp.Status}

	var body errorBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && len(body.Errors) > 0 {
		first := body.Errors[0]
		if first.Detail != "" {
			apiErr.Message = fmt.Sprintf("%s: %s", first.Title, first.Detail)
		} else if first.Title != "" {
			apiErr.Message = first.Title
		}
	}
	return apiErr
}
