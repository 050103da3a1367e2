package identity

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/dreamworld/wms-console/internal/config"
)

// Client exposes the identity-provider operations used by the session gate.
// Token storage and refresh are this client's responsibility; callers only
// see success or failure.
type Client interface {
	CurrentSession(ctx context.Context) error
	SignIn(ctx context.Context, username, password string) error
	SignOut(ctx context.Context) error
}

// APIClient is a resty-backed implementation of Client.
type APIClient struct {
	httpClient *resty.Client
	poolID     string
	clientID   string

	mu    sync.Mutex
	token string
}

// NewClient builds an identity provider client from configuration values.
func NewClient(cfg config.IdentityConfig) *APIClient {
	restyClient := resty.New()
	restyClient.
		SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetTimeout(15 * time.Second)

	return &APIClient{
		httpClient: restyClient,
		poolID:     cfg.PoolID,
		clientID:   cfg.ClientID,
	}
}

type signInResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"`
}

// apiError mirrors the provider's error payload. Its message is surfaced to
// the operator verbatim on sign-in failure.
type apiError struct {
	Message string `json:"message"`
}

// CurrentSession reports whether a live session exists. Any failure, whether
// an expired token or a transport error, is returned as a plain error; the
// caller treats them all as "not signed in".
func (c *APIClient) CurrentSession(ctx context.Context) error {
	token := c.currentToken()
	if token == "" {
		return errors.New("no session")
	}

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+token).
		Get("/session")
	if err != nil {
		return fmt.Errorf("session check: %w", err)
	}
	if resp.StatusCode() >= http.StatusBadRequest {
		return fmt.Errorf("session check: status %d", resp.StatusCode())
	}
	return nil
}

// SignIn exchanges credentials for a session token. On failure the
// provider's message text is returned as the error.
func (c *APIClient) SignIn(ctx context.Context, username, password string) error {
	result := new(signInResponse)
	apiErr := new(apiError)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(map[string]string{
			"pool_id":   c.poolID,
			"client_id": c.clientID,
			"username":  username,
			"password":  password,
		}).
		SetResult(result).
		SetError(apiErr).
		Post("/signin")
	if err != nil {
		return fmt.Errorf("sign in: %w", err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		if apiErr.Message != "" {
			return errors.New(apiErr.Message)
		}
		return fmt.Errorf("sign in failed: status %d", resp.StatusCode())
	}

	c.mu.Lock()
	c.token = result.Token
	c.mu.Unlock()
	return nil
}

// SignOut invalidates the current session with the provider and drops the
// held token. The token is only dropped when the provider call succeeds.
func (c *APIClient) SignOut(ctx context.Context) error {
	token := c.currentToken()
	if token == "" {
		return nil
	}

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+token).
		Post("/signout")
	if err != nil {
		return fmt.Errorf("sign out: %w", err)
	}
	if resp.StatusCode() >= http.StatusBadRequest {
		return fmt.Errorf("sign out failed: status %d", resp.StatusCode())
	}

	c.mu.Lock()
	c.token = ""
	c.mu.Unlock()
	return nil
}

func (c *APIClient) currentToken() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}
