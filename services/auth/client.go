package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"parcelo/utils"

	"go.uber.org/zap"
)

// NewIdentityClient builds the client for the hosted identity service.
// With either value empty the client reports itself disabled and every
// call returns ErrAuthDisabled; main logs the diagnostic at startup.
func NewIdentityClient(baseURL, anonKey string) *IdentityClient {
	return &IdentityClient{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		AnonKey:    anonKey,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *IdentityClient) Enabled() bool {
	return c.BaseURL != "" && c.AnonKey != ""
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// providerError is the shape identity-service failures arrive in; the
// message is surfaced to the user verbatim.
type providerError struct {
	ErrorDescription string `json:"error_description"`
	Msg              string `json:"msg"`
	Message          string `json:"message"`
}

func (e providerError) text() string {
	switch {
	case e.ErrorDescription != "":
		return e.ErrorDescription
	case e.Msg != "":
		return e.Msg
	case e.Message != "":
		return e.Message
	default:
		return "authentication failed"
	}
}

// SignUp registers a new account with the identity service.
func (c *IdentityClient) SignUp(ctx context.Context, email, password string) (*Session, error) {
	return c.requestSession(ctx, "/auth/v1/signup", email, password)
}

// SignIn exchanges credentials for a session.
func (c *IdentityClient) SignIn(ctx context.Context, email, password string) (*Session, error) {
	return c.requestSession(ctx, "/auth/v1/token?grant_type=password", email, password)
}

// SignOut revokes the session at the identity service.
func (c *IdentityClient) SignOut(ctx context.Context, accessToken string) error {
	if !c.Enabled() {
		return ErrAuthDisabled
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/auth/v1/logout", nil)
	if err != nil {
		return fmt.Errorf("failed to build sign-out request: %w", err)
	}
	c.setHeaders(req)
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		utils.GetLogger().Error("identity service sign-out failed", zap.Error(err))
		return fmt.Errorf("sign-out failed, please try again")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("%s", readProviderError(resp.Body))
	}
	return nil
}

func (c *IdentityClient) requestSession(ctx context.Context, path, email, password string) (*Session, error) {
	if !c.Enabled() {
		return nil, ErrAuthDisabled
	}

	body, err := json.Marshal(credentials{Email: email, Password: password})
	if err != nil {
		return nil, fmt.Errorf("failed to encode credentials: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build auth request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		utils.GetLogger().Error("identity service unreachable", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%s", readProviderError(resp.Body))
	}

	var session Session
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, fmt.Errorf("failed to decode identity response: %w", err)
	}
	return &session, nil
}

func (c *IdentityClient) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.AnonKey)
}

func readProviderError(r io.Reader) string {
	var pe providerError
	if err := json.NewDecoder(r).Decode(&pe); err != nil {
		return "authentication failed"
	}
	return pe.text()
}
