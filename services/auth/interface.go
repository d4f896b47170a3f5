package auth

import (
	"context"
	"errors"
	"net/http"
)

// Session management is delegated wholesale to a hosted identity service;
// this package is only a thin client over its REST API. Calls are single
// request/response with no retry: a failure surfaces as a user-visible
// message and the caller may simply resubmit.

// ErrAuthDisabled is returned while the identity service is unconfigured.
var ErrAuthDisabled = errors.New("authentication service is not configured")

// User is the identity-service account subset the marketplace consumes.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Session is an authenticated session as issued by the identity service.
type Session struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
	User         User   `json:"user"`
}

// AuthService covers the operations the marketplace needs from the
// identity provider.
type AuthService interface {
	SignUp(ctx context.Context, email, password string) (*Session, error)
	SignIn(ctx context.Context, email, password string) (*Session, error)
	SignOut(ctx context.Context, accessToken string) error
	Enabled() bool
}

// IdentityClient is the production implementation, speaking the hosted
// provider's REST API.
type IdentityClient struct {
	BaseURL    string
	AnonKey    string
	HTTPClient *http.Client
}
