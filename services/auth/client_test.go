package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeIdentityServer mimics the hosted provider's REST surface far enough
// for the client paths under test.
func fakeIdentityServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	requireHeaders := func(w http.ResponseWriter, r *http.Request) bool {
		if r.Header.Get("apikey") == "" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"msg": "No API key found in request"})
			return false
		}
		return true
	}

	sessionFor := func(email string) Session {
		return Session{
			AccessToken:  "token-for-" + email,
			TokenType:    "bearer",
			ExpiresIn:    3600,
			RefreshToken: "refresh-for-" + email,
			User:         User{ID: "uid-1", Email: email},
		}
	}

	mux.HandleFunc("POST /auth/v1/signup", func(w http.ResponseWriter, r *http.Request) {
		if !requireHeaders(w, r) {
			return
		}
		var creds struct{ Email, Password string }
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))

		if creds.Email == "taken@example.com" {
			w.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(w).Encode(map[string]string{"msg": "User already registered"})
			return
		}
		json.NewEncoder(w).Encode(sessionFor(creds.Email))
	})

	mux.HandleFunc("POST /auth/v1/token", func(w http.ResponseWriter, r *http.Request) {
		if !requireHeaders(w, r) {
			return
		}
		if r.URL.Query().Get("grant_type") != "password" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error_description": "unsupported grant type"})
			return
		}
		var creds struct{ Email, Password string }
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))

		if creds.Password != "correct-horse" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error_description": "Invalid login credentials"})
			return
		}
		json.NewEncoder(w).Encode(sessionFor(creds.Email))
	})

	mux.HandleFunc("POST /auth/v1/logout", func(w http.ResponseWriter, r *http.Request) {
		if !requireHeaders(w, r) {
			return
		}
		if r.Header.Get("Authorization") == "" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"message": "missing bearer token"})
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestIdentityClientSignIn(t *testing.T) {
	server := fakeIdentityServer(t)
	client := NewIdentityClient(server.URL, "anon-key")
	ctx := context.Background()

	t.Run("valid credentials", func(t *testing.T) {
		session, err := client.SignIn(ctx, "nadia@example.com", "correct-horse")
		require.NoError(t, err)

		assert.Equal(t, "token-for-nadia@example.com", session.AccessToken)
		assert.Equal(t, "nadia@example.com", session.User.Email)
		assert.Equal(t, 3600, session.ExpiresIn)
	})

	t.Run("wrong password surfaces the provider message", func(t *testing.T) {
		_, err := client.SignIn(ctx, "nadia@example.com", "wrong")
		require.Error(t, err)
		assert.EqualError(t, err, "Invalid login credentials")
	})
}

func TestIdentityClientSignUp(t *testing.T) {
	server := fakeIdentityServer(t)
	client := NewIdentityClient(server.URL, "anon-key")
	ctx := context.Background()

	t.Run("new account", func(t *testing.T) {
		session, err := client.SignUp(ctx, "new@example.com", "correct-horse")
		require.NoError(t, err)
		assert.Equal(t, "new@example.com", session.User.Email)
	})

	t.Run("duplicate account", func(t *testing.T) {
		_, err := client.SignUp(ctx, "taken@example.com", "correct-horse")
		require.Error(t, err)
		assert.EqualError(t, err, "User already registered")
	})
}

func TestIdentityClientSignOut(t *testing.T) {
	server := fakeIdentityServer(t)
	client := NewIdentityClient(server.URL, "anon-key")
	ctx := context.Background()

	assert.NoError(t, client.SignOut(ctx, "some-access-token"))
}

func TestIdentityClientDisabled(t *testing.T) {
	ctx := context.Background()

	for _, client := range []*IdentityClient{
		NewIdentityClient("", ""),
		NewIdentityClient("https://id.example.com", ""),
		NewIdentityClient("", "anon-key"),
	} {
		assert.False(t, client.Enabled())

		_, err := client.SignIn(ctx, "a@b.c", "pw")
		assert.ErrorIs(t, err, ErrAuthDisabled)

		_, err = client.SignUp(ctx, "a@b.c", "pw")
		assert.ErrorIs(t, err, ErrAuthDisabled)

		assert.ErrorIs(t, client.SignOut(ctx, "token"), ErrAuthDisabled)
	}
}

func TestIdentityClientTrimsTrailingSlash(t *testing.T) {
	client := NewIdentityClient("https://id.example.com/", "key")
	assert.Equal(t, "https://id.example.com", client.BaseURL)
}
