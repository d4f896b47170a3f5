package handlers

import (
	"errors"
	"net/http"
	"strings"

	"parcelo/middleware"
	"parcelo/services/auth"
	"parcelo/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// AuthHandler fronts the hosted identity service. Provider failures are
// surfaced verbatim as user-visible messages; nothing is retried and the
// client form stays resubmittable.
type AuthHandler struct {
	Service     auth.AuthService
	Revocations *redis.Client
}

func NewAuthHandler(service auth.AuthService, revocations *redis.Client) *AuthHandler {
	return &AuthHandler{Service: service, Revocations: revocations}
}

type credentialsRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SignUpHandler handles POST /api/auth/signup.
func (h *AuthHandler) SignUpHandler(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	session, err := h.Service.SignUp(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.renderAuthError(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

// SignInHandler handles POST /api/auth/signin.
func (h *AuthHandler) SignInHandler(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	session, err := h.Service.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.renderAuthError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// SignOutHandler handles POST /api/auth/signout. The token is revoked at
// the provider and denylisted locally until it would have expired.
func (h *AuthHandler) SignOutHandler(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == "" || token == authHeader {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}

	if err := h.Service.SignOut(c.Request.Context(), token); err != nil {
		h.renderAuthError(c, err)
		return
	}

	if claims, err := utils.ValidateAccessToken(token); err == nil && h.Revocations != nil {
		if err := middleware.RevokeToken(c.Request.Context(), h.Revocations, token, claims.ExpiresAt); err != nil {
			utils.GetLogger().Warn("failed to denylist token", zap.Error(err))
		}
	}
	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}

func (h *AuthHandler) renderAuthError(c *gin.Context, err error) {
	if errors.Is(err, auth.ErrAuthDisabled) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "authentication is not configured"})
		return
	}
	c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
}
