// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"salon_backend/internal/api"
	"salon_backend/internal/feature/auth/usecase"
)

// AuthUsecase defines the usecase for authentication operations.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type AuthUsecase interface {
	// Register creates a new user and returns its public projection.
	Register(ctx context.Context, email, password, name string) (*usecase.PublicUser, error)
	// Login authenticates a user and returns a JWT on success.
	Login(ctx context.Context, email, password string) (string, error)
}

// AuthHandler processes HTTP requests for authentication operations.
// It depends on the AuthUsecase interface and handles JSON requests/responses.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new AuthHandler instance.
// Constructor for dependency injection.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register handles the user registration endpoint.
// - binds the request JSON to RegisterRequest
// - 400 VALIDATION_ERROR when the body fails schema constraints
// - 400 EMAIL_TAKEN when the email already exists
// - 200 with the public user (never the password hash) on success
func (h *AuthHandler) Register(c *gin.Context) {
	var req api.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.NewErrorResponse(api.CodeValidationError, err.Error()))
		return
	}

	user, err := h.auth.Register(c.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		if errors.Is(err, usecase.ErrEmailTaken) {
			slog.Warn("register rejected: email taken", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, api.NewErrorResponse(api.CodeEmailTaken, "Email already in use"))
			return
		}
		slog.Error("register failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, api.NewErrorResponse(api.CodeInternalError, "Internal server error"))
		return
	}

	slog.Info("user registered", "user_id", user.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, api.DataResponse{Data: api.UserResponse{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
	}})
}

// Login handles the user login endpoint.
// - binds the request JSON to LoginRequest
// - 400 VALIDATION_ERROR when the body fails schema constraints
// - 400 INVALID_CREDENTIALS for unknown email or wrong password (same code
//   for both to prevent email enumeration)
// - 200 with the JWT on success
func (h *AuthHandler) Login(c *gin.Context) {
	var req api.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.NewErrorResponse(api.CodeValidationError, err.Error()))
		return
	}

	token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			slog.Warn("login rejected", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, api.NewErrorResponse(api.CodeInvalidCredentials, "Invalid credentials"))
			return
		}
		slog.Error("login failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, api.NewErrorResponse(api.CodeInternalError, "Internal server error"))
		return
	}

	slog.Info("user login successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, api.DataResponse{Data: api.TokenResponse{Token: token}})
}
