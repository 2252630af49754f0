package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"salon_backend/internal/feature/auth/usecase"
)

// mockAuthUsecase is a mock implementation of the AuthUsecase interface.
type mockAuthUsecase struct {
	RegisterFunc func(ctx context.Context, email, password, name string) (*usecase.PublicUser, error)
	LoginFunc    func(ctx context.Context, email, password string) (string, error)
}

func (m *mockAuthUsecase) Register(ctx context.Context, email, password, name string) (*usecase.PublicUser, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, email, password, name)
	}
	return &usecase.PublicUser{ID: "user-1", Email: email, Name: name}, nil
}

func (m *mockAuthUsecase) Login(ctx context.Context, email, password string) (string, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return "", usecase.ErrInvalidCredentials
}

func TestAuthHandler_Register(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name             string
		requestBody      gin.H
		mockRegisterFunc func(ctx context.Context, email, password, name string) (*usecase.PublicUser, error)
		expectedStatus   int
		expectedCode     string
	}{
		{
			name:           "success: user registration",
			requestBody:    gin.H{"email": "a@x.com", "password": "Abc123", "name": "A"},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "failure: invalid email address",
			requestBody:    gin.H{"email": "invalid-email", "password": "Abc123", "name": "A"},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:           "failure: password too short",
			requestBody:    gin.H{"email": "a@x.com", "password": "Ab1", "name": "A"},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:           "failure: password with special characters",
			requestBody:    gin.H{"email": "a@x.com", "password": "Abc123!@#", "name": "A"},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:           "failure: password too long",
			requestBody:    gin.H{"email": "a@x.com", "password": "Abc123Abc123Abc123Abc123Abc123Abc1234", "name": "A"},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:           "failure: missing name",
			requestBody:    gin.H{"email": "a@x.com", "password": "Abc123"},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:        "failure: duplicate email",
			requestBody: gin.H{"email": "taken@x.com", "password": "Abc123", "name": "A"},
			mockRegisterFunc: func(ctx context.Context, email, password, name string) (*usecase.PublicUser, error) {
				return nil, usecase.ErrEmailTaken
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "EMAIL_TAKEN",
		},
		{
			name:        "failure: repository error",
			requestBody: gin.H{"email": "a@x.com", "password": "Abc123", "name": "A"},
			mockRegisterFunc: func(ctx context.Context, email, password, name string) (*usecase.PublicUser, error) {
				return nil, errors.New("db down")
			},
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockAuthUsecase{RegisterFunc: tt.mockRegisterFunc}
			handler := NewAuthHandler(mockUC)

			router := gin.New()
			router.POST("/auth/register", handler.Register)

			body, _ := json.Marshal(tt.requestBody)
			req, _ := http.NewRequest(http.MethodPost, "/auth/register", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var responseBody map[string]json.RawMessage
			err := json.Unmarshal(w.Body.Bytes(), &responseBody)
			assert.NoError(t, err)

			if tt.expectedCode != "" {
				var errBody struct {
					Code string `json:"code"`
				}
				assert.NoError(t, json.Unmarshal(responseBody["error"], &errBody))
				assert.Equal(t, tt.expectedCode, errBody.Code)
				return
			}

			// Success: public user with id, email, name and no password field
			var data map[string]any
			assert.NoError(t, json.Unmarshal(responseBody["data"], &data))
			assert.Equal(t, "user-1", data["id"])
			assert.Equal(t, "a@x.com", data["email"])
			assert.Equal(t, "A", data["name"])
			assert.NotContains(t, data, "password")
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		requestBody    gin.H
		mockLoginFunc  func(ctx context.Context, email, password string) (string, error)
		expectedStatus int
		expectedCode   string
		expectedToken  string
	}{
		{
			name:        "success: user login",
			requestBody: gin.H{"email": "a@x.com", "password": "Abc123"},
			mockLoginFunc: func(ctx context.Context, email, password string) (string, error) {
				return "dummy-jwt-token", nil
			},
			expectedStatus: http.StatusOK,
			expectedToken:  "dummy-jwt-token",
		},
		{
			name:           "failure: invalid email address",
			requestBody:    gin.H{"email": "invalid-email", "password": "Abc123"},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:           "failure: missing password",
			requestBody:    gin.H{"email": "a@x.com"},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:        "failure: unknown email and wrong password share a code",
			requestBody: gin.H{"email": "a@x.com", "password": "wrong1"},
			mockLoginFunc: func(ctx context.Context, email, password string) (string, error) {
				return "", usecase.ErrInvalidCredentials
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_CREDENTIALS",
		},
		{
			name:        "failure: generator error",
			requestBody: gin.H{"email": "a@x.com", "password": "Abc123"},
			mockLoginFunc: func(ctx context.Context, email, password string) (string, error) {
				return "", errors.New("failed to sign token")
			},
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockAuthUsecase{LoginFunc: tt.mockLoginFunc}
			handler := NewAuthHandler(mockUC)

			router := gin.New()
			router.POST("/auth/login", handler.Login)

			body, _ := json.Marshal(tt.requestBody)
			req, _ := http.NewRequest(http.MethodPost, "/auth/login", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var responseBody map[string]json.RawMessage
			err := json.Unmarshal(w.Body.Bytes(), &responseBody)
			assert.NoError(t, err)

			if tt.expectedCode != "" {
				var errBody struct {
					Code string `json:"code"`
				}
				assert.NoError(t, json.Unmarshal(responseBody["error"], &errBody))
				assert.Equal(t, tt.expectedCode, errBody.Code)
				return
			}

			var data struct {
				Token string `json:"token"`
			}
			assert.NoError(t, json.Unmarshal(responseBody["data"], &data))
			assert.Equal(t, tt.expectedToken, data.Token)
		})
	}
}
