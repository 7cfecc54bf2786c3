package login

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/agummds/PadangTourGuide/internal/models"
	authservice "github.com/agummds/PadangTourGuide/internal/services/auth"
)

type AuthServiceMock struct {
	mock.Mock
}

func (m *AuthServiceMock) Login(ctx context.Context, email, rawPassword string) (*models.User, string, error) {
	args := m.Called(ctx, email, rawPassword)
	user, _ := args.Get(0).(*models.User)
	return user, args.String(1), args.Error(2)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestLoginHandler_ServeHTTP(t *testing.T) {
	validRequest := Request{Email: "budi@example.com", Password: "password123"}
	loggedUser := &models.User{
		UID:   "user-uid-1",
		Email: "budi@example.com",
		Role:  models.RoleUser,
	}

	tests := []struct {
		name           string
		requestBody    interface{}
		mockUser       *models.User
		mockToken      string
		mockErr        error
		wantStatusCode int
		wantMessage    string
		wantError      bool
		wantToken      string
	}{
		{
			name:           "valid login",
			requestBody:    validRequest,
			mockUser:       loggedUser,
			mockToken:      "jwt-token-123",
			wantStatusCode: http.StatusOK,
			wantMessage:    "login berhasil",
			wantToken:      "jwt-token-123",
		},
		{
			name:           "invalid json body",
			requestBody:    "not a json",
			wantStatusCode: http.StatusBadRequest,
			wantMessage:    "invalid request body",
			wantError:      true,
		},
		{
			name:           "validation error - missing password",
			requestBody:    Request{Email: "budi@example.com"},
			wantStatusCode: http.StatusBadRequest,
			wantMessage:    "field Password is a required field",
			wantError:      true,
		},
		{
			name:           "invalid credentials",
			requestBody:    validRequest,
			mockErr:        authservice.ErrInvalidCredentials,
			wantStatusCode: http.StatusBadRequest,
			wantMessage:    "email atau password salah",
			wantError:      true,
		},
		{
			name:           "service error",
			requestBody:    validRequest,
			mockErr:        errors.New("db error"),
			wantStatusCode: http.StatusInternalServerError,
			wantMessage:    "db error",
			wantError:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serviceMock := new(AuthServiceMock)
			handler := New(newNoopLogger(), serviceMock)

			if tt.mockUser != nil || tt.mockErr != nil {
				serviceMock.On("Login", mock.Anything, validRequest.Email, validRequest.Password).
					Return(tt.mockUser, tt.mockToken, tt.mockErr).Once()
			}

			var bodyBytes []byte
			var err error
			switch v := tt.requestBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, err = json.Marshal(tt.requestBody)
				if err != nil {
					t.Fatal(err)
				}
			}

			req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(bodyBytes))
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "reqid123"))

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			var got map[string]any
			err = json.NewDecoder(rec.Body).Decode(&got)
			assert.NoError(t, err)

			assert.Equal(t, tt.wantError, got["error"])
			assert.Equal(t, tt.wantMessage, got["message"])

			if tt.wantToken != "" {
				data, ok := got["data"].(map[string]any)
				assert.True(t, ok)
				assert.Equal(t, tt.wantToken, data["accessToken"])
			}

			serviceMock.AssertExpectations(t)
		})
	}
}
