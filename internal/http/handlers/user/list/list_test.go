package list

import (
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
)

type UserServiceMock struct {
	mock.Mock
}

func (m *UserServiceMock) ListUsers(ctx context.Context) ([]*models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestListUsersHandler_ServeHTTP(t *testing.T) {
	users := []*models.User{
		{UID: "user-uid-1", FullName: "Budi Santoso", Email: "budi@example.com", Role: models.RoleUser},
		{UID: "admin-uid-1", FullName: "Admin", Email: "admin@example.com", Role: models.RoleAdmin},
	}

	tests := []struct {
		name           string
		mockUsers      []*models.User
		mockErr        error
		wantStatusCode int
		wantMessage    string
		wantError      bool
		wantCount      int
	}{
		{
			name:           "list with users",
			mockUsers:      users,
			wantStatusCode: http.StatusOK,
			wantMessage:    "daftar pengguna",
			wantCount:      2,
		},
		{
			name:           "empty list",
			mockUsers:      []*models.User{},
			wantStatusCode: http.StatusNotFound,
			wantMessage:    "tidak ada pengguna",
			wantError:      true,
		},
		{
			name:           "service error",
			mockErr:        errors.New("db error"),
			wantStatusCode: http.StatusInternalServerError,
			wantMessage:    "db error",
			wantError:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serviceMock := new(UserServiceMock)
			handler := New(newNoopLogger(), serviceMock)

			serviceMock.On("ListUsers", mock.Anything).
				Return(tt.mockUsers, tt.mockErr).Once()

			req := httptest.NewRequest(http.MethodGet, "/get-user", nil)
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "reqid123"))

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			var got map[string]any
			err := json.NewDecoder(rec.Body).Decode(&got)
			assert.NoError(t, err)

			assert.Equal(t, tt.wantError, got["error"])
			assert.Equal(t, tt.wantMessage, got["message"])

			if tt.wantCount > 0 {
				data, ok := got["data"].(map[string]any)
				assert.True(t, ok)
				list, ok := data["users"].([]any)
				assert.True(t, ok)
				assert.Len(t, list, tt.wantCount)
			}

			serviceMock.AssertExpectations(t)
		})
	}
}
