package remove

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
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/agummds/PadangTourGuide/internal/http/middlewarectx"
	"github.com/agummds/PadangTourGuide/internal/storage/repository"
)

type FavouriteServiceMock struct {
	mock.Mock
}

func (m *FavouriteServiceMock) Remove(ctx context.Context, userUID, tempatWisataUID string) error {
	args := m.Called(ctx, userUID, tempatWisataUID)
	return args.Error(0)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestRemoveFavouriteHandler_ServeHTTP(t *testing.T) {
	tempatUID := uuid.NewString()

	tests := []struct {
		name           string
		requestBody    interface{}
		userUID        string
		mockErr        error
		mockCalled     bool
		wantStatusCode int
		wantMessage    string
		wantError      bool
	}{
		{
			name:           "successful remove",
			requestBody:    Request{TempatWisataID: tempatUID},
			userUID:        "user-uid-1",
			mockCalled:     true,
			wantStatusCode: http.StatusOK,
			wantMessage:    "berhasil dihapus dari favorit",
		},
		{
			name:           "favourite not found",
			requestBody:    Request{TempatWisataID: tempatUID},
			userUID:        "user-uid-1",
			mockErr:        repository.ErrNotFound,
			mockCalled:     true,
			wantStatusCode: http.StatusNotFound,
			wantMessage:    "favorit tidak ditemukan",
			wantError:      true,
		},
		{
			name:           "service error",
			requestBody:    Request{TempatWisataID: tempatUID},
			userUID:        "user-uid-1",
			mockErr:        errors.New("db error"),
			mockCalled:     true,
			wantStatusCode: http.StatusInternalServerError,
			wantMessage:    "db error",
			wantError:      true,
		},
		{
			name:           "invalid json body",
			requestBody:    "not a json",
			userUID:        "user-uid-1",
			wantStatusCode: http.StatusBadRequest,
			wantMessage:    "invalid request body",
			wantError:      true,
		},
		{
			name:           "missing user in context",
			requestBody:    Request{TempatWisataID: tempatUID},
			userUID:        "",
			wantStatusCode: http.StatusUnauthorized,
			wantMessage:    "unauthorized",
			wantError:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serviceMock := new(FavouriteServiceMock)
			handler := New(newNoopLogger(), serviceMock)

			if tt.mockCalled {
				serviceMock.On("Remove", mock.Anything, tt.userUID, tempatUID).
					Return(tt.mockErr).Once()
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

			req := httptest.NewRequest(http.MethodDelete, "/remove-favorite", bytes.NewReader(bodyBytes))
			ctx := context.WithValue(req.Context(), middleware.RequestIDKey, "reqid123")
			if tt.userUID != "" {
				ctx = context.WithValue(ctx, middlewarectx.UserUID, tt.userUID)
			}
			req = req.WithContext(ctx)

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			var got map[string]any
			err = json.NewDecoder(rec.Body).Decode(&got)
			assert.NoError(t, err)

			assert.Equal(t, tt.wantError, got["error"])
			assert.Equal(t, tt.wantMessage, got["message"])

			serviceMock.AssertExpectations(t)
		})
	}
}
