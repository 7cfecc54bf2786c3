package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	customjwt "github.com/agummds/PadangTourGuide/internal/lib/jwt"
	"github.com/agummds/PadangTourGuide/internal/lib/password"
	"github.com/agummds/PadangTourGuide/internal/models"
	services "github.com/agummds/PadangTourGuide/internal/services/auth"
	"github.com/agummds/PadangTourGuide/internal/storage/repository"
)

// Мок для UserRepository
type UserRepoMock struct {
	mock.Mock
}

func (m *UserRepoMock) RegisterUser(ctx context.Context, user models.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *UserRepoMock) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *UserRepoMock) GetUser(ctx context.Context, userUID string) (*models.User, error) {
	args := m.Called(ctx, userUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *UserRepoMock) ListUsers(ctx context.Context) ([]*models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}

func (m *UserRepoMock) CountAdmins(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *UserRepoMock) BootstrapAdmin(ctx context.Context, user models.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *UserRepoMock) UpdatePassword(ctx context.Context, userUID, passwordHash string) error {
	args := m.Called(ctx, userUID, passwordHash)
	return args.Error(0)
}

// Мок для jwt.Maker
type JwtMakerMock struct {
	mock.Mock
}

func (m *JwtMakerMock) GenerateToken(userUID, email, role string) (string, error) {
	args := m.Called(userUID, email, role)
	return args.String(0), args.Error(1)
}

func (m *JwtMakerMock) ParseToken(token string) (*customjwt.CustomClaims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customjwt.CustomClaims), args.Error(1)
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name       string
		email      string
		setupMocks func(r *UserRepoMock, j *JwtMakerMock)
		wantToken  string
		wantErr    bool
		errIs      error
	}{
		{
			name:  "successful registration",
			email: "budi@example.com",
			setupMocks: func(r *UserRepoMock, j *JwtMakerMock) {
				r.On("RegisterUser", mock.Anything, mock.MatchedBy(func(user models.User) bool {
					return user.Email == "budi@example.com" &&
						user.FullName == "Budi Santoso" &&
						user.PasswordHash != "" &&
						user.Role == models.RoleUser
				})).Return("user-uid-1", nil).Once()
				j.On("GenerateToken", "user-uid-1", "budi@example.com", models.RoleUser).
					Return("jwt-token-123", nil).Once()
			},
			wantToken: "jwt-token-123",
		},
		{
			name:  "duplicate email",
			email: "budi@example.com",
			setupMocks: func(r *UserRepoMock, _ *JwtMakerMock) {
				r.On("RegisterUser", mock.Anything, mock.Anything).
					Return("", repository.ErrAlreadyExists).Once()
			},
			wantErr: true,
			errIs:   repository.ErrAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(UserRepoMock)
			jwtMock := new(JwtMakerMock)
			svc := services.NewAuthService(repo, jwtMock)

			tt.setupMocks(repo, jwtMock)

			user, token, err := svc.Register(context.Background(), "Budi Santoso", "081234567890", tt.email, "password123")
			if tt.wantErr {
				assert.Error(t, err)
				if tt.errIs != nil {
					assert.ErrorIs(t, err, tt.errIs)
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantToken, token)
				assert.Equal(t, "user-uid-1", user.UID)
				assert.Equal(t, models.RoleUser, user.Role)
			}

			repo.AssertExpectations(t)
			jwtMock.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	rawPassword := "correctpassword"

	hashedPassword, err := password.GetHash(rawPassword)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	testUser := &models.User{
		UID:          "user-uid-1",
		Email:        "budi@example.com",
		FullName:     "Budi Santoso",
		PasswordHash: hashedPassword,
		Role:         models.RoleUser,
	}

	tests := []struct {
		name       string
		email      string
		password   string
		setupMocks func(r *UserRepoMock, j *JwtMakerMock)
		wantToken  string
		wantErr    bool
		errIs      error
	}{
		{
			name:     "successful login",
			email:    "budi@example.com",
			password: rawPassword,
			setupMocks: func(r *UserRepoMock, j *JwtMakerMock) {
				r.On("GetUserByEmail", mock.Anything, "budi@example.com").Return(testUser, nil).Once()
				j.On("GenerateToken", "user-uid-1", "budi@example.com", models.RoleUser).
					Return("jwt-token-123", nil).Once()
			},
			wantToken: "jwt-token-123",
		},
		{
			name:     "user not found",
			email:    "nonexistent@example.com",
			password: "password",
			setupMocks: func(r *UserRepoMock, _ *JwtMakerMock) {
				r.On("GetUserByEmail", mock.Anything, "nonexistent@example.com").
					Return(nil, repository.ErrNotFound).Once()
			},
			wantErr: true,
			errIs:   services.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "budi@example.com",
			password: "wrongpassword",
			setupMocks: func(r *UserRepoMock, _ *JwtMakerMock) {
				r.On("GetUserByEmail", mock.Anything, "budi@example.com").Return(testUser, nil).Once()
			},
			wantErr: true,
			errIs:   services.ErrInvalidCredentials,
		},
		{
			name:     "token generation error",
			email:    "budi@example.com",
			password: rawPassword,
			setupMocks: func(r *UserRepoMock, j *JwtMakerMock) {
				r.On("GetUserByEmail", mock.Anything, "budi@example.com").Return(testUser, nil).Once()
				j.On("GenerateToken", "user-uid-1", "budi@example.com", models.RoleUser).
					Return("", errors.New("token error")).Once()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(UserRepoMock)
			jwtMock := new(JwtMakerMock)
			svc := services.NewAuthService(repo, jwtMock)

			tt.setupMocks(repo, jwtMock)

			user, token, err := svc.Login(context.Background(), tt.email, tt.password)
			if tt.wantErr {
				assert.Error(t, err)
				if tt.errIs != nil {
					assert.ErrorIs(t, err, tt.errIs)
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantToken, token)
				assert.Equal(t, testUser.UID, user.UID)
			}

			repo.AssertExpectations(t)
			jwtMock.AssertExpectations(t)
		})
	}
}

func TestAuthService_AdminLogin(t *testing.T) {
	rawPassword := "correctpassword"
	hashedPassword, err := password.GetHash(rawPassword)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	adminUser := &models.User{
		UID:          "admin-uid-1",
		Email:        "admin@example.com",
		PasswordHash: hashedPassword,
		Role:         models.RoleAdmin,
	}
	regularUser := &models.User{
		UID:          "user-uid-1",
		Email:        "budi@example.com",
		PasswordHash: hashedPassword,
		Role:         models.RoleUser,
	}

	t.Run("admin may log in", func(t *testing.T) {
		repo := new(UserRepoMock)
		jwtMock := new(JwtMakerMock)
		svc := services.NewAuthService(repo, jwtMock)

		repo.On("GetUserByEmail", mock.Anything, "admin@example.com").Return(adminUser, nil).Once()
		jwtMock.On("GenerateToken", "admin-uid-1", "admin@example.com", models.RoleAdmin).
			Return("admin-token", nil).Once()

		user, token, err := svc.AdminLogin(context.Background(), "admin@example.com", rawPassword)
		assert.NoError(t, err)
		assert.Equal(t, "admin-token", token)
		assert.Equal(t, models.RoleAdmin, user.Role)
	})

	t.Run("regular user is rejected", func(t *testing.T) {
		repo := new(UserRepoMock)
		jwtMock := new(JwtMakerMock)
		svc := services.NewAuthService(repo, jwtMock)

		repo.On("GetUserByEmail", mock.Anything, "budi@example.com").Return(regularUser, nil).Once()
		jwtMock.On("GenerateToken", "user-uid-1", "budi@example.com", models.RoleUser).
			Return("user-token", nil).Once()

		_, _, err := svc.AdminLogin(context.Background(), "budi@example.com", rawPassword)
		assert.ErrorIs(t, err, services.ErrNotAdmin)
	})

	t.Run("wrong password hides role check", func(t *testing.T) {
		repo := new(UserRepoMock)
		jwtMock := new(JwtMakerMock)
		svc := services.NewAuthService(repo, jwtMock)

		repo.On("GetUserByEmail", mock.Anything, "budi@example.com").Return(regularUser, nil).Once()

		_, _, err := svc.AdminLogin(context.Background(), "budi@example.com", "wrongpassword")
		assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	})
}

func TestAuthService_CreateAdmin(t *testing.T) {
	params := services.CreateAdminParams{
		FullName: "Admin Pertama",
		PhoneNum: "081234567890",
		Email:    "admin@example.com",
		Password: "adminpass",
		Role:     models.RoleAdmin,
	}

	validClaims := &customjwt.CustomClaims{
		UserUID: "admin-uid-1",
		Email:   "admin@example.com",
		Role:    models.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	adminCaller := &models.User{UID: "admin-uid-1", Email: "admin@example.com", Role: models.RoleAdmin}
	userCaller := &models.User{UID: "user-uid-1", Email: "budi@example.com", Role: models.RoleUser}

	t.Run("bootstrap without token when no admins exist", func(t *testing.T) {
		repo := new(UserRepoMock)
		jwtMock := new(JwtMakerMock)
		svc := services.NewAuthService(repo, jwtMock)

		repo.On("CountAdmins", mock.Anything).Return(0, nil).Once()
		repo.On("BootstrapAdmin", mock.Anything, mock.MatchedBy(func(user models.User) bool {
			return user.Role == models.RoleAdmin && user.Email == params.Email
		})).Return("admin-uid-1", nil).Once()

		user, err := svc.CreateAdmin(context.Background(), "", params)
		assert.NoError(t, err)
		assert.Equal(t, models.RoleAdmin, user.Role)
		repo.AssertExpectations(t)
	})

	t.Run("bootstrap forces admin role even if user requested", func(t *testing.T) {
		repo := new(UserRepoMock)
		jwtMock := new(JwtMakerMock)
		svc := services.NewAuthService(repo, jwtMock)

		weird := params
		weird.Role = models.RoleUser

		repo.On("CountAdmins", mock.Anything).Return(0, nil).Once()
		repo.On("BootstrapAdmin", mock.Anything, mock.MatchedBy(func(user models.User) bool {
			return user.Role == models.RoleAdmin
		})).Return("admin-uid-1", nil).Once()

		user, err := svc.CreateAdmin(context.Background(), "", weird)
		assert.NoError(t, err)
		assert.Equal(t, models.RoleAdmin, user.Role)
	})

	t.Run("lost bootstrap race requires auth", func(t *testing.T) {
		repo := new(UserRepoMock)
		jwtMock := new(JwtMakerMock)
		svc := services.NewAuthService(repo, jwtMock)

		repo.On("CountAdmins", mock.Anything).Return(0, nil).Once()
		repo.On("BootstrapAdmin", mock.Anything, mock.Anything).
			Return("", repository.ErrAlreadyExists).Once()

		_, err := svc.CreateAdmin(context.Background(), "", params)
		assert.ErrorIs(t, err, services.ErrAuthRequired)
	})

	t.Run("missing token when admin exists", func(t *testing.T) {
		repo := new(UserRepoMock)
		jwtMock := new(JwtMakerMock)
		svc := services.NewAuthService(repo, jwtMock)

		repo.On("CountAdmins", mock.Anything).Return(1, nil).Once()

		_, err := svc.CreateAdmin(context.Background(), "", params)
		assert.ErrorIs(t, err, services.ErrAuthRequired)
	})

	t.Run("invalid token when admin exists", func(t *testing.T) {
		repo := new(UserRepoMock)
		jwtMock := new(JwtMakerMock)
		svc := services.NewAuthService(repo, jwtMock)

		repo.On("CountAdmins", mock.Anything).Return(1, nil).Once()
		jwtMock.On("ParseToken", "bad-token").Return(nil, errors.New("token is malformed")).Once()

		_, err := svc.CreateAdmin(context.Background(), "bad-token", params)
		assert.ErrorIs(t, err, services.ErrAuthRequired)
	})

	t.Run("caller role is re-read from storage", func(t *testing.T) {
		repo := new(UserRepoMock)
		jwtMock := new(JwtMakerMock)
		svc := services.NewAuthService(repo, jwtMock)

		staleClaims := &customjwt.CustomClaims{
			UserUID: "user-uid-1",
			Email:   "budi@example.com",
			Role:    models.RoleAdmin, // токен врет, в базе роль user
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}

		repo.On("CountAdmins", mock.Anything).Return(1, nil).Once()
		jwtMock.On("ParseToken", "stale-token").Return(staleClaims, nil).Once()
		repo.On("GetUser", mock.Anything, "user-uid-1").Return(userCaller, nil).Once()

		_, err := svc.CreateAdmin(context.Background(), "stale-token", params)
		assert.ErrorIs(t, err, services.ErrNotAdmin)
	})

	t.Run("invalid target role", func(t *testing.T) {
		repo := new(UserRepoMock)
		jwtMock := new(JwtMakerMock)
		svc := services.NewAuthService(repo, jwtMock)

		bad := params
		bad.Role = "superuser"

		repo.On("CountAdmins", mock.Anything).Return(1, nil).Once()
		jwtMock.On("ParseToken", "valid-token").Return(validClaims, nil).Once()
		repo.On("GetUser", mock.Anything, "admin-uid-1").Return(adminCaller, nil).Once()

		_, err := svc.CreateAdmin(context.Background(), "valid-token", bad)
		assert.ErrorIs(t, err, services.ErrInvalidRole)
	})

	t.Run("admin creates another admin", func(t *testing.T) {
		repo := new(UserRepoMock)
		jwtMock := new(JwtMakerMock)
		svc := services.NewAuthService(repo, jwtMock)

		repo.On("CountAdmins", mock.Anything).Return(1, nil).Once()
		jwtMock.On("ParseToken", "valid-token").Return(validClaims, nil).Once()
		repo.On("GetUser", mock.Anything, "admin-uid-1").Return(adminCaller, nil).Once()
		repo.On("RegisterUser", mock.Anything, mock.MatchedBy(func(user models.User) bool {
			return user.Role == models.RoleAdmin && user.Email == params.Email
		})).Return("admin-uid-2", nil).Once()

		user, err := svc.CreateAdmin(context.Background(), "valid-token", params)
		assert.NoError(t, err)
		assert.Equal(t, "admin-uid-2", user.UID)
		repo.AssertExpectations(t)
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	oldPassword := "oldpassword"
	hashedOld, err := password.GetHash(oldPassword)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	testUser := &models.User{
		UID:          "user-uid-1",
		Email:        "budi@example.com",
		PasswordHash: hashedOld,
		Role:         models.RoleUser,
	}

	t.Run("successful change", func(t *testing.T) {
		repo := new(UserRepoMock)
		jwtMock := new(JwtMakerMock)
		svc := services.NewAuthService(repo, jwtMock)

		repo.On("GetUser", mock.Anything, "user-uid-1").Return(testUser, nil).Once()
		repo.On("UpdatePassword", mock.Anything, "user-uid-1", mock.MatchedBy(func(hash string) bool {
			return hash != "" && hash != hashedOld
		})).Return(nil).Once()

		err := svc.ChangePassword(context.Background(), "user-uid-1", oldPassword, "newpassword")
		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("wrong old password", func(t *testing.T) {
		repo := new(UserRepoMock)
		jwtMock := new(JwtMakerMock)
		svc := services.NewAuthService(repo, jwtMock)

		repo.On("GetUser", mock.Anything, "user-uid-1").Return(testUser, nil).Once()

		err := svc.ChangePassword(context.Background(), "user-uid-1", "wrongold", "newpassword")
		assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		repo := new(UserRepoMock)
		jwtMock := new(JwtMakerMock)
		svc := services.NewAuthService(repo, jwtMock)

		repo.On("GetUser", mock.Anything, "missing-uid").Return(nil, repository.ErrNotFound).Once()

		err := svc.ChangePassword(context.Background(), "missing-uid", oldPassword, "newpassword")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}
