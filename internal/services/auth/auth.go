// Package services содержит логику бизнес-уровня для работы с пользователями и аутентификацией.
package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/agummds/PadangTourGuide/internal/lib/jwt"
	"github.com/agummds/PadangTourGuide/internal/lib/password"
	"github.com/agummds/PadangTourGuide/internal/models"
	"github.com/agummds/PadangTourGuide/internal/storage/repository"
)

// Сентинельные ошибки сервиса аутентификации.
var (
	// ErrInvalidCredentials — неизвестный email или неверный пароль.
	// Наружу эти случаи не различаются.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrNotAdmin — токен валиден, но роль пользователя не admin.
	ErrNotAdmin = errors.New("access denied: admin role required")
	// ErrAuthRequired — операция требует валидного токена, а его нет.
	ErrAuthRequired = errors.New("authentication required")
	// ErrInvalidRole — целевая роль не входит в {user, admin}.
	ErrInvalidRole = errors.New("target role must be user or admin")
)

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// RegisterUser сохраняет нового пользователя и возвращает его UID.
	RegisterUser(ctx context.Context, user models.User) (string, error)
	// GetUserByEmail возвращает пользователя по email или ошибку, если не найден.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	// GetUser возвращает пользователя по UID.
	GetUser(ctx context.Context, userUID string) (*models.User, error)
	// ListUsers возвращает всех пользователей.
	ListUsers(ctx context.Context) ([]*models.User, error)
	// CountAdmins возвращает число пользователей с ролью admin.
	CountAdmins(ctx context.Context) (int, error)
	// BootstrapAdmin атомарно создает первого администратора.
	BootstrapAdmin(ctx context.Context, user models.User) (string, error)
	// UpdatePassword заменяет хэш пароля пользователя.
	UpdatePassword(ctx context.Context, userUID, passwordHash string) error
}

// CreateAdminParams — входные данные операции создания администратора.
type CreateAdminParams struct {
	FullName string
	PhoneNum string
	Email    string
	Password string
	Role     string
}

// AuthService отвечает за регистрацию, вход, смену пароля и политику
// создания администраторов.
type AuthService struct {
	users    UserRepository
	jwtMaker jwt.Maker
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, jwtMaker jwt.Maker) *AuthService {
	return &AuthService{
		users:    users,
		jwtMaker: jwtMaker,
	}
}

// Register создает нового пользователя с ролью "user" и сразу выдает токен.
//
// Дубликат email пробрасывается как repository.ErrAlreadyExists.
func (s *AuthService) Register(ctx context.Context, fullName, phoneNum, email, rawPassword string) (*models.User, string, error) {
	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return nil, "", err
	}
	user := models.User{
		UID:          uuid.NewString(),
		FullName:     fullName,
		Email:        email,
		PhoneNum:     phoneNum,
		PasswordHash: hashed,
		Role:         models.RoleUser, // дефолтная роль при регистрации
	}
	uid, err := s.users.RegisterUser(ctx, user)
	if err != nil {
		return nil, "", err
	}
	user.UID = uid

	token, err := s.jwtMaker.GenerateToken(user.UID, user.Email, user.Role)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

// Login проверяет пароль пользователя и генерирует JWT.
func (s *AuthService) Login(ctx context.Context, email, rawPassword string) (*models.User, string, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}
	if err = password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return nil, "", ErrInvalidCredentials
	}
	token, err := s.jwtMaker.GenerateToken(user.UID, user.Email, user.Role)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// AdminLogin — вход, разрешенный только администраторам.
// Неверные учетные данные проверяются до роли, чтобы по ответу нельзя
// было отличить "не админ" от "нет такого пользователя".
func (s *AuthService) AdminLogin(ctx context.Context, email, rawPassword string) (*models.User, string, error) {
	user, token, err := s.Login(ctx, email, rawPassword)
	if err != nil {
		return nil, "", err
	}
	if user.Role != models.RoleAdmin {
		return nil, "", ErrNotAdmin
	}
	return user, token, nil
}

// CreateAdmin реализует политику создания администратора.
//
// Пока в системе нет ни одного администратора, вызов разрешен без токена
// и создает первого администратора (роль принудительно admin, переданная
// роль игнорируется). Гонка двух bootstrap-запросов разрешается в
// хранилище: проигравший получает ErrAuthRequired.
//
// Когда администратор уже есть, требуется валидный токен; запись
// вызывающего перечитывается из хранилища, и только действующий admin
// может создать новую учетную запись с явной ролью.
func (s *AuthService) CreateAdmin(ctx context.Context, rawToken string, params CreateAdminParams) (*models.User, error) {
	count, err := s.users.CountAdmins(ctx)
	if err != nil {
		return nil, err
	}

	if count == 0 {
		return s.bootstrapAdmin(ctx, params)
	}

	if rawToken == "" {
		return nil, ErrAuthRequired
	}
	claims, err := s.jwtMaker.ParseToken(rawToken)
	if err != nil {
		return nil, ErrAuthRequired
	}
	caller, err := s.users.GetUser(ctx, claims.UserUID)
	if err != nil {
		return nil, ErrAuthRequired
	}
	if caller.Role != models.RoleAdmin {
		return nil, ErrNotAdmin
	}
	if params.Role != models.RoleUser && params.Role != models.RoleAdmin {
		return nil, ErrInvalidRole
	}

	hashed, err := password.GetHash(params.Password)
	if err != nil {
		return nil, err
	}
	user := models.User{
		UID:          uuid.NewString(),
		FullName:     params.FullName,
		Email:        params.Email,
		PhoneNum:     params.PhoneNum,
		PasswordHash: hashed,
		Role:         params.Role,
	}
	uid, err := s.users.RegisterUser(ctx, user)
	if err != nil {
		return nil, err
	}
	user.UID = uid
	return &user, nil
}

func (s *AuthService) bootstrapAdmin(ctx context.Context, params CreateAdminParams) (*models.User, error) {
	hashed, err := password.GetHash(params.Password)
	if err != nil {
		return nil, err
	}
	user := models.User{
		UID:          uuid.NewString(),
		FullName:     params.FullName,
		Email:        params.Email,
		PhoneNum:     params.PhoneNum,
		PasswordHash: hashed,
		Role:         models.RoleAdmin,
	}
	uid, err := s.users.BootstrapAdmin(ctx, user)
	if errors.Is(err, repository.ErrAlreadyExists) {
		// Проиграли гонку: администратор уже появился, значит дальше
		// работает обычная политика и без токена делать нечего.
		return nil, ErrAuthRequired
	}
	if err != nil {
		return nil, err
	}
	user.UID = uid
	return &user, nil
}

// ChangePassword меняет пароль пользователя после проверки старого.
func (s *AuthService) ChangePassword(ctx context.Context, userUID, oldPassword, newPassword string) error {
	user, err := s.users.GetUser(ctx, userUID)
	if err != nil {
		return err
	}
	if err = password.CompareHash(user.PasswordHash, oldPassword); err != nil {
		return ErrInvalidCredentials
	}
	hashed, err := password.GetHash(newPassword)
	if err != nil {
		return err
	}
	return s.users.UpdatePassword(ctx, userUID, hashed)
}

// ListUsers возвращает всех пользователей. Хэш пароля наружу не
// сериализуется (json:"-" в модели).
func (s *AuthService) ListUsers(ctx context.Context) ([]*models.User, error) {
	return s.users.ListUsers(ctx)
}
