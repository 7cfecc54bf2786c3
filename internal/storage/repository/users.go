package repository

import (
	"context"
	"fmt"

	"github.com/agummds/PadangTourGuide/internal/models"
)

// RegisterUser сохраняет нового пользователя и возвращает его UID.
//
// Дубликат email транслируется в ErrAlreadyExists за счет уникального
// индекса users.email.
func (s *Storage) RegisterUser(ctx context.Context, user models.User) (string, error) {
	const op = "storage.RegisterUser"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newUID string
	query := `INSERT INTO users (uid, full_name, email, phone_num, password_hash, role)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING uid;`
	if err := s.DB.QueryRowContext(ctx, query,
		user.UID, user.FullName, user.Email, user.PhoneNum, user.PasswordHash,
		user.Role).Scan(&newUID); err != nil {
		return "", translateError(op, err)
	}
	return newUID, nil
}

// GetUserByEmail возвращает пользователя по email или ErrNotFound.
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "storage.GetUserByEmail"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uid, full_name, email, phone_num, password_hash, role, created_at
			  FROM users
			  WHERE email = $1`
	u := &models.User{}
	row := s.DB.QueryRowContext(ctx, query, email)
	if err := row.Scan(&u.UID, &u.FullName, &u.Email, &u.PhoneNum, &u.PasswordHash,
		&u.Role, &u.CreatedAt); err != nil {
		return nil, translateError(op, err)
	}
	return u, nil
}

// GetUser возвращает пользователя по его UID или ErrNotFound.
func (s *Storage) GetUser(ctx context.Context, userUID string) (*models.User, error) {
	const op = "storage.GetUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uid, full_name, email, phone_num, password_hash, role, created_at
			  FROM users
			  WHERE uid = $1`
	u := &models.User{}
	row := s.DB.QueryRowContext(ctx, query, userUID)
	if err := row.Scan(&u.UID, &u.FullName, &u.Email, &u.PhoneNum, &u.PasswordHash,
		&u.Role, &u.CreatedAt); err != nil {
		return nil, translateError(op, err)
	}
	return u, nil
}

// ListUsers возвращает всех пользователей, отсортированных по дате создания.
func (s *Storage) ListUsers(ctx context.Context) ([]*models.User, error) {
	const op = "storage.ListUsers"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uid, full_name, email, phone_num, password_hash, role, created_at
			  FROM users
			  ORDER BY created_at`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.User
	for rows.Next() {
		var u models.User
		if err = rows.Scan(&u.UID, &u.FullName, &u.Email, &u.PhoneNum, &u.PasswordHash,
			&u.Role, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &u)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// CountAdmins возвращает количество пользователей с ролью admin.
func (s *Storage) CountAdmins(ctx context.Context) (int, error) {
	const op = "storage.CountAdmins"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var count int
	query := `SELECT COUNT(*) FROM users WHERE role = 'admin'`
	if err := s.DB.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}

// adminBootstrapLockID — ключ pg_advisory_xact_lock, сериализующий
// создание первого администратора.
const adminBootstrapLockID = 7201

// BootstrapAdmin создает первого администратора в транзакции.
//
// Проверка "администраторов еще нет" и вставка выполняются под
// advisory-блокировкой, поэтому два конкурентных bootstrap-запроса не
// могут создать двух первых администраторов: проигравший получает
// ErrAlreadyExists.
func (s *Storage) BootstrapAdmin(ctx context.Context, user models.User) (string, error) {
	const op = "storage.BootstrapAdmin"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err = tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, adminBootstrapLockID); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	var count int
	if err = tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM users WHERE role = 'admin'`).Scan(&count); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if count > 0 {
		return "", fmt.Errorf("%s: %w", op, ErrAlreadyExists)
	}

	var newUID string
	query := `INSERT INTO users (uid, full_name, email, phone_num, password_hash, role)
			  VALUES ($1, $2, $3, $4, $5, 'admin')
			  RETURNING uid;`
	if err = tx.QueryRowContext(ctx, query,
		user.UID, user.FullName, user.Email, user.PhoneNum, user.PasswordHash).Scan(&newUID); err != nil {
		return "", translateError(op, err)
	}

	if err = tx.Commit(); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newUID, nil
}

// UpdatePassword заменяет хэш пароля пользователя.
func (s *Storage) UpdatePassword(ctx context.Context, userUID, passwordHash string) error {
	const op = "storage.UpdatePassword"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE users SET password_hash = $1 WHERE uid = $2`
	result, err := s.DB.ExecContext(ctx, query, passwordHash, userUID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return nil
}
