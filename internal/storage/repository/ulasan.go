package repository

import (
	"context"
	"fmt"

	"github.com/agummds/PadangTourGuide/internal/models"
)

// CreateUlasan вставляет новый отзыв с оценкой и возвращает его UID.
func (s *Storage) CreateUlasan(ctx context.Context, ulasan models.UlasanRating) (string, error) {
	const op = "storage.CreateUlasan"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newUID string
	query := `INSERT INTO ulasan_rating (uid, user_name, ulasan, rating)
			  VALUES ($1, $2, $3, $4)
			  RETURNING uid;`
	if err := s.DB.QueryRowContext(ctx, query,
		ulasan.UID, ulasan.UserName, ulasan.Ulasan, ulasan.Rating).Scan(&newUID); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newUID, nil
}

// ListUlasan возвращает все отзывы, новые первыми.
func (s *Storage) ListUlasan(ctx context.Context) ([]*models.UlasanRating, error) {
	const op = "storage.ListUlasan"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uid, user_name, ulasan, rating, created_at
			  FROM ulasan_rating
			  ORDER BY created_at DESC`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.UlasanRating
	for rows.Next() {
		var u models.UlasanRating
		if err = rows.Scan(&u.UID, &u.UserName, &u.Ulasan, &u.Rating, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &u)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
