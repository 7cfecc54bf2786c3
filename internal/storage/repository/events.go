package repository

import (
	"context"
	"fmt"

	"github.com/agummds/PadangTourGuide/internal/models"
)

// CreateEvent вставляет новое локальное событие и возвращает его UID.
func (s *Storage) CreateEvent(ctx context.Context, event models.EventLokal) (string, error) {
	const op = "storage.CreateEvent"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newUID string
	query := `INSERT INTO events (uid, event_name, tentang_event, image_url)
			  VALUES ($1, $2, $3, $4)
			  RETURNING uid;`
	if err := s.DB.QueryRowContext(ctx, query,
		event.UID, event.EventName, event.TentangEvent, event.ImageURL).Scan(&newUID); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newUID, nil
}

// ListEvents возвращает все локальные события, новые первыми.
func (s *Storage) ListEvents(ctx context.Context) ([]*models.EventLokal, error) {
	const op = "storage.ListEvents"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uid, event_name, tentang_event, image_url, created_at
			  FROM events
			  ORDER BY created_at DESC`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.EventLokal
	for rows.Next() {
		var e models.EventLokal
		if err = rows.Scan(&e.UID, &e.EventName, &e.TentangEvent, &e.ImageURL, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
