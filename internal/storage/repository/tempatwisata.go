package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/agummds/PadangTourGuide/internal/models"
)

// Списки адресов и расписание хранятся в колонках JSONB,
// сканирование идет через []byte + encoding/json.

// CreateTempatWisata вставляет новое туристическое место и возвращает его UID.
//
// Дубликат названия транслируется в ErrAlreadyExists за счет уникального
// индекса tempat_wisata.nama_tempat.
func (s *Storage) CreateTempatWisata(ctx context.Context, tempat models.TempatWisata) (string, error) {
	const op = "storage.CreateTempatWisata"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	alamat, err := json.Marshal(tempat.Alamat)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	jamOperasi, err := json.Marshal(tempat.JamOperasi)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	var newUID string
	query := `INSERT INTO tempat_wisata (uid, nama_tempat, image_url, alamat, jam_operasi)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING uid;`
	if err = s.DB.QueryRowContext(ctx, query,
		tempat.UID, tempat.NamaTempat, tempat.ImageURL, alamat, jamOperasi).Scan(&newUID); err != nil {
		return "", translateError(op, err)
	}
	return newUID, nil
}

// GetTempatWisata возвращает туристическое место по UID или ErrNotFound.
func (s *Storage) GetTempatWisata(ctx context.Context, uid string) (*models.TempatWisata, error) {
	const op = "storage.GetTempatWisata"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uid, nama_tempat, image_url, alamat, jam_operasi
			  FROM tempat_wisata
			  WHERE uid = $1`
	row := s.DB.QueryRowContext(ctx, query, uid)

	var result models.TempatWisata
	var alamat, jamOperasi []byte
	if err := row.Scan(&result.UID, &result.NamaTempat, &result.ImageURL,
		&alamat, &jamOperasi); err != nil {
		return nil, translateError(op, err)
	}
	if err := json.Unmarshal(alamat, &result.Alamat); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := json.Unmarshal(jamOperasi, &result.JamOperasi); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}

// ListTempatWisata возвращает все туристические места.
func (s *Storage) ListTempatWisata(ctx context.Context) ([]*models.TempatWisata, error) {
	const op = "storage.ListTempatWisata"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uid, nama_tempat, image_url, alamat, jam_operasi
			  FROM tempat_wisata
			  ORDER BY nama_tempat`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.TempatWisata
	for rows.Next() {
		var t models.TempatWisata
		var alamat, jamOperasi []byte
		if err = rows.Scan(&t.UID, &t.NamaTempat, &t.ImageURL, &alamat, &jamOperasi); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if err = json.Unmarshal(alamat, &t.Alamat); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if err = json.Unmarshal(jamOperasi, &t.JamOperasi); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &t)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// RemoveTempatWisata удаляет туристическое место по UID.
// Отсутствующая запись дает ErrNotFound.
func (s *Storage) RemoveTempatWisata(ctx context.Context, uid string) error {
	const op = "storage.RemoveTempatWisata"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM tempat_wisata WHERE uid = $1`
	result, err := s.DB.ExecContext(ctx, query, uid)
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
