package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/agummds/PadangTourGuide/internal/models"
)

// CreateFavourite вставляет связь пользователь—место и возвращает её UID.
//
// Пара (user_uid, tempat_wisata_uid) уникальна на уровне базы, поэтому
// конкурентное повторное добавление тоже дает ErrAlreadyExists, а не
// вторую запись.
func (s *Storage) CreateFavourite(ctx context.Context, fav models.Favourite) (string, error) {
	const op = "storage.CreateFavourite"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newUID string
	query := `INSERT INTO favourites (uid, user_uid, tempat_wisata_uid)
			  VALUES ($1, $2, $3)
			  RETURNING uid;`
	if err := s.DB.QueryRowContext(ctx, query,
		fav.UID, fav.UserUID, fav.TempatWisataUID).Scan(&newUID); err != nil {
		return "", translateError(op, err)
	}
	return newUID, nil
}

// ListFavouritesExpanded возвращает избранное пользователя с развернутыми
// данными туристического места (join вместо вложенного массива).
func (s *Storage) ListFavouritesExpanded(ctx context.Context, userUID string) ([]*models.FavouriteExpanded, error) {
	const op = "storage.ListFavouritesExpanded"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT f.uid, f.created_at, t.uid, t.nama_tempat, t.image_url, t.alamat, t.jam_operasi
			  FROM favourites f
			  JOIN tempat_wisata t ON t.uid = f.tempat_wisata_uid
			  WHERE f.user_uid = $1
			  ORDER BY f.created_at`
	rows, err := s.DB.QueryContext(ctx, query, userUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.FavouriteExpanded
	for rows.Next() {
		var f models.FavouriteExpanded
		var alamat, jamOperasi []byte
		if err = rows.Scan(&f.UID, &f.CreatedAt, &f.TempatWisata.UID, &f.TempatWisata.NamaTempat,
			&f.TempatWisata.ImageURL, &alamat, &jamOperasi); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if err = json.Unmarshal(alamat, &f.TempatWisata.Alamat); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if err = json.Unmarshal(jamOperasi, &f.TempatWisata.JamOperasi); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &f)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// RemoveFavourite удаляет связь пользователь—место.
// Отсутствующая пара дает ErrNotFound.
func (s *Storage) RemoveFavourite(ctx context.Context, userUID, tempatWisataUID string) error {
	const op = "storage.RemoveFavourite"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM favourites WHERE user_uid = $1 AND tempat_wisata_uid = $2`
	result, err := s.DB.ExecContext(ctx, query, userUID, tempatWisataUID)
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
