// Package services содержит бизнес-логику ведения избранного:
// связи пользователь—туристическое место с кешированием списков.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/agummds/PadangTourGuide/internal/models"
)

// favouritesCacheTTL — время жизни кешированного списка избранного.
const favouritesCacheTTL = time.Minute

// FavouriteRepository определяет методы для работы с избранным в хранилище.
type FavouriteRepository interface {
	// CreateFavourite добавляет связь и возвращает её UID.
	CreateFavourite(ctx context.Context, fav models.Favourite) (string, error)
	// ListFavouritesExpanded возвращает избранное пользователя с данными мест.
	ListFavouritesExpanded(ctx context.Context, userUID string) ([]*models.FavouriteExpanded, error)
	// RemoveFavourite удаляет связь по паре (пользователь, место).
	RemoveFavourite(ctx context.Context, userUID, tempatWisataUID string) error
}

// WisataRepository описывает проверку существования туристического места.
type WisataRepository interface {
	GetTempatWisata(ctx context.Context, uid string) (*models.TempatWisata, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(key string, value any, expiration time.Duration) error
	// Invalidate удаляет значение из кеша по ключу.
	Invalidate(key string) error
}

// FavouriteService реализует бизнес-логику работы с избранным.
type FavouriteService struct {
	repo   FavouriteRepository
	wisata WisataRepository
	cache  Cache
	log    *slog.Logger
}

// NewFavouriteService создает новый экземпляр FavouriteService.
func NewFavouriteService(repo FavouriteRepository, wisata WisataRepository, cache Cache, log *slog.Logger) *FavouriteService {
	return &FavouriteService{
		repo:   repo,
		wisata: wisata,
		cache:  cache,
		log:    log,
	}
}

func cacheKey(userUID string) string {
	return fmt.Sprintf("favourites:%s", userUID)
}

// Add добавляет место в избранное пользователя.
//
// Место должно существовать (repository.ErrNotFound иначе); повторное
// добавление той же пары дает repository.ErrAlreadyExists — конфликт,
// а не тихий no-op. Уникальность пары гарантирует ограничение в базе,
// а не только предварительная проверка.
func (s *FavouriteService) Add(ctx context.Context, userUID, tempatWisataUID string) (string, error) {
	if _, err := s.wisata.GetTempatWisata(ctx, tempatWisataUID); err != nil {
		return "", err
	}

	fav := models.Favourite{
		UID:             uuid.NewString(),
		UserUID:         userUID,
		TempatWisataUID: tempatWisataUID,
	}
	uid, err := s.repo.CreateFavourite(ctx, fav)
	if err != nil {
		return "", err
	}
	s.log.Info("added favourite", slog.String("user", userUID), slog.String("tempat", tempatWisataUID))

	if err := s.cache.Invalidate(cacheKey(userUID)); err != nil {
		s.log.Warn("failed to invalidate favourites cache", slog.String("key", cacheKey(userUID)), slog.Any("err", err))
	}
	return uid, nil
}

// List возвращает избранное пользователя с развернутыми данными мест.
//
// Пустое избранное — это обычный пустой список, а не ошибка.
func (s *FavouriteService) List(ctx context.Context, userUID string) ([]*models.FavouriteExpanded, error) {
	var result []*models.FavouriteExpanded
	key := cacheKey(userUID)
	found, err := s.cache.Get(key, &result)
	if err != nil {
		s.log.Warn("failed to read favourites cache", slog.String("key", key), slog.Any("err", err))
	}
	if found {
		return result, nil
	}

	result, err = s.repo.ListFavouritesExpanded(ctx, userUID)
	if err != nil {
		return nil, err
	}
	if result == nil {
		result = []*models.FavouriteExpanded{}
	}

	if err = s.cache.Set(key, result, favouritesCacheTTL); err != nil {
		s.log.Warn("failed to cache favourites", slog.String("key", key), slog.Any("err", err))
	}
	return result, nil
}

// Remove удаляет место из избранного пользователя.
// Отсутствующая пара дает repository.ErrNotFound.
func (s *FavouriteService) Remove(ctx context.Context, userUID, tempatWisataUID string) error {
	if err := s.repo.RemoveFavourite(ctx, userUID, tempatWisataUID); err != nil {
		return err
	}
	s.log.Info("removed favourite", slog.String("user", userUID), slog.String("tempat", tempatWisataUID))

	if err := s.cache.Invalidate(cacheKey(userUID)); err != nil {
		s.log.Warn("failed to invalidate favourites cache", slog.String("key", cacheKey(userUID)), slog.Any("err", err))
	}
	return nil
}
