// Package services содержит бизнес-логику каталога: туристические места,
// локальные события и отзывы с оценками.
package services

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/agummds/PadangTourGuide/internal/models"
)

// CatalogRepository определяет методы хранилища для каталога.
type CatalogRepository interface {
	CreateTempatWisata(ctx context.Context, tempat models.TempatWisata) (string, error)
	GetTempatWisata(ctx context.Context, uid string) (*models.TempatWisata, error)
	ListTempatWisata(ctx context.Context) ([]*models.TempatWisata, error)
	RemoveTempatWisata(ctx context.Context, uid string) error
	CreateEvent(ctx context.Context, event models.EventLokal) (string, error)
	ListEvents(ctx context.Context) ([]*models.EventLokal, error)
	CreateUlasan(ctx context.Context, ulasan models.UlasanRating) (string, error)
	ListUlasan(ctx context.Context) ([]*models.UlasanRating, error)
}

// WisataService реализует операции каталога поверх хранилища.
type WisataService struct {
	repo CatalogRepository
	log  *slog.Logger
}

// NewWisataService создает новый экземпляр WisataService.
func NewWisataService(repo CatalogRepository, log *slog.Logger) *WisataService {
	return &WisataService{
		repo: repo,
		log:  log,
	}
}

// CreateTempatWisata создает туристическое место и возвращает его UID.
func (s *WisataService) CreateTempatWisata(ctx context.Context, tempat models.TempatWisata) (string, error) {
	tempat.UID = uuid.NewString()
	uid, err := s.repo.CreateTempatWisata(ctx, tempat)
	if err != nil {
		return "", err
	}
	s.log.Info("created tempat wisata", slog.String("uid", uid), slog.String("nama", tempat.NamaTempat))
	return uid, nil
}

// GetTempatWisata возвращает туристическое место по UID.
func (s *WisataService) GetTempatWisata(ctx context.Context, uid string) (*models.TempatWisata, error) {
	return s.repo.GetTempatWisata(ctx, uid)
}

// ListTempatWisata возвращает все туристические места.
func (s *WisataService) ListTempatWisata(ctx context.Context) ([]*models.TempatWisata, error) {
	return s.repo.ListTempatWisata(ctx)
}

// RemoveTempatWisata удаляет туристическое место по UID.
func (s *WisataService) RemoveTempatWisata(ctx context.Context, uid string) error {
	return s.repo.RemoveTempatWisata(ctx, uid)
}

// CreateEvent создает локальное событие и возвращает его UID.
func (s *WisataService) CreateEvent(ctx context.Context, event models.EventLokal) (string, error) {
	event.UID = uuid.NewString()
	return s.repo.CreateEvent(ctx, event)
}

// ListEvents возвращает все локальные события.
func (s *WisataService) ListEvents(ctx context.Context) ([]*models.EventLokal, error) {
	return s.repo.ListEvents(ctx)
}

// CreateUlasan создает отзыв с оценкой и возвращает его UID.
func (s *WisataService) CreateUlasan(ctx context.Context, ulasan models.UlasanRating) (string, error) {
	ulasan.UID = uuid.NewString()
	return s.repo.CreateUlasan(ctx, ulasan)
}

// ListUlasan возвращает все отзывы.
func (s *WisataService) ListUlasan(ctx context.Context) ([]*models.UlasanRating, error) {
	return s.repo.ListUlasan(ctx)
}
