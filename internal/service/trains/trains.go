package trains

import (
	"context"
	"log/slog"

	"railBooker/internal/lib/logger/sl"
	"railBooker/internal/models"
)

type TrainStorage interface {
	AddTrain(ctx context.Context, train models.Train) (int64, error)
	ListActiveTrains(ctx context.Context) ([]models.Train, error)
	SearchTrains(ctx context.Context, from, to string) ([]models.Train, error)
}

type Cache interface {
	GetTrains(ctx context.Context) ([]models.Train, error)
	SetTrains(ctx context.Context, trains []models.Train) error
	InvalidateTrains(ctx context.Context) error
}

// Service serves the train catalog, keeping the active listing in an
// optional read-through cache. A nil cache disables caching.
type Service struct {
	storage TrainStorage
	cache   Cache
	log     *slog.Logger
}

func New(log *slog.Logger, storage TrainStorage, cache Cache) *Service {
	return &Service{
		storage: storage,
		cache:   cache,
		log:     log,
	}
}

func (s *Service) ListActiveTrains(ctx context.Context) ([]models.Train, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetTrains(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	trains, err := s.storage.ListActiveTrains(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetTrains(ctx, trains); err != nil {
			s.log.Warn("failed to cache trains", sl.Err(err))
		}
	}

	return trains, nil
}

func (s *Service) SearchTrains(ctx context.Context, from, to string) ([]models.Train, error) {
	return s.storage.SearchTrains(ctx, from, to)
}

func (s *Service) AddTrain(ctx context.Context, train models.Train) (int64, error) {
	id, err := s.storage.AddTrain(ctx, train)
	if err != nil {
		return 0, err
	}

	if s.cache != nil {
		if err := s.cache.InvalidateTrains(ctx); err != nil {
			s.log.Warn("failed to invalidate train cache", sl.Err(err))
		}
	}

	return id, nil
}
