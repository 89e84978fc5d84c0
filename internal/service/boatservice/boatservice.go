package boatservice

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/marinaclub/boatshare/internal/domain"
	"go.uber.org/zap"
)

type BoatRepo interface {
	FindByID(ctx context.Context, id string) (*domain.Boat, error)
	Create(ctx context.Context, boat *domain.Boat) (*domain.Boat, error)
	List(ctx context.Context) ([]domain.Boat, error)
}

var (
	ErrNotFound        = errors.New("boat not found")
	ErrInvalidCapacity = errors.New("boat capacity must be positive")
)

type Service struct {
	boatRepo BoatRepo
}

func New(boatRepo BoatRepo) *Service {
	return &Service{
		boatRepo: boatRepo,
	}
}

func (s *Service) CreateBoat(ctx context.Context, name string, capacity int) (*domain.Boat, error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}

	boat := &domain.Boat{
		ID:       uuid.NewString(),
		Name:     name,
		Capacity: capacity,
	}
	boat, err := s.boatRepo.Create(ctx, boat)
	if err != nil {
		zap.L().Error("can't create boat: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("boat created", zap.String("boatID", boat.ID), zap.String("name", name))
	return boat, nil
}

func (s *Service) GetBoat(ctx context.Context, id string) (*domain.Boat, error) {
	boat, err := s.boatRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if boat == nil {
		return nil, ErrNotFound
	}
	return boat, nil
}

func (s *Service) ListBoats(ctx context.Context) ([]domain.Boat, error) {
	return s.boatRepo.List(ctx)
}
