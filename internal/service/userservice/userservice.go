package userservice

import (
	"context"
	"errors"

	"github.com/marinaclub/boatshare/internal/domain"
)

type UserRepo interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}

var ErrNotFound = errors.New("user not found")

type Service struct {
	userRepo UserRepo
}

func New(userRepo UserRepo) *Service {
	return &Service{
		userRepo: userRepo,
	}
}

func (s *Service) GetUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.List(ctx)
}
