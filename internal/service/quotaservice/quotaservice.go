package quotaservice

import (
	"context"
	"errors"

	"github.com/marinaclub/boatshare/internal/domain"
	"go.uber.org/zap"
)

type UserRepo interface {
	LockQuotas(ctx context.Context, id string) (*domain.User, error)
	UpdateQuotas(ctx context.Context, user *domain.User) error
}

var (
	ErrInsufficientQuota = errors.New("insufficient quota")
	ErrUserNotFound      = errors.New("user not found")
)

// Service is the quota ledger: per-user counters per reservation kind,
// mutated only through Deduct and Restore. Both take the user's row lock, so
// they must run inside a transaction; the lock is held until commit.
type Service struct {
	userRepo UserRepo
}

func New(userRepo UserRepo) *Service {
	return &Service{
		userRepo: userRepo,
	}
}

// HasSufficient reports whether the counter for the kind has units left.
func HasSufficient(user *domain.User, kind domain.Kind) bool {
	return user.Quota(kind) > 0
}

// Deduct takes one unit of the user's quota for the kind. The locked
// read-modify-write means two concurrent deductions cannot both spend the
// last unit; the loser fails with ErrInsufficientQuota and nothing changes.
func (s *Service) Deduct(ctx context.Context, userID string, kind domain.Kind) error {
	user, err := s.userRepo.LockQuotas(ctx, userID)
	if err != nil {
		zap.L().Error("failed to lock quotas for deduct", zap.Error(err))
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if !HasSufficient(user, kind) {
		return ErrInsufficientQuota
	}

	user.AddQuota(kind, -1)
	if err := s.userRepo.UpdateQuotas(ctx, user); err != nil {
		zap.L().Error("failed to deduct quota", zap.Error(err))
		return err
	}
	return nil
}

// Restore gives one unit back. The ledger enforces no upper bound; restores
// are attributed to exactly one reservation lifecycle event by the caller
// via the reservation's quotaRestored guard.
func (s *Service) Restore(ctx context.Context, userID string, kind domain.Kind) error {
	user, err := s.userRepo.LockQuotas(ctx, userID)
	if err != nil {
		zap.L().Error("failed to lock quotas for restore", zap.Error(err))
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	user.AddQuota(kind, 1)
	if err := s.userRepo.UpdateQuotas(ctx, user); err != nil {
		zap.L().Error("failed to restore quota", zap.Error(err))
		return err
	}
	return nil
}
