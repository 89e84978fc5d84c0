package authservice

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/marinaclub/boatshare/internal/domain"
	"github.com/marinaclub/boatshare/internal/pg"
	"github.com/marinaclub/boatshare/pkg/auth"
	"go.uber.org/zap"
)

// Default quota grants for a newly registered member, per reservation kind.
const (
	DefaultStandardQuota     = 2
	DefaultSubstitutionQuota = 2
	DefaultContingencyQuota  = 1
)

const tokenTTL = 15 * time.Minute

type UserRepo interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

type BoatRepo interface {
	FindByID(ctx context.Context, id string) (*domain.Boat, error)
	AssignUser(ctx context.Context, boatID string) (bool, error)
}

var (
	ErrEmailTaken         = errors.New("email already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrBoatNotFound       = errors.New("boat not found")
	ErrBoatFull           = errors.New("boat has no remaining seats")
)

type Service struct {
	userRepo    UserRepo
	boatRepo    BoatRepo
	txManager   pg.TXManager
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
}

func New(userRepo UserRepo, boatRepo BoatRepo, txManager pg.TXManager, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		userRepo:    userRepo,
		boatRepo:    boatRepo,
		txManager:   txManager,
		hashService: hashService,
		jwtService:  jwtService,
	}
}

// Register creates a member with the default quota grants and seats them on
// the given boat. The seat claim and the user insert commit together, so a
// failed insert releases the seat.
func (s *Service) Register(ctx context.Context, email, name, password, boatID string) (*domain.User, error) {
	existingUser, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("user already exists", zap.String("email", email))
		return nil, ErrEmailTaken
	}

	boat, err := s.boatRepo.FindByID(ctx, boatID)
	if err != nil {
		return nil, err
	}
	if boat == nil {
		return nil, ErrBoatNotFound
	}

	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}

	user := &domain.User{
		ID:                uuid.NewString(),
		Email:             email,
		Name:              name,
		Role:              domain.RoleMember,
		BoatID:            boatID,
		PasswordHash:      hashedPassword,
		StandardQuota:     DefaultStandardQuota,
		SubstitutionQuota: DefaultSubstitutionQuota,
		ContingencyQuota:  DefaultContingencyQuota,
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		seated, err := s.boatRepo.AssignUser(ctx, boatID)
		if err != nil {
			return err
		}
		if !seated {
			return ErrBoatFull
		}
		_, err = s.userRepo.Create(ctx, user)
		return err
	})
	if err != nil {
		zap.L().Error("can't register user: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.String("email", email))
	return user, nil
}

func (s *Service) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil || user == nil {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		zap.L().Error("invalid credentials", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("user successfully authenticated", zap.String("email", email))
	return user, nil
}

func (s *Service) GenerateToken(userID, role string) (string, error) {
	expirationTime := time.Now().Add(tokenTTL)

	token, err := s.jwtService.GenerateJWT(userID, role, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}
