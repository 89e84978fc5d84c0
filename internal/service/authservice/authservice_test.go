package authservice

import (
	"context"
	"errors"
	"testing"

	"github.com/marinaclub/boatshare/internal/domain"
	"github.com/marinaclub/boatshare/internal/pg"
	"github.com/marinaclub/boatshare/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockUserRepo, *MockBoatRepo, *auth.MockHashServiceInterface, *auth.MockJWTServiceInterface) {
	ctrl := gomock.NewController(t)
	userRepo := NewMockUserRepo(ctrl)
	boatRepo := NewMockBoatRepo(ctrl)
	hashService := auth.NewMockHashServiceInterface(ctrl)
	jwtService := auth.NewMockJWTServiceInterface(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).AnyTimes()

	service := New(userRepo, boatRepo, txManager, hashService, jwtService)
	return service, userRepo, boatRepo, hashService, jwtService
}

func TestRegister(t *testing.T) {
	boat := &domain.Boat{ID: "boat-1", Name: "Vento Sul", Capacity: 10}

	tests := []struct {
		name          string
		prepareMock   func(userRepo *MockUserRepo, boatRepo *MockBoatRepo, hashService *auth.MockHashServiceInterface)
		expectedError error
	}{
		{
			name: "Successful registration grants the default quotas",
			prepareMock: func(userRepo *MockUserRepo, boatRepo *MockBoatRepo, hashService *auth.MockHashServiceInterface) {
				userRepo.EXPECT().FindByEmail(gomock.Any(), "member@club.org").Return(nil, nil)
				boatRepo.EXPECT().FindByID(gomock.Any(), "boat-1").Return(boat, nil)
				hashService.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				boatRepo.EXPECT().AssignUser(gomock.Any(), "boat-1").Return(true, nil)
				userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, user *domain.User) (*domain.User, error) {
					return user, nil
				})
			},
		},
		{
			name: "Email already taken",
			prepareMock: func(userRepo *MockUserRepo, boatRepo *MockBoatRepo, hashService *auth.MockHashServiceInterface) {
				userRepo.EXPECT().FindByEmail(gomock.Any(), "member@club.org").
					Return(&domain.User{Email: "member@club.org"}, nil)
			},
			expectedError: ErrEmailTaken,
		},
		{
			name: "Unknown boat",
			prepareMock: func(userRepo *MockUserRepo, boatRepo *MockBoatRepo, hashService *auth.MockHashServiceInterface) {
				userRepo.EXPECT().FindByEmail(gomock.Any(), "member@club.org").Return(nil, nil)
				boatRepo.EXPECT().FindByID(gomock.Any(), "boat-1").Return(nil, nil)
			},
			expectedError: ErrBoatNotFound,
		},
		{
			name: "Boat at capacity rejects the registration",
			prepareMock: func(userRepo *MockUserRepo, boatRepo *MockBoatRepo, hashService *auth.MockHashServiceInterface) {
				userRepo.EXPECT().FindByEmail(gomock.Any(), "member@club.org").Return(nil, nil)
				boatRepo.EXPECT().FindByID(gomock.Any(), "boat-1").Return(boat, nil)
				hashService.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				boatRepo.EXPECT().AssignUser(gomock.Any(), "boat-1").Return(false, nil)
			},
			expectedError: ErrBoatFull,
		},
		{
			name: "Error hashing password",
			prepareMock: func(userRepo *MockUserRepo, boatRepo *MockBoatRepo, hashService *auth.MockHashServiceInterface) {
				userRepo.EXPECT().FindByEmail(gomock.Any(), "member@club.org").Return(nil, nil)
				boatRepo.EXPECT().FindByID(gomock.Any(), "boat-1").Return(boat, nil)
				hashService.EXPECT().HashPassword("testpassword").Return("", errors.New("hashing error"))
			},
			expectedError: errors.New("hashing error"),
		},
		{
			name: "Error creating user",
			prepareMock: func(userRepo *MockUserRepo, boatRepo *MockBoatRepo, hashService *auth.MockHashServiceInterface) {
				userRepo.EXPECT().FindByEmail(gomock.Any(), "member@club.org").Return(nil, nil)
				boatRepo.EXPECT().FindByID(gomock.Any(), "boat-1").Return(boat, nil)
				hashService.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				boatRepo.EXPECT().AssignUser(gomock.Any(), "boat-1").Return(true, nil)
				userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("creation failed"))
			},
			expectedError: errors.New("creation failed"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, userRepo, boatRepo, hashService, _ := NewMock(t)
			tt.prepareMock(userRepo, boatRepo, hashService)

			user, err := service.Register(context.Background(), "member@club.org", "Test Member", "testpassword", "boat-1")
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, user)
				return
			}
			assert.NoError(t, err)
			assert.NotEmpty(t, user.ID)
			assert.Equal(t, domain.RoleMember, user.Role)
			assert.Equal(t, "boat-1", user.BoatID)
			assert.Equal(t, DefaultStandardQuota, user.StandardQuota)
			assert.Equal(t, DefaultSubstitutionQuota, user.SubstitutionQuota)
			assert.Equal(t, DefaultContingencyQuota, user.ContingencyQuota)
		})
	}
}

func TestAuthenticate(t *testing.T) {
	tests := []struct {
		name          string
		password      string
		prepareMock   func(userRepo *MockUserRepo, hashService *auth.MockHashServiceInterface)
		expectedUser  *domain.User
		expectedError error
	}{
		{
			name:     "Successful authentication",
			password: "testpassword",
			prepareMock: func(userRepo *MockUserRepo, hashService *auth.MockHashServiceInterface) {
				userRepo.EXPECT().FindByEmail(gomock.Any(), "member@club.org").Return(&domain.User{
					ID:           "user-1",
					Email:        "member@club.org",
					PasswordHash: "hashedpassword",
				}, nil)
				hashService.EXPECT().ComparePassword("hashedpassword", "testpassword").Return(true)
			},
			expectedUser: &domain.User{
				ID:           "user-1",
				Email:        "member@club.org",
				PasswordHash: "hashedpassword",
			},
		},
		{
			name:     "Invalid credentials - user not found",
			password: "testpassword",
			prepareMock: func(userRepo *MockUserRepo, hashService *auth.MockHashServiceInterface) {
				userRepo.EXPECT().FindByEmail(gomock.Any(), "member@club.org").Return(nil, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "Invalid credentials - incorrect password",
			password: "wrongpassword",
			prepareMock: func(userRepo *MockUserRepo, hashService *auth.MockHashServiceInterface) {
				userRepo.EXPECT().FindByEmail(gomock.Any(), "member@club.org").Return(&domain.User{
					ID:           "user-1",
					Email:        "member@club.org",
					PasswordHash: "hashedpassword",
				}, nil)
				hashService.EXPECT().ComparePassword("hashedpassword", "wrongpassword").Return(false)
			},
			expectedError: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, userRepo, _, hashService, _ := NewMock(t)
			tt.prepareMock(userRepo, hashService)

			user, err := service.Authenticate(context.Background(), "member@club.org", tt.password)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedUser, user)
			}
		})
	}
}

func TestGenerateToken(t *testing.T) {
	tests := []struct {
		name          string
		prepareMock   func(jwtService *auth.MockJWTServiceInterface)
		expectedToken string
		expectedError error
	}{
		{
			name: "Successful token generation",
			prepareMock: func(jwtService *auth.MockJWTServiceInterface) {
				jwtService.EXPECT().GenerateJWT("user-1", domain.RoleMember, gomock.Any()).Return("generated-token", nil)
			},
			expectedToken: "generated-token",
		},
		{
			name: "Error generating token",
			prepareMock: func(jwtService *auth.MockJWTServiceInterface) {
				jwtService.EXPECT().GenerateJWT("user-1", domain.RoleMember, gomock.Any()).Return("", errors.New("can't generate token"))
			},
			expectedError: errors.New("can't generate token"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, _, _, jwtService := NewMock(t)
			tt.prepareMock(jwtService)

			token, err := service.GenerateToken("user-1", domain.RoleMember)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedToken, token)
			}
		})
	}
}
