package userservice

import (
	"context"
	"testing"

	"github.com/marinaclub/boatshare/internal/domain"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockUserRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockUserRepo(ctrl)
	service := New(repo)
	return service, repo
}

func TestGetUser(t *testing.T) {
	service, repo := NewMock(t)

	repo.EXPECT().FindByID(gomock.Any(), "user-1").Return(&domain.User{ID: "user-1"}, nil)
	user, err := service.GetUser(context.Background(), "user-1")
	assert.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)

	repo.EXPECT().FindByID(gomock.Any(), "missing").Return(nil, nil)
	_, err = service.GetUser(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListUsers(t *testing.T) {
	service, repo := NewMock(t)

	repo.EXPECT().List(gomock.Any()).Return([]domain.User{{ID: "user-1"}, {ID: "user-2"}}, nil)
	users, err := service.ListUsers(context.Background())
	assert.NoError(t, err)
	assert.Len(t, users, 2)
}
