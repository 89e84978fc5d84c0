package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/marinaclub/boatshare/internal/domain"
	authservice "github.com/marinaclub/boatshare/internal/service/authservice"
	"github.com/marinaclub/boatshare/pkg/utils"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func TestRegisterHandler(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		prepareMock   func(service *MockService)
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful registration",
			body: `{"email":"new@club.org","name":"New Member","password":"password123","boat_id":"boat-1"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Register(gomock.Any(), "new@club.org", "New Member", "password123", "boat-1").
					Return(&domain.User{ID: "user-1", Role: domain.RoleMember}, nil)
				service.EXPECT().GenerateToken("user-1", domain.RoleMember).Return("some-jwt-token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Email already taken",
			body: `{"email":"taken@club.org","name":"New Member","password":"password123","boat_id":"boat-1"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Register(gomock.Any(), "taken@club.org", "New Member", "password123", "boat-1").
					Return(nil, authservice.ErrEmailTaken)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "email already taken",
		},
		{
			name: "Boat is full",
			body: `{"email":"new@club.org","name":"New Member","password":"password123","boat_id":"boat-1"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Register(gomock.Any(), "new@club.org", "New Member", "password123", "boat-1").
					Return(nil, authservice.ErrBoatFull)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "boat has no remaining seats",
		},
		{
			name: "Unknown boat",
			body: `{"email":"new@club.org","name":"New Member","password":"password123","boat_id":"missing"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Register(gomock.Any(), "new@club.org", "New Member", "password123", "missing").
					Return(nil, authservice.ErrBoatNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "boat not found",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func(service *MockService) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			req := httptest.NewRequest("POST", "/api/auth/register", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Register(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			} else {
				assert.Equal(t, "Bearer some-jwt-token", rr.Header().Get("Authorization"))
			}
		})
	}
}

func TestLoginHandler(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		prepareMock   func(service *MockService)
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful login",
			body: `{"email":"member@club.org","password":"password123"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Authenticate(gomock.Any(), "member@club.org", "password123").
					Return(&domain.User{ID: "user-1", Role: domain.RoleMember}, nil)
				service.EXPECT().GenerateToken("user-1", domain.RoleMember).Return("some-jwt-token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Invalid credentials",
			body: `{"email":"member@club.org","password":"wrongpassword"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Authenticate(gomock.Any(), "member@club.org", "wrongpassword").
					Return(nil, authservice.ErrInvalidCredentials)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Invalid credentials",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func(service *MockService) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Login(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}
