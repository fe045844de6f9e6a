// internal/services/auth_service_test.go
package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/digibay/digibay-backend/internal/apperrors"
	"github.com/digibay/digibay-backend/internal/config"
	"github.com/digibay/digibay-backend/internal/models"
)

type AuthServiceTestSuite struct {
	suite.Suite
	db  *gorm.DB
	svc *AuthService
}

func (s *AuthServiceTestSuite) SetupTest() {
	s.db = newTestDB(s.T())
	s.svc = NewAuthService(s.db, &config.Config{
		JWT: config.JWTConfig{
			SecretKey:      "test-secret",
			AccessTokenTTL: 1,
		},
	})
}

func (s *AuthServiceTestSuite) TestRegisterForcesUserRole() {
	resp, err := s.svc.Register(&RegisterRequest{
		Name:     "Sam",
		Email:    "sam@example.com",
		Password: "secret123",
	})
	s.NoError(err)
	s.Equal(models.UserRoleUser, resp.User.Role)
	s.NotEmpty(resp.Token)
	s.Equal("Bearer", resp.TokenType)
}

func (s *AuthServiceTestSuite) TestRegisterRejectsDuplicateEmail() {
	_, err := s.svc.Register(&RegisterRequest{Name: "Sam", Email: "sam@example.com", Password: "secret123"})
	s.NoError(err)

	_, err = s.svc.Register(&RegisterRequest{Name: "Other", Email: "sam@example.com", Password: "secret456"})
	s.True(errors.Is(err, apperrors.ErrValidation))
}

func (s *AuthServiceTestSuite) TestLogin() {
	_, err := s.svc.Register(&RegisterRequest{Name: "Sam", Email: "sam@example.com", Password: "secret123"})
	s.NoError(err)

	resp, err := s.svc.Login(&LoginRequest{Email: "sam@example.com", Password: "secret123"})
	s.NoError(err)
	s.NotEmpty(resp.Token)
}

func (s *AuthServiceTestSuite) TestLoginWrongPassword() {
	_, err := s.svc.Register(&RegisterRequest{Name: "Sam", Email: "sam@example.com", Password: "secret123"})
	s.NoError(err)

	_, err = s.svc.Login(&LoginRequest{Email: "sam@example.com", Password: "wrong"})
	s.True(errors.Is(err, apperrors.ErrUnauthenticated))
}

func (s *AuthServiceTestSuite) TestLoginUnknownEmail() {
	_, err := s.svc.Login(&LoginRequest{Email: "nobody@example.com", Password: "secret123"})
	s.True(errors.Is(err, apperrors.ErrUnauthenticated))
}

func TestAuthServiceSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
