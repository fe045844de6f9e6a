// internal/services/user_service_test.go
package services

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/digibay/digibay-backend/internal/apperrors"
	"github.com/digibay/digibay-backend/internal/models"
)

type UserServiceTestSuite struct {
	suite.Suite
	db    *gorm.DB
	svc   *UserService
	user  *models.User
	admin *models.User
}

func (s *UserServiceTestSuite) SetupTest() {
	s.db = newTestDB(s.T())
	s.svc = NewUserService(s.db)
	s.user = createTestUser(s.T(), s.db, "sam", models.UserRoleUser)
	s.admin = createTestUser(s.T(), s.db, "admin", models.UserRoleAdmin)
}

func (s *UserServiceTestSuite) TestUpdateProfile() {
	updated, err := s.svc.UpdateProfile(s.user.ID, &UpdateProfileRequest{
		Name:   "Samuel",
		Avatar: "/uploads/avatar.png",
	})
	s.NoError(err)
	s.Equal("Samuel", updated.Name)
	s.Equal("/uploads/avatar.png", updated.Avatar)
	// Role stays as-is.
	s.Equal(models.UserRoleUser, updated.Role)
}

func (s *UserServiceTestSuite) TestUpdateProfilePassword() {
	_, err := s.svc.UpdateProfile(s.user.ID, &UpdateProfileRequest{Password: "newsecret"})
	s.NoError(err)

	var user models.User
	s.NoError(s.db.First(&user, "id = ?", s.user.ID).Error)
	s.NoError(user.CheckPassword("newsecret"))
}

func (s *UserServiceTestSuite) TestListUsersAdminOnly() {
	_, err := s.svc.ListUsers(asCaller(s.user))
	s.True(errors.Is(err, apperrors.ErrForbidden))

	users, err := s.svc.ListUsers(asCaller(s.admin))
	s.NoError(err)
	s.Len(users, 2)
}

func (s *UserServiceTestSuite) TestGetUserAdminOnly() {
	_, err := s.svc.GetUser(s.admin.ID, asCaller(s.user))
	s.True(errors.Is(err, apperrors.ErrForbidden))

	got, err := s.svc.GetUser(s.user.ID, asCaller(s.admin))
	s.NoError(err)
	s.Equal(s.user.Email, got.Email)
}

func (s *UserServiceTestSuite) TestDeleteUser() {
	s.True(errors.Is(s.svc.DeleteUser(s.user.ID, asCaller(s.user)), apperrors.ErrForbidden))

	s.NoError(s.svc.DeleteUser(s.user.ID, asCaller(s.admin)))

	_, err := s.svc.GetUser(s.user.ID, asCaller(s.admin))
	s.True(errors.Is(err, apperrors.ErrNotFound))
}

func (s *UserServiceTestSuite) TestDeleteAdminRefused() {
	err := s.svc.DeleteUser(s.admin.ID, asCaller(s.admin))
	s.True(errors.Is(err, apperrors.ErrForbidden))
}

func (s *UserServiceTestSuite) TestDeleteMissingReturnsNotFound() {
	err := s.svc.DeleteUser(uuid.New(), asCaller(s.admin))
	s.True(errors.Is(err, apperrors.ErrNotFound))
}

func TestUserServiceSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
