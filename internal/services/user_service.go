// internal/services/user_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/digibay/digibay-backend/internal/apperrors"
	"github.com/digibay/digibay-backend/internal/authz"
	"github.com/digibay/digibay-backend/internal/models"
	"github.com/digibay/digibay-backend/internal/utils"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

type UpdateProfileRequest struct {
	Name     string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
	Avatar   string `json:"avatar,omitempty"`
	Password string `json:"password,omitempty" validate:"omitempty,min=6"`
}

func (s *UserService) UpdateProfile(userID uuid.UUID, req *UpdateProfileRequest) (*models.User, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.Validationf("%s", utils.ValidationMessages(err))
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf("user %s not found", userID)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	// Role is deliberately not updatable here.
	updates := make(map[string]interface{})
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Email != "" {
		updates["email"] = req.Email
	}
	if req.Avatar != "" {
		updates["avatar"] = req.Avatar
	}
	if req.Password != "" {
		if err := user.SetPassword(req.Password); err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		updates["password_hash"] = user.PasswordHash
	}

	if len(updates) > 0 {
		if err := s.db.Model(&user).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update profile: %w", err)
		}
	}

	s.db.First(&user, user.ID)

	return &user, nil
}

func (s *UserService) ListUsers(caller authz.Caller) ([]models.User, error) {
	if err := authz.Authorize(authz.ActionUserManage, caller, uuid.Nil); err != nil {
		return nil, err
	}

	var users []models.User
	if err := s.db.Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}

	return users, nil
}

func (s *UserService) GetUser(id uuid.UUID, caller authz.Caller) (*models.User, error) {
	if err := authz.Authorize(authz.ActionUserManage, caller, uuid.Nil); err != nil {
		return nil, err
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf("user %s not found", id)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	return &user, nil
}

func (s *UserService) DeleteUser(id uuid.UUID, caller authz.Caller) error {
	if err := authz.Authorize(authz.ActionUserManage, caller, uuid.Nil); err != nil {
		return err
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFoundf("user %s not found", id)
		}
		return fmt.Errorf("database error: %w", err)
	}

	if user.IsAdmin() {
		return apperrors.Forbiddenf("admin accounts cannot be deleted")
	}

	if err := s.db.Delete(&user).Error; err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	return nil
}
