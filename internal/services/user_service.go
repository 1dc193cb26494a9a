package services

import (
	"context"
	"errors"
	"path"

	"devjobs_backend/internal/auth"
	"devjobs_backend/internal/logger"
	"devjobs_backend/internal/models"
	"devjobs_backend/internal/repositories"
	"devjobs_backend/internal/services/dto"
	"devjobs_backend/internal/storage"
	"devjobs_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type UserService interface {
	GetByID(userID string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest, newImage string) (*models.User, error)
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
	storage  storage.Storage
}

func NewUserService(userRepo repositories.UserRepository, store storage.Storage) UserService {
	return &UserServiceImpl{
		userRepo: userRepo,
		storage:  store,
	}
}

func (s *UserServiceImpl) GetByID(userID string) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

// UpdateProfile overwrites name and email, re-hashes the password only when
// a new plaintext was supplied, and swaps the image only when the gatekeeper
// accepted a new one. Leaving the password empty keeps the stored hash.
func (s *UserServiceImpl) UpdateProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest, newImage string) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	user.Name = req.Name
	user.Email = repositories.NormalizeEmail(req.Email)

	if req.Password != "" {
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		user.PasswordHash = hash
	}

	if newImage != "" {
		if user.Image != "" && user.Image != newImage {
			// Replaced images are orphans; reclaim the disk space.
			old := path.Join(PurposeProfileImage.Dir, user.Image)
			if err := s.storage.Delete(ctx, old); err != nil {
				logger.CtxWarn(ctx, "failed to delete previous profile image", "file", old, "error", err)
			}
		}
		user.Image = newImage
	}

	if err := s.userRepo.Update(user); err != nil {
		// Changing the email can collide with another account.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	return user, nil
}
