package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"

	"devjobs_backend/internal/auth"
	"devjobs_backend/internal/email"
	"devjobs_backend/internal/logger"
	"devjobs_backend/internal/models"
	"devjobs_backend/internal/repositories"
	"devjobs_backend/internal/services/dto"
	"devjobs_backend/internal/sessions"
	"devjobs_backend/pkg/apperrors"
)

const resetTokenTTL = time.Hour

type AuthService interface {
	Register(req *dto.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *dto.LoginRequest) (string, *models.User, error)
	Logout(ctx context.Context, token string) error
	RequestPasswordReset(email string) error
	ResetPassword(token, newPassword string) error
}

type AuthServiceImpl struct {
	userRepo      repositories.UserRepository
	authenticator *sessions.Authenticator
	emailSender   email.Sender
}

func NewAuthService(
	userRepo repositories.UserRepository,
	authenticator *sessions.Authenticator,
	emailSender email.Sender,
) AuthService {
	return &AuthServiceImpl{
		userRepo:      userRepo,
		authenticator: authenticator,
		emailSender:   emailSender,
	}
}

// Register hashes the password and persists the account. The uniqueness
// violation comes back from the store and is translated here, not in a
// persistence hook.
func (s *AuthServiceImpl) Register(req *dto.RegisterRequest) (*models.User, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        repositories.NormalizeEmail(req.Email),
		Name:         req.Name,
		PasswordHash: hash,
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	return user, nil
}

// Login authenticates the credentials and opens a session, returning the
// cookie token. The NoSuchUser / WrongPassword distinction is logged but
// collapsed into one user-facing error.
func (s *AuthServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (string, *models.User, error) {
	user, err := s.authenticator.Authenticate(req.Email, req.Password)
	if err != nil {
		switch {
		case apperrors.Is(err, sessions.ErrNoSuchUser):
			logger.CtxWarn(ctx, "login failed: unknown email", "email", req.Email)
			return "", nil, apperrors.ErrInvalidCredentials
		case apperrors.Is(err, sessions.ErrWrongPassword):
			logger.CtxWarn(ctx, "login failed: wrong password", "email", req.Email)
			return "", nil, apperrors.ErrInvalidCredentials
		default:
			return "", nil, apperrors.InternalError(err)
		}
	}

	token, err := s.authenticator.Serialize(ctx, user)
	if err != nil {
		return "", nil, apperrors.InternalError(err)
	}

	return token, user, nil
}

func (s *AuthServiceImpl) Logout(ctx context.Context, token string) error {
	if err := s.authenticator.Destroy(ctx, token); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// RequestPasswordReset stores a fresh one-hour token on the account and
// mails the reset link.
func (s *AuthServiceImpl) RequestPasswordReset(emailAddr string) error {
	user, err := s.userRepo.FindByEmail(emailAddr)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrAccountNotFound
		}
		return apperrors.InternalError(err)
	}

	exp := time.Now().Add(resetTokenTTL)
	user.ResetToken = generateRandomToken()
	user.ResetTokenExp = &exp

	if err := s.userRepo.Update(user); err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.emailSender.SendPasswordReset(user.Email, user.ResetToken); err != nil {
		return apperrors.InternalError(err)
	}

	return nil
}

// ResetPassword validates the token and its expiry, re-hashes the new
// password and clears the token.
func (s *AuthServiceImpl) ResetPassword(token, newPassword string) error {
	user, err := s.userRepo.FindByResetToken(token)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrResetTokenInvalid
		}
		return apperrors.InternalError(err)
	}

	if user.ResetTokenExp == nil || time.Now().After(*user.ResetTokenExp) {
		return apperrors.ErrResetTokenExpired
	}

	if err := auth.ValidatePassword(newPassword); err != nil {
		return apperrors.NewBadRequestError(err.Error())
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	user.PasswordHash = hash
	user.ResetToken = ""
	user.ResetTokenExp = nil

	if err := s.userRepo.Update(user); err != nil {
		return apperrors.InternalError(err)
	}

	return nil
}

func generateRandomToken() string {
	bytes := make([]byte, 20)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}
