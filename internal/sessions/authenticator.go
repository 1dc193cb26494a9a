package sessions

import (
	"context"
	"errors"
	"time"

	"devjobs_backend/internal/auth"
	"devjobs_backend/internal/models"
	"devjobs_backend/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrNoSuchUser    = errors.New("no such user")
	ErrWrongPassword = errors.New("wrong password")
)

// Authenticator maps credentials to a user and a user to an opaque session
// token. It holds an explicit reference to its backing store; there is no
// process-wide session state.
type Authenticator struct {
	users repositories.UserRepository
	store Store
	ttl   time.Duration
}

func NewAuthenticator(users repositories.UserRepository, store Store, ttl time.Duration) *Authenticator {
	return &Authenticator{
		users: users,
		store: store,
		ttl:   ttl,
	}
}

// Authenticate looks the user up by email and verifies the password.
// The two failure modes stay distinct so the login flow can log them apart;
// the user-facing message collapses them into one.
func (a *Authenticator) Authenticate(email, password string) (*models.User, error) {
	user, err := a.users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrNoSuchUser
		}
		return nil, err
	}

	if !auth.CheckPasswordHash(password, user.PasswordHash) {
		return nil, ErrWrongPassword
	}

	return user, nil
}

// Serialize opens a session for the user and returns the cookie token.
// The stored record is just the user's stable id.
func (a *Authenticator) Serialize(ctx context.Context, user *models.User) (string, error) {
	token := uuid.NewString()
	if err := a.store.Put(ctx, token, user.ID, a.ttl); err != nil {
		return "", err
	}
	return token, nil
}

// Deserialize resolves a cookie token back to a user. An unknown or expired
// token, or a session pointing at a deleted user, yields (nil, nil): the
// request proceeds as anonymous.
func (a *Authenticator) Deserialize(ctx context.Context, token string) (*models.User, error) {
	userID, err := a.store.Get(ctx, token)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil, nil
		}
		return nil, err
	}

	user, err := a.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return user, nil
}

// Destroy ends the session behind the token.
func (a *Authenticator) Destroy(ctx context.Context, token string) error {
	return a.store.Delete(ctx, token)
}

// TTL exposes the configured session lifetime for cookie Max-Age.
func (a *Authenticator) TTL() time.Duration {
	return a.ttl
}
