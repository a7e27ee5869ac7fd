package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/voltlab/device-hub/internal/config"
	"github.com/voltlab/device-hub/internal/domain"
	"github.com/voltlab/device-hub/internal/password"
	"github.com/voltlab/device-hub/internal/repository"
	"github.com/voltlab/device-hub/internal/token"
)

var (
	ErrDuplicateUser         = errors.New("user name already exists")
	ErrUserNotFound          = errors.New("user not found")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrInvalidToken          = errors.New("token is not valid")
	ErrInvalidOrExpiredToken = errors.New("token is not valid or expired")
	// ErrPersistence marks infrastructure faults from the user store, as
	// opposed to the expected validation failures above.
	ErrPersistence = errors.New("persistence failure")
)

// AuthService owns the login session lifecycle. It never touches the HTTP
// transport: handlers pass the inbound cookie token in and write the token
// it returns back out.
type AuthService struct {
	userRepo   repository.UserRepository
	tokens     *token.Codec
	sessionTTL time.Duration
}

func NewAuthService(userRepo repository.UserRepository, tokens *token.Codec, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		tokens:     tokens,
		sessionTTL: time.Duration(cfg.SessionTTLDays) * 24 * time.Hour,
	}
}

// Register creates a user with a hashed credential and no active session.
func (s *AuthService) Register(ctx context.Context, name, pass string, role domain.Role) error {
	exists, err := s.userRepo.Exists(ctx, name)
	if err != nil {
		return persistence(err)
	}
	if exists {
		return ErrDuplicateUser
	}

	hash, err := password.Hash(pass)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Name:         name,
		PasswordHash: hash,
		Role:         role,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return persistence(err)
	}
	return nil
}

// Login verifies the credential and issues a fresh session token, replacing
// any previous one. The returned token is what the caller must set as the
// session cookie.
func (s *AuthService) Login(ctx context.Context, name, pass string) (string, error) {
	user, err := s.userRepo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrUserNotFound
		}
		return "", persistence(err)
	}

	if !password.Verify(pass, user.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	newToken, err := s.tokens.Generate(token.PurposeAuth, user.ID)
	if err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}

	user.LastLoginDate = time.Now()
	user.SessionToken = &newToken

	if err := s.userRepo.Update(ctx, user); err != nil {
		return "", persistence(err)
	}
	return newToken, nil
}

// Logout invalidates the session the token belongs to. A missing, invalid
// or unowned token is a no-op success: logging out while logged out is fine.
func (s *AuthService) Logout(ctx context.Context, tokenString string) error {
	if !s.tokens.Validate(tokenString, token.PurposeAuth) {
		return nil
	}

	user, err := s.userRepo.GetByToken(ctx, tokenString)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return persistence(err)
	}

	user.SessionToken = nil
	if err := s.userRepo.Update(ctx, user); err != nil {
		return persistence(err)
	}
	return nil
}

// GetCurrentUser resolves the user the session token belongs to, enforcing
// the sliding expiry window anchored to the last login. An unowned token and
// an expired one report the same error on purpose.
func (s *AuthService) GetCurrentUser(ctx context.Context, tokenString string) (*domain.User, error) {
	if !s.tokens.Validate(tokenString, token.PurposeAuth) {
		return nil, ErrInvalidToken
	}

	user, err := s.userRepo.GetByToken(ctx, tokenString)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidOrExpiredToken
		}
		return nil, persistence(err)
	}

	// The token names the account it was issued for; a stored token on a
	// different account is not a session.
	subject, ok := s.tokens.Subject(tokenString, token.PurposeAuth)
	if !ok || subject != user.ID {
		return nil, ErrInvalidOrExpiredToken
	}

	if time.Since(user.LastLoginDate) > s.sessionTTL {
		return nil, ErrInvalidOrExpiredToken
	}
	return user, nil
}

// IsAuthenticated reports whether the token resolves to a live session.
func (s *AuthService) IsAuthenticated(ctx context.Context, tokenString string) bool {
	_, err := s.GetCurrentUser(ctx, tokenString)
	return err == nil
}

// DeleteCurrentUser removes the account the session token belongs to.
func (s *AuthService) DeleteCurrentUser(ctx context.Context, tokenString string) error {
	user, err := s.GetCurrentUser(ctx, tokenString)
	if err != nil {
		return err
	}

	if err := s.userRepo.Delete(ctx, user); err != nil {
		return persistence(err)
	}
	return nil
}

// UserExists probes for a user by name, case-insensitively.
func (s *AuthService) UserExists(ctx context.Context, name string) (bool, error) {
	exists, err := s.userRepo.Exists(ctx, name)
	if err != nil {
		return false, persistence(err)
	}
	return exists, nil
}

func persistence(err error) error {
	return fmt.Errorf("%w: %w", ErrPersistence, err)
}
