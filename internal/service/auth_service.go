package service

import (
	"context"
	"fmt"
	"log"

	"gorm.io/gorm"

	"portfolio/internal/auth"
	"portfolio/internal/errors"
	"portfolio/internal/model"
	"portfolio/internal/notify"
	"portfolio/internal/repository"
)

// AuthService handles admin authentication and the credential lifecycle.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*model.User, string, error)
	CurrentUser(ctx context.Context, email string) (*model.User, error)
	ChangePassword(ctx context.Context, email, currentPassword, newPassword string) error
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, email, code, newPassword string) error
}

type authService struct {
	users      repository.UserRepository
	jwtService *auth.JWTService
	resetCodes auth.ResetCodeStore
	notifier   notify.Notifier
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, jwtService *auth.JWTService, resetCodes auth.ResetCodeStore, notifier notify.Notifier) AuthService {
	return &authService{
		users:      users,
		jwtService: jwtService,
		resetCodes: resetCodes,
		notifier:   notifier,
	}
}

// Login verifies admin credentials and issues a session token. Unknown
// accounts, non-admin accounts and wrong passwords all yield the same
// error; only a present-but-unset password hash is reported distinctly.
func (s *authService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, "", errors.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("find user: %w", err)
	}

	if !user.IsAdmin {
		return nil, "", errors.ErrInvalidCredentials
	}
	if user.PasswordHash == nil {
		return nil, "", errors.ErrPasswordNotSet
	}
	if !auth.CheckPassword(password, *user.PasswordHash) {
		return nil, "", errors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Email, user.IsAdmin)
	if err != nil {
		return nil, "", fmt.Errorf("generate token: %w", err)
	}

	return user, token, nil
}

// CurrentUser resolves verified token claims back to a user row.
func (s *authService) CurrentUser(ctx context.Context, email string) (*model.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

// ChangePassword re-verifies the current password before replacing the
// stored hash. Possession of a token alone is not enough.
func (s *authService) ChangePassword(ctx context.Context, email, currentPassword, newPassword string) error {
	if len(newPassword) < auth.MinPasswordLen {
		return errors.ErrPasswordTooShort
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrAdminNotFound
		}
		return fmt.Errorf("find user: %w", err)
	}
	if !user.IsAdmin {
		return errors.ErrAdminNotFound
	}
	if user.PasswordHash == nil {
		return errors.ErrPasswordNotSet
	}
	if !auth.CheckPassword(currentPassword, *user.PasswordHash) {
		return errors.ErrCurrentPasswordWrong
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePassword(ctx, user.ID, hash); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

// RequestPasswordReset issues a reset code for the admin account and
// dispatches it via the notifier. The code is never returned to the HTTP
// caller. A notifier failure removes the code again so a later attempt
// starts clean.
func (s *authService) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrAdminNotFound
		}
		return fmt.Errorf("find user: %w", err)
	}
	if !user.IsAdmin {
		return errors.ErrAdminNotFound
	}

	code, err := s.resetCodes.Issue(ctx, email)
	if err != nil {
		return fmt.Errorf("issue reset code: %w", err)
	}

	if err := s.notifier.SendResetCode(ctx, email, code); err != nil {
		log.Printf("send reset code to %s: %v", email, err)
		_ = s.resetCodes.Delete(ctx, email)
		return errors.ErrResetCodeSendFailed
	}
	return nil
}

// ResetPassword consumes a reset code and replaces the stored hash. The
// code is consumed before the account check, so a failed downstream step
// requires requesting a new one.
func (s *authService) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	if len(newPassword) < auth.MinPasswordLen {
		return errors.ErrPasswordTooShort
	}

	ok, err := s.resetCodes.Verify(ctx, email, code)
	if err != nil {
		return fmt.Errorf("verify reset code: %w", err)
	}
	if !ok {
		return errors.ErrInvalidResetCode
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrAdminNotFound
		}
		return fmt.Errorf("find user: %w", err)
	}
	if !user.IsAdmin {
		return errors.ErrAdminNotFound
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePassword(ctx, user.ID, hash); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}
