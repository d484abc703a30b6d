package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/espacios/espacios-api/internal/domain"
	"github.com/espacios/espacios-api/internal/platform/logger"
	"github.com/espacios/espacios-api/internal/store"
)

// LoginUser authenticates a user by email and password.
type LoginUser struct {
	users  store.UserStore
	logger *slog.Logger
}

// NewLoginUser creates the LoginUser use case.
func NewLoginUser(users store.UserStore, log *slog.Logger) *LoginUser {
	if users == nil {
		panic("user store cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &LoginUser{
		users:  users,
		logger: log.With(slog.String("component", "login_user")),
	}
}

// Execute looks the user up by email and verifies the password against the
// stored credential. Unknown emails and mismatched passwords both return
// ErrInvalidCredentials so callers cannot probe which emails are registered.
func (uc *LoginUser) Execute(ctx context.Context, email, password string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, uc.logger)

	user, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Warn("login rejected, unknown email")
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.Credential.Verify(password) {
		log.Warn("login rejected, password mismatch",
			slog.String("user_id", user.ID.String()))
		return nil, ErrInvalidCredentials
	}

	log.Info("user logged in", slog.String("user_id", user.ID.String()))
	return user, nil
}
