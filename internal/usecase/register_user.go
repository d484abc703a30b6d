package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/espacios/espacios-api/internal/domain"
	"github.com/espacios/espacios-api/internal/platform/logger"
	"github.com/espacios/espacios-api/internal/store"
)

// RegisterUserInput is the DTO for user registration. The password travels
// out of band so it never ends up serialized alongside the profile data.
type RegisterUserInput struct {
	Name  string
	Email string
	Role  domain.Role
}

// RegisterUser registers a new user, enforcing email uniqueness.
type RegisterUser struct {
	users  store.UserStore
	logger *slog.Logger
}

// NewRegisterUser creates the RegisterUser use case.
func NewRegisterUser(users store.UserStore, log *slog.Logger) *RegisterUser {
	if users == nil {
		panic("user store cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &RegisterUser{
		users:  users,
		logger: log.With(slog.String("component", "register_user")),
	}
}

// Execute registers a user with a fresh id and persists it.
// Returns store.ErrEmailExists when the email is already registered; email
// is the natural key and uniqueness is enforced here, not in the store.
func (uc *RegisterUser) Execute(ctx context.Context, input RegisterUserInput, password string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, uc.logger)

	_, err := uc.users.GetByEmail(ctx, input.Email)
	switch {
	case err == nil:
		log.Warn("registration rejected, email already in use",
			slog.String("email", input.Email))
		return nil, store.ErrEmailExists
	case !errors.Is(err, store.ErrUserNotFound):
		return nil, err
	}

	user, err := domain.NewUser(input.Name, input.Email, password, input.Role)
	if err != nil {
		return nil, err
	}

	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}

	log.Info("user registered",
		slog.String("user_id", user.ID.String()),
		slog.String("role", string(user.Role)))
	return user, nil
}
