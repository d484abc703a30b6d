package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/espacios/espacios-api/internal/domain"
	"github.com/espacios/espacios-api/internal/store"
	"github.com/espacios/espacios-api/internal/usecase"
	"github.com/google/uuid"
)

// UserService is the thin aggregation over the user repository that
// presentation uses for user flows. Register and Login front the
// corresponding use cases; the rest are direct repository reads and writes.
type UserService interface {
	// Register registers a new user. Returns store.ErrEmailExists when the
	// email is already taken.
	Register(ctx context.Context, input usecase.RegisterUserInput, password string) (*domain.User, error)

	// Login authenticates by email and password. Returns
	// usecase.ErrInvalidCredentials on failure.
	Login(ctx context.Context, email, password string) (*domain.User, error)

	// GetByID retrieves a user by id. Returns store.ErrUserNotFound when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// UpdateRating folds a new rating into the user's running rating via
	// the entity's (old+new)/2 update and persists the result.
	UpdateRating(ctx context.Context, userID uuid.UUID, rating float64) (*domain.User, error)
}

// userServiceImpl implements the UserService interface.
type userServiceImpl struct {
	users    store.UserStore
	register *usecase.RegisterUser
	login    *usecase.LoginUser
	logger   *slog.Logger
}

// NewUserService creates a new UserService.
// It returns an error if any of the required dependencies are nil.
func NewUserService(users store.UserStore, log *slog.Logger) (UserService, error) {
	if users == nil {
		return nil, fmt.Errorf("user store cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &userServiceImpl{
		users:    users,
		register: usecase.NewRegisterUser(users, log),
		login:    usecase.NewLoginUser(users, log),
		logger:   log.With(slog.String("component", "user_service")),
	}, nil
}

// Register implements UserService.Register.
func (s *userServiceImpl) Register(ctx context.Context, input usecase.RegisterUserInput, password string) (*domain.User, error) {
	return s.register.Execute(ctx, input, password)
}

// Login implements UserService.Login.
func (s *userServiceImpl) Login(ctx context.Context, email, password string) (*domain.User, error) {
	return s.login.Execute(ctx, email, password)
}

// GetByID implements UserService.GetByID.
func (s *userServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

// UpdateRating implements UserService.UpdateRating.
func (s *userServiceImpl) UpdateRating(ctx context.Context, userID uuid.UUID, rating float64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.UpdateRating(rating)
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user rating updated",
		slog.String("user_id", userID.String()),
		slog.Float64("rating", user.Rating))
	return user, nil
}
