package kvstore

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/espacios/espacios-api/internal/domain"
	"github.com/espacios/espacios-api/internal/platform/kv"
	"github.com/espacios/espacios-api/internal/platform/logger"
	"github.com/espacios/espacios-api/internal/store"
	"github.com/google/uuid"
)

// userRecord is the persisted shape of a User. The credential is flattened
// to its bcrypt hash; the plaintext password is never stored.
type userRecord struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	PasswordHash string  `json:"password_hash,omitempty"`
	Role         string  `json:"role"`
	Rating       float64 `json:"rating"`
}

// UserStore implements store.UserStore over the key-value port.
type UserStore struct {
	kv     kv.Store
	policy DecodePolicy
	logger *slog.Logger
}

// NewUserStore creates a key-value backed implementation of store.UserStore.
// If logger is nil, a default logger will be used.
func NewUserStore(kvs kv.Store, policy DecodePolicy, logger *slog.Logger) *UserStore {
	if kvs == nil {
		panic("kv store cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &UserStore{
		kv:     kvs,
		policy: policy,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

// Ensure UserStore implements store.UserStore interface
var _ store.UserStore = (*UserStore)(nil)

func encodeUser(user *domain.User) userRecord {
	return userRecord{
		ID:           user.ID.String(),
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: user.Credential.Hash(),
		Role:         string(user.Role),
		Rating:       user.Rating,
	}
}

// decodeUser reconstructs a User from its raw record. An unparsable id is a
// record-level failure; everything else falls back to zero values.
func decodeUser(raw json.RawMessage) (*domain.User, error) {
	var rec userRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("malformed user record: %w", err)
	}
	id, err := uuid.Parse(rec.ID)
	if err != nil {
		return nil, fmt.Errorf("user record has invalid id %q: %w", rec.ID, err)
	}
	return &domain.User{
		ID:         id,
		Name:       rec.Name,
		Email:      rec.Email,
		Credential: domain.CredentialFromHash(rec.PasswordHash),
		Role:       domain.Role(rec.Role),
		Rating:     rec.Rating,
	}, nil
}

// GetAll implements store.UserStore.GetAll.
func (s *UserStore) GetAll(ctx context.Context) ([]*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	records, err := readRaw(ctx, s.kv, usersKey)
	if err != nil {
		return nil, err
	}

	users := make([]*domain.User, 0, len(records))
	for _, raw := range records {
		user, err := decodeUser(raw)
		if err != nil {
			if s.policy == PolicyFail {
				return nil, fmt.Errorf("%w: %v", store.ErrDecodeFailed, err)
			}
			log.Warn("dropping malformed user record", slog.String("error", err.Error()))
			continue
		}
		users = append(users, user)
	}
	return users, nil
}

// GetByID implements store.UserStore.GetByID.
func (s *UserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	users, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, user := range users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, store.ErrUserNotFound
}

// GetByEmail implements store.UserStore.GetByEmail.
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	users, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, user := range users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, store.ErrUserNotFound
}

// Create implements store.UserStore.Create.
func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := user.Validate(); err != nil {
		log.Warn("user validation failed during create",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return err
	}

	if err := appendRecord(ctx, s.kv, usersKey, encodeUser(user)); err != nil {
		log.Error("failed to create user",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return store.NewStoreError("user", "create", "failed to persist record", err)
	}

	log.Info("user created successfully",
		slog.String("user_id", user.ID.String()),
		slog.String("role", string(user.Role)))
	return nil
}

// Update implements store.UserStore.Update.
func (s *UserStore) Update(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := user.Validate(); err != nil {
		log.Warn("user validation failed during update",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return err
	}

	return replaceByID(ctx, s.kv, usersKey, user.ID.String(), encodeUser(user))
}

// Delete implements store.UserStore.Delete.
func (s *UserStore) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, s.kv, usersKey, id.String())
}
