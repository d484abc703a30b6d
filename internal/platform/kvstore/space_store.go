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

// spaceRecord is the persisted shape of a Space, with nested value objects
// flattened to plain structures. Location and Price are kept raw so a
// malformed nested document degrades to a safe default instead of failing
// the whole record.
type spaceRecord struct {
	ID          string          `json:"id"`
	OwnerID     string          `json:"owner_id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Type        string          `json:"type"`
	Location    json.RawMessage `json:"location"`
	Price       json.RawMessage `json:"price"`
	Available   *bool           `json:"available"`
	Images      []string        `json:"images"`
}

type locationRecord struct {
	City    string `json:"city"`
	Address string `json:"address"`
}

type priceRecord struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// SpaceStore implements store.SpaceStore over the key-value port.
type SpaceStore struct {
	kv     kv.Store
	policy DecodePolicy
	logger *slog.Logger
}

// NewSpaceStore creates a key-value backed implementation of store.SpaceStore.
// If logger is nil, a default logger will be used.
func NewSpaceStore(kvs kv.Store, policy DecodePolicy, logger *slog.Logger) *SpaceStore {
	if kvs == nil {
		panic("kv store cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &SpaceStore{
		kv:     kvs,
		policy: policy,
		logger: logger.With(slog.String("component", "space_store")),
	}
}

// Ensure SpaceStore implements store.SpaceStore interface
var _ store.SpaceStore = (*SpaceStore)(nil)

func encodeSpace(space *domain.Space) spaceRecord {
	location, _ := json.Marshal(locationRecord{
		City:    space.Location.City,
		Address: space.Location.Address,
	})
	price, _ := json.Marshal(priceRecord{
		Amount:   space.Price.Amount,
		Currency: space.Price.Currency,
	})
	available := space.Available
	return spaceRecord{
		ID:          space.ID.String(),
		OwnerID:     space.OwnerID.String(),
		Title:       space.Title,
		Description: space.Description,
		Type:        string(space.Type),
		Location:    location,
		Price:       price,
		Available:   &available,
		Images:      space.Images,
	}
}

// decodeSpace reconstructs a Space from its raw record. Unparsable ids are
// record-level failures. A malformed location decodes to an empty Location,
// a malformed or negative price to a zero Price, and a missing availability
// flag to true.
func decodeSpace(raw json.RawMessage) (*domain.Space, error) {
	var rec spaceRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("malformed space record: %w", err)
	}
	id, err := uuid.Parse(rec.ID)
	if err != nil {
		return nil, fmt.Errorf("space record has invalid id %q: %w", rec.ID, err)
	}
	ownerID, err := uuid.Parse(rec.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("space record %s has invalid owner id %q: %w", rec.ID, rec.OwnerID, err)
	}

	var location domain.Location
	if len(rec.Location) > 0 {
		var loc locationRecord
		if err := json.Unmarshal(rec.Location, &loc); err == nil {
			location = domain.NewLocation(loc.City, loc.Address)
		}
	}

	var price domain.Price
	if len(rec.Price) > 0 {
		var pr priceRecord
		if err := json.Unmarshal(rec.Price, &pr); err == nil {
			if p, err := domain.NewPrice(pr.Amount, pr.Currency); err == nil {
				price = p
			}
		}
	}

	available := true
	if rec.Available != nil {
		available = *rec.Available
	}

	return &domain.Space{
		ID:          id,
		OwnerID:     ownerID,
		Title:       rec.Title,
		Description: rec.Description,
		Type:        domain.SpaceType(rec.Type),
		Location:    location,
		Price:       price,
		Available:   available,
		Images:      rec.Images,
	}, nil
}

// GetAll implements store.SpaceStore.GetAll.
func (s *SpaceStore) GetAll(ctx context.Context) ([]*domain.Space, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	records, err := readRaw(ctx, s.kv, spacesKey)
	if err != nil {
		return nil, err
	}

	spaces := make([]*domain.Space, 0, len(records))
	for _, raw := range records {
		space, err := decodeSpace(raw)
		if err != nil {
			if s.policy == PolicyFail {
				return nil, fmt.Errorf("%w: %v", store.ErrDecodeFailed, err)
			}
			log.Warn("dropping malformed space record", slog.String("error", err.Error()))
			continue
		}
		spaces = append(spaces, space)
	}
	return spaces, nil
}

// GetByID implements store.SpaceStore.GetByID.
func (s *SpaceStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Space, error) {
	spaces, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, space := range spaces {
		if space.ID == id {
			return space, nil
		}
	}
	return nil, store.ErrSpaceNotFound
}

// Create implements store.SpaceStore.Create.
func (s *SpaceStore) Create(ctx context.Context, space *domain.Space) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := space.Validate(); err != nil {
		log.Warn("space validation failed during create",
			slog.String("error", err.Error()),
			slog.String("space_id", space.ID.String()))
		return err
	}

	if err := appendRecord(ctx, s.kv, spacesKey, encodeSpace(space)); err != nil {
		log.Error("failed to create space",
			slog.String("error", err.Error()),
			slog.String("space_id", space.ID.String()))
		return store.NewStoreError("space", "create", "failed to persist record", err)
	}

	log.Info("space created successfully",
		slog.String("space_id", space.ID.String()),
		slog.String("owner_id", space.OwnerID.String()),
		slog.String("type", string(space.Type)))
	return nil
}

// Update implements store.SpaceStore.Update.
func (s *SpaceStore) Update(ctx context.Context, space *domain.Space) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := space.Validate(); err != nil {
		log.Warn("space validation failed during update",
			slog.String("error", err.Error()),
			slog.String("space_id", space.ID.String()))
		return err
	}

	return replaceByID(ctx, s.kv, spacesKey, space.ID.String(), encodeSpace(space))
}

// Delete implements store.SpaceStore.Delete.
func (s *SpaceStore) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, s.kv, spacesKey, id.String())
}
