package kvstore

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/espacios/espacios-api/internal/domain"
	"github.com/espacios/espacios-api/internal/platform/kv"
	"github.com/espacios/espacios-api/internal/platform/logger"
	"github.com/espacios/espacios-api/internal/store"
	"github.com/google/uuid"
)

// rentalRecord is the persisted shape of a Rental. The date range is
// flattened to a pair of RFC 3339 strings.
type rentalRecord struct {
	ID        string          `json:"id"`
	SpaceID   string          `json:"space_id"`
	RenterID  string          `json:"renter_id"`
	OwnerID   string          `json:"owner_id"`
	DateRange dateRangeRecord `json:"date_range"`
	TotalCost float64         `json:"total_cost"`
}

type dateRangeRecord struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// RentalStore implements store.RentalStore over the key-value port.
type RentalStore struct {
	kv     kv.Store
	policy DecodePolicy
	logger *slog.Logger
}

// NewRentalStore creates a key-value backed implementation of store.RentalStore.
// If logger is nil, a default logger will be used.
func NewRentalStore(kvs kv.Store, policy DecodePolicy, logger *slog.Logger) *RentalStore {
	if kvs == nil {
		panic("kv store cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &RentalStore{
		kv:     kvs,
		policy: policy,
		logger: logger.With(slog.String("component", "rental_store")),
	}
}

// Ensure RentalStore implements store.RentalStore interface
var _ store.RentalStore = (*RentalStore)(nil)

func encodeRental(rental *domain.Rental) rentalRecord {
	return rentalRecord{
		ID:       rental.ID.String(),
		SpaceID:  rental.SpaceID.String(),
		RenterID: rental.RenterID.String(),
		OwnerID:  rental.OwnerID.String(),
		DateRange: dateRangeRecord{
			Start: rental.DateRange.Start.Format(time.RFC3339),
			End:   rental.DateRange.End.Format(time.RFC3339),
		},
		TotalCost: rental.TotalCost,
	}
}

// decodeRental reconstructs a Rental from its raw record. A rental without a
// valid date range cannot be meaningfully defaulted, so unparsable or
// inverted dates are a record-level failure, as are unparsable ids. The owner
// id alone degrades to uuid.Nil since no core flow depends on it.
func decodeRental(raw json.RawMessage) (*domain.Rental, error) {
	var rec rentalRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("malformed rental record: %w", err)
	}
	id, err := uuid.Parse(rec.ID)
	if err != nil {
		return nil, fmt.Errorf("rental record has invalid id %q: %w", rec.ID, err)
	}
	spaceID, err := uuid.Parse(rec.SpaceID)
	if err != nil {
		return nil, fmt.Errorf("rental record %s has invalid space id %q: %w", rec.ID, rec.SpaceID, err)
	}
	renterID, err := uuid.Parse(rec.RenterID)
	if err != nil {
		return nil, fmt.Errorf("rental record %s has invalid renter id %q: %w", rec.ID, rec.RenterID, err)
	}
	ownerID, _ := uuid.Parse(rec.OwnerID)

	start, err := time.Parse(time.RFC3339, rec.DateRange.Start)
	if err != nil {
		return nil, fmt.Errorf("rental record %s has unparsable start date %q: %w", rec.ID, rec.DateRange.Start, err)
	}
	end, err := time.Parse(time.RFC3339, rec.DateRange.End)
	if err != nil {
		return nil, fmt.Errorf("rental record %s has unparsable end date %q: %w", rec.ID, rec.DateRange.End, err)
	}
	dateRange, err := domain.NewDateRange(start, end)
	if err != nil {
		return nil, fmt.Errorf("rental record %s: %w", rec.ID, err)
	}

	return &domain.Rental{
		ID:        id,
		SpaceID:   spaceID,
		RenterID:  renterID,
		OwnerID:   ownerID,
		DateRange: dateRange,
		TotalCost: rec.TotalCost,
	}, nil
}

// GetAll implements store.RentalStore.GetAll.
func (s *RentalStore) GetAll(ctx context.Context) ([]*domain.Rental, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	records, err := readRaw(ctx, s.kv, rentalsKey)
	if err != nil {
		return nil, err
	}

	rentals := make([]*domain.Rental, 0, len(records))
	for _, raw := range records {
		rental, err := decodeRental(raw)
		if err != nil {
			if s.policy == PolicyFail {
				return nil, fmt.Errorf("%w: %v", store.ErrDecodeFailed, err)
			}
			log.Warn("dropping malformed rental record", slog.String("error", err.Error()))
			continue
		}
		rentals = append(rentals, rental)
	}
	return rentals, nil
}

// GetByID implements store.RentalStore.GetByID.
func (s *RentalStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Rental, error) {
	rentals, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, rental := range rentals {
		if rental.ID == id {
			return rental, nil
		}
	}
	return nil, store.ErrRentalNotFound
}

// Create implements store.RentalStore.Create.
func (s *RentalStore) Create(ctx context.Context, rental *domain.Rental) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := rental.Validate(); err != nil {
		log.Warn("rental validation failed during create",
			slog.String("error", err.Error()),
			slog.String("rental_id", rental.ID.String()))
		return err
	}

	if err := appendRecord(ctx, s.kv, rentalsKey, encodeRental(rental)); err != nil {
		log.Error("failed to create rental",
			slog.String("error", err.Error()),
			slog.String("rental_id", rental.ID.String()))
		return store.NewStoreError("rental", "create", "failed to persist record", err)
	}

	log.Info("rental created successfully",
		slog.String("rental_id", rental.ID.String()),
		slog.String("space_id", rental.SpaceID.String()),
		slog.String("renter_id", rental.RenterID.String()))
	return nil
}

// Update implements store.RentalStore.Update.
func (s *RentalStore) Update(ctx context.Context, rental *domain.Rental) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := rental.Validate(); err != nil {
		log.Warn("rental validation failed during update",
			slog.String("error", err.Error()),
			slog.String("rental_id", rental.ID.String()))
		return err
	}

	return replaceByID(ctx, s.kv, rentalsKey, rental.ID.String(), encodeRental(rental))
}

// Delete implements store.RentalStore.Delete.
func (s *RentalStore) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, s.kv, rentalsKey, id.String())
}
