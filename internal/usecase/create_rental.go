package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/espacios/espacios-api/internal/domain"
	"github.com/espacios/espacios-api/internal/platform/logger"
	"github.com/espacios/espacios-api/internal/store"
	"github.com/google/uuid"
)

// CreateRentalInput is the DTO for booking a space.
type CreateRentalInput struct {
	SpaceID  uuid.UUID
	RenterID uuid.UUID
	OwnerID  uuid.UUID
	Start    time.Time
	End      time.Time
}

// CreateRental books a space for a date range.
type CreateRental struct {
	rentals store.RentalStore

	// flatDailyRate is the PLACEHOLDER booking rate: total cost is the
	// duration in days times this flat rate, ignoring the space's actual
	// price. Real pricing pending per-space integration.
	flatDailyRate float64

	logger *slog.Logger
}

// NewCreateRental creates the CreateRental use case with the configured
// placeholder daily rate.
func NewCreateRental(rentals store.RentalStore, flatDailyRate float64, log *slog.Logger) *CreateRental {
	if rentals == nil {
		panic("rental store cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &CreateRental{
		rentals:       rentals,
		flatDailyRate: flatDailyRate,
		logger:        log.With(slog.String("component", "create_rental")),
	}
}

// Execute builds the requested date range (propagating ErrInvalidDateRange),
// computes the placeholder total cost, and persists the rental with a fresh
// id. Rentals are immutable once created; no core flow updates them.
func (uc *CreateRental) Execute(ctx context.Context, input CreateRentalInput) (*domain.Rental, error) {
	log := logger.FromContextOrDefault(ctx, uc.logger)

	dateRange, err := domain.NewDateRange(input.Start, input.End)
	if err != nil {
		return nil, err
	}

	totalCost := dateRange.Days() * uc.flatDailyRate

	rental, err := domain.NewRental(input.SpaceID, input.RenterID, input.OwnerID, dateRange, totalCost)
	if err != nil {
		return nil, err
	}

	if err := uc.rentals.Create(ctx, rental); err != nil {
		return nil, err
	}

	log.Info("rental booked",
		slog.String("rental_id", rental.ID.String()),
		slog.String("space_id", rental.SpaceID.String()),
		slog.Float64("total_cost", rental.TotalCost))
	return rental, nil
}
