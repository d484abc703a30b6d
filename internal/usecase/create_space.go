package usecase

import (
	"context"
	"log/slog"

	"github.com/espacios/espacios-api/internal/domain"
	"github.com/espacios/espacios-api/internal/platform/logger"
	"github.com/espacios/espacios-api/internal/store"
	"github.com/google/uuid"
)

// CreateSpaceInput is the DTO for publishing a space. Price is the numeric
// amount; an empty Currency falls back to the domain default.
type CreateSpaceInput struct {
	OwnerID     uuid.UUID
	Title       string
	Description string
	Type        domain.SpaceType
	City        string
	Address     string
	Price       float64
	Currency    string
	Images      []string
}

// CreateSpace publishes a new rentable space for an owner.
type CreateSpace struct {
	spaces store.SpaceStore
	logger *slog.Logger
}

// NewCreateSpace creates the CreateSpace use case.
func NewCreateSpace(spaces store.SpaceStore, log *slog.Logger) *CreateSpace {
	if spaces == nil {
		panic("space store cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &CreateSpace{
		spaces: spaces,
		logger: log.With(slog.String("component", "create_space")),
	}
}

// Execute validates the input through value-object construction, builds a
// Space with a fresh id and default availability, and persists it.
func (uc *CreateSpace) Execute(ctx context.Context, input CreateSpaceInput) (*domain.Space, error) {
	log := logger.FromContextOrDefault(ctx, uc.logger)

	price, err := domain.NewPrice(input.Price, input.Currency)
	if err != nil {
		return nil, err
	}
	location := domain.NewLocation(input.City, input.Address)

	space, err := domain.NewSpace(
		input.OwnerID,
		input.Title,
		input.Description,
		input.Type,
		location,
		price,
		input.Images,
	)
	if err != nil {
		return nil, err
	}

	if err := uc.spaces.Create(ctx, space); err != nil {
		return nil, err
	}

	log.Info("space published",
		slog.String("space_id", space.ID.String()),
		slog.String("owner_id", space.OwnerID.String()))
	return space, nil
}
