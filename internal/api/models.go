package api

import (
	"time"

	"github.com/espacios/espacios-api/internal/domain"
	"github.com/google/uuid"
)

// Request payloads

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role"     validate:"required,oneof=OWNER RENTER"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// CreateSpaceRequest defines the payload for publishing a space.
type CreateSpaceRequest struct {
	OwnerID     uuid.UUID `json:"owner_id"    validate:"required"`
	Title       string    `json:"title"       validate:"required"`
	Description string    `json:"description"`
	Type        string    `json:"type"        validate:"required"`
	City        string    `json:"city"`
	Address     string    `json:"address"`
	Price       float64   `json:"price"       validate:"gte=0"`
	Currency    string    `json:"currency"`
	Images      []string  `json:"images"      validate:"dive,url"`
}

// UpdateAvailabilityRequest toggles a space's availability flag.
type UpdateAvailabilityRequest struct {
	Available *bool `json:"available" validate:"required"`
}

// CreateRentalRequest defines the payload for booking a space.
type CreateRentalRequest struct {
	SpaceID   uuid.UUID `json:"space_id"   validate:"required"`
	RenterID  uuid.UUID `json:"renter_id"  validate:"required"`
	OwnerID   uuid.UUID `json:"owner_id"`
	StartDate time.Time `json:"start_date" validate:"required"`
	EndDate   time.Time `json:"end_date"   validate:"required"`
}

// CreateReviewRequest defines the payload for leaving a review.
type CreateReviewRequest struct {
	ReviewerID     uuid.UUID `json:"reviewer_id"      validate:"required"`
	ReviewedUserID uuid.UUID `json:"reviewed_user_id" validate:"required"`
	Rating         float64   `json:"rating"           validate:"required,gte=1,lte=5"`
	Comment        string    `json:"comment"`
}

// Response payloads

// UserResponse is the public shape of a user. The credential never leaves
// the domain layer.
type UserResponse struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
	Role   string    `json:"role"`
	Rating float64   `json:"rating"`
}

// NewUserResponse maps a domain User to its response shape.
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:     user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   string(user.Role),
		Rating: user.Rating,
	}
}

// PriceResponse carries both the raw price fields and the display string.
type PriceResponse struct {
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	Formatted string  `json:"formatted"`
}

// SpaceResponse is the public shape of a space.
type SpaceResponse struct {
	ID          uuid.UUID     `json:"id"`
	OwnerID     uuid.UUID     `json:"owner_id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Type        string        `json:"type"`
	City        string        `json:"city"`
	Address     string        `json:"address"`
	Price       PriceResponse `json:"price"`
	Available   bool          `json:"available"`
	Images      []string      `json:"images"`
}

// NewSpaceResponse maps a domain Space to its response shape.
func NewSpaceResponse(space *domain.Space) SpaceResponse {
	return SpaceResponse{
		ID:          space.ID,
		OwnerID:     space.OwnerID,
		Title:       space.Title,
		Description: space.Description,
		Type:        string(space.Type),
		City:        space.Location.City,
		Address:     space.Location.Address,
		Price: PriceResponse{
			Amount:    space.Price.Amount,
			Currency:  space.Price.Currency,
			Formatted: space.Price.Format(),
		},
		Available: space.Available,
		Images:    space.Images,
	}
}

// RentalResponse is the public shape of a rental.
type RentalResponse struct {
	ID        uuid.UUID `json:"id"`
	SpaceID   uuid.UUID `json:"space_id"`
	RenterID  uuid.UUID `json:"renter_id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Days      float64   `json:"days"`
	TotalCost float64   `json:"total_cost"`
}

// NewRentalResponse maps a domain Rental to its response shape.
func NewRentalResponse(rental *domain.Rental) RentalResponse {
	return RentalResponse{
		ID:        rental.ID,
		SpaceID:   rental.SpaceID,
		RenterID:  rental.RenterID,
		OwnerID:   rental.OwnerID,
		StartDate: rental.DateRange.Start,
		EndDate:   rental.DateRange.End,
		Days:      rental.DateRange.Days(),
		TotalCost: rental.TotalCost,
	}
}

// ReviewResponse is the public shape of a review.
type ReviewResponse struct {
	ID             uuid.UUID `json:"id"`
	ReviewerID     uuid.UUID `json:"reviewer_id"`
	ReviewedUserID uuid.UUID `json:"reviewed_user_id"`
	Rating         float64   `json:"rating"`
	Comment        string    `json:"comment"`
	Date           time.Time `json:"date"`
}

// NewReviewResponse maps a domain Review to its response shape.
func NewReviewResponse(review *domain.Review) ReviewResponse {
	return ReviewResponse{
		ID:             review.ID,
		ReviewerID:     review.ReviewerID,
		ReviewedUserID: review.ReviewedUserID,
		Rating:         review.Rating,
		Comment:        review.Comment,
		Date:           review.Date,
	}
}

// RatingResponse is the public shape of a user's average rating.
type RatingResponse struct {
	UserID        uuid.UUID `json:"user_id"`
	AverageRating float64   `json:"average_rating"`
}
