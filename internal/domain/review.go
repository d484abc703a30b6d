package domain

import (
	"time"

	"github.com/google/uuid"
)

// Review represents a rating and comment left by one user about another,
// typically after a completed rental. The rating is expected to be 1-5 but
// is deliberately not range-checked here; presentation constrains the input.
type Review struct {
	ID             uuid.UUID `json:"id"`
	ReviewerID     uuid.UUID `json:"reviewer_id"`
	ReviewedUserID uuid.UUID `json:"reviewed_user_id"`
	Rating         float64   `json:"rating"`
	Comment        string    `json:"comment"`
	Date           time.Time `json:"date"`
}

// NewReview creates a Review with a fresh ID and the current time.
func NewReview(reviewerID, reviewedUserID uuid.UUID, rating float64, comment string) (*Review, error) {
	review := &Review{
		ID:             uuid.New(),
		ReviewerID:     reviewerID,
		ReviewedUserID: reviewedUserID,
		Rating:         rating,
		Comment:        comment,
		Date:           time.Now().UTC(),
	}
	if err := review.Validate(); err != nil {
		return nil, err
	}
	return review, nil
}

// Validate checks that the Review has valid data.
func (r *Review) Validate() error {
	if r.ID == uuid.Nil || r.ReviewerID == uuid.Nil || r.ReviewedUserID == uuid.Nil {
		return ErrInvalidID
	}
	return nil
}
