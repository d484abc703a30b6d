package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/espacios/espacios-api/internal/domain"
	"github.com/espacios/espacios-api/internal/platform/logger"
	"github.com/espacios/espacios-api/internal/store"
	"github.com/google/uuid"
)

// ReviewService aggregates the review flows presentation calls directly:
// leaving a review and reading a user's reviews and average rating.
type ReviewService interface {
	// CreateReview persists a new review with a fresh id and the current
	// time, then folds the rating into the reviewed user's running rating.
	CreateReview(ctx context.Context, reviewerID, reviewedUserID uuid.UUID, rating float64, comment string) (*domain.Review, error)

	// GetReviewsForUser returns all reviews left about the given user.
	GetReviewsForUser(ctx context.Context, userID uuid.UUID) ([]*domain.Review, error)

	// GetAverageRating returns the arithmetic mean of the ratings left
	// about the given user, or 0 when there are none.
	GetAverageRating(ctx context.Context, userID uuid.UUID) (float64, error)
}

// reviewServiceImpl implements the ReviewService interface.
type reviewServiceImpl struct {
	reviews store.ReviewStore
	users   store.UserStore
	logger  *slog.Logger
}

// NewReviewService creates a new ReviewService.
// It returns an error if any of the required dependencies are nil.
func NewReviewService(reviews store.ReviewStore, users store.UserStore, log *slog.Logger) (ReviewService, error) {
	if reviews == nil {
		return nil, fmt.Errorf("review store cannot be nil")
	}
	if users == nil {
		return nil, fmt.Errorf("user store cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &reviewServiceImpl{
		reviews: reviews,
		users:   users,
		logger:  log.With(slog.String("component", "review_service")),
	}, nil
}

// CreateReview implements ReviewService.CreateReview.
//
// The rating fold uses the entity's (old+new)/2 update, so the reviewed
// user's stored rating drifts from the arithmetic mean GetAverageRating
// computes. A reviewed user that no longer exists does not fail the review
// itself; the fold is skipped with a warning.
func (s *reviewServiceImpl) CreateReview(ctx context.Context, reviewerID, reviewedUserID uuid.UUID, rating float64, comment string) (*domain.Review, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	review, err := domain.NewReview(reviewerID, reviewedUserID, rating, comment)
	if err != nil {
		return nil, err
	}

	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, reviewedUserID)
	if err != nil {
		log.Warn("review saved but reviewed user not found, skipping rating fold",
			slog.String("review_id", review.ID.String()),
			slog.String("reviewed_user_id", reviewedUserID.String()),
			slog.String("error", err.Error()))
		return review, nil
	}
	user.UpdateRating(rating)
	if err := s.users.Update(ctx, user); err != nil {
		log.Warn("review saved but rating fold failed",
			slog.String("review_id", review.ID.String()),
			slog.String("reviewed_user_id", reviewedUserID.String()),
			slog.String("error", err.Error()))
		return review, nil
	}

	log.Info("review created",
		slog.String("review_id", review.ID.String()),
		slog.String("reviewed_user_id", reviewedUserID.String()),
		slog.Float64("rating", rating))
	return review, nil
}

// GetReviewsForUser implements ReviewService.GetReviewsForUser.
func (s *reviewServiceImpl) GetReviewsForUser(ctx context.Context, userID uuid.UUID) ([]*domain.Review, error) {
	all, err := s.reviews.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]*domain.Review, 0, len(all))
	for _, review := range all {
		if review.ReviewedUserID == userID {
			matched = append(matched, review)
		}
	}
	return matched, nil
}

// GetAverageRating implements ReviewService.GetAverageRating.
func (s *reviewServiceImpl) GetAverageRating(ctx context.Context, userID uuid.UUID) (float64, error) {
	reviews, err := s.GetReviewsForUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	if len(reviews) == 0 {
		return 0, nil
	}

	var sum float64
	for _, review := range reviews {
		sum += review.Rating
	}
	return sum / float64(len(reviews)), nil
}
