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

// reviewRecord is the persisted shape of a Review.
type reviewRecord struct {
	ID             string  `json:"id"`
	ReviewerID     string  `json:"reviewer_id"`
	ReviewedUserID string  `json:"reviewed_user_id"`
	Rating         float64 `json:"rating"`
	Comment        string  `json:"comment"`
	Date           string  `json:"date"`
}

// ReviewStore implements store.ReviewStore over the key-value port.
type ReviewStore struct {
	kv     kv.Store
	policy DecodePolicy
	logger *slog.Logger
}

// NewReviewStore creates a key-value backed implementation of store.ReviewStore.
// If logger is nil, a default logger will be used.
func NewReviewStore(kvs kv.Store, policy DecodePolicy, logger *slog.Logger) *ReviewStore {
	if kvs == nil {
		panic("kv store cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ReviewStore{
		kv:     kvs,
		policy: policy,
		logger: logger.With(slog.String("component", "review_store")),
	}
}

// Ensure ReviewStore implements store.ReviewStore interface
var _ store.ReviewStore = (*ReviewStore)(nil)

func encodeReview(review *domain.Review) reviewRecord {
	return reviewRecord{
		ID:             review.ID.String(),
		ReviewerID:     review.ReviewerID.String(),
		ReviewedUserID: review.ReviewedUserID.String(),
		Rating:         review.Rating,
		Comment:        review.Comment,
		Date:           review.Date.Format(time.RFC3339),
	}
}

// decodeReview reconstructs a Review from its raw record. Unparsable ids are
// record-level failures; an unparsable date falls back to the current time.
func decodeReview(raw json.RawMessage) (*domain.Review, error) {
	var rec reviewRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("malformed review record: %w", err)
	}
	id, err := uuid.Parse(rec.ID)
	if err != nil {
		return nil, fmt.Errorf("review record has invalid id %q: %w", rec.ID, err)
	}
	reviewerID, err := uuid.Parse(rec.ReviewerID)
	if err != nil {
		return nil, fmt.Errorf("review record %s has invalid reviewer id %q: %w", rec.ID, rec.ReviewerID, err)
	}
	reviewedID, err := uuid.Parse(rec.ReviewedUserID)
	if err != nil {
		return nil, fmt.Errorf("review record %s has invalid reviewed user id %q: %w", rec.ID, rec.ReviewedUserID, err)
	}

	date, err := time.Parse(time.RFC3339, rec.Date)
	if err != nil {
		date = time.Now().UTC()
	}

	return &domain.Review{
		ID:             id,
		ReviewerID:     reviewerID,
		ReviewedUserID: reviewedID,
		Rating:         rec.Rating,
		Comment:        rec.Comment,
		Date:           date,
	}, nil
}

// GetAll implements store.ReviewStore.GetAll.
func (s *ReviewStore) GetAll(ctx context.Context) ([]*domain.Review, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	records, err := readRaw(ctx, s.kv, reviewsKey)
	if err != nil {
		return nil, err
	}

	reviews := make([]*domain.Review, 0, len(records))
	for _, raw := range records {
		review, err := decodeReview(raw)
		if err != nil {
			if s.policy == PolicyFail {
				return nil, fmt.Errorf("%w: %v", store.ErrDecodeFailed, err)
			}
			log.Warn("dropping malformed review record", slog.String("error", err.Error()))
			continue
		}
		reviews = append(reviews, review)
	}
	return reviews, nil
}

// GetByID implements store.ReviewStore.GetByID.
func (s *ReviewStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Review, error) {
	reviews, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, review := range reviews {
		if review.ID == id {
			return review, nil
		}
	}
	return nil, store.ErrReviewNotFound
}

// Create implements store.ReviewStore.Create.
func (s *ReviewStore) Create(ctx context.Context, review *domain.Review) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := review.Validate(); err != nil {
		log.Warn("review validation failed during create",
			slog.String("error", err.Error()),
			slog.String("review_id", review.ID.String()))
		return err
	}

	if err := appendRecord(ctx, s.kv, reviewsKey, encodeReview(review)); err != nil {
		log.Error("failed to create review",
			slog.String("error", err.Error()),
			slog.String("review_id", review.ID.String()))
		return store.NewStoreError("review", "create", "failed to persist record", err)
	}

	log.Info("review created successfully",
		slog.String("review_id", review.ID.String()),
		slog.String("reviewed_user_id", review.ReviewedUserID.String()))
	return nil
}

// Update implements store.ReviewStore.Update.
func (s *ReviewStore) Update(ctx context.Context, review *domain.Review) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := review.Validate(); err != nil {
		log.Warn("review validation failed during update",
			slog.String("error", err.Error()),
			slog.String("review_id", review.ID.String()))
		return err
	}

	return replaceByID(ctx, s.kv, reviewsKey, review.ID.String(), encodeReview(review))
}

// Delete implements store.ReviewStore.Delete.
func (s *ReviewStore) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, s.kv, reviewsKey, id.String())
}
