package kvstore_test

import (
	"context"
	"testing"
	"time"

	"github.com/espacios/espacios-api/internal/domain"
	"github.com/espacios/espacios-api/internal/platform/kv"
	"github.com/espacios/espacios-api/internal/platform/kvstore"
	"github.com/espacios/espacios-api/internal/store"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRentalStoreRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	rentals := kvstore.NewRentalStore(kv.NewMemoryStore(), kvstore.PolicyDrop, nil)

	start := time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC)
	dateRange, err := domain.NewDateRange(start, start.AddDate(0, 0, 2))
	require.NoError(t, err)

	rental, err := domain.NewRental(uuid.New(), uuid.New(), uuid.New(), dateRange, 200)
	require.NoError(t, err)
	require.NoError(t, rentals.Create(ctx, rental))

	got, err := rentals.GetByID(ctx, rental.ID)
	require.NoError(t, err)
	assert.True(t, got.DateRange.Start.Equal(start))
	assert.Equal(t, float64(48), got.DateRange.Hours())
	assert.Equal(t, float64(200), got.TotalCost)
	assert.Equal(t, rental.SpaceID, got.SpaceID)

	_, err = rentals.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, store.ErrRentalNotFound)
}

func TestRentalStoreUnparsableDates(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	backend := kv.NewMemoryStore()
	goodID := uuid.New()

	start := time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC)
	seed := `[
		{"id":"` + goodID.String() + `","space_id":"` + uuid.NewString() + `",
		 "renter_id":"` + uuid.NewString() + `","owner_id":"` + uuid.NewString() + `",
		 "date_range":{"start":"` + start.Format(time.RFC3339) + `","end":"` + start.AddDate(0, 0, 1).Format(time.RFC3339) + `"},
		 "total_cost":100},
		{"id":"` + uuid.NewString() + `","space_id":"` + uuid.NewString() + `",
		 "renter_id":"` + uuid.NewString() + `","owner_id":"` + uuid.NewString() + `",
		 "date_range":{"start":"next tuesday","end":"whenever"},
		 "total_cost":100}
	]`
	require.NoError(t, backend.Set(ctx, "espacios:rentals", seed))

	// A rental whose dates cannot be parsed has no safe default: under
	// PolicyDrop it vanishes from the result set, the rest survives.
	dropping := kvstore.NewRentalStore(backend, kvstore.PolicyDrop, nil)
	all, err := dropping.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, goodID, all[0].ID)

	// Under PolicyFail the read aborts instead.
	failing := kvstore.NewRentalStore(backend, kvstore.PolicyFail, nil)
	_, err = failing.GetAll(ctx)
	assert.ErrorIs(t, err, store.ErrDecodeFailed)
}

func TestReviewStoreDateFallback(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	backend := kv.NewMemoryStore()
	reviewID := uuid.New()

	seed := `[
		{"id":"` + reviewID.String() + `","reviewer_id":"` + uuid.NewString() + `",
		 "reviewed_user_id":"` + uuid.NewString() + `","rating":5,
		 "comment":"todo bien","date":"hace dos días"}
	]`
	require.NoError(t, backend.Set(ctx, "espacios:reviews", seed))

	// An unparsable review date degrades to the current time rather than
	// dropping the record.
	reviews := kvstore.NewReviewStore(backend, kvstore.PolicyDrop, nil)
	before := time.Now().UTC()
	got, err := reviews.GetByID(ctx, reviewID)
	require.NoError(t, err)
	assert.Equal(t, float64(5), got.Rating)
	assert.False(t, got.Date.Before(before.Add(-time.Minute)))
}

func TestReviewStoreRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	reviews := kvstore.NewReviewStore(kv.NewMemoryStore(), kvstore.PolicyDrop, nil)

	review, err := domain.NewReview(uuid.New(), uuid.New(), 4, "buen trato")
	require.NoError(t, err)
	require.NoError(t, reviews.Create(ctx, review))

	got, err := reviews.GetByID(ctx, review.ID)
	require.NoError(t, err)
	assert.Equal(t, review.ReviewedUserID, got.ReviewedUserID)
	assert.Equal(t, "buen trato", got.Comment)
	// RFC 3339 keeps second precision only
	assert.WithinDuration(t, review.Date, got.Date, time.Second)

	_, err = reviews.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, store.ErrReviewNotFound)
}
