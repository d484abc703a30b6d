package service_test

import (
	"context"
	"testing"

	"github.com/espacios/espacios-api/internal/domain"
	"github.com/espacios/espacios-api/internal/platform/kv"
	"github.com/espacios/espacios-api/internal/platform/kvstore"
	"github.com/espacios/espacios-api/internal/service"
	"github.com/espacios/espacios-api/internal/store"
	"github.com/espacios/espacios-api/internal/usecase"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	users   store.UserStore
	reviews service.ReviewService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	users := kvstore.NewUserStore(kv.NewMemoryStore(), kvstore.PolicyDrop, nil)
	reviewStore := kvstore.NewReviewStore(kv.NewMemoryStore(), kvstore.PolicyDrop, nil)

	reviews, err := service.NewReviewService(reviewStore, users, nil)
	require.NoError(t, err)

	return &fixture{users: users, reviews: reviews}
}

func registerUser(t *testing.T, users store.UserStore, email string) *domain.User {
	t.Helper()
	user, err := domain.NewUser("Usuario", email, "", domain.RoleOwner)
	require.NoError(t, err)
	require.NoError(t, users.Create(context.Background(), user))
	return user
}

func TestReviewServiceAverageRating(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newFixture(t)
	reviewed := registerUser(t, f.users, "ana@example.com")
	reviewer := registerUser(t, f.users, "beto@example.com")

	// No reviews yet: average is 0, not an error
	avg, err := f.reviews.GetAverageRating(ctx, reviewed.ID)
	require.NoError(t, err)
	assert.Equal(t, float64(0), avg)

	_, err = f.reviews.CreateReview(ctx, reviewer.ID, reviewed.ID, 5, "excelente")
	require.NoError(t, err)
	_, err = f.reviews.CreateReview(ctx, reviewer.ID, reviewed.ID, 4, "")
	require.NoError(t, err)

	// Ratings [5, 4] average to 4.5
	avg, err = f.reviews.GetAverageRating(ctx, reviewed.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.5, avg)

	// Reviews about other users do not leak in
	avg, err = f.reviews.GetAverageRating(ctx, reviewer.ID)
	require.NoError(t, err)
	assert.Equal(t, float64(0), avg)

	got, err := f.reviews.GetReviewsForUser(ctx, reviewed.ID)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestReviewServiceRatingFold(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newFixture(t)
	reviewed := registerUser(t, f.users, "ana@example.com")
	reviewer := registerUser(t, f.users, "beto@example.com")

	// The reviewed user's stored rating follows the (old+new)/2 fold, not
	// the mean: 0 -> 2.5 -> 3.25 for ratings [5, 4].
	_, err := f.reviews.CreateReview(ctx, reviewer.ID, reviewed.ID, 5, "")
	require.NoError(t, err)
	_, err = f.reviews.CreateReview(ctx, reviewer.ID, reviewed.ID, 4, "")
	require.NoError(t, err)

	user, err := f.users.GetByID(ctx, reviewed.ID)
	require.NoError(t, err)
	assert.Equal(t, 3.25, user.Rating)

	// ...which intentionally differs from the arithmetic mean of 4.5.
	avg, err := f.reviews.GetAverageRating(ctx, reviewed.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.5, avg)
}

func TestReviewServiceUnknownReviewedUser(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newFixture(t)
	reviewer := registerUser(t, f.users, "beto@example.com")

	// Reviewing a user that does not exist still records the review; only
	// the rating fold is skipped.
	review, err := f.reviews.CreateReview(ctx, reviewer.ID, uuid.New(), 3, "")
	require.NoError(t, err)

	got, err := f.reviews.GetReviewsForUser(ctx, review.ReviewedUserID)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestUserService(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	users := kvstore.NewUserStore(kv.NewMemoryStore(), kvstore.PolicyDrop, nil)
	svc, err := service.NewUserService(users, nil)
	require.NoError(t, err)

	user, err := svc.Register(ctx, usecase.RegisterUserInput{
		Name:  "Ana",
		Email: "ana@example.com",
		Role:  domain.RoleOwner,
	}, "una-contraseña-larga")
	require.NoError(t, err)

	// The service fronts the login use case
	got, err := svc.Login(ctx, "ana@example.com", "una-contraseña-larga")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = svc.Login(ctx, "ana@example.com", "nope")
	assert.ErrorIs(t, err, usecase.ErrInvalidCredentials)

	// UpdateRating persists the folded rating
	updated, err := svc.UpdateRating(ctx, user.ID, 4)
	require.NoError(t, err)
	assert.Equal(t, float64(2), updated.Rating)

	got, err = svc.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, float64(2), got.Rating)

	_, err = svc.UpdateRating(ctx, uuid.New(), 4)
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}
