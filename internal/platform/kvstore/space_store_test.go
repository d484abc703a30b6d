package kvstore_test

import (
	"context"
	"testing"

	"github.com/espacios/espacios-api/internal/domain"
	"github.com/espacios/espacios-api/internal/platform/kv"
	"github.com/espacios/espacios-api/internal/platform/kvstore"
	"github.com/espacios/espacios-api/internal/store"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSpace(t *testing.T, title string) *domain.Space {
	t.Helper()
	price, err := domain.NewPrice(350, "MXN")
	require.NoError(t, err)
	space, err := domain.NewSpace(
		uuid.New(), title, "descripción",
		domain.SpaceTypeGarage,
		domain.NewLocation("CDMX", "Av. Reforma 123"),
		price,
		[]string{"https://img.example.com/1.jpg", "https://img.example.com/2.jpg"},
	)
	require.NoError(t, err)
	return space
}

func TestSpaceStoreCRUD(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	spaces := kvstore.NewSpaceStore(kv.NewMemoryStore(), kvstore.PolicyDrop, nil)

	garage := newSpace(t, "Cochera techada")
	require.NoError(t, spaces.Create(ctx, garage))

	got, err := spaces.GetByID(ctx, garage.ID)
	require.NoError(t, err)
	assert.Equal(t, garage.Title, got.Title)
	assert.Equal(t, garage.OwnerID, got.OwnerID)
	assert.Equal(t, domain.SpaceTypeGarage, got.Type)
	assert.Equal(t, "MXN 350.00", got.Price.Format())
	assert.Equal(t, "Av. Reforma 123, CDMX", got.Location.String())
	assert.True(t, got.Available)
	assert.Equal(t, garage.Images, got.Images)

	_, err = spaces.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, store.ErrSpaceNotFound)

	// Availability toggles round-trip through Update
	got.Available = false
	require.NoError(t, spaces.Update(ctx, got))
	got, err = spaces.GetByID(ctx, garage.ID)
	require.NoError(t, err)
	assert.False(t, got.Available)

	// Delete, then a second delete is a no-op
	require.NoError(t, spaces.Delete(ctx, garage.ID))
	require.NoError(t, spaces.Delete(ctx, garage.ID))
	all, err := spaces.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestSpaceStoreDefensiveDecode(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	backend := kv.NewMemoryStore()
	spaceID := uuid.New()
	ownerID := uuid.New()

	// A hand-edited record: price holds garbage, location is missing, and
	// the available flag was never written.
	seed := `[
		{"id":"` + spaceID.String() + `","owner_id":"` + ownerID.String() + `",
		 "title":"Muro para anuncio","type":"ADVERTISEMENT_SPOT",
		 "price":"lots of money","images":null}
	]`
	require.NoError(t, backend.Set(ctx, "espacios:spaces", seed))

	spaces := kvstore.NewSpaceStore(backend, kvstore.PolicyDrop, nil)
	got, err := spaces.GetByID(ctx, spaceID)
	require.NoError(t, err)

	// Malformed nested fields degrade to safe defaults instead of failing
	// the whole read.
	assert.Equal(t, domain.Price{}, got.Price)
	assert.Equal(t, domain.Location{}, got.Location)
	assert.True(t, got.Available)
	assert.Equal(t, domain.SpaceTypeAdvertisementSpot, got.Type)

	// A negative persisted amount also degrades to the zero price.
	seed = `[
		{"id":"` + spaceID.String() + `","owner_id":"` + ownerID.String() + `",
		 "title":"Muro","type":"WALL","price":{"amount":-5,"currency":"MXN"}}
	]`
	require.NoError(t, backend.Set(ctx, "espacios:spaces", seed))
	got, err = spaces.GetByID(ctx, spaceID)
	require.NoError(t, err)
	assert.Equal(t, domain.Price{}, got.Price)
}

func TestSpaceStoreCorruptCollection(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	backend := kv.NewMemoryStore()
	require.NoError(t, backend.Set(ctx, "espacios:spaces", `{"oops":"not an array"}`))

	// A document that is not an array is surfaced regardless of policy.
	spaces := kvstore.NewSpaceStore(backend, kvstore.PolicyDrop, nil)
	_, err := spaces.GetAll(ctx)
	assert.ErrorIs(t, err, store.ErrDecodeFailed)
}
