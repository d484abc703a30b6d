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

func newUser(t *testing.T, name, email string, role domain.Role) *domain.User {
	t.Helper()
	user, err := domain.NewUser(name, email, "", role)
	require.NoError(t, err)
	return user
}

func TestUserStoreCRUD(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	users := kvstore.NewUserStore(kv.NewMemoryStore(), kvstore.PolicyDrop, nil)

	// Empty store reads as an empty collection
	all, err := users.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	ana := newUser(t, "Ana", "ana@example.com", domain.RoleOwner)
	beto := newUser(t, "Beto", "beto@example.com", domain.RoleRenter)
	require.NoError(t, users.Create(ctx, ana))
	require.NoError(t, users.Create(ctx, beto))

	// Insertion order is preserved
	all, err = users.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, ana.ID, all[0].ID)
	assert.Equal(t, beto.ID, all[1].ID)

	// GetAll is idempotent without intervening writes
	again, err := users.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, all, again)

	// Lookup by id and by email
	got, err := users.GetByID(ctx, ana.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.Name)

	got, err = users.GetByEmail(ctx, "beto@example.com")
	require.NoError(t, err)
	assert.Equal(t, beto.ID, got.ID)

	// Missing records surface the sentinel
	_, err = users.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, store.ErrUserNotFound)
	_, err = users.GetByEmail(ctx, "nadie@example.com")
	assert.ErrorIs(t, err, store.ErrUserNotFound)

	// Update replaces the matching record
	ana.Name = "Ana María"
	ana.UpdateRating(4)
	require.NoError(t, users.Update(ctx, ana))
	got, err = users.GetByID(ctx, ana.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana María", got.Name)
	assert.Equal(t, float64(2), got.Rating)

	// Updating a nonexistent user is a silent no-op
	ghost := newUser(t, "Ghost", "ghost@example.com", domain.RoleRenter)
	require.NoError(t, users.Update(ctx, ghost))
	all, err = users.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	// Delete removes the record; deleting again is a no-op
	require.NoError(t, users.Delete(ctx, beto.ID))
	require.NoError(t, users.Delete(ctx, beto.ID))
	all, err = users.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, ana.ID, all[0].ID)
}

func TestUserStoreCredentialRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	users := kvstore.NewUserStore(kv.NewMemoryStore(), kvstore.PolicyDrop, nil)

	user, err := domain.NewUser("Ana", "ana@example.com", "una-contraseña-larga", domain.RoleOwner)
	require.NoError(t, err)
	require.NoError(t, users.Create(ctx, user))

	got, err := users.GetByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.True(t, got.Credential.Verify("una-contraseña-larga"))
	assert.False(t, got.Credential.Verify("otra-cosa"))
}

func TestUserStoreMalformedRecords(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	backend := kv.NewMemoryStore()
	goodID := uuid.New()

	// Hand-edited dataset: one valid record, one with a broken id
	seed := `[
		{"id":"` + goodID.String() + `","name":"Ana","email":"ana@example.com","role":"OWNER","rating":0},
		{"id":"not-a-uuid","name":"Broken","email":"broken@example.com","role":"RENTER","rating":0}
	]`
	require.NoError(t, backend.Set(ctx, "espacios:users", seed))

	// PolicyDrop keeps the collection readable
	dropping := kvstore.NewUserStore(backend, kvstore.PolicyDrop, nil)
	all, err := dropping.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, goodID, all[0].ID)

	// PolicyFail surfaces the corruption instead
	failing := kvstore.NewUserStore(backend, kvstore.PolicyFail, nil)
	_, err = failing.GetAll(ctx)
	assert.ErrorIs(t, err, store.ErrDecodeFailed)

	// Deleting the good record keeps the malformed sibling in storage
	require.NoError(t, dropping.Delete(ctx, goodID))
	doc, err := backend.Get(ctx, "espacios:users")
	require.NoError(t, err)
	assert.Contains(t, doc, "not-a-uuid")
}
