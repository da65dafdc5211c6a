package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"excursion-booking/internal/entity"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	ctx := context.Background()

	token, err := store.Create(ctx, &entity.Principal{UserID: 7, Name: "Anna", Role: entity.RoleUser})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	principal, err := store.Get(ctx, token)
	require.NoError(t, err)
	require.NotNil(t, principal)
	assert.Equal(t, int64(7), principal.UserID)
	assert.Equal(t, entity.RoleUser, principal.Role)
}

func TestMemoryStoreTokensAreUnique(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	ctx := context.Background()
	p := &entity.Principal{UserID: 1, Name: "Anna", Role: entity.RoleUser}

	first, err := store.Create(ctx, p)
	require.NoError(t, err)
	second, err := store.Create(ctx, p)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestMemoryStoreUnknownToken(t *testing.T) {
	store := NewMemoryStore(time.Hour)

	principal, err := store.Get(context.Background(), "no-such-token")
	require.NoError(t, err)
	assert.Nil(t, principal)
}

func TestMemoryStoreDelete(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	ctx := context.Background()

	token, err := store.Create(ctx, &entity.Principal{UserID: 1, Name: "Anna", Role: entity.RoleUser})
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, token))
	// Deleting twice is a no-op.
	require.NoError(t, store.Delete(ctx, token))

	principal, err := store.Get(ctx, token)
	require.NoError(t, err)
	assert.Nil(t, principal)
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore(10 * time.Millisecond)
	ctx := context.Background()

	token, err := store.Create(ctx, &entity.Principal{UserID: 1, Name: "Anna", Role: entity.RoleUser})
	require.NoError(t, err)

	time.Sleep(20 * time.Millisecond)

	principal, err := store.Get(ctx, token)
	require.NoError(t, err)
	assert.Nil(t, principal)
}
