package memory

import (
	"context"
	"testing"
	"time"

	"github.com/bnema/researchai-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorePutGetDelete(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)

	require.NoError(t, store.Put(context.Background(), "filepath", "/p1"))
	got, err := store.Get(context.Background(), "filepath")
	require.NoError(t, err)
	assert.Equal(t, "/p1", got)

	require.NoError(t, store.Delete(context.Background(), "filepath"))
	_, err = store.Get(context.Background(), "filepath")
	require.ErrorIs(t, err, domain.ErrSessionKeyNotFound)
}

func TestStoreExpiresSlots(t *testing.T) {
	t.Parallel()

	store := NewStore(20 * time.Millisecond)
	require.NoError(t, store.Put(context.Background(), "vectorPath", "/v1"))

	require.Eventually(t, func() bool {
		_, err := store.Get(context.Background(), "vectorPath")
		return err != nil
	}, time.Second, 5*time.Millisecond)
}

func TestStoreDefaultsTTL(t *testing.T) {
	t.Parallel()

	store := NewStore(0)
	require.NoError(t, store.Put(context.Background(), "filepath", "/p1"))

	_, expiresAt, found := store.cache.GetWithExpiration("filepath")
	require.True(t, found)
	assert.WithinDuration(t, time.Now().Add(DefaultTTL), expiresAt, time.Minute)
}
