package session

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Erictomm2002/Menu-Scanner/internal/menu"
)

func sampleState() *State {
	return &State{
		Step: StepEdit,
		Menu: &menu.MenuData{
			RestaurantName: "Quán A",
			Categories: []menu.MenuCategory{
				{
					ID:           "ca-phe",
					CategoryName: "Cà phê",
					Items:        []menu.MenuItem{{ID: "item_1", Name: "Đen", Price: "20000"}},
				},
			},
		},
	}
}

// exercise runs the shared round-trip contract against any Store.
func exercise(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()

	_, err := store.Load(ctx, "sess-1")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Save(ctx, "sess-1", sampleState()))

	got, err := store.Load(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, StepEdit, got.Step)
	require.NotNil(t, got.Menu)
	assert.Equal(t, "Quán A", got.Menu.RestaurantName)
	require.Len(t, got.Menu.Categories, 1)
	assert.Equal(t, "ca-phe", got.Menu.Categories[0].ID)

	// Sessions are isolated from each other.
	_, err = store.Load(ctx, "sess-2")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Clear(ctx, "sess-1"))
	_, err = store.Load(ctx, "sess-1")
	assert.ErrorIs(t, err, ErrNotFound)

	// Clearing an absent session is not an error.
	require.NoError(t, store.Clear(ctx, "sess-1"))
}

func TestMemoryStore(t *testing.T) {
	exercise(t, NewMemoryStore())
}

func TestRedisStore(t *testing.T) {
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	exercise(t, NewRedisStore(client))
}

func TestRedisStore_SetsTTL(t *testing.T) {
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store := NewRedisStore(client)
	require.NoError(t, store.Save(context.Background(), "sess-ttl", sampleState()))

	ttl := mr.TTL(sessionKey("sess-ttl"))
	assert.Equal(t, defaultTTL, ttl)
}
