package prefs

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStores(t *testing.T) map[string]Store {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return map[string]Store{
		"memory": NewMemoryStore(),
		"redis":  NewRedisStore(client),
	}
}

func TestStore_RoundTrip(t *testing.T) {
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			doc := json.RawMessage(`{"columns":["name","stage"],"collapsed":true}`)

			require.NoError(t, store.Put(ctx, "alice", "crm-grid", doc))

			got, err := store.Get(ctx, "alice", "crm-grid")
			require.NoError(t, err)
			assert.JSONEq(t, string(doc), string(got))
		})
	}
}

func TestStore_ScopedByUserAndView(t *testing.T) {
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, store.Put(ctx, "alice", "crm-grid", json.RawMessage(`{"a":1}`)))
			require.NoError(t, store.Put(ctx, "alice", "quickview", json.RawMessage(`{"b":2}`)))
			require.NoError(t, store.Put(ctx, "bob", "crm-grid", json.RawMessage(`{"c":3}`)))

			got, err := store.Get(ctx, "alice", "crm-grid")
			require.NoError(t, err)
			assert.JSONEq(t, `{"a":1}`, string(got))

			got, err = store.Get(ctx, "bob", "crm-grid")
			require.NoError(t, err)
			assert.JSONEq(t, `{"c":3}`, string(got))
		})
	}
}

func TestStore_GetMissing(t *testing.T) {
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			_, err := store.Get(context.Background(), "alice", "nope")
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestStore_PutReplaces(t *testing.T) {
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, store.Put(ctx, "alice", "crm-grid", json.RawMessage(`{"v":1}`)))
			require.NoError(t, store.Put(ctx, "alice", "crm-grid", json.RawMessage(`{"v":2}`)))

			got, err := store.Get(ctx, "alice", "crm-grid")
			require.NoError(t, err)
			assert.JSONEq(t, `{"v":2}`, string(got))
		})
	}
}

func TestStore_DeleteIsIdempotent(t *testing.T) {
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, store.Put(ctx, "alice", "crm-grid", json.RawMessage(`{}`)))

			assert.NoError(t, store.Delete(ctx, "alice", "crm-grid"))
			_, err := store.Get(ctx, "alice", "crm-grid")
			assert.ErrorIs(t, err, ErrNotFound)

			// Deleting again is not an error.
			assert.NoError(t, store.Delete(ctx, "alice", "crm-grid"))
		})
	}
}

func TestMemoryStore_CopiesDocuments(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	doc := json.RawMessage(`{"v":1}`)
	require.NoError(t, store.Put(ctx, "alice", "crm-grid", doc))
	doc[2] = 'x' // mutate the caller's slice after Put

	got, err := store.Get(ctx, "alice", "crm-grid")
	require.NoError(t, err)
	assert.JSONEq(t, `{"v":1}`, string(got))
}
