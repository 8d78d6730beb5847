package storage_test

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ramenku/ramenku/internal/storage"
)

// The memory and bolt backends share one behavioral contract; both run the
// same cases. Postgres and redis implement the same interface but need
// external services, so they are exercised through configuration in
// deployment, not here.
func testStores(t *testing.T) map[string]storage.Store {
	t.Helper()

	boltStore, err := storage.NewBolt(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, boltStore.Close())
	})

	return map[string]storage.Store{
		"memory": storage.NewMemory(),
		"bolt":   boltStore,
	}
}

func TestStore_GetMissingKey(t *testing.T) {
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			_, err := store.Get(context.Background(), "missing")
			require.ErrorIs(t, err, storage.ErrKeyNotFound)
		})
	}
}

func TestStore_PutGetRoundTrip(t *testing.T) {
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Put(context.Background(), "greeting", []byte(`{"hello":"dunia"}`)))

			value, err := store.Get(context.Background(), "greeting")
			require.NoError(t, err)
			require.JSONEq(t, `{"hello":"dunia"}`, string(value))
		})
	}
}

func TestStore_DeleteIsIdempotent(t *testing.T) {
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Put(context.Background(), "doomed", []byte(`1`)))
			require.NoError(t, store.Delete(context.Background(), "doomed"))
			require.NoError(t, store.Delete(context.Background(), "doomed"))

			_, err := store.Get(context.Background(), "doomed")
			require.ErrorIs(t, err, storage.ErrKeyNotFound)
		})
	}
}

func TestStore_UpdateCreatesWhenAbsent(t *testing.T) {
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			err := store.Update(context.Background(), "counter", func(old []byte) ([]byte, error) {
				require.Nil(t, old)
				return []byte(`[1]`), nil
			})
			require.NoError(t, err)

			value, err := store.Get(context.Background(), "counter")
			require.NoError(t, err)
			require.JSONEq(t, `[1]`, string(value))
		})
	}
}

func TestStore_UpdateSeesPreviousValue(t *testing.T) {
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Put(context.Background(), "counter", []byte(`[1]`)))

			err := store.Update(context.Background(), "counter", func(old []byte) ([]byte, error) {
				require.JSONEq(t, `[1]`, string(old))
				return []byte(`[2,1]`), nil
			})
			require.NoError(t, err)

			value, err := store.Get(context.Background(), "counter")
			require.NoError(t, err)
			require.JSONEq(t, `[2,1]`, string(value))
		})
	}
}

func TestStore_UpdateErrorLeavesValueUntouched(t *testing.T) {
	errBoom := errors.New("boom")

	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Put(context.Background(), "stable", []byte(`"before"`)))

			err := store.Update(context.Background(), "stable", func(old []byte) ([]byte, error) {
				return []byte(`"after"`), errBoom
			})
			require.ErrorIs(t, err, errBoom)

			value, err := store.Get(context.Background(), "stable")
			require.NoError(t, err)
			require.JSONEq(t, `"before"`, string(value))
		})
	}
}

func TestStore_UpdateNilDeletesKey(t *testing.T) {
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Put(context.Background(), "temp", []byte(`true`)))

			err := store.Update(context.Background(), "temp", func(old []byte) ([]byte, error) {
				return nil, nil
			})
			require.NoError(t, err)

			_, err = store.Get(context.Background(), "temp")
			require.ErrorIs(t, err, storage.ErrKeyNotFound)
		})
	}
}

func TestStore_UpdateSerializesConcurrentWriters(t *testing.T) {
	const writers = 16

	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			var wg sync.WaitGroup
			errCh := make(chan error, writers)

			// Every writer appends itself to the same fresh key. If two of
			// them ever observe the same old value, one append is lost and
			// the final element count comes up short.
			for i := 0; i < writers; i++ {
				wg.Add(1)
				go func(n int) {
					defer wg.Done()
					errCh <- store.Update(context.Background(), "roster", func(old []byte) ([]byte, error) {
						var members []int
						if old != nil {
							if err := json.Unmarshal(old, &members); err != nil {
								return nil, err
							}
						}
						return json.Marshal(append(members, n))
					})
				}(i)
			}
			wg.Wait()
			close(errCh)

			for err := range errCh {
				require.NoError(t, err)
			}

			raw, err := store.Get(context.Background(), "roster")
			require.NoError(t, err)

			var members []int
			require.NoError(t, json.Unmarshal(raw, &members))
			require.Len(t, members, writers)
		})
	}
}
