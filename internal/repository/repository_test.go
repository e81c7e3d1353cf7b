package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/shenikar/field_sync/internal/models"
	"github.com/shenikar/field_sync/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueRepository_MutateAndList(t *testing.T) {
	ctx := context.Background()
	repo := NewQueueRepository(storage.NewMemoryStore())

	queue, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, queue)

	_, err = repo.Mutate(ctx, func(q []models.QueuedAction) ([]models.QueuedAction, bool, error) {
		return append(q, models.QueuedAction{ID: "a"}, models.QueuedAction{ID: "b"}), true, nil
	})
	require.NoError(t, err)

	queue, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, queue, 2)
	assert.Equal(t, "a", queue[0].ID)

	got, err := repo.Get(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, "b", got.ID)

	_, err = repo.Get(ctx, "zzz")
	require.ErrorIs(t, err, models.ErrActionNotFound)
}

func TestQueueRepository_ConcurrentMutations(t *testing.T) {
	ctx := context.Background()
	repo := NewQueueRepository(storage.NewMemoryStore())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Mutate(ctx, func(q []models.QueuedAction) ([]models.QueuedAction, bool, error) {
				return append(q, models.QueuedAction{}), true, nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	queue, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, queue, 50)
}

func TestQueueRepository_CorruptValueIsBackedUp(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(ctx, QueueKey, []byte("{not json")))
	repo := NewQueueRepository(store)

	queue, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, queue)

	backup, err := store.Get(ctx, corruptQueueKey)
	require.NoError(t, err)
	assert.Equal(t, "{not json", string(backup))
}

func TestCacheRepository_RefreshNeverRegressesToEmpty(t *testing.T) {
	ctx := context.Background()
	repo := NewCacheRepository[models.Occurrence](storage.NewMemoryStore())

	written, err := repo.Refresh(ctx, "cache:test", []models.Occurrence{{ID: 1}})
	require.NoError(t, err)
	assert.True(t, written)

	written, err = repo.Refresh(ctx, "cache:test", []models.Occurrence{})
	require.NoError(t, err)
	assert.False(t, written)

	data, err := repo.List(ctx, "cache:test")
	require.NoError(t, err)
	require.Len(t, data, 1)
	assert.Equal(t, int64(1), data[0].ID)
}

func TestCacheRepository_RefreshSkipsUnchanged(t *testing.T) {
	ctx := context.Background()
	repo := NewCacheRepository[models.Ref](storage.NewMemoryStore())

	written, err := repo.Refresh(ctx, "cache:refs", []models.Ref{{ID: 1, Name: "A"}})
	require.NoError(t, err)
	assert.True(t, written)

	written, err = repo.Refresh(ctx, "cache:refs", []models.Ref{{ID: 1, Name: "A"}})
	require.NoError(t, err)
	assert.False(t, written)

	written, err = repo.Refresh(ctx, "cache:refs", []models.Ref{{ID: 1, Name: "B"}})
	require.NoError(t, err)
	assert.True(t, written)

	// локальная запись пустого списка допустима
	require.NoError(t, repo.Put(ctx, "cache:refs", nil))
	data, err := repo.List(ctx, "cache:refs")
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestCacheRepository_EmptyRefreshOnMissingKeyWrites(t *testing.T) {
	ctx := context.Background()
	repo := NewCacheRepository[models.Ref](storage.NewMemoryStore())

	written, err := repo.Refresh(ctx, "cache:new", nil)
	require.NoError(t, err)
	assert.True(t, written)

	_, ok, err := repo.Get(ctx, "cache:new")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestOccurrenceCache_InsertTemporaryIsIdempotent(t *testing.T) {
	ctx := context.Background()
	cache := NewOccurrenceCache(storage.NewMemoryStore())
	tmp := models.Occurrence{ID: -100, Number: "OCR_LOCAL_100", UserID: 7}

	require.NoError(t, cache.InsertTemporary(ctx, tmp))
	require.NoError(t, cache.InsertTemporary(ctx, tmp))

	for _, userID := range []int64{0, 7} {
		list, err := cache.List(ctx, userID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, int64(-100), list[0].ID)
	}

	require.NoError(t, cache.RemoveTemporary(ctx, -100, 7))
	for _, userID := range []int64{0, 7} {
		list, err := cache.List(ctx, userID)
		require.NoError(t, err)
		assert.Empty(t, list)
	}
}

func TestOccurrenceCache_ReconcileByID(t *testing.T) {
	ctx := context.Background()
	cache := NewOccurrenceCache(storage.NewMemoryStore())
	require.NoError(t, cache.lists.Put(ctx, UserOccurrencesKey(7), []models.Occurrence{{ID: 5}, {ID: -100, Number: "N1"}, {ID: 3}}))

	require.NoError(t, cache.Reconcile(ctx, -100, "N1", 7, models.Occurrence{ID: 42, Number: "N1"}))

	list, err := cache.List(ctx, 7)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, int64(42), list[1].ID, "запись заменяется на месте")

	generic, err := cache.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, generic, 1)
	assert.Equal(t, int64(42), generic[0].ID, "без совпадений запись добавляется в начало")
}

func TestOccurrenceCache_ReconcileFallbackIgnoresStaleServerRecord(t *testing.T) {
	ctx := context.Background()
	cache := NewOccurrenceCache(storage.NewMemoryStore())
	// старая серверная запись с тем же номером и временная запись с другим id
	stale := models.Occurrence{ID: 9, Number: "N1", Description: "stale"}
	tmp := models.Occurrence{ID: -200, Number: "N1"}
	require.NoError(t, cache.lists.Put(ctx, GenericOccurrencesKey, []models.Occurrence{stale, tmp}))

	require.NoError(t, cache.Reconcile(ctx, -100, "N1", 0, models.Occurrence{ID: 42, Number: "N1"}))

	list, err := cache.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, stale, list[0], "серверная запись по номеру не заменяется")
	assert.Equal(t, int64(42), list[1].ID, "временная запись найдена по номеру")
}

func TestOccurrenceCache_ReconcileDropsDuplicateServerRecord(t *testing.T) {
	ctx := context.Background()
	cache := NewOccurrenceCache(storage.NewMemoryStore())
	require.NoError(t, cache.lists.Put(ctx, GenericOccurrencesKey, []models.Occurrence{{ID: -100}, {ID: 42}}))

	require.NoError(t, cache.Reconcile(ctx, -100, "", 0, models.Occurrence{ID: 42, Description: "fresh"}))

	list, err := cache.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "fresh", list[0].Description)
}

func TestOccurrenceCache_ReplaceFromServerKeepsTemporaries(t *testing.T) {
	ctx := context.Background()
	cache := NewOccurrenceCache(storage.NewMemoryStore())
	require.NoError(t, cache.InsertTemporary(ctx, models.Occurrence{ID: -1, UserID: 7}))

	written, err := cache.ReplaceFromServer(ctx, 7, []models.Occurrence{{ID: 10}, {ID: 11}})
	require.NoError(t, err)
	assert.True(t, written)

	list, err := cache.List(ctx, 7)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, int64(-1), list[0].ID)

	written, err = cache.ReplaceFromServer(ctx, 7, nil)
	require.NoError(t, err)
	assert.False(t, written)

	list, err = cache.List(ctx, 7)
	require.NoError(t, err)
	assert.Len(t, list, 3)
}
