package locker

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRedisRepository struct {
	mu     sync.Mutex
	values map[string]string
}

func newFakeRedisRepository() *fakeRedisRepository {
	return &fakeRedisRepository{values: map[string]string{}}
}

func (f *fakeRedisRepository) Get(ctx context.Context, key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	value, found := f.values[key]
	return value, found, nil
}

func (f *fakeRedisRepository) Set(ctx context.Context, key, value string, exp time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[key] = value
	return nil
}

func (f *fakeRedisRepository) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.values, key)
	return nil
}

func (f *fakeRedisRepository) TrySetNX(ctx context.Context, key, value string, exp time.Duration) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, found := f.values[key]; found {
		return false, nil
	}
	f.values[key] = value
	return true, nil
}

func TestLockService(t *testing.T) {
	repo := newFakeRedisRepository()
	svc := NewLockService(repo, zap.NewNop())
	ctx := context.Background()

	t.Run("Acquires a free lock and releases it", func(t *testing.T) {
		acquired, token, err := svc.TryLock(ctx, "regen:leader", time.Minute)
		require.NoError(t, err)
		require.True(t, acquired)
		require.NotEmpty(t, token)

		require.NoError(t, svc.Unlock(ctx, "regen:leader", token))

		_, found, err := repo.Get(ctx, "regen:leader")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Second contender does not acquire a held lock", func(t *testing.T) {
		acquired, token, err := svc.TryLock(ctx, "regen:leader", time.Minute)
		require.NoError(t, err)
		require.True(t, acquired)

		acquiredAgain, _, err := svc.TryLock(ctx, "regen:leader", time.Minute)
		require.NoError(t, err)
		assert.False(t, acquiredAgain)

		require.NoError(t, svc.Unlock(ctx, "regen:leader", token))
	})

	t.Run("Refuses to release a lock held by someone else", func(t *testing.T) {
		acquired, token, err := svc.TryLock(ctx, "regen:leader", time.Minute)
		require.NoError(t, err)
		require.True(t, acquired)

		err = svc.Unlock(ctx, "regen:leader", "not-my-token")
		require.Error(t, err)

		// The rightful owner can still release it.
		require.NoError(t, svc.Unlock(ctx, "regen:leader", token))
	})

	t.Run("Releasing an expired lock is a no-op", func(t *testing.T) {
		assert.NoError(t, svc.Unlock(ctx, "regen:leader", "stale-token"))
	})
}
