package kvstore

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/bnema/shopassist/internal/domain"
	"github.com/bnema/shopassist/internal/ports/mocks"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestJSONStoreRoundTripOverBackends(t *testing.T) {
	t.Parallel()

	for _, kind := range []string{BackendTOML, BackendFile, BackendSQLite} {
		t.Run(kind, func(t *testing.T) {
			backend, closeFn, err := OpenBackend(kind, t.TempDir())
			require.NoError(t, err)
			t.Cleanup(func() { _ = closeFn() })

			logger, _ := logtest.NewNullLogger()
			store := NewJSONStore(backend, logger)
			ctx := context.Background()

			require.True(t, store.Save(ctx, "search_history", []string{"rice", "milk"}))

			var history []string
			require.True(t, store.Load(ctx, "search_history", &history))
			assert.Equal(t, []string{"rice", "milk"}, history)

			require.True(t, store.Remove(ctx, "search_history"))
			assert.False(t, store.Load(ctx, "search_history", &history))
		})
	}
}

func TestJSONStoreLoadMissingKeyIsQuiet(t *testing.T) {
	t.Parallel()

	backend := mocks.NewMockKVStore(t)
	logger, hook := logtest.NewNullLogger()
	store := NewJSONStore(backend, logger)

	backend.EXPECT().Get(mock.Anything, "cart_id").Return("", fmt.Errorf("entry: %w", domain.ErrKeyNotFound)).Once()

	var cartID string
	assert.False(t, store.Load(context.Background(), "cart_id", &cartID))
	assert.Empty(t, hook.AllEntries())
}

func TestJSONStoreContainsBackendFailures(t *testing.T) {
	t.Parallel()

	backend := mocks.NewMockKVStore(t)
	logger, hook := logtest.NewNullLogger()
	store := NewJSONStore(backend, logger)
	ctx := context.Background()

	backend.EXPECT().Get(mock.Anything, "cart_id").Return("", errors.New("disk gone")).Once()
	backend.EXPECT().Put(mock.Anything, "cart_id", `"c-1"`).Return(errors.New("quota exceeded")).Once()
	backend.EXPECT().Delete(mock.Anything, "cart_id").Return(errors.New("read-only")).Once()

	var cartID string
	assert.False(t, store.Load(ctx, "cart_id", &cartID))
	assert.False(t, store.Save(ctx, "cart_id", "c-1"))
	assert.False(t, store.Remove(ctx, "cart_id"))

	require.Len(t, hook.AllEntries(), 3)
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
}

func TestJSONStoreLoadRejectsCorruptEntry(t *testing.T) {
	t.Parallel()

	backend := mocks.NewMockKVStore(t)
	logger, hook := logtest.NewNullLogger()
	store := NewJSONStore(backend, logger)

	backend.EXPECT().Get(mock.Anything, "search_history").Return("{not json", nil).Once()

	var history []string
	assert.False(t, store.Load(context.Background(), "search_history", &history))
	assert.Nil(t, history)
	require.NotNil(t, hook.LastEntry())
	assert.Contains(t, hook.LastEntry().Message, "not valid json")
}

func TestJSONStoreSaveRejectsUnencodableValue(t *testing.T) {
	t.Parallel()

	backend := mocks.NewMockKVStore(t)
	logger, _ := logtest.NewNullLogger()
	store := NewJSONStore(backend, logger)

	assert.False(t, store.Save(context.Background(), "bad", make(chan int)))
}

func TestOpenBackendRejectsUnknownKind(t *testing.T) {
	t.Parallel()

	_, _, err := OpenBackend("redis", t.TempDir())
	require.Error(t, err)
	assert.ErrorContains(t, err, "unknown state backend")
}
