package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/shopassist/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRejectsInvalidKeys(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())
	testCases := []struct {
		name    string
		key     string
		wantErr string
	}{
		{name: "empty", key: "", wantErr: "state key is empty"},
		{name: "whitespace", key: "   ", wantErr: "state key is empty"},
		{name: "absolute", key: "/absolute/path", wantErr: "invalid state key"},
		{name: "traversal", key: "../escape", wantErr: "invalid state key"},
		{name: "nested", key: "carts/guest", wantErr: "invalid state key"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := store.Put(context.Background(), tc.key, "value")
			require.Error(t, err)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestStorePutGetRoundTripAndPermissions(t *testing.T) {
	t.Parallel()

	root := filepath.Join(t.TempDir(), "state")
	store := NewStore(root)

	require.NoError(t, store.Put(context.Background(), "guest_cart_id", `"g-1"`))

	got, err := store.Get(context.Background(), "guest_cart_id")
	require.NoError(t, err)
	assert.Equal(t, `"g-1"`, got)

	info, err := os.Stat(filepath.Join(root, "guest_cart_id.json"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	dirInfo, err := os.Stat(root)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o700), dirInfo.Mode().Perm())
}

func TestStoreGetMissingReturnsNotFound(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())

	_, err := store.Get(context.Background(), "cart_id")
	require.ErrorIs(t, err, domain.ErrKeyNotFound)
}

func TestStoreDeleteIsIdempotent(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "cart_id", `"c"`))
	require.NoError(t, store.Delete(ctx, "cart_id"))
	require.NoError(t, store.Delete(ctx, "cart_id"))

	_, err := store.Get(ctx, "cart_id")
	require.ErrorIs(t, err, domain.ErrKeyNotFound)
}
