// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ledger

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storyforge/bindery/pkg/types"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(types.LedgerConfig{Dir: filepath.Join(t.TempDir(), "ledger")})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestAppendAndList(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	require.NoError(t, store.Append(ctx, types.RenderResult{
		Success:    true,
		OutputPath: "output/book.pdf",
		FileSize:   204800,
		PageCount:  12,
	}, "8x8"))

	require.NoError(t, store.Append(ctx, types.RenderResult{
		Success: false,
		Error:   "manifest has no output_path",
	}, ""))

	records, err := store.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Newest first.
	assert.False(t, records[0].Success)
	assert.Equal(t, "manifest has no output_path", records[0].Error)

	assert.True(t, records[1].Success)
	assert.Equal(t, "output/book.pdf", records[1].OutputPath)
	assert.Equal(t, "8x8", records[1].Format)
	assert.Equal(t, 12, records[1].PageCount)
	assert.Equal(t, int64(204800), records[1].FileSize)
	assert.False(t, records[1].CreatedAt.IsZero())
}

func TestList_Limit(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, store.Append(ctx, types.RenderResult{
			Success:    true,
			OutputPath: "book.pdf",
			PageCount:  i + 1,
		}, "7x7"))
	}

	records, err := store.List(ctx, 3)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, 5, records[0].PageCount)
	assert.Equal(t, 3, records[2].PageCount)
}

func TestList_Empty(t *testing.T) {
	store := openStore(t)
	records, err := store.List(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestOpen_ReopensExistingDatabase(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "ledger")
	cfg := types.LedgerConfig{Dir: dir}

	store, err := Open(cfg)
	require.NoError(t, err)
	require.NoError(t, store.Append(context.Background(), types.RenderResult{
		Success:    true,
		OutputPath: "a.pdf",
		PageCount:  1,
	}, "8x8"))
	require.NoError(t, store.Close())

	reopened, err := Open(cfg)
	require.NoError(t, err)
	defer reopened.Close()

	records, err := reopened.List(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "a.pdf", records[0].OutputPath)
}
