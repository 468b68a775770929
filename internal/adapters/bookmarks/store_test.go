package bookmarks_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fractile/internal/adapters/bookmarks"
	"go.trai.ch/fractile/internal/core/domain"
)

var created = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

func seahorse() domain.Bookmark {
	return domain.Bookmark{
		Name:      "seahorse",
		OriginX:   -0.7453,
		OriginY:   0.1127,
		Scale:     6.5e-6,
		CreatedAt: created,
	}
}

func TestStore_PutGet(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	store := bookmarks.NewStore()

	require.NoError(t, store.Put(root, seahorse()))

	got, err := store.Get(root, "seahorse")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, seahorse(), *got)
}

func TestStore_GetMissing(t *testing.T) {
	t.Parallel()
	store := bookmarks.NewStore()

	got, err := store.Get(t.TempDir(), "elephant")

	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_PutReplaces(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	store := bookmarks.NewStore()
	require.NoError(t, store.Put(root, seahorse()))

	moved := seahorse()
	moved.Scale = 1e-9
	require.NoError(t, store.Put(root, moved))

	got, err := store.Get(root, "seahorse")
	require.NoError(t, err)
	assert.InDelta(t, 1e-9, got.Scale, 0)
	all, err := store.List(root)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestStore_ListSortsByName(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	store := bookmarks.NewStore()
	for _, name := range []string{"spiral", "elephant", "seahorse"} {
		b := seahorse()
		b.Name = name
		require.NoError(t, store.Put(root, b))
	}

	all, err := store.List(root)

	require.NoError(t, err)
	names := make([]string, 0, len(all))
	for _, b := range all {
		names = append(names, b.Name)
	}
	assert.Equal(t, []string{"elephant", "seahorse", "spiral"}, names)
}

func TestStore_ListEmptyRoot(t *testing.T) {
	t.Parallel()

	all, err := bookmarks.NewStore().List(t.TempDir())

	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestStore_CorruptFile(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	store := bookmarks.NewStore()
	require.NoError(t, store.Put(root, seahorse()))

	dir := filepath.Join(root, domain.DefaultBookmarksPath())
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.NoError(t, os.WriteFile(filepath.Join(dir, entries[0].Name()), []byte("{"), domain.FilePerm))

	_, err = store.Get(root, "seahorse")
	require.ErrorContains(t, err, domain.ErrStoreUnmarshalFailed.Error())
	_, err = store.List(root)
	require.ErrorContains(t, err, domain.ErrStoreUnmarshalFailed.Error())
}

func TestStore_RejectsEmptyName(t *testing.T) {
	t.Parallel()
	store := bookmarks.NewStore()

	err := store.Put(t.TempDir(), domain.Bookmark{Name: "  "})
	require.ErrorIs(t, err, domain.ErrInvalidBookmarkName)

	_, err = store.Get(t.TempDir(), "")
	require.ErrorIs(t, err, domain.ErrInvalidBookmarkName)
}

func TestStore_IgnoresForeignFiles(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	dir := filepath.Join(root, domain.DefaultBookmarksPath())
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), domain.DirPerm))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hi"), domain.FilePerm))

	all, err := bookmarks.NewStore().List(root)

	require.NoError(t, err)
	assert.Empty(t, all)
}
