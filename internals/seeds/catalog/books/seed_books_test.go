package books

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"evsu_library_backend/internals/databases/dbtest"
	"evsu_library_backend/internals/features/catalog/books/repository"
)

func TestSeedBooksIsIdempotent(t *testing.T) {
	db := dbtest.Open(t)

	n, err := SeedBooksFromJSON(db, "data_books.json")
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	n, err = SeedBooksFromJSON(db, "data_books.json")
	require.NoError(t, err)
	assert.Zero(t, n)

	rows, total, err := repository.NewBookRepository(db).List(context.Background(), repository.ListFilter{Q: "dune"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.NotNil(t, rows[0].Inventory)
	assert.Equal(t, "borrowed", rows[0].Inventory.Status)
}

func TestSeedBooksSkipsInvalidEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "books.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"title": "", "author": "Nobody"},
		{"title": "Emma", "author": "Jane Austen"}
	]`), 0o600))

	n, err := SeedBooksFromJSON(dbtest.Open(t), path)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestSeedBooksBadFile(t *testing.T) {
	db := dbtest.Open(t)
	_, err := SeedBooksFromJSON(db, filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o600))
	_, err = SeedBooksFromJSON(db, path)
	assert.Error(t, err)
}
