package sqlite_test

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/bnema/gridterm/internal/infrastructure/persistence/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLazyDB_OpensOnFirstUseWithSchema(t *testing.T) {
	ctx := testCtx()
	dbPath := filepath.Join(t.TempDir(), "nested", "gridterm.sqlite")
	lazy := sqlite.NewLazyDB(dbPath)
	t.Cleanup(func() { _ = lazy.Close() })

	assert.Equal(t, dbPath, lazy.Path())
	assert.False(t, lazy.IsInitialized())
	assert.NoFileExists(t, dbPath, "nothing touches the disk before first use")

	db, err := lazy.DB(ctx)
	require.NoError(t, err)
	assert.True(t, lazy.IsInitialized())
	assert.FileExists(t, dbPath)

	var name string
	require.NoError(t, db.QueryRowContext(ctx,
		"SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'layouts'").Scan(&name))
	assert.Equal(t, "layouts", name)
}

func TestLazyDB_SharesOneConnection(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "gridterm.sqlite"))
	t.Cleanup(func() { _ = lazy.Close() })

	const workers = 8
	got := make([]*sql.DB, workers)
	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			db, err := lazy.DB(ctx)
			assert.NoError(t, err)
			got[i] = db
		}()
	}
	wg.Wait()

	require.NotNil(t, got[0])
	for _, db := range got[1:] {
		assert.Same(t, got[0], db)
	}
}

func TestLazyDB_RemembersOpenFailure(t *testing.T) {
	ctx := testCtx()
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	// The parent "directory" is a regular file, so MkdirAll fails.
	lazy := sqlite.NewLazyDB(filepath.Join(blocker, "gridterm.sqlite"))

	_, err := lazy.DB(ctx)
	require.Error(t, err)
	_, err = lazy.DB(ctx)
	require.Error(t, err, "the first failure sticks")
	assert.False(t, lazy.IsInitialized())
	assert.NoError(t, lazy.Close())
}

func TestLazyDB_CloseBeforeUse(t *testing.T) {
	assert.NoError(t, sqlite.NewLazyDB(filepath.Join(t.TempDir(), "gridterm.sqlite")).Close())
}
