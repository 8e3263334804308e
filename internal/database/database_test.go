package database

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/library/internal/entities"
)

func TestNewDatabase(t *testing.T) {
	t.Run("migrates catalog tables", func(t *testing.T) {
		db, err := NewDatabase(MemoryDSN, false)
		require.NoError(t, err)
		defer db.Close()

		assert.True(t, db.DB.Migrator().HasTable(&entities.Book{}))
		assert.True(t, db.DB.Migrator().HasTable(&entities.Loan{}))
	})

	t.Run("keeps data across queries on the same handle", func(t *testing.T) {
		db, err := NewDatabase(MemoryDSN, false)
		require.NoError(t, err)
		defer db.Close()

		book := entities.NewBook("1", "Book", "Author", 2000)
		require.NoError(t, db.DB.Create(&book).Error)

		var count int64
		require.NoError(t, db.DB.Model(&entities.Book{}).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("separate handles do not share data", func(t *testing.T) {
		first, err := NewDatabase(MemoryDSN, false)
		require.NoError(t, err)
		defer first.Close()
		second, err := NewDatabase(MemoryDSN, false)
		require.NoError(t, err)
		defer second.Close()

		book := entities.NewBook("1", "Book", "Author", 2000)
		require.NoError(t, first.DB.Create(&book).Error)

		var count int64
		require.NoError(t, second.DB.Model(&entities.Book{}).Count(&count).Error)
		assert.Zero(t, count)
	})

	t.Run("migration failure is reported", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "readonly.db")
		require.NoError(t, os.WriteFile(path, nil, 0o600))

		db, err := NewDatabase("file:"+path+"?mode=ro", false)

		require.Error(t, err)
		assert.Nil(t, db)
		assert.Contains(t, err.Error(), "failed to migrate database")
	})
}

func TestDatabase_Ping(t *testing.T) {
	db, err := NewDatabase(MemoryDSN, false)
	require.NoError(t, err)

	assert.NoError(t, db.Ping())

	require.NoError(t, db.Close())
	assert.Error(t, db.Ping())
}
