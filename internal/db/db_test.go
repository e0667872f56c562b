package db

import (
	"testing"

	"github.com/google/uuid"
	"github.com/snnyvrz/go-book-crud-gin/internal/config"
	"github.com/snnyvrz/go-book-crud-gin/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectWithRetry_SQLite(t *testing.T) {
	cfg := &config.Config{
		DBDriver:          "sqlite",
		SQLitePath:        "file:dbtest_" + uuid.NewString() + "?mode=memory&cache=shared",
		DBConnectAttempts: 1,
	}

	gdb, err := ConnectWithRetry(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(gdb) })

	require.NoError(t, Migrate(gdb))
	assert.True(t, gdb.Migrator().HasTable(&model.Book{}))
	assert.True(t, gdb.Migrator().HasColumn(&model.Book{}, "amazon_url"))
}

func TestConnectWithRetry_UnsupportedDriver(t *testing.T) {
	cfg := &config.Config{DBDriver: "oracle", DBConnectAttempts: 3}

	gdb, err := ConnectWithRetry(cfg)

	assert.Nil(t, gdb)
	assert.ErrorContains(t, err, `unsupported DB_DRIVER "oracle"`)
}

func TestConnectWithRetry_GivesUp(t *testing.T) {
	delayBetweenTry = 0
	t.Cleanup(func() { delayBetweenTry = defaultDelayBetweenTry })

	cfg := &config.Config{
		DBDriver:          "sqlite",
		SQLitePath:        "/nonexistent-dir-" + uuid.NewString() + "/books.db",
		DBConnectAttempts: 2,
	}

	gdb, err := ConnectWithRetry(cfg)

	assert.Nil(t, gdb)
	assert.ErrorContains(t, err, "could not connect to db after 2 attempts")
}
