package db

import (
	"context"
	"testing"

	"donorlink-web/internal/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDSN(t *testing.T) {
	cfg := &config.Config{
		DBHost:     "localhost",
		DBUser:     "test_user",
		DBPassword: "test_password",
		DBName:     "test_db",
		DBPort:     "5432",
	}

	expected := "host=localhost user=test_user password=test_password dbname=test_db port=5432 sslmode=disable"
	assert.Equal(t, expected, buildDSN(cfg))
}

func TestNewDatabase_ConnectionFailure(t *testing.T) {
	cfg := &config.Config{
		DBHost: "127.0.0.1",
		DBPort: "1",
	}

	db, err := NewDatabase(cfg)

	assert.Error(t, err)
	assert.Nil(t, db)
	assert.Contains(t, err.Error(), "failed to ping DB")
}

func TestNewDatabase_InvalidDriver(t *testing.T) {
	db, err := newDatabaseWithDriver(&config.Config{}, "invalid_driver_name")

	assert.Error(t, err)
	assert.Nil(t, db)
	assert.Contains(t, err.Error(), "failed to connect to DB")
}

func TestNewRedis(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mr := miniredis.RunT(t)

		client, err := NewRedis(ctx, "redis://"+mr.Addr()+"/0")
		require.NoError(t, err)
		defer client.Close()

		assert.NoError(t, client.Set(ctx, "k", "v", 0).Err())
		assert.True(t, mr.Exists("k"))
	})

	t.Run("BadURL", func(t *testing.T) {
		_, err := NewRedis(ctx, "http://nope")
		assert.ErrorContains(t, err, "redis url")
	})

	t.Run("Unreachable", func(t *testing.T) {
		_, err := NewRedis(ctx, "redis://127.0.0.1:1/0")
		assert.ErrorContains(t, err, "failed to ping redis")
	})
}
