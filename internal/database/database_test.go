package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reach-summit/summit-api/internal/config"
	"github.com/reach-summit/summit-api/internal/models"
)

func TestDialector(t *testing.T) {
	d, err := Dialector(config.DriverSQLite, ":memory:")
	require.NoError(t, err)
	assert.Equal(t, "sqlite", d.Name())

	d, err = Dialector(config.DriverPostgres, "postgres://localhost/summit")
	require.NoError(t, err)
	assert.Equal(t, "postgres", d.Name())

	_, err = Dialector("mysql", "")
	assert.Error(t, err)
}

func TestConnect_MigratesSchema(t *testing.T) {
	cfg := &config.Config{
		DatabaseDriver: config.DriverSQLite,
		DatabaseDSN:    filepath.Join(t.TempDir(), "summit.db"),
	}

	db, err := Connect(cfg)
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	assert.True(t, db.Migrator().HasTable(&models.IndividualRegistration{}))
	assert.True(t, db.Migrator().HasTable(&models.GroupRegistration{}))
	assert.True(t, db.Migrator().HasIndex(&models.IndividualRegistration{}, "CreatedAt"))

	// Migrating an existing schema is a no-op.
	assert.NoError(t, Migrate(db))
}
