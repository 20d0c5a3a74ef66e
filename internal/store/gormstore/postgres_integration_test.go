//go:build integration

package gormstore

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/reach-summit/summit-api/internal/database"
)

func TestStore_Postgres(t *testing.T) {
	pool, err := dockertest.NewPool("")
	require.NoError(t, err, "could not construct pool")
	require.NoError(t, pool.Client.Ping(), "could not connect to docker")

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=summit",
			"POSTGRES_PASSWORD=secret",
			"POSTGRES_DB=summit",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err, "could not start postgres")
	t.Cleanup(func() { _ = pool.Purge(resource) })
	_ = resource.Expire(120)

	dsn := fmt.Sprintf("postgres://summit:secret@%s/summit?sslmode=disable", resource.GetHostPort("5432/tcp"))

	var db *gorm.DB
	pool.MaxWait = 60 * time.Second
	err = pool.Retry(func() error {
		var openErr error
		db, openErr = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if openErr != nil {
			return openErr
		}
		sqlDB, openErr := db.DB()
		if openErr != nil {
			return openErr
		}
		return sqlDB.Ping()
	})
	require.NoError(t, err, "could not connect to postgres")
	require.NoError(t, database.Migrate(db))

	s := New(db)
	ctx := context.Background()
	base := time.Now().UTC().Truncate(time.Microsecond)

	require.NoError(t, s.InsertIndividual(ctx, individual("old", base)))
	require.NoError(t, s.InsertIndividual(ctx, individual("new", base.Add(time.Second))))

	got, err := s.ListIndividuals(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "new", got[0].ID)
	require.Equal(t, []string{"day1", "day2"}, got[0].DayPass)
	require.NoError(t, s.Ping(ctx))
}
