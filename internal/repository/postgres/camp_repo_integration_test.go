//go:build integration

package postgres_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"corecodecamp/internal/domain"
	repo "corecodecamp/internal/repository/postgres"
)

func TestCampRepository_Postgres(t *testing.T) {
	ctx := context.Background()

	pgContainer, err := postgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15.3-alpine"),
		postgres.WithInitScripts(filepath.Join("..", "..", "..", "db", "schema.sql")),
		postgres.WithDatabase("codecamp"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Fatalf("failed to terminate pgContainer: %s", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := sql.Open("postgres", connStr)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	camps := repo.NewCampRepository(db)
	start := time.Date(2018, 10, 18, 0, 0, 0, 0, time.UTC)
	camp := domain.NewCamp("ATL2018", "Atlanta Code Camp", "The best code camp", start, start.AddDate(0, 0, 1),
		domain.Location{VenueName: "Atlanta Convention Center", CityTown: "Atlanta"})

	t.Run("create and get by moniker", func(t *testing.T) {
		require.NoError(t, camps.Create(ctx, camp))
		assert.NotZero(t, camp.ID)

		got, err := camps.GetByMoniker(ctx, "ATL2018")
		require.NoError(t, err)
		assert.Equal(t, camp.Name, got.Name)
		assert.Equal(t, "Atlanta Convention Center", got.Location.VenueName)
		assert.True(t, got.StartDate.Equal(start))
	})

	t.Run("unique constraint rejects duplicate moniker", func(t *testing.T) {
		dup := domain.NewCamp("ATL2018", "Other", "", start, start, domain.Location{})
		assert.ErrorIs(t, camps.Create(ctx, dup), domain.ErrMonikerTaken)
	})

	t.Run("search by event date covers the whole range", func(t *testing.T) {
		got, err := camps.ListByEventDate(ctx, start.AddDate(0, 0, 1))
		require.NoError(t, err)
		require.Len(t, got, 1)

		got, err = camps.ListByEventDate(ctx, start.AddDate(0, 0, 2))
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("camp with talks cannot be deleted", func(t *testing.T) {
		_, err := db.ExecContext(ctx, `INSERT INTO speakers (first_name, last_name) VALUES ('Shawn', 'Wildermuth')`)
		require.NoError(t, err)
		_, err = db.ExecContext(ctx, `INSERT INTO talks (camp_id, speaker_id, title) VALUES ($1, 1, 'Intro to Go')`, camp.ID)
		require.NoError(t, err)

		talks, err := camps.ListTalksByCampIDs(ctx, []int64{camp.ID})
		require.NoError(t, err)
		require.Len(t, talks, 1)
		require.NotNil(t, talks[0].Speaker)
		assert.Equal(t, "Shawn Wildermuth", talks[0].Speaker.FullName())

		assert.ErrorIs(t, camps.Delete(ctx, camp.ID), domain.ErrCampHasTalks)
	})

	t.Run("delete without talks", func(t *testing.T) {
		other := domain.NewCamp("SEA2019", "Seattle Code Camp", "", start, start, domain.Location{})
		require.NoError(t, camps.Create(ctx, other))
		require.NoError(t, camps.Delete(ctx, other.ID))
		assert.ErrorIs(t, camps.Delete(ctx, other.ID), domain.ErrNoChanges)

		_, err := camps.GetByMoniker(ctx, "SEA2019")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
