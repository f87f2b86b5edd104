package fetchlog_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"
	"ulascansenturk/weather-panel/internal/db/fetchlog"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	pgTestContainers "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	dbName     = "test_panel_database"
	dbUser     = "test_user"
	dbPassword = "test_password"
)

func init() {
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}

func setupPostgres(t *testing.T) *gorm.DB {
	if testing.Short() {
		t.Skip("skipping postgres container in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	log.Info().Msg("Setting up new PostgreSQL container")

	ctx := context.Background()

	postgresContainer, err := pgTestContainers.Run(ctx,
		"postgres:13.3",
		pgTestContainers.WithDatabase(dbName),
		pgTestContainers.WithUsername(dbUser),
		pgTestContainers.WithPassword(dbPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		log.Info().Msg("Terminating PostgreSQL container")
		if err := postgresContainer.Terminate(context.Background()); err != nil {
			log.Error().Err(err).Msg("Failed to terminate PostgreSQL container")
		}
	})

	host, err := postgresContainer.Host(ctx)
	require.NoError(t, err)

	port, err := postgresContainer.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port.Port(), dbUser, dbPassword, dbName,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	log.Info().Msgf("Connected to database: %s on %s:%s", dbName, host, port.Port())

	require.NoError(t, db.AutoMigrate(&fetchlog.FetchLog{}))

	return db
}

func TestFetchLogPostgres(t *testing.T) {
	db := setupPostgres(t)
	repo := fetchlog.NewRepository(db)
	ctx := context.Background()

	temperature := 15.4
	require.NoError(t, repo.LogFetch(ctx, fetchlog.FetchLog{
		CycleID:     "f0d1a7c2-7f43-4d0e-a1f4-000000000001",
		QueryKind:   "city",
		Query:       "London",
		Outcome:     "success",
		Temperature: &temperature,
	}))
	require.NoError(t, repo.LogFetch(ctx, fetchlog.FetchLog{
		CycleID:      "f0d1a7c2-7f43-4d0e-a1f4-000000000002",
		QueryKind:    "city",
		Query:        "London",
		Outcome:      "http_status_error",
		StatusCode:   401,
		ErrorMessage: "Invalid API key. Please check your configuration.",
	}))

	var entries []fetchlog.FetchLog
	require.NoError(t, db.Where("query = ?", "London").Order("id ASC").Find(&entries).Error)
	require.Len(t, entries, 2)

	assert.Equal(t, "success", entries[0].Outcome)
	require.NotNil(t, entries[0].Temperature)
	assert.Equal(t, 15.4, *entries[0].Temperature)
	assert.False(t, entries[0].CreatedAt.IsZero())

	assert.Equal(t, 401, entries[1].StatusCode)
	assert.Nil(t, entries[1].Temperature)

	err := repo.LogFetch(ctx, fetchlog.FetchLog{
		CycleID: "f0d1a7c2-7f43-4d0e-a1f4-000000000001",
		Query:   "Paris",
		Outcome: "success",
	})
	assert.Error(t, err, "cycle ids are unique")
}
