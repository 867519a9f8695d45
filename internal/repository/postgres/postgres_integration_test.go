package postgres

import (
	"context"
	"database/sql"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/GEK100/blocker-management-system-2024-sub001/config"
	"github.com/GEK100/blocker-management-system-2024-sub001/internal/entities"

	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRepositoryIntegration(t *testing.T) {
	ctx := context.Background()

	cfg, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	repo := New(ctx, testLogger(t), cfg)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })

	seedRoster(t, ctx, repo)

	created, err := repo.CreateBlocker(ctx, entities.Blocker{
		Category:        "Electrical",
		Priority:        entities.PriorityHigh,
		ProjectID:       "p1",
		AssignedActorID: "a1",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Equal(t, entities.StatusPending, created.Status)
	require.Len(t, created.StatusHistory, 1)

	_, err = repo.CreateBlocker(ctx, entities.Blocker{ID: created.ID, ProjectID: "p1"})
	require.ErrorIs(t, err, entities.ErrBlockerExists)

	assigned, err := repo.UpdateBlockerStatus(ctx, created.ID, entities.StatusAssigned, time.Now().UTC())
	require.NoError(t, err)
	require.Equal(t, entities.StatusAssigned, assigned.Status)
	require.Nil(t, assigned.CompletedAt)

	done, err := repo.UpdateBlockerStatus(ctx, created.ID, entities.StatusVerifiedComplete, time.Now().UTC())
	require.NoError(t, err)
	require.Equal(t, entities.StatusVerifiedComplete, done.Status)
	require.NotNil(t, done.CompletedAt)
	require.Len(t, done.StatusHistory, 3)
	for i := 0; i < len(done.StatusHistory)-1; i++ {
		require.False(t, done.StatusHistory[i].At.After(done.StatusHistory[i+1].At))
	}

	_, err = repo.UpdateBlockerStatus(ctx, "ghost", entities.StatusAssigned, time.Now().UTC())
	require.ErrorIs(t, err, entities.ErrBlockerNotFound)
}

func TestRepositoryListFilters(t *testing.T) {
	ctx := context.Background()

	cfg, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	repo := New(ctx, testLogger(t), cfg)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })

	seedRoster(t, ctx, repo)

	now := time.Now().UTC()
	_, err := repo.CreateBlocker(ctx, entities.Blocker{ID: "b-old", ProjectID: "p1", CreatedAt: now.AddDate(0, 0, -60)})
	require.NoError(t, err)
	_, err = repo.CreateBlocker(ctx, entities.Blocker{ID: "b-new", ProjectID: "p1", CreatedAt: now.AddDate(0, 0, -2)})
	require.NoError(t, err)
	_, err = repo.CreateBlocker(ctx, entities.Blocker{ID: "b-other", ProjectID: "p2", CreatedAt: now.AddDate(0, 0, -2)})
	require.NoError(t, err)

	all, err := repo.ListBlockers(ctx, entities.BlockerFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)

	from := now.AddDate(0, 0, -30)
	recent, err := repo.ListBlockers(ctx, entities.BlockerFilter{ProjectID: "p1", From: &from})
	require.NoError(t, err)
	require.Len(t, recent, 1)
	require.Equal(t, "b-new", recent[0].ID)

	actors, err := repo.ListActors(ctx)
	require.NoError(t, err)
	require.Len(t, actors, 2)

	project, err := repo.GetProject(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, "North Wing", project.Location)

	_, err = repo.GetProject(ctx, "ghost")
	require.ErrorIs(t, err, entities.ErrProjectNotFound)
}

func seedRoster(t *testing.T, ctx context.Context, repo *Postgres) {
	t.Helper()

	_, err := repo.db.Exec(ctx, `INSERT INTO projects (id, name, location) VALUES
		('p1', 'Tower A', 'North Wing'),
		('p2', 'Tower B', 'South Wing')`)
	require.NoError(t, err)

	_, err = repo.db.Exec(ctx, `INSERT INTO actors (id, display_name, role, team_id) VALUES
		('a1', 'Alice', 'worker', 't1'),
		('a2', 'Bob', 'contractor', 't1')`)
	require.NoError(t, err)
}

func setupPostgres(t *testing.T) (*config.Config, func()) {
	t.Helper()

	pool, err := dockertest.NewPool("")
	require.NoError(t, err)

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_PASSWORD=postgres",
			"POSTGRES_USER=postgres",
			"POSTGRES_DB=blocker_management_db",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
	})
	require.NoError(t, err)

	hostPort := resource.GetPort("5432/tcp")

	port, err := strconv.Atoi(hostPort)
	require.NoError(t, err)
	migrationsDir, err := filepath.Abs(filepath.Join("..", "..", "..", "db", "migrations"))
	require.NoError(t, err)
	require.DirExists(t, migrationsDir)

	cfg := &config.Config{
		Server: config.ServerConfig{Host: "0.0.0.0", Port: 8080, ShutdownTimeout: 5 * time.Second},
		HTTP:   config.HTTPConfig{RequestTimeout: 5 * time.Second},
		Postgres: config.PostgresConfig{
			Host:           "localhost",
			Port:           port,
			User:           "postgres",
			Password:       "postgres",
			DBName:         "blocker_management_db",
			SSLMode:        "disable",
			MigrationsDir:  migrationsDir,
			QueryTimeout:   10 * time.Second,
			MigrateTimeout: 20 * time.Second,
			MaxConns:       4,
			MinConns:       1,
		},
	}

	require.NoError(t, pool.Retry(func() error {
		db, err := sql.Open("postgres", "host=localhost port="+hostPort+" user=postgres password=postgres dbname=blocker_management_db sslmode=disable")
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()
		return db.Ping()
	}))

	cleanup := func() {
		_ = pool.Purge(resource)
	}

	return cfg, cleanup
}

func testLogger(t *testing.T) *zap.SugaredLogger {
	t.Helper()

	l, _ := zap.NewDevelopment()
	t.Cleanup(func() { _ = l.Sync() })
	return l.Sugar()
}
