package testutil

import (
	"context"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/team-2073-eagleforce/scouting-backend-2025/internal/api"
	"github.com/team-2073-eagleforce/scouting-backend-2025/internal/config"
	"github.com/team-2073-eagleforce/scouting-backend-2025/internal/picklist"
	"github.com/team-2073-eagleforce/scouting-backend-2025/internal/repository"
	repoPostgres "github.com/team-2073-eagleforce/scouting-backend-2025/internal/repository/postgres"
	"github.com/team-2073-eagleforce/scouting-backend-2025/internal/service"
	"github.com/team-2073-eagleforce/scouting-backend-2025/internal/tba"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// TestDB manages a testcontainers PostgreSQL instance
type TestDB struct {
	Container testcontainers.Container
	DB        *gorm.DB
	DSN       string
}

// NewTestDB creates a new PostgreSQL testcontainer and returns a connection
func NewTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	container, err := tcPostgres.Run(ctx,
		"postgres:15-alpine",
		tcPostgres.WithDatabase("test_scouting"),
		tcPostgres.WithUsername("test"),
		tcPostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	db, err := gorm.Open(gormPostgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}

	if err := repoPostgres.Migrate(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	testDB := &TestDB{
		Container: container,
		DB:        db,
		DSN:       dsn,
	}

	t.Cleanup(func() {
		testDB.Cleanup()
	})

	return testDB
}

// Cleanup terminates the container
func (tdb *TestDB) Cleanup() {
	if tdb.Container != nil {
		ctx := context.Background()
		tdb.Container.Terminate(ctx)
	}
}

// Truncate clears all tables for test isolation
func (tdb *TestDB) Truncate(t *testing.T) {
	t.Helper()

	tables := []string{
		"pick_list_entries",
		"human_player_records",
		"match_records",
		"teams",
	}

	for _, table := range tables {
		if err := tdb.DB.Exec(fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table)).Error; err != nil {
			t.Logf("warning: failed to truncate %s: %v", table, err)
		}
	}
}

// TestConfig returns a configuration suitable for testing
func TestConfig(t *testing.T) *config.Config {
	return &config.Config{
		Port:           "0", // Random port
		Environment:    "test",
		PickListDir:    t.TempDir(),
		AllowedOrigins: []string{"*"},
	}
}

// StubSchedule replaces the TBA client in tests.
type StubSchedule struct {
	Teams   []tba.Team
	Matches map[string]*tba.MatchAlliances
}

func (s *StubSchedule) GetEventTeams(ctx context.Context, eventKey string) ([]tba.Team, error) {
	return s.Teams, nil
}

func (s *StubSchedule) GetMatch(ctx context.Context, eventKey, matchID string) (*tba.MatchAlliances, error) {
	match, ok := s.Matches[matchID]
	if !ok {
		return nil, fmt.Errorf("no stubbed match %s", matchID)
	}
	return match, nil
}

// TestServer holds all components for integration testing
type TestServer struct {
	Server   *httptest.Server
	DB       *TestDB
	Repos    *repository.Repositories
	Services *service.Services
	Files    *picklist.FileStore
	Schedule *StubSchedule
	Config   *config.Config
}

// NewTestServer creates a complete test server with all dependencies
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	testDB := NewTestDB(t)
	cfg := TestConfig(t)

	repos := repoPostgres.NewRepositories(testDB.DB)

	files, err := picklist.NewFileStore(cfg.PickListDir)
	if err != nil {
		t.Fatalf("failed to open pick list store: %v", err)
	}

	schedule := &StubSchedule{Matches: map[string]*tba.MatchAlliances{}}
	services := service.NewServices(repos, files, schedule)
	router := api.NewRouter(services, cfg)

	server := httptest.NewServer(router)

	ts := &TestServer{
		Server:   server,
		DB:       testDB,
		Repos:    repos,
		Services: services,
		Files:    files,
		Schedule: schedule,
		Config:   cfg,
	}

	t.Cleanup(func() {
		server.Close()
	})

	return ts
}

// BaseURL returns the test server's base URL
func (ts *TestServer) BaseURL() string {
	return ts.Server.URL
}

// APIURL returns the full API URL for a given path
func (ts *TestServer) APIURL(path string) string {
	return fmt.Sprintf("%s/api/v1%s", ts.Server.URL, path)
}
