package testutils

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"testing"
	"time"

	"translationflow/internal/config"
	"translationflow/internal/database"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver for readiness ping
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

const (
	pgUser     = "testuser"
	pgPassword = "testpass"
	pgDatabase = "translationflow_test"
)

// One Postgres container is shared by every suite in the test binary
var (
	sharedOnce     sync.Once
	sharedInitErr  error
	sharedPool     *dockertest.Pool
	sharedResource *dockertest.Resource
	sharedDB       *gorm.DB
	sharedConfig   *config.Config
)

// PostgresSuite is embedded by integration suites that need a migrated
// database. Tables are truncated before and after every test.
type PostgresSuite struct {
	suite.Suite
	DB     *gorm.DB
	Config *config.Config
}

// SetupSuite starts the shared container on first use
func (s *PostgresSuite) SetupSuite() {
	sharedOnce.Do(func() { sharedInitErr = startPostgres() })
	if sharedInitErr != nil {
		s.T().Fatalf("failed to initialize shared test container: %v", sharedInitErr)
	}
	s.DB = sharedDB
	s.Config = sharedConfig
}

func (s *PostgresSuite) SetupTest()     { TruncateAll(s.DB) }
func (s *PostgresSuite) TearDownTest()  { TruncateAll(s.DB) }
func (s *PostgresSuite) TearDownSuite() { TruncateAll(s.DB) }

// SharedDB returns the migrated test database for tests that do not use a suite
func SharedDB(t *testing.T) *gorm.DB {
	sharedOnce.Do(func() { sharedInitErr = startPostgres() })
	if sharedInitErr != nil {
		t.Fatalf("failed to initialize shared test container: %v", sharedInitErr)
	}
	return sharedDB
}

// TruncateAll empties the application tables, children first
func TruncateAll(db *gorm.DB) {
	if db == nil {
		return
	}
	m := db.Migrator()
	for _, table := range []string{"videos", "projects", "users"} {
		if m.HasTable(table) {
			db.Exec(`TRUNCATE TABLE "` + table + `" CASCADE;`)
		}
	}
}

// CleanupSharedContainer tears down Docker resources when the whole test run
// ends. Packages with integration tests call it from their TestMain.
func CleanupSharedContainer() {
	if sharedDB != nil {
		if sqlDB, err := sharedDB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	if sharedPool != nil && sharedResource != nil {
		log.Printf("Purging Docker container: %s", sharedResource.Container.Name)
		if err := sharedPool.Purge(sharedResource); err != nil {
			log.Printf("WARN: could not purge shared resource: %v", err)
		}
	}
	sharedResource = nil
	sharedPool = nil
	sharedDB = nil
}

func startPostgres() error {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return fmt.Errorf("could not connect to docker: %w", err)
	}
	sharedPool = pool

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_PASSWORD=" + pgPassword,
			"POSTGRES_USER=" + pgUser,
			"POSTGRES_DB=" + pgDatabase,
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return fmt.Errorf("could not start postgres: %w", err)
	}
	sharedResource = resource

	hostPort := resource.GetPort("5432/tcp")
	dsn := fmt.Sprintf("postgres://%s:%s@127.0.0.1:%s/%s?sslmode=disable", pgUser, pgPassword, hostPort, pgDatabase)

	pool.MaxWait = 2 * time.Minute
	if err := pool.Retry(func() error {
		std, err := sql.Open("pgx", dsn)
		if err != nil {
			return err
		}
		defer std.Close()
		if err := std.Ping(); err != nil {
			return err
		}

		gdb, err := database.Initialize(dsn, nil)
		if err != nil {
			return err
		}
		sharedDB = gdb
		return nil
	}); err != nil {
		return fmt.Errorf("could not connect to docker database: %w", err)
	}

	sharedConfig = &config.Config{
		Environment:       "test",
		Port:              "7008",
		LogLevel:          "debug",
		RepositoryBackend: config.BackendPostgres,
		DatabaseURL:       dsn,
		JWTSecret:         "integration-test-secret",
		JWTTTLMinutes:     60,
	}

	log.Printf("Shared Postgres ready on %s", hostPort)
	return nil
}
