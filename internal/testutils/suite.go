package testutils

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"testing"
	"time"

	"planner-backend/internal/config"
	"planner-backend/internal/database"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver for the readiness ping
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

const (
	pgUser     = "planner"
	pgPassword = "planner-test"
	pgDatabase = "planner_test"
)

// One Postgres container serves every suite of a test binary.
var (
	sharedOnce     sync.Once
	sharedInitErr  error
	sharedPool     *dockertest.Pool
	sharedResource *dockertest.Resource
	sharedDB       *gorm.DB
	sharedConfig   *config.Config
)

// planTables lists the schema's tables children first, the order they are truncated in
var planTables = []string{
	"task_resource_assignments",
	"phase_resource_assignments",
	"tasks",
	"phases",
	"resources",
	"milestones",
	"holidays",
	"project_members",
	"projects",
}

// BaseTestSuite gives a suite access to the shared database
type BaseTestSuite struct {
	suite.Suite
	DB     *gorm.DB
	Config *config.Config
}

// SetupTestSuite starts the shared Postgres container on first use and
// returns a wrapper bound to it.
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	sharedOnce.Do(func() { sharedInitErr = startPostgres() })
	if sharedInitErr != nil {
		t.Fatalf("failed to initialize shared test container: %v", sharedInitErr)
	}
	return &BaseTestSuite{DB: sharedDB, Config: sharedConfig}
}

// RunMain runs the tests of one package and purges the container afterwards,
// also when the run is interrupted. Call it from TestMain.
func RunMain(m *testing.M, name string) int {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-signals
		log.Printf("%s tests interrupted, removing test containers", name)
		CleanupSharedContainer()
		os.Exit(1)
	}()

	log.Printf("running %s tests", name)
	code := m.Run()
	CleanupSharedContainer()
	return code
}

// CleanupSharedContainer closes the pool and removes the container
func CleanupSharedContainer() {
	if sharedDB != nil {
		if sqlDB, err := sharedDB.DB(); err == nil {
			_ = sqlDB.Close()
		}
		sharedDB = nil
	}
	if sharedPool != nil && sharedResource != nil {
		if err := sharedPool.Purge(sharedResource); err != nil {
			log.Printf("WARN: could not purge %s: %v", sharedResource.Container.Name, err)
		}
		sharedResource = nil
		sharedPool = nil
	}
}

func (s *BaseTestSuite) SetupTest()    { s.CleanTestDB() }
func (s *BaseTestSuite) TearDownTest() { s.CleanTestDB() }

// TeardownTestSuite empties the tables; the container lives until RunMain ends.
func (s *BaseTestSuite) TeardownTestSuite() { s.CleanTestDB() }

// CleanTestDB truncates every plan table
func (s *BaseTestSuite) CleanTestDB() {
	if s.DB == nil {
		return
	}
	m := s.DB.Migrator()
	for _, table := range planTables {
		if m.HasTable(table) {
			s.DB.Exec(`TRUNCATE TABLE "` + table + `" CASCADE`)
		}
	}
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
			"POSTGRES_USER=" + pgUser,
			"POSTGRES_PASSWORD=" + pgPassword,
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

	port := resource.GetPort("5432/tcp")
	dsn := fmt.Sprintf("postgres://%s:%s@127.0.0.1:%s/%s?sslmode=disable", pgUser, pgPassword, port, pgDatabase)

	pool.MaxWait = 2 * time.Minute
	err = pool.Retry(func() error {
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
	})
	if err != nil {
		return fmt.Errorf("could not connect to docker database: %w", err)
	}

	sharedConfig = &config.Config{
		Environment:    "test",
		Port:           "7008",
		LogLevel:       "debug",
		DatabaseURL:    dsn,
		JWTSecret:      "test-secret",
		SyncTimeoutSec: 10,
		AuditSink:      config.AuditSinkNone,
	}
	log.Printf("shared postgres ready on port %s", port)
	return nil
}
