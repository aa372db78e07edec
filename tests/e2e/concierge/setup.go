//go:build e2e

package concierge

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"dining-concierge/cmd/bootstrap"
	"dining-concierge/cmd/bootstrap/components"
	"dining-concierge/internal/domain/restaurant"
	"dining-concierge/internal/handler/middleware"
	"dining-concierge/internal/infra/db"
	"dining-concierge/internal/pkg/config"
	"dining-concierge/internal/usecase/commands"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

var (
	postgresContainerOnce sync.Once
	postgresTestContainer testcontainers.Container

	redisContainerOnce sync.Once
	redisTestContainer testcontainers.Container

	testUser     = "test"
	testPassword = "testpass"
)

type ContainerInfo struct {
	Host string
	Port nat.Port
}

const restaurantsSchema = `
CREATE TABLE IF NOT EXISTS restaurants (
	id       TEXT PRIMARY KEY,
	name     TEXT NOT NULL,
	category TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_restaurants_category ON restaurants (lower(category));
`

// SentMessage is one SMS captured by the fake gateway.
type SentMessage struct {
	To   string
	From string
	Body string
}

// SMSGateway is a Twilio-shaped test double that records every message.
type SMSGateway struct {
	server *httptest.Server

	mu       sync.Mutex
	messages []SentMessage
}

func NewSMSGateway(t *testing.T) *SMSGateway {
	g := &SMSGateway{}
	g.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/Messages.json") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err := r.ParseForm(); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		g.mu.Lock()
		g.messages = append(g.messages, SentMessage{
			To:   r.PostFormValue("To"),
			From: r.PostFormValue("From"),
			Body: r.PostFormValue("Body"),
		})
		g.mu.Unlock()
		w.WriteHeader(http.StatusCreated)
	}))
	t.Cleanup(g.server.Close)
	return g
}

func (g *SMSGateway) URL() string {
	return g.server.URL
}

func (g *SMSGateway) Messages() []SentMessage {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]SentMessage, len(g.messages))
	copy(out, g.messages)
	return out
}

func (g *SMSGateway) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.messages = nil
}

func setupE2EEnvironment(t *testing.T, gateway *SMSGateway) (*pgxpool.Pool, *redis.Client, *gin.Engine, commands.FulfillmentCommands, config.Config) {
	postgresInfo, redisInfo := startContainers(t)

	pool, dbConfig := prepareDatabase(t, postgresInfo)
	rdb := prepareRedis(t, redisInfo)

	cfg := createTestConfig(dbConfig, redisInfo, gateway.URL())
	router, fulfillment, app := buildE2EApp(pool, rdb, cfg)
	require.NotNil(t, router, "failed to set up router")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("failed to stop fx application", "error", err.Error())
		}
	})

	return pool, rdb, router, fulfillment, cfg
}

func startContainers(t *testing.T) (ContainerInfo, ContainerInfo) {
	gin.SetMode(gin.TestMode)
	startPostgreSQLContainerOnce(t)
	startRedisContainerOnce(t)

	postgresInfo, err := getContainerHostPort(postgresTestContainer, "5432/tcp")
	require.NoError(t, err, "failed to read postgres container info")

	redisInfo, err := getContainerHostPort(redisTestContainer, "6379/tcp")
	require.NoError(t, err, "failed to read redis container info")

	return postgresInfo, redisInfo
}

// prepareDatabase creates a fresh database per test process so parallel
// packages never share state.
func prepareDatabase(t *testing.T, postgresInfo ContainerInfo) (*pgxpool.Pool, config.DBConfig) {
	dbName := "testdb_" + strings.ReplaceAll(uuid.New().String(), "-", "")

	adminDSN := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
		testUser, testPassword, postgresInfo.Host, postgresInfo.Port.Port())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	adminPool, err := pgxpool.New(ctx, adminDSN)
	require.NoError(t, err, "failed to open admin connection")
	defer adminPool.Close()

	_, err = adminPool.Exec(ctx, "CREATE DATABASE "+dbName)
	require.NoError(t, err, "failed to create test database")

	t.Cleanup(func() {
		cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cleanupCancel()

		cleanupPool, err := pgxpool.New(cleanupCtx, adminDSN)
		if err != nil {
			slog.Warn("failed to open cleanup connection", "database", dbName, "error", err.Error())
			return
		}
		defer cleanupPool.Close()

		if _, err := cleanupPool.Exec(cleanupCtx, "DROP DATABASE IF EXISTS "+dbName); err != nil {
			slog.Warn("failed to drop test database", "database", dbName, "error", err.Error())
		}
	})

	dbConfig := config.DBConfig{
		Host:     postgresInfo.Host,
		Port:     postgresInfo.Port.Port(),
		User:     testUser,
		Password: testPassword,
		DBName:   dbName,
		SSLMode:  "disable",
	}

	pool, _, err := db.Connect(dbConfig)
	require.NoError(t, err, "failed to connect to test database")

	_, err = pool.Exec(ctx, restaurantsSchema)
	require.NoError(t, err, "failed to create schema")

	return pool, dbConfig
}

// prepareRedis flushes the shared container and hands back a dedicated client.
func prepareRedis(t *testing.T, redisInfo ContainerInfo) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr: redisInfo.Host + ":" + redisInfo.Port.Port(),
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, rdb.Ping(ctx).Err(), "failed to ping redis container")
	require.NoError(t, rdb.FlushAll(ctx).Err(), "failed to flush redis")

	t.Cleanup(func() {
		_ = rdb.Close()
	})
	return rdb
}

func buildE2EApp(pool *pgxpool.Pool, rdb *redis.Client, cfg config.Config) (*gin.Engine, commands.FulfillmentCommands, *fx.App) {
	var router *gin.Engine
	var fulfillment commands.FulfillmentCommands

	app := fx.New(
		fx.Provide(
			func() *pgxpool.Pool { return pool },
			func() *redis.Client { return rdb },
			func() config.Config { return cfg },
			func() *middleware.Logger { return middleware.NewLogger(cfg.Log) },
			func(logger *middleware.Logger) *slog.Logger { return logger.GetSlogLogger() },
			func() *gin.Engine { return gin.New() },
		),
		bootstrap.JWTModule,
		components.InfraModule,
		components.UseCaseModule,
		components.HandlerModule,

		fx.Populate(&router, &fulfillment),

		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(fmt.Sprintf("failed to start fx app: %v", err))
	}

	return router, fulfillment, app
}

func createTestConfig(dbConfig config.DBConfig, redisInfo ContainerInfo, smsBaseURL string) config.Config {
	cfg := config.NewTestConfig()
	cfg.DB = dbConfig
	cfg.Redis.Addr = redisInfo.Host + ":" + redisInfo.Port.Port()
	cfg.SMS.BaseURL = smsBaseURL
	return cfg
}

func startGenericContainer(req testcontainers.ContainerRequest, timeoutSec int) (testcontainers.Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeoutSec)*time.Second)
	defer cancel()

	return testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
}

func startPostgreSQLContainerOnce(t *testing.T) {
	postgresContainerOnce.Do(func() {
		req := testcontainers.ContainerRequest{
			Image:        "postgres:17",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     testUser,
				"POSTGRES_PASSWORD": testPassword,
				"POSTGRES_DB":       "postgres",
			},
			Tmpfs: map[string]string{
				"/var/lib/postgresql/data": "rw,size=256m",
			},
			Cmd: []string{
				"postgres",
				"-c", "fsync=off",
				"-c", "synchronous_commit=off",
				"-c", "log_statement=none",
			},
			WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
				return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
					testUser, testPassword, host, port.Port())
			}).WithStartupTimeout(60 * time.Second),
			Labels: map[string]string{"purpose": "e2e-tests"},
		}

		var err error
		postgresTestContainer, err = startGenericContainer(req, 180)
		require.NoError(t, err, "failed to start postgres container")

		t.Cleanup(func() {
			if postgresTestContainer != nil {
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				if err := postgresTestContainer.Terminate(ctx); err != nil {
					slog.Warn("failed to terminate postgres container", "error", err.Error())
				}
			}
		})
	})
}

func startRedisContainerOnce(t *testing.T) {
	redisContainerOnce.Do(func() {
		req := testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
			Labels:       map[string]string{"purpose": "e2e-tests"},
		}

		var err error
		redisTestContainer, err = startGenericContainer(req, 120)
		require.NoError(t, err, "failed to start redis container")

		t.Cleanup(func() {
			if redisTestContainer != nil {
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				if err := redisTestContainer.Terminate(ctx); err != nil {
					slog.Warn("failed to terminate redis container", "error", err.Error())
				}
			}
		})
	})
}

func getContainerHostPort(c testcontainers.Container, port string) (ContainerInfo, error) {
	ctx := context.Background()
	mappedPort, err := c.MappedPort(ctx, nat.Port(port))
	if err != nil {
		return ContainerInfo{}, err
	}
	host, err := c.Host(ctx)
	if err != nil {
		return ContainerInfo{}, err
	}
	return ContainerInfo{Host: host, Port: mappedPort}, nil
}

// SeedRestaurant writes one restaurant into both collaborators: the search
// index row and the key-value document.
func SeedRestaurant(t *testing.T, pool *pgxpool.Pool, rdb *redis.Client, record restaurant.Record) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx,
		`INSERT INTO restaurants (id, name, category) VALUES ($1, $2, $3)
		 ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, category = EXCLUDED.category`,
		record.ID, record.Name, record.Category,
	)
	require.NoError(t, err, "failed to seed search index row")

	doc, err := json.Marshal(record)
	require.NoError(t, err, "failed to encode restaurant document")
	require.NoError(t, rdb.Set(ctx, "restaurant:"+record.ID, doc, 0).Err(), "failed to seed restaurant document")
}

// SharedSuite wires the full application once per suite.
type SharedSuite struct {
	suite.Suite
	Router      *gin.Engine
	DB          *pgxpool.Pool
	Redis       *redis.Client
	Fulfillment commands.FulfillmentCommands
	Gateway     *SMSGateway
	Config      config.Config
}

func (s *SharedSuite) SetupSuite() {
	s.Gateway = NewSMSGateway(s.T())
	db, rdb, router, fulfillment, cfg := setupE2EEnvironment(s.T(), s.Gateway)
	s.DB = db
	s.Redis = rdb
	s.Router = router
	s.Fulfillment = fulfillment
	s.Config = cfg
}

func (s *SharedSuite) SetupTest() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := s.DB.Exec(ctx, "TRUNCATE restaurants")
	require.NoError(s.T(), err, "failed to reset restaurants table")
	require.NoError(s.T(), s.Redis.FlushAll(ctx).Err(), "failed to reset redis")

	// the flush dropped the stream and its consumer group; put the group back
	// so the queue, which creates it only once, keeps working
	err = s.Redis.XGroupCreateMkStream(ctx, s.Config.Queue.Stream, s.Config.Queue.Group, "0").Err()
	if err != nil && !strings.Contains(err.Error(), "BUSYGROUP") {
		require.NoError(s.T(), err, "failed to recreate consumer group")
	}

	s.Gateway.Reset()
}
