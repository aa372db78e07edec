package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (business rules, timeouts), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server ServerConfig
	DB     DBConfig
	Redis  RedisConfig
	Queue  QueueConfig
	Dialog DialogConfig
	SMS    SMSConfig
	Worker WorkerConfig
	CORS   CORSConfig
	Log    LogConfig
	Auth   AuthConfig
}

type ServerConfig struct {
	Port    string `envconfig:"PORT" required:"true"`
	Enabled bool   `envconfig:"SERVER_ENABLED" default:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type QueueConfig struct {
	Stream            string        `envconfig:"QUEUE_STREAM" default:"reservation-requests"`
	Group             string        `envconfig:"QUEUE_GROUP" default:"fulfillment"`
	Consumer          string        `envconfig:"QUEUE_CONSUMER" default:""`
	VisibilityTimeout time.Duration `envconfig:"QUEUE_VISIBILITY_TIMEOUT" default:"5m"`
	EnqueueTimeout    time.Duration `envconfig:"QUEUE_ENQUEUE_TIMEOUT" default:"3s"`
	ReceiveBlock      time.Duration `envconfig:"QUEUE_RECEIVE_BLOCK" default:"2s"`
}

// DialogConfig carries the business rules the slot validator enforces. They are
// configuration rather than literals because they are the most likely points of
// future variation.
type DialogConfig struct {
	Cuisines       []string `envconfig:"DIALOG_CUISINES" default:"chinese,american,mexican,korean,japanese,italian,french"`
	PopularCuisine string   `envconfig:"DIALOG_POPULAR_CUISINE" default:"chinese"`
	Location       string   `envconfig:"DIALOG_LOCATION" default:"manhattan"`
	OpenHour       int      `envconfig:"DIALOG_OPEN_HOUR" default:"10"`
	CloseHour      int      `envconfig:"DIALOG_CLOSE_HOUR" default:"16"`
	TimeZone       string   `envconfig:"DIALOG_TIMEZONE" default:"America/New_York"`
}

type SMSConfig struct {
	BaseURL   string        `envconfig:"SMS_BASE_URL" default:"https://api.twilio.com"`
	Account   string        `envconfig:"SMS_ACCOUNT" required:"true"`
	AuthToken string        `envconfig:"SMS_AUTH_TOKEN" required:"true"`
	From      string        `envconfig:"SMS_FROM" required:"true"`
	Timeout   time.Duration `envconfig:"SMS_TIMEOUT" default:"5s"`
}

type WorkerConfig struct {
	Enabled      bool          `envconfig:"WORKER_ENABLED" default:"true"`
	PollInterval time.Duration `envconfig:"WORKER_POLL_INTERVAL" default:"10s"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

type AuthConfig struct {
	Secret   string        `envconfig:"JWT_SECRET" required:"true"`
	Duration time.Duration `envconfig:"JWT_DURATION" default:"24h"`
	Disabled bool          `envconfig:"AUTH_DISABLED" default:"false"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func LoadConfig() (Config, error) {
	// Load .env file if it exists (doesn't error if missing)
	_ = godotenv.Load()

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:    "8889", // Test port
			Enabled: true,
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
		},
		Redis: RedisConfig{
			Addr: "localhost:16380", // Test Redis port
		},
		Queue: QueueConfig{
			Stream:            "reservation-requests-test",
			Group:             "fulfillment",
			Consumer:          "test-worker",
			VisibilityTimeout: time.Minute,
			EnqueueTimeout:    3 * time.Second,
			ReceiveBlock:      100 * time.Millisecond,
		},
		Dialog: DialogConfig{
			Cuisines:       []string{"chinese", "american", "mexican", "korean", "japanese", "italian", "french"},
			PopularCuisine: "chinese",
			Location:       "manhattan",
			OpenHour:       10,
			CloseHour:      16,
			TimeZone:       "America/New_York",
		},
		SMS: SMSConfig{
			BaseURL:   "http://localhost:18089",
			Account:   "test-account",
			AuthToken: "test-token",
			From:      "+15550000001",
			Timeout:   time.Second,
		},
		Worker: WorkerConfig{
			Enabled:      false,
			PollInterval: 100 * time.Millisecond,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		Auth: AuthConfig{
			Secret:   "test-secret",
			Duration: time.Hour,
			Disabled: true,
		},
	}
}
