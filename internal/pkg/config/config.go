package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, upstream API, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// - optional: Integrations the service degrades without (Redis, Postgres, RabbitMQ, payment keys)
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	App      AppConfig
	Upstream UpstreamConfig
	Payment  PaymentConfig
	Redis    RedisConfig
	DB       DBConfig
	Broker   BrokerConfig
	Ledger   LedgerConfig
	Session  SessionConfig
	CORS     CORSConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type AppConfig struct {
	// Missing base URL is reported as a payment init failure, not at startup.
	BaseURL string `envconfig:"APP_BASE_URL"`
}

type UpstreamConfig struct {
	BaseURL string        `envconfig:"HOTEL_API_BASE_URL" required:"true"`
	Token   string        `envconfig:"HOTEL_API_TOKEN"`
	Timeout time.Duration `envconfig:"UPSTREAM_TIMEOUT" default:"10s"`
}

type PaymentConfig struct {
	PublicKey   string        `envconfig:"PAYMENT_PUBLIC_KEY"`
	Currency    string        `envconfig:"PAYMENT_CURRENCY" default:"NGN"`
	ScriptURL   string        `envconfig:"PAYMENT_SCRIPT_URL" default:"https://checkout.flutterwave.com/v3.js"`
	LoadTimeout time.Duration `envconfig:"PAYMENT_LOAD_TIMEOUT" default:"10s"`
	Title       string        `envconfig:"PAYMENT_TITLE" default:"Room reservation"`
	Description string        `envconfig:"PAYMENT_DESCRIPTION" default:"Payment for your hotel stay"`
	LogoURL     string        `envconfig:"PAYMENT_LOGO_URL"`
}

type RedisConfig struct {
	Addr         string        `envconfig:"REDIS_ADDR"`
	Password     string        `envconfig:"REDIS_PASSWORD"`
	DB           int           `envconfig:"REDIS_DB" default:"0"`
	AttemptTTL   time.Duration `envconfig:"ATTEMPT_TTL" default:"24h"`
	RoomCacheTTL time.Duration `envconfig:"ROOM_CACHE_TTL" default:"30s"`
}

func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER"`
	Password string `envconfig:"DB_PASSWORD"`
	DBName   string `envconfig:"DB_NAME"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Africa/Lagos"`
}

func (c DBConfig) Enabled() bool {
	return c.Host != "" && c.DBName != ""
}

type BrokerConfig struct {
	URL string `envconfig:"RABBITMQ_URL"`
}

func (c BrokerConfig) Enabled() bool {
	return c.URL != ""
}

type LedgerConfig struct {
	PendingTTL    time.Duration `envconfig:"PENDING_TTL" default:"30m"`
	SweepInterval time.Duration `envconfig:"LEDGER_SWEEP_INTERVAL" default:"5m"`
}

type SessionConfig struct {
	Secret string `envconfig:"SESSION_SECRET"`
	Cookie CookieConfig
}

type CookieConfig struct {
	Name     string `envconfig:"SESSION_COOKIE_NAME" default:"hotel_session"`
	Domain   string `envconfig:"SESSION_COOKIE_DOMAIN"`
	Secure   bool   `envconfig:"SESSION_COOKIE_SECURE" default:"true"`
	SameSite string `envconfig:"SESSION_COOKIE_SAMESITE" default:"Lax"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Idempotency-Key"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Africa/Lagos"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"3600"` // 1*60*60
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
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
			Port: "8889", // Test port
		},
		App: AppConfig{
			BaseURL: "http://localhost:8889",
		},
		Upstream: UpstreamConfig{
			BaseURL: "http://localhost:18080",
			Timeout: 2 * time.Second,
		},
		Payment: PaymentConfig{
			PublicKey:   "FLWPUBK_TEST-0000000000000000-X",
			Currency:    "NGN",
			ScriptURL:   "https://checkout.flutterwave.com/v3.js",
			LoadTimeout: 2 * time.Second,
			Title:       "Room reservation",
			Description: "Payment for your hotel stay",
		},
		Redis: RedisConfig{
			AttemptTTL:   time.Hour,
			RoomCacheTTL: 30 * time.Second,
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Africa/Lagos",
		},
		Ledger: LedgerConfig{
			PendingTTL:    30 * time.Minute,
			SweepInterval: time.Minute,
		},
		Session: SessionConfig{
			Secret: "test-session-secret",
			Cookie: CookieConfig{
				Name:     "hotel_session",
				Secure:   false,
				SameSite: "Lax",
			},
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Africa/Lagos",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 3600,
		},
	}
}
