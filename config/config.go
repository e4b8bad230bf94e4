package config

import (
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Env       string          `envconfig:"APP_ENV" default:"development"`
	Server    ServerConfig    `envconfig:"SERVER"`
	Database  DatabaseConfig  `envconfig:"DATABASE"`
	Session   SessionConfig   `envconfig:"SESSION"`
	Bank      BankConfig      `envconfig:"BANK"`
	Admin     AdminConfig     `envconfig:"ADMIN"`
	RateLimit RateLimitConfig `envconfig:"RATE_LIMIT"`
	Log       LogConfig       `envconfig:"LOG"`
}

type ServerConfig struct {
	Port            string        `envconfig:"PORT" default:"5000"`
	ReadTimeout     time.Duration `envconfig:"READ_TIMEOUT" default:"10s"`
	WriteTimeout    time.Duration `envconfig:"WRITE_TIMEOUT" default:"10s"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

// DatabaseConfig selects the driver from the URL scheme: mysql://, postgres://, sqlite://.
type DatabaseConfig struct {
	URL             string        `envconfig:"URL" default:"sqlite://deposit_bri.db"`
	MaxIdleConns    int           `envconfig:"MAX_IDLE_CONNS" default:"10"`
	MaxOpenConns    int           `envconfig:"MAX_OPEN_CONNS" default:"50"`
	ConnMaxLifetime time.Duration `envconfig:"CONN_MAX_LIFETIME" default:"300s"`
	AutoMigrate     bool          `envconfig:"AUTO_MIGRATE" default:"true"`
}

type SessionConfig struct {
	Secret     string `envconfig:"SECRET" default:"dev-secret-key-change-in-production"`
	CookieName string `envconfig:"COOKIE_NAME" default:"session"`
	Secure     bool   `envconfig:"SECURE" default:"false"`
}

// BankConfig describes the single banking user seeded at startup.
type BankConfig struct {
	Username string `envconfig:"USERNAME" default:"Siti Aminah"`
	PIN      string `envconfig:"PIN" default:"112233"`
	Email    string `envconfig:"EMAIL" default:"siti.aminah@email.com"`
}

type AdminConfig struct {
	Code string `envconfig:"CODE" default:"011090"`
}

type RateLimitConfig struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"20"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m"`
}

type LogConfig struct {
	Level      string `envconfig:"LEVEL" default:"info"`
	Format     string `envconfig:"FORMAT" default:"text"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[deposit-bri]"`
}

// Load reads .env (when present) and then the process environment.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		slog.Warn("no .env file loaded, relying on process environment", "error", err)
	}
	return FromEnv()
}

// FromEnv fills a Config from the process environment only.
func FromEnv() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) IsProduction() bool { return c.Env == "production" }
