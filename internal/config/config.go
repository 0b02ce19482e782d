package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Store    StoreConfig
	Redis    RedisConfig
	Session  SessionConfig
	Mail     MailConfig
	Geocoder GeocoderConfig
	Nats     NatsConfig
	Limits   LimitConfig
	Log      LogConfig

	// AdminCode grants isAdmin to users who provide it at registration.
	AdminCode     string        `env:"ADMIN_CODE"`
	ResetTokenTTL time.Duration `env:"RESET_TOKEN_TTL" envDefault:"1h"`
}

type ServerConfig struct {
	Port         string        `env:"PORT" envDefault:"3000"`
	IP           string        `env:"IP"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
	IdleTimeout  time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"120s"`
}

// Addr is the listen address for the HTTP server.
func (s ServerConfig) Addr() string {
	return s.IP + ":" + s.Port
}

type StoreConfig struct {
	// Driver is "mongo" or "memory".
	Driver   string `env:"STORE" envDefault:"mongo"`
	MongoURI string `env:"MONGOLAB_URI" envDefault:"mongodb://localhost:27017"`
	Database string `env:"MONGO_DB" envDefault:"yelpcamp"`
}

type RedisConfig struct {
	URL      string `env:"REDIS_URL"`
	Host     string `env:"REDIS_HOST" envDefault:"localhost"`
	Port     string `env:"REDIS_PORT" envDefault:"6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

type SessionConfig struct {
	Secret       string        `env:"SESSION_SECRET" envDefault:"impossible doesn't exist"`
	TTL          time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	CookieSecure bool          `env:"COOKIE_SECURE" envDefault:"false"`
}

type MailConfig struct {
	// Provider is "sendgrid", "resend" or "log".
	Provider string `env:"MAIL_PROVIDER" envDefault:"log"`
	APIKey   string `env:"EMAIL_API_KEY"`
	Sender   string `env:"EMAIL_SENDER" envDefault:"no-reply@yelpcamp.local"`
}

type GeocoderConfig struct {
	APIKey string `env:"GEOCODER_API_KEY"`
}

type NatsConfig struct {
	// URL is empty when event publishing is disabled.
	URL string `env:"NATS_URL"`
}

type LimitConfig struct {
	RequestsPerSecond float64 `env:"RATE_LIMIT_RPS" envDefault:"10"`
	Burst             int     `env:"RATE_LIMIT_BURST" envDefault:"20"`
	ForgotPerHour     int     `env:"FORGOT_LIMIT_PER_HOUR" envDefault:"5"`
}

type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// Load reads an optional .env file and then parses the environment.
func Load() (*Config, error) {
	// A missing .env is the normal case outside local development.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Store.Driver {
	case "mongo", "memory":
	default:
		return fmt.Errorf("unknown STORE %q", c.Store.Driver)
	}
	switch c.Mail.Provider {
	case "sendgrid", "resend":
		if c.Mail.APIKey == "" {
			return fmt.Errorf("EMAIL_API_KEY is required for MAIL_PROVIDER=%s", c.Mail.Provider)
		}
	case "log":
	default:
		return fmt.Errorf("unknown MAIL_PROVIDER %q", c.Mail.Provider)
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}
	if c.ResetTokenTTL <= 0 {
		return fmt.Errorf("RESET_TOKEN_TTL must be positive")
	}
	return nil
}
