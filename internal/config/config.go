package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Server     ServerConfig
	Mongo      MongoConfig
	Redis      RedisConfig
	App        AppConfig
	Code       CodeConfig
	Cache      CacheConfig
	Geo        GeoConfig
	Tracker    TrackerConfig
	Expiry     ExpiryConfig
	Validation ValidationConfig
	RateLimit  RateLimitConfig
	Metrics    MetricsConfig
	Postgres   PostgresConfig
	Pprof      PprofConfig
	Auth       AuthConfig
	QR         QRConfig
	Log        LogConfig
}

type ServerConfig struct {
	Host           string `env:"SERVER_HOST" envDefault:"localhost"`
	Port           int    `env:"SERVER_PORT" envDefault:"8080"`
	MaxConnections int    `env:"SERVER_MAX_CONNECTIONS" envDefault:"0"`
	// TrustedProxies lists the CIDRs (or bare addresses) allowed to set
	// X-Forwarded-For. Empty means the peer address is the client.
	TrustedProxies []string `env:"SERVER_TRUSTED_PROXIES" envSeparator:","`
}

type MongoConfig struct {
	URI            string        `env:"MONGODB_URI" envDefault:"mongodb://localhost:27017"`
	Database       string        `env:"DB_NAME" envDefault:"linkly"`
	ConnectTimeout time.Duration `env:"MONGODB_CONNECT_TIMEOUT" envDefault:"10s"`
	MaxPoolSize    uint64        `env:"MONGODB_MAX_POOL_SIZE" envDefault:"100"`
}

type RedisConfig struct {
	// Disabling Redis drops the shared cache tier and falls back to
	// in-process expiry timers.
	Enabled bool   `env:"REDIS_ENABLED" envDefault:"true"`
	URL     string `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`
}

type AppConfig struct {
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:8080"`
	// Store selects the repository backend: "mongo" or "memory".
	Store string `env:"STORE" envDefault:"mongo"`
}

type CodeConfig struct {
	// Length truncates generated codes; 0 keeps the full encoding.
	Length      int `env:"CODE_LENGTH" envDefault:"0"`
	MaxAttempts int `env:"CODE_MAX_ATTEMPTS" envDefault:"5"`
}

type CacheConfig struct {
	TTL          time.Duration `env:"CACHE_TTL" envDefault:"180s"`
	LocalEnabled bool          `env:"CACHE_LOCAL_ENABLED" envDefault:"true"`
	MaxSizePow2  int           `env:"CACHE_MAX_SIZE_POW2" envDefault:"26"`
}

type GeoConfig struct {
	BaseURL string        `env:"IP_DETAILS_URL" envDefault:"https://ipinfo.io"`
	Timeout time.Duration `env:"GEO_TIMEOUT" envDefault:"3s"`
}

type TrackerConfig struct {
	Workers      int           `env:"TRACKER_WORKERS" envDefault:"8"`
	BufferSize   int           `env:"TRACKER_BUFFER_SIZE" envDefault:"4096"`
	TaskTimeout  time.Duration `env:"TRACKER_TASK_TIMEOUT" envDefault:"10s"`
	DrainTimeout time.Duration `env:"TRACKER_DRAIN_TIMEOUT" envDefault:"5s"`
}

type ExpiryConfig struct {
	ListenerEnabled bool          `env:"EXPIRY_LISTENER_ENABLED" envDefault:"true"`
	MinBackoff      time.Duration `env:"EXPIRY_MIN_BACKOFF" envDefault:"500ms"`
	MaxBackoff      time.Duration `env:"EXPIRY_MAX_BACKOFF" envDefault:"30s"`
}

type ValidationConfig struct {
	MaxURLLength       int    `env:"MAX_URL_LENGTH" envDefault:"2048"`
	MaxExpirySeconds   int64  `env:"MAX_EXPIRY_SECONDS" envDefault:"31536000"`
	AllowPrivateIPs    bool   `env:"ALLOW_PRIVATE_IPS" envDefault:"false"`
	MaxRequestBodySize string `env:"MAX_REQUEST_BODY_SIZE" envDefault:"16K"`
}

type RateLimitConfig struct {
	RPS           float64 `env:"RATE_LIMIT_RPS" envDefault:"100"`
	Burst         int     `env:"RATE_LIMIT_BURST" envDefault:"200"`
	ExpireMinutes int     `env:"RATE_LIMIT_EXPIRE_MINUTES" envDefault:"3"`
	BypassSecret  string  `env:"RATE_LIMIT_BYPASS_SECRET"`
}

type MetricsConfig struct {
	Enabled        bool `env:"METRICS_ENABLED" envDefault:"false"`
	BufferSize     int  `env:"METRICS_BUFFER_SIZE" envDefault:"10000"`
	FlushThreshold int  `env:"METRICS_FLUSH_THRESHOLD" envDefault:"1000"`
	FlushInterval  int  `env:"METRICS_FLUSH_INTERVAL_MS" envDefault:"1000"`
}

type PostgresConfig struct {
	Host     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port     int    `env:"POSTGRES_PORT" envDefault:"5432"`
	User     string `env:"POSTGRES_USER" envDefault:"postgres"`
	Password string `env:"POSTGRES_PASSWORD" envDefault:"postgres"`
	DBName   string `env:"POSTGRES_DB" envDefault:"linkly_metrics"`
	SSLMode  string `env:"POSTGRES_SSLMODE" envDefault:"disable"`
	MaxConns int32  `env:"POSTGRES_MAX_CONNS" envDefault:"4"`
}

func (c PostgresConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode)
}

type PprofConfig struct {
	Enabled bool   `env:"PPROF_ENABLED" envDefault:"false"`
	Secret  string `env:"PPROF_SECRET"`
}

type AuthConfig struct {
	// Empty secret disables bearer token parsing; links are created without an owner.
	JWTSecret string `env:"SECRET_KEY"`
	Algorithm string `env:"ALGORITHM" envDefault:"HS256"`
}

type QRConfig struct {
	APIURL  string        `env:"QR_CODE_API" envDefault:"https://api.qrserver.com/v1/create-qr-code/?data="`
	Timeout time.Duration `env:"QR_CODE_TIMEOUT" envDefault:"5s"`
}

type LogConfig struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
