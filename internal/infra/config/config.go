package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	Timezone  string          `yaml:"timezone"`
	HTTP      HTTPConfig      `yaml:"http"`
	Feeds     FeedsConfig     `yaml:"feeds"`
	Scripture ScriptureConfig `yaml:"scripture"`
	Readings  ReadingsConfig  `yaml:"readings"`
	Digest    DigestConfig    `yaml:"digest"`
	Valkey    ValkeyConfig    `yaml:"valkey"`
	Admin     AdminConfig     `yaml:"admin"`
	Metrics   MetricsConfig   `yaml:"metrics"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address        string          `yaml:"address"`
	ReadTimeout    time.Duration   `yaml:"readTimeout"`
	WriteTimeout   time.Duration   `yaml:"writeTimeout"`
	ClientTimeout  time.Duration   `yaml:"clientTimeout"`
	AllowedOrigins []string        `yaml:"allowedOrigins"`
	RateLimit      RateLimitConfig `yaml:"rateLimit"`
}

// RateLimitConfig drives the request limiting middleware.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requestsPerMinute"`
	Burst             int  `yaml:"burst"`
}

// FeedsConfig lists the published spreadsheets.
type FeedsConfig struct {
	Activities   FeedSourceConfig `yaml:"activities"`
	Celebrations FeedSourceConfig `yaml:"celebrations"`
	Community    FeedSourceConfig `yaml:"community"`
	// SnapshotsInValkey persists last good feed payloads in Valkey.
	SnapshotsInValkey bool `yaml:"snapshotsInValkey"`
}

// FeedSourceConfig is one CSV export and its cache lifetime.
type FeedSourceConfig struct {
	URL string        `yaml:"url"`
	TTL time.Duration `yaml:"ttl"`
}

// ScriptureConfig controls the translation document and the web reader link.
type ScriptureConfig struct {
	DocumentURL     string              `yaml:"documentUrl"`
	Translation     string              `yaml:"translation"`
	ExternalBaseURL string              `yaml:"externalBaseUrl"`
	ExternalVersion string              `yaml:"externalVersion"`
	SummaryLength   int                 `yaml:"summaryLength"`
	LoadTimeout     time.Duration       `yaml:"loadTimeout"`
	ObjectStorage   ObjectStorageConfig `yaml:"objectStorage"`
}

// ObjectStorageConfig points at an S3-compatible bucket mirroring the document.
type ObjectStorageConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"accessKey"`
	SecretKey string `yaml:"secretKey"`
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
	ObjectKey string `yaml:"objectKey"`
}

// ReadingsConfig controls the reading plan.
type ReadingsConfig struct {
	Year          int            `yaml:"year"`
	SummaryLength int            `yaml:"summaryLength"`
	CacheTTL      time.Duration  `yaml:"cacheTtl"`
	Postgres      PostgresConfig `yaml:"postgres"`
}

// PostgresConfig contains DSN and pooling settings.
type PostgresConfig struct {
	DSN      string `yaml:"dsn"`
	MaxConns int32  `yaml:"maxConns"`
	MinConns int32  `yaml:"minConns"`
}

// DigestConfig controls the daily notification digests.
type DigestConfig struct {
	Enabled          bool          `yaml:"enabled"`
	Interval         time.Duration `yaml:"interval"`
	CelebrationsHour int           `yaml:"celebrationsHour"`
	ActivitiesHour   int           `yaml:"activitiesHour"`
	// OutboxInValkey publishes batches to Valkey for a push gateway.
	OutboxInValkey bool `yaml:"outboxInValkey"`
}

// ValkeyConfig contains connection information for the shared cache.
type ValkeyConfig struct {
	Addr   string `yaml:"addr"`
	Prefix string `yaml:"prefix"`
}

// AdminConfig secures the admin routes. An empty secret disables them.
type AdminConfig struct {
	JWTSecret string        `yaml:"jwtSecret"`
	TokenTTL  time.Duration `yaml:"tokenTtl"`
}

// MetricsConfig toggles the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("TZ_NAME"); v != "" {
		cfg.Timezone = v
	}
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("HTTP_CLIENT_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.HTTP.ClientTimeout = parsed
		}
	}
	if v := os.Getenv("HTTP_ALLOWED_ORIGINS"); v != "" {
		cfg.HTTP.AllowedOrigins = splitList(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_ENABLED"); v != "" {
		cfg.HTTP.RateLimit.Enabled = parseBool(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_RPM"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.RequestsPerMinute = parsed
		}
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_BURST"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.Burst = parsed
		}
	}
	if v := os.Getenv("FEEDS_ACTIVITIES_URL"); v != "" {
		cfg.Feeds.Activities.URL = v
	}
	if v := os.Getenv("FEEDS_CELEBRATIONS_URL"); v != "" {
		cfg.Feeds.Celebrations.URL = v
	}
	if v := os.Getenv("FEEDS_COMMUNITY_URL"); v != "" {
		cfg.Feeds.Community.URL = v
	}
	if v := os.Getenv("FEEDS_SNAPSHOTS_IN_VALKEY"); v != "" {
		cfg.Feeds.SnapshotsInValkey = parseBool(v)
	}
	if v := os.Getenv("SCRIPTURE_DOCUMENT_URL"); v != "" {
		cfg.Scripture.DocumentURL = v
	}
	if v := os.Getenv("SCRIPTURE_EXTERNAL_VERSION"); v != "" {
		cfg.Scripture.ExternalVersion = v
	}
	if v := os.Getenv("SCRIPTURE_S3_ENABLED"); v != "" {
		cfg.Scripture.ObjectStorage.Enabled = parseBool(v)
	}
	if v := os.Getenv("SCRIPTURE_S3_ENDPOINT"); v != "" {
		cfg.Scripture.ObjectStorage.Endpoint = v
	}
	if v := os.Getenv("SCRIPTURE_S3_ACCESS_KEY"); v != "" {
		cfg.Scripture.ObjectStorage.AccessKey = v
	}
	if v := os.Getenv("SCRIPTURE_S3_SECRET_KEY"); v != "" {
		cfg.Scripture.ObjectStorage.SecretKey = v
	}
	if v := os.Getenv("SCRIPTURE_S3_BUCKET"); v != "" {
		cfg.Scripture.ObjectStorage.Bucket = v
	}
	if v := os.Getenv("READINGS_YEAR"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Readings.Year = parsed
		}
	}
	if v := os.Getenv("READINGS_POSTGRES_DSN"); v != "" {
		cfg.Readings.Postgres.DSN = v
	}
	if v := os.Getenv("READINGS_POSTGRES_MAX_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Readings.Postgres.MaxConns = int32(parsed)
		}
	}
	if v := os.Getenv("DIGEST_ENABLED"); v != "" {
		cfg.Digest.Enabled = parseBool(v)
	}
	if v := os.Getenv("DIGEST_INTERVAL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Digest.Interval = parsed
		}
	}
	if v := os.Getenv("DIGEST_OUTBOX_IN_VALKEY"); v != "" {
		cfg.Digest.OutboxInValkey = parseBool(v)
	}
	if v := os.Getenv("VALKEY_ADDR"); v != "" {
		cfg.Valkey.Addr = v
	}
	if v := os.Getenv("ADMIN_JWT_SECRET"); v != "" {
		cfg.Admin.JWTSecret = v
	}
	if v := os.Getenv("ADMIN_TOKEN_TTL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Admin.TokenTTL = parsed
		}
	}
	if v := os.Getenv("METRICS_ENABLED"); v != "" {
		cfg.Metrics.Enabled = parseBool(v)
	}
}

func parseBool(v string) bool {
	return v == "1" || strings.EqualFold(v, "true")
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func defaultConfig() *Config {
	return &Config{
		Timezone: "UTC",
		HTTP: HTTPConfig{
			Address:        ":8080",
			ReadTimeout:    5 * time.Second,
			WriteTimeout:   30 * time.Second,
			ClientTimeout:  15 * time.Second,
			AllowedOrigins: []string{"*"},
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 120,
				Burst:             30,
			},
		},
		Feeds: FeedsConfig{
			Activities: FeedSourceConfig{
				URL: "https://docs.google.com/spreadsheets/d/1ERd7Fl9bIZaGCy80zj9lYHJPawIaFXuiZg-sf3ysSsg/export?format=csv&gid=0",
				TTL: 5 * time.Minute,
			},
			Celebrations: FeedSourceConfig{
				URL: "https://docs.google.com/spreadsheets/d/13xBA21Z62bE6YSc06zWR6Rkfl28BC-BGKAaRIvAps9Q/export?format=csv",
				TTL: time.Hour,
			},
			Community: FeedSourceConfig{
				URL: "https://docs.google.com/spreadsheets/d/17ccPWsw0hKySjjW1ukjyKDKLtLev2UGtOZFeAliBx1M/export?format=csv",
				TTL: 5 * time.Minute,
			},
		},
		Scripture: ScriptureConfig{
			DocumentURL:     "https://raw.githubusercontent.com/thiagobodruk/bible/master/json/es_rvr.json",
			Translation:     "Reina Valera 1960 (Español)",
			ExternalBaseURL: "https://www.biblegateway.com/passage/",
			ExternalVersion: "DHH",
			SummaryLength:   200,
			LoadTimeout:     30 * time.Second,
			ObjectStorage: ObjectStorageConfig{
				ObjectKey: "bibles/es_rvr.json",
			},
		},
		Readings: ReadingsConfig{
			Year:          2025,
			SummaryLength: 250,
			CacheTTL:      time.Hour,
			Postgres: PostgresConfig{
				MaxConns: 4,
			},
		},
		Digest: DigestConfig{
			Enabled:          true,
			Interval:         2 * time.Hour,
			CelebrationsHour: 4,
			ActivitiesHour:   5,
		},
		Valkey: ValkeyConfig{
			Prefix: "comunidad",
		},
		Admin: AdminConfig{
			TokenTTL: 12 * time.Hour,
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Path:    "/metrics",
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.HTTP.ClientTimeout < 0 {
		return errors.New("http.clientTimeout cannot be negative")
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("http.rateLimit.requestsPerMinute must be positive")
		}
		if c.HTTP.RateLimit.Burst <= 0 {
			return errors.New("http.rateLimit.burst must be positive")
		}
	}
	if c.Timezone != "" {
		if _, err := time.LoadLocation(c.Timezone); err != nil {
			return fmt.Errorf("timezone %q is invalid: %w", c.Timezone, err)
		}
	}
	for name, src := range map[string]FeedSourceConfig{
		"activities":   c.Feeds.Activities,
		"celebrations": c.Feeds.Celebrations,
		"community":    c.Feeds.Community,
	} {
		if strings.TrimSpace(src.URL) == "" {
			return fmt.Errorf("feeds.%s.url cannot be empty", name)
		}
		if src.TTL <= 0 {
			return fmt.Errorf("feeds.%s.ttl must be positive", name)
		}
	}
	if strings.TrimSpace(c.Scripture.DocumentURL) == "" && !c.Scripture.ObjectStorage.Enabled {
		return errors.New("scripture.documentUrl cannot be empty unless objectStorage is enabled")
	}
	if c.Scripture.SummaryLength <= 0 {
		return errors.New("scripture.summaryLength must be positive")
	}
	if c.Scripture.ObjectStorage.Enabled {
		if strings.TrimSpace(c.Scripture.ObjectStorage.Endpoint) == "" || strings.TrimSpace(c.Scripture.ObjectStorage.Bucket) == "" {
			return errors.New("scripture.objectStorage endpoint and bucket are required when enabled")
		}
	}
	if c.Readings.Year <= 0 {
		return errors.New("readings.year must be positive")
	}
	if c.Readings.SummaryLength <= 0 {
		return errors.New("readings.summaryLength must be positive")
	}
	if c.Digest.Enabled && c.Digest.Interval <= 0 {
		return errors.New("digest.interval must be positive")
	}
	if c.Digest.CelebrationsHour < 0 || c.Digest.CelebrationsHour > 23 || c.Digest.ActivitiesHour < 0 || c.Digest.ActivitiesHour > 23 {
		return errors.New("digest hours must be between 0 and 23")
	}
	needsValkey := c.Feeds.SnapshotsInValkey || c.Digest.OutboxInValkey
	if needsValkey && strings.TrimSpace(c.Valkey.Addr) == "" {
		return errors.New("valkey.addr cannot be empty when a valkey-backed store is enabled")
	}
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return errors.New("metrics.path must start with /")
	}
	return nil
}
