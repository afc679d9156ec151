// ABOUTME: Configuration management for the aggregation pipeline
// ABOUTME: Layers defaults, an optional YAML file, a .env file and environment variables

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"

	"goatland-feeds/core/domain"
	coreerrors "goatland-feeds/core/errors"
)

// Config holds all pipeline configuration
type Config struct {
	// Sources are the logical source identifiers, in ingestion order
	Sources []string `yaml:"sources"`

	// Limit is the maximum number of items in the artifact
	Limit int `yaml:"limit"`

	// FeedURLTemplate builds a feed URL from a bare identifier (one %s verb)
	FeedURLTemplate string `yaml:"feed_url_template"`

	// SourceLabel is reported as every item's source
	SourceLabel string `yaml:"source_label"`

	// OwnDomains is the link classifier allowlist
	OwnDomains []string `yaml:"own_domains"`

	// Summary contains snippet and enrichment thresholds
	Summary SummaryConfig `yaml:"summary"`

	// HTTP contains outbound request settings
	HTTP HTTPConfig `yaml:"http"`

	// Output contains artifact sink settings
	Output OutputConfig `yaml:"output"`

	// Cache contains metadata cache settings
	Cache CacheConfig `yaml:"cache"`

	// Log contains logger settings
	Log LogConfig `yaml:"log"`

	// Schedule is a cron expression; empty means run once
	Schedule string `yaml:"schedule"`
}

// SummaryConfig holds summary resolution settings
type SummaryConfig struct {
	// MaxLength is the rune count after which summaries are truncated
	MaxLength int `yaml:"max_length"`

	// MinLength is the rune count at which a feed snippet is good enough
	MinLength int `yaml:"min_length"`

	// ReadabilityFallback enables the readability excerpt when a page has no meta description
	ReadabilityFallback bool `yaml:"readability_fallback"`
}

// HTTPConfig holds outbound request configuration
type HTTPConfig struct {
	// FeedTimeout bounds a single source ingestion
	FeedTimeout time.Duration `yaml:"feed_timeout"`

	// EnrichTimeout bounds a single page metadata fetch
	EnrichTimeout time.Duration `yaml:"enrich_timeout"`

	// Concurrency is the worker pool size for ingestion and enrichment
	Concurrency int `yaml:"concurrency"`

	// RequestsPerSecond throttles outbound requests; 0 disables throttling
	RequestsPerSecond float64 `yaml:"requests_per_second"`

	// MaxBodyBytes caps how much of a response body is read
	MaxBodyBytes int64 `yaml:"max_body_bytes"`

	// UserAgent is sent with every request
	UserAgent string `yaml:"user_agent"`
}

// OutputConfig holds artifact sink configuration
type OutputConfig struct {
	// Path is the local artifact file
	Path string `yaml:"path"`

	// S3Bucket switches the sink to S3 when set
	S3Bucket string `yaml:"s3_bucket"`

	// S3Key is the object key; defaults to the base name of Path
	S3Key string `yaml:"s3_key"`

	// S3Region overrides the AWS region from the default chain
	S3Region string `yaml:"s3_region"`
}

// CacheConfig holds metadata cache configuration
type CacheConfig struct {
	// Type selects the backend: memory, redis or sqlite.
	// memory is the default and keeps nothing past the process. redis and sqlite
	// keep page metadata between runs, trading "nothing persists but the artifact"
	// for fewer repeat requests.
	Type string `yaml:"type"`

	// TTL is how long fetched page metadata is reused
	TTL time.Duration `yaml:"ttl"`

	// Path is the SQLite database file
	Path string `yaml:"path"`

	// Redis contains Redis connection settings
	Redis RedisConfig `yaml:"redis"`
}

// Persistent reports whether the backend keeps entries across runs
func (c CacheConfig) Persistent() bool {
	return c.Type == "redis" || c.Type == "sqlite"
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// LogConfig holds logger configuration
type LogConfig struct {
	// Level is a logrus level name
	Level string `yaml:"level"`

	// Format is "text" or "json"
	Format string `yaml:"format"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Sources:         []string{"entertainment"},
		Limit:           5,
		FeedURLTemplate: "https://www.reddit.com/r/%s.rss",
		SourceLabel:     "reddit",
		OwnDomains:      []string{"reddit.com", "redd.it", "redditmedia.com", "redditstatic.com"},
		Summary: SummaryConfig{
			MaxLength: 240,
			MinLength: 60,
		},
		HTTP: HTTPConfig{
			FeedTimeout:   20 * time.Second,
			EnrichTimeout: 10 * time.Second,
			Concurrency:   4,
			MaxBodyBytes:  5 * 1024 * 1024,
			UserAgent:     "Goatland/1.0 (+https://goatland.net)",
		},
		Output: OutputConfig{
			Path: "data/entertainment.json",
		},
		Cache: CacheConfig{
			Type: "memory",
			TTL:  time.Hour,
			Path: "data/metadata-cache.db",
			Redis: RedisConfig{
				Address: "localhost:6379",
			},
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load builds the configuration from every layer and validates it.
// A missing .env file is not an error; a missing CONFIG_FILE is.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromEnv loads configuration from defaults and environment variables only
func LoadFromEnv() (*Config, error) {
	cfg := Default()
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile overlays a YAML file onto the configuration
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &coreerrors.ConfigurationError{Field: "CONFIG_FILE", Message: err.Error()}
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return &coreerrors.ConfigurationError{Field: "CONFIG_FILE", Message: fmt.Sprintf("invalid YAML: %v", err)}
	}
	return nil
}

// ResolveSources turns the configured identifiers into sources, in order
func (c *Config) ResolveSources() []domain.Source {
	sources := make([]domain.Source, 0, len(c.Sources))
	for _, id := range c.Sources {
		src := domain.NewSource(id, c.FeedURLTemplate, c.SourceLabel)
		if src.ID == "" {
			continue
		}
		sources = append(sources, src)
	}
	return sources
}

func (c *Config) applyEnv() error {
	if value := firstEnv("SOURCES", "SUBREDDITS"); value != "" {
		c.Sources = splitList(value)
	}
	if value := os.Getenv("OWN_DOMAINS"); value != "" {
		c.OwnDomains = splitList(value)
	}

	c.FeedURLTemplate = getEnvOrDefault("FEED_URL_TEMPLATE", c.FeedURLTemplate)
	c.SourceLabel = getEnvOrDefault("SOURCE_LABEL", c.SourceLabel)
	c.HTTP.UserAgent = getEnvOrDefault("USER_AGENT", c.HTTP.UserAgent)
	c.Output.Path = getEnvOrDefault("OUTPUT_PATH", c.Output.Path)
	c.Output.S3Bucket = getEnvOrDefault("ARTIFACT_S3_BUCKET", c.Output.S3Bucket)
	c.Output.S3Key = getEnvOrDefault("ARTIFACT_S3_KEY", c.Output.S3Key)
	c.Output.S3Region = getEnvOrDefault("AWS_REGION", c.Output.S3Region)
	c.Log.Level = getEnvOrDefault("LOG_LEVEL", c.Log.Level)
	c.Log.Format = getEnvOrDefault("LOG_FORMAT", c.Log.Format)
	c.Schedule = getEnvOrDefault("SCHEDULE", c.Schedule)
	c.Cache.Type = getEnvOrDefault("CACHE_TYPE", c.Cache.Type)
	c.Cache.Path = getEnvOrDefault("CACHE_PATH", c.Cache.Path)
	c.Cache.Redis.Address = getEnvOrDefault("REDIS_ADDRESS", c.Cache.Redis.Address)
	c.Cache.Redis.Password = getEnvOrDefault("REDIS_PASSWORD", c.Cache.Redis.Password)

	var err error
	if c.Limit, err = getEnvAsInt("LIMIT", c.Limit); err != nil {
		return err
	}
	if c.Summary.MaxLength, err = getEnvAsInt("SUMMARY_MAX_LENGTH", c.Summary.MaxLength); err != nil {
		return err
	}
	if c.Summary.MinLength, err = getEnvAsInt("SUMMARY_MIN_LENGTH", c.Summary.MinLength); err != nil {
		return err
	}
	if c.Summary.ReadabilityFallback, err = getEnvAsBool("SUMMARY_READABILITY_FALLBACK", c.Summary.ReadabilityFallback); err != nil {
		return err
	}
	if c.HTTP.Concurrency, err = getEnvAsInt("CONCURRENCY", c.HTTP.Concurrency); err != nil {
		return err
	}
	if c.HTTP.FeedTimeout, err = getEnvAsDuration("FEED_TIMEOUT", c.HTTP.FeedTimeout); err != nil {
		return err
	}
	if c.HTTP.EnrichTimeout, err = getEnvAsDuration("ENRICH_TIMEOUT", c.HTTP.EnrichTimeout); err != nil {
		return err
	}
	if c.Cache.TTL, err = getEnvAsDuration("CACHE_TTL", c.Cache.TTL); err != nil {
		return err
	}
	if c.Cache.Redis.DB, err = getEnvAsInt("REDIS_DB", c.Cache.Redis.DB); err != nil {
		return err
	}
	if value := os.Getenv("REQUESTS_PER_SECOND"); value != "" {
		rps, parseErr := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if parseErr != nil {
			return invalid("REQUESTS_PER_SECOND", value, "a number")
		}
		c.HTTP.RequestsPerSecond = rps
	}
	if value := os.Getenv("MAX_BODY_BYTES"); value != "" {
		n, parseErr := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
		if parseErr != nil {
			return invalid("MAX_BODY_BYTES", value, "an integer")
		}
		c.HTTP.MaxBodyBytes = n
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if len(c.ResolveSources()) == 0 {
		return &coreerrors.ConfigurationError{Field: "SOURCES", Message: "at least one source is required"}
	}
	if c.Limit < 1 {
		return &coreerrors.ConfigurationError{Field: "LIMIT", Message: "must be a positive integer"}
	}
	if strings.Count(c.FeedURLTemplate, "%s") != 1 {
		return &coreerrors.ConfigurationError{Field: "FEED_URL_TEMPLATE", Message: "must contain exactly one %s"}
	}
	if c.Summary.MaxLength < 1 {
		return &coreerrors.ConfigurationError{Field: "SUMMARY_MAX_LENGTH", Message: "must be a positive integer"}
	}
	if c.Summary.MinLength < 0 || c.Summary.MinLength > c.Summary.MaxLength {
		return &coreerrors.ConfigurationError{Field: "SUMMARY_MIN_LENGTH", Message: "must be between 0 and SUMMARY_MAX_LENGTH"}
	}
	if c.HTTP.FeedTimeout <= 0 {
		return &coreerrors.ConfigurationError{Field: "FEED_TIMEOUT", Message: "must be positive"}
	}
	if c.HTTP.EnrichTimeout <= 0 {
		return &coreerrors.ConfigurationError{Field: "ENRICH_TIMEOUT", Message: "must be positive"}
	}
	if c.HTTP.Concurrency < 1 {
		return &coreerrors.ConfigurationError{Field: "CONCURRENCY", Message: "must be at least 1"}
	}
	if c.HTTP.RequestsPerSecond < 0 {
		return &coreerrors.ConfigurationError{Field: "REQUESTS_PER_SECOND", Message: "cannot be negative"}
	}
	if c.HTTP.MaxBodyBytes < 1 {
		return &coreerrors.ConfigurationError{Field: "MAX_BODY_BYTES", Message: "must be positive"}
	}
	if c.Output.S3Bucket == "" && strings.TrimSpace(c.Output.Path) == "" {
		return &coreerrors.ConfigurationError{Field: "OUTPUT_PATH", Message: "cannot be empty"}
	}
	switch c.Cache.Type {
	case "memory":
	case "redis":
		if c.Cache.Redis.Address == "" {
			return &coreerrors.ConfigurationError{Field: "REDIS_ADDRESS", Message: "cannot be empty when CACHE_TYPE is redis"}
		}
	case "sqlite":
		if strings.TrimSpace(c.Cache.Path) == "" {
			return &coreerrors.ConfigurationError{Field: "CACHE_PATH", Message: "cannot be empty when CACHE_TYPE is sqlite"}
		}
	default:
		return &coreerrors.ConfigurationError{Field: "CACHE_TYPE", Message: "must be 'memory', 'redis' or 'sqlite'"}
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return &coreerrors.ConfigurationError{Field: "LOG_FORMAT", Message: "must be 'text' or 'json'"}
	}
	if c.Schedule != "" {
		if _, err := cron.ParseStandard(c.Schedule); err != nil {
			return &coreerrors.ConfigurationError{Field: "SCHEDULE", Message: err.Error()}
		}
	}
	return nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt returns the environment variable as int, the default when unset, or an error when malformed
func getEnvAsInt(key string, defaultValue int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, invalid(key, value, "an integer")
	}
	return n, nil
}

func getEnvAsBool(key string, defaultValue bool) (bool, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, invalid(key, value, "a boolean")
	}
	return b, nil
}

func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, invalid(key, value, "a duration such as 10s")
	}
	return d, nil
}

func firstEnv(keys ...string) string {
	for _, key := range keys {
		if value := strings.TrimSpace(os.Getenv(key)); value != "" {
			return value
		}
	}
	return ""
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func invalid(key, value, want string) error {
	return &coreerrors.ConfigurationError{Field: key, Message: fmt.Sprintf("%q is not %s", value, want)}
}
