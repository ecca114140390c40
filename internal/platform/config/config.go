package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Server captures the service configuration. It is built once in main and
// passed to constructors.
type Server struct {
	Addr          string
	Environment   string
	LogLevel      string
	JWTSigningKey string
	JWTIssuer     string
	JWTAudience   string

	Crossmint CrossmintConfig
	RPCURLs   map[string]string
	IPFS      IPFSConfig

	Redis    RedisConfig
	Database DatabaseConfig
	Kafka    KafkaConfig

	BatchConcurrency int
	RecordTimeout    time.Duration
	ShutdownTimeout  time.Duration
}

// CrossmintConfig points the client at the production or staging API.
type CrossmintConfig struct {
	Environment string
	BaseURL     string
	APIKey      string
	Timeout     time.Duration
}

type IPFSConfig struct {
	Gateways []string
	Timeout  time.Duration
}

// RedisConfig enables the Redis verification store when URL is set.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	RecordTTL    time.Duration
}

// DatabaseConfig enables the Postgres verification store when URL is set.
type DatabaseConfig struct {
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	Migrate         bool
}

// KafkaConfig enables the verification event publisher when Brokers is set.
type KafkaConfig struct {
	Brokers         string
	Topic           string
	Acks            string
	Retries         int
	DeliveryTimeout time.Duration
}

const (
	crossmintProductionURL = "https://www.crossmint.com"
	crossmintStagingURL    = "https://staging.crossmint.com"
)

func DefaultRedisConfig() RedisConfig {
	return RedisConfig{
		PoolSize:     10,
		MinIdleConns: 2,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		RecordTTL:    30 * 24 * time.Hour,
	}
}

func DefaultDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		MaxOpenConns:    25,
		MaxIdleConns:    5,
		ConnMaxLifetime: 5 * time.Minute,
	}
}

func DefaultKafkaConfig() KafkaConfig {
	return KafkaConfig{
		Topic:           "vcpipe.credential.verifications",
		Acks:            "all",
		Retries:         3,
		DeliveryTimeout: 30 * time.Second,
	}
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() (Server, error) {
	return fromLookup(os.Getenv)
}

func fromLookup(getenv func(string) string) (Server, error) {
	env := envReader{getenv: getenv}

	cfg := Server{
		Addr:          env.str("VCPIPE_ADDR", ":8080"),
		Environment:   env.str("ENVIRONMENT", "development"),
		LogLevel:      env.str("LOG_LEVEL", "info"),
		JWTSigningKey: getenv("API_JWT_SIGNING_KEY"),
		JWTIssuer:     env.str("API_JWT_ISSUER", "vcpipe"),
		JWTAudience:   env.str("API_JWT_AUDIENCE", "vcpipe-api"),
		RPCURLs: map[string]string{
			"polygon":      getenv("RPC_URL_POLYGON"),
			"polygon-amoy": getenv("RPC_URL_POLYGON_AMOY"),
		},
		IPFS: IPFSConfig{
			Gateways: env.list("IPFS_GATEWAYS"),
			Timeout:  env.duration("IPFS_TIMEOUT", 10*time.Second),
		},
		BatchConcurrency: env.num("VERIFY_BATCH_CONCURRENCY", 8),
		RecordTimeout:    env.duration("VERIFY_RECORD_TIMEOUT", 2*time.Second),
		ShutdownTimeout:  env.duration("SHUTDOWN_TIMEOUT", 15*time.Second),
	}

	cfg.Crossmint = CrossmintConfig{
		Environment: env.str("CROSSMINT_ENV", "production"),
		APIKey:      getenv("CROSSMINT_API_KEY"),
		Timeout:     env.duration("CROSSMINT_TIMEOUT", 10*time.Second),
	}
	switch cfg.Crossmint.Environment {
	case "production":
		cfg.Crossmint.BaseURL = crossmintProductionURL
	case "staging":
		cfg.Crossmint.BaseURL = crossmintStagingURL
	default:
		env.fail("CROSSMINT_ENV", fmt.Errorf("unknown environment %q", cfg.Crossmint.Environment))
	}
	cfg.Crossmint.BaseURL = env.str("CROSSMINT_BASE_URL", cfg.Crossmint.BaseURL)

	cfg.Redis = DefaultRedisConfig()
	cfg.Redis.URL = getenv("REDIS_URL")
	cfg.Redis.PoolSize = env.num("REDIS_POOL_SIZE", cfg.Redis.PoolSize)
	cfg.Redis.RecordTTL = env.duration("REDIS_RECORD_TTL", cfg.Redis.RecordTTL)

	cfg.Database = DefaultDatabaseConfig()
	cfg.Database.URL = getenv("DATABASE_URL")
	cfg.Database.MaxOpenConns = env.num("DATABASE_MAX_OPEN_CONNS", cfg.Database.MaxOpenConns)
	cfg.Database.Migrate = getenv("DATABASE_MIGRATE") == "true"

	cfg.Kafka = DefaultKafkaConfig()
	cfg.Kafka.Brokers = getenv("KAFKA_BROKERS")
	cfg.Kafka.Topic = env.str("KAFKA_VERIFICATION_TOPIC", cfg.Kafka.Topic)
	cfg.Kafka.Acks = env.str("KAFKA_ACKS", cfg.Kafka.Acks)

	if cfg.BatchConcurrency < 1 {
		env.fail("VERIFY_BATCH_CONCURRENCY", fmt.Errorf("must be at least 1"))
	}
	if env.err != nil {
		return Server{}, env.err
	}
	return cfg, nil
}

// envReader records the first parse failure so FromEnv reports one error.
type envReader struct {
	getenv func(string) string
	err    error
}

func (e *envReader) fail(key string, err error) {
	if e.err == nil {
		e.err = fmt.Errorf("config %s: %w", key, err)
	}
}

func (e *envReader) str(key, fallback string) string {
	if v := strings.TrimSpace(e.getenv(key)); v != "" {
		return v
	}
	return fallback
}

func (e *envReader) num(key string, fallback int) int {
	v := strings.TrimSpace(e.getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		e.fail(key, err)
		return fallback
	}
	return n
}

func (e *envReader) duration(key string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(e.getenv(key))
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		e.fail(key, err)
		return fallback
	}
	return d
}

func (e *envReader) list(key string) []string {
	var out []string
	for _, part := range strings.Split(e.getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
