package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	LogDir      string
	ServiceName string
	Version     string
	Environment string
	APIKey      string // optional; when set, mutating API routes require it

	TrustedProxies []string

	SaveBackend string
	SavePath    string
	SaveSlot    string
	FlowersCSV  string
	BalancePath string
	Seed        int64

	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	FlowerCacheSize    int
	FlowerCacheTTL     time.Duration
	EventRetentionDays int
	EventMaxRetries    int
	EventRetryDelay    time.Duration
	DeadLetterPath     string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		LogDir:      getEnv("LOG_DIR", "logs"),
		ServiceName: getEnv("SERVICE_NAME", "bouquet"),
		Version:     getEnv("VERSION", "dev"),
		Environment: getEnv("ENVIRONMENT", "dev"),
		APIKey:      getEnv("API_KEY", ""),

		SaveBackend: getEnv("SAVE_BACKEND", SaveBackendFile),
		SavePath:    getEnv("SAVE_PATH", DefaultSavePath),
		SaveSlot:    getEnv("SAVE_SLOT", DefaultSaveSlot),
		FlowersCSV:  getEnv("FLOWERS_CSV", ConfigPathFlowers),
		BalancePath: getEnv("BALANCE_PATH", ConfigPathBalance),

		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", "bouquet"),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),

		FlowerCacheSize:    getEnvAsInt("FLOWER_CACHE_SIZE", DefaultFlowerCacheSize),
		FlowerCacheTTL:     getEnvAsDuration("FLOWER_CACHE_TTL", DefaultFlowerCacheTTLMinutes*time.Minute),
		EventRetentionDays: getEnvAsInt("EVENT_RETENTION_DAYS", DefaultEventRetentionDays),
		EventMaxRetries:    getEnvAsInt("EVENT_MAX_RETRIES", DefaultEventMaxRetries),
		EventRetryDelay:    getEnvAsDuration("EVENT_RETRY_DELAY", 2*time.Second),
		DeadLetterPath:     getEnv("EVENT_DEADLETTER_PATH", DefaultDeadLetterPath),
	}

	cfg.TrustedProxies = getEnvAsList("TRUSTED_PROXIES")

	portStr := getEnv("PORT", DefaultPort)
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if seedStr := getEnv("SEED", ""); seedStr != "" {
		seed, err := strconv.ParseInt(seedStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid SEED value: %w", err)
		}
		cfg.Seed = seed
	}

	switch cfg.SaveBackend {
	case SaveBackendFile, SaveBackendPostgres:
	default:
		return nil, fmt.Errorf("invalid SAVE_BACKEND %q: must be %q or %q", cfg.SaveBackend, SaveBackendFile, SaveBackendPostgres)
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsList splits a comma-separated variable, dropping empty entries
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// getEnvAsInt parses an integer environment variable, falling back on bad input
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration parses a duration environment variable, falling back on bad input
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// SeedOrNow returns the configured seed, or a time-based one when none was set
func (c *Config) SeedOrNow() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
