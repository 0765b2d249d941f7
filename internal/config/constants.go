package config

// Configuration file paths
const (
	ConfigPathFlowers = "configs/flowers.csv"
	ConfigPathBalance = "configs/balance.json"
)

// Save backends
const (
	SaveBackendFile     = "file"
	SaveBackendPostgres = "postgres"
)

// Defaults
const (
	DefaultPort                  = "8080"
	DefaultSavePath              = "saves"
	DefaultSaveSlot              = "main"
	DefaultDBMaxConns            = 20
	DefaultFlowerCacheSize       = 128
	DefaultEventRetentionDays    = 30
	DefaultDeadLetterPath        = "logs/deadletter.jsonl"
	DefaultEventMaxRetries       = 3
	DefaultEventRetryDelay       = "2s"
	DefaultFlowerCacheTTLMinutes = 10
)
