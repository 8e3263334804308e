package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Backend string

const (
	BackendMemory Backend = "memory" // Slices and maps in process memory (default)
	BackendSQLite Backend = "sqlite" // gorm over SQLite, in memory unless DATABASE_DSN says otherwise
)

type (
	Config struct {
		HTTP
		Global
		Catalog
		Database
	}

	HTTP struct {
		Port     int32
		Host     string
		ReadOnly bool // Reject every non-GET request
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Catalog struct {
		Backend Backend
	}
	Database struct {
		DSN    string
		LogSQL bool
	}
)

// loadDotEnv loads ./.env into the process environment when the file exists.
// Variables already set in the environment win.
func loadDotEnv() {
	if _, err := os.Stat(DotEnvFile); err != nil {
		return
	}
	if err := godotenv.Load(DotEnvFile); err != nil {
		log.Printf("Warning: could not load %s: %v", DotEnvFile, err)
	}
}

func NewConfig() *Config {
	loadDotEnv()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", DefaultPort)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("read_only", false)
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("catalog_backend", string(BackendMemory))
	v.SetDefault("database_dsn", DefaultDatabaseDSN)
	v.SetDefault("database_log_sql", false)

	return &Config{
		HTTP: HTTP{
			Port:     v.GetInt32("PORT"),
			Host:     v.GetString("HOST"),
			ReadOnly: v.GetBool("READ_ONLY"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Catalog: Catalog{
			Backend: Backend(v.GetString("CATALOG_BACKEND")),
		},
		Database: Database{
			DSN:    v.GetString("DATABASE_DSN"),
			LogSQL: v.GetBool("DATABASE_LOG_SQL"),
		},
	}
}
