package config

const (
	// DefaultDatabaseDSN keeps the SQLite catalog in process memory
	DefaultDatabaseDSN = ":memory:"

	// DefaultPort is the HTTP API port used by the serve command
	DefaultPort = 8190

	// DotEnvFile is read from the working directory on startup if present
	DotEnvFile = ".env"
)
