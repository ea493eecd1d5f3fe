package config

// Default paths
const (
	// DefaultDatabasePath is the default path for the reading-log database
	DefaultDatabasePath = "./lecturas.db"
)
