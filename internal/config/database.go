package config

const (
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
)

type DatabaseConfig struct {
	Driver    string
	SQLiteDSN string
	// SeedFile, when set, names a JSON file of chains and paymasters
	// created at startup if missing.
	SeedFile string
}

func loadDatabase() DatabaseConfig {
	return DatabaseConfig{
		Driver:    getenv("STORE_DRIVER", DriverSQLite),
		SQLiteDSN: getenv("SQLITE_DSN", "./data/gas-station.db"),
		SeedFile:  getenv("SEED_FILE", ""),
	}
}
