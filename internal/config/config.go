package config

import (
	"fmt"
	"strings"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Admin    AdminConfig
	Signer   SignerConfig
	Log      LogConfig
}

// Load reads the configuration from the environment, after loading a .env
// file when one is present. It reports every missing required variable.
func Load() (Config, error) {
	ensureEnvLoaded()
	var missing []string
	cfg := Config{
		Server:   loadServer(),
		Database: loadDatabase(),
		Auth:     loadAuth(&missing),
		Admin:    loadAdmin(),
		Signer:   loadSigner(&missing),
		Log:      loadLog(),
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("config: missing %s", strings.Join(missing, ", "))
	}
	if cfg.Admin.Address == "" {
		return Config{}, fmt.Errorf("config: missing ADMIN_ADDRESS")
	}
	return cfg, nil
}
