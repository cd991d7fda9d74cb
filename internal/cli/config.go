package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// Server Configuration
// =============================================================================

// ServerConfig is the TOML configuration for the serve command.
type ServerConfig struct {
	// Addr is the listen address. The PORT environment variable, when set,
	// overrides it (":" + PORT), matching common PaaS conventions.
	Addr string `toml:"addr"`

	// AllowedOrigins restricts CORS. Empty allows every origin.
	AllowedOrigins []string `toml:"allowed_origins"`

	Cache CacheConfig `toml:"cache"`
	Redis RedisConfig `toml:"redis"`
	Mongo MongoConfig `toml:"mongo"`
}

// CacheConfig selects the cache backend for the server.
type CacheConfig struct {
	// Dir is the file cache directory. Empty uses the XDG default.
	Dir string `toml:"dir"`

	// Disabled turns caching off entirely.
	Disabled bool `toml:"disabled"`
}

// RedisConfig enables the Redis cache backend when Addr is non-empty.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// MongoConfig enables the database diagnostics endpoint when URI is non-empty.
type MongoConfig struct {
	URI      string `toml:"uri"`
	Database string `toml:"database"`
}

// defaultServerConfig returns the configuration used when no file is given.
func defaultServerConfig() ServerConfig {
	return ServerConfig{Addr: ":8000"}
}

// defaultConfigPath returns ~/.config/sketchwire/config.toml when it exists,
// or empty when it does not.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	path := filepath.Join(dir, appName, "config.toml")
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

// loadServerConfig reads a TOML config file, falling back to the default
// config location and then to built-in defaults when path is empty.
// Environment variables PORT, DATABASE_URL, and DATABASE_NAME override the
// corresponding file settings.
func loadServerConfig(path string) (ServerConfig, error) {
	cfg := defaultServerConfig()

	if path == "" {
		path = defaultConfigPath()
	}
	if path != "" {
		meta, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return cfg, fmt.Errorf("load config %s: %w", path, err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return cfg, fmt.Errorf("load config %s: unknown key %q", path, undecoded[0].String())
		}
		if cfg.Addr == "" {
			cfg.Addr = ":8000"
		}
	}

	if port := os.Getenv("PORT"); port != "" {
		cfg.Addr = ":" + port
	}
	if uri := os.Getenv("DATABASE_URL"); uri != "" {
		cfg.Mongo.URI = uri
	}
	if name := os.Getenv("DATABASE_NAME"); name != "" {
		cfg.Mongo.Database = name
	}

	return cfg, nil
}
