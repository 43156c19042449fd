package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// Environment variables read by Load
const (
	EnvConfigPath  = "MOONLIGHT_CONFIG"
	EnvStorageType = "STORAGE_TYPE"
	EnvRedisURL    = "REDIS_URL"
	EnvTableTTL    = "TABLE_TTL"
	EnvPort        = "PORT"
	EnvLogLevel    = "LOG_LEVEL"
	EnvShuffleSeed = "SHUFFLE_SEED"
)

// Duration is a time.Duration written as a string such as "6h" in TOML
type Duration struct {
	time.Duration
}

// UnmarshalText parses a Go duration string
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

// MarshalText writes the duration back as a Go duration string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Config is the server configuration
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Storage StorageConfig `toml:"storage"`
	Log     LogConfig     `toml:"log"`
	Game    GameConfig    `toml:"game"`
}

// ServerConfig holds HTTP listener settings
type ServerConfig struct {
	Host            string   `toml:"host"`
	Port            int      `toml:"port"`
	ReadTimeout     Duration `toml:"read_timeout"`
	WriteTimeout    Duration `toml:"write_timeout"`
	ShutdownTimeout Duration `toml:"shutdown_timeout"`
}

// StorageConfig selects and configures the table store
type StorageConfig struct {
	Type     string   `toml:"type"`
	RedisURL string   `toml:"redis_url"`
	TableTTL Duration `toml:"table_ttl"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string `toml:"level"`
}

// GameConfig holds engine settings
type GameConfig struct {
	// ShuffleSeed makes every shuffle reproducible when set
	ShuffleSeed *uint64 `toml:"shuffle_seed"`
}

// Options controls where Load looks for configuration
type Options struct {
	// ConfigPath is the TOML file to read. If empty, MOONLIGHT_CONFIG is used,
	// and if that is empty too no file is read
	ConfigPath string
	// EnvFiles are dotenv files loaded into the environment before it is read.
	// Variables already set are never replaced. Missing files are skipped
	EnvFiles []string
}

// Default returns the configuration used when nothing overrides it
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			ReadTimeout:     Duration{15 * time.Second},
			WriteTimeout:    Duration{15 * time.Second},
			ShutdownTimeout: Duration{30 * time.Second},
		},
		Storage: StorageConfig{
			Type:     StorageTypeMemory,
			TableTTL: Duration{6 * time.Hour},
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load builds the configuration from defaults, then the TOML file, then the environment
func Load(opts Options) (*Config, error) {
	if err := loadEnvFiles(opts.EnvFiles); err != nil {
		return nil, err
	}

	cfg := Default()

	path := opts.ConfigPath
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("error decoding config file %s: %w", path, err)
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

func loadEnvFiles(files []string) error {
	for _, file := range files {
		if err := godotenv.Load(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("error loading env file %s: %w", file, err)
		}
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvStorageType); v != "" {
		c.Storage.Type = v
	}
	if v := os.Getenv(EnvRedisURL); v != "" {
		c.Storage.RedisURL = v
	}
	if v := os.Getenv(EnvTableTTL); v != "" {
		if err := c.Storage.TableTTL.UnmarshalText([]byte(v)); err != nil {
			return fmt.Errorf("invalid %s: %w", EnvTableTTL, err)
		}
	}
	if v := os.Getenv(EnvPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvPort, err)
		}
		c.Server.Port = port
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv(EnvShuffleSeed); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvShuffleSeed, err)
		}
		c.Game.ShuffleSeed = &seed
	}
	return nil
}

// Validate checks the configuration is usable
func (c *Config) Validate() error {
	c.Storage.Type = strings.ToLower(c.Storage.Type)
	switch c.Storage.Type {
	case StorageTypeMemory:
	case StorageTypeRedis:
		if c.Storage.RedisURL == "" {
			return fmt.Errorf("%s required when storage type is redis", EnvRedisURL)
		}
		if c.Storage.TableTTL.Duration <= 0 {
			return errors.New("table_ttl must be positive when storage type is redis")
		}
	default:
		return fmt.Errorf("invalid storage type %q: must be 'memory' or 'redis'", c.Storage.Type)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Server.Port)
	}

	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// LogLevel parses the configured log level
func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
	}
	return level, nil
}
