package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/carlosnayan/hrmanager/internal/driver"
)

// FileName is the configuration file looked up from the working directory upwards
const FileName = "hrmanager.conf"

// Config is the full hrmanager configuration
type Config struct {
	Datasource *DatasourceConfig `toml:"datasource" validate:"required"`
	Pool       *PoolConfig       `toml:"pool"`
	Log        []string          `toml:"log,omitempty" validate:"dive,oneof=query info warn warning error"` // query, info, warn, error
	PrettyLog  bool              `toml:"pretty_log"`
}

// DatasourceConfig points at the relational store
type DatasourceConfig struct {
	Provider string `toml:"provider" validate:"required,oneof=postgresql postgres mysql mariadb sqlite sqlite3"`
	URL      string `toml:"url" validate:"required"` // env("DATABASE_URL") or ${DATABASE_URL} allowed
}

// PoolConfig tunes the connection pool
type PoolConfig struct {
	MaxOpenConns    int           `toml:"max_open_conns" validate:"gte=0"`
	MaxIdleConns    int           `toml:"max_idle_conns" validate:"gte=0"`
	ConnMaxLifetime time.Duration `toml:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `toml:"conn_max_idle_time"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads hrmanager.conf. When configPath is empty the file is searched
// from the working directory upwards. A .env file found the same way is
// loaded first so its variables can be referenced.
func Load(configPath string) (*Config, error) {
	loadDotEnv()

	if configPath == "" {
		found, err := findUpwards(FileName)
		if err != nil {
			return nil, err
		}
		configPath = found
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", configPath, err)
	}

	return Parse(string(data))
}

// Parse decodes, expands and validates configuration text
func Parse(data string) (*Config, error) {
	var config Config
	if _, err := toml.Decode(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	config.expandEnvVars()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func loadDotEnv() {
	envPath, err := findUpwards(".env")
	if err != nil {
		// optional file
		_ = godotenv.Load()
		return
	}
	_ = godotenv.Load(envPath)
}

func findUpwards(name string) (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}

	dir := wd
	for {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%s not found", name)
		}
		dir = parent
	}
}

func (c *Config) expandEnvVars() {
	if c.Datasource != nil {
		c.Datasource.URL = expandString(c.Datasource.URL)
		c.Datasource.Provider = expandString(c.Datasource.Provider)
	}
}

// expandString expands ${VAR}, $VAR, env("VAR") and env('VAR')
func expandString(s string) string {
	for {
		var start int
		var endQuote string

		if idx := strings.Index(s, `env("`); idx != -1 {
			start = idx
			endQuote = `")`
		} else if idx := strings.Index(s, `env('`); idx != -1 {
			start = idx
			endQuote = `')`
		} else {
			break
		}

		end := strings.Index(s[start+5:], endQuote)
		if end == -1 {
			break
		}
		end += start + 5

		value := os.Getenv(s[start+5 : end])
		s = s[:start] + value + s[end+2:]
	}

	return os.ExpandEnv(s)
}

// Validate applies defaults and checks the configuration
func (c *Config) Validate() error {
	if c.Datasource != nil {
		c.Datasource.Provider = strings.ToLower(strings.TrimSpace(c.Datasource.Provider))
	}

	if c.Pool == nil {
		c.Pool = &PoolConfig{}
	}
	defaults := driver.DefaultPoolConfig()
	if c.Pool.MaxOpenConns == 0 {
		c.Pool.MaxOpenConns = defaults.MaxOpenConns
	}
	if c.Pool.MaxIdleConns == 0 {
		c.Pool.MaxIdleConns = defaults.MaxIdleConns
	}
	if c.Pool.ConnMaxLifetime == 0 {
		c.Pool.ConnMaxLifetime = defaults.ConnMaxLifetime
	}
	if c.Pool.ConnMaxIdleTime == 0 {
		c.Pool.ConnMaxIdleTime = defaults.ConnMaxIdleTime
	}

	if len(c.Log) == 0 {
		c.Log = []string{"warn", "error"}
	}

	if err := validate.Struct(c); err != nil {
		return err
	}

	if c.Pool.MaxIdleConns > c.Pool.MaxOpenConns {
		return fmt.Errorf("pool.max_idle_conns (%d) exceeds pool.max_open_conns (%d)", c.Pool.MaxIdleConns, c.Pool.MaxOpenConns)
	}

	return nil
}

// DriverOptions converts the configuration into driver options
func (c *Config) DriverOptions() driver.Options {
	return driver.Options{
		Provider: c.Datasource.Provider,
		URL:      c.Datasource.URL,
		Pool: &driver.PoolConfig{
			MaxOpenConns:    c.Pool.MaxOpenConns,
			MaxIdleConns:    c.Pool.MaxIdleConns,
			ConnMaxLifetime: c.Pool.ConnMaxLifetime,
			ConnMaxIdleTime: c.Pool.ConnMaxIdleTime,
		},
	}
}

// GetDatabaseURL returns the expanded datasource URL
func (c *Config) GetDatabaseURL() string {
	if c.Datasource != nil {
		return c.Datasource.URL
	}
	return ""
}
