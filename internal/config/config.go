package config

import (
	"fmt"
	"os"
	"time"

	"github.com/Rana718/mockseed/internal/dialect"
	"github.com/Rana718/mockseed/internal/images"
	"github.com/spf13/viper"
)

const (
	DefaultCount    = 50
	DefaultImageDir = "../backend/uploads"
	DefaultOutput   = "mock_data.sql"
	DefaultDialect  = "postgres"
	DefaultURLEnv   = "DATABASE_URL"
	DefaultPort     = 8090
)

type Config struct {
	Count      int      `json:"count" mapstructure:"count"`
	ImageDir   string   `json:"image_dir" mapstructure:"image_dir"`
	Output     string   `json:"output" mapstructure:"output"`
	Dialect    string   `json:"dialect" mapstructure:"dialect"`
	Seed       int64    `json:"seed" mapstructure:"seed"`       // 0 picks a time based seed
	Catalog    string   `json:"catalog" mapstructure:"catalog"` // optional YAML catalog
	SkipImages bool     `json:"skip_images" mapstructure:"skip_images"`
	Images     Images   `json:"images" mapstructure:"images"`
	Database   Database `json:"database" mapstructure:"database"`
	Serve      Serve    `json:"serve" mapstructure:"serve"`
}

type Images struct {
	BaseURL string        `json:"base_url" mapstructure:"base_url"`
	Delay   time.Duration `json:"delay" mapstructure:"delay"`
	Timeout time.Duration `json:"timeout" mapstructure:"timeout"`
}

type Database struct {
	Provider string `json:"provider" mapstructure:"provider"`
	URLEnv   string `json:"url_env" mapstructure:"url_env"`
}

type Serve struct {
	Port int `json:"port" mapstructure:"port"`
}

// Load reads the configuration from the global viper instance.
func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

func LoadFrom(v *viper.Viper) (*Config, error) {
	var cfg Config

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if !v.IsSet("count") {
		cfg.Count = DefaultCount
	}
	if cfg.ImageDir == "" {
		cfg.ImageDir = DefaultImageDir
	}
	if cfg.Output == "" {
		cfg.Output = DefaultOutput
	}
	if cfg.Dialect == "" {
		cfg.Dialect = DefaultDialect
	}
	if cfg.Images.BaseURL == "" {
		cfg.Images.BaseURL = images.DefaultBaseURL
	}
	if !v.IsSet("images.delay") {
		cfg.Images.Delay = images.DefaultDelay
	}
	if cfg.Images.Timeout == 0 {
		cfg.Images.Timeout = images.DefaultTimeout
	}
	if cfg.Database.Provider == "" {
		cfg.Database.Provider = cfg.Dialect
	}
	if cfg.Database.URLEnv == "" {
		cfg.Database.URLEnv = DefaultURLEnv
	}
	if cfg.Serve.Port == 0 {
		cfg.Serve.Port = DefaultPort
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Count < 1 {
		return fmt.Errorf("count must be at least 1, got %d", c.Count)
	}
	if c.ImageDir == "" {
		return fmt.Errorf("image_dir cannot be empty")
	}
	if c.Output == "" {
		return fmt.Errorf("output cannot be empty")
	}
	if _, err := dialect.Lookup(c.Dialect); err != nil {
		return err
	}
	if c.Images.Delay < 0 {
		return fmt.Errorf("images.delay cannot be negative")
	}
	if c.Images.Timeout <= 0 {
		return fmt.Errorf("images.timeout must be positive")
	}
	return nil
}

func (c *Config) GetDialect() (dialect.Dialect, error) {
	return dialect.Lookup(c.Dialect)
}

func (c *Config) GetDatabaseURL() (string, error) {
	dbURL := os.Getenv(c.Database.URLEnv)
	if dbURL == "" {
		return "", fmt.Errorf("database URL not found in environment variable %s", c.Database.URLEnv)
	}
	return dbURL, nil
}
