package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the server configuration
type Config struct {
	GRPCAddr string      `yaml:"grpc_addr"`
	APIToken string      `yaml:"api_token"`
	DB       DBConfig    `yaml:"db"`
	Rates    RatesConfig `yaml:"rates"`
}

// DBConfig describes the optional Postgres connection.
// Leaving every field empty runs the server without persistence.
type DBConfig struct {
	ConnStr  string `yaml:"conn_str"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"sslmode"`
}

// RatesConfig describes the exchange rate provider
type RatesConfig struct {
	APIURL          string        `yaml:"api_url"`
	APIKey          string        `yaml:"api_key"`
	RefreshInterval time.Duration `yaml:"refresh_interval"`
}

// Defaults returns the configuration used when nothing else is set
func Defaults() *Config {
	return &Config{
		GRPCAddr: ":8080",
		APIToken: "dev-token",
		DB: DBConfig{
			Port:    5432,
			User:    "postgres",
			Name:    "unitflow",
			SSLMode: "disable",
		},
		Rates: RatesConfig{
			RefreshInterval: time.Hour,
		},
	}
}

// Load builds the configuration.
// Logic:
// 1. Start from Defaults()
// 2. Overlay the YAML file at path, if path is non-empty
// 3. Overlay environment variables
func Load(path string) (*Config, error) {
	return load(path, os.Getenv)
}

func load(path string, getenv func(string) string) (*Config, error) {
	cfg := Defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := applyEnv(cfg, getenv); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config, getenv func(string) string) error {
	setString := func(key string, dst *string) {
		if v := getenv(key); v != "" {
			*dst = v
		}
	}

	setString("GRPC_ADDR", &cfg.GRPCAddr)
	setString("API_TOKEN", &cfg.APIToken)
	setString("DB_CONN_STR", &cfg.DB.ConnStr)
	setString("DB_HOST", &cfg.DB.Host)
	setString("DB_USER", &cfg.DB.User)
	setString("DB_PASSWORD", &cfg.DB.Password)
	setString("DB_NAME", &cfg.DB.Name)
	setString("DB_SSLMODE", &cfg.DB.SSLMode)
	setString("RATES_API_URL", &cfg.Rates.APIURL)
	setString("RATES_API_KEY", &cfg.Rates.APIKey)

	if v := getenv("DB_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid DB_PORT %q: %w", v, err)
		}
		cfg.DB.Port = port
	}

	if v := getenv("RATES_REFRESH_INTERVAL"); v != "" {
		interval, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid RATES_REFRESH_INTERVAL %q: %w", v, err)
		}
		cfg.Rates.RefreshInterval = interval
	}

	return nil
}

// Validate checks the configuration for values the server cannot start with
func (c *Config) Validate() error {
	if c.GRPCAddr == "" {
		return errors.New("grpc_addr is required")
	}
	if c.APIToken == "" {
		return errors.New("api_token is required")
	}
	if c.DB.Port <= 0 || c.DB.Port > 65535 {
		return fmt.Errorf("db port %d out of range", c.DB.Port)
	}
	if c.Rates.RefreshInterval < 0 {
		return fmt.Errorf("rates refresh_interval must not be negative, got %s", c.Rates.RefreshInterval)
	}
	return nil
}

// DatabaseEnabled reports whether a Postgres connection was configured
func (c *Config) DatabaseEnabled() bool {
	return c.DB.ConnStr != "" || c.DB.Host != ""
}

// DSN returns the Postgres connection string.
// An explicit ConnStr wins over the individual fields.
func (c *Config) DSN() string {
	if c.DB.ConnStr != "" {
		return c.DB.ConnStr
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.DB.Host, c.DB.Port, c.DB.User, c.DB.Password, c.DB.Name, c.DB.SSLMode)
}
