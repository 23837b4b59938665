// Package config loads application configuration from yaml files and
// UMZUG_-prefixed environment variables.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Uploads  UploadsConfig  `mapstructure:"uploads"`
	Admin    AdminConfig    `mapstructure:"admin"`
}

// AppConfig holds application-level settings
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
	Debug       bool   `mapstructure:"debug"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

// DatabaseConfig holds MongoDB connection settings. ConnectRetries bounds
// the startup retry budget before the process gives up on the store.
type DatabaseConfig struct {
	URI            string        `mapstructure:"uri"`
	Name           string        `mapstructure:"name"`
	ConnectTimeout time.Duration `mapstructure:"connect_timeout"`
	ConnectRetries int           `mapstructure:"connect_retries"`
	RetryBackoff   time.Duration `mapstructure:"retry_backoff"`
}

// JWTConfig holds JWT token settings
type JWTConfig struct {
	Secret              string        `mapstructure:"secret"`
	AccessTokenDuration time.Duration `mapstructure:"access_token_duration"`
	Issuer              string        `mapstructure:"issuer"`
}

// UploadsConfig holds the uploaded-assets location. Root is the backend
// application root; the actual uploads directory is always derived from it
// so container and host deployments agree on the path.
type UploadsConfig struct {
	Root        string `mapstructure:"root"`
	MaxSizeMB   int    `mapstructure:"max_size_mb"`
	PublicPath  string `mapstructure:"public_path"`
	ServeStatic bool   `mapstructure:"serve_static"`
}

// AdminConfig holds the default administrator account created on first boot
type AdminConfig struct {
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	Email    string `mapstructure:"email"`
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/umzug-cloud/")

	v.SetEnvPrefix("UMZUG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Config file is optional; env and defaults are enough to boot.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	// App defaults
	v.SetDefault("app.name", "umzug-cloud-go")
	v.SetDefault("app.version", "1.0.0")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.debug", true)

	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 30*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)

	// Database defaults
	v.SetDefault("database.uri", "mongodb://localhost:27017")
	v.SetDefault("database.name", "umzug_cloud")
	v.SetDefault("database.connect_timeout", 10*time.Second)
	v.SetDefault("database.connect_retries", 5)
	v.SetDefault("database.retry_backoff", 2*time.Second)

	// JWT defaults
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.access_token_duration", time.Hour)
	v.SetDefault("jwt.issuer", "umzug-cloud")

	// Uploads defaults
	v.SetDefault("uploads.root", ".")
	v.SetDefault("uploads.max_size_mb", 5)
	v.SetDefault("uploads.public_path", "/uploads")
	v.SetDefault("uploads.serve_static", true)

	// Default admin account
	v.SetDefault("admin.username", "admin")
	v.SetDefault("admin.password", "admin123")
	v.SetDefault("admin.email", "info@gelbe-umzuege.ch")
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if c.Database.URI == "" {
		return fmt.Errorf("database URI is required")
	}
	if c.Database.ConnectRetries < 1 {
		return fmt.Errorf("database connect_retries must be at least 1")
	}
	if c.Admin.Username == "" || c.Admin.Password == "" {
		return fmt.Errorf("default admin credentials are required")
	}
	return nil
}
