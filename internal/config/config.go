package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Logger   LoggerConfig
	Order    OrderConfig
	Catalog  CatalogConfig
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Host string
	Port int
}

// DatabaseConfig holds MongoDB-related configuration.
type DatabaseConfig struct {
	URI            string
	Database       string
	ConnectTimeout int // seconds
}

// LoggerConfig holds logger-related configuration.
type LoggerConfig struct {
	Level  string
	Format string // "json" or "console"
}

// OrderConfig holds the business limits applied when creating orders. The
// struct is an immutable snapshot injected into the order service at
// construction time.
type OrderConfig struct {
	MaxItemsPerOrder       int
	MaxOrdersPerCustomer   int
	MaxActiveOrders        int
	DefaultPreparationTime int // minutes
}

// CatalogConfig holds the menu catalog collaborator configuration. An empty
// BaseURL disables catalog price resolution and caller-supplied prices are
// used as-is.
type CatalogConfig struct {
	BaseURL string
	Timeout int // seconds
}

// Load loads configuration from environment variables, reading a .env file
// first if one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvAsInt("SERVER_PORT", 8080),
		},
		Database: DatabaseConfig{
			URI:            getEnv("MONGO_URI", "mongodb://localhost:27017"),
			Database:       getEnv("MONGO_DATABASE", "dinehub"),
			ConnectTimeout: getEnvAsInt("MONGO_CONNECT_TIMEOUT", 10),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Order: OrderConfig{
			MaxItemsPerOrder:       getEnvAsInt("ORDER_MAX_ITEMS_PER_ORDER", 20),
			MaxOrdersPerCustomer:   getEnvAsInt("ORDER_MAX_ORDERS_PER_CUSTOMER", 100),
			MaxActiveOrders:        getEnvAsInt("ORDER_MAX_ACTIVE_ORDERS", 5),
			DefaultPreparationTime: getEnvAsInt("ORDER_DEFAULT_PREPARATION_TIME", 30),
		},
		Catalog: CatalogConfig{
			BaseURL: getEnv("MENU_SERVICE_URL", ""),
			Timeout: getEnvAsInt("MENU_SERVICE_TIMEOUT", 5),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Database.URI == "" {
		return fmt.Errorf("mongo URI is required")
	}

	if c.Database.Database == "" {
		return fmt.Errorf("mongo database name is required")
	}

	if c.Database.ConnectTimeout < 1 {
		return fmt.Errorf("mongo connect timeout must be at least 1 second")
	}

	if c.Order.MaxItemsPerOrder < 1 {
		return fmt.Errorf("max items per order must be at least 1")
	}

	if c.Order.MaxOrdersPerCustomer < 1 {
		return fmt.Errorf("max orders per customer must be at least 1")
	}

	if c.Order.MaxActiveOrders < 1 {
		return fmt.Errorf("max active orders must be at least 1")
	}

	if c.Order.DefaultPreparationTime < 1 {
		return fmt.Errorf("default preparation time must be at least 1 minute")
	}

	if c.Catalog.BaseURL != "" && c.Catalog.Timeout < 1 {
		return fmt.Errorf("menu service timeout must be at least 1 second")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Logger.Format != "json" && c.Logger.Format != "console" {
		return fmt.Errorf("invalid log format: %s (must be json or console)", c.Logger.Format)
	}

	return nil
}

// ConnectTimeoutDuration returns the connect timeout as a time.Duration.
func (c *DatabaseConfig) ConnectTimeoutDuration() time.Duration {
	return time.Duration(c.ConnectTimeout) * time.Second
}

// Address returns the server address.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value.
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
