package cache

import (
	"fmt"
	"time"
)

// Config holds Redis connection configuration parameters. It is treated as
// immutable once handed to a driver constructor. An empty Username or
// Password means the credential is unset.
type Config struct {
	Host     string        `json:"host"`      // Redis server host
	Port     int           `json:"port"`      // Redis server port
	Timeout  time.Duration `json:"timeout"`   // Per-command timeout
	PoolSize int           `json:"pool_size"` // Maximum connections (pooled variant only)
	Username string        `json:"username"`  // Username for AUTH (optional)
	Password string        `json:"password"`  // Password for AUTH (optional)
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return Config{
		Host:     "localhost",
		Port:     6379,
		Timeout:  5 * time.Second,
		PoolSize: 10,
	}
}

// Addr returns the host:port address of the configured server.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Validate validates the configuration parameters.
func (c Config) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("host cannot be empty")
	}

	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", c.Port)
	}

	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %v", c.Timeout)
	}

	if c.PoolSize <= 0 {
		return fmt.Errorf("pool size must be positive, got %d", c.PoolSize)
	}

	return nil
}
