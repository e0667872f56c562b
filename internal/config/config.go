package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const envFile = ".env.dev"

type Config struct {
	GinMode  string
	Port     string
	TZ       string
	LogLevel string

	DBDriver          string
	DBHost            string
	DBPort            string
	DBUser            string
	DBPass            string
	DBName            string
	DBSSLMode         string
	SQLitePath        string
	DBConnectAttempts int

	ShutdownTimeout time.Duration
}

// findEnvFile walks up from the working directory looking for .env.dev.
func findEnvFile() (string, bool) {
	dir, err := os.Getwd()
	if err != nil {
		return "", false
	}

	for {
		candidate := filepath.Join(dir, envFile)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

func Load() *Config {
	if getenv("GIN_MODE", "debug") == "debug" {
		if path, ok := findEnvFile(); ok {
			if err := godotenv.Load(path); err != nil {
				log.Printf("warning: could not load %s: %v", path, err)
			} else {
				log.Printf("loaded %s from %s", envFile, path)
			}
		}
	}

	cfg := &Config{
		GinMode:  getenv("GIN_MODE", "debug"),
		Port:     getenv("PORT", "8080"),
		TZ:       getenv("TZ", "UTC"),
		LogLevel: getenv("LOG_LEVEL", "info"),

		DBDriver:          getenv("DB_DRIVER", "postgres"),
		DBHost:            getenv("DB_HOST", "localhost"),
		DBPort:            getenv("DB_PORT", "5432"),
		DBUser:            getenv("DB_USER", "postgres"),
		DBPass:            getenv("DB_PASS", ""),
		DBName:            getenv("DB_NAME", "postgres"),
		DBSSLMode:         os.Getenv("DB_SSLMODE"),
		SQLitePath:        getenv("SQLITE_PATH", "books.db"),
		DBConnectAttempts: getenvInt("DB_CONNECT_ATTEMPTS", 10),

		ShutdownTimeout: getenvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}

	if cfg.DBSSLMode == "" {
		if cfg.GinMode == "release" {
			cfg.DBSSLMode = "require"
		} else {
			cfg.DBSSLMode = "disable"
		}
	}

	return cfg
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		c.DBHost,
		c.DBUser,
		c.DBPass,
		c.DBName,
		c.DBPort,
		c.DBSSLMode,
		c.TZ,
	)
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		log.Printf("warning: invalid %s=%q, using %d", key, v, def)
		return def
	}
	return n
}

func getenvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		log.Printf("warning: invalid %s=%q, using %s", key, v, def)
		return def
	}
	return d
}
