package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const envPrefix = "TASKFLOW"

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
	DriverMemory   = "memory"
)

const (
	HasherBcrypt = "bcrypt"
	HasherLegacy = "legacy"
)

type Config struct {
	Store    StoreConfig    `envconfig:"STORE"`
	Database DatabaseConfig `envconfig:"DB"`
	Redis    RedisConfig    `envconfig:"REDIS"`
	HTTP     HTTPConfig     `envconfig:"HTTP"`
	Auth     AuthConfig     `envconfig:"AUTH"`
	Log      LogConfig      `envconfig:"LOG"`
}

type StoreConfig struct {
	Driver     string `envconfig:"DRIVER" default:"sqlite"`
	KeyPrefix  string `envconfig:"KEY_PREFIX" default:"taskflow_"`
	SQLitePath string `envconfig:"SQLITE_PATH" default:"data/taskflow.db"`
}

type DatabaseConfig struct {
	Host     string `envconfig:"HOST" default:"localhost"`
	Port     string `envconfig:"PORT" default:"5432"`
	User     string `envconfig:"USER" default:"taskflow"`
	Password string `envconfig:"PASSWORD" default:"taskflow"`
	DBName   string `envconfig:"NAME" default:"taskflow"`
	SSLMode  string `envconfig:"SSLMODE" default:"disable"`
}

type RedisConfig struct {
	Addr     string `envconfig:"ADDR" default:"localhost:6379"`
	Password string `envconfig:"PASSWORD" default:""`
	DB       int    `envconfig:"DB" default:"0"`
}

type HTTPConfig struct {
	Addr string `envconfig:"ADDR" default:"127.0.0.1:8080"`
}

type AuthConfig struct {
	// PasswordHasher is "bcrypt" or "legacy". The legacy checksum only exists to
	// read stores written by the browser app and is not a security measure.
	PasswordHasher string `envconfig:"PASSWORD_HASHER" default:"bcrypt"`
	BcryptCost     int    `envconfig:"BCRYPT_COST" default:"10"`
}

type LogConfig struct {
	Level string `envconfig:"LEVEL" default:"info"`
}

// Load reads an optional .env file and then TASKFLOW_* environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Store.Driver {
	case DriverSQLite, DriverPostgres, DriverRedis, DriverMemory:
	default:
		return fmt.Errorf("unsupported store driver %q", c.Store.Driver)
	}
	switch c.Auth.PasswordHasher {
	case HasherBcrypt, HasherLegacy:
	default:
		return fmt.Errorf("unsupported password hasher %q", c.Auth.PasswordHasher)
	}
	return nil
}
