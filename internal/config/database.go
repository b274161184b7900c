package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Supported database drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Configuration errors. Both are fatal at startup.
var (
	ErrMissingDatabaseConfig = errors.New("missing database environment variables")
	ErrInvalidDatabaseConfig = errors.New("invalid database configuration")
)

// MissingKeysError names the required keys that had no value. It matches
// ErrMissingDatabaseConfig with errors.Is.
type MissingKeysError struct {
	Keys []string
}

func (e *MissingKeysError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingDatabaseConfig, strings.Join(e.Keys, ", "))
}

func (e *MissingKeysError) Unwrap() error {
	return ErrMissingDatabaseConfig
}

// RequiredDatabaseKeys lists the environment values that must be present
// before a connection is attempted
var RequiredDatabaseKeys = []string{"DB_USER", "DB_HOST", "DB_NAME", "DB_PASSWORD", "DB_PORT"}

// Database holds the connection settings for the store
type Database struct {
	Driver   string
	User     string
	Host     string
	Name     string // database name, or the file path for sqlite
	Password string
	Port     int
	SSLMode  string
}

// LoadDatabase reads the connection settings.
// Priority (highest to lowest):
// 1. Process environment (DB_USER, DB_HOST, ...)
// 2. envFile in dotenv format, if it exists
// 3. Built-in defaults for the optional keys
func LoadDatabase(envFile string) (Database, error) {
	v := viper.New()

	v.SetDefault("db_driver", DriverPostgres)
	v.SetDefault("db_sslmode", "disable")

	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			v.SetConfigFile(envFile)
			v.SetConfigType("env")
			if err := v.ReadInConfig(); err != nil {
				return Database{}, fmt.Errorf("error reading %s: %w", envFile, err)
			}
		}
	}

	v.AutomaticEnv()

	var missing []string
	for _, key := range RequiredDatabaseKeys {
		if strings.TrimSpace(v.GetString(key)) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return Database{}, &MissingKeysError{Keys: missing}
	}

	port, err := strconv.Atoi(strings.TrimSpace(v.GetString("DB_PORT")))
	if err != nil || port <= 0 {
		return Database{}, fmt.Errorf("%w: DB_PORT must be a positive integer, got %q", ErrInvalidDatabaseConfig, v.GetString("DB_PORT"))
	}

	driver := strings.ToLower(strings.TrimSpace(v.GetString("DB_DRIVER")))
	if driver != DriverPostgres && driver != DriverSQLite {
		return Database{}, fmt.Errorf("%w: DB_DRIVER must be %q or %q, got %q", ErrInvalidDatabaseConfig, DriverPostgres, DriverSQLite, driver)
	}

	return Database{
		Driver:   driver,
		User:     v.GetString("DB_USER"),
		Host:     v.GetString("DB_HOST"),
		Name:     v.GetString("DB_NAME"),
		Password: v.GetString("DB_PASSWORD"),
		Port:     port,
		SSLMode:  v.GetString("DB_SSLMODE"),
	}, nil
}

// DSN returns the driver connection string with properly escaped values
func (d Database) DSN() string {
	if d.Driver == DriverSQLite {
		return d.Name
	}

	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Password),
		Host:   net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
		Path:   d.Name,
	}
	q := u.Query()
	q.Set("sslmode", d.SSLMode)
	u.RawQuery = q.Encode()
	return u.String()
}

// String describes the target without the password, for logs
func (d Database) String() string {
	if d.Driver == DriverSQLite {
		return fmt.Sprintf("sqlite:%s", d.Name)
	}
	return fmt.Sprintf("postgres://%s@%s:%d/%s", d.User, d.Host, d.Port, d.Name)
}
