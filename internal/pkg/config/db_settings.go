package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// PostgresDbType selects the PostgreSQL driver
const PostgresDbType = "postgres"

// SqliteDbType selects the SQLite driver
const SqliteDbType = "sqlite"

// DatabaseSettings holds the key registry database configuration
type DatabaseSettings struct {
	Type string `mapstructure:"type" validate:"required,oneof=postgres sqlite"`
	DSN  string `mapstructure:"dsn"`
	Name string `mapstructure:"name"`
}

// Validate checks that all fields in DatabaseSettings are valid
func (s *DatabaseSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for DatabaseSettings: %w", err)
	}

	// SQLite falls back to an in-memory database, PostgreSQL needs a connection string
	if s.Type == PostgresDbType && s.DSN == "" {
		return fmt.Errorf("dsn is required for %s", PostgresDbType)
	}

	return nil
}
