package db

import (
	"database/sql"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the Postgres connection and returns both the GORM handle
// and the underlying *sql.DB, which the raw-SQL repositories share.
func Connect(dsn string) (*gorm.DB, *sql.DB, error) {
	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to unwrap database handle: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, nil, fmt.Errorf("failed to ping PostgreSQL: %w", err)
	}

	return gormDB, sqlDB, nil
}
