// Package mysql implements the data-access layer over a pooled MySQL
// connection. The schema, its triggers and the reporting routines are owned
// and maintained externally; this package only issues parameterized queries
// and preserves the routine call contracts.
package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"github.com/ecolog/carbon-tracker/internal/domain"
)

// Config holds connection settings for the carbon tracker database.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	PoolSize int
}

// DB wraps the shared connection pool and hands out typed repositories.
// Every operation borrows a connection from the pool for the duration of a
// single call; nothing holds a connection across calls.
type DB struct {
	SqlDB *sql.DB
}

// New opens a connection pool against MySQL and verifies it with a ping.
// There is no retry: a connection failure is fatal to the caller.
func New(cfg Config) (*DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&collation=utf8mb4_unicode_ci",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Database)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrConnection, err)
	}

	poolSize := cfg.PoolSize
	if poolSize <= 0 {
		poolSize = 5
	}
	db.SetMaxOpenConns(poolSize)
	db.SetMaxIdleConns(poolSize)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", domain.ErrConnection, err)
	}

	return &DB{SqlDB: db}, nil
}

// Close closes the underlying pool.
func (db *DB) Close() error {
	return db.SqlDB.Close()
}

func (db *DB) Users() domain.UserRepository {
	return NewUserRepository(db)
}

func (db *DB) Activities() domain.ActivityRepository {
	return NewActivityRepository(db)
}

func (db *DB) Locations() domain.LocationRepository {
	return NewLocationRepository(db)
}

func (db *DB) Logs() domain.LogRepository {
	return NewLogRepository(db)
}

func (db *DB) Reports() domain.ReportRepository {
	return NewReportRepository(db)
}
