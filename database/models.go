// Package database stores country instruments and ingested news.
//
// Store has two implementations: Repository, which persists to PostgreSQL
// through GORM, and MemoryStore, which keeps everything in process memory
// and is the default.
//
// Country and NewsItem live in models_pkg and are aliased here.
package database

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	models "country-bonds/database/models_pkg"
)

type Country = models.Country
type NewsItem = models.NewsItem

const (
	maxOpenConns    = 10
	maxIdleConns    = 5
	connMaxLifetime = 30 * time.Minute
)

// ConnectionParams locate a PostgreSQL database.
type ConnectionParams struct {
	Host     string
	Port     int
	Name     string
	User     string
	Password string
}

// DSN renders the params in libpq key=value form.
func (p ConnectionParams) DSN() string {
	return fmt.Sprintf("host=%s port=%d dbname=%s user=%s password=%s sslmode=disable",
		p.Host, p.Port, p.Name, p.User, p.Password)
}

// Database holds the GORM connection used by Repository.
type Database struct {
	db *gorm.DB
}

// Connect opens and pings a PostgreSQL connection pool.
func Connect(p ConnectionParams) (*Database, error) {
	db, err := gorm.Open(postgres.Open(p.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s:%d/%s: %w", p.Host, p.Port, p.Name, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping %s:%d/%s: %w", p.Host, p.Port, p.Name, err)
	}

	return &Database{db: db}, nil
}

// DB exposes the GORM handle.
func (d *Database) DB() *gorm.DB {
	return d.db
}

func (d *Database) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
