package database

import (
	"fmt"
	"time"

	"github.com/Gobusters/ectologger"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// PostgresConfig holds connection settings for the trajectory store
type PostgresConfig struct {
	Driver          string
	Host            string
	Port            string
	UserName        string
	Password        string
	Name            string
	SSLMode         string
	RetryCount      int
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// DSN builds the lib/pq connection string
func (c PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.UserName, c.Password, c.Name, c.SSLMode)
}

// Connect opens the database, retrying with fibonacci backoff until the
// configured attempt count runs out.
func Connect(cfg PostgresConfig, logger ectologger.Logger) (DB, error) {
	attempts := cfg.RetryCount
	if attempts < 1 {
		attempts = 1
	}

	var db *sqlx.DB
	var err error
	prev, wait := 0, 1
	for attempt := 1; attempt <= attempts; attempt++ {
		db, err = sqlx.Connect(cfg.Driver, cfg.DSN())
		if err == nil {
			break
		}

		logger.WithError(err).Warnf("Database connection attempt %d/%d failed", attempt, attempts)
		if attempt < attempts {
			time.Sleep(time.Duration(wait) * time.Second)
			prev, wait = wait, prev+wait
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", attempts, err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	logger.Infof("Connected to database %s on %s", cfg.Name, cfg.Host)
	return NewDatabaseInstance(db, logger), nil
}
