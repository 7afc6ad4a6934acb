package database

import (
	"database/sql"
	"fmt"
	"time"

	"survey-translation-service/config"

	"github.com/apex/log"
	_ "github.com/go-sql-driver/mysql"
)

// Database represents the survey store connection
type Database struct {
	db *sql.DB
}

// NewDatabase opens the MySQL connection and prepares the surveys table.
func NewDatabase(cfg *config.Config) (*Database, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Retry with exponential backoff; the database may still be coming up.
	waitInterval := 1 * time.Second
	for attempt := 1; ; attempt++ {
		if err = db.Ping(); err == nil {
			break
		}
		if attempt >= 5 {
			db.Close()
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		log.WithError(err).Warnf("database connection failed, retrying in %v", waitInterval)
		time.Sleep(waitInterval)
		waitInterval *= 2
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	d := &Database{db: db}
	if err := d.initSchema(); err != nil {
		db.Close()
		return nil, err
	}

	return d, nil
}

// NewWithDB wraps an existing connection; used by tests.
func NewWithDB(db *sql.DB) *Database {
	return &Database{db: db}
}

func (d *Database) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS surveys (
		id VARCHAR(64) NOT NULL PRIMARY KEY,
		language VARCHAR(16) NOT NULL,
		created_by VARCHAR(255) NOT NULL DEFAULT '',
		document JSON NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		INDEX idx_surveys_language (language),
		INDEX idx_surveys_created_by (created_by)
	)`

	if _, err := d.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create surveys table: %w", err)
	}
	return nil
}

// Close closes the database connection
func (d *Database) Close() error {
	return d.db.Close()
}
