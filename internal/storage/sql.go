package storage

import (
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"

	"tsplit/internal/config"
	"tsplit/internal/domain"
)

// createTableStmt keeps an auto-increment position column so Load can
// return rows in their original insertion order.
const createTableStmt = `CREATE TABLE IF NOT EXISTS test_durations (
	pos BIGINT NOT NULL AUTO_INCREMENT,
	test_id VARCHAR(512) NOT NULL,
	duration DOUBLE NOT NULL,
	PRIMARY KEY (pos),
	UNIQUE KEY uniq_test_id (test_id)
)`

// SQLStore keeps durations in a MySQL table shared by a CI fleet, so every
// shard partitions against the same timing snapshot without copying files.
type SQLStore struct {
	cfg *config.Config
}

// NewSQLStore returns a Store backed by the configured MySQL database.
func NewSQLStore(cfg *config.Config) *SQLStore {
	return &SQLStore{cfg: cfg}
}

func (s *SQLStore) open() (*sql.DB, error) {
	db, err := sql.Open("mysql", s.cfg.GetDatabaseDSN())
	if err != nil {
		return nil, fmt.Errorf("connect to durations database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping durations database: %w", err)
	}
	if _, err := db.Exec(createTableStmt); err != nil {
		db.Close()
		return nil, fmt.Errorf("create durations table: %w", err)
	}
	return db, nil
}

// Load reads all recorded durations in insertion order.
func (s *SQLStore) Load() (*domain.Durations, error) {
	db, err := s.open()
	if err != nil {
		return domain.NewDurations(), err
	}
	defer db.Close()

	rows, err := db.Query(`SELECT test_id, duration FROM test_durations ORDER BY pos`)
	if err != nil {
		return domain.NewDurations(), fmt.Errorf("query durations: %w", err)
	}
	defer rows.Close()

	d := domain.NewDurations()
	for rows.Next() {
		var id string
		var seconds float64
		if err := rows.Scan(&id, &seconds); err != nil {
			return domain.NewDurations(), fmt.Errorf("scan duration row: %w", err)
		}
		d.Set(id, seconds)
	}
	if err := rows.Err(); err != nil {
		return domain.NewDurations(), fmt.Errorf("read duration rows: %w", err)
	}
	return d, nil
}

// Save replaces the table contents with the given record in one transaction.
func (s *SQLStore) Save(d *domain.Durations) error {
	db, err := s.open()
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin durations transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM test_durations`); err != nil {
		return fmt.Errorf("clear durations table: %w", err)
	}
	stmt, err := tx.Prepare(`INSERT INTO test_durations (test_id, duration) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare durations insert: %w", err)
	}
	defer stmt.Close()

	for _, id := range d.IDs() {
		seconds, _ := d.Get(id)
		if _, err := stmt.Exec(id, seconds); err != nil {
			return fmt.Errorf("insert duration for %s: %w", id, err)
		}
	}
	return tx.Commit()
}

// Record upserts observed durations without touching other rows.
func (s *SQLStore) Record(observed *domain.Durations) error {
	db, err := s.open()
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin durations transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT INTO test_durations (test_id, duration) VALUES (?, ?)
		ON DUPLICATE KEY UPDATE duration = VALUES(duration)`)
	if err != nil {
		return fmt.Errorf("prepare durations upsert: %w", err)
	}
	defer stmt.Close()

	for _, id := range observed.IDs() {
		seconds, _ := observed.Get(id)
		if _, err := stmt.Exec(id, seconds); err != nil {
			return fmt.Errorf("upsert duration for %s: %w", id, err)
		}
	}
	return tx.Commit()
}
