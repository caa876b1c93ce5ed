package storage

import (
	"database/sql"
	"errors"
	"log"

	"train-reservations/internal/models"

	json "github.com/goccy/go-json"

	// Import sqlite driver
	_ "modernc.org/sqlite"
)

// SQLiteStore keeps the snapshot as a single row in a SQLite database. The
// aggregate is still written whole on every save; the row is just a more
// convenient artifact for deployments that already manage a .db file.
type SQLiteStore struct {
	conn *sql.DB
}

// NewSQLiteStore opens a database connection and runs migrations.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if err := conn.Ping(); err != nil {
		return nil, err
	}

	s := &SQLiteStore{conn: conn}
	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, err
	}

	return s, nil
}

func (s *SQLiteStore) migrate() error {
	_, err := s.conn.Exec(`CREATE TABLE IF NOT EXISTS snapshots (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		data BLOB NOT NULL,
		saved_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`)
	return err
}

// Load reads and decodes the snapshot row. No row or an undecodable blob
// yields (nil, nil), same fallback policy as FileStore.
func (s *SQLiteStore) Load() (*models.Snapshot, error) {
	var data []byte
	err := s.conn.QueryRow("SELECT data FROM snapshots WHERE id = 1").Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var snap models.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		log.Printf("snapshot row is unreadable, starting fresh: %v", err)
		return nil, nil
	}
	return &snap, nil
}

// Save serializes the aggregate and replaces the snapshot row.
func (s *SQLiteStore) Save(snap *models.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	_, err = s.conn.Exec(`INSERT INTO snapshots (id, data, saved_at) VALUES (1, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET data = excluded.data, saved_at = CURRENT_TIMESTAMP`,
		data,
	)
	return err
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.conn.Close()
}
