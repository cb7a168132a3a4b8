package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

const documentsTable = `
	CREATE TABLE IF NOT EXISTS pdv_documents (
		name VARCHAR(64) NOT NULL PRIMARY KEY,
		document LONGTEXT NOT NULL,
		updatedAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	)`

// DocumentStore keeps each collection as a single JSON row in pdv_documents.
type DocumentStore struct {
	db *sql.DB
}

func NewDocumentStore(db *sql.DB) *DocumentStore {
	return &DocumentStore{db: db}
}

func (s *DocumentStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, documentsTable); err != nil {
		return fmt.Errorf("creating pdv_documents: %w", err)
	}
	return nil
}

func (s *DocumentStore) Load(ctx context.Context, collection string, dst any) (bool, error) {
	var raw string
	err := s.db.QueryRowContext(ctx, `SELECT document FROM pdv_documents WHERE name = ?`, collection).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("querying document %s: %w", collection, err)
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return false, fmt.Errorf("decoding document %s: %w", collection, err)
	}
	return true, nil
}

func (s *DocumentStore) Save(ctx context.Context, collection string, doc any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding document %s: %w", collection, err)
	}

	query := `
		INSERT INTO pdv_documents (name, document) VALUES (?, ?)
		ON DUPLICATE KEY UPDATE document = VALUES(document)`
	if _, err := s.db.ExecContext(ctx, query, collection, string(raw)); err != nil {
		return fmt.Errorf("upserting document %s: %w", collection, err)
	}
	return nil
}
