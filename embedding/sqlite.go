package embedding

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // register pure-Go SQLite driver
)

const vectorsSchema = `
CREATE TABLE IF NOT EXISTS vectors (
    word TEXT PRIMARY KEY,
    pos INTEGER NOT NULL,
    embedding BLOB NOT NULL
);
`

// Open opens a SQLite database using the modernc.org/sqlite driver.
//
// For file-based databases, pass a path like "./embeddings.sqlite". For
// in-memory databases, pass ":memory:".
func Open(dsn string) (*sql.DB, error) { return sql.Open("sqlite", dsn) }

// EnsureSchema creates the vectors table in the provided database if it does
// not already exist. The pos column preserves the store's enumeration order
// across save/load round trips.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(vectorsSchema)
	return err
}

// SaveStore persists every word of the store into the vectors table,
// inserting or updating by word.
func SaveStore(ctx context.Context, db *sql.DB, store Store) error {
	if db == nil {
		return fmt.Errorf("embedding: db is nil")
	}
	if err := EnsureSchema(db); err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
INSERT INTO vectors(word, pos, embedding)
VALUES (?, ?, ?)
ON CONFLICT(word) DO UPDATE SET
  pos = excluded.pos,
  embedding = excluded.embedding`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, word := range store.Words() {
		vec, ok := store.Vector(word)
		if !ok {
			return fmt.Errorf("embedding: word %q disappeared during save", word)
		}
		blob, err := EncodeVector(vec)
		if err != nil {
			return err
		}
		if _, err := stmt.ExecContext(ctx, word, i, blob); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// LoadStore reads the vectors table back into a MemoryStore, restoring the
// original enumeration order.
func LoadStore(ctx context.Context, db *sql.DB) (*MemoryStore, error) {
	if db == nil {
		return nil, fmt.Errorf("embedding: db is nil")
	}

	rows, err := db.QueryContext(ctx, `SELECT word, embedding FROM vectors ORDER BY pos`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	store := NewMemoryStore(0)
	for rows.Next() {
		var word string
		var blob []byte
		if err := rows.Scan(&word, &blob); err != nil {
			return nil, err
		}
		vec, err := DecodeVector(blob)
		if err != nil {
			return nil, err
		}
		if err := store.Add(word, vec); err != nil {
			return nil, err
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return store, nil
}
