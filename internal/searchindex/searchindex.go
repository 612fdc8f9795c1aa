// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package searchindex builds an optional SQLite full-text index over the
// archive so exported conversations and project documents can be searched
// after the run. The index is a derived artifact like the Markdown tree; it
// is rebuilt from scratch on every export.
package searchindex

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/claude-archive/pkg/types"
)

const dbFile = "search.db"

// Build writes root/metadata/search.db from the model. An existing index is
// removed first so the result reflects only the current run.
func Build(ctx context.Context, root string, m *types.ExportModel) error {
	dir := filepath.Join(root, "metadata")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating metadata directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFile)
	if err := os.Remove(dbPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing stale index: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return fmt.Errorf("opening index database: %w", err)
	}
	defer db.Close()

	if err := createSchema(ctx, db); err != nil {
		return err
	}
	return populate(ctx, db, m)
}

func createSchema(ctx context.Context, db *sql.DB) error {
	statements := []string{
		`CREATE TABLE messages (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			conversation_id TEXT NOT NULL,
			conversation_name TEXT NOT NULL,
			position INTEGER NOT NULL,
			sender TEXT NOT NULL,
			created_at TEXT,
			content TEXT NOT NULL
		)`,
		`CREATE TABLE documents (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			project_id TEXT NOT NULL,
			project_name TEXT NOT NULL,
			name TEXT NOT NULL,
			created_at TEXT,
			content TEXT NOT NULL
		)`,
		`CREATE VIRTUAL TABLE messages_fts USING fts5(content, content=messages, content_rowid=rowid)`,
		`CREATE VIRTUAL TABLE documents_fts USING fts5(content, content=documents, content_rowid=rowid)`,
	}
	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

func populate(ctx context.Context, db *sql.DB, m *types.ExportModel) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	msgStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO messages (conversation_id, conversation_name, position, sender, created_at, content)
		 VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing message insert: %w", err)
	}
	defer msgStmt.Close()

	for _, c := range m.Conversations {
		for i, msg := range c.Messages {
			if _, err := msgStmt.ExecContext(ctx, c.ID, c.Name, i, string(msg.Sender), msg.CreatedAt, msg.Text); err != nil {
				return fmt.Errorf("indexing message %d of %s: %w", i, c.ID, err)
			}
		}
	}

	docStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO documents (project_id, project_name, name, created_at, content)
		 VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing document insert: %w", err)
	}
	defer docStmt.Close()

	for _, p := range m.Projects {
		for _, d := range p.Docs {
			if _, err := docStmt.ExecContext(ctx, p.ID, p.Name, d.Name, d.CreatedAt, d.Content); err != nil {
				return fmt.Errorf("indexing document %s of %s: %w", d.Name, p.ID, err)
			}
		}
	}

	// Rebuild the FTS shadow tables from the content tables in one pass.
	for _, stmt := range []string{
		`INSERT INTO messages_fts(messages_fts) VALUES ('rebuild')`,
		`INSERT INTO documents_fts(documents_fts) VALUES ('rebuild')`,
	} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("rebuilding full-text index: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing index: %w", err)
	}
	return nil
}

// MessageHit is one full-text match in the message index.
type MessageHit struct {
	ConversationID   string
	ConversationName string
	Position         int
	Sender           string
	Content          string
}

// SearchMessages runs an FTS query against an existing index, for callers
// that want to query the archive after export.
func SearchMessages(ctx context.Context, root, query string, limit int) ([]MessageHit, error) {
	dbPath := filepath.Join(root, "metadata", dbFile)
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening index database: %w", err)
	}
	defer db.Close()

	if limit <= 0 {
		limit = 20
	}

	rows, err := db.QueryContext(ctx,
		`SELECT m.conversation_id, m.conversation_name, m.position, m.sender, m.content
		 FROM messages_fts f
		 JOIN messages m ON m.rowid = f.rowid
		 WHERE messages_fts MATCH ?
		 ORDER BY rank
		 LIMIT ?`, query, limit)
	if err != nil {
		return nil, fmt.Errorf("querying message index: %w", err)
	}
	defer rows.Close()

	var hits []MessageHit
	for rows.Next() {
		var h MessageHit
		if err := rows.Scan(&h.ConversationID, &h.ConversationName, &h.Position, &h.Sender, &h.Content); err != nil {
			return nil, fmt.Errorf("scanning match: %w", err)
		}
		hits = append(hits, h)
	}
	return hits, rows.Err()
}
