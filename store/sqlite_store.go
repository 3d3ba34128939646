package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/josephgoksu/todolist/models"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// SQLitePersister keeps the task collection in a single SQLite database file.
// Save rewrites every row; the position column preserves collection order.
type SQLitePersister struct {
	db   *sql.DB
	path string
}

// NewSQLitePersister opens (creating if needed) the database at path.
// Use ":memory:" for a throwaway database.
func NewSQLitePersister(path string) (*SQLitePersister, error) {
	if path != ":memory:" {
		dir := filepath.Dir(path)
		if dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create directory %s: %w", dir, err)
			}
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// A single connection keeps ":memory:" databases alive between calls.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, notDatabaseError(path, fmt.Errorf("ping database: %w", err))
	}

	p := &SQLitePersister{db: db, path: path}
	if err := p.migrate(); err != nil {
		_ = db.Close()
		return nil, notDatabaseError(path, fmt.Errorf("migrate database: %w", err))
	}
	return p, nil
}

// notDatabaseError turns SQLite's "file is not a database" into a *ParseError
// for path. Other errors are returned unchanged.
func notDatabaseError(path string, err error) error {
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code()&0xff == sqlite3.SQLITE_NOTADB {
		return &ParseError{Path: path, Format: FormatSQLite, Err: err}
	}
	return err
}

func (p *SQLitePersister) migrate() error {
	_, err := p.db.Exec(`
		CREATE TABLE IF NOT EXISTS tasks (
			position INTEGER PRIMARY KEY,
			title TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			due_date TEXT NOT NULL DEFAULT '',
			priority TEXT NOT NULL DEFAULT '',
			category TEXT NOT NULL DEFAULT '',
			is_complete INTEGER NOT NULL DEFAULT 0
		);
	`)
	return err
}

// Path returns the database file path.
func (p *SQLitePersister) Path() string { return p.path }

// Save replaces the stored collection inside one transaction.
func (p *SQLitePersister) Save(tasks []models.Task) error {
	tx, err := p.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM tasks`); err != nil {
		return fmt.Errorf("clear tasks: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO tasks (
			position,
			title,
			description,
			due_date,
			priority,
			category,
			is_complete
		) VALUES (?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i, t := range tasks {
		if _, err := stmt.Exec(
			i,
			t.Title,
			t.Description,
			t.DueDate,
			string(t.Priority),
			t.Category,
			t.IsComplete,
		); err != nil {
			return fmt.Errorf("insert task %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tasks: %w", err)
	}
	return nil
}

// Load reads every row in position order. A fresh database is an empty collection.
func (p *SQLitePersister) Load() ([]models.Task, error) {
	rows, err := p.db.Query(`
		SELECT
			title,
			description,
			due_date,
			priority,
			category,
			is_complete
		FROM tasks
		ORDER BY position ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	tasks := []models.Task{}
	for rows.Next() {
		var t models.Task
		var priority string
		if err := rows.Scan(
			&t.Title,
			&t.Description,
			&t.DueDate,
			&priority,
			&t.Category,
			&t.IsComplete,
		); err != nil {
			return nil, &ParseError{Path: p.path, Format: FormatSQLite, Err: err}
		}
		t.Priority = models.TaskPriority(priority)
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}
	return tasks, nil
}

// Close releases the database handle.
func (p *SQLitePersister) Close() error {
	return p.db.Close()
}
