// ABOUTME: SQLite-based settings store for persistent key/value state
// ABOUTME: Provides a file-based store that survives application restarts

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"clipper-app-api/core/interfaces"
)

// Client implements the Store interface using SQLite
type Client struct {
	db       *sql.DB
	filePath string
}

// NewSQLiteStore creates a new SQLite settings store
func NewSQLiteStore(filePath string) (*Client, error) {
	if filePath == "" {
		filePath = "settings.db"
	}

	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	client := &Client{
		db:       db,
		filePath: filePath,
	}

	if err := client.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return client, nil
}

// initSchema creates the settings table if it doesn't exist
func (c *Client) initSchema() error {
	query := `
		CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`

	_, err := c.db.Exec(query)
	return err
}

// Get retrieves a value from the store. A missing key is reported as
// interfaces.ErrNotFound so callers can distinguish it from a storage fault.
func (c *Client) Get(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", errors.New("key cannot be empty")
	}

	var value string
	query := "SELECT value FROM settings WHERE key = ?"
	err := c.db.QueryRowContext(ctx, query, key).Scan(&value)

	if err == sql.ErrNoRows {
		return "", interfaces.ErrNotFound
	}

	if err != nil {
		return "", fmt.Errorf("failed to get value: %w", err)
	}

	return value, nil
}

// Set stores a value, replacing any previous value for the key
func (c *Client) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}

	query := `
		INSERT OR REPLACE INTO settings (key, value)
		VALUES (?, ?)
	`

	_, err := c.db.ExecContext(ctx, query, key, value)
	if err != nil {
		return fmt.Errorf("failed to set value: %w", err)
	}

	return nil
}

// Delete removes a value from the store. Deleting a missing key is not an
// error.
func (c *Client) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}

	_, err := c.db.ExecContext(ctx, "DELETE FROM settings WHERE key = ?", key)
	if err != nil {
		return fmt.Errorf("failed to delete value: %w", err)
	}

	return nil
}

// Close closes the underlying database connection
func (c *Client) Close() error {
	return c.db.Close()
}
