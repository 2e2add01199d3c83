package internal

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

// Well-known storage keys. Values are plain strings, JSON-encoded where
// structured.
const (
	keyChatHistory = "chatHistory"
	keyLanguage    = "programmingLanguage"
	keyTheme       = "theme"
)

// bufferKey returns the storage key for a language's code buffer.
func bufferKey(language string) string {
	return "code_" + language
}

// Store is the durable flat key-value map behind the workspace: per-language
// code buffers, the bounded chat history, and user preferences. Last write
// wins per key.
type Store struct {
	db *sql.DB
}

// OpenStore opens (creating if needed) the workspace database at path.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, &StorageError{Key: path, Op: "open", Err: err}
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, &StorageError{Key: path, Op: "open", Err: err}
	}

	schema := `CREATE TABLE IF NOT EXISTS workspace_kv (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, &StorageError{Key: path, Op: "open", Err: fmt.Errorf("create schema: %w", err)}
	}

	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the raw value for key. ok is false when the key is absent.
func (s *Store) Get(key string) (value string, ok bool, err error) {
	row := s.db.QueryRow("SELECT value FROM workspace_kv WHERE key = ?", key)
	switch err := row.Scan(&value); {
	case errors.Is(err, sql.ErrNoRows):
		return "", false, nil
	case err != nil:
		return "", false, &StorageError{Key: key, Op: "get", Err: err}
	}
	return value, true, nil
}

// Put writes value under key, replacing any previous value.
func (s *Store) Put(key, value string) error {
	_, err := s.db.Exec(
		"INSERT INTO workspace_kv (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value,
	)
	if err != nil {
		return &StorageError{Key: key, Op: "put", Err: err}
	}
	return nil
}

// SaveBuffer persists the code buffer for language.
func (s *Store) SaveBuffer(language, text string) error {
	return s.Put(bufferKey(language), text)
}

// LoadBuffer returns the stored buffer for language, or the language's
// default snippet when nothing usable is stored. Storage failures degrade to
// the default as well; a missing buffer is never an error.
func (s *Store) LoadBuffer(language string) string {
	value, ok, err := s.Get(bufferKey(language))
	if err != nil {
		LogWarn("Failed to load buffer for %s: %v", language, err)
		return LookupLanguage(language).DefaultSnippet
	}
	if !ok {
		return LookupLanguage(language).DefaultSnippet
	}
	return value
}

// SaveHistory persists the chat history as a JSON message array.
func (s *Store) SaveHistory(history *ChatHistory) error {
	data, err := json.Marshal(history)
	if err != nil {
		return &StorageError{Key: keyChatHistory, Op: "put", Err: err}
	}
	return s.Put(keyChatHistory, string(data))
}

// LoadHistory returns the stored chat history. Missing or malformed data
// yields an empty history.
func (s *Store) LoadHistory() *ChatHistory {
	history := NewChatHistory()
	value, ok, err := s.Get(keyChatHistory)
	if err != nil {
		LogWarn("Failed to load chat history: %v", err)
		return history
	}
	if !ok {
		return history
	}
	if err := json.Unmarshal([]byte(value), history); err != nil {
		LogWarn("Malformed stored chat history, starting fresh: %v", err)
		return NewChatHistory()
	}
	return history
}

// SaveLanguage persists the selected language.
func (s *Store) SaveLanguage(language string) error {
	return s.Put(keyLanguage, language)
}

// LoadLanguage returns the stored language preference, falling back to the
// default when absent or unknown.
func (s *Store) LoadLanguage() string {
	value, ok, err := s.Get(keyLanguage)
	if err != nil {
		LogWarn("Failed to load language preference: %v", err)
		return DefaultLanguage()
	}
	if !ok || !IsSupportedLanguage(value) {
		return DefaultLanguage()
	}
	return value
}

// SaveTheme persists the theme preference.
func (s *Store) SaveTheme(theme string) error {
	return s.Put(keyTheme, theme)
}

// LoadTheme returns the stored theme, or fallback when nothing is stored.
// Anything other than "light" or "dark" degrades to "dark".
func (s *Store) LoadTheme(fallback string) string {
	value, ok, err := s.Get(keyTheme)
	if err != nil || !ok {
		value = fallback
	}
	if value != "light" && value != "dark" {
		return "dark"
	}
	return value
}
