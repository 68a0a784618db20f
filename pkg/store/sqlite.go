package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"spellgo/pkg/db"
	"spellgo/pkg/model"
)

// Store defines the repository interface.
// It composes all sub-interfaces for full store access.
// Consumers should depend on specific sub-interfaces when possible.
type Store interface {
	CacheStore
	StateStore
	HistoryStore

	// Close closes the store connection.
	Close() error
}

// SQLiteStore implements Store.
type SQLiteStore struct {
	db *db.DB
}

// NewSQLiteStore creates a new store.
func NewSQLiteStore(db *db.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// --- Cache ---

func (s *SQLiteStore) GetCache(ctx context.Context, key string) ([]byte, bool) {
	row := s.db.QueryRowContext(ctx, "SELECT value FROM cache WHERE key = ?", key)
	var val []byte
	if err := row.Scan(&val); err != nil {
		return nil, false
	}
	return val, true
}

func (s *SQLiteStore) SetCache(ctx context.Context, key string, val []byte) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO cache (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value, created_at = CURRENT_TIMESTAMP",
		key, val)
	return err
}

// --- State ---

func (s *SQLiteStore) GetState(ctx context.Context, key string) (string, bool) {
	row := s.db.QueryRowContext(ctx, "SELECT value FROM persistent_state WHERE key = ?", key)
	var val string
	if err := row.Scan(&val); err != nil {
		return "", false
	}
	return val, true
}

func (s *SQLiteStore) SetState(ctx context.Context, key, val string) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO persistent_state (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, val)
	return err
}

func (s *SQLiteStore) DeleteState(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM persistent_state WHERE key = ?", key)
	return err
}

// --- History ---

func (s *SQLiteStore) SaveGame(ctx context.Context, g *model.GameRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO games (id, score, questions, min_word_length, max_word_length, dictionary_source, finished_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		g.ID, g.Score, g.Questions, g.MinWordLength, g.MaxWordLength, g.DictionarySource, g.FinishedAt.UTC())
	if err != nil {
		return fmt.Errorf("insert game: %w", err)
	}

	for i, w := range g.Words {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO game_words (game_id, position, word, answer, correct) VALUES (?, ?, ?, ?, ?)",
			g.ID, i, w.Word, w.Answer, w.Correct)
		if err != nil {
			return fmt.Errorf("insert game word: %w", err)
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) GetGame(ctx context.Context, id string) (*model.GameRecord, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, score, questions, min_word_length, max_word_length, dictionary_source, finished_at
		 FROM games WHERE id = ?`, id)

	g, err := scanGame(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, err
	}

	if err := s.loadWords(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *SQLiteStore) ListGames(ctx context.Context, limit int) ([]*model.GameRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, score, questions, min_word_length, max_word_length, dictionary_source, finished_at
		 FROM games ORDER BY finished_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var games []*model.GameRecord
	for rows.Next() {
		g, err := scanGame(rows)
		if err != nil {
			return nil, err
		}
		games = append(games, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, g := range games {
		if err := s.loadWords(ctx, g); err != nil {
			return nil, err
		}
	}
	return games, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGame(row rowScanner) (*model.GameRecord, error) {
	var g model.GameRecord
	err := row.Scan(&g.ID, &g.Score, &g.Questions, &g.MinWordLength, &g.MaxWordLength, &g.DictionarySource, &g.FinishedAt)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (s *SQLiteStore) loadWords(ctx context.Context, g *model.GameRecord) error {
	rows, err := s.db.QueryContext(ctx,
		"SELECT word, answer, correct FROM game_words WHERE game_id = ? ORDER BY position", g.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var w model.WordResult
		if err := rows.Scan(&w.Word, &w.Answer, &w.Correct); err != nil {
			return err
		}
		g.Words = append(g.Words, w)
	}
	return rows.Err()
}
