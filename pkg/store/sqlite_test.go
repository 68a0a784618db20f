package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"spellgo/pkg/db"
	"spellgo/pkg/model"
)

func TestSQLiteStore(t *testing.T) {
	tempDir := t.TempDir()
	dbPath := filepath.Join(tempDir, "test.db")

	d, err := db.Init(dbPath)
	if err != nil {
		t.Fatalf("Failed to init DB: %v", err)
	}
	defer d.Close()

	store := NewSQLiteStore(d)
	ctx := context.Background()

	testCache(t, ctx, store)
	testState(t, ctx, store)
	testHistory(t, ctx, store)
}

func testCache(t *testing.T, ctx context.Context, store *SQLiteStore) {
	t.Run("Cache", func(t *testing.T) {
		if _, hit := store.GetCache(ctx, "dict:wordset"); hit {
			t.Error("expected miss for unknown key")
		}

		if err := store.SetCache(ctx, "dict:wordset", []byte("payload")); err != nil {
			t.Errorf("SetCache failed: %v", err)
		}

		val, hit := store.GetCache(ctx, "dict:wordset")
		if !hit {
			t.Fatal("expected cache hit")
		}
		if string(val) != "payload" {
			t.Errorf("expected 'payload', got %q", val)
		}

		// Overwrite
		if err := store.SetCache(ctx, "dict:wordset", []byte("updated")); err != nil {
			t.Errorf("SetCache overwrite failed: %v", err)
		}
		val, _ = store.GetCache(ctx, "dict:wordset")
		if string(val) != "updated" {
			t.Errorf("expected 'updated', got %q", val)
		}
	})
}

func testState(t *testing.T, ctx context.Context, store *SQLiteStore) {
	t.Run("State", func(t *testing.T) {
		if err := store.SetState(ctx, "volume", "0.8"); err != nil {
			t.Errorf("SetState failed: %v", err)
		}

		val, ok := store.GetState(ctx, "volume")
		if !ok || val != "0.8" {
			t.Errorf("expected volume 0.8, got %q (ok=%v)", val, ok)
		}

		if err := store.DeleteState(ctx, "volume"); err != nil {
			t.Errorf("DeleteState failed: %v", err)
		}
		if _, ok := store.GetState(ctx, "volume"); ok {
			t.Error("expected state to be deleted")
		}
	})
}

func testHistory(t *testing.T, ctx context.Context, store *SQLiteStore) {
	t.Run("History", func(t *testing.T) {
		g := &model.GameRecord{
			ID:               "game-1",
			Score:            2,
			Questions:        3,
			MinWordLength:    5,
			MaxWordLength:    7,
			DictionarySource: "builtin",
			FinishedAt:       time.Now(),
			Words: []model.WordResult{
				{Word: "apple", Answer: "apple", Correct: true},
				{Word: "banana", Answer: "banan", Correct: false},
				{Word: "cherry", Answer: "cherry", Correct: true},
			},
		}

		if err := store.SaveGame(ctx, g); err != nil {
			t.Fatalf("SaveGame failed: %v", err)
		}

		loaded, err := store.GetGame(ctx, "game-1")
		if err != nil {
			t.Fatalf("GetGame failed: %v", err)
		}
		if loaded == nil {
			t.Fatal("GetGame returned nil")
		}
		if loaded.Score != 2 {
			t.Errorf("expected score 2, got %d", loaded.Score)
		}
		if len(loaded.Words) != 3 {
			t.Fatalf("expected 3 words, got %d", len(loaded.Words))
		}
		// Insertion order preserved
		if loaded.Words[1].Word != "banana" || loaded.Words[1].Correct {
			t.Errorf("unexpected second word result: %+v", loaded.Words[1])
		}

		missing, err := store.GetGame(ctx, "nope")
		if err != nil {
			t.Errorf("GetGame for missing id errored: %v", err)
		}
		if missing != nil {
			t.Error("expected nil for missing game")
		}

		games, err := store.ListGames(ctx, 10)
		if err != nil {
			t.Fatalf("ListGames failed: %v", err)
		}
		if len(games) != 1 {
			t.Errorf("expected 1 game, got %d", len(games))
		}
	})
}
