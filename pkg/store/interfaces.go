package store

import (
	"context"

	"spellgo/pkg/model"
)

// CacheStore handles generic key-value caching.
type CacheStore interface {
	GetCache(ctx context.Context, key string) ([]byte, bool)
	SetCache(ctx context.Context, key string, val []byte) error
}

// StateStore handles persistent application state.
type StateStore interface {
	GetState(ctx context.Context, key string) (string, bool)
	SetState(ctx context.Context, key, val string) error
	DeleteState(ctx context.Context, key string) error
}

// HistoryStore handles completed game persistence.
type HistoryStore interface {
	SaveGame(ctx context.Context, g *model.GameRecord) error
	GetGame(ctx context.Context, id string) (*model.GameRecord, error)
	ListGames(ctx context.Context, limit int) ([]*model.GameRecord, error)
}
