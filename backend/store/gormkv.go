package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"edumarket/backend/engine"
	"edumarket/backend/models"
)

// GormStore persists KV entries in the kv_entries table.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func (g *GormStore) Get(ctx context.Context, userID, key string, dest any) error {
	var entry models.KVEntry
	err := g.DB.WithContext(ctx).
		Where("user_id = ? AND key = ?", userID, key).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: key %q", engine.ErrNotFound, key)
		}
		return fmt.Errorf("%w: %v", engine.ErrRemote, err)
	}
	if err := json.Unmarshal(entry.Value, dest); err != nil {
		return fmt.Errorf("%w: key %q: %v", engine.ErrPersistenceCorrupt, key, err)
	}
	return nil
}

func (g *GormStore) Set(ctx context.Context, userID, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: key %q: %v", engine.ErrValidation, key, err)
	}

	entry := models.KVEntry{UserID: userID, Key: key, Value: raw}
	err = g.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&entry).Error
	if err != nil {
		return fmt.Errorf("%w: %v", engine.ErrRemote, err)
	}
	return nil
}

func (g *GormStore) Delete(ctx context.Context, userID, key string) error {
	err := g.DB.WithContext(ctx).
		Where("user_id = ? AND key = ?", userID, key).
		Delete(&models.KVEntry{}).Error
	if err != nil {
		return fmt.Errorf("%w: %v", engine.ErrRemote, err)
	}
	return nil
}
