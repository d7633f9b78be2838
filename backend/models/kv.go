package models

import (
	"time"

	"gorm.io/datatypes"
)

// KVEntry backs the key-value persistence provider when running on
// Postgres. Values are JSON documents; last write wins per (user, key).
type KVEntry struct {
	UserID    string         `gorm:"primaryKey" json:"user_id"`
	Key       string         `gorm:"primaryKey" json:"key"`
	Value     datatypes.JSON `json:"value"`
	UpdatedAt time.Time      `json:"updated_at"`
}
