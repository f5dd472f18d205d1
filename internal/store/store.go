package store

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/amirkokoaa-byte/sales/internal/logger"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var logStore = logger.WithComponent("store")

// record is one named collection persisted as a JSON blob. The four
// collections (branches, orders, invoices, contacts) each own one key and
// are saved independently; keys are not transactionally coordinated.
type record struct {
	Key       string         `gorm:"primaryKey;size:64"`
	Payload   datatypes.JSON `gorm:"not null"`
	UpdatedAt time.Time
}

func (record) TableName() string { return "records" }

// Store is a durable key-value home for serialized collections.
type Store struct {
	db *gorm.DB
}

// NewWithDB wraps an already-open gorm connection; the records table must
// exist (tests use this with an in-memory sqlite handle).
func NewWithDB(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&record{}); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// DB exposes the underlying connection for health checks.
func (s *Store) DB() *gorm.DB { return s.db }

// Load returns the collection saved under key, or def when the key is
// absent, the payload fails to parse, or the read fails. It never
// surfaces an error: the worst case is falling back to the default.
func Load[T any](s *Store, key string, def T) T {
	var rec record
	if err := s.db.First(&rec, "key = ?", key).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logStore.Warn().Err(err).Str("key", key).Msg("load failed, using default")
		}
		return def
	}
	var out T
	if err := json.Unmarshal(rec.Payload, &out); err != nil {
		logStore.Warn().Err(err).Str("key", key).Msg("corrupt payload, using default")
		return def
	}
	return out
}

// Save serializes the collection and upserts it under key. Best effort:
// a failed write is logged and swallowed, an unwritten store must never
// crash the application.
func Save[T any](s *Store, key string, v T) {
	payload, err := json.Marshal(v)
	if err != nil {
		logStore.Warn().Err(err).Str("key", key).Msg("marshal failed, skipping save")
		return
	}
	rec := record{Key: key, Payload: payload, UpdatedAt: time.Now()}
	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&rec).Error
	if err != nil {
		logStore.Warn().Err(err).Str("key", key).Msg("save failed")
	}
}
