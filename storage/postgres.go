package storage

import (
	"errors"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Record is one persisted collection, stored whole as a JSON document.
// Value is a string so the driver sends it as text, which casts to jsonb.
type Record struct {
	Key   string `gorm:"primaryKey"`
	Value string `gorm:"type:jsonb;not null"`
}

func (Record) TableName() string {
	return "kv_records"
}

// GormStore keeps collections in a single key/value table. It exists for
// deployments that want the store to outlive one machine; the contract is
// identical to the file backend.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(dsn string) (*GormStore, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, err
	}
	return &GormStore{db: db}, nil
}

func (g *GormStore) Get(key string) ([]byte, error) {
	var rec Record
	if err := g.db.First(&rec, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return []byte(rec.Value), nil
}

func (g *GormStore) Put(key string, value []byte) error {
	rec := Record{Key: key, Value: string(value)}
	return g.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&rec).Error
}
