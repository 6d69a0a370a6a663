package storage

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// kvEntry is one row of the key-value table.
type kvEntry struct {
	Key   string `gorm:"primaryKey;size:128"`
	Value string `gorm:"type:text;not null"`
}

func (kvEntry) TableName() string { return "kv_entries" }

// Postgres is a Gateway backed by a single key-value table.
type Postgres struct {
	db *gorm.DB
}

func NewPostgres(dsn string) (*Postgres, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	if err := db.AutoMigrate(&kvEntry{}); err != nil {
		return nil, fmt.Errorf("migrate kv table: %w", err)
	}
	return &Postgres{db: db}, nil
}

func (p *Postgres) Get(ctx context.Context, key string) (string, bool, error) {
	var row kvEntry
	err := p.db.WithContext(ctx).First(&row, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %s: %w", key, err)
	}
	return row.Value, true, nil
}

func (p *Postgres) Set(ctx context.Context, key, value string) error {
	err := p.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(&kvEntry{Key: key, Value: value}).Error
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

func (p *Postgres) Remove(ctx context.Context, key string) error {
	if err := p.db.WithContext(ctx).Delete(&kvEntry{}, "key = ?", key).Error; err != nil {
		return fmt.Errorf("remove %s: %w", key, err)
	}
	return nil
}
