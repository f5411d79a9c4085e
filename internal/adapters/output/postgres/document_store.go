package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"bookshelf/internal/domain"
	"bookshelf/internal/ports/output"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const defaultTimeout = 3 * time.Second

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Compile-time check to ensure DocumentStore implements the output port
var _ output.DocumentStore = (*DocumentStore)(nil)

// DocumentStore struct - Secondary/Driven adapter for PostgreSQL
type DocumentStore struct {
	dbGorm  *gorm.DB
	timeout time.Duration
}

// NewDocumentStore func - Creates new PostgreSQL document store and migrates its tables
func NewDocumentStore(dbGorm *gorm.DB, timeout time.Duration) (*DocumentStore, error) {
	logrus.Info("Migrate database ...")
	if err := MigrateDatabase(dbGorm); err != nil {
		return nil, fmt.Errorf("migrate document store: %w", err)
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &DocumentStore{
		dbGorm:  dbGorm,
		timeout: timeout,
	}, nil
}

// Exists func - checks documents first, then lists
func (p *DocumentStore) Exists(ctx context.Context, key string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	var count int64
	if err := p.dbGorm.WithContext(ctx).Model(&Document{}).Where("key = ?", key).Count(&count).Error; err != nil {
		return false, unavailable("exists", err)
	}
	if count > 0 {
		return true, nil
	}
	if err := p.dbGorm.WithContext(ctx).Model(&ListEntry{}).Where("list_key = ?", key).Count(&count).Error; err != nil {
		return false, unavailable("exists", err)
	}
	return count > 0, nil
}

// Get func
func (p *DocumentStore) Get(ctx context.Context, key string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	var doc Document
	err := p.dbGorm.WithContext(ctx).Where("key = ?", key).First(&doc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", fmt.Errorf("%s: %w", key, domain.ErrNotFound)
	}
	if err != nil {
		return "", unavailable("get", err)
	}
	return doc.Value, nil
}

// Set func - upserts the document
func (p *DocumentStore) Set(ctx context.Context, key, value string) error {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	doc := Document{Key: key, Value: value}
	err := p.dbGorm.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&doc).Error
	if err != nil {
		return unavailable("set", err)
	}
	return nil
}

// Keys func - document and list keys starting with prefix
func (p *DocumentStore) Keys(ctx context.Context, prefix string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	pattern := likeEscaper.Replace(prefix) + "%"
	keys := make([]string, 0)
	err := p.dbGorm.WithContext(ctx).Model(&Document{}).
		Where("key LIKE ?", pattern).
		Pluck("key", &keys).Error
	if err != nil {
		return nil, unavailable("keys", err)
	}
	listKeys := make([]string, 0)
	err = p.dbGorm.WithContext(ctx).Model(&ListEntry{}).
		Distinct("list_key").
		Where("list_key LIKE ?", pattern).
		Pluck("list_key", &listKeys).Error
	if err != nil {
		return nil, unavailable("keys", err)
	}
	return append(keys, listKeys...), nil
}

// AppendUnique func - the unique index turns a duplicate insert into a no-op
func (p *DocumentStore) AppendUnique(ctx context.Context, key, value string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	entry := ListEntry{ListKey: key, Value: value}
	tx := p.dbGorm.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&entry)
	if tx.Error != nil {
		return false, unavailable("append", tx.Error)
	}
	return tx.RowsAffected == 1, nil
}

// Range func - list values in insertion order
func (p *DocumentStore) Range(ctx context.Context, key string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	values := make([]string, 0)
	err := p.dbGorm.WithContext(ctx).Model(&ListEntry{}).
		Where("list_key = ?", key).
		Order("id ASC").
		Pluck("value", &values).Error
	if err != nil {
		return nil, unavailable("range", err)
	}
	return values, nil
}

// Ping func
func (p *DocumentStore) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	sqlDB, err := p.dbGorm.DB()
	if err != nil {
		return unavailable("ping", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return unavailable("ping", err)
	}
	return nil
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%w: postgres %s: %v", domain.ErrStoreUnavailable, op, err)
}
