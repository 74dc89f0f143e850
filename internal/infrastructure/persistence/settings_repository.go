package persistence

import (
	"context"
	"errors"

	"github.com/stocktrack/backend/internal/domain/settings"
	"github.com/stocktrack/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormSettingsRepository implements settings.SettingsRepository using GORM.
// Settings live in a single fixed-ID row created lazily on first read.
type GormSettingsRepository struct {
	db *gorm.DB
}

// NewGormSettingsRepository creates a new GormSettingsRepository
func NewGormSettingsRepository(db *gorm.DB) *GormSettingsRepository {
	return &GormSettingsRepository{db: db}
}

// Get returns the settings row, creating it with defaults when missing
func (r *GormSettingsRepository) Get(ctx context.Context) (*settings.Settings, error) {
	var cfg settings.Settings
	err := r.db.WithContext(ctx).First(&cfg, "id = ?", 1).Error
	if err == nil {
		return &cfg, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, shared.NewPersistenceError(err)
	}

	fresh := settings.NewSettings()
	if err := r.db.WithContext(ctx).Create(fresh).Error; err != nil {
		return nil, shared.NewPersistenceError(err)
	}
	return fresh, nil
}

// Save persists the settings row
func (r *GormSettingsRepository) Save(ctx context.Context, cfg *settings.Settings) error {
	if err := r.db.WithContext(ctx).Save(cfg).Error; err != nil {
		return shared.NewPersistenceError(err)
	}
	return nil
}

// Ensure GormSettingsRepository implements SettingsRepository
var _ settings.SettingsRepository = (*GormSettingsRepository)(nil)
