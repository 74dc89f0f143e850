package settings

import (
	"context"
	"time"

	"github.com/stocktrack/backend/internal/domain/settings"
)

// SettingsResponse represents merchant settings in API responses
type SettingsResponse struct {
	LowStockThreshold int64     `json:"low_stock_threshold"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// UpdateSettingsRequest represents a settings change
type UpdateSettingsRequest struct {
	LowStockThreshold int64 `json:"low_stock_threshold"`
}

// SettingsService handles merchant settings
type SettingsService struct {
	settingsRepo settings.SettingsRepository
}

// NewSettingsService creates a new SettingsService
func NewSettingsService(settingsRepo settings.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// Get returns the current settings, creating defaults on first read
func (s *SettingsService) Get(ctx context.Context) (*SettingsResponse, error) {
	cfg, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	return &SettingsResponse{
		LowStockThreshold: cfg.LowStockThreshold,
		UpdatedAt:         cfg.UpdatedAt,
	}, nil
}

// Update changes the low-stock threshold; negatives clamp to zero
func (s *SettingsService) Update(ctx context.Context, req UpdateSettingsRequest) (*SettingsResponse, error) {
	cfg, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	cfg.SetLowStockThreshold(req.LowStockThreshold)

	if err := s.settingsRepo.Save(ctx, cfg); err != nil {
		return nil, err
	}

	return &SettingsResponse{
		LowStockThreshold: cfg.LowStockThreshold,
		UpdatedAt:         cfg.UpdatedAt,
	}, nil
}
