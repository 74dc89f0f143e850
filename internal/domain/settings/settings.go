package settings

import (
	"time"
)

// DefaultLowStockThreshold applies until the merchant changes it
const DefaultLowStockThreshold int64 = 5

// Settings holds merchant-wide preferences. A single row with a fixed ID
// backs it; reads create the row on demand.
type Settings struct {
	ID                int64     `gorm:"primaryKey"`
	LowStockThreshold int64     `gorm:"not null;default:5"`
	CreatedAt         time.Time `gorm:"not null"`
	UpdatedAt         time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (Settings) TableName() string {
	return "settings"
}

// NewSettings returns settings with defaults applied
func NewSettings() *Settings {
	now := time.Now()
	return &Settings{
		ID:                1,
		LowStockThreshold: DefaultLowStockThreshold,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// SetLowStockThreshold updates the threshold, clamping negatives to zero
func (s *Settings) SetLowStockThreshold(threshold int64) {
	if threshold < 0 {
		threshold = 0
	}
	s.LowStockThreshold = threshold
	s.UpdatedAt = time.Now()
}
