package models

import (
	"fmt"
	"time"

	"github.com/plantkeeper/plantkeeper/internal/common"
)

// GrowthRecord is one timestamped measurement for a plant. Records are
// append-only from the UI's perspective; RecordDate is stamped at submit time
// and never user-editable.
type GrowthRecord struct {
	ID         int       `json:"id"`
	PlantID    int       `json:"plantId,omitempty"`
	Height     float64   `json:"height"`
	LeafCount  *int      `json:"leafCount,omitempty"`
	Notes      string    `json:"notes,omitempty"`
	ImageURL   string    `json:"imageUrl,omitempty"`
	RecordDate time.Time `json:"recordDate"`
}

// NewGrowthRecord is the creation payload for POST .../growth-records.
type NewGrowthRecord struct {
	Height     float64   `json:"height"`
	LeafCount  *int      `json:"leafCount,omitempty"`
	Notes      string    `json:"notes,omitempty"`
	ImageURL   string    `json:"imageUrl,omitempty"`
	RecordDate time.Time `json:"recordDate"`
}

func (r NewGrowthRecord) Validate() error {
	if r.Height <= 0 {
		return fmt.Errorf("%w: height must be a positive number of centimeters", common.ErrValidation)
	}
	if r.LeafCount != nil && *r.LeafCount < 0 {
		return fmt.Errorf("%w: leaf count cannot be negative", common.ErrValidation)
	}
	if r.RecordDate.IsZero() {
		return fmt.Errorf("%w: record date is required", common.ErrValidation)
	}
	return nil
}
