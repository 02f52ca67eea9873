// Package models defines the wire-level domain types of the plant backend:
// plants, growth records, care tasks and the read-only catalogs. JSON tags
// match the backend field names exactly.
package models

import (
	"fmt"

	"github.com/plantkeeper/plantkeeper/internal/common"
	"github.com/plantkeeper/plantkeeper/internal/timex"
)

// Plant is a tracked specimen. The backend assigns the id; this UI never
// mutates a plant in place and exposes no delete flow.
type Plant struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	Species      string     `json:"species"`
	PlantingDate timex.Date `json:"plantingDate"`
	Description  string     `json:"description,omitempty"`
	ImageURL     string     `json:"imageUrl,omitempty"`
}

// NewPlant is the creation payload for POST /api/plants.
type NewPlant struct {
	Name         string     `json:"name"`
	Species      string     `json:"species"`
	PlantingDate timex.Date `json:"plantingDate"`
	Description  string     `json:"description,omitempty"`
	ImageURL     string     `json:"imageUrl,omitempty"`
}

func (p NewPlant) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: name is required", common.ErrValidation)
	}
	if p.Species == "" {
		return fmt.Errorf("%w: species is required", common.ErrValidation)
	}
	if p.PlantingDate.IsZero() {
		return fmt.Errorf("%w: planting date is required", common.ErrValidation)
	}
	return nil
}
