package views

import (
	"time"

	"github.com/plantkeeper/plantkeeper/internal/client/models"
	"github.com/plantkeeper/plantkeeper/internal/timex"
)

// PlantForm holds the raw field values of the create-plant form so a failed
// submission re-renders populated for correction.
type PlantForm struct {
	Name         string
	Species      string
	PlantingDate string
	Description  string
	ImageURL     string

	// Errors maps field names to inline messages after a failed Validate.
	Errors map[string]string
}

// NewPlantForm returns an empty form with the planting date defaulted to
// today.
func NewPlantForm(now time.Time) PlantForm {
	return PlantForm{PlantingDate: timex.DateOf(now).String()}
}

// Validate checks the required fields and produces the creation payload.
// On failure it fills Errors and returns false; the form refuses to submit.
func (f *PlantForm) Validate() (models.NewPlant, bool) {
	f.Errors = make(map[string]string)

	if f.Name == "" {
		f.Errors["name"] = "Plant name is required."
	}
	if f.Species == "" {
		f.Errors["species"] = "Species is required."
	}

	var planted timex.Date
	if f.PlantingDate == "" {
		f.Errors["plantingDate"] = "Planting date is required."
	} else {
		var err error
		planted, err = timex.ParseDate(f.PlantingDate)
		if err != nil {
			f.Errors["plantingDate"] = "Planting date must be a calendar date."
		}
	}

	if len(f.Errors) > 0 {
		return models.NewPlant{}, false
	}
	return models.NewPlant{
		Name:         f.Name,
		Species:      f.Species,
		PlantingDate: planted,
		Description:  f.Description,
		ImageURL:     f.ImageURL,
	}, true
}
