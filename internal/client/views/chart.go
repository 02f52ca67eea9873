package views

import (
	"slices"

	"github.com/plantkeeper/plantkeeper/internal/client/models"
	"github.com/plantkeeper/plantkeeper/internal/timex"
)

// ChartPoint is one point of the growth chart: a formatted date on the x
// axis and the measured height on the y axis.
type ChartPoint struct {
	Label  string
	Height float64
}

// SortByDateAscending returns a copy of records ordered oldest-first. The
// sort is stable, so records sharing a timestamp keep their input order.
func SortByDateAscending(records []models.GrowthRecord) []models.GrowthRecord {
	sorted := make([]models.GrowthRecord, len(records))
	copy(sorted, records)
	slices.SortStableFunc(sorted, func(a, b models.GrowthRecord) int {
		return a.RecordDate.Compare(b.RecordDate)
	})
	return sorted
}

// ChartSeries projects growth records into a chronological height series.
// No aggregation, smoothing or gap-filling; a zero-record input yields an
// empty series and the template renders the explicit empty state instead of
// a chart.
func ChartSeries(records []models.GrowthRecord) []ChartPoint {
	sorted := SortByDateAscending(records)
	points := make([]ChartPoint, 0, len(sorted))
	for _, r := range sorted {
		points = append(points, ChartPoint{
			Label:  r.RecordDate.Format(timex.DateLayout),
			Height: r.Height,
		})
	}
	return points
}
