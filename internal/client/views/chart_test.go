package views

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plantkeeper/plantkeeper/internal/client/models"
)

func rec(id int, day int, height float64) models.GrowthRecord {
	return models.GrowthRecord{
		ID:         id,
		Height:     height,
		RecordDate: time.Date(2024, time.June, day, 12, 0, 0, 0, time.UTC),
	}
}

func TestSortByDateAscending_Ordered(t *testing.T) {
	records := []models.GrowthRecord{rec(1, 20, 15), rec(2, 5, 8), rec(3, 12, 11)}

	sorted := SortByDateAscending(records)

	for i := 1; i < len(sorted); i++ {
		assert.False(t, sorted[i].RecordDate.Before(sorted[i-1].RecordDate),
			"records must be in non-decreasing date order")
	}
	// Input order untouched.
	assert.Equal(t, 1, records[0].ID)
}

func TestSortByDateAscending_StableForEqualDates(t *testing.T) {
	same := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	records := []models.GrowthRecord{
		{ID: 1, RecordDate: same},
		{ID: 2, RecordDate: same},
		{ID: 3, RecordDate: same},
	}

	sorted := SortByDateAscending(records)
	assert.Equal(t, []int{sorted[0].ID, sorted[1].ID, sorted[2].ID}, []int{1, 2, 3})
}

func TestChartSeries_ProjectsToLabelsAndHeights(t *testing.T) {
	records := []models.GrowthRecord{rec(1, 20, 15), rec(2, 5, 8)}

	points := ChartSeries(records)

	require.Len(t, points, 2)
	assert.Equal(t, ChartPoint{Label: "2024-06-05", Height: 8}, points[0])
	assert.Equal(t, ChartPoint{Label: "2024-06-20", Height: 15}, points[1])
}

func TestChartSeries_EmptyInput(t *testing.T) {
	points := ChartSeries(nil)
	assert.Empty(t, points, "zero records must yield an empty series, not zero-valued points")
}
