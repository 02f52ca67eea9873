package web

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plantkeeper/plantkeeper/internal/client/views"
)

func TestBuildChart_NeedsTwoPoints(t *testing.T) {
	assert.Empty(t, BuildChart(nil).Points)
	assert.Empty(t, BuildChart([]views.ChartPoint{{Label: "2024-06-01", Height: 8}}).Points)
}

func TestBuildChart(t *testing.T) {
	c := BuildChart([]views.ChartPoint{
		{Label: "2024-06-01", Height: 8},
		{Label: "2024-06-10", Height: 12.5},
		{Label: "2024-06-20", Height: 18},
	})

	assert.InDelta(t, 8, c.Min, 0.001)
	assert.InDelta(t, 18, c.Max, 0.001)
	assert.Equal(t, []string{"2024-06-01", "2024-06-10", "2024-06-20"}, c.Labels)

	coords := strings.Split(c.Points, " ")
	require.Len(t, coords, 3)

	// Taller samples sit higher on the canvas, so their y decreases.
	ys := make([]float64, 0, 3)
	for _, coord := range coords {
		parts := strings.Split(coord, ",")
		require.Len(t, parts, 2)
		y, err := strconv.ParseFloat(parts[1], 64)
		require.NoError(t, err)
		ys = append(ys, y)
	}
	assert.Greater(t, ys[0], ys[1])
	assert.Greater(t, ys[1], ys[2])
}

func TestBuildChart_FlatSeriesIsCentered(t *testing.T) {
	c := BuildChart([]views.ChartPoint{
		{Label: "2024-06-01", Height: 10},
		{Label: "2024-06-10", Height: 10},
	})
	assert.Equal(t, "24.0,120.0 616.0,120.0", c.Points)
}
