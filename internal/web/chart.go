package web

import (
	"fmt"
	"strings"

	"github.com/plantkeeper/plantkeeper/internal/client/views"
)

// Chart is the growth chart ready for the SVG template: a polyline through
// the height samples in date order, plus the axis labels.
type Chart struct {
	Points string
	Labels []string
	Min    float64
	Max    float64
	Width  int
	Height int
}

const (
	chartWidth   = 640
	chartHeight  = 240
	chartPadding = 24
)

// BuildChart lays a date-ordered height series out on a fixed canvas. Fewer
// than two points yield an empty chart; a flat series is centered
// vertically.
func BuildChart(series []views.ChartPoint) Chart {
	c := Chart{Width: chartWidth, Height: chartHeight}
	if len(series) < 2 {
		return c
	}

	c.Min, c.Max = series[0].Height, series[0].Height
	for _, p := range series[1:] {
		c.Min = min(c.Min, p.Height)
		c.Max = max(c.Max, p.Height)
	}

	span := c.Max - c.Min
	innerW := float64(chartWidth - 2*chartPadding)
	innerH := float64(chartHeight - 2*chartPadding)
	step := innerW / float64(len(series)-1)

	coords := make([]string, 0, len(series))
	for i, p := range series {
		x := chartPadding + step*float64(i)
		y := float64(chartHeight) / 2
		if span > 0 {
			y = chartPadding + innerH*(1-(p.Height-c.Min)/span)
		}
		coords = append(coords, fmt.Sprintf("%.1f,%.1f", x, y))
		c.Labels = append(c.Labels, p.Label)
	}
	c.Points = strings.Join(coords, " ")
	return c
}
