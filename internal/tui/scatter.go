package tui

import (
	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/linechart"

	"github.com/Khushibung05/KMeans/pkg/segment"
	"github.com/Khushibung05/KMeans/pkg/stats"
)

// renderScatter draws the clustered points in original units, one color per
// cluster id, with the cluster centers overlaid as X markers.
func renderScatter(res *segment.Result, width, height int) string {
	xs := make([]float64, len(res.Points))
	ys := make([]float64, len(res.Points))
	for i, p := range res.Points {
		xs[i] = p[0]
		ys[i] = p[1]
	}
	minX, maxX := stats.MinMax(xs)
	minY, maxY := stats.MinMax(ys)
	minX, maxX = pad(minX, maxX)
	minY, maxY = pad(minY, maxY)

	lc := linechart.New(width, height, minX, maxX, minY, maxY,
		linechart.WithXYSteps(4, 4))
	lc.DrawXYAxisAndLabel()

	for i, p := range res.Points {
		lc.DrawRuneWithStyle(
			canvas.Float64Point{X: p[0], Y: p[1]},
			'•',
			clusterStyle(res.Assignments[i]),
		)
	}
	for _, c := range res.Centers {
		lc.DrawRuneWithStyle(
			canvas.Float64Point{X: c[0], Y: c[1]},
			'X',
			centerStyle,
		)
	}
	return lc.View()
}

// pad widens a degenerate or tight range so points do not sit on the chart
// border.
func pad(min, max float64) (float64, float64) {
	span := max - min
	if span == 0 {
		span = 1
	}
	margin := span * 0.05
	return min - margin, max + margin
}
