// Package plotting renders the cluster scatter to a PNG for the headless
// command.
package plotting

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/Khushibung05/KMeans/pkg/segment"
)

var palette = []color.RGBA{
	{R: 31, G: 119, B: 180, A: 255},
	{R: 255, G: 127, B: 14, A: 255},
	{R: 44, G: 160, B: 44, A: 255},
	{R: 214, G: 39, B: 40, A: 255},
	{R: 148, G: 103, B: 189, A: 255},
	{R: 140, G: 86, B: 75, A: 255},
	{R: 227, G: 119, B: 194, A: 255},
	{R: 127, G: 127, B: 127, A: 255},
	{R: 188, G: 189, B: 34, A: 255},
	{R: 23, G: 190, B: 207, A: 255},
}

// SaveScatter writes a scatter plot of the clustered points to filename,
// one color per cluster, with the cluster centers overlaid as cross glyphs
// and axes labeled by feature name.
func SaveScatter(res *segment.Result, filename string) error {
	p := plot.New()
	p.Title.Text = "K-Means Clustering Result"
	p.X.Label.Text = res.Feature1
	p.Y.Label.Text = res.Feature2

	byCluster := make(map[int]plotter.XYs)
	for i, row := range res.Points {
		c := res.Assignments[i]
		byCluster[c] = append(byCluster[c], plotter.XY{X: row[0], Y: row[1]})
	}

	for _, summary := range res.Summaries {
		pts := byCluster[summary.Cluster]
		s, err := plotter.NewScatter(pts)
		if err != nil {
			return fmt.Errorf("plotting cluster %d: %w", summary.Cluster, err)
		}
		s.Color = palette[summary.Cluster%len(palette)]
		p.Add(s)
		p.Legend.Add(fmt.Sprintf("Cluster %d", summary.Cluster), s)
	}

	centerPts := make(plotter.XYs, len(res.Centers))
	for i, c := range res.Centers {
		centerPts[i] = plotter.XY{X: c[0], Y: c[1]}
	}
	centers, err := plotter.NewScatter(centerPts)
	if err != nil {
		return fmt.Errorf("plotting centers: %w", err)
	}
	centers.Color = color.RGBA{A: 255}
	centers.Shape = draw.CrossGlyph{}
	centers.Radius = vg.Points(5)
	p.Add(centers)
	p.Legend.Add("Cluster Centers", centers)

	if err := p.Save(6*vg.Inch, 6*vg.Inch, filename); err != nil {
		return fmt.Errorf("saving plot: %w", err)
	}
	return nil
}
