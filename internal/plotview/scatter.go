package plotview

import (
	"fmt"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/metrolab/displace/internal/displace"
)

// ScatterPNG renders the expanded point set to a PNG scatter plot.
// Originals are coloured per category with their classification key drawn
// as a text label beside the marker; derived points share one uniform
// colour. All originals are plotted regardless of whether they were
// written to the output file.
func ScatterPNG(path string, expanded []displace.Expanded, table displace.Table) error {
	p := plot.New()
	p.Title.Text = "Displaced points"
	p.X.Label.Text = "X (mm)"
	p.Y.Label.Text = "Y (mm)"

	nCats := len(table.Categories)

	// Originals grouped by category, with key text labels.
	for i, cat := range table.Categories {
		var pts plotter.XYs
		var lbl plotter.XYLabels
		for _, e := range expanded {
			if e.Derived || e.Category != i {
				continue
			}
			pts = append(pts, plotter.XY{X: e.X, Y: e.Y})
			if e.Key.Valid() {
				lbl.XYs = append(lbl.XYs, plotter.XY{X: e.X, Y: e.Y})
				lbl.Labels = append(lbl.Labels, strconv.FormatInt(int64(e.Key), 10))
			}
		}
		if len(pts) == 0 {
			continue
		}

		sc, err := plotter.NewScatter(pts)
		if err != nil {
			return fmt.Errorf("category %s scatter: %w", cat.Name, err)
		}
		sc.GlyphStyle.Color = categoryColor(cat.Name, i, nCats)
		sc.GlyphStyle.Radius = vg.Points(3)
		p.Add(sc)
		p.Legend.Add(cat.Name, sc)

		if len(lbl.Labels) > 0 {
			labels, err := plotter.NewLabels(lbl)
			if err != nil {
				return fmt.Errorf("category %s labels: %w", cat.Name, err)
			}
			labels.Offset = vg.Point{X: vg.Points(4), Y: vg.Points(4)}
			p.Add(labels)
		}
	}

	// Derived points, one uniform series.
	var derived plotter.XYs
	for _, e := range expanded {
		if e.Derived {
			derived = append(derived, plotter.XY{X: e.X, Y: e.Y})
		}
	}
	if len(derived) > 0 {
		sc, err := plotter.NewScatter(derived)
		if err != nil {
			return fmt.Errorf("derived scatter: %w", err)
		}
		sc.GlyphStyle.Color = derivedColor
		sc.GlyphStyle.Radius = vg.Points(2)
		p.Add(sc)
		p.Legend.Add("displaced", sc)
	}

	p.Legend.Top = true
	p.Legend.Left = false

	if err := p.Save(8*vg.Inch, 8*vg.Inch, path); err != nil {
		return fmt.Errorf("save scatter plot: %w", err)
	}
	return nil
}
