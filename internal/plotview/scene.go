package plotview

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/metrolab/displace/internal/displace"
)

// SceneHTML renders the expanded point set as a standalone interactive
// HTML scatter, one series per category plus one for the displaced
// points. The file is self-contained and serves as the persisted scene
// snapshot for a run.
func SceneHTML(path string, expanded []displace.Expanded, table displace.Table) error {
	// Symmetric padding keeps the aspect ratio honest for offset geometry.
	maxAbs := 1.0
	for _, e := range expanded {
		if v := abs(e.X); v > maxAbs {
			maxAbs = v
		}
		if v := abs(e.Y); v > maxAbs {
			maxAbs = v
		}
	}
	pad := maxAbs * 1.05

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Displaced Points",
			Width:     "900px",
			Height:    "900px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Displaced points",
			Subtitle: fmt.Sprintf("points=%d categories=%d", len(expanded), len(table.Categories)),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Min: -pad, Max: pad, Name: "X (mm)", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Min: -pad, Max: pad, Name: "Y (mm)", NameLocation: "middle", NameGap: 30}),
	)

	for i, cat := range table.Categories {
		data := make([]opts.ScatterData, 0)
		for _, e := range expanded {
			if e.Derived || e.Category != i {
				continue
			}
			data = append(data, opts.ScatterData{
				Name:  e.Label,
				Value: []interface{}{e.X, e.Y},
			})
		}
		if len(data) == 0 {
			continue
		}
		scatter.AddSeries(cat.Name, data,
			charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 10}))
	}

	derived := make([]opts.ScatterData, 0)
	for _, e := range expanded {
		if !e.Derived {
			continue
		}
		derived = append(derived, opts.ScatterData{
			Name:  e.Label,
			Value: []interface{}{e.X, e.Y},
		})
	}
	if len(derived) > 0 {
		scatter.AddSeries("displaced", derived,
			charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 5}))
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create scene file: %w", err)
	}
	defer f.Close()

	if err := scatter.Render(f); err != nil {
		return fmt.Errorf("render scene: %w", err)
	}
	return nil
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
