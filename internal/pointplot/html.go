package pointplot

import (
	"fmt"
	"io"

	"github.com/banshee-data/hxform/internal/monitoring"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// WriteHTML renders the series as an interactive scatter chart and writes
// the standalone HTML page to w.
func WriteHTML(w io.Writer, o Options, series ...Series) error {
	if len(series) == 0 {
		return fmt.Errorf("no series to plot")
	}

	hLabel, vLabel := o.Plane.labels()
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: o.Title, Width: "900px", Height: "900px"}),
		charts.WithTitleOpts(opts.Title{Title: o.Title, Subtitle: fmt.Sprintf("plane=%s series=%d", o.Plane, len(series))}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Name: hLabel, NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Name: vLabel, NameLocation: "middle", NameGap: 30}),
	)

	total := 0
	for i, s := range series {
		pts, err := project(s, o.Plane)
		if err != nil {
			return err
		}
		data := make([]opts.ScatterData, 0, len(pts))
		for _, pt := range pts {
			data = append(data, opts.ScatterData{Value: []interface{}{pt[0], pt[1]}})
		}
		c := seriesColor(i)
		scatter.AddSeries(s.Name, data,
			charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 10}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)}),
		)
		total += len(pts)
	}

	if err := scatter.Render(w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	monitoring.Debugf("pointplot: rendered %d points in %d series as HTML", total, len(series))
	return nil
}
