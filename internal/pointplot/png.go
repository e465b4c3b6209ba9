package pointplot

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/banshee-data/hxform/internal/monitoring"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// WritePNG renders the series as a scatter plot and saves it to path. The
// parent directory is created if needed.
func WritePNG(path string, o Options, series ...Series) error {
	if len(series) == 0 {
		return fmt.Errorf("no series to plot")
	}

	p := plot.New()
	p.Title.Text = o.Title
	hLabel, vLabel := o.Plane.labels()
	p.X.Label.Text = hLabel
	p.Y.Label.Text = vLabel
	p.Add(plotter.NewGrid())

	total := 0
	for i, s := range series {
		pts, err := project(s, o.Plane)
		if err != nil {
			return err
		}
		xys := make(plotter.XYs, len(pts))
		for j, pt := range pts {
			xys[j] = plotter.XY{X: pt[0], Y: pt[1]}
		}

		scatter, err := plotter.NewScatter(xys)
		if err != nil {
			return fmt.Errorf("series %q: %w", s.Name, err)
		}
		scatter.GlyphStyle.Color = seriesColor(i)
		scatter.GlyphStyle.Radius = vg.Points(4)
		p.Add(scatter)
		p.Legend.Add(s.Name, scatter)
		total += len(pts)
	}

	p.Legend.Top = true
	p.Legend.Left = false
	p.Legend.XOffs = -10
	p.Legend.YOffs = -10

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}

	w, h := o.size()
	if err := p.Save(vg.Length(w)*vg.Inch, vg.Length(h)*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save plot: %w", err)
	}
	monitoring.Debugf("pointplot: wrote %d points in %d series to %s", total, len(series), path)
	return nil
}
