package main

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/mat"

	"github.com/banshee-data/hxform/internal/monitoring"
	"github.com/banshee-data/hxform/internal/pointplot"
	"github.com/banshee-data/hxform/internal/transform"
)

// ScenarioPoints are the corners and far edge of a small box in the XZ
// plane, used as the demo input.
var ScenarioPoints = [][3]float64{
	{1, 0, 0}, {-1, 0, 0}, {-1, 0, 2}, {1, 0, 2}, {1, 4, 0}, {-1, 4, 0},
}

// ScenarioOptions controls RunScenario.
type ScenarioOptions struct {
	Tolerance    float64
	OutputDir    string
	PNG          bool
	HTML         bool
	Plane        pointplot.Plane
	WidthInches  float64
	HeightInches float64
}

// ScenarioReport is the outcome of RunScenario.
type ScenarioReport struct {
	RunID     string
	Transform *mat.Dense
	Valid     bool
	Output    [][3]float64
	Files     []string
}

// ScenarioTransform returns Translation(4,0,0)·RotateY(π/2)·RotateZ(π/2).
func ScenarioTransform() *mat.Dense {
	h, err := transform.Compose(transform.Translation(4, 0, 0), transform.RotateY(math.Pi/2), transform.RotateZ(math.Pi/2))
	if err != nil {
		panic(err)
	}
	return h
}

// RunScenario validates the scenario transform, applies it to
// ScenarioPoints and writes any requested plots.
func RunScenario(o ScenarioOptions) (*ScenarioReport, error) {
	tol := o.Tolerance
	if tol <= 0 {
		tol = transform.DefaultOrthogonalityTolerance
	}

	report := &ScenarioReport{
		RunID:     uuid.NewString(),
		Transform: ScenarioTransform(),
	}
	monitoring.Logf("run %s: transform\n%v", report.RunID, mat.Formatted(report.Transform, mat.Prefix(""), mat.Squeeze()))

	result := transform.Validate(report.Transform, tol)
	report.Valid = result.Valid
	if !result.Valid {
		return report, fmt.Errorf("scenario transform is not a homogeneous transform: %v", result.Issues)
	}
	monitoring.Debugf("run %s: transform valid at tolerance %g", report.RunID, tol)

	in := transform.Points(ScenarioPoints...)
	out, err := transform.Apply(report.Transform, in)
	if err != nil {
		return report, fmt.Errorf("failed to apply transform: %w", err)
	}
	report.Output = transform.Columns(out)
	for i, p := range ScenarioPoints {
		q := report.Output[i]
		monitoring.Logf("(%g, %g, %g) -> (%.6g, %.6g, %.6g)", p[0], p[1], p[2], q[0], q[1], q[2])
	}

	if !o.PNG && !o.HTML {
		return report, nil
	}

	series := []pointplot.Series{
		{Name: "input", Points: in},
		{Name: "transformed", Points: out},
	}
	plotOpts := pointplot.Options{
		Title:        "hxform scenario " + report.RunID,
		Plane:        o.Plane,
		WidthInches:  o.WidthInches,
		HeightInches: o.HeightInches,
	}

	if o.PNG {
		path := filepath.Join(o.OutputDir, report.RunID+".png")
		if err := pointplot.WritePNG(path, plotOpts, series...); err != nil {
			return report, err
		}
		report.Files = append(report.Files, path)
	}

	if o.HTML {
		if err := os.MkdirAll(o.OutputDir, 0755); err != nil {
			return report, fmt.Errorf("failed to create output dir: %w", err)
		}
		path := filepath.Join(o.OutputDir, report.RunID+".html")
		f, err := os.Create(path)
		if err != nil {
			return report, fmt.Errorf("failed to create %s: %w", path, err)
		}
		if err := pointplot.WriteHTML(f, plotOpts, series...); err != nil {
			f.Close()
			return report, err
		}
		if err := f.Close(); err != nil {
			return report, fmt.Errorf("failed to close %s: %w", path, err)
		}
		report.Files = append(report.Files, path)
	}

	return report, nil
}
