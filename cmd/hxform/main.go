// Command hxform builds the reference transform Translation(4,0,0)·RotateY(π/2)·RotateZ(π/2),
// validates it, applies it to a small point set and optionally plots the
// points before and after.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/banshee-data/hxform/internal/config"
	"github.com/banshee-data/hxform/internal/monitoring"
	"github.com/banshee-data/hxform/internal/pointplot"
	"github.com/banshee-data/hxform/internal/version"
)

func main() {
	configPath := flag.String("config", "", "path to JSON config file")
	outDir := flag.String("out", "", "output directory for plots (overrides config)")
	png := flag.Bool("png", false, "write a PNG scatter plot")
	html := flag.Bool("html", false, "write an HTML scatter chart")
	plane := flag.String("plane", "xy", "projection plane for plots: xy, xz or yz")
	debug := flag.Bool("debug", false, "enable debug logging")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}

	cfg := config.Empty()
	if *configPath != "" {
		var err error
		cfg, err = config.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}
	}
	monitoring.SetDebug(*debug || cfg.GetDebug())

	p, err := pointplot.ParsePlane(*plane)
	if err != nil {
		log.Fatalf("invalid -plane: %v", err)
	}

	dir := cfg.GetOutputDir()
	if *outDir != "" {
		dir = *outDir
	}

	report, err := RunScenario(ScenarioOptions{
		Tolerance:    cfg.GetOrthogonalityTolerance(),
		OutputDir:    dir,
		PNG:          *png,
		HTML:         *html,
		Plane:        p,
		WidthInches:  cfg.GetPlotWidthInches(),
		HeightInches: cfg.GetPlotHeightInches(),
	})
	if err != nil {
		log.Fatalf("scenario failed: %v", err)
	}
	for _, f := range report.Files {
		log.Printf("✓ Created: %s", f)
	}
}
