// Command meshgen generates a procedural network: seed points are
// triangulated, reduced to a minimum spanning tree and partly re-looped,
// then written as GeoJSON, PNG and/or DXF.
//
// Usage:
//
//	meshgen [--config=FILE] [--points=N] [--seed=S] [--ratio=R]
//	        [--svg=FILE | --dxf-in=FILE] [--geojson=FILE] [--png=FILE]
//	        [--dxf=FILE] [--preview] [--verbose] [--no-color]
//
// Flags override values loaded from --config. Without any output flag a
// PNG named after a random petname is written to the working directory.
package main

import (
	"fmt"
	"io"
	"os"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"go.uber.org/zap"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/katalvlaran/procmesh/procgen"
)

var (
	app = kingpin.New("meshgen", "Delaunay → MST → loop restoration network generator.")

	configPath = app.Flag("config", "YAML config file.").Short('c').ExistingFile()
	points     = app.Flag("points", "Scatter point count.").Short('n').Int()
	seed       = app.Flag("seed", "Random seed.").Short('s').Int64()
	ratio      = app.Flag("ratio", "Share of discarded edges to restore, 0..1.").Short('r').Float64()
	svgPath    = app.Flag("svg", "Read seed points from an SVG file.").ExistingFile()
	dxfPath    = app.Flag("dxf-in", "Read seed points from DXF polylines.").ExistingFile()
	geojsonOut = app.Flag("geojson", "Write GeoJSON to this file.").String()
	pngOut     = app.Flag("png", "Write a PNG rendering to this file.").String()
	dxfOut     = app.Flag("dxf", "Write a layered DXF drawing to this file.").String()
	preview    = app.Flag("preview", "Show the PNG inline (iTerm2 imgcat).").Bool()
	verbose    = app.Flag("verbose", "Debug logging.").Short('v').Bool()
	noColor    = app.Flag("no-color", "Plain summary output.").Bool()

	pointsSet, seedSet, ratioSet bool
)

func init() {
	app.Version("0.1.0")
	app.GetFlag("points").Action(func(*kingpin.ParseContext) error { pointsSet = true; return nil })
	app.GetFlag("seed").Action(func(*kingpin.ParseContext) error { seedSet = true; return nil })
	app.GetFlag("ratio").Action(func(*kingpin.ParseContext) error { ratioSet = true; return nil })
}

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	log, err := newLogger(*verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, "meshgen:", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := run(log); err != nil {
		log.Error("meshgen failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(log *zap.Logger) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log.Debug("config", zap.Any("config", cfg))

	res, err := procgen.Generate(cfg, procgen.WithLogger(log))
	if err != nil {
		return err
	}
	if err := procgen.Export(res, cfg.Output, log); err != nil {
		return err
	}

	printSummary(cfg, res)

	if *preview {
		showPreview(log, cfg.Output.PNG, os.Stdout)
	}

	return nil
}

// showPreview prints the PNG at path inline. Problems are logged, never fatal.
func showPreview(log *zap.Logger, path string, w io.Writer) {
	if path == "" {
		log.Warn("preview skipped: no png output configured")
		return
	}
	if err := imgcat.CatFile(path, w); err != nil {
		log.Warn("preview failed", zap.String("path", path), zap.Error(err))
	}
}

// loadConfig layers defaults, the config file and explicit flags.
func loadConfig() (procgen.Config, error) {
	cfg := procgen.DefaultConfig()
	if *configPath != "" {
		f, err := os.Open(*configPath)
		if err != nil {
			return cfg, err
		}
		defer f.Close()
		if cfg, err = procgen.LoadConfig(f); err != nil {
			return cfg, err
		}
	}

	if pointsSet {
		cfg.Source = procgen.SourceScatter
		cfg.Points = *points
	}
	if seedSet {
		cfg.Seed = *seed
	}
	if ratioSet {
		cfg.RestoreRatio = *ratio
	}
	if *svgPath != "" {
		cfg.Source = procgen.SourceSVG
		cfg.SVG = *svgPath
	}
	if *dxfPath != "" {
		cfg.Source = procgen.SourceDXF
		cfg.DXF = *dxfPath
	}
	if *geojsonOut != "" {
		cfg.Output.GeoJSON = *geojsonOut
	}
	if *pngOut != "" {
		cfg.Output.PNG = *pngOut
	}
	if *dxfOut != "" {
		cfg.Output.DXF = *dxfOut
	}
	if cfg.Output.GeoJSON == "" && cfg.Output.PNG == "" && cfg.Output.DXF == "" {
		petname.NonDeterministicMode()
		cfg.Output.PNG = petname.Generate(2, "-") + ".png"
	}

	return cfg, cfg.Validate()
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	zcfg.Encoding = "console"

	return zcfg.Build()
}

func printSummary(cfg procgen.Config, res *procgen.Result) {
	au := aurora.NewAurora(!*noColor)

	fmt.Printf("%s %d nodes, %d triangles\n",
		au.Bold("mesh:"), res.Graph.NodeCount(), len(res.Triangulation.Triangles))
	fmt.Printf("%s %d of %d edges kept, weight %s\n",
		au.Bold("tree:"), len(res.Tree), res.MeshEdges, au.Cyan(fmt.Sprintf("%.2f", res.TreeWeight)))
	fmt.Printf("%s %d edges (ratio %.2f)\n",
		au.Bold("loops:"), res.Restored, cfg.RestoreRatio)
	fmt.Printf("%s %v at distance %s, %d hops deep\n",
		au.Bold("exit:"), res.Exit.Pos, au.Yellow(fmt.Sprintf("%.2f", res.ExitDistance)), res.MaxDepth)
	for _, path := range []string{cfg.Output.GeoJSON, cfg.Output.PNG, cfg.Output.DXF} {
		if path != "" {
			fmt.Printf("%s %s\n", au.Green("wrote"), path)
		}
	}
}
