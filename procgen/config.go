package procgen

import (
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/procmesh/geom"
)

// Point sources.
const (
	SourceScatter = "scatter"
	SourceGrid    = "grid"
	SourceSVG     = "svg"
	SourceDXF     = "dxf"
)

// Weight modes.
const (
	WeightEuclidean = "euclidean"
	WeightJittered  = "jittered"
	WeightConstant  = "constant"
)

// Config describes one pipeline run.
type Config struct {
	// Source selects where points come from: scatter, grid, svg or dxf.
	Source string `yaml:"source"`
	// Points is the scatter point count.
	Points int          `yaml:"points"`
	Bounds BoundsConfig `yaml:"bounds"`
	Grid   GridConfig   `yaml:"grid"`
	// SVG is the seed document path for the svg source.
	SVG string `yaml:"svg"`
	// DXF is the seed drawing path for the dxf source.
	DXF string `yaml:"dxf"`

	Seed int64 `yaml:"seed"`

	// RestoreRatio is the share of discarded edges linked back, in [0,1].
	RestoreRatio float64 `yaml:"restore_ratio"`
	// Weight selects the edge weight: euclidean, jittered or constant.
	Weight string `yaml:"weight"`
	// WeightJitter is the JitteredWeight amplitude, in [0,1).
	WeightJitter float64 `yaml:"weight_jitter"`

	// IDPrefix labels nodes prefix0, prefix1, ...; empty uses decimal IDs.
	IDPrefix string `yaml:"id_prefix"`

	Output OutputConfig `yaml:"output"`
}

// BoundsConfig is the scatter area.
type BoundsConfig struct {
	MinX float64 `yaml:"min_x"`
	MinY float64 `yaml:"min_y"`
	MaxX float64 `yaml:"max_x"`
	MaxY float64 `yaml:"max_y"`
}

// BBox converts to geometry bounds.
func (b BoundsConfig) BBox() geom.BBox {
	return geom.BoundsOf(geom.Point{X: b.MinX, Y: b.MinY}, geom.Point{X: b.MaxX, Y: b.MaxY})
}

// GridConfig is the jittered lattice.
type GridConfig struct {
	Cols    int     `yaml:"cols"`
	Rows    int     `yaml:"rows"`
	Spacing float64 `yaml:"spacing"`
	Jitter  float64 `yaml:"jitter"`
}

// OutputConfig names the files Export writes; empty paths are skipped.
type OutputConfig struct {
	GeoJSON string `yaml:"geojson"`
	PNG     string `yaml:"png"`
	DXF     string `yaml:"dxf"`
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	// NodeRadius sizes node circles in the DXF drawing; 0 omits them.
	NodeRadius float64 `yaml:"node_radius"`
}

// DefaultConfig scatters 64 points over a 100×100 area and restores 15% of
// the discarded edges.
func DefaultConfig() Config {
	return Config{
		Source: SourceScatter,
		Points: 64,
		Bounds: BoundsConfig{MaxX: 100, MaxY: 100},
		Grid: GridConfig{
			Cols:    8,
			Rows:    8,
			Spacing: 10,
			Jitter:  0.3,
		},
		Seed:         1,
		RestoreRatio: 0.15,
		Weight:       WeightEuclidean,
		WeightJitter: 0.2,
		Output: OutputConfig{
			Width:  800,
			Height: 800,
		},
	}
}

// LoadConfig decodes YAML from r over DefaultConfig, so omitted keys keep
// their defaults, and validates the result. Unknown keys are rejected.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, fmt.Errorf("LoadConfig: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("LoadConfig: %w", err)
	}

	return cfg, nil
}

// Validate checks the fields the selected source and weight mode use.
// Point-set limits (minimum counts, bounds) are left to the builders.
func (c Config) Validate() error {
	switch c.Source {
	case SourceScatter, SourceGrid:
	case SourceSVG:
		if c.SVG == "" {
			return fmt.Errorf("svg source without a path: %w", ErrInvalidConfig)
		}
	case SourceDXF:
		if c.DXF == "" {
			return fmt.Errorf("dxf source without a path: %w", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("unknown source %q: %w", c.Source, ErrInvalidConfig)
	}

	if math.IsNaN(c.RestoreRatio) || c.RestoreRatio < 0 || c.RestoreRatio > 1 {
		return fmt.Errorf("restore_ratio %g not in [0,1]: %w", c.RestoreRatio, ErrInvalidConfig)
	}

	switch c.Weight {
	case WeightEuclidean, WeightConstant:
	case WeightJittered:
		if !(c.WeightJitter >= 0 && c.WeightJitter < 1) {
			return fmt.Errorf("weight_jitter %g not in [0,1): %w", c.WeightJitter, ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("unknown weight %q: %w", c.Weight, ErrInvalidConfig)
	}

	if (c.Output.PNG != "") && (c.Output.Width <= 0 || c.Output.Height <= 0) {
		return fmt.Errorf("png size %dx%d: %w", c.Output.Width, c.Output.Height, ErrInvalidConfig)
	}

	if c.Output.NodeRadius < 0 {
		return fmt.Errorf("node_radius %g: %w", c.Output.NodeRadius, ErrInvalidConfig)
	}

	return nil
}
