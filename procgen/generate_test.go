package procgen_test

import (
	"encoding/json"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/procmesh/builder"
	"github.com/katalvlaran/procmesh/converters"
	"github.com/katalvlaran/procmesh/geom"
	"github.com/katalvlaran/procmesh/procgen"
)

// checkResult asserts the structural invariants every run must satisfy.
func checkResult(t *testing.T, cfg procgen.Config, res *procgen.Result) {
	t.Helper()

	n := res.Graph.NodeCount()
	require.Greater(t, n, 2)
	assert.Len(t, res.Tree, n-1)
	assert.InDelta(t, res.OptimalWeight, res.TreeWeight, 1e-9)

	redundant := res.MeshEdges - (n - 1)
	assert.Equal(t, int(math.Round(cfg.RestoreRatio*float64(redundant))), res.Restored)
	assert.Len(t, res.Edges, n-1+res.Restored)
	assert.True(t, res.Graph.IsConnected())

	// The mesh copy is untouched by reduction and mirrors the snapshots.
	require.Equal(t, n, res.Mesh.NodeCount())
	assert.Equal(t, res.MeshEdges, res.Mesh.EdgeCount())

	// Every node keeps its mesh adjacency and carries metadata.
	for i, node := range res.Graph.Nodes() {
		assert.NotEmpty(t, node.OldEdges(), "node %d", i)
		meshNode := res.Mesh.Nodes()[i]
		assert.NotSame(t, node, meshNode)
		assert.Equal(t, node.Pos, meshNode.Pos)
		assert.Equal(t, len(node.OldEdges()), meshNode.Degree(), "node %d", i)
		assert.NotContains(t, meshNode.UserData, procgen.KeyDepth)
		assert.Contains(t, node.UserData, builder.KeyID)
		require.Contains(t, node.UserData, procgen.KeyDepth)
		require.Contains(t, node.UserData, procgen.KeyDistance)
		assert.LessOrEqual(t, node.UserData[procgen.KeyDepth].(int), res.MaxDepth)
		assert.LessOrEqual(t, node.UserData[procgen.KeyDistance].(float64), res.ExitDistance)
	}
	require.NotNil(t, res.Exit)
	assert.Equal(t, res.ExitDistance, res.Exit.UserData[procgen.KeyDistance])
	assert.Equal(t, 0, res.Graph.Nodes()[0].UserData[procgen.KeyDepth])
	assert.Greater(t, res.MaxDepth, 0)
}

func TestGenerate_Scatter(t *testing.T) {
	cfg := procgen.DefaultConfig()
	res, err := procgen.Generate(cfg)
	require.NoError(t, err)

	assert.Len(t, res.Points, cfg.Points)
	assert.Equal(t, cfg.Points, res.Graph.NodeCount())
	checkResult(t, cfg, res)

	// Same config, same result.
	again, err := procgen.Generate(cfg)
	require.NoError(t, err)
	assert.Equal(t, res.TreeWeight, again.TreeWeight)
	assert.Equal(t, res.Restored, again.Restored)
	assert.Equal(t, len(res.Triangulation.Triangles), len(again.Triangulation.Triangles))
}

func TestGenerate_GridJittered(t *testing.T) {
	cfg := procgen.DefaultConfig()
	cfg.Source = procgen.SourceGrid
	cfg.Weight = procgen.WeightJittered
	cfg.RestoreRatio = 1
	cfg.IDPrefix = "cell"

	res, err := procgen.Generate(cfg)
	require.NoError(t, err)
	assert.Equal(t, cfg.Grid.Cols*cfg.Grid.Rows, res.Graph.NodeCount())
	checkResult(t, cfg, res)

	// Full restoration brings the whole mesh back.
	assert.Len(t, res.Edges, res.MeshEdges)
	assert.Equal(t, "cell0", res.Graph.Nodes()[0].UserData[builder.KeyID])
}

func TestGenerate_ConstantWeightNoRestore(t *testing.T) {
	cfg := procgen.DefaultConfig()
	cfg.Weight = procgen.WeightConstant
	cfg.RestoreRatio = 0

	res, err := procgen.Generate(cfg)
	require.NoError(t, err)
	checkResult(t, cfg, res)
	assert.Zero(t, res.Restored)
	assert.Equal(t, float64(cfg.Points-1)*builder.DefaultEdgeWeight, res.TreeWeight)
}

func TestGenerate_SVG(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seeds.svg")
	const doc = `<svg xmlns="http://www.w3.org/2000/svg">
  <polygon points="0,0 10,0 10,10 0,10"/>
  <circle cx="5" cy="5" r="1"/>
</svg>`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cfg := procgen.DefaultConfig()
	cfg.Source = procgen.SourceSVG
	cfg.SVG = path

	res, err := procgen.Generate(cfg)
	require.NoError(t, err)
	assert.Equal(t, 5, res.Graph.NodeCount())
	assert.Len(t, res.Triangulation.Triangles, 4)
	assert.Equal(t, 8, res.MeshEdges)
	checkResult(t, cfg, res)

	cfg.SVG = filepath.Join(dir, "missing.svg")
	_, err = procgen.Generate(cfg)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestGenerate_DXF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seeds.dxf")
	doc := strings.Join([]string{
		"0", "SECTION", "2", "ENTITIES",
		"0", "LWPOLYLINE", "8", "0", "90", "5", "70", "0",
		"10", "0.0", "20", "0.0",
		"10", "10.0", "20", "0.0",
		"10", "10.0", "20", "10.0",
		"10", "0.0", "20", "10.0",
		"10", "5.0", "20", "5.0",
		"0", "ENDSEC", "0", "EOF",
	}, "\n") + "\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cfg := procgen.DefaultConfig()
	cfg.Source = procgen.SourceDXF
	cfg.DXF = path

	res, err := procgen.Generate(cfg)
	require.NoError(t, err)
	assert.Equal(t, 5, res.Graph.NodeCount())
	assert.Len(t, res.Triangulation.Triangles, 4)
	checkResult(t, cfg, res)
}

func TestGenerate_Errors(t *testing.T) {
	cfg := procgen.DefaultConfig()
	cfg.Points = 2
	_, err := procgen.Generate(cfg)
	assert.ErrorIs(t, err, builder.ErrTooFewPoints)

	cfg = procgen.DefaultConfig()
	cfg.Weight = "taxicab"
	_, err = procgen.Generate(cfg)
	assert.ErrorIs(t, err, procgen.ErrInvalidConfig)

	collinear := []*geom.Point{geom.NewPoint(0, 0), geom.NewPoint(1, 1), geom.NewPoint(2, 2)}
	_, err = procgen.Generate(procgen.DefaultConfig(), procgen.WithPoints(collinear))
	assert.ErrorIs(t, err, procgen.ErrEmptyMesh)

	assert.Panics(t, func() { procgen.WithLogger(nil) })
}

func TestGenerate_Logs(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	_, err := procgen.Generate(procgen.DefaultConfig(), procgen.WithLogger(zap.New(core)))
	require.NoError(t, err)

	assert.Equal(t, 1, logs.FilterMessage("mesh generated").Len())
	assert.Equal(t, 1, logs.FilterMessage("spanning tree").Len())
	entry := logs.FilterMessage("mesh generated").All()[0]
	assert.Equal(t, zapcore.InfoLevel, entry.Level)
	assert.EqualValues(t, procgen.DefaultConfig().Points, entry.ContextMap()["nodes"])
}

func TestExport(t *testing.T) {
	res, err := procgen.Generate(procgen.DefaultConfig())
	require.NoError(t, err)

	dir := t.TempDir()
	out := procgen.OutputConfig{
		GeoJSON: filepath.Join(dir, "mesh.geojson"),
		PNG:     filepath.Join(dir, "mesh.png"),
		DXF:     filepath.Join(dir, "mesh.dxf"),
		Width:   200,
		Height:  150,
	}
	require.NoError(t, procgen.Export(res, out, nil))

	data, err := os.ReadFile(out.GeoJSON)
	require.NoError(t, err)
	var fc struct {
		Features []json.RawMessage `json:"features"`
	}
	require.NoError(t, json.Unmarshal(data, &fc))
	assert.Len(t, fc.Features, len(res.Triangulation.Triangles)+res.Graph.NodeCount()+len(res.Edges))

	f, err := os.Open(out.PNG)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 150, img.Bounds().Dy())

	drawing, err := os.ReadFile(out.DXF)
	require.NoError(t, err)
	assert.Contains(t, string(drawing), converters.LayerNetwork)

	// Nothing requested, nothing written.
	assert.NoError(t, procgen.Export(res, procgen.OutputConfig{}, zap.NewNop()))
}
