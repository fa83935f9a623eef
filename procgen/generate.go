package procgen

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/katalvlaran/procmesh/bfs"
	"github.com/katalvlaran/procmesh/builder"
	"github.com/katalvlaran/procmesh/converters"
	"github.com/katalvlaran/procmesh/core"
	"github.com/katalvlaran/procmesh/delaunay"
	"github.com/katalvlaran/procmesh/dijkstra"
	"github.com/katalvlaran/procmesh/geom"
	"github.com/katalvlaran/procmesh/prim_kruskal"
)

// Result is the outcome of one pipeline run.
type Result struct {
	// Points are the seed points, in input order.
	Points []*geom.Point
	// Triangulation is the Delaunay mesh over Points.
	Triangulation *delaunay.Triangulation
	// Mesh is a copy of the graph taken before reduction: every mesh edge,
	// same node order as Graph, vertex metadata only.
	Mesh *core.Graph
	// Graph holds the final adjacency: the spanning tree plus restored edges.
	// Each node's OldEdges keeps its full mesh adjacency.
	Graph *core.Graph
	// Tree is the spanning tree before restoration.
	Tree []core.EdgePair
	// Edges is the final edge list.
	Edges []core.EdgePair
	// Weight scores every edge of the run.
	Weight core.WeightFunc

	// Exit is the node farthest from node 0 along the final network.
	Exit *core.Node
	// ExitDistance is the weighted path length from node 0 to Exit.
	ExitDistance float64
	// MaxDepth is the largest hop count from node 0.
	MaxDepth int

	MeshEdges     int
	TreeWeight    float64
	OptimalWeight float64
	Restored      int
}

// Node metadata keys written by Generate, next to builder.KeyID and
// builder.KeyIndex.
const (
	KeyDepth    = "depth"
	KeyDistance = "distance"
)

// Option configures Generate.
type Option func(*generator)

type generator struct {
	log    *zap.Logger
	points []*geom.Point
}

// WithLogger routes pipeline progress to l. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("procgen: WithLogger(nil)")
	}

	return func(g *generator) {
		g.log = l
	}
}

// WithPoints bypasses cfg.Source and uses pts as the seed points.
func WithPoints(pts []*geom.Point) Option {
	return func(g *generator) {
		g.points = pts
	}
}

// Generate runs the pipeline described by cfg.
//
// Steps:
//  1. Seed points from the configured source (or WithPoints).
//  2. Triangulate with edge output.
//  3. Build the graph from mesh edges; nodes carry "id"/"index" metadata.
//     Keep a clone as Result.Mesh.
//  4. Record the optimal tree weight (Kruskal over the mesh) for diagnostics.
//  5. Reduce to an MST with Prim, storing old edges.
//  6. Restore RestoreRatio of the discarded edges, cheapest first.
//  7. Annotate nodes with hop depth (BFS) and path distance (Dijkstra)
//     from node 0; the farthest node becomes the Exit.
//
// Errors: ErrInvalidConfig, ErrEmptyMesh, and wrapped builder, converters
// and prim_kruskal errors.
func Generate(cfg Config, opts ...Option) (*Result, error) {
	gen := &generator{log: zap.NewNop()}
	for _, opt := range opts {
		opt(gen)
	}
	log := gen.log

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("Generate: %w", err)
	}

	pts := gen.points
	if pts == nil {
		var err error
		if pts, err = seedPoints(cfg); err != nil {
			return nil, fmt.Errorf("Generate: %w", err)
		}
	}
	log.Debug("points ready", zap.String("source", cfg.Source), zap.Int("count", len(pts)))

	tr := delaunay.New()
	tr.Triangulate(pts, true)
	if len(tr.Triangles) == 0 {
		return nil, fmt.Errorf("Generate: %d points: %w", len(pts), ErrEmptyMesh)
	}
	log.Debug("triangulated", zap.Int("triangles", len(tr.Triangles)), zap.Int("edges", len(tr.Edges)))

	idOpts := []builder.BuilderOption{}
	if cfg.IDPrefix != "" {
		idOpts = append(idOpts, builder.WithPrefixIDs(cfg.IDPrefix))
	}
	g := core.NewGraph()
	g.Create(tr.Edges, core.WithVertexData(builder.VertexData(pts, idOpts...)))

	w := weightFunc(cfg)
	mesh := g.Clone()
	res := &Result{
		Points:        pts,
		Triangulation: tr,
		Mesh:          mesh,
		Graph:         g,
		Weight:        w,
		MeshEdges:     mesh.EdgeCount(),
	}

	_, optimal, err := prim_kruskal.Kruskal(mesh, w)
	if err != nil {
		return nil, fmt.Errorf("Generate: %w", err)
	}
	res.OptimalWeight = optimal

	if err := prim_kruskal.Prim(g, w, true); err != nil {
		return nil, fmt.Errorf("Generate: %w", err)
	}
	res.Tree = g.EdgeList()
	res.TreeWeight = core.TotalWeight(res.Tree, w)
	log.Debug("spanning tree",
		zap.Int("nodes", g.NodeCount()),
		zap.Int("edges", len(res.Tree)),
		zap.Float64("weight", res.TreeWeight),
		zap.Float64("optimal", res.OptimalWeight),
	)

	restored, err := prim_kruskal.RestoreOldEdges(g, cfg.RestoreRatio, w)
	if err != nil {
		return nil, fmt.Errorf("Generate: %w", err)
	}
	res.Restored = restored
	res.Edges = g.EdgeList()

	if err := annotate(res); err != nil {
		return nil, fmt.Errorf("Generate: %w", err)
	}

	log.Info("mesh generated",
		zap.Int("nodes", g.NodeCount()),
		zap.Int("mesh_edges", res.MeshEdges),
		zap.Int("tree_edges", len(res.Tree)),
		zap.Int("restored", res.Restored),
		zap.Float64("tree_weight", res.TreeWeight),
		zap.Int("max_depth", res.MaxDepth),
		zap.Float64("exit_distance", res.ExitDistance),
	)

	return res, nil
}

// annotate stores depth and distance from node 0 on every node.
func annotate(res *Result) error {
	g := res.Graph
	start := g.Nodes()[0]

	layers, err := bfs.BFS(g, start, bfs.WithOnVisit(func(n *core.Node, depth int) error {
		n.UserData[KeyDepth] = depth
		return nil
	}))
	if err != nil {
		return err
	}
	_, res.MaxDepth = layers.Farthest()

	paths, err := dijkstra.Dijkstra(g, start, res.Weight)
	if err != nil {
		return err
	}
	for n, d := range paths.Dist {
		n.UserData[KeyDistance] = d
	}
	res.Exit, res.ExitDistance = paths.Farthest(g)

	return nil
}

func seedPoints(cfg Config) ([]*geom.Point, error) {
	switch cfg.Source {
	case SourceGrid:
		return builder.JitteredGrid(cfg.Grid.Cols, cfg.Grid.Rows, cfg.Grid.Spacing, cfg.Grid.Jitter, builder.WithSeed(cfg.Seed))
	case SourceSVG:
		f, err := os.Open(cfg.SVG)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		return converters.ReadSVGPoints(f)
	case SourceDXF:
		f, err := os.Open(cfg.DXF)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		return converters.ReadDXFPoints(f)
	default:
		return builder.ScatterPoints(cfg.Points, cfg.Bounds.BBox(), builder.WithSeed(cfg.Seed))
	}
}

func weightFunc(cfg Config) core.WeightFunc {
	switch cfg.Weight {
	case WeightJittered:
		return builder.JitteredWeight(cfg.Seed, cfg.WeightJitter)
	case WeightConstant:
		return builder.ConstantWeight(builder.DefaultEdgeWeight)
	default:
		return builder.EuclideanWeight
	}
}
