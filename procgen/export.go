package procgen

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/katalvlaran/procmesh/converters"
)

// Export writes res to the files named in out. GeoJSON holds the mesh
// triangles followed by the graph nodes and final edges; the PNG draws the
// final graph over the mesh; the DXF keeps mesh, network and nodes on
// separate layers. Empty paths are skipped.
func Export(res *Result, out OutputConfig, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}

	if out.GeoJSON != "" {
		mesh, err := converters.TriangulationToGeoJSON(res.Triangulation)
		if err != nil {
			return fmt.Errorf("Export: %w", err)
		}
		graph, err := converters.GraphToGeoJSON(res.Graph, res.Weight)
		if err != nil {
			return fmt.Errorf("Export: %w", err)
		}
		data, err := converters.MarshalGeoJSON(mesh, graph)
		if err != nil {
			return fmt.Errorf("Export: %w", err)
		}
		if err := os.WriteFile(out.GeoJSON, data, 0o644); err != nil {
			return fmt.Errorf("Export: %w", err)
		}
		log.Info("wrote geojson", zap.String("path", out.GeoJSON), zap.Int("bytes", len(data)))
	}

	if out.PNG != "" {
		opts := converters.DefaultRenderOptions()
		if out.Width > 0 && out.Height > 0 {
			opts.Width, opts.Height = out.Width, out.Height
		}
		if err := writePNG(out.PNG, res, opts); err != nil {
			return fmt.Errorf("Export: %w", err)
		}
		log.Info("wrote png", zap.String("path", out.PNG), zap.Int("width", opts.Width), zap.Int("height", opts.Height))
	}

	if out.DXF != "" {
		if err := converters.WriteDXF(out.DXF, res.Triangulation, res.Graph, out.NodeRadius); err != nil {
			return fmt.Errorf("Export: %w", err)
		}
		log.Info("wrote dxf", zap.String("path", out.DXF))
	}

	return nil
}

func writePNG(path string, res *Result, opts converters.RenderOptions) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return converters.RenderPNG(f, res.Triangulation, res.Graph, opts)
}
