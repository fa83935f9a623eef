package converters

import (
	"fmt"
	"io"

	dxfdoc "github.com/rpaloschi/dxf-go/document"
	dxfent "github.com/rpaloschi/dxf-go/entities"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/entity"

	"github.com/katalvlaran/procmesh/core"
	"github.com/katalvlaran/procmesh/delaunay"
	"github.com/katalvlaran/procmesh/geom"
)

// DXF layer names written by WriteDXF.
const (
	LayerMesh    = "MESH"
	LayerNetwork = "NETWORK"
	LayerNodes   = "NODES"
)

// WriteDXF saves a CAD drawing to path: every triangle of t as a closed
// polyline on LayerMesh, every edge of g as a line on LayerNetwork and every
// node of g as a circle of nodeRadius on LayerNodes (skipped when
// nodeRadius ≤ 0). Either input may be nil.
func WriteDXF(path string, t *delaunay.Triangulation, g *core.Graph, nodeRadius float64) error {
	if t == nil && g == nil {
		return fmt.Errorf("WriteDXF: %w", ErrNilInput)
	}

	d := dxf.NewDrawing()
	d.Header().LtScale = 1.0

	if t != nil {
		if _, err := d.AddLayer(LayerMesh, color.White, dxf.DefaultLineType, true); err != nil {
			return fmt.Errorf("WriteDXF: %w", err)
		}
		for _, tri := range t.Triangles {
			lwp := entity.NewLwPolyline(4)
			for j, v := range []*geom.Point{tri.V0, tri.V1, tri.V2, tri.V0} {
				lwp.Vertices[j] = []float64{v.X, v.Y}
			}
			d.AddEntity(lwp)
		}
	}

	if g != nil {
		if _, err := d.AddLayer(LayerNetwork, color.Cyan, dxf.DefaultLineType, true); err != nil {
			return fmt.Errorf("WriteDXF: %w", err)
		}
		for _, e := range g.EdgeList() {
			if _, err := d.Line(e.Start.Pos.X, e.Start.Pos.Y, 0, e.End.Pos.X, e.End.Pos.Y, 0); err != nil {
				return fmt.Errorf("WriteDXF: %w", err)
			}
		}

		if nodeRadius > 0 {
			if _, err := d.AddLayer(LayerNodes, color.Yellow, dxf.DefaultLineType, true); err != nil {
				return fmt.Errorf("WriteDXF: %w", err)
			}
			for _, n := range g.Nodes() {
				if _, err := d.Circle(n.Pos.X, n.Pos.Y, 0, nodeRadius); err != nil {
					return fmt.Errorf("WriteDXF: %w", err)
				}
			}
		}
	}

	if err := d.SaveAs(path); err != nil {
		return fmt.Errorf("WriteDXF: %w", err)
	}

	return nil
}

// ReadDXFPoints collects seed points from the ENTITIES section of a DXF
// stream: every vertex of every POLYLINE and LWPOLYLINE, in file order.
// Z is ignored.
//
// Errors:
//   - parse errors from dxf-go, wrapped.
//   - ErrNoPoints: no polyline vertices were found.
func ReadDXFPoints(r io.Reader) ([]*geom.Point, error) {
	doc, err := dxfdoc.DxfDocumentFromStream(r)
	if err != nil {
		return nil, fmt.Errorf("ReadDXFPoints: %w", err)
	}

	var pts []*geom.Point
	for _, ent := range doc.Entities.Entities {
		switch e := ent.(type) {
		case *dxfent.Polyline:
			for _, v := range e.Vertices {
				pts = append(pts, geom.NewPoint(v.Location.X, v.Location.Y))
			}
		case *dxfent.LWPolyline:
			for _, v := range e.Points {
				pts = append(pts, geom.NewPoint(v.Point.X, v.Point.Y))
			}
		}
	}
	if len(pts) == 0 {
		return nil, fmt.Errorf("ReadDXFPoints: %w", ErrNoPoints)
	}

	return pts, nil
}
