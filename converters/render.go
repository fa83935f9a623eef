package converters

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/fogleman/gg"

	"github.com/katalvlaran/procmesh/core"
	"github.com/katalvlaran/procmesh/delaunay"
	"github.com/katalvlaran/procmesh/geom"
)

// RenderOptions controls RenderPNG.
type RenderOptions struct {
	Width, Height int
	// Padding in pixels around the drawing.
	Padding float64

	Background color.Color
	// MeshColor strokes triangle edges; nil skips the mesh.
	MeshColor color.Color
	// GraphColor strokes graph edges; nil skips them.
	GraphColor color.Color
	// NodeColor fills node discs; nil skips them.
	NodeColor color.Color

	MeshWidth  float64
	GraphWidth float64
	NodeRadius float64
}

// DefaultRenderOptions is a dark 800×800 canvas with a grey mesh, cyan
// graph edges and white nodes.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		Width:      800,
		Height:     800,
		Padding:    20,
		Background: color.Black,
		MeshColor:  color.RGBA{R: 90, G: 90, B: 90, A: 255},
		GraphColor: color.RGBA{G: 255, B: 255, A: 255},
		NodeColor:  color.White,
		MeshWidth:  1,
		GraphWidth: 3,
		NodeRadius: 3,
	}
}

// RenderPNG draws t (if non-nil) under g (if non-nil) and writes a PNG to
// w. The drawing is fitted to the canvas with the origin at the bottom left
// and equal scale on both axes.
//
// Errors:
//   - ErrBadCanvas: Width or Height ≤ 0.
//   - ErrNoPoints:  neither input contributes a point.
//   - encoding/writer errors, wrapped.
func RenderPNG(w io.Writer, t *delaunay.Triangulation, g *core.Graph, opts RenderOptions) error {
	if opts.Width <= 0 || opts.Height <= 0 {
		return fmt.Errorf("RenderPNG: %dx%d: %w", opts.Width, opts.Height, ErrBadCanvas)
	}

	box := geom.EmptyBBox()
	if t != nil {
		for _, tri := range t.Triangles {
			box = box.Extend(*tri.V0).Extend(*tri.V1).Extend(*tri.V2)
		}
	}
	if g != nil {
		for _, n := range g.Nodes() {
			box = box.Extend(n.Pos)
		}
	}
	if box.Empty() {
		return fmt.Errorf("RenderPNG: %w", ErrNoPoints)
	}

	tf := fit(box, opts)
	c := gg.NewContext(opts.Width, opts.Height)
	if opts.Background != nil {
		c.SetColor(opts.Background)
		c.Clear()
	}

	if t != nil && opts.MeshColor != nil {
		c.SetColor(opts.MeshColor)
		c.SetLineWidth(opts.MeshWidth)
		for _, tri := range t.Triangles {
			x0, y0 := tf(*tri.V0)
			x1, y1 := tf(*tri.V1)
			x2, y2 := tf(*tri.V2)
			c.MoveTo(x0, y0)
			c.LineTo(x1, y1)
			c.LineTo(x2, y2)
			c.ClosePath()
		}
		c.Stroke()
	}

	if g != nil && opts.GraphColor != nil {
		c.SetColor(opts.GraphColor)
		c.SetLineWidth(opts.GraphWidth)
		for _, e := range g.EdgeList() {
			x0, y0 := tf(e.Start.Pos)
			x1, y1 := tf(e.End.Pos)
			c.DrawLine(x0, y0, x1, y1)
		}
		c.Stroke()
	}

	if g != nil && opts.NodeColor != nil && opts.NodeRadius > 0 {
		c.SetColor(opts.NodeColor)
		for _, n := range g.Nodes() {
			x, y := tf(n.Pos)
			c.DrawCircle(x, y, opts.NodeRadius)
		}
		c.Fill()
	}

	if err := c.EncodePNG(w); err != nil {
		return fmt.Errorf("RenderPNG: %w", err)
	}

	return nil
}

// fit maps plane coordinates into the padded canvas, flipping Y. A flat
// axis is centered.
func fit(box geom.BBox, opts RenderOptions) func(geom.Point) (float64, float64) {
	availW := math.Max(float64(opts.Width)-2*opts.Padding, 1)
	availH := math.Max(float64(opts.Height)-2*opts.Padding, 1)

	scale := math.Inf(1)
	if box.Width() > 0 {
		scale = availW / box.Width()
	}
	if box.Height() > 0 {
		scale = math.Min(scale, availH/box.Height())
	}
	if math.IsInf(scale, 1) {
		scale = 1
	}

	offX := opts.Padding + (availW-box.Width()*scale)/2
	offY := opts.Padding + (availH-box.Height()*scale)/2
	h := float64(opts.Height)

	return func(p geom.Point) (float64, float64) {
		x := offX + (p.X-box.Min.X)*scale
		y := offY + (p.Y-box.Min.Y)*scale

		return x, h - y
	}
}
