package converters

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"

	"github.com/katalvlaran/procmesh/geom"
)

// ReadSVGPoints parses an SVG document and returns seed points in document
// order: the center of every circle and ellipse, and every vertex of every
// polygon and polyline. Transforms are not applied.
//
// Errors:
//   - parse errors from svgparser, wrapped.
//   - ErrBadCoordinate: a coordinate attribute is not a number.
//   - ErrNoPoints:      the document holds none of the elements above.
func ReadSVGPoints(r io.Reader) ([]*geom.Point, error) {
	root, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, fmt.Errorf("ReadSVGPoints: %w", err)
	}

	var pts []*geom.Point
	if err := collectSVG(root, &pts); err != nil {
		return nil, fmt.Errorf("ReadSVGPoints: %w", err)
	}
	if len(pts) == 0 {
		return nil, fmt.Errorf("ReadSVGPoints: %w", ErrNoPoints)
	}

	return pts, nil
}

func collectSVG(el *svgparser.Element, pts *[]*geom.Point) error {
	if el == nil {
		return nil
	}

	switch el.Name {
	case "circle", "ellipse":
		x, err := attrFloat(el, "cx")
		if err != nil {
			return err
		}
		y, err := attrFloat(el, "cy")
		if err != nil {
			return err
		}
		*pts = append(*pts, geom.NewPoint(x, y))
	case "polygon", "polyline":
		vs, err := parsePointList(el.Attributes["points"])
		if err != nil {
			return fmt.Errorf("%s: %w", el.Name, err)
		}
		*pts = append(*pts, vs...)
	}

	for _, child := range el.Children {
		if err := collectSVG(child, pts); err != nil {
			return err
		}
	}

	return nil
}

// attrFloat reads a numeric attribute; a missing one is 0 as in SVG.
func attrFloat(el *svgparser.Element, name string) (float64, error) {
	s, ok := el.Attributes[name]
	if !ok || strings.TrimSpace(s) == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%s %s=%q: %w", el.Name, name, s, ErrBadCoordinate)
	}

	return v, nil
}

// parsePointList reads "x1,y1 x2,y2 ..." where commas and whitespace are
// interchangeable separators. A trailing odd number is an error.
func parsePointList(s string) ([]*geom.Point, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields)%2 != 0 {
		return nil, fmt.Errorf("odd coordinate count %d: %w", len(fields), ErrBadCoordinate)
	}

	pts := make([]*geom.Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, errX := strconv.ParseFloat(fields[i], 64)
		y, errY := strconv.ParseFloat(fields[i+1], 64)
		if errX != nil || errY != nil {
			return nil, fmt.Errorf("pair %q,%q: %w", fields[i], fields[i+1], ErrBadCoordinate)
		}
		pts = append(pts, geom.NewPoint(x, y))
	}

	return pts, nil
}
