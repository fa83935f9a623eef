package converters

import "errors"

var (
	// ErrNilInput indicates a nil triangulation or graph where one is required.
	ErrNilInput = errors.New("converters: nil input")

	// ErrNoPoints indicates there is nothing to draw or nothing was read.
	ErrNoPoints = errors.New("converters: no points")

	// ErrBadCoordinate indicates an SVG attribute that is not a number.
	ErrBadCoordinate = errors.New("converters: bad coordinate")

	// ErrBadCanvas indicates non-positive image dimensions.
	ErrBadCanvas = errors.New("converters: bad canvas size")
)
