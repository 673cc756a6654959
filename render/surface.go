// Package render draws a layout plan onto a 2-D drawing surface.
package render

import "image/color"

// Align is the horizontal anchor of drawn text.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Vec is a point on the surface.
type Vec struct {
	X, Y float64
}

// Surface is the drawing contract a host provides. Coordinates are in surface
// units with the origin at the top left and y growing downwards. Arc angles are in
// degrees measured clockwise from the positive x axis.
type Surface interface {
	SetSize(width, height float64)
	Clear()
	StrokeCircle(x, y, r float64, c color.Color)
	DrawText(text string, x, y float64, align Align, c color.Color)
	StrokeLine(x1, y1, x2, y2 float64, c color.Color, width float64)
	StrokeArc(cx, cy, r, startDeg, endDeg float64, ccw bool, c color.Color, width float64)
	FillTriangle(pts [3]Vec, c color.Color)
}

// SurfaceSize maps a container to the surface drawn inside it: full width, half height.
func SurfaceSize(containerWidth, containerHeight float64) (width, height float64) {
	return containerWidth, containerHeight / 2
}
