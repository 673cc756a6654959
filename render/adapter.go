package render

import (
	"errors"
	"image/color"
	"log"

	"tripline/layout"
)

// ErrNotReady is returned when drawing is requested before a surface is attached.
var ErrNotReady = errors.New("render: surface not ready")

// Drawing geometry in surface units.
const (
	// DotRadius is the radius of a station dot.
	DotRadius = 5.0
	// DotGap is the space left between a dot and a line or arrow reaching it.
	DotGap = 5.0
	// LabelOffset is how far above its dot a label sits.
	LabelOffset = 10.0
	// LineWidth is the stroke width of straight segments.
	LineWidth = 2.0
	// ArcWidth is the stroke width of loop arcs.
	ArcWidth = 4.0
	// ArrowHalf is half the height of an arrow head.
	ArrowHalf = 4.0
	// ArrowLength is the length of an arrow head.
	ArrowLength = 8.0
)

// Palette resolves the color of an endpoint pair.
type Palette interface {
	ColorFor(a, b string) color.RGBA
}

// Adapter draws plans onto a Surface, coloring every stroke by its leg.
type Adapter struct {
	Surface Surface
	Palette Palette
	Logger  *log.Logger
}

func (a *Adapter) logf(format string, args ...any) {
	if a.Logger != nil {
		a.Logger.Printf(format, args...)
	}
}

// Draw resizes the surface, clears it and draws plan. Segments go first in the
// order the layout emitted them, then every connected point with its label.
func (a *Adapter) Draw(plan layout.Plan, width, height float64) error {
	if a.Surface == nil {
		a.logf("warn: draw skipped: %v", ErrNotReady)
		return ErrNotReady
	}
	s := a.Surface
	s.SetSize(width, height)
	s.Clear()

	for _, seg := range plan.Segments {
		a.drawSegment(seg)
	}
	for _, p := range plan.Points {
		if !p.Connected {
			continue
		}
		c := a.color(p.Leg)
		s.StrokeCircle(p.X, p.Y, DotRadius, c)
		if p.Label != "" {
			s.DrawText(p.Label, p.X, p.Y-LabelOffset, AlignCenter, c)
		}
	}
	return nil
}

// Clear wipes the surface without drawing anything.
func (a *Adapter) Clear() error {
	if a.Surface == nil {
		a.logf("warn: clear skipped: %v", ErrNotReady)
		return ErrNotReady
	}
	a.Surface.Clear()
	return nil
}

func (a *Adapter) color(l layout.Leg) color.RGBA {
	if a.Palette == nil {
		return color.RGBA{A: 255}
	}
	return a.Palette.ColorFor(l.Start, l.End)
}

func (a *Adapter) drawSegment(seg layout.Segment) {
	c := a.color(seg.Leg)
	switch seg.Kind {
	case layout.SegmentLine:
		x1, x2 := LineClearance(seg.X1, seg.X2)
		a.Surface.StrokeLine(x1, seg.Y1, x2, seg.Y2, c, LineWidth)
	case layout.SegmentArrow:
		a.Surface.FillTriangle(ArrowHead(seg.X2, seg.Y2), c)
	case layout.SegmentArc:
		a.Surface.StrokeArc(seg.CX, seg.CY, seg.R, seg.StartDeg, seg.EndDeg, seg.CCW, c, ArcWidth)
	}
}

// LineClearance pulls both ends of a horizontal line back from the station dots.
func LineClearance(x1, x2 float64) (float64, float64) {
	return x1 + DotRadius + DotGap, x2 - DotGap - DotRadius
}

// ArrowHead returns the triangle of a right-pointing arrow ending just before the
// dot at (x, y).
func ArrowHead(x, y float64) [3]Vec {
	tip := x - DotGap - DotRadius
	return [3]Vec{
		{X: tip - ArrowLength, Y: y - ArrowHalf},
		{X: tip - ArrowLength, Y: y + ArrowHalf},
		{X: tip, Y: y},
	}
}
