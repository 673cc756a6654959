// Package layout places trip legs on a schematic strip.
//
// Layout is a pure function of the full leg history and the surface size: Compute
// replays every leg from a fresh cursor on each call, so appending a leg or resizing
// the surface never patches a previous result.
package layout

import "strings"

const (
	// OriginX is where the first station is anchored.
	OriginX = 100.0
	// MaxSegmentLength caps the length of a straight segment.
	MaxSegmentLength = 250.0
	// SideMargin is the horizontal space excluded when sharing width between legs.
	SideMargin = 200.0
	// CircleGap is the clearance kept around every station dot.
	CircleGap = 10.0
	// ConnectRadius is the half side of the box searched when a line reaches a point.
	ConnectRadius = 10.0
	// StackOffset is the lift applied by a duplicate stack.
	StackOffset = 100.0
)

// Leg is one hop of the trip. Legs are compared as ordered pairs.
type Leg struct {
	Start string
	End   string
}

// Label abbreviates both endpoints, e.g. "NEW - LON".
func (l Leg) Label() string {
	return abbrev(l.Start) + " - " + abbrev(l.End)
}

func abbrev(s string) string {
	r := []rune(s)
	if len(r) > 3 {
		r = r[:3]
	}
	return strings.ToUpper(string(r))
}

// Cursor is the running drawing position carried between legs.
type Cursor struct {
	X             float64
	Y             float64
	SegmentLength float64
	CircleGap     float64
	// Upper is set while the cursor rides the elevated loop track.
	Upper bool
}

// ZeroCursor is the cursor of an empty diagram.
func ZeroCursor() Cursor {
	return Cursor{CircleGap: CircleGap}
}

// Point is a placed station. Only connected points are drawn.
type Point struct {
	X         float64
	Y         float64
	Label     string
	Connected bool
	Leg       Leg
}

type SegmentKind int

const (
	SegmentLine SegmentKind = iota
	SegmentArrow
	SegmentArc
)

func (k SegmentKind) String() string {
	switch k {
	case SegmentLine:
		return "line"
	case SegmentArrow:
		return "arrow"
	case SegmentArc:
		return "arc"
	default:
		return "unknown"
	}
}

// Segment is one drawn stroke, colored by its owning leg.
//
// Lines use X1,Y1 → X2,Y2 in raw station coordinates; clearance around the dots is
// the renderer's business. Arrows point right with the tip at X2,Y2. Arcs use
// canvas conventions: degrees, measured clockwise from the positive x axis.
type Segment struct {
	Kind SegmentKind
	Leg  Leg

	X1, Y1 float64
	X2, Y2 float64

	CX, CY   float64
	R        float64
	StartDeg float64
	EndDeg   float64
	CCW      bool
}

// Step records how one leg of the scan was handled.
type Step struct {
	Index    int
	Case     Case
	Consumed int
}

// Plan is everything a single recompute derives from the leg history.
type Plan struct {
	Points   []Point
	Segments []Segment
	Steps    []Step
	Cursor   Cursor
}

// Connected returns the points that will be drawn.
func (p Plan) Connected() []Point {
	var out []Point
	for _, pt := range p.Points {
		if pt.Connected {
			out = append(out, pt)
		}
	}
	return out
}

// Stations returns the labeled points in placement order.
func (p Plan) Stations() []Point {
	var out []Point
	for _, pt := range p.Points {
		if pt.Label != "" {
			out = append(out, pt)
		}
	}
	return out
}
