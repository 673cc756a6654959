package layout

import "math"

// Loop geometry. The up loop climbs LoopRise over UpLoopRun, the down loop drops
// back over DownLoopRun.
const (
	LoopRise    = 80.0
	UpLoopRun   = 138.0
	DownLoopRun = 85.0
)

// SegmentLengthFor shares the usable width between n legs.
func SegmentLengthFor(width float64, n int) float64 {
	if n <= 0 {
		return 0
	}
	return math.Min(MaxSegmentLength, math.Max(0, width-SideMargin)/float64(n))
}

// StartCursor is the cursor every recompute begins from.
func StartCursor(width, height float64, n int) Cursor {
	return Cursor{
		X:             OriginX,
		Y:             height / 2,
		SegmentLength: SegmentLengthFor(width, n),
		CircleGap:     CircleGap,
	}
}

// Compute lays out the whole leg history on a surface of the given size.
func Compute(legs []Leg, width, height float64) Plan {
	if len(legs) == 0 {
		return Plan{Cursor: ZeroCursor()}
	}
	e := &engine{
		legs: legs,
		cur:  StartCursor(width, height, len(legs)),
	}
	for i := 0; i < len(legs); {
		c, n := Classify(legs, i, e.cur.Upper)
		e.place(c, i)
		e.steps = append(e.steps, Step{Index: i, Case: c, Consumed: n})
		i += n
	}
	return Plan{
		Points:   e.points,
		Segments: e.segments,
		Steps:    e.steps,
		Cursor:   e.cur,
	}
}

type engine struct {
	legs     []Leg
	cur      Cursor
	points   []Point
	segments []Segment
	steps    []Step
}

func (e *engine) place(c Case, i int) {
	cur := e.legs[i]
	switch c {
	case CaseFirst:
		e.station(cur)
	case CaseDuplicateStack:
		e.duplicateStack(i)
	case CaseUpLoop:
		e.upLoop(i)
	case CaseConnected:
		e.line(e.legs[i-1], false)
		e.station(cur)
	case CaseDownLoop:
		e.downLoop(i)
	case CaseDisconnected:
		e.line(e.legs[i-1], true)
		e.station(cur)
	}
}

// station drops a labeled point for leg at the cursor.
func (e *engine) station(leg Leg) {
	e.addPoint(e.cur.X, e.cur.Y, leg.Label(), leg)
}

func (e *engine) addPoint(x, y float64, label string, leg Leg) {
	e.points = append(e.points, Point{X: x, Y: y, Label: label, Connected: true, Leg: leg})
}

// line draws a straight segment of one segment length from the cursor, leaves an
// unlabeled anchor at its end and moves the cursor past the anchor.
func (e *engine) line(owner Leg, arrow bool) {
	x, y := e.cur.X, e.cur.Y
	endX := x + e.cur.SegmentLength
	e.segments = append(e.segments, Segment{Kind: SegmentLine, Leg: owner, X1: x, Y1: y, X2: endX, Y2: y})
	if arrow {
		e.segments = append(e.segments, Segment{Kind: SegmentArrow, Leg: owner, X1: x, Y1: y, X2: endX, Y2: y})
	}
	e.connectNear(x, y)
	e.cur.X = endX + e.cur.CircleGap
	e.addPoint(endX, y, "", owner)
}

// connectNear marks points close to (x, y) as reached by a line.
func (e *engine) connectNear(x, y float64) {
	for i := range e.points {
		p := &e.points[i]
		if math.Abs(p.X-x) < ConnectRadius && math.Abs(p.Y-y) < ConnectRadius {
			p.Connected = true
		}
	}
}

func (e *engine) arc(owner Leg, cx, cy, r, startDeg, endDeg float64, ccw bool) {
	e.segments = append(e.segments, Segment{
		Kind:     SegmentArc,
		Leg:      owner,
		CX:       cx,
		CY:       cy,
		R:        r,
		StartDeg: startDeg,
		EndDeg:   endDeg,
		CCW:      ccw,
	})
}

// upLoop lifts the track with an S curve, then places legs[k] and, when present,
// legs[k+1] joined by a plain line on the upper track.
func (e *engine) upLoop(k int) {
	cur := e.legs[k]
	x, y := e.cur.X, e.cur.Y
	e.arc(cur, x, y-LoopRise, 80, 25, 82, false)
	e.arc(cur, x+140, y, 82, 205, -100, false)

	e.cur.X = x + UpLoopRun
	e.cur.Y = y - LoopRise
	e.cur.Upper = true
	e.station(cur)

	if k+1 >= len(e.legs) {
		return
	}
	e.line(cur, false)
	e.station(e.legs[k+1])
}

// downLoop drops the track back to the baseline and places legs[j] there.
func (e *engine) downLoop(j int) {
	cur := e.legs[j]
	x, y := e.cur.X, e.cur.Y
	e.arc(cur, x-34, y+64, 80, 345, 305, true)
	e.arc(cur, x+116, y+4, 82, 160, 120, true)

	e.cur.X = x + DownLoopRun
	e.cur.Y = y + LoopRise
	e.cur.Upper = false
	e.station(cur)
}

// duplicateStack redraws the previous leg on a row above the cursor and joins it to
// the repeated leg with a straight line.
func (e *engine) duplicateStack(l int) {
	prev, cur := e.legs[l-1], e.legs[l]
	x := e.cur.X
	upperY := e.cur.Y - StackOffset

	e.addPoint(x, upperY, prev.Label(), prev)
	e.segments = append(e.segments, Segment{
		Kind: SegmentLine,
		Leg:  prev,
		X1:   x,
		Y1:   upperY,
		X2:   x + e.cur.SegmentLength,
		Y2:   upperY,
	})

	e.cur.X = x + e.cur.SegmentLength + e.cur.CircleGap
	e.cur.Y = upperY
	e.cur.Upper = true
	e.addPoint(e.cur.X-e.cur.CircleGap, upperY, cur.Label(), cur)
}
