package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testWidth  = 1200.0
	testHeight = 600.0
)

func TestLabel(t *testing.T) {
	assert.Equal(t, "NEW - LON", Leg{"New York", "london"}.Label())
	assert.Equal(t, "A - BC", Leg{"a", "bc"}.Label())
	assert.Equal(t, "MÜN - ZÜR", Leg{"münchen", "zürich"}.Label())
	assert.Equal(t, " - ", Leg{}.Label())
}

func TestSegmentLengthFor(t *testing.T) {
	assert.Equal(t, 250.0, SegmentLengthFor(1200, 2))
	assert.InDelta(t, 1000.0/6, SegmentLengthFor(1200, 6), 1e-9)
	assert.Equal(t, 0.0, SegmentLengthFor(150, 3))
	assert.Equal(t, 0.0, SegmentLengthFor(1200, 0))
}

func TestComputeEmpty(t *testing.T) {
	plan := Compute(nil, testWidth, testHeight)
	assert.Empty(t, plan.Points)
	assert.Empty(t, plan.Segments)
	assert.Equal(t, ZeroCursor(), plan.Cursor)
}

func TestComputeSingleLeg(t *testing.T) {
	plan := Compute(legs("NYC", "LON"), testWidth, testHeight)

	want := []Point{{X: 100, Y: 300, Label: "NYC - LON", Connected: true, Leg: Leg{"NYC", "LON"}}}
	if diff := cmp.Diff(want, plan.Points); diff != "" {
		t.Fatalf("points diff (-want +got):\n%s", diff)
	}
	assert.Empty(t, plan.Segments)
	assert.Equal(t, 100.0, plan.Cursor.X)
	assert.False(t, plan.Cursor.Upper)
}

func TestComputeConnectedChain(t *testing.T) {
	trip := legs("NYC", "LON", "LON", "PAR", "PAR", "NYC")
	plan := Compute(trip, testWidth, testHeight)

	stations := plan.Stations()
	require.Len(t, stations, 3)
	assert.Equal(t, "NYC - LON", stations[0].Label)
	assert.Equal(t, "LON - PAR", stations[1].Label)
	assert.Equal(t, "PAR - NYC", stations[2].Label)
	for i, s := range stations {
		assert.True(t, s.Connected)
		assert.Equal(t, 300.0, s.Y)
		if i > 0 {
			assert.Greater(t, s.X, stations[i-1].X)
		}
	}
	assert.Equal(t, []float64{100, 360, 620}, []float64{stations[0].X, stations[1].X, stations[2].X})

	for _, seg := range plan.Segments {
		assert.Equal(t, SegmentLine, seg.Kind, "no arrows or loops in a contiguous trip")
	}
	assert.Equal(t, []Step{
		{Index: 0, Case: CaseFirst, Consumed: 1},
		{Index: 1, Case: CaseConnected, Consumed: 1},
		{Index: 2, Case: CaseConnected, Consumed: 1},
	}, plan.Steps)
}

func TestComputeConnectedKeepsBaseline(t *testing.T) {
	plan := Compute(legs("A", "B", "B", "C"), testWidth, testHeight)
	stations := plan.Stations()
	require.Len(t, stations, 2)
	assert.Equal(t, stations[0].Y, stations[1].Y)

	want := []Point{
		{X: 100, Y: 300, Label: "A - B", Connected: true, Leg: Leg{"A", "B"}},
		{X: 350, Y: 300, Label: "", Connected: true, Leg: Leg{"A", "B"}},
		{X: 360, Y: 300, Label: "B - C", Connected: true, Leg: Leg{"B", "C"}},
	}
	if diff := cmp.Diff(want, plan.Points); diff != "" {
		t.Fatalf("points diff (-want +got):\n%s", diff)
	}
}

func TestComputeDisconnectedDrawsArrow(t *testing.T) {
	plan := Compute(legs("A", "B", "C", "D"), testWidth, testHeight)

	require.Len(t, plan.Segments, 2)
	assert.Equal(t, SegmentLine, plan.Segments[0].Kind)
	assert.Equal(t, SegmentArrow, plan.Segments[1].Kind)
	assert.Equal(t, 350.0, plan.Segments[1].X2)
	assert.Equal(t, 300.0, plan.Segments[1].Y2)

	stations := plan.Stations()
	require.Len(t, stations, 2)
	assert.Equal(t, 300.0, stations[1].Y)
	assert.Equal(t, 360.0, stations[1].X)
	assert.False(t, plan.Cursor.Upper)
}

func TestComputeDuplicateStack(t *testing.T) {
	plan := Compute(legs("A", "B", "A", "B"), testWidth, testHeight)

	want := []Point{
		{X: 100, Y: 300, Label: "A - B", Connected: true, Leg: Leg{"A", "B"}},
		{X: 100, Y: 200, Label: "A - B", Connected: true, Leg: Leg{"A", "B"}},
		{X: 350, Y: 200, Label: "A - B", Connected: true, Leg: Leg{"A", "B"}},
	}
	if diff := cmp.Diff(want, plan.Points); diff != "" {
		t.Fatalf("points diff (-want +got):\n%s", diff)
	}
	require.Len(t, plan.Segments, 1)
	assert.Equal(t, Segment{Kind: SegmentLine, Leg: Leg{"A", "B"}, X1: 100, Y1: 200, X2: 350, Y2: 200}, plan.Segments[0])
	assert.Equal(t, Cursor{X: 360, Y: 200, SegmentLength: 250, CircleGap: 10, Upper: true}, plan.Cursor)
	assert.Equal(t, CaseDuplicateStack, plan.Steps[1].Case)
}

func TestComputeUpLoopConsumesNextLeg(t *testing.T) {
	plan := Compute(legs("A", "B", "B", "C", "B", "C"), testWidth, testHeight)

	assert.Equal(t, []Step{
		{Index: 0, Case: CaseFirst, Consumed: 1},
		{Index: 1, Case: CaseUpLoop, Consumed: 2},
	}, plan.Steps)

	arcs := filterKind(plan.Segments, SegmentArc)
	require.Len(t, arcs, 2)
	assert.Equal(t, Segment{Kind: SegmentArc, Leg: Leg{"B", "C"}, CX: 100, CY: 220, R: 80, StartDeg: 25, EndDeg: 82}, arcs[0])
	assert.Equal(t, Segment{Kind: SegmentArc, Leg: Leg{"B", "C"}, CX: 240, CY: 300, R: 82, StartDeg: 205, EndDeg: -100}, arcs[1])

	stations := plan.Stations()
	require.Len(t, stations, 3)
	assert.Equal(t, Point{X: 238, Y: 220, Label: "B - C", Connected: true, Leg: Leg{"B", "C"}}, stations[1])
	assert.Equal(t, Point{X: 498, Y: 220, Label: "B - C", Connected: true, Leg: Leg{"B", "C"}}, stations[2])
	assert.True(t, plan.Cursor.Upper)
}

func TestComputeDownLoopReturnsToBaseline(t *testing.T) {
	plan := Compute(legs("A", "B", "B", "C", "B", "C", "C", "D"), testWidth, testHeight)

	last := plan.Steps[len(plan.Steps)-1]
	assert.Equal(t, Step{Index: 3, Case: CaseDownLoop, Consumed: 1}, last)

	arcs := filterKind(plan.Segments, SegmentArc)
	require.Len(t, arcs, 4)
	// Segment length is 250 for four legs, so the upper stations sit at 238 and 498.
	assert.Equal(t, Segment{Kind: SegmentArc, Leg: Leg{"C", "D"}, CX: 464, CY: 284, R: 80, StartDeg: 345, EndDeg: 305, CCW: true}, arcs[2])
	assert.Equal(t, Segment{Kind: SegmentArc, Leg: Leg{"C", "D"}, CX: 614, CY: 224, R: 82, StartDeg: 160, EndDeg: 120, CCW: true}, arcs[3])

	stations := plan.Stations()
	end := stations[len(stations)-1]
	assert.Equal(t, Point{X: 583, Y: 300, Label: "C - D", Connected: true, Leg: Leg{"C", "D"}}, end)
	assert.False(t, plan.Cursor.Upper)
}

func TestComputeDisconnectedFromUpperTrackLoopsDown(t *testing.T) {
	plan := Compute(legs("A", "B", "A", "B", "X", "Y"), testWidth, testHeight)
	assert.Equal(t, CaseDuplicateStack, plan.Steps[1].Case)
	assert.Equal(t, CaseDownLoop, plan.Steps[2].Case)
	assert.Empty(t, filterKind(plan.Segments, SegmentArrow))
	assert.False(t, plan.Cursor.Upper)
}

func TestComputeRepeatOnUpperTrackStaysUp(t *testing.T) {
	plan := Compute(legs("A", "B", "A", "B", "A", "B"), testWidth, testHeight)
	require.Len(t, plan.Steps, 3)
	assert.Equal(t, CaseDuplicateStack, plan.Steps[1].Case)
	assert.Equal(t, CaseConnected, plan.Steps[2].Case)

	stations := plan.Stations()
	end := stations[len(stations)-1]
	assert.Equal(t, 200.0, end.Y)
	assert.True(t, plan.Cursor.Upper)
}

func TestComputeNarrowSurface(t *testing.T) {
	trip := legs("A", "B", "C", "D", "D", "E", "D", "E", "E", "F")
	plan := Compute(trip, 120, 80)

	assert.Equal(t, 0.0, plan.Cursor.SegmentLength)
	assert.NotEmpty(t, plan.Points)
	assert.GreaterOrEqual(t, len(plan.Connected()), len(trip))
}

func TestComputeIsDeterministic(t *testing.T) {
	trip := legs("NYC", "LON", "LON", "PAR", "LON", "PAR", "PAR", "ROM", "BER", "OSL", "OSL", "BER")
	a := Compute(trip, testWidth, testHeight)
	b := Compute(trip, testWidth, testHeight)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("recompute differs (-first +second):\n%s", diff)
	}
}

func TestComputeDoesNotRetainInput(t *testing.T) {
	trip := legs("A", "B", "B", "C")
	before := Compute(trip, testWidth, testHeight)
	trip[1] = Leg{"Q", "R"}
	after := Compute(legs("A", "B", "B", "C"), testWidth, testHeight)
	if diff := cmp.Diff(before, after); diff != "" {
		t.Fatalf("plan changed with caller slice (-before +after):\n%s", diff)
	}
}

func TestComputeConnectedCoversEveryLeg(t *testing.T) {
	trips := [][]Leg{
		legs("A", "B"),
		legs("A", "B", "A", "B"),
		legs("A", "B", "C", "D"),
		legs("A", "B", "B", "C", "B", "C"),
		legs("A", "B", "B", "C", "C", "D", "C", "D", "D", "E"),
		legs("A", "B", "A", "B", "A", "B", "B", "C", "X", "Y"),
	}
	for _, trip := range trips {
		plan := Compute(trip, testWidth, testHeight)
		assert.GreaterOrEqual(t, len(plan.Connected()), len(trip), "%v", trip)
	}
}

func TestComputePointCountNeverShrinks(t *testing.T) {
	trip := legs(
		"NYC", "LON",
		"LON", "PAR",
		"LON", "PAR",
		"PAR", "ROM",
		"ROM", "ROM",
		"BER", "OSL",
		"BER", "OSL",
		"OSL", "HEL",
		"HEL", "NYC",
	)
	prev := 0
	for n := 1; n <= len(trip); n++ {
		got := len(Compute(trip[:n], testWidth, testHeight).Points)
		assert.GreaterOrEqual(t, got, prev, "prefix of %d legs", n)
		prev = got
	}
}

func filterKind(segs []Segment, kind SegmentKind) []Segment {
	var out []Segment
	for _, s := range segs {
		if s.Kind == kind {
			out = append(out, s)
		}
	}
	return out
}
