package layout

// Case tags how a leg is placed relative to its neighbours.
type Case int

const (
	// CaseFirst anchors the first leg at the origin.
	CaseFirst Case = iota
	// CaseDuplicateStack lifts a repeated second leg onto a stacked row.
	CaseDuplicateStack
	// CaseUpLoop climbs to the upper track and places this leg and the next one.
	CaseUpLoop
	// CaseConnected continues the track with a plain line.
	CaseConnected
	// CaseDownLoop returns from the upper track to the baseline.
	CaseDownLoop
	// CaseDisconnected jumps with a plain line ending in an arrow head.
	CaseDisconnected
)

func (c Case) String() string {
	switch c {
	case CaseFirst:
		return "first"
	case CaseDuplicateStack:
		return "duplicate-stack"
	case CaseUpLoop:
		return "up-loop"
	case CaseConnected:
		return "connected"
	case CaseDownLoop:
		return "down-loop"
	case CaseDisconnected:
		return "disconnected"
	default:
		return "unknown"
	}
}

// Classify decides how legs[i] is placed given the current track. It returns the
// case and how many legs the case consumes starting at i (1 or 2).
func Classify(legs []Leg, i int, upper bool) (Case, int) {
	if i == 0 {
		return CaseFirst, 1
	}
	cur, prev := legs[i], legs[i-1]
	hasNext := i+1 < len(legs)
	sameAsPrev := cur == prev
	sameAsNext := hasNext && cur == legs[i+1]

	switch {
	case sameAsPrev || sameAsNext:
		if i == 1 {
			if sameAsNext && !sameAsPrev {
				return CaseUpLoop, 2
			}
			return CaseDuplicateStack, 1
		}
		if upper {
			return CaseConnected, 1
		}
		// A trailing repeat has nothing left to pull into the loop.
		if !hasNext {
			return CaseUpLoop, 1
		}
		return CaseUpLoop, 2
	case prev.End == cur.Start:
		if upper {
			return CaseDownLoop, 1
		}
		return CaseConnected, 1
	default:
		if upper {
			return CaseDownLoop, 1
		}
		return CaseDisconnected, 1
	}
}
