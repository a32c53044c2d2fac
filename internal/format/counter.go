package format

import "math"

// CounterOrder is the outcome of comparing two generation counters.
type CounterOrder int

const (
	CounterFirst  CounterOrder = iota // first counter is newer
	CounterSecond                     // second counter is newer
	CounterSame                       // counters are equal
)

func (o CounterOrder) String() string {
	switch o {
	case CounterFirst:
		return "first"
	case CounterSecond:
		return "second"
	case CounterSame:
		return "same"
	default:
		return "unknown"
	}
}

// CompareCounters orders two save generation counters. The larger value
// wins, except that a counter holding the sentinel maximum loses unless the
// other side sits one below it (a genuine rollover).
//
// The sentinel is the uint32 maximum. Block counters are 16-bit and are
// widened before they get here, so for them the sentinel branch never
// fires; keep it that way unless the intended width is confirmed.
func CompareCounters(c1, c2 uint32) CounterOrder {
	if c1 == math.MaxUint32 && c2 != math.MaxUint32-1 {
		return CounterSecond
	}
	if c2 == math.MaxUint32 && c1 != math.MaxUint32-1 {
		return CounterFirst
	}

	switch {
	case c1 > c2:
		return CounterFirst
	case c1 < c2:
		return CounterSecond
	default:
		return CounterSame
	}
}
