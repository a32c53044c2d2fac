package format

import (
	"math"
	"testing"
)

func TestCompareCounters(t *testing.T) {
	cases := []struct {
		name   string
		c1, c2 uint32
		want   CounterOrder
	}{
		{"first larger", 101, 100, CounterFirst},
		{"second larger", 100, 101, CounterSecond},
		{"equal", 7, 7, CounterSame},
		{"zero vs one", 0, 1, CounterSecond},
		{"sentinel first loses", math.MaxUint32, 3, CounterSecond},
		{"sentinel second loses", 3, math.MaxUint32, CounterFirst},
		{"sentinel first rollover", math.MaxUint32, math.MaxUint32 - 1, CounterFirst},
		{"sentinel second rollover", math.MaxUint32 - 1, math.MaxUint32, CounterSecond},
		{"both sentinel", math.MaxUint32, math.MaxUint32, CounterSecond},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CompareCounters(tc.c1, tc.c2); got != tc.want {
				t.Fatalf("CompareCounters(%d, %d) = %s, want %s", tc.c1, tc.c2, got, tc.want)
			}
		})
	}
}

// Block counters are 16-bit, so the sentinel at the 32-bit maximum is never
// reached: the 16-bit maximum is just a large number.
func TestCompareCountersSixteenBitMaxIsOrdinary(t *testing.T) {
	if got := CompareCounters(uint32(uint16(math.MaxUint16)), 0); got != CounterFirst {
		t.Fatalf("0xFFFF vs 0 = %s, want first", got)
	}
	if got := CompareCounters(5, uint32(uint16(math.MaxUint16))); got != CounterSecond {
		t.Fatalf("5 vs 0xFFFF = %s, want second", got)
	}
}
