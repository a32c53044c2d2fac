package repair

import (
	"strconv"
	"strings"
)

// Result is the set of status flags produced by a fix. Fatal flags
// (TooSmall, TooBig, MissingCriticalBlocks) appear alone; a successful fix
// always carries Recovered plus any advisory flags.
type Result uint32

const (
	TooSmall              Result = 1 << iota // input shorter than any accepted shape
	TooBig                                   // input longer than a full image plus footer
	MissingCriticalBlocks                    // one of blocks 0..3 has no usable copy
	MissingBoxBlocks                         // one or more of blocks 4..13 was synthesized blank
	MissingExtraBlocks                       // one or more supplemental sectors was dropped
	Inflated                                 // input was a half image
	Recovered                                // a complete image was produced
)

// None is the empty flag set.
const None Result = 0

const (
	fatalMask    = TooSmall | TooBig | MissingCriticalBlocks
	advisoryMask = MissingBoxBlocks | MissingExtraBlocks | Inflated
)

var resultNames = []struct {
	flag Result
	name string
}{
	{TooSmall, "TooSmall"},
	{TooBig, "TooBig"},
	{MissingCriticalBlocks, "MissingCriticalBlocks"},
	{MissingBoxBlocks, "MissingBoxBlocks"},
	{MissingExtraBlocks, "MissingExtraBlocks"},
	{Inflated, "Inflated"},
	{Recovered, "Recovered"},
}

// Has reports whether every flag in f is set in r.
func (r Result) Has(f Result) bool { return f != None && r&f == f }

// Failed reports whether r carries a fatal flag.
func (r Result) Failed() bool { return r&fatalMask != 0 }

// Advisory returns only the advisory flags of r.
func (r Result) Advisory() Result { return r & advisoryMask }

// String lists the set flags, comma separated, in declaration order.
func (r Result) String() string {
	if r == None {
		return "None"
	}
	var names []string
	for _, n := range resultNames {
		if r&n.flag != 0 {
			names = append(names, n.name)
		}
	}
	if rest := r &^ (fatalMask | advisoryMask | Recovered); rest != 0 {
		names = append(names, "0x"+strconv.FormatUint(uint64(rest), 16))
	}
	return strings.Join(names, ", ")
}

// MarshalText renders the flag names so JSON output stays readable.
func (r Result) MarshalText() ([]byte, error) { return []byte(r.String()), nil }
