/*
Package save reconstructs corrupted third-generation handheld save images.

An image is 32 sectors of 4 KiB: fourteen logical blocks stored twice
(sectors 0..13 and 14..27) plus four supplemental sectors (28..31). Fixing
picks the best surviving copy of every block, synthesizes blank
placeholders for lost non-critical blocks, brings every block to the newest
generation counter, reseals checksums and writes both mirrors identically.

# Quick Start

Fix a file, writing the result next to it:

	res, err := save.FixFile("game.sav", nil)
	// writes game.sav.fixed

Fix bytes already in memory:

	out, flags, err := save.Fix(data, nil)
	if err != nil {
	    log.Fatal(err) // flags is TooSmall, TooBig or MissingCriticalBlocks
	}
	if flags.Has(types.MissingBoxBlocks) {
	    // some PC boxes were lost and are now empty
	}

Inspect without writing anything:

	report, err := save.InspectFile("game.sav", nil)
	for _, d := range report.Diagnostics {
	    fmt.Println(d.Severity, d.Issue)
	}

# Error Handling

A failed fix returns a *types.FixError that unwraps to one of
types.ErrTooSmall, types.ErrTooBig or types.ErrMissingCriticalBlocks.
Advisory flags never produce an error.
*/
package save
