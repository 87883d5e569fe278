// Package conf holds the constants that tune the veld kernel.
package conf

const (
	// VERSION is the version of the veld application.
	VERSION = "veld 0.1.0"
	// MAXCALLDEPTH bounds nested user-function calls during evaluation.
	MAXCALLDEPTH = 250
	// FLOATDISPLAYPREC is the precision passed to strconv when rendering
	// floats; -1 picks the shortest representation that round-trips.
	FLOATDISPLAYPREC = -1
	// BENCHDEFAULTITERS is the iteration count the bench command uses when
	// none is given.
	BENCHDEFAULTITERS = 1_000_000
	// SUMPOWLO and SUMPOWHI bound the aggregation range the bench command
	// sums over per iteration.
	SUMPOWLO = 1.0
	SUMPOWHI = 10.0
)
