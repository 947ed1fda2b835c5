package bytesize

import "fmt"

// Formatter renders byte counts against a fixed divisor and unit suffix.
// It is immutable once built and safe to copy or share between goroutines.
type Formatter struct {
	divisor uint64
	unit    string
}

// New builds a Formatter for an explicit system and magnitude, e.g.
// New(Binary, Mega) renders mebibytes ("MiB", divisor 1024²).
func New(system System, magnitude Magnitude) Formatter {
	return Formatter{
		divisor: divisor(system, magnitude),
		unit:    magnitude.Prefix() + system.infix() + "B",
	}
}

// divisor computes base^rank. Exa stays well inside uint64 for both bases
// (1000⁶ < 1024⁶ = 2⁶⁰).
func divisor(system System, magnitude Magnitude) uint64 {
	d := uint64(1)
	for m := Kilo; m <= magnitude; m++ {
		d *= system.Base()
	}
	return d
}

// Fit builds a Formatter for the largest magnitude that keeps the displayed
// quantity at or above 1.0. Values below one kilounit still use Kilo (there
// is no raw-byte fallback), and values past the Exa divisor clamp to Exa.
//
// The comparison runs in floating point; near the top of the uint64 range
// the conversion loses precision, which is accepted since it can only shift
// a value sitting exactly on a unit boundary.
func Fit(value uint64, system System) Formatter {
	last := Kilo
	for m := Kilo; m <= MaxMagnitude; m++ {
		if float64(value)/float64(divisor(system, m)) < 1.0 {
			break
		}
		last = m
	}
	return New(system, last)
}

// FormatAuto formats value with an auto-fitted magnitude, e.g.
// FormatAuto(1500000, Decimal) == "1.50 MB".
func FormatAuto(value uint64, system System) string {
	return Fit(value, system).Format(value)
}

// Unit returns the unit suffix, e.g. "MiB".
func (f Formatter) Unit() string {
	return f.unit
}

// Divisor returns the fixed divisor, base^rank.
func (f Formatter) Divisor() uint64 {
	return f.divisor
}

// Format renders value divided by the formatter's divisor with exactly two
// decimal places and the unit suffix. It never fails: divisors are at
// least 1000 for any valid Formatter.
func (f Formatter) Format(value uint64) string {
	return fmt.Sprintf("%.2f %s", float64(value)/float64(f.divisor), f.unit)
}
