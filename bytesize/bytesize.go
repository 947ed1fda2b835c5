// Package bytesize converts raw byte counts into human-readable size
// strings such as "1.50 MB" or "953.67 MiB", in either the binary
// (base-1024, IEC) or decimal (base-1000, SI) numeral system.
package bytesize

import (
	"fmt"
	"strings"
)

// System is the numeral system used for magnitude scaling. The constant
// value is the system's base, so conversions need no lookup.
type System uint64

const (
	// Binary scales by powers of 1024 and renders IEC units ("KiB").
	Binary System = 1024
	// Decimal scales by powers of 1000 and renders SI units ("KB").
	Decimal System = 1000
)

// Base returns the system's base value (1024 or 1000).
func (s System) Base() uint64 {
	return uint64(s)
}

func (s System) String() string {
	switch s {
	case Binary:
		return "binary"
	case Decimal:
		return "decimal"
	}
	return fmt.Sprintf("System(%d)", uint64(s))
}

// infix is the letter between the magnitude prefix and "B": binary units
// carry the IEC "i" ("KiB"), decimal units carry nothing ("KB").
func (s System) infix() string {
	if s == Binary {
		return "i"
	}
	return ""
}

// ParseSystem maps a user-facing name to a System.
func ParseSystem(s string) (System, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "binary", "iec", "1024":
		return Binary, nil
	case "decimal", "si", "1000":
		return Decimal, nil
	}
	return 0, fmt.Errorf("invalid numeral system: %q (valid: binary|decimal)", s)
}

// Magnitude is a prefix rank: Kilo is 1, Mega is 2, and so on. The rank is
// a 1-based index into the prefix table; starting the constants at 1 keeps
// an out-of-range rank 0 out of the type's usable values.
type Magnitude int

const (
	Kilo Magnitude = iota + 1
	Mega
	Giga
	Tera
	Peta
	Exa
)

// prefixes is indexed by Magnitude-1. Its length defines MaxMagnitude.
var prefixes = [...]string{"K", "M", "G", "T", "P", "E"}

// MaxMagnitude is the largest supported magnitude (currently Exa).
const MaxMagnitude = Magnitude(len(prefixes))

// Prefix returns the one-letter unit prefix for the magnitude ("K", "M", ...).
func (m Magnitude) Prefix() string {
	return prefixes[m-1]
}

var magnitudeNames = [...]string{"kilo", "mega", "giga", "tera", "peta", "exa"}

func (m Magnitude) String() string {
	if m < Kilo || m > MaxMagnitude {
		return fmt.Sprintf("Magnitude(%d)", int(m))
	}
	return magnitudeNames[m-1]
}

// ParseMagnitude maps a magnitude name ("mega") or prefix letter ("M",
// case-insensitive) to a Magnitude.
func ParseMagnitude(s string) (Magnitude, error) {
	in := strings.ToLower(strings.TrimSpace(s))
	for m := Kilo; m <= MaxMagnitude; m++ {
		if in == magnitudeNames[m-1] || in == strings.ToLower(prefixes[m-1]) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("invalid magnitude: %q (valid: kilo|mega|giga|tera|peta|exa)", s)
}

// Magnitudes returns all magnitudes in ascending rank order.
func Magnitudes() []Magnitude {
	ms := make([]Magnitude, 0, MaxMagnitude)
	for m := Kilo; m <= MaxMagnitude; m++ {
		ms = append(ms, m)
	}
	return ms
}
