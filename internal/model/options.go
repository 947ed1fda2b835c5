package model

import "bytefit/bytesize"

// Options holds user-configurable runtime options as resolved from flags,
// environment, and the config file.
type Options struct {
	System    bytesize.System
	Magnitude bytesize.Magnitude // 0 = auto-fit per value
	Verbose   bool
}

// AutoFit reports whether no magnitude was pinned.
func (o Options) AutoFit() bool {
	return o.Magnitude == 0
}

// Formatter builds the formatter for a value under these options: the
// pinned magnitude when set, otherwise the best fit for the value.
func (o Options) Formatter(value uint64) bytesize.Formatter {
	if o.AutoFit() {
		return bytesize.Fit(value, o.System)
	}
	return bytesize.New(o.System, o.Magnitude)
}
