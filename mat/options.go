// SPDX-License-Identifier: MIT
// Package mat — functional options for constructors and rendering.
//
// Options follow the usual shape: Default* constants document the
// defaults, With* setters validate eagerly and panic on programmer
// errors, gatherOptions folds a variadic list over the defaults.

package mat

// Defaults for every option accepted in this package.
const (
	// DefaultAllowNaN keeps the NaN/Inf write guard enabled.
	DefaultAllowNaN = false
	// DefaultPrecision renders elements with fmt's shortest form.
	DefaultPrecision = -1
	// DefaultDelimiter separates elements within a rendered row.
	DefaultDelimiter = ", "
)

// Panic messages for invalid option values and dimension tags.
const (
	panicBadPrecision   = "mat: WithPrecision requires precision >= -1"
	panicEmptyDelimiter = "mat: WithDelimiter requires a non-empty delimiter"
	panicNonPositiveDim = "mat: dimension tag must report a positive size"
)

// Options collects the tunables accepted by constructors and Fprint.
type Options struct {
	allowNaN  bool   // skip the NaN/Inf guard on writes and construction
	precision int    // fixed fraction digits for Fprint; -1 = shortest form
	delimiter string // element separator for Fprint
}

// Option mutates Options.
type Option func(*Options)

// WithAllowNaN disables the NaN/Inf guard for the matrix being built, so
// non-finite floats can be stored deliberately.
func WithAllowNaN() Option {
	return func(o *Options) { o.allowNaN = true }
}

// WithPrecision sets the number of fraction digits Fprint renders;
// -1 selects the shortest exact form. Panics on smaller values.
func WithPrecision(p int) Option {
	if p < -1 {
		panic(panicBadPrecision)
	}

	return func(o *Options) { o.precision = p }
}

// WithDelimiter sets the element separator Fprint places between columns.
// Panics on an empty delimiter.
func WithDelimiter(d string) Option {
	if d == "" {
		panic(panicEmptyDelimiter)
	}

	return func(o *Options) { o.delimiter = d }
}

// defaultOptions returns the package defaults.
func defaultOptions() Options {
	return Options{
		allowNaN:  DefaultAllowNaN,
		precision: DefaultPrecision,
		delimiter: DefaultDelimiter,
	}
}

// gatherOptions folds opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
