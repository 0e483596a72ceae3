// Package generator implements the fftgen code-generation engine: the
// unrolled binary-reversal permutation and butterfly network for a
// radix-2 Cooley-Tukey FFT/IFFT of a compile-time-fixed point count N.
//
// The package performs no FFT computation itself - it only emits source
// text meant to be spliced into a function body declaring xr, xi (the
// real/imaginary arrays of length N) and tr, ti (scalar temporaries).
package generator

import (
	"math/bits"

	"github.com/pkg/errors"
)

// Config is the immutable, fully-validated description of one generation
// run. Zero value is not valid; build one with NewConfig.
type Config struct {
	N int // number of data points, must be a non-zero power of two

	Inverse bool // generate an IFFT instead of an FFT
	RealIn  bool // assume xi is identically zero on entry
	RealOut bool // assume the final xi is identically zero
	SymmIn  bool // assume the input is Hermitian-symmetric about N/2
	SymmOut bool // elide the upper half of the output (Hermitian symmetric)

	// NumberFormat and Indent are not exposed on the command line - the
	// original fftGen tool only let a packager override them with the
	// NUMBER_FORMAT/INDENT preprocessor defines, never at runtime. They
	// are kept here for callers that import this package directly.
	//
	// NumberFormat is a fmt verb applied to a literal's magnitude (e.g.
	// "%.20e" for more digits); empty means the default used by
	// formatLiteral (14 digits after the decimal point, mirroring the
	// original's "%21.14e" minus its column-alignment field width).
	NumberFormat string
	Indent       string // prefix prepended to every emitted line

	// Header and Footer are emitted verbatim before/after the generated
	// statements when non-empty. The CLI sets Header only to the license
	// banner (--license) and never sets Footer; deriving the surrounding
	// function signature is an explicit Non-goal.
	Header string
	Footer string
}

// NewConfig validates n and flags and returns a ready-to-use Config.
func NewConfig(n int, inverse, realIn, realOut, symmIn, symmOut bool) (Config, error) {
	if n <= 0 {
		return Config{}, errors.New("No number of points specified")
	}
	if !isPow2(n) {
		return Config{}, errors.Errorf("Number of points is not a power of two: %d", n)
	}
	return Config{
		N:       n,
		Inverse: inverse,
		RealIn:  realIn,
		RealOut: realOut,
		SymmIn:  symmIn,
		SymmOut: symmOut,
		Indent:  "",
	}, nil
}

// isPow2 reports whether n is a perfect power of two (1, 2, 4, 8, ...).
// Adapted from the teacher library's IsPow2 (utils.go): same bit trick,
// restricted to the strictly-positive domain NewConfig already enforces.
func isPow2(n int) bool {
	if n <= 0 {
		return false
	}
	return uint64(n)&uint64(n-1) == 0
}

// log2 returns the base-2 logarithm of n, which must be a power of two.
func log2(n int) int {
	return bits.TrailingZeros(uint(n))
}
