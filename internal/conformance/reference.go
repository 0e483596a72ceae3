// Package conformance holds the differential oracles fftgen's generated
// code is checked against: an unrolled-free textbook Cooley-Tukey
// transform (adapted from the teacher library's fft.go), plus the
// external FFT packages the teacher already benchmarks itself against.
package conformance

import "math"

// transform computes the discrete Fourier transform of x by the same
// bit-reversal-then-butterflies algorithm the generator unrolls, but
// looped rather than unrolled and carrying no constant-folding
// optimizations at all. It is the "textbook Cooley-Tukey reference
// implementation" spec.md section 8.2 asks the generated code be
// checked against. x is left untouched; the result is a new slice.
//
// Adapted from the teacher library's roots/permutationIndex/permute/fft
// (fft.go), generalized to take the transform direction directly instead
// of via a separate ifft entry point.
func transform(x []complex128, inverse bool) []complex128 {
	n := len(x)
	y := append([]complex128(nil), x...)
	if n <= 1 {
		return y
	}

	perm := permutationIndex(n)
	permute(y, perm)

	e := roots(n, inverse)
	s := n
	for m := 1; m < n; m <<= 1 {
		s >>= 1
		for o := 0; o < n; o += m << 1 {
			for k := 0; k < m; k++ {
				i := k + o
				j := i + m
				y[i], y[j] = y[i]+e[k*s]*y[j], y[i]+e[s*(k+m)]*y[j]
			}
		}
	}

	if inverse {
		invN := complex(1.0/float64(n), 0)
		for i := range y {
			y[i] *= invN
		}
	}
	return y
}

// permutationIndex builds the bit-inverted index vector needed to
// permute the input data, exactly as the teacher library does.
func permutationIndex(n int) []int {
	index := make([]int, n)
	for i := 1; i < n; i <<= 1 {
		for k := 0; k < i; k++ {
			index[k] <<= 1
			index[k+i] = index[k] + 1
		}
	}
	return index
}

// permute reorders x in place according to perm.
func permute(x []complex128, perm []int) {
	n := len(x)
	for i := 0; i < n-1; i++ {
		ind := perm[i]
		for ind < i {
			ind = perm[ind]
		}
		x[i], x[ind] = x[ind], x[i]
	}
}

// roots computes the table of n complex roots of unity used at stride 1,
// with the sign convention flipped when inverse is set.
func roots(n int, inverse bool) []complex128 {
	sign := -2.0
	if inverse {
		sign = 2.0
	}
	e := make([]complex128, n)
	for k := 0; k < n; k++ {
		s, c := math.Sincos(sign * math.Pi * float64(k) / float64(n))
		e[k] = complex(c, s)
	}
	return e
}

// hermitianFill mirrors x[1..n/2-1] into x[n/2+1..n-1] as the conjugate
// of the lower half, the symmetry relationship spec.md's GLOSSARY
// defines and that the symm_in/symm_out optimizations rely on.
func hermitianFill(x []complex128) {
	n := len(x)
	for i := n/2 + 1; i < n; i++ {
		x[i] = complex(real(x[n-i]), -imag(x[n-i]))
	}
}
