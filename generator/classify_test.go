package generator

import (
	"math"
	"testing"
)

func TestClassifyExactOnesAndZero(t *testing.T) {
	for _, n := range []int{2, 4, 8, 16, 32, 64, 128, 256} {
		th := newThresholds(n)

		if got := classify(0, th); got != classZero {
			t.Errorf("n=%d: classify(0)=%v, want ZERO", n, got)
		}
		if got := classify(1, th); got != classPlusOne {
			t.Errorf("n=%d: classify(1)=%v, want PLUS_ONE", n, got)
		}
		if got := classify(-1, th); got != classMinusOne {
			t.Errorf("n=%d: classify(-1)=%v, want MINUS_ONE", n, got)
		}
		// For n=2 (epsOne == 0) and n=4 (eps == epsOne == 0.5) the POS and
		// NEG classes are empty; 0.5 first lands strictly inside them at n=8.
		if n < 8 {
			continue
		}
		if got := classify(0.5, th); got != classPos {
			t.Errorf("n=%d: classify(0.5)=%v, want POS", n, got)
		}
		if got := classify(-0.5, th); got != classNeg {
			t.Errorf("n=%d: classify(-0.5)=%v, want NEG", n, got)
		}
	}
}

func TestClassifyCollapsesActualTwiddles(t *testing.T) {
	// Every wr/wi value arising in a radix-2 FFT of size n must collapse
	// to its nearest representative class, per spec.md section 3.
	for _, n := range []int{8, 16, 32, 64} {
		th := newThresholds(n)
		for k := 1; k <= n/2; k <<= 1 {
			for m := 0; m < k; m++ {
				phi := -math.Pi * float64(m) / float64(k)
				wr, wi := math.Cos(phi), math.Sin(phi)
				cr := classify(wr, th)
				ci := classify(wi, th)
				if cr == classZero && math.Abs(wr) > 0.5 {
					t.Errorf("n=%d k=%d m=%d: wr=%v misclassified ZERO", n, k, m, wr)
				}
				if ci == classZero && math.Abs(wi) > 0.5 {
					t.Errorf("n=%d k=%d m=%d: wi=%v misclassified ZERO", n, k, m, wi)
				}
			}
		}
	}
}

func TestFlipIsInvolution(t *testing.T) {
	for _, c := range []twiddleClass{classZero, classPlusOne, classMinusOne, classPos, classNeg} {
		if c.flip().flip() != c {
			t.Errorf("flip(flip(%v)) != %v", c, c)
		}
	}
	if classPlusOne.flip() != classMinusOne {
		t.Errorf("flip(PLUS_ONE) != MINUS_ONE")
	}
	if classPos.flip() != classNeg {
		t.Errorf("flip(POS) != NEG")
	}
}
