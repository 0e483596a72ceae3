package generator

import (
	"math/bits"
	"testing"
)

func bitReverse(i, width int) int {
	return int(bits.Reverse64(uint64(i)) >> (64 - width))
}

func TestPlanPermutationMatchesBitReversal(t *testing.T) {
	for _, n := range []int{2, 4, 8, 16, 32, 64, 128, 256} {
		width := bits.TrailingZeros(uint(n))
		x := make([]int, n)
		for i := range x {
			x[i] = i
		}
		p := planPermutation(n, false)
		for _, r := range p.records {
			x[r.M], x[r.MR] = x[r.MR], x[r.M]
		}
		for i, v := range x {
			want := bitReverse(i, width)
			if v != want {
				t.Errorf("n=%d: after permutation x[%d]=%d, want %d", n, i, v, want)
			}
		}
	}
}

func TestPlanPermutationNoSymmInvariant(t *testing.T) {
	for _, r := range planPermutation(8, false).records {
		if r.UseSymm || r.M != r.MSrc || r.MR != r.MRSrc {
			t.Errorf("no-symmIn record must have MSrc==M and MRSrc==MR, got %+v", r)
		}
	}
}

// TestPlanSafetyUnderSymmIn is spec.md section 8, testable property 5:
// no symm_in record may read from a source an earlier record already
// overwrote, once use_symm records are understood to copy from the
// Hermitian-filled upper half.
func TestPlanSafetyUnderSymmIn(t *testing.T) {
	for n := 2; n <= 256; n <<= 1 {
		p := planPermutation(n, true)
		written := make(map[int]bool, n)
		for idx, r := range p.records {
			srcs := []int{r.M, r.MR}
			if r.UseSymm {
				srcs = []int{r.MSrc, r.MRSrc}
			}
			for _, s := range srcs {
				if written[s] {
					t.Fatalf("n=%d record %d (%+v) reads already-written index %d", n, idx, r, s)
				}
			}
			written[r.M] = true
			written[r.MR] = true
		}
	}
}

func TestPlanFillsOnlyUpperHalf(t *testing.T) {
	n := 16
	p := planPermutation(n, true)
	for _, i := range p.fills {
		if i <= n/2 || i >= n {
			t.Errorf("fill index %d out of range (n/2, n)", i)
		}
	}
}
