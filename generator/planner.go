package generator

// swapRecord is one entry of the reordered bit-reversal permutation list.
//
// If UseSymm is false, MSrc == M and MRSrc == MR. If true, at least one of
// M, MR exceeds n/2, and the record has been positioned so that every
// earlier record reads neither MSrc nor MRSrc after those source values
// have been overwritten.
type swapRecord struct {
	M, MR       int
	MSrc, MRSrc int
	UseSymm     bool
}

// plan is the output of the permutation planner: the ordered swap list
// plus the set of upper-half indices that the bit-reversal never touches
// and must instead be filled in from their Hermitian mirror before any
// swap statement runs.
type plan struct {
	records []swapRecord
	fills   []int // indices in (n/2, n) needing xr[i]=xr[n-i]; xi[i]=-xi[n-i]
}

// planPermutation builds the bit-reversal swap list for n points,
// optionally reordered under symmIn so that Hermitian-symmetry reads from
// the upper half are never clobbered before they're read. See spec
// section 4.3.
func planPermutation(n int, symmIn bool) plan {
	var p plan
	touched := make(map[int]bool, n)

	mr := 0
	for m := 1; m < n; m++ {
		k := n
		for {
			k >>= 1
			if mr+k <= n-1 {
				break
			}
		}
		mr = (mr % k) + k

		if mr <= m {
			continue
		}

		half := n / 2
		if !symmIn || (m <= half && mr <= half) {
			p.records = append(p.records, swapRecord{M: m, MR: mr, MSrc: m, MRSrc: mr})
			touched[m], touched[mr] = true, true
			continue
		}

		mSrc := m
		if m > half {
			mSrc = n - m
		}
		mrSrc := mr
		if mr > half {
			mrSrc = n - mr
		}
		rec := swapRecord{M: m, MR: mr, MSrc: mSrc, MRSrc: mrSrc, UseSymm: true}

		pos := -1
		if m > half {
			if q := earliestConflict(p.records, mSrc); q >= 0 && (pos == -1 || q < pos) {
				pos = q
			}
		}
		if mr > half {
			if q := earliestConflict(p.records, mrSrc); q >= 0 && (pos == -1 || q < pos) {
				pos = q
			}
		}

		if pos >= 0 {
			p.records = append(p.records, swapRecord{})
			copy(p.records[pos+1:], p.records[pos:])
			p.records[pos] = rec
		} else {
			p.records = append(p.records, rec)
		}
		touched[m], touched[mr] = true, true
	}

	if symmIn {
		half := n / 2
		for i := half + 1; i < n; i++ {
			if !touched[i] {
				p.fills = append(p.fills, i)
			}
		}
	}

	return p
}

// earliestConflict scans the current record list backward, stopping
// before index 0, and returns the smallest index p >= 1 whose M or MR
// equals key, or -1 if none. Position 0 is deliberately unreachable as an
// insertion target: a conflict against the very first record is not
// found here and the caller falls back to appending at the end. This
// mirrors the one quirk the original source's behavior leaves open (see
// DESIGN.md, "Open question resolved").
func earliestConflict(records []swapRecord, key int) int {
	best := -1
	for p := len(records) - 1; p >= 1; p-- {
		if records[p].M == key || records[p].MR == key {
			best = p
		}
	}
	return best
}
