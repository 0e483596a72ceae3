package generator

// zeroImagTracker is the length-N bit vector `nzi` from the spec: a
// single-writer container recording, for each array index, whether the
// emitter has already proven `xi[i]` is no longer known to be zero.
//
// nzi[i] == true means "not provably zero"; is_zero is the negation.
// There is no clear operation - once an index is marked non-zero it stays
// that way for the remainder of the run.
type zeroImagTracker struct {
	nzi []bool
}

// newZeroImagTracker seeds every slot to zero (known-zero) when realIn is
// set, otherwise to non-zero (no assumption about the caller's input).
func newZeroImagTracker(n int, realIn bool) *zeroImagTracker {
	t := &zeroImagTracker{nzi: make([]bool, n)}
	if !realIn {
		for i := range t.nzi {
			t.nzi[i] = true
		}
	}
	return t
}

func (t *zeroImagTracker) isZero(i int) bool {
	return !t.nzi[i]
}

func (t *zeroImagTracker) setNonzero(i int) {
	t.nzi[i] = true
}
