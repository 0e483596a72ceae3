package generator

import (
	"math"
	"strconv"
)

// emitButterflies walks the log2(N) stages and, within each, the
// k-group and point loops, emitting the minimal set of statements for
// every butterfly pair. See spec section 4.5.
func (g *generator) emitButterflies() {
	n := g.cfg.N
	for k := 1; k <= n/2; k <<= 1 {
		istep := 2 * k
		lastStage := istep == n

		for m := 0; m < k; m++ {
			phi := -math.Pi * float64(m) / float64(k)
			wr, wi := math.Cos(phi), math.Sin(phi)
			if g.cfg.Inverse {
				wi = -wi
			}
			cr := classify(wr, g.th)
			ci := classify(wi, g.th)

			for i := m; i < n; i += istep {
				ii := i
				jj := ii + k
				g.emitButterfly(ii, jj, wr, wi, cr, ci, lastStage)
			}
		}
	}
}

func (g *generator) emitButterfly(ii, jj int, wr, wi float64, cr, ci twiddleClass, lastStage bool) {
	n := g.cfg.N
	xijKnownZero := g.tracker.isZero(jj)
	xiiKnownZero := g.tracker.isZero(ii)
	realOutLast := g.cfg.RealOut && lastStage

	xrJJ, xiJJ := varName("xr", jj), varName("xi", jj)
	xrII, xiII := varName("xr", ii), varName("xi", ii)

	trTerm1 := renderTerm(xrJJ, wr, cr, false, g.cfg.NumberFormat)
	trTerm2 := renderTerm(xiJJ, wi, ci, true, g.cfg.NumberFormat)
	if xijKnownZero {
		trTerm2 = term{}
	}
	trExpr, trZero := combine(trTerm1, trTerm2)

	tiTerm1 := renderTerm(xiJJ, wr, cr, false, g.cfg.NumberFormat)
	if xijKnownZero {
		tiTerm1 = term{}
	}
	tiTerm2 := renderTerm(xrJJ, wi, ci, false, g.cfg.NumberFormat)
	tiExpr, tiZero := combine(tiTerm1, tiTerm2)

	if !trZero {
		g.line("tr = %s;", trExpr)
	}
	if !tiZero && !realOutLast {
		g.line("ti = %s;", tiExpr)
	}

	suppressUpper := g.cfg.SymmOut && lastStage && jj != n/2
	if !suppressUpper {
		if !trZero {
			g.line("%s = %s - tr;", xrJJ, xrII)
		} else {
			g.line("%s = %s;", xrJJ, xrII)
		}

		if !realOutLast {
			switch {
			case !tiZero && !xiiKnownZero:
				g.line("%s = %s - ti;", xiJJ, xiII)
				g.tracker.setNonzero(jj)
			case !tiZero && xiiKnownZero:
				g.line("%s = -ti;", xiJJ)
				g.tracker.setNonzero(jj)
			case tiZero && !xiiKnownZero:
				g.line("%s = %s;", xiJJ, xiII)
				g.tracker.setNonzero(jj)
			case tiZero && xiiKnownZero && g.cfg.RealIn && lastStage:
				g.line("%s = 0.0;", xiJJ)
			}
		}
	}

	if !trZero {
		g.line("%s += tr;", xrII)
	}
	if !realOutLast {
		switch {
		case !tiZero && !xiiKnownZero:
			g.line("%s += ti;", xiII)
		case !tiZero && xiiKnownZero:
			g.line("%s = ti;", xiII)
			g.tracker.setNonzero(ii)
		case tiZero && g.cfg.RealIn && lastStage:
			g.line("%s = 0.0;", xiII)
		}
	}
}

func varName(array string, idx int) string {
	return array + "[" + strconv.Itoa(idx) + "]"
}
