package generator

// emitPermutation writes the Hermitian fill-ins (if any) followed by the
// swap statements for p, then a single blank line separating the
// permutation phase from the butterflies. See spec section 4.4.
func (g *generator) emitPermutation(p plan) {
	for _, i := range p.fills {
		g.line("xr[%d] = xr[%d];", i, g.cfg.N-i)
		g.line("xi[%d] = -xi[%d];", i, g.cfg.N-i)
	}

	for _, r := range p.records {
		if !r.UseSymm {
			g.emitSwap("xr", r.M, r.MR, "tr")
			if !g.cfg.RealIn {
				g.emitSwap("xi", r.M, r.MR, "ti")
			}
			continue
		}
		g.line("xr[%d] = xr[%d];", r.MR, r.MSrc)
		g.line("xr[%d] = xr[%d];", r.M, r.MRSrc)
		if !g.cfg.RealIn {
			g.line("xi[%d] = %sxi[%d];", r.MR, sign(r.M > g.cfg.N/2), r.MSrc)
			g.line("xi[%d] = %sxi[%d];", r.M, sign(r.MR > g.cfg.N/2), r.MRSrc)
		}
	}

	g.blank()
}

// emitSwap writes the classic three-statement in-place swap of
// array[a] and array[b] through temp.
func (g *generator) emitSwap(array string, a, b int, temp string) {
	g.line("%s = %s[%d];", temp, array, a)
	g.line("%s[%d] = %s[%d];", array, a, array, b)
	g.line("%s[%d] = %s;", array, b, temp)
}

func sign(negate bool) string {
	if negate {
		return "-"
	}
	return ""
}
