package generator

import "fmt"

// term is a single summand of a tr/ti expression: a sign and the text to
// print after that sign (a bare variable reference, or a literal*var
// product). present is false when the term folds away entirely (w's
// class is ZERO, or the caller's extra zero-knowledge gate fired).
type term struct {
	sign    byte // '+' or '-'
	text    string
	present bool
}

// renderTerm builds the term for coefficient w times variable varName
// (w is wr or wi, class is its classification). When negate is true the
// term represents -w*v instead of w*v (used for the tr "-wi*xi[jj]"
// summand): the effective class is then the class of -w, obtained by
// flipping, since the thresholds are symmetric about zero. numberFormat
// is passed straight through to formatLiteral (empty for the default).
func renderTerm(varName string, w float64, class twiddleClass, negate bool, numberFormat string) term {
	eff := class
	if negate {
		eff = class.flip()
	}
	switch eff {
	case classZero:
		return term{present: false}
	case classPlusOne:
		return term{sign: '+', text: varName, present: true}
	case classMinusOne:
		return term{sign: '-', text: varName, present: true}
	case classPos:
		return term{sign: '+', text: fmt.Sprintf("%s*%s", formatLiteral(w, numberFormat), varName), present: true}
	default: // classNeg
		return term{sign: '-', text: fmt.Sprintf("%s*%s", formatLiteral(w, numberFormat), varName), present: true}
	}
}

// combine renders "t1 (+|-) t2" per the spec's term-folding rules: either
// term may be absent, in which case the other's sign becomes a unary
// sign on the sole remaining term. zero is true when both are absent (no
// tr/ti statement should be emitted at all).
func combine(t1, t2 term) (text string, zero bool) {
	switch {
	case !t1.present && !t2.present:
		return "", true
	case t1.present && t2.present:
		return leading(t1) + " " + string(t2.sign) + " " + t2.text, false
	case t1.present:
		return leading(t1), false
	default:
		return leading(t2), false
	}
}

// leading renders t as the first (or only) summand of an expression: its
// sign is attached directly with no separating space, and a leading '+'
// is simply omitted.
func leading(t term) string {
	if t.sign == '-' {
		return "-" + t.text
	}
	return t.text
}
