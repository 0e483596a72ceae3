package generator

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// generator holds the mutable emission state for a single run: the
// output sink, the immutable config, the derived classification
// thresholds and the zero-imag tracker. The classifier itself stays
// stateless; only the tracker mutates as butterflies are emitted.
type generator struct {
	w       io.Writer
	cfg     Config
	th      thresholds
	tracker *zeroImagTracker
	err     error
}

// Generate writes the unrolled permutation and butterfly network for cfg
// to w. The output is a sequence of newline-terminated statements drawn
// from the closed grammar in spec section 6, with one blank line between
// the permutation phase and the butterflies; nothing else is written
// unless cfg.Header/cfg.Footer are non-empty.
//
// Generate performs no transform on user data - it only emits source
// text. Errors are I/O errors bubbled up from w; a malformed cfg should
// be caught earlier by NewConfig.
func Generate(w io.Writer, cfg Config) error {
	g := &generator{w: w, cfg: cfg}

	if cfg.N > 1 {
		g.th = newThresholds(cfg.N)
	}
	g.tracker = newZeroImagTracker(cfg.N, cfg.RealIn)

	if cfg.Header != "" {
		g.raw(cfg.Header)
	}

	if cfg.N > 1 {
		p := planPermutation(cfg.N, cfg.SymmIn)
		g.emitPermutation(p)
		g.emitButterflies()
	}

	if cfg.Footer != "" {
		g.raw(cfg.Footer)
	}

	if g.err != nil {
		return errors.Wrap(g.err, "writing generated code")
	}
	return nil
}

// line writes one indented, formatted statement line. Subsequent calls
// are no-ops once a write error has been recorded, so callers never need
// to check errors between every line.
func (g *generator) line(format string, args ...interface{}) {
	if g.err != nil {
		return
	}
	_, g.err = fmt.Fprintf(g.w, "%s%s\n", g.cfg.Indent, fmt.Sprintf(format, args...))
}

// raw writes s verbatim, without indentation, adding a trailing newline
// only if s doesn't already end in one. Used for Header/Footer/license.
func (g *generator) raw(s string) {
	if g.err != nil {
		return
	}
	if len(s) > 0 && s[len(s)-1] != '\n' {
		s += "\n"
	}
	_, g.err = io.WriteString(g.w, s)
}

func (g *generator) blank() {
	if g.err != nil {
		return
	}
	_, g.err = io.WriteString(g.w, "\n")
}
