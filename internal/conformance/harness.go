package conformance

import (
	"regexp"
	"strings"

	"github.com/andewx/fftgen/generator"
	"github.com/andewx/fftgen/internal/interp"
)

// runGenerated generates code for cfg, executes it against xr/xi through
// interp, and returns the resulting state. It is the bridge that lets
// the conformance suite exercise the generated fragment without a C
// compiler: generate, then interpret, per spec.md's closed grammar.
func runGenerated(cfg generator.Config, xr, xi []float64) (*interp.State, error) {
	var sb strings.Builder
	if err := generator.Generate(&sb, cfg); err != nil {
		return nil, err
	}
	s := interp.NewState(xr, xi)
	if err := s.Run(sb.String()); err != nil {
		return nil, err
	}
	return s, nil
}

// generateText runs generator.Generate for cfg and returns the raw text,
// for tests that inspect the emitted source rather than its effect.
func generateText(cfg generator.Config) (string, error) {
	var sb strings.Builder
	if err := generator.Generate(&sb, cfg); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// reUnitLiteral matches a folded-in "1.0...e+00" coefficient, which
// should never appear: a PLUS_ONE/MINUS_ONE-classified twiddle folds
// into a bare sign, never a literal multiplication.
var reUnitLiteral = regexp.MustCompile(`1\.0+e[+-]00\*`)

func containsLiteralOne(src string) bool {
	return reUnitLiteral.MatchString(src)
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
