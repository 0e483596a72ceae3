package interp

import "testing"

func TestRunSwap(t *testing.T) {
	s := NewState([]float64{1, 2}, []float64{0, 0})
	src := "tr = xr[0];\n" +
		"xr[0] = xr[1];\n" +
		"xr[1] = tr;\n"
	if err := s.Run(src); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if s.Xr[0] != 2 || s.Xr[1] != 1 {
		t.Fatalf("swap failed: got xr=%v", s.Xr)
	}
}

func TestRunButterfly(t *testing.T) {
	s := NewState([]float64{3, 5}, []float64{0, 0})
	src := "tr = xr[1];\n" +
		"xr[1] = xr[0] - tr;\n" +
		"xr[0] += tr;\n"
	if err := s.Run(src); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if s.Xr[0] != 8 || s.Xr[1] != -2 {
		t.Fatalf("butterfly failed: got xr=%v", s.Xr)
	}
}

func TestRunLiteralTerm(t *testing.T) {
	s := NewState([]float64{2}, []float64{4})
	src := "tr = 5.00000000000000e-01*xr[0] - 2.50000000000000e-01*xi[0];\n"
	if err := s.Run(src); err != nil {
		t.Fatalf("Run: %v", err)
	}
	want := 0.5*2 - 0.25*4
	if s.Tr != want {
		t.Fatalf("got tr=%v, want %v", s.Tr, want)
	}
}

func TestRunZeroLiteral(t *testing.T) {
	s := NewState([]float64{1}, []float64{9})
	if err := s.Run("xi[0] = 0.0;\n"); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if s.Xi[0] != 0 {
		t.Fatalf("got xi[0]=%v, want 0", s.Xi[0])
	}
}
