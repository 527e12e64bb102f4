package lsq

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

type lineTermer struct{}

func (lineTermer) NumTerms(dim int) int { return 2 }

func (lineTermer) Terms(terms, x []float64) {
	terms[0] = x[0]
	terms[1] = 1
}

func TestCoeffsExactRecovery(t *testing.T) {
	// Noiseless data from y = 2x - 3 must be recovered exactly.
	xvals := []float64{-1, 0, 0.5, 1, 2}
	xs := mat.NewDense(len(xvals), 1, xvals)
	ys := make([]float64, len(xvals))
	for i, x := range xvals {
		ys[i] = 2*x - 3
	}

	beta, err := Coeffs(xs, ys, nil, lineTermer{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(beta[0]-2) > 1e-12 || math.Abs(beta[1]+3) > 1e-12 {
		t.Errorf("coefficients not recovered: got %v, want [2 -3]", beta)
	}
}

func TestCovarianceHandComputed(t *testing.T) {
	// Two points at x = ±1 with σ = 2:
	// AᵀΣ⁻¹A = [[1/2, 0], [0, 1/2]], so the covariance is 2I.
	xs := mat.NewDense(2, 1, []float64{-1, 1})
	sigmas := []float64{2, 2}

	cov, err := Covariance(xs, sigmas, lineTermer{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := mat.NewSymDense(2, []float64{2, 0, 0, 2})
	if !mat.EqualApprox(cov, want, 1e-12) {
		t.Errorf("covariance mismatch:\ngot\n%v\nwant\n%v",
			mat.Formatted(cov), mat.Formatted(want))
	}
}

func TestCovarianceWeighting(t *testing.T) {
	// Halving the noise must quarter the parameter variances.
	xvals := []float64{0.1, 0.4, 0.9, 1.5, 2.2}
	xs := mat.NewDense(len(xvals), 1, xvals)

	loud := []float64{0.4, 0.4, 0.4, 0.4, 0.4}
	quiet := []float64{0.2, 0.2, 0.2, 0.2, 0.2}

	covLoud, err := Covariance(xs, loud, lineTermer{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	covQuiet, err := Covariance(xs, quiet, lineTermer{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 2; i++ {
		ratio := covLoud.At(i, i) / covQuiet.At(i, i)
		if math.Abs(ratio-4) > 1e-10 {
			t.Errorf("variance ratio for parameter %d: got %v, want 4", i, ratio)
		}
	}
}

func TestCovarianceRankDeficient(t *testing.T) {
	// All observations at the same x: the design matrix columns are
	// linearly dependent.
	xs := mat.NewDense(4, 1, []float64{1, 1, 1, 1})
	if _, err := Covariance(xs, nil, lineTermer{}); err == nil {
		t.Error("expected rank-deficiency error")
	}
}
