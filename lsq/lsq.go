// package lsq is a simple package for making weighted least-squares fits.
// This package assumes that the functional approximation is
//
//	f(x) = β_0 * t_0(x) + β_1 * t_1(x) + ... + β_n * t_n(x)
//
// where the t_i are functions of the input as set by the Termer, and the
// β_i are free parameters set by minimizing the noise-weighted
// least-squares error over the observations. For such models the
// closed-form parameter covariance (AᵀΣ⁻¹A)⁻¹ equals the inverse Fisher
// information exactly, making this the reference against which the
// curvature-based estimate is checked.
package lsq

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

var errLen = "lsq: length mismatch"

// ErrRankDeficient is returned when the design matrix does not have full
// column rank, so the normal equations are singular.
var ErrRankDeficient = errors.New("lsq: design matrix is rank deficient")

// Termer is a type that can set the linear-model terms from a particular
// input. See the package documentation for more information.
type Termer interface {
	// NumTerms returns the number of terms in the least-squares fit as a
	// function of the input dimension of x.
	NumTerms(dim int) int
	// Terms computes the terms given the input, and stores them in-place
	// into terms.
	Terms(terms, x []float64)
}

// DesignMatrix builds the matrix A with A_ij = t_j(x_i) over the rows of
// xs.
func DesignMatrix(xs mat.Matrix, t Termer) *mat.Dense {
	n, dim := xs.Dims()
	nTerms := t.NumTerms(dim)
	a := mat.NewDense(n, nTerms, nil)
	row := make([]float64, dim)
	for i := 0; i < n; i++ {
		mat.Row(row, i, xs)
		t.Terms(a.RawRowView(i), row)
	}
	return a
}

// Coeffs finds the optimal coefficients given the observations and the
// per-observation noise standard deviations. sigmas may be nil for an
// unweighted fit.
func Coeffs(xs mat.Matrix, ys, sigmas []float64, t Termer) ([]float64, error) {
	a := DesignMatrix(xs, t)
	n, nTerms := a.Dims()
	if len(ys) != n {
		panic(errLen)
	}

	b := mat.NewVecDense(n, nil)
	for i, y := range ys {
		b.SetVec(i, y)
	}

	if sigmas != nil {
		// Weighted least squares: scale both A and y by 1/σ.
		if len(sigmas) != n {
			panic(errLen)
		}
		for i := 0; i < n; i++ {
			row := a.RawRowView(i)
			for j := range row {
				row[j] /= sigmas[i]
			}
			b.SetVec(i, b.AtVec(i)/sigmas[i])
		}
	}

	beta := make([]float64, nTerms)
	betaVec := mat.NewVecDense(nTerms, beta)
	if err := betaVec.SolveVec(a, b); err != nil {
		return nil, err
	}
	return beta, nil
}

// Covariance returns the closed-form parameter covariance of the
// weighted least-squares fit, (AᵀΣ⁻¹A)⁻¹, where Σ is the diagonal noise
// covariance built from sigmas. sigmas may be nil, in which case unit
// noise is assumed.
func Covariance(xs mat.Matrix, sigmas []float64, t Termer) (*mat.SymDense, error) {
	a := DesignMatrix(xs, t)
	n, nTerms := a.Dims()
	if sigmas != nil {
		if len(sigmas) != n {
			panic(errLen)
		}
		for i := 0; i < n; i++ {
			row := a.RawRowView(i)
			for j := range row {
				row[j] /= sigmas[i]
			}
		}
	}

	var ata mat.SymDense
	ata.SymOuterK(1, a.T())

	var chol mat.Cholesky
	if ok := chol.Factorize(&ata); !ok {
		return nil, ErrRankDeficient
	}
	cov := mat.NewSymDense(nTerms, nil)
	if err := chol.InverseTo(cov); err != nil {
		return nil, ErrRankDeficient
	}
	return cov, nil
}
