package fisher

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrNotPosDef is returned when the information matrix is not
	// positive definite, so no covariance interpretation exists.
	ErrNotPosDef = errors.New("fisher: information matrix is not positive definite")
	// ErrIllConditioned is returned when the information matrix is
	// invertible but too poorly conditioned for the inverse to be a
	// faithful covariance estimate.
	ErrIllConditioned = errors.New("fisher: information matrix is ill-conditioned")
)

// maxCond is the largest acceptable condition number for inverting an
// information matrix. Beyond this the inverse has no accurate digits in
// float64.
const maxCond = 1e14

// Covariance inverts the information matrix, giving the Cramér–Rao
// estimate of the parameter covariance. It returns ErrNotPosDef or
// ErrIllConditioned rather than a garbage inverse when the matrix is
// degenerate.
func Covariance(information mat.Symmetric) (*mat.SymDense, error) {
	var chol mat.Cholesky
	if ok := chol.Factorize(information); !ok {
		return nil, ErrNotPosDef
	}
	if chol.Cond() > maxCond {
		return nil, ErrIllConditioned
	}
	cov := mat.NewSymDense(information.SymmetricDim(), nil)
	if err := chol.InverseTo(cov); err != nil {
		return nil, ErrIllConditioned
	}
	return cov, nil
}

// Marginal returns the principal sub-matrix of the covariance for the
// parameters listed in inds. Marginalizing over nuisance parameters is a
// selection on the inverse information matrix, never on the information
// matrix itself.
func Marginal(cov mat.Symmetric, inds []int) *mat.SymDense {
	sub := mat.NewSymDense(len(inds), nil)
	for i, vi := range inds {
		for j := i; j < len(inds); j++ {
			sub.SetSym(i, j, cov.At(vi, inds[j]))
		}
	}
	return sub
}

// StdDevs stores the square roots of the covariance diagonal into dst
// and returns it. If dst is nil a new slice is allocated.
func StdDevs(dst []float64, cov mat.Symmetric) []float64 {
	n := cov.SymmetricDim()
	if dst == nil {
		dst = make([]float64, n)
	}
	if len(dst) != n {
		panic(errLen)
	}
	for i := range dst {
		dst[i] = math.Sqrt(cov.At(i, i))
	}
	return dst
}
