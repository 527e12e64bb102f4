// package fisher computes Fisher information matrices for statistical
// models and the parameter uncertainties they imply through the
// Cramér–Rao bound.
//
// The Fisher information is the negative Hessian of the log-likelihood
// with respect to the model parameters, evaluated at a particular
// parameter vector. Its inverse is a local estimate of the parameter
// covariance. The estimate is only trustworthy when the information
// matrix is well-conditioned and the likelihood is unimodal near the
// evaluation point; the samplers in fisher/sample provide independent
// cross-checks for the cases where it is not.
package fisher

import (
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"
)

var (
	errLen    = "fisher: length mismatch"
	errParams = "fisher: wrong number of parameters"
)

// A Model maps an input location and a parameter vector to a predicted
// observation. Models must be pure and deterministic: the prediction
// depends only on x and theta.
type Model interface {
	// NumParams returns the length of the parameter vector.
	NumParams() int
	// OutDim returns the length of a predicted observation.
	OutDim() int
	// Predict stores the prediction at x under theta into dst and returns
	// it. If dst is nil a new slice is allocated.
	Predict(dst, x, theta []float64) []float64
}

// A GradientModel is a Model whose prediction gradient with respect to
// the parameters is available analytically.
type GradientModel interface {
	Model
	// Gradient stores into dst the derivative of output out with respect
	// to each parameter, evaluated at x under theta, and returns it. If
	// dst is nil a new slice is allocated.
	Gradient(dst, x, theta []float64, out int) []float64
}

// A LogLikelihooder evaluates the log-likelihood of a parameter vector
// given the data it holds.
type LogLikelihooder interface {
	LogLikelihood(theta []float64) float64
	// NumParams returns the expected length of theta.
	NumParams() int
}

// Information computes the observed Fisher information matrix of l at
// theta: the negative Hessian of the log-likelihood, found by finite
// differences. The result is symmetric by construction.
func Information(l LogLikelihooder, theta []float64) *mat.SymDense {
	if len(theta) != l.NumParams() {
		panic(errParams)
	}
	n := len(theta)
	hess := mat.NewSymDense(n, nil)
	fd.Hessian(hess, l.LogLikelihood, theta, nil)
	var info mat.SymDense
	info.ScaleSym(-1, hess)
	return &info
}

// ExpectedInformation computes the Fisher information of a model with
// independent Gaussian noise from the analytic prediction gradients,
//
//	F = Σ_i Σ_out ∇f(x_i) ∇f(x_i)ᵀ / σ_i²
//
// For models that are linear in the parameters this equals the observed
// information exactly. For nonlinear models the two differ by a
// residual-weighted curvature term that vanishes for noiseless data.
func ExpectedInformation(m GradientModel, data *Dataset, theta []float64) *mat.SymDense {
	if len(theta) != m.NumParams() {
		panic(errParams)
	}
	p := len(theta)
	out := m.OutDim()
	n := data.Len()
	if len(data.Sigmas) != n {
		panic(errLen)
	}

	info := mat.NewSymDense(p, nil)
	grad := make([]float64, p)
	for i := 0; i < n; i++ {
		x := data.Xs.RawRowView(i)
		w := 1 / (data.Sigmas[i] * data.Sigmas[i])
		for o := 0; o < out; o++ {
			m.Gradient(grad, x, theta, o)
			for j := 0; j < p; j++ {
				for k := j; k < p; k++ {
					info.SetSym(j, k, info.At(j, k)+w*grad[j]*grad[k])
				}
			}
		}
	}
	return info
}
