package fisher

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Gaussian is the log-likelihood of a model under independent Gaussian
// noise. Each output of observation i is compared against the prediction
// with standard deviation Sigmas[i]. The per-observation normalization
// terms are kept; they are parameter-independent here, but keeping them
// stays correct if the likelihood is later extended with noise
// parameters.
type Gaussian struct {
	Model Model
	Data  *Dataset
}

func (g Gaussian) NumParams() int { return g.Model.NumParams() }

func (g Gaussian) LogLikelihood(theta []float64) float64 {
	if len(theta) != g.Model.NumParams() {
		panic(errParams)
	}
	n := g.Data.Len()
	if len(g.Data.Sigmas) != n {
		panic(errLen)
	}
	out := g.Model.OutDim()
	pred := make([]float64, out)
	norm := distuv.Normal{Mu: 0, Sigma: 1}
	var ll float64
	for i := 0; i < n; i++ {
		g.Model.Predict(pred, g.Data.Xs.RawRowView(i), theta)
		norm.Sigma = g.Data.Sigmas[i]
		for j := 0; j < out; j++ {
			norm.Mu = pred[j]
			ll += norm.LogProb(g.Data.Ys.At(i, j))
		}
	}
	return ll
}

// GaussianCov is a Gaussian log-likelihood with a full noise covariance
// matrix per observation, for correlated multi-output noise. The
// covariances are factorized once at construction.
type GaussianCov struct {
	model Model
	xs    *mat.Dense
	ys    *mat.Dense
	chols []*mat.Cholesky
	ldets []float64
}

// NewGaussianCov constructs the likelihood, factorizing each observation
// covariance. It returns ErrNotPosDef if any covariance is not positive
// definite.
func NewGaussianCov(m Model, xs, ys *mat.Dense, covs []*mat.SymDense) (*GaussianCov, error) {
	n, _ := xs.Dims()
	if len(covs) != n {
		panic(errLen)
	}
	chols := make([]*mat.Cholesky, n)
	ldets := make([]float64, n)
	for i, cov := range covs {
		if cov.SymmetricDim() != m.OutDim() {
			panic("fisher: covariance dimension mismatch")
		}
		var chol mat.Cholesky
		if ok := chol.Factorize(cov); !ok {
			return nil, ErrNotPosDef
		}
		chols[i] = &chol
		ldets[i] = chol.LogDet()
	}
	return &GaussianCov{model: m, xs: xs, ys: ys, chols: chols, ldets: ldets}, nil
}

func (g *GaussianCov) NumParams() int { return g.model.NumParams() }

func (g *GaussianCov) LogLikelihood(theta []float64) float64 {
	if len(theta) != g.model.NumParams() {
		panic(errParams)
	}
	n, _ := g.xs.Dims()
	out := g.model.OutDim()
	pred := make([]float64, out)
	resid := mat.NewVecDense(out, nil)
	solved := mat.NewVecDense(out, nil)
	var ll float64
	for i := 0; i < n; i++ {
		g.model.Predict(pred, g.xs.RawRowView(i), theta)
		for j := 0; j < out; j++ {
			resid.SetVec(j, g.ys.At(i, j)-pred[j])
		}
		if err := g.chols[i].SolveVecTo(solved, resid); err != nil {
			return math.Inf(-1)
		}
		ll += -0.5 * (mat.Dot(resid, solved) + g.ldets[i] + float64(out)*math.Log(2*math.Pi))
	}
	return ll
}

// Mixture is a two-component inlier/outlier Gaussian mixture likelihood
// for a scalar-output model. The parameter vector is the model parameters
// followed by three nuisance parameters: the outlier fraction pOut, the
// outlier mean muOut, and the log of the outlier variance lnVOut. The
// outlier component has variance exp(lnVOut) + σ_i². The two component
// densities are combined with log-sum-exp to avoid underflow.
type Mixture struct {
	Model Model
	Data  *Dataset
}

func (m Mixture) NumParams() int { return m.Model.NumParams() + 3 }

func (m Mixture) LogLikelihood(theta []float64) float64 {
	if len(theta) != m.NumParams() {
		panic(errParams)
	}
	if m.Model.OutDim() != 1 {
		panic("fisher: mixture likelihood needs a scalar-output model")
	}
	np := m.Model.NumParams()
	pOut := theta[np]
	muOut := theta[np+1]
	vOut := math.Exp(theta[np+2])
	if pOut <= 0 || pOut >= 1 {
		return math.Inf(-1)
	}
	lpIn := math.Log(1 - pOut)
	lpOut := math.Log(pOut)

	n := m.Data.Len()
	pred := make([]float64, 1)
	in := distuv.Normal{Mu: 0, Sigma: 1}
	outlier := distuv.Normal{Mu: muOut, Sigma: 1}
	lse := make([]float64, 2)
	var ll float64
	for i := 0; i < n; i++ {
		m.Model.Predict(pred, m.Data.Xs.RawRowView(i), theta[:np])
		s := m.Data.Sigmas[i]
		y := m.Data.Ys.At(i, 0)
		in.Mu = pred[0]
		in.Sigma = s
		outlier.Sigma = math.Sqrt(vOut + s*s)
		lse[0] = lpIn + in.LogProb(y)
		lse[1] = lpOut + outlier.LogProb(y)
		ll += floats.LogSumExp(lse)
	}
	return ll
}
