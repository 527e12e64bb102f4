package fisher

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Dataset is a fixed set of observations. Xs holds the input locations
// and Ys the observed values, one observation per row. Sigmas holds the
// per-observation noise standard deviation, shared across the outputs of
// an observation. Datasets are generated once and read-only afterwards.
type Dataset struct {
	Xs     *mat.Dense
	Ys     *mat.Dense
	Sigmas []float64
}

// Len returns the number of observations.
func (d *Dataset) Len() int {
	r, _ := d.Xs.Dims()
	return r
}

// Generate synthesizes a Dataset by evaluating the model at the given
// input locations under the true parameter vector and adding independent
// Gaussian noise with the given standard deviations. A fixed src makes
// the data reproducible.
func Generate(m Model, xs *mat.Dense, theta, sigmas []float64, src rand.Source) *Dataset {
	if len(theta) != m.NumParams() {
		panic(errParams)
	}
	n, _ := xs.Dims()
	if len(sigmas) != n {
		panic(errLen)
	}
	out := m.OutDim()
	ys := mat.NewDense(n, out, nil)
	pred := make([]float64, out)
	norm := distuv.Normal{Mu: 0, Sigma: 1, Src: src}
	for i := 0; i < n; i++ {
		m.Predict(pred, xs.RawRowView(i), theta)
		norm.Sigma = sigmas[i]
		for j := 0; j < out; j++ {
			ys.Set(i, j, pred[j]+norm.Rand())
		}
	}
	return &Dataset{Xs: xs, Ys: ys, Sigmas: sigmas}
}
