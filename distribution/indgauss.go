// package distribution provides product distributions over independent
// one-dimensional components. They serve as priors for the posterior
// samplers and as noise generators for synthetic data.
package distribution

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

type ScoreInputer interface {
	ScoreInput(deriv, x []float64) []float64
}

// IndependentGaussian is a Gaussian distribution where the dimensions
// are independent from one another.
type IndependentGaussian struct {
	Norms []distuv.Normal
}

func (ind IndependentGaussian) Rand(x []float64) []float64 {
	if x == nil {
		x = make([]float64, len(ind.Norms))
	}
	if len(x) != len(ind.Norms) {
		panic("distribution: length mismatch")
	}
	for i := range x {
		x[i] = ind.Norms[i].Rand()
	}
	return x
}

func (ind IndependentGaussian) Dim() int {
	return len(ind.Norms)
}

func (ind IndependentGaussian) LogProb(x []float64) float64 {
	if len(x) != len(ind.Norms) {
		panic("distribution: length mismatch")
	}
	var logprob float64
	for i, v := range x {
		logprob += ind.Norms[i].LogProb(v)
	}
	return logprob
}

func (ind IndependentGaussian) Prob(x []float64) float64 {
	return math.Exp(ind.LogProb(x))
}

// Sample fills each row of data with an independent draw.
func (ind IndependentGaussian) Sample(data *mat.Dense) {
	nSamples, _ := data.Dims()
	for i := 0; i < nSamples; i++ {
		ind.Rand(data.RawRowView(i))
	}
}

func (ind IndependentGaussian) Quantile(x []float64, p []float64) []float64 {
	if x == nil {
		x = make([]float64, len(p))
	}
	if len(x) != len(p) {
		panic("distribution: length mismatch")
	}
	for i, v := range p {
		x[i] = ind.Norms[i].Quantile(v)
	}
	return x
}

// ScoreInput stores the derivative of the log-density with respect to
// the input into deriv.
func (ind IndependentGaussian) ScoreInput(deriv, x []float64) []float64 {
	if deriv == nil {
		deriv = make([]float64, ind.Dim())
	}
	if len(deriv) != ind.Dim() {
		panic("distribution: length mismatch")
	}
	if len(x) != ind.Dim() {
		panic("distribution: length mismatch")
	}
	for i, xi := range x {
		deriv[i] = ind.Norms[i].ScoreInput(xi)
	}
	return deriv
}

// Uniform is a uniform distribution over an axis-aligned box, with the
// dimensions independent from one another.
type Uniform struct {
	Unifs []distuv.Uniform
}

func (u Uniform) Dim() int {
	return len(u.Unifs)
}

func (u Uniform) Rand(x []float64) []float64 {
	if x == nil {
		x = make([]float64, len(u.Unifs))
	}
	if len(x) != len(u.Unifs) {
		panic("distribution: length mismatch")
	}
	for i := range x {
		x[i] = u.Unifs[i].Rand()
	}
	return x
}

// Sample fills each row of data with an independent draw.
func (u Uniform) Sample(data *mat.Dense) {
	nSamples, _ := data.Dims()
	for i := 0; i < nSamples; i++ {
		u.Rand(data.RawRowView(i))
	}
}

func (u Uniform) LogProb(x []float64) float64 {
	if len(x) != len(u.Unifs) {
		panic("distribution: length mismatch")
	}
	var logprob float64
	for i, v := range x {
		logprob += u.Unifs[i].LogProb(v)
	}
	return logprob
}

func (u Uniform) Prob(x []float64) float64 {
	return math.Exp(u.LogProb(x))
}

func (u Uniform) Quantile(x []float64, p []float64) []float64 {
	if x == nil {
		x = make([]float64, len(p))
	}
	if len(x) != len(p) {
		panic("distribution: length mismatch")
	}
	for i, v := range p {
		x[i] = u.Unifs[i].Quantile(v)
	}
	return x
}
