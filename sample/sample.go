// package sample implements the posterior samplers used to cross-check
// curvature-based uncertainty estimates: a Metropolis-adjusted Langevin
// sampler with a warm-up adaptation phase for unimodal posteriors, and a
// brute-force rejection sampler for multi-modal likelihoods where
// gradient-based exploration is unreliable.
package sample

import "gonum.org/v1/gonum/stat/distmv"

// A Dimer reports the dimension of its space.
type Dimer interface {
	Dim() int
}

// A RandDimer can generate random samples and report their dimension.
type RandDimer interface {
	distmv.Rander
	Dimer
}

// Posterior combines a data log-likelihood with an optional log-prior
// into an unnormalized log-posterior suitable as a sampling target.
type Posterior struct {
	// LogLikelihood evaluates the data log-likelihood at theta.
	LogLikelihood func(theta []float64) float64
	// Prior is the log-prior. If nil, an improper flat prior is used.
	Prior distmv.LogProber
}

func (p Posterior) LogProb(theta []float64) float64 {
	lp := p.LogLikelihood(theta)
	if p.Prior != nil {
		lp += p.Prior.LogProb(theta)
	}
	return lp
}
