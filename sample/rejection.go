package sample

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
	"gonum.org/v1/gonum/stat/samplemv"
)

// Rejection is a brute-force rejection sampler. Candidates are drawn
// from the proposal distribution, typically a broad prior covering the
// whole parameter region of interest, and each candidate is accepted
// with probability exp(logL - max logL), the likelihood relative to the
// largest seen in the batch. Accepted candidates are posterior draws
// under the proposal prior. Unlike a Markov chain, the draws are
// independent, so the method stays reliable on multi-modal likelihoods.
type Rejection struct {
	// Target is the unnormalized log-likelihood (or log-posterior).
	Target interface {
		LogProb(x []float64) float64
	}
	// Proposal generates the candidate parameter vectors.
	Proposal RandDimer
	Src      rand.Source
}

// Sample draws nCandidates candidates and returns the accepted ones, one
// per row. The candidate with the highest likelihood is always accepted,
// so the result is non-nil for nCandidates > 0.
func (r Rejection) Sample(nCandidates int) *mat.Dense {
	dim := r.Proposal.Dim()
	batch := mat.NewDense(nCandidates, dim, nil)
	iid := samplemv.IID{Dist: r.Proposal}
	iid.Sample(batch)

	logps := make([]float64, nCandidates)
	max := math.Inf(-1)
	for i := range logps {
		logps[i] = r.Target.LogProb(batch.RawRowView(i))
		if logps[i] > max {
			max = logps[i]
		}
	}

	unif := distuv.Uniform{Min: 0, Max: 1, Src: r.Src}
	kept := make([]float64, 0, nCandidates*dim/4)
	var rows int
	for i, lp := range logps {
		if unif.Rand() <= math.Exp(lp-max) {
			kept = append(kept, batch.RawRowView(i)...)
			rows++
		}
	}
	if rows == 0 {
		return nil
	}
	return mat.NewDense(rows, dim, kept)
}
