package sample

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"
	"gonum.org/v1/gonum/stat/distuv"
	"gonum.org/v1/gonum/stat/samplemv"
)

// Langevin is a gradient-informed Metropolis proposal: a Gaussian step
// of width Step centered on the Langevin drift y + Step²/2 ∇log π(y).
// The gradient of the target is found by finite differences. Langevin
// satisfies the proposal contract of stat/samplemv and can be used with
// samplemv.MetropolisHastinger directly.
type Langevin struct {
	Target distmv.LogProber
	Step   float64
	Src    rand.Source

	grad []float64
}

var _ samplemv.MHProposal = (*Langevin)(nil)

func (l *Langevin) drift(dst, y []float64) {
	if l.grad == nil {
		l.grad = make([]float64, len(y))
	}
	fd.Gradient(l.grad, l.Target.LogProb, y, nil)
	h := 0.5 * l.Step * l.Step
	for i, g := range l.grad {
		dst[i] = y[i] + h*g
	}
}

// ConditionalRand generates a proposal conditional on the location y and
// stores it into x.
func (l *Langevin) ConditionalRand(x, y []float64) []float64 {
	if x == nil {
		x = make([]float64, len(y))
	}
	if len(x) != len(y) {
		panic("sample: length mismatch")
	}
	l.drift(x, y)
	norm := distuv.Normal{Mu: 0, Sigma: l.Step, Src: l.Src}
	for i := range x {
		x[i] += norm.Rand()
	}
	return x
}

// ConditionalLogProb returns the probability of proposing x conditional
// on the location y. The drift makes this asymmetric, so both directions
// enter the Metropolis ratio.
func (l *Langevin) ConditionalLogProb(x, y []float64) float64 {
	if len(x) != len(y) {
		panic("sample: length mismatch")
	}
	mu := make([]float64, len(y))
	l.drift(mu, y)
	norm := distuv.Normal{Mu: 0, Sigma: l.Step}
	var lp float64
	for i := range x {
		norm.Mu = mu[i]
		lp += norm.LogProb(x[i])
	}
	return lp
}

// Phase describes where an adaptive sampler is in its run. Transitions
// only move forward: Uninitialized → WarmingUp → Sampling → Done.
type Phase int

const (
	Uninitialized Phase = iota
	WarmingUp
	Sampling
	Done
)

// malaTargetAccept is the asymptotically optimal Langevin acceptance
// rate.
const malaTargetAccept = 0.574

// MALA draws samples from an unnormalized log-posterior using a Langevin
// proposal. During warm-up the proposal step size is adapted toward the
// target acceptance rate; the adapted step is then frozen for sampling.
// Stopping before a batch is full simply yields fewer samples; the ones
// already collected remain valid draws.
type MALA struct {
	Target  distmv.LogProber
	Initial []float64
	// Step is the initial proposal step size. If zero, it defaults to
	// 0.1.
	Step float64
	// TargetAccept is the acceptance rate adapted toward during warm-up.
	// If zero, it defaults to 0.574.
	TargetAccept float64
	Src          rand.Source

	phase          Phase
	prop           *Langevin
	current        []float64
	currentLogProb float64
	proposed       []float64
	unif           distuv.Uniform
	accepted       int
	steps          int
}

func (m *MALA) init() {
	if m.phase != Uninitialized {
		return
	}
	if len(m.Initial) == 0 {
		panic("sample: no initial location")
	}
	step := m.Step
	if step == 0 {
		step = 0.1
	}
	if m.TargetAccept == 0 {
		m.TargetAccept = malaTargetAccept
	}
	m.prop = &Langevin{Target: m.Target, Step: step, Src: m.Src}
	m.current = make([]float64, len(m.Initial))
	copy(m.current, m.Initial)
	m.currentLogProb = m.Target.LogProb(m.current)
	m.proposed = make([]float64, len(m.Initial))
	m.unif = distuv.Uniform{Min: 0, Max: 1, Src: m.Src}
	m.phase = WarmingUp
}

// step advances the chain once and returns the acceptance probability of
// the proposal.
func (m *MALA) step() float64 {
	m.prop.ConditionalRand(m.proposed, m.current)
	propLogProb := m.Target.LogProb(m.proposed)
	fwd := m.prop.ConditionalLogProb(m.proposed, m.current)
	back := m.prop.ConditionalLogProb(m.current, m.proposed)

	alpha := math.Exp(math.Min(0, propLogProb+back-m.currentLogProb-fwd))
	if m.unif.Rand() < alpha {
		m.current, m.proposed = m.proposed, m.current
		m.currentLogProb = propLogProb
		m.accepted++
	}
	m.steps++
	return alpha
}

// WarmUp runs n adaptation steps, tuning the proposal step size toward
// the target acceptance rate. It may be called repeatedly, but not once
// sampling has begun.
func (m *MALA) WarmUp(n int) {
	m.init()
	if m.phase != WarmingUp {
		panic("sample: warm-up after sampling started")
	}
	// Robbins-Monro adaptation on the log step size.
	const rate = 0.05
	for i := 0; i < n; i++ {
		alpha := m.step()
		m.prop.Step *= math.Exp(rate * (alpha - m.TargetAccept))
	}
}

// Sample fills each row of batch with a consecutive state of the chain.
// The first call moves the sampler into the sampling phase and freezes
// the step size.
func (m *MALA) Sample(batch *mat.Dense) {
	m.init()
	if m.phase == Done {
		panic("sample: sampling after Finish")
	}
	m.phase = Sampling
	r, c := batch.Dims()
	if c != len(m.current) {
		panic("sample: length mismatch")
	}
	for i := 0; i < r; i++ {
		m.step()
		batch.SetRow(i, m.current)
	}
}

// Finish marks the run complete. Samples collected so far remain valid;
// further calls to WarmUp or Sample panic.
func (m *MALA) Finish() {
	m.init()
	m.phase = Done
}

// Phase returns the sampler's current phase.
func (m *MALA) Phase() Phase { return m.phase }

// StepSize returns the current proposal step size.
func (m *MALA) StepSize() float64 {
	m.init()
	return m.prop.Step
}

// AcceptanceRate returns the fraction of proposals accepted over the
// whole run so far.
func (m *MALA) AcceptanceRate() float64 {
	if m.steps == 0 {
		return 0
	}
	return float64(m.accepted) / float64(m.steps)
}
