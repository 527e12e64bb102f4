// package model provides the concrete models whose parameter
// uncertainties are studied: a straight line, a fixed-amplitude sinusoid
// with unknown frequency, and a two-output oscillator. All implement
// fisher.GradientModel; Line additionally implements lsq.Termer so that
// its Fisher covariance can be checked against the normal equations.
package model

import "math"

// Line is the straight-line model f(x) = a*x + b with theta = (a, b).
type Line struct{}

func (Line) NumParams() int { return 2 }

func (Line) OutDim() int { return 1 }

func (Line) Predict(dst, x, theta []float64) []float64 {
	if dst == nil {
		dst = make([]float64, 1)
	}
	dst[0] = theta[0]*x[0] + theta[1]
	return dst
}

func (Line) Gradient(dst, x, theta []float64, out int) []float64 {
	if dst == nil {
		dst = make([]float64, 2)
	}
	dst[0] = x[0]
	dst[1] = 1
	return dst
}

// NumTerms and Terms make Line an lsq.Termer with the same parameter
// ordering as Predict.
func (Line) NumTerms(dim int) int { return 2 }

func (Line) Terms(terms, x []float64) {
	terms[0] = x[0]
	terms[1] = 1
}

// Sinusoid is the fixed-amplitude model f(x) = A*sin(ω*x) with a single
// parameter theta = (ω). With few observations its likelihood in ω is
// multi-modal: frequencies that alias through the sample points fit the
// data equally well, which is the standard failure case for local
// curvature estimates.
type Sinusoid struct {
	// Amplitude is the fixed amplitude A. If zero, it defaults to 1.
	Amplitude float64
}

func (s Sinusoid) amp() float64 {
	if s.Amplitude == 0 {
		return 1
	}
	return s.Amplitude
}

func (Sinusoid) NumParams() int { return 1 }

func (Sinusoid) OutDim() int { return 1 }

func (s Sinusoid) Predict(dst, x, theta []float64) []float64 {
	if dst == nil {
		dst = make([]float64, 1)
	}
	dst[0] = s.amp() * math.Sin(theta[0]*x[0])
	return dst
}

func (s Sinusoid) Gradient(dst, x, theta []float64, out int) []float64 {
	if dst == nil {
		dst = make([]float64, 1)
	}
	dst[0] = s.amp() * x[0] * math.Cos(theta[0]*x[0])
	return dst
}

// Oscillator is a two-output nonlinear model
//
//	f(x) = (A*sin(ω*x + φ), A*cos(ω*x + φ))
//
// with theta = (A, ω, φ).
type Oscillator struct{}

func (Oscillator) NumParams() int { return 3 }

func (Oscillator) OutDim() int { return 2 }

func (Oscillator) Predict(dst, x, theta []float64) []float64 {
	if dst == nil {
		dst = make([]float64, 2)
	}
	arg := theta[1]*x[0] + theta[2]
	dst[0] = theta[0] * math.Sin(arg)
	dst[1] = theta[0] * math.Cos(arg)
	return dst
}

func (Oscillator) Gradient(dst, x, theta []float64, out int) []float64 {
	if dst == nil {
		dst = make([]float64, 3)
	}
	arg := theta[1]*x[0] + theta[2]
	sin, cos := math.Sin(arg), math.Cos(arg)
	switch out {
	case 0:
		dst[0] = sin
		dst[1] = theta[0] * x[0] * cos
		dst[2] = theta[0] * cos
	case 1:
		dst[0] = cos
		dst[1] = -theta[0] * x[0] * sin
		dst[2] = -theta[0] * sin
	default:
		panic("model: bad output index")
	}
	return dst
}
