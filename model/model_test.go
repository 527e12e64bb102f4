package model

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"
)

func TestGradientsMatchFiniteDifferences(t *testing.T) {
	for _, test := range []struct {
		name string
		m    interface {
			NumParams() int
			OutDim() int
			Predict(dst, x, theta []float64) []float64
			Gradient(dst, x, theta []float64, out int) []float64
		}
		theta []float64
	}{
		{name: "Line", m: Line{}, theta: []float64{1.255, 4.507}},
		{name: "Sinusoid", m: Sinusoid{Amplitude: 1.3}, theta: []float64{3.2}},
		{name: "Oscillator", m: Oscillator{}, theta: []float64{1.1, 2.3, 0.4}},
	} {
		t.Run(test.name, func(t *testing.T) {
			x := []float64{0.7}
			analytic := make([]float64, test.m.NumParams())
			numeric := make([]float64, test.m.NumParams())
			pred := make([]float64, test.m.OutDim())
			for out := 0; out < test.m.OutDim(); out++ {
				test.m.Gradient(analytic, x, test.theta, out)
				f := func(theta []float64) float64 {
					test.m.Predict(pred, x, theta)
					return pred[out]
				}
				fd.Gradient(numeric, f, test.theta, nil)
				for i := range analytic {
					require.InDeltaf(t, numeric[i], analytic[i], 1e-6,
						"output %d parameter %d", out, i)
				}
			}
		})
	}
}

func TestSinusoidDefaultAmplitude(t *testing.T) {
	var s Sinusoid
	pred := s.Predict(nil, []float64{0.5}, []float64{2})
	want := Sinusoid{Amplitude: 1}.Predict(nil, []float64{0.5}, []float64{2})
	require.Equal(t, want[0], pred[0])
}

func TestLineTermsMatchPredict(t *testing.T) {
	// The lsq.Termer view of Line must use the same parameter ordering
	// as Predict.
	theta := []float64{1.5, -0.25}
	x := []float64{0.9}

	terms := make([]float64, 2)
	Line{}.Terms(terms, x)
	var dot float64
	for i := range terms {
		dot += terms[i] * theta[i]
	}
	pred := Line{}.Predict(nil, x, theta)
	require.InDelta(t, pred[0], dot, 1e-14)
}

func TestOscillatorBadOutputPanics(t *testing.T) {
	require.Panics(t, func() {
		Oscillator{}.Gradient(nil, []float64{1}, []float64{1, 1, 1}, 2)
	})
}
