package distribution

import (
	"math"
	"math/rand/v2"
	"testing"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

func testGaussian(src rand.Source) IndependentGaussian {
	return IndependentGaussian{Norms: []distuv.Normal{
		{Mu: 0, Sigma: 1, Src: src},
		{Mu: 2, Sigma: 0.5, Src: src},
	}}
}

func TestIndependentGaussianLogProb(t *testing.T) {
	ind := testGaussian(nil)
	x := []float64{0.3, 1.7}
	want := ind.Norms[0].LogProb(x[0]) + ind.Norms[1].LogProb(x[1])
	if got := ind.LogProb(x); math.Abs(got-want) > 1e-14 {
		t.Errorf("logprob mismatch: got %v, want %v", got, want)
	}
	if got := ind.Prob(x); math.Abs(got-math.Exp(want)) > 1e-14 {
		t.Errorf("prob mismatch: got %v, want %v", got, math.Exp(want))
	}
}

func TestIndependentGaussianScoreInput(t *testing.T) {
	ind := testGaussian(nil)
	x := []float64{-0.8, 2.4}

	score := ind.ScoreInput(nil, x)
	numeric := make([]float64, ind.Dim())
	fd.Gradient(numeric, ind.LogProb, x, nil)
	for i := range score {
		if math.Abs(score[i]-numeric[i]) > 1e-6 {
			t.Errorf("score mismatch in dimension %d: got %v, want %v", i, score[i], numeric[i])
		}
	}
}

func TestIndependentGaussianQuantile(t *testing.T) {
	ind := testGaussian(nil)
	q := ind.Quantile(nil, []float64{0.5, 0.5})
	if math.Abs(q[0]-0) > 1e-14 || math.Abs(q[1]-2) > 1e-14 {
		t.Errorf("median quantile should be the mean: got %v", q)
	}
}

func TestUniformSample(t *testing.T) {
	src := rand.NewPCG(2, 2)
	u := Uniform{Unifs: []distuv.Uniform{
		{Min: -1, Max: 1, Src: src},
		{Min: 3, Max: 5, Src: src},
	}}

	batch := mat.NewDense(100, 2, nil)
	u.Sample(batch)
	for i := 0; i < 100; i++ {
		row := batch.RawRowView(i)
		if row[0] < -1 || row[0] > 1 || row[1] < 3 || row[1] > 5 {
			t.Fatalf("sample %d out of bounds: %v", i, row)
		}
		if lp := u.LogProb(row); math.Abs(lp-math.Log(1.0/4)) > 1e-14 {
			t.Fatalf("in-bounds logprob should be log(1/volume): got %v", lp)
		}
	}
}
