// Package diagnostics analyses the sample history of predictions after a run.
package diagnostics

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	xmath "github.com/drakos74/free-predict/internal/math"
	"github.com/drakos74/free-predict/internal/prediction"
)

// ErrNoSamples is returned when there are no finite samples to work with.
var ErrNoSamples = errors.New("no samples")

// Report summarises the samples of a single prediction.
type Report struct {
	Coords prediction.Coords
	Count  int
	Mean   float64
	// StDev is the sample standard deviation, PopStDev the population one.
	StDev    float64
	PopStDev float64
	Min      float64
	Max      float64
	// Range is the spread between the smallest and the largest sample.
	Range float64
	// ESS is the effective sample size, taking the autocorrelation of the chain into account.
	ESS float64
	// Drift is the slope of a line fitted through the samples, per sample.
	Drift           float64
	Autocorrelation []float64
}

// Analyze builds the report for the samples of the prediction.
// Statistics that cannot be computed for the number of samples are NaN.
func Analyze(p *prediction.Prediction, maxLag int) Report {
	samples := p.Samples()

	r := Report{
		Coords:          p.Coords(),
		Count:           len(samples),
		Mean:            math.NaN(),
		StDev:           math.NaN(),
		PopStDev:        math.NaN(),
		Min:             math.NaN(),
		Max:             math.NaN(),
		Range:           math.NaN(),
		ESS:             xmath.EffectiveSampleSize(samples),
		Drift:           math.NaN(),
		Autocorrelation: xmath.Autocorrelation(samples, maxLag),
	}
	if r.Count == 0 {
		return r
	}

	r.Mean = stat.Mean(samples, nil)
	r.Min = floats.Min(samples)
	r.Max = floats.Max(samples)
	r.Range = r.Max - r.Min
	r.PopStDev = 0
	if r.Count > 1 {
		_, r.StDev = stat.MeanStdDev(samples, nil)
		_, r.PopStDev = stat.PopMeanStdDev(samples, nil)
		if slope, err := xmath.Slope(samples); err == nil {
			r.Drift = slope
		}
	}
	return r
}
