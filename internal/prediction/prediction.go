// Package prediction tracks the running estimate of predicted values of a sparse matrix or tensor,
// as the samples of a Monte-Carlo inference come in.
package prediction

import (
	"fmt"
	"math"

	"github.com/drakos74/free-predict/internal/buffer"
	xmath "github.com/drakos74/free-predict/internal/math"
)

// State holds the running statistics of a prediction.
type State struct {
	// Last is the prediction of the most recent sample.
	Last float64
	// Avg is the average prediction across all samples.
	Avg float64
	// Var accumulates the squared deviations of the samples.
	Var float64
	// NSamples counts the samples, starting from -1 for no samples.
	NSamples int
}

// EmptyState is the state of a prediction without samples.
func EmptyState() State {
	return State{
		Last:     math.NaN(),
		Avg:      math.NaN(),
		Var:      math.NaN(),
		NSamples: -1,
	}
}

// Prediction keeps the running statistics of the samples for a single point in the matrix/tensor.
// A prediction is not safe for concurrent use.
type Prediction struct {
	coords   Coords
	value    float64
	nsamples int
	last     float64
	avg      float64
	variance float64
	samples  *buffer.History
}

// New creates a prediction for the given coordinates and true value, without any samples.
// Use NaN as value if the true value is not known.
func New(coords Coords, value float64) *Prediction {
	return Restore(coords, value, EmptyState())
}

// Restore creates a prediction starting from the given statistics.
// The sample history starts empty.
func Restore(coords Coords, value float64, state State) *Prediction {
	return &Prediction{
		coords:   coords.clone(),
		value:    value,
		nsamples: state.NSamples,
		last:     state.Last,
		avg:      state.Avg,
		variance: state.Var,
		samples:  buffer.NewHistory(),
	}
}

// Add incorporates the next sample into the running statistics and the sample history.
func (p *Prediction) Add(pred float64) {
	p.average(pred)
	p.samples.Push(pred)
}

func (p *Prediction) average(pred float64) {
	p.nsamples++
	if p.nsamples == 0 {
		p.avg = pred
		p.variance = 0
		p.last = pred
		return
	}
	delta := pred - p.avg
	p.avg = p.avg + delta/float64(p.nsamples+1)
	// NOTE : the second factor uses the updated average
	p.variance = p.variance + delta*(pred-p.avg)
	p.last = pred
}

// Coords returns the position of the prediction.
func (p *Prediction) Coords() Coords {
	return p.coords.clone()
}

// Value returns the true value, NaN if unknown.
func (p *Prediction) Value() float64 {
	return p.value
}

// NSamples returns the raw sample counter, -1 before the first sample.
func (p *Prediction) NSamples() int {
	return p.nsamples
}

// Last returns the prediction using only the last sample.
func (p *Prediction) Last() float64 {
	return p.last
}

// Avg returns the average prediction across all samples.
func (p *Prediction) Avg() float64 {
	return p.avg
}

// Var returns the accumulated variance term of the samples.
func (p *Prediction) Var() float64 {
	return p.variance
}

// State returns a snapshot of the running statistics.
func (p *Prediction) State() State {
	return State{
		Last:     p.last,
		Avg:      p.avg,
		Var:      p.variance,
		NSamples: p.nsamples,
	}
}

// Samples returns every sample added so far, in insertion order.
func (p *Prediction) Samples() []float64 {
	return p.samples.Get()
}

// History gives access to the sample history for analysis.
func (p *Prediction) History() *buffer.History {
	return p.samples
}

// Render formats the prediction with the given number of decimal digits.
func (p *Prediction) Render(precision int) string {
	return fmt.Sprintf("%s: %s | 1sample: %s | avg: %s | var: %s | all: [%s] ",
		p.coords,
		xmath.Format(p.value, precision),
		xmath.Format(p.last, precision),
		xmath.Format(p.avg, precision),
		xmath.Format(p.variance, precision),
		xmath.FormatAll(p.samples.Get(), precision))
}

// String formats the prediction with the default precision.
func (p *Prediction) String() string {
	return p.Render(xmath.DefaultPrecision)
}

// Compare orders predictions by their coordinates only.
func Compare(a, b *Prediction) (int, error) {
	return a.coords.Compare(b.coords)
}
