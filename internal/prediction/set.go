package prediction

import (
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/mat"

	"github.com/drakos74/free-predict/internal/concurrent"
	"github.com/drakos74/free-predict/internal/sparse"
)

// Set is the ordered collection of predictions for all known points of a matrix/tensor.
// Predictions of different coordinates share no state, so a round can be added in parallel
// as long as every prediction is written by a single go routine.
type Set struct {
	id          string
	predictions []*Prediction
	index       map[string]int
}

// NewSet creates one prediction per entry, in the order of the entries.
func NewSet(entries []sparse.Entry) (*Set, error) {
	s := &Set{
		id:          uuid.New().String(),
		predictions: make([]*Prediction, 0, len(entries)),
		index:       make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		coords := Coords(e.Coords)
		key := coords.String()
		if _, ok := s.index[key]; ok {
			return nil, fmt.Errorf("%s: %w", key, ErrDuplicateCoords)
		}
		s.index[key] = len(s.predictions)
		s.predictions = append(s.predictions, New(coords, e.Value))
	}
	log.Debug().
		Str("run", s.id).
		Int("predictions", len(s.predictions)).
		Msg("created prediction set")
	return s, nil
}

// FromMatrix creates the predictions for the known entries of a sparse matrix.
func FromMatrix(m sparse.Matrix) (*Set, error) {
	entries, err := m.Entries()
	if err != nil {
		return nil, fmt.Errorf("could not read matrix: %w", err)
	}
	return NewSet(entries)
}

// FromTensor creates the predictions for the known entries of a sparse tensor.
func FromTensor(t sparse.Tensor) (*Set, error) {
	entries, err := t.Entries()
	if err != nil {
		return nil, fmt.Errorf("could not read tensor: %w", err)
	}
	return NewSet(entries)
}

// FromDense creates the predictions for the non-zero entries of a matrix.
func FromDense(m mat.Matrix) (*Set, error) {
	return NewSet(sparse.FromDense(m))
}

// ID returns the unique id of the set.
func (s *Set) ID() string {
	return s.id
}

// Len returns the number of predictions.
func (s *Set) Len() int {
	return len(s.predictions)
}

// At returns the prediction at the given position.
func (s *Set) At(i int) *Prediction {
	return s.predictions[i]
}

// Get returns the prediction for the given coordinates.
func (s *Set) Get(coords Coords) (*Prediction, bool) {
	i, ok := s.index[coords.String()]
	if !ok {
		return nil, false
	}
	return s.predictions[i], true
}

// Predictions returns the predictions in their current order.
func (s *Set) Predictions() []*Prediction {
	return slices.Clone(s.predictions)
}

// Values returns the true values of all predictions.
func (s *Set) Values() []float64 {
	vv := make([]float64, len(s.predictions))
	for i, p := range s.predictions {
		vv[i] = p.value
	}
	return vv
}

// Averages returns the average prediction of all predictions.
func (s *Set) Averages() []float64 {
	vv := make([]float64, len(s.predictions))
	for i, p := range s.predictions {
		vv[i] = p.avg
	}
	return vv
}

// Add adds one round of samples, one for each prediction in order.
// Nothing is added if the number of samples does not match.
func (s *Set) Add(samples []float64) error {
	if len(samples) != len(s.predictions) {
		return fmt.Errorf("%d samples for %d predictions: %w", len(samples), len(s.predictions), ErrLengthMismatch)
	}
	for i, v := range samples {
		s.predictions[i].Add(v)
	}
	return nil
}

// AddAt adds a sample to the prediction at the given coordinates.
func (s *Set) AddAt(coords Coords, sample float64) error {
	p, ok := s.Get(coords)
	if !ok {
		return fmt.Errorf("%s: %w", coords, ErrUnknownCoords)
	}
	p.Add(sample)
	return nil
}

// AddParallel adds one round of samples like Add, spreading the predictions over the given number of workers.
// If the context is cancelled while the round is in progress, only part of the round may have been added.
func (s *Set) AddParallel(ctx context.Context, samples []float64, workers int) error {
	if len(samples) != len(s.predictions) {
		return fmt.Errorf("%d samples for %d predictions: %w", len(samples), len(s.predictions), ErrLengthMismatch)
	}
	err := concurrent.Chunks(ctx, len(samples), workers, func(from, to int) error {
		for i := from; i < to; i++ {
			s.predictions[i].Add(samples[i])
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("could not complete round for %s: %w", s.id, err)
	}
	return nil
}

// Sort orders the predictions by their coordinates.
// All coordinates must have the same number of indices, otherwise the set is left untouched.
func (s *Set) Sort() error {
	for i := 1; i < len(s.predictions); i++ {
		if _, err := Compare(s.predictions[0], s.predictions[i]); err != nil {
			return fmt.Errorf("could not sort %s: %w", s.id, err)
		}
	}
	slices.SortStableFunc(s.predictions, func(a, b *Prediction) int {
		c, _ := Compare(a, b)
		return c
	})
	for i, p := range s.predictions {
		s.index[p.coords.String()] = i
	}
	log.Trace().Str("run", s.id).Int("predictions", len(s.predictions)).Msg("sorted prediction set")
	return nil
}

// RMSE is the root mean squared error between the true values and the average predictions.
// It is NaN for an empty set, or if any prediction has no samples yet.
func (s *Set) RMSE() float64 {
	return RMSE(s.Values(), s.Averages())
}
