package prediction

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// RMSE computes the root mean squared error between the true and predicted values.
// It returns NaN for empty or mismatched input.
func RMSE(truth, predicted []float64) float64 {
	if len(truth) == 0 || len(truth) != len(predicted) {
		return math.NaN()
	}
	diff := make([]float64, len(truth))
	floats.SubTo(diff, truth, predicted)
	return math.Sqrt(floats.Dot(diff, diff) / float64(len(diff)))
}

// PooledRMSE combines the RMSE of several sets, weighting each by its number of predictions.
// It equals the RMSE over the union of the sets. Empty sets are skipped, and without any
// predictions the result is NaN.
func PooledRMSE(sets ...*Set) float64 {
	squares := make([]float64, 0, len(sets))
	weights := make([]float64, 0, len(sets))
	for _, s := range sets {
		if s.Len() == 0 {
			continue
		}
		rmse := s.RMSE()
		squares = append(squares, rmse*rmse)
		weights = append(weights, float64(s.Len()))
	}
	if len(squares) == 0 {
		return math.NaN()
	}
	return math.Sqrt(stat.Mean(squares, weights))
}
