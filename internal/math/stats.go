package math

import "math"

// EffectiveSampleSize estimates how many independent samples the series is worth.
// It sums the autocorrelation up to the first negative lag : n / (1 + 2 * sum(rho_k)).
func EffectiveSampleSize(xx []float64) float64 {
	n := len(xx)
	if n < 2 {
		return float64(n)
	}
	rho := Autocorrelation(xx, n-1)
	sum := 0.0
	for k := 1; k < len(rho); k++ {
		if rho[k] < 0 || math.IsNaN(rho[k]) {
			break
		}
		sum += rho[k]
	}
	return float64(n) / (1 + 2*sum)
}
