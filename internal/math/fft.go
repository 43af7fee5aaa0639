package math

import (
	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/stat"
)

// Autocorrelation returns the normalised autocorrelation of the series for lags 0..maxLag.
// The series is zero padded to twice its length, so that the circular convolution of the FFT
// matches the linear one.
// A negative maxLag or one beyond the series length is clamped to len(xx)-1.
func Autocorrelation(xx []float64, maxLag int) []float64 {
	n := len(xx)
	if n == 0 {
		return []float64{}
	}
	if maxLag < 0 || maxLag >= n {
		maxLag = n - 1
	}

	mean := stat.Mean(xx, nil)
	padded := make([]float64, 2*n)
	for i, x := range xx {
		padded[i] = x - mean
	}

	spectrum := fft.FFTReal(padded)
	for i, c := range spectrum {
		spectrum[i] = complex(real(c)*real(c)+imag(c)*imag(c), 0)
	}
	cov := fft.IFFT(spectrum)

	rho := make([]float64, maxLag+1)
	c0 := real(cov[0])
	if c0 == 0 {
		// constant series, there is nothing to correlate
		rho[0] = 1
		return rho
	}
	for k := range rho {
		rho[k] = real(cov[k]) / c0
	}
	return rho
}
