package math

// Series generates a linear series of the given length.
func Series(factor float64, limit int) []float64 {
	xx := make([]float64, 0, limit)
	for i := 0; i < limit; i++ {
		xx = append(xx, factor*float64(i))
	}
	return xx
}
