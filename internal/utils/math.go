package utils

// FloatTolerance is the absolute epsilon used for float comparisons in
// validation thresholds and score assertions
const FloatTolerance = 0.01

// Clamp bounds a value to the [lo, hi] interval
func Clamp(value, lo, hi float64) float64 {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

// ClampMin bounds a value from below
func ClampMin(value, lo float64) float64 {
	if value < lo {
		return lo
	}
	return value
}

// ClampMax bounds a value from above
func ClampMax(value, hi float64) float64 {
	if value > hi {
		return hi
	}
	return value
}

// AlmostEqual reports whether two floats are equal within FloatTolerance
func AlmostEqual(a, b float64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff <= FloatTolerance
}

// MeetsMinimum reports whether a value satisfies a lower bound, allowing
// FloatTolerance of slack so borderline values are not rejected
func MeetsMinimum(value, threshold float64) bool {
	return value >= threshold-FloatTolerance
}

// WithinMaximum reports whether a value satisfies an upper bound, allowing
// FloatTolerance of slack so borderline values are not rejected
func WithinMaximum(value, limit float64) bool {
	return value <= limit+FloatTolerance
}

// Mean returns the arithmetic mean of the values, 0 for an empty slice
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total / float64(len(values))
}
