package repository

import "math/rand"

// RandomFaults returns a hook that fires with the given probability.
// A rate of 0 or less yields a hook that never fires.
func RandomFaults(rate float64) func() bool {
	if rate <= 0 {
		return func() bool { return false }
	}
	return func() bool {
		return rand.Float64() < rate
	}
}
