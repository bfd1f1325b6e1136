// Package rating computes display figures for star ratings.
package rating

import "math"

// Average returns the arithmetic mean of the given star values rounded
// to one decimal place. Zero reviews average to 0 rather than dividing
// by zero.
func Average(stars []int) float64 {
	if len(stars) == 0 {
		return 0
	}

	sum := 0
	for _, s := range stars {
		sum += s
	}

	avg := float64(sum) / float64(len(stars))
	return math.Round(avg*10) / 10
}
