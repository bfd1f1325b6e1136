package rating

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAverageOfZeroReviewsIsZero(t *testing.T) {
	assert.Equal(t, 0.0, Average(nil))
	assert.Equal(t, 0.0, Average([]int{}))
}

func TestAverageIsArithmeticMean(t *testing.T) {
	assert.Equal(t, 4.0, Average([]int{5, 3, 4}))
	assert.Equal(t, 5.0, Average([]int{5}))
	assert.Equal(t, 3.0, Average([]int{1, 5}))
}

func TestAverageRoundsToOneDecimal(t *testing.T) {
	// 1+2+5 = 8 / 3 = 2.666... -> 2.7
	assert.Equal(t, 2.7, Average([]int{1, 2, 5}))
	// 1+1+2 = 4 / 3 = 1.333... -> 1.3
	assert.Equal(t, 1.3, Average([]int{1, 1, 2}))
}
