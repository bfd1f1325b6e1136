package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var destinationNames = []string{"Colombo", "Kandy", "Galle", "Nuwara Eliya", "Anuradhapura"}

func TestSuggestDestinations(t *testing.T) {
	matches := SuggestDestinations(destinationNames, "an")

	assert.Equal(t, []string{"Kandy", "Anuradhapura"}, matches)
}

func TestSuggestDestinationsCaseInsensitive(t *testing.T) {
	matches := SuggestDestinations(destinationNames, "GALLE")

	assert.Equal(t, []string{"Galle"}, matches)
}

func TestSuggestDestinationsShortQueryYieldsNothing(t *testing.T) {
	assert.Empty(t, SuggestDestinations(destinationNames, ""))
	assert.Empty(t, SuggestDestinations(destinationNames, "k"))
}

func TestSuggestDestinationsNoMatch(t *testing.T) {
	matches := SuggestDestinations(destinationNames, "jaffna")

	assert.NotNil(t, matches)
	assert.Empty(t, matches)
}
