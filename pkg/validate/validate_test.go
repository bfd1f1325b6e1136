package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reviewPayload struct {
	Review     string `json:"review" validate:"required"`
	NumOfStars int    `json:"numOfStars" validate:"required,gte=1,lte=5"`
}

type planPayload struct {
	StartLocation string `json:"startLocation" validate:"required"`
	NumOfMembers  int    `json:"numOfMembers" validate:"required,gte=1"`
	TravelType    string `json:"travelType" validate:"required,oneof=family couple friends solo business other"`
}

func TestStructValidPayload(t *testing.T) {
	fields := Struct(&reviewPayload{Review: "Great trip", NumOfStars: 5})

	assert.Nil(t, fields)
}

func TestStructStarsAboveRangeRejected(t *testing.T) {
	fields := Struct(&reviewPayload{Review: "Too good", NumOfStars: 6})

	require.NotNil(t, fields)
	assert.Contains(t, fields, "numOfStars")
}

func TestStructStarsBelowRangeRejected(t *testing.T) {
	fields := Struct(&reviewPayload{Review: "Bad", NumOfStars: 0})

	require.NotNil(t, fields)
	assert.Contains(t, fields, "numOfStars")
}

func TestStructFieldsKeyedByJSONName(t *testing.T) {
	fields := Struct(&planPayload{NumOfMembers: 2, TravelType: "couple"})

	require.NotNil(t, fields)
	assert.Contains(t, fields, "startLocation")
	assert.Equal(t, "startLocation is required", fields["startLocation"])
}

func TestStructTravelTypeEnum(t *testing.T) {
	fields := Struct(&planPayload{StartLocation: "Colombo", NumOfMembers: 2, TravelType: "honeymoon"})

	require.NotNil(t, fields)
	assert.Contains(t, fields, "travelType")
	assert.Contains(t, fields["travelType"], "must be one of")
}

func TestStructCollectsEveryFailingField(t *testing.T) {
	fields := Struct(&planPayload{})

	require.NotNil(t, fields)
	assert.Len(t, fields, 3)
}
