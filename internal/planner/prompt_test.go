package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("bad date %q: %v", value, err)
	}
	return parsed
}

func TestTripDurationDays(t *testing.T) {
	start := date(t, "2024-06-01T00:00:00Z")

	assert.Equal(t, 4, TripDurationDays(start, date(t, "2024-06-05T00:00:00Z")))
	assert.Equal(t, 0, TripDurationDays(start, start))
	// Partial days round up
	assert.Equal(t, 1, TripDurationDays(start, date(t, "2024-06-01T06:00:00Z")))
	assert.Equal(t, 5, TripDurationDays(start, date(t, "2024-06-05T18:00:00Z")))
}

func TestBuildPromptContainsTripParameters(t *testing.T) {
	req := &PlanRequest{
		StartLocation: "Colombo",
		EndLocation:   "Kandy",
		StartDate:     date(t, "2024-06-01T00:00:00Z"),
		EndDate:       date(t, "2024-06-05T00:00:00Z"),
		Vehicle:       "Car",
		NumOfMembers:  2,
		TravelType:    "couple",
	}

	prompt := buildPrompt(req)

	assert.Contains(t, prompt, "Start location: Colombo")
	assert.Contains(t, prompt, "End location: Kandy")
	assert.Contains(t, prompt, "Duration: 4 days (2024-06-01 to 2024-06-05)")
	assert.Contains(t, prompt, "Vehicle type: Car")
	assert.Contains(t, prompt, "Number of travelers: 2")
	assert.Contains(t, prompt, "Travel type: couple")
	assert.Contains(t, prompt, `"summary"`)
	assert.Contains(t, prompt, `"estimatedCost"`)
	assert.NotContains(t, prompt, "Additional notes")
}

func TestBuildPromptIncludesOptionalNotes(t *testing.T) {
	req := &PlanRequest{
		StartLocation: "Galle",
		EndLocation:   "Ella",
		StartDate:     date(t, "2024-07-01T00:00:00Z"),
		EndDate:       date(t, "2024-07-03T00:00:00Z"),
		Vehicle:       "Van",
		NumOfMembers:  4,
		TravelType:    "family",
		Description:   "Prefer scenic routes",
	}

	prompt := buildPrompt(req)

	assert.Contains(t, prompt, "Additional notes: Prefer scenic routes")
}
