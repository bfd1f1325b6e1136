package filter

import (
	"testing"
	"time"

	"github.com/rockviolet/WanderLanka/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return parsed
}

func testPlans(t *testing.T) []model.TourPlan {
	t.Helper()
	return []model.TourPlan{
		{
			ID:            uuid.New(),
			StartLocation: "Colombo",
			EndLocation:   "Kandy",
			StartDate:     mustDate(t, "2024-06-01"),
			EndDate:       mustDate(t, "2024-06-05"),
			Vehicle:       "Car",
			NumOfMembers:  2,
			TravelType:    "couple",
			Description:   "Hill country trip",
		},
		{
			ID:            uuid.New(),
			StartLocation: "Galle",
			EndLocation:   "Mirissa",
			StartDate:     mustDate(t, "2024-07-10"),
			EndDate:       mustDate(t, "2024-07-12"),
			Vehicle:       "Van",
			NumOfMembers:  5,
			TravelType:    "family",
			Description:   "Beach weekend",
		},
		{
			ID:            uuid.New(),
			StartLocation: "Ella",
			EndLocation:   "Nuwara Eliya",
			StartDate:     mustDate(t, "2024-08-01"),
			EndDate:       mustDate(t, "2024-08-03"),
			Vehicle:       "Train",
			NumOfMembers:  1,
			TravelType:    "solo",
			Description:   "Tea country via Kandy road",
		},
	}
}

func TestPlansEmptyCriteriaMatchesEverything(t *testing.T) {
	plans := testPlans(t)

	result := Plans(plans, Criteria{})

	assert.Equal(t, plans, result)
}

func TestPlansSearchIsCaseInsensitiveSubstring(t *testing.T) {
	plans := testPlans(t)

	result := Plans(plans, Criteria{Search: "kandy", Location: All})

	// Matches the Colombo->Kandy plan by end location and the Ella plan
	// by description
	require.Len(t, result, 2)
	assert.Equal(t, "Colombo", result[0].StartLocation)
	assert.Equal(t, "Ella", result[1].StartLocation)
}

func TestPlansAllSentinelIsNoOp(t *testing.T) {
	plans := testPlans(t)

	withSentinels := Plans(plans, Criteria{Location: All, TravelType: All})
	withoutFilters := Plans(plans, Criteria{})

	assert.Equal(t, withoutFilters, withSentinels)
}

func TestPlansLocationMatchesStartOrEnd(t *testing.T) {
	plans := testPlans(t)

	byStart := Plans(plans, Criteria{Location: "Galle"})
	require.Len(t, byStart, 1)
	assert.Equal(t, "Mirissa", byStart[0].EndLocation)

	byEnd := Plans(plans, Criteria{Location: "Kandy"})
	require.Len(t, byEnd, 1)
	assert.Equal(t, "Colombo", byEnd[0].StartLocation)
}

func TestPlansTravelType(t *testing.T) {
	plans := testPlans(t)

	result := Plans(plans, Criteria{TravelType: "family"})

	require.Len(t, result, 1)
	assert.Equal(t, "Galle", result[0].StartLocation)
}

func TestPlansDateBoundsAreInclusiveAndIndependent(t *testing.T) {
	plans := testPlans(t)

	from := mustDate(t, "2024-07-01")
	onlyFrom := Plans(plans, Criteria{From: &from})
	require.Len(t, onlyFrom, 2)
	assert.Equal(t, "Galle", onlyFrom[0].StartLocation)

	to := mustDate(t, "2024-07-12")
	onlyTo := Plans(plans, Criteria{To: &to})
	require.Len(t, onlyTo, 2)
	assert.Equal(t, "Colombo", onlyTo[0].StartLocation)

	// Inclusive: a plan starting exactly on From and ending exactly on To stays
	exactFrom := mustDate(t, "2024-07-10")
	exactTo := mustDate(t, "2024-07-12")
	exact := Plans(plans, Criteria{From: &exactFrom, To: &exactTo})
	require.Len(t, exact, 1)
	assert.Equal(t, "Galle", exact[0].StartLocation)
}

func TestPlansPredicatesComposeConjunctively(t *testing.T) {
	plans := testPlans(t)

	// Search matches two plans, travel type narrows to one
	result := Plans(plans, Criteria{Search: "kandy", TravelType: "couple"})

	require.Len(t, result, 1)
	assert.Equal(t, "couple", result[0].TravelType)
}

func TestPlansResultIsSubsetAndFilteringIsIdempotent(t *testing.T) {
	plans := testPlans(t)
	criteria := Criteria{Search: "kandy", Location: All}

	once := Plans(plans, criteria)
	twice := Plans(once, criteria)

	assert.Equal(t, once, twice)
	assert.LessOrEqual(t, len(once), len(plans))
	for _, plan := range once {
		assert.Contains(t, plans, plan)
	}
}

func TestPlansNoMatchesYieldsEmptySlice(t *testing.T) {
	plans := testPlans(t)

	result := Plans(plans, Criteria{Search: "jaffna"})

	assert.NotNil(t, result)
	assert.Empty(t, result)
}
