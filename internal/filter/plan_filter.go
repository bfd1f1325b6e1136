package filter

import (
	"strings"
	"time"

	"github.com/rockviolet/WanderLanka/internal/model"
)

// All is the sentinel meaning a criteria dimension is inactive
const All = "all"

// Criteria holds the active tour plan filter predicates. Zero values
// (and the "all" sentinel for Location and TravelType) disable the
// corresponding predicate.
type Criteria struct {
	Search     string
	Location   string
	TravelType string
	From       *time.Time
	To         *time.Time
}

// Plans returns the subset of plans satisfying every active predicate.
// Predicates compose conjunctively and source order is preserved, so
// filtering an already-filtered result with the same criteria is a no-op.
func Plans(plans []model.TourPlan, criteria Criteria) []model.TourPlan {
	result := make([]model.TourPlan, 0, len(plans))
	for _, plan := range plans {
		if matchesPlan(plan, criteria) {
			result = append(result, plan)
		}
	}
	return result
}

func matchesPlan(plan model.TourPlan, criteria Criteria) bool {
	if criteria.Search != "" {
		term := strings.ToLower(criteria.Search)
		if !strings.Contains(strings.ToLower(plan.StartLocation), term) &&
			!strings.Contains(strings.ToLower(plan.EndLocation), term) &&
			!strings.Contains(strings.ToLower(plan.Description), term) {
			return false
		}
	}

	if criteria.Location != "" && criteria.Location != All {
		if plan.StartLocation != criteria.Location && plan.EndLocation != criteria.Location {
			return false
		}
	}

	if criteria.TravelType != "" && criteria.TravelType != All {
		if plan.TravelType != criteria.TravelType {
			return false
		}
	}

	// Each date bound only constrains when set; comparisons are inclusive
	if criteria.From != nil && plan.StartDate.Before(*criteria.From) {
		return false
	}
	if criteria.To != nil && plan.EndDate.After(*criteria.To) {
		return false
	}

	return true
}
