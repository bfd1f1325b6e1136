package filter

import (
	"strings"

	"github.com/rockviolet/WanderLanka/internal/model"
)

// MatchGuides returns guides whose service areas overlap the given trip
// locations. A guide matches when any of its service areas and any
// location contain each other case-insensitively, in either direction:
// "Colombo" matches a service area of "Greater Colombo Region" and a
// service area of "Kandy" matches the location "Kandy District".
func MatchGuides(guides []model.TourGuide, locations []string) []model.TourGuide {
	matched := make([]model.TourGuide, 0, len(guides))
	for _, guide := range guides {
		if guideServesAny(guide, locations) {
			matched = append(matched, guide)
		}
	}
	return matched
}

func guideServesAny(guide model.TourGuide, locations []string) bool {
	for _, area := range guide.ServiceAreas {
		for _, loc := range locations {
			if loc == "" {
				continue
			}
			if areasOverlap(area, loc) {
				return true
			}
		}
	}
	return false
}

func areasOverlap(area, location string) bool {
	a := strings.ToLower(area)
	l := strings.ToLower(location)
	return strings.Contains(a, l) || strings.Contains(l, a)
}
