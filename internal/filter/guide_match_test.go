package filter

import (
	"testing"

	"github.com/rockviolet/WanderLanka/internal/model"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func guide(name string, areas ...string) model.TourGuide {
	return model.TourGuide{
		ID:           uuid.New(),
		Name:         name,
		ServiceAreas: pq.StringArray(areas),
	}
}

func TestMatchGuidesSubstringContainment(t *testing.T) {
	guides := []model.TourGuide{
		guide("Nimal", "Galle Fort"),
		guide("Kamal", "Nuwara Eliya"),
	}

	matched := MatchGuides(guides, []string{"Galle", "Colombo"})

	require.Len(t, matched, 1)
	assert.Equal(t, "Nimal", matched[0].Name)
}

func TestMatchGuidesContainmentIsBidirectional(t *testing.T) {
	guides := []model.TourGuide{guide("Sunil", "Kandy")}

	// The location contains the service area
	matched := MatchGuides(guides, []string{"Kandy District"})
	require.Len(t, matched, 1)

	// The service area contains the location
	guides = []model.TourGuide{guide("Sunil", "Greater Colombo Region")}
	matched = MatchGuides(guides, []string{"Colombo"})
	require.Len(t, matched, 1)
}

func TestMatchGuidesIsCaseInsensitive(t *testing.T) {
	guides := []model.TourGuide{guide("Ruwan", "SIGIRIYA")}

	matched := MatchGuides(guides, []string{"sigiriya"})

	require.Len(t, matched, 1)
}

func TestMatchGuidesIgnoresBlankLocations(t *testing.T) {
	guides := []model.TourGuide{guide("Ruwan", "Ella")}

	matched := MatchGuides(guides, []string{"", "Ella"})
	require.Len(t, matched, 1)

	// An empty location must not match everything via empty-substring containment
	matched = MatchGuides(guides, []string{""})
	assert.Empty(t, matched)
}

func TestMatchGuidesNoServiceAreas(t *testing.T) {
	guides := []model.TourGuide{guide("Newcomer")}

	matched := MatchGuides(guides, []string{"Colombo"})

	assert.Empty(t, matched)
}

func TestMatchGuidesPreservesOrder(t *testing.T) {
	guides := []model.TourGuide{
		guide("First", "Colombo"),
		guide("Second", "Kandy"),
		guide("Third", "Colombo Suburbs"),
	}

	matched := MatchGuides(guides, []string{"Colombo"})

	require.Len(t, matched, 2)
	assert.Equal(t, "First", matched[0].Name)
	assert.Equal(t, "Third", matched[1].Name)
}
