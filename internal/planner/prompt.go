package planner

import (
	"fmt"
	"strings"
	"time"
)

const systemPrompt = "You are a knowledgeable Sri Lanka tour guide. Provide detailed, practical tour plans in JSON format."

// ChatSystemPrompt guides the travel-assistant chat endpoint
const ChatSystemPrompt = `You are a helpful Sri Lanka travel guide assistant. Provide accurate, friendly information about:
- Tourist destinations in Sri Lanka
- Cultural sites and historical places
- Best times to visit different regions
- Transportation options
- Hotel and accommodation recommendations
- Local customs and etiquette
- Food and cuisine recommendations
- Travel tips and safety advice

Be concise but informative in your responses. If you don't know something, say you don't know rather than making up information.`

// TripDurationDays returns the trip length as a day count, rounding
// partial days up. Same-instant start and end counts as zero days.
func TripDurationDays(start, end time.Time) int {
	diff := end.Sub(start)
	days := int(diff / (24 * time.Hour))
	if diff%(24*time.Hour) > 0 {
		days++
	}
	return days
}

func buildPrompt(req *PlanRequest) string {
	duration := TripDurationDays(req.StartDate, req.EndDate)

	var b strings.Builder
	fmt.Fprintf(&b, "Create a detailed tour plan for a trip in Sri Lanka with these parameters:\n")
	fmt.Fprintf(&b, "- Start location: %s\n", req.StartLocation)
	fmt.Fprintf(&b, "- End location: %s\n", req.EndLocation)
	fmt.Fprintf(&b, "- Duration: %d days (%s to %s)\n", duration,
		req.StartDate.Format("2006-01-02"), req.EndDate.Format("2006-01-02"))
	fmt.Fprintf(&b, "- Vehicle type: %s\n", req.Vehicle)
	fmt.Fprintf(&b, "- Number of travelers: %d\n", req.NumOfMembers)
	fmt.Fprintf(&b, "- Travel type: %s\n", req.TravelType)
	if req.Description != "" {
		fmt.Fprintf(&b, "- Additional notes: %s\n", req.Description)
	}

	b.WriteString(`
The response should be in JSON format with this structure:
{
  "summary": "Brief overview of the tour",
  "itinerary": [
    {
      "day": 1,
      "date": "YYYY-MM-DD",
      "from": "Starting point",
      "to": "Destination",
      "activities": ["Activity 1", "Activity 2"],
      "accommodation": "Recommended place to stay",
      "travelTime": "Estimated travel duration",
      "notes": "Any important notes"
    }
  ],
  "recommendations": {
    "packingTips": ["Item 1", "Item 2"],
    "diningSuggestions": ["Place 1", "Place 2"],
    "safetyTips": ["Tip 1", "Tip 2"]
  },
  "estimatedCost": {
    "transportation": "Estimated cost",
    "accommodation": "Estimated cost",
    "activities": "Estimated cost",
    "total": "Total estimated cost"
  }
}`)

	return b.String()
}
