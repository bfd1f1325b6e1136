// Package planner builds AI-assisted itinerary suggestions for tour plans.
package planner

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// PlanRequest carries the trip parameters the itinerary is generated from
type PlanRequest struct {
	StartLocation string
	EndLocation   string
	StartDate     time.Time
	EndDate       time.Time
	Vehicle       string
	NumOfMembers  int
	TravelType    string
	Description   string
}

// ItineraryDay is one day of the generated itinerary
type ItineraryDay struct {
	Day           int      `json:"day"`
	Date          string   `json:"date"`
	From          string   `json:"from"`
	To            string   `json:"to"`
	Activities    []string `json:"activities"`
	Accommodation string   `json:"accommodation"`
	TravelTime    string   `json:"travelTime"`
	Notes         string   `json:"notes"`
}

// Recommendations groups the advice lists of a generated plan
type Recommendations struct {
	PackingTips       []string `json:"packingTips"`
	DiningSuggestions []string `json:"diningSuggestions"`
	SafetyTips        []string `json:"safetyTips"`
}

// EstimatedCost is the generated cost breakdown
type EstimatedCost struct {
	Transportation string `json:"transportation"`
	Accommodation  string `json:"accommodation"`
	Activities     string `json:"activities"`
	Total          string `json:"total"`
}

// GeneratedPlan is the structured itinerary suggestion returned by the
// completion service
type GeneratedPlan struct {
	Summary         string          `json:"summary"`
	Itinerary       []ItineraryDay  `json:"itinerary"`
	Recommendations Recommendations `json:"recommendations"`
	EstimatedCost   EstimatedCost   `json:"estimatedCost"`
}

// Generator produces itinerary suggestions via the completion service
type Generator struct {
	client *Client
}

// NewGenerator creates a Generator backed by the given client
func NewGenerator(client *Client) *Generator {
	return &Generator{client: client}
}

// Generate asks the completion service for an itinerary matching the
// request. The service gives no determinism guarantee; two identical
// requests may return different plans.
func (g *Generator) Generate(ctx context.Context, req *PlanRequest) (*GeneratedPlan, error) {
	messages := []Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: buildPrompt(req)},
	}

	content, err := g.client.ChatJSON(ctx, messages)
	if err != nil {
		return nil, err
	}

	var plan GeneratedPlan
	if err := json.Unmarshal([]byte(content), &plan); err != nil {
		return nil, fmt.Errorf("failed to parse generated plan: %w", err)
	}

	return &plan, nil
}

// RenderDescription flattens a generated plan into the free-text
// description stored on the tour plan, overwriting any prior text.
func RenderDescription(plan *GeneratedPlan) string {
	var b strings.Builder
	b.WriteString("AI-Generated Plan:\n\n")
	b.WriteString(plan.Summary)
	b.WriteString("\n\nItinerary:\n")

	lines := make([]string, 0, len(plan.Itinerary))
	for _, day := range plan.Itinerary {
		lines = append(lines, fmt.Sprintf("Day %d: %s", day.Day, strings.Join(day.Activities, ", ")))
	}
	b.WriteString(strings.Join(lines, "\n"))

	return b.String()
}
