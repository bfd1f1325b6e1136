package planner

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rockviolet/WanderLanka/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(&config.OpenAIConfig{
		APIKey:  "test-key",
		BaseURL: server.URL,
		Model:   "gpt-3.5-turbo-1106",
		Timeout: 5 * time.Second,
	})
}

func completionResponse(content string) []byte {
	body, _ := json.Marshal(map[string]interface{}{
		"choices": []map[string]interface{}{
			{"message": map[string]string{"content": content}},
		},
	})
	return body
}

func TestGeneratorGenerateParsesPlan(t *testing.T) {
	planJSON := `{
		"summary": "A relaxed couple's trip from Colombo to Kandy",
		"itinerary": [
			{
				"day": 1,
				"date": "2024-06-01",
				"from": "Colombo",
				"to": "Kandy",
				"activities": ["Temple of the Tooth", "Kandy Lake walk"],
				"accommodation": "Hotel near the lake",
				"travelTime": "3 hours",
				"notes": "Leave early to avoid traffic"
			}
		],
		"recommendations": {
			"packingTips": ["Light clothing"],
			"diningSuggestions": ["Local rice and curry"],
			"safetyTips": ["Keep valuables close"]
		},
		"estimatedCost": {
			"transportation": "LKR 15000",
			"accommodation": "LKR 30000",
			"activities": "LKR 10000",
			"total": "LKR 55000"
		}
	}`

	var gotRequest chatRequest
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotRequest))
		w.Write(completionResponse(planJSON))
	})

	generator := NewGenerator(client)
	start, _ := time.Parse(time.RFC3339, "2024-06-01T00:00:00Z")
	end, _ := time.Parse(time.RFC3339, "2024-06-05T00:00:00Z")

	plan, err := generator.Generate(context.Background(), &PlanRequest{
		StartLocation: "Colombo",
		EndLocation:   "Kandy",
		StartDate:     start,
		EndDate:       end,
		Vehicle:       "Car",
		NumOfMembers:  2,
		TravelType:    "couple",
	})

	require.NoError(t, err)
	assert.Equal(t, "A relaxed couple's trip from Colombo to Kandy", plan.Summary)
	require.Len(t, plan.Itinerary, 1)
	assert.Equal(t, []string{"Temple of the Tooth", "Kandy Lake walk"}, plan.Itinerary[0].Activities)
	assert.Equal(t, "LKR 55000", plan.EstimatedCost.Total)

	// The request asked for a JSON object response with the fixed system prompt
	require.NotNil(t, gotRequest.ResponseFormat)
	assert.Equal(t, "json_object", gotRequest.ResponseFormat.Type)
	require.Len(t, gotRequest.Messages, 2)
	assert.Equal(t, "system", gotRequest.Messages[0].Role)
	assert.Contains(t, gotRequest.Messages[1].Content, "Start location: Colombo")
}

func TestGeneratorGenerateUpstreamError(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"error": {"message": "overloaded"}}`))
	})

	generator := NewGenerator(client)
	_, err := generator.Generate(context.Background(), &PlanRequest{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "overloaded")
}

func TestGeneratorGenerateMalformedPlan(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write(completionResponse("not a json object"))
	})

	generator := NewGenerator(client)
	_, err := generator.Generate(context.Background(), &PlanRequest{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse generated plan")
}

func TestClientRequiresAPIKey(t *testing.T) {
	client := NewClient(&config.OpenAIConfig{
		BaseURL: "http://localhost:1",
		Model:   "gpt-3.5-turbo-1106",
		Timeout: time.Second,
	})

	_, err := client.Chat(context.Background(), []Message{{Role: "user", Content: "hi"}})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key not configured")
}

func TestClientEmptyChoices(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices": []}`))
	})

	_, err := client.Chat(context.Background(), []Message{{Role: "user", Content: "hi"}})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no content received")
}

func TestRenderDescription(t *testing.T) {
	plan := &GeneratedPlan{
		Summary: "Two days in the hill country",
		Itinerary: []ItineraryDay{
			{Day: 1, Activities: []string{"Train to Ella", "Nine Arches Bridge"}},
			{Day: 2, Activities: []string{"Little Adam's Peak"}},
		},
	}

	description := RenderDescription(plan)

	assert.Equal(t,
		"AI-Generated Plan:\n\nTwo days in the hill country\n\nItinerary:\nDay 1: Train to Ella, Nine Arches Bridge\nDay 2: Little Adam's Peak",
		description)
}
