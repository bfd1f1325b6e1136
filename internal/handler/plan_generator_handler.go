package handler

import (
	"net/http"
	"time"

	"github.com/rockviolet/WanderLanka/internal/planner"
	"github.com/rockviolet/WanderLanka/pkg/logger"
	"github.com/rockviolet/WanderLanka/pkg/validate"
	"github.com/rockviolet/WanderLanka/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// PlanGenerator is the itinerary generator wired up in main
var PlanGenerator *planner.Generator

// GenerateTourPlan asks the completion service for an itinerary matching
// the submitted trip parameters. Nothing is persisted; the caller gets
// the structured plan plus a rendered description to store on the plan.
func GenerateTourPlan(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.PlanGenerationCounter.Inc()

	var req TourPlanRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	if fields := validate.Struct(&req); fields != nil {
		log.Warn("Plan generation validation failed", zap.Any("fields", fields))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "validation failed", "fields": fields})
	}

	start, end, fields := parsePlanDates(&req)
	if fields != nil {
		log.Warn("Plan generation date validation failed", zap.Any("fields", fields))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "validation failed", "fields": fields})
	}

	planReq := planner.PlanRequest{
		StartLocation: req.StartLocation,
		EndLocation:   req.EndLocation,
		StartDate:     start,
		EndDate:       end,
		Vehicle:       req.Vehicle,
		NumOfMembers:  req.NumOfMembers,
		TravelType:    req.TravelType,
		Description:   req.Description,
	}

	log.Info("Generating tour plan",
		zap.String("start_location", req.StartLocation),
		zap.String("end_location", req.EndLocation),
		zap.Int("duration_days", planner.TripDurationDays(start, end)))

	generateStart := time.Now()
	generated, err := PlanGenerator.Generate(c.Request().Context(), &planReq)
	prometheus.PlanGenerationDuration.Observe(time.Since(generateStart).Seconds())
	if err != nil {
		log.Error("Plan generation failed", zap.Error(err))
		prometheus.PlanGenerationErrors.Inc()
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "Failed to generate plan"})
	}

	log.Info("Tour plan generated",
		zap.Int("itinerary_days", len(generated.Itinerary)),
		zap.Float64("duration_s", time.Since(generateStart).Seconds()))

	return c.JSON(http.StatusOK, echo.Map{
		"success":     true,
		"data":        generated,
		"description": planner.RenderDescription(generated),
	})
}
