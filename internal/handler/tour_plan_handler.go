package handler

import (
	"net/http"
	"time"

	"github.com/rockviolet/WanderLanka/internal/filter"
	"github.com/rockviolet/WanderLanka/internal/model"
	"github.com/rockviolet/WanderLanka/pkg/database"
	"github.com/rockviolet/WanderLanka/pkg/logger"
	"github.com/rockviolet/WanderLanka/pkg/validate"
	"github.com/rockviolet/WanderLanka/prometheus"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// TourPlanRequest defines the structure for tour plan create/update
// requests. The client ID always comes from the session token, never
// from the body.
type TourPlanRequest struct {
	StartLocation string `json:"startLocation" validate:"required"`
	EndLocation   string `json:"endLocation" validate:"required"`
	StartDate     string `json:"startDate" validate:"required"`
	EndDate       string `json:"endDate" validate:"required"`
	Vehicle       string `json:"vehicle" validate:"required"`
	NumOfMembers  int    `json:"numOfMembers" validate:"required,gte=1"`
	TravelType    string `json:"travelType" validate:"required,oneof=family couple friends solo business other"`
	Description   string `json:"description"`
}

// parsePlanDates parses the request dates and enforces startDate <= endDate
func parsePlanDates(req *TourPlanRequest) (time.Time, time.Time, map[string]string) {
	fields := map[string]string{}

	start, err := time.Parse(time.RFC3339, req.StartDate)
	if err != nil {
		fields["startDate"] = "startDate must be an RFC 3339 timestamp"
	}
	end, err := time.Parse(time.RFC3339, req.EndDate)
	if err != nil {
		fields["endDate"] = "endDate must be an RFC 3339 timestamp"
	}

	if len(fields) == 0 && end.Before(start) {
		fields["endDate"] = "endDate must not be before startDate"
	}

	if len(fields) > 0 {
		return time.Time{}, time.Time{}, fields
	}
	return start, end, nil
}

// sessionClientID extracts the authenticated client's ID from the context
func sessionClientID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get("user_id").(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(userID)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// CreateTourPlan creates a tour plan for the authenticated client
func CreateTourPlan(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("tour_plan", "create")

	clientID, ok := sessionClientID(c)
	if !ok {
		log.Error("Failed to get client ID from context")
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}

	var req TourPlanRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	if fields := validate.Struct(&req); fields != nil {
		log.Warn("Tour plan validation failed", zap.Any("fields", fields))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "validation failed", "fields": fields})
	}

	start, end, fields := parsePlanDates(&req)
	if fields != nil {
		log.Warn("Tour plan date validation failed", zap.Any("fields", fields))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "validation failed", "fields": fields})
	}

	plan := model.TourPlan{
		ClientID:      clientID,
		StartLocation: req.StartLocation,
		EndLocation:   req.EndLocation,
		StartDate:     start,
		EndDate:       end,
		Vehicle:       req.Vehicle,
		NumOfMembers:  req.NumOfMembers,
		TravelType:    req.TravelType,
		Description:   req.Description,
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	result := database.GetDB().Create(&plan)
	if result.Error != nil {
		log.Error("Failed to create tour plan",
			zap.String("client_id", clientID.String()),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create tour plan"})
	}

	log.Info("Tour plan created successfully",
		zap.String("tour_plan_id", plan.ID.String()),
		zap.String("start_location", plan.StartLocation),
		zap.String("end_location", plan.EndLocation))
	return c.JSON(http.StatusCreated, plan)
}

// ListTourPlans retrieves the authenticated client's plans, newest
// first, and applies the in-memory filter criteria from query
// parameters: search, location, travel_type, from, to
func ListTourPlans(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("tour_plan", "list")

	clientID, ok := sessionClientID(c)
	if !ok {
		log.Error("Failed to get client ID from context")
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	var plans []model.TourPlan
	result := database.GetDB().
		Where("client_id = ?", clientID).
		Order("created_at desc").
		Find(&plans)
	if result.Error != nil {
		log.Error("Failed to retrieve tour plans", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to retrieve tour plans"})
	}

	criteria := filter.Criteria{
		Search:     c.QueryParam("search"),
		Location:   c.QueryParam("location"),
		TravelType: c.QueryParam("travel_type"),
	}
	if from, err := parseFilterDate(c.QueryParam("from")); err == nil && from != nil {
		criteria.From = from
	}
	if to, err := parseFilterDate(c.QueryParam("to")); err == nil && to != nil {
		criteria.To = to
	}

	filtered := filter.Plans(plans, criteria)

	log.Info("Tour plans retrieved",
		zap.Int("total", len(plans)),
		zap.Int("matching", len(filtered)))
	return c.JSON(http.StatusOK, filtered)
}

// parseFilterDate accepts an RFC 3339 timestamp or a plain date
func parseFilterDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// GetTourPlan retrieves a tour plan by ID
func GetTourPlan(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("tour_plan", "get")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		log.Error("Invalid tour plan ID", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid tour plan ID"})
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	var plan model.TourPlan
	result := database.GetDB().Preload("Client").First(&plan, "id = ?", id)
	if result.Error != nil {
		log.Warn("Tour plan not found", zap.String("tour_plan_id", id.String()))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Tour plan not found"})
	}

	return c.JSON(http.StatusOK, plan)
}

// UpdateTourPlan replaces an existing plan's fields, owner only
func UpdateTourPlan(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("tour_plan", "update")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		log.Error("Invalid tour plan ID", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid tour plan ID"})
	}

	clientID, ok := sessionClientID(c)
	if !ok {
		log.Error("Failed to get client ID from context")
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}

	var req TourPlanRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	if fields := validate.Struct(&req); fields != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "validation failed", "fields": fields})
	}

	start, end, fields := parsePlanDates(&req)
	if fields != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "validation failed", "fields": fields})
	}

	var plan model.TourPlan
	result := database.GetDB().First(&plan, "id = ?", id)
	if result.Error != nil {
		log.Warn("Tour plan not found for update", zap.String("tour_plan_id", id.String()))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Tour plan not found"})
	}

	if plan.ClientID != clientID {
		log.Warn("Attempt to update another client's plan",
			zap.String("tour_plan_id", id.String()),
			zap.String("client_id", clientID.String()))
		return c.JSON(http.StatusForbidden, echo.Map{"error": "You don't have permission to update this tour plan"})
	}

	plan.StartLocation = req.StartLocation
	plan.EndLocation = req.EndLocation
	plan.StartDate = start
	plan.EndDate = end
	plan.Vehicle = req.Vehicle
	plan.NumOfMembers = req.NumOfMembers
	plan.TravelType = req.TravelType
	plan.Description = req.Description

	defer prometheus.TrackDBOperation("update")(time.Now())
	result = database.GetDB().Save(&plan)
	if result.Error != nil {
		log.Error("Failed to update tour plan", zap.String("tour_plan_id", id.String()), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update tour plan"})
	}

	log.Info("Tour plan updated successfully", zap.String("tour_plan_id", plan.ID.String()))
	return c.JSON(http.StatusOK, plan)
}

// DeleteTourPlan soft deletes a plan, owner only
func DeleteTourPlan(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("tour_plan", "delete")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		log.Error("Invalid tour plan ID", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid tour plan ID"})
	}

	clientID, ok := sessionClientID(c)
	if !ok {
		log.Error("Failed to get client ID from context")
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}

	var plan model.TourPlan
	result := database.GetDB().First(&plan, "id = ?", id)
	if result.Error != nil {
		log.Warn("Tour plan not found for delete", zap.String("tour_plan_id", id.String()))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Tour plan not found"})
	}

	if plan.ClientID != clientID {
		log.Warn("Attempt to delete another client's plan",
			zap.String("tour_plan_id", id.String()),
			zap.String("client_id", clientID.String()))
		return c.JSON(http.StatusForbidden, echo.Map{"error": "You don't have permission to delete this tour plan"})
	}

	defer prometheus.TrackDBOperation("delete")(time.Now())
	result = database.GetDB().Delete(&plan)
	if result.Error != nil {
		log.Error("Failed to delete tour plan", zap.String("tour_plan_id", id.String()), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete tour plan"})
	}

	log.Info("Tour plan deleted successfully", zap.String("tour_plan_id", id.String()))
	return c.JSON(http.StatusOK, echo.Map{"message": "Tour plan deleted successfully"})
}
