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

// DestinationRequest defines the structure for destination create/update requests
type DestinationRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	ImageURL    string `json:"imageUrl"`
	Location    string `json:"location" validate:"required"`
}

// CreateDestination creates a new destination
func CreateDestination(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("destination", "create")

	var req DestinationRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	if fields := validate.Struct(&req); fields != nil {
		log.Warn("Destination validation failed", zap.Any("fields", fields))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "validation failed", "fields": fields})
	}

	destination := model.Destination{
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Location:    req.Location,
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	result := database.GetDB().Create(&destination)
	if result.Error != nil {
		log.Error("Failed to create destination", zap.String("name", req.Name), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create destination"})
	}

	log.Info("Destination created successfully",
		zap.String("destination_id", destination.ID.String()),
		zap.String("name", destination.Name))
	return c.JSON(http.StatusCreated, destination)
}

// ListDestinations retrieves all destinations
func ListDestinations(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("destination", "list")

	defer prometheus.TrackDBOperation("query")(time.Now())
	var destinations []model.Destination
	result := database.GetDB().Order("name asc").Find(&destinations)
	if result.Error != nil {
		log.Error("Failed to retrieve destinations", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to retrieve destinations"})
	}

	return c.JSON(http.StatusOK, destinations)
}

// GetDestination retrieves a destination by ID
func GetDestination(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("destination", "get")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		log.Error("Invalid destination ID", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid destination ID"})
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	var destination model.Destination
	result := database.GetDB().First(&destination, "id = ?", id)
	if result.Error != nil {
		log.Warn("Destination not found", zap.String("destination_id", id.String()))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Destination not found"})
	}

	return c.JSON(http.StatusOK, destination)
}

// UpdateDestination replaces a destination's fields
func UpdateDestination(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("destination", "update")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		log.Error("Invalid destination ID", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid destination ID"})
	}

	var req DestinationRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	if fields := validate.Struct(&req); fields != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "validation failed", "fields": fields})
	}

	var destination model.Destination
	result := database.GetDB().First(&destination, "id = ?", id)
	if result.Error != nil {
		log.Warn("Destination not found for update", zap.String("destination_id", id.String()))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Destination not found"})
	}

	destination.Name = req.Name
	destination.Description = req.Description
	destination.ImageURL = req.ImageURL
	destination.Location = req.Location

	defer prometheus.TrackDBOperation("update")(time.Now())
	result = database.GetDB().Save(&destination)
	if result.Error != nil {
		log.Error("Failed to update destination", zap.String("destination_id", id.String()), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update destination"})
	}

	log.Info("Destination updated successfully", zap.String("destination_id", destination.ID.String()))
	return c.JSON(http.StatusOK, destination)
}

// DeleteDestination removes a destination permanently
func DeleteDestination(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("destination", "delete")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		log.Error("Invalid destination ID", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid destination ID"})
	}

	var destination model.Destination
	result := database.GetDB().First(&destination, "id = ?", id)
	if result.Error != nil {
		log.Warn("Destination not found for delete", zap.String("destination_id", id.String()))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Destination not found"})
	}

	defer prometheus.TrackDBOperation("delete")(time.Now())
	result = database.GetDB().Delete(&destination)
	if result.Error != nil {
		log.Error("Failed to delete destination", zap.String("destination_id", id.String()), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete destination"})
	}

	log.Info("Destination deleted successfully", zap.String("destination_id", id.String()))
	return c.JSON(http.StatusOK, echo.Map{"message": "Destination deleted successfully"})
}

// SuggestDestinations returns destination names matching the "q" query
// parameter for location autocomplete
func SuggestDestinations(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("destination", "suggest")

	defer prometheus.TrackDBOperation("query")(time.Now())
	var destinations []model.Destination
	result := database.GetDB().Order("name asc").Find(&destinations)
	if result.Error != nil {
		log.Error("Failed to retrieve destinations", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to retrieve destinations"})
	}

	names := make([]string, 0, len(destinations))
	for _, d := range destinations {
		names = append(names, d.Name)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"suggestions": filter.SuggestDestinations(names, c.QueryParam("q")),
	})
}
