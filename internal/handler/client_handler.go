package handler

import (
	"net/http"
	"time"

	"github.com/rockviolet/WanderLanka/internal/model"
	"github.com/rockviolet/WanderLanka/pkg/database"
	"github.com/rockviolet/WanderLanka/pkg/logger"
	"github.com/rockviolet/WanderLanka/pkg/validate"
	"github.com/rockviolet/WanderLanka/prometheus"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ClientUpdateRequest defines the structure for client profile updates.
// Empty fields keep their stored value; the password never changes here.
type ClientUpdateRequest struct {
	Name          string `json:"name"`
	Gender        string `json:"gender"`
	Email         string `json:"email" validate:"omitempty,email"`
	Username      string `json:"username" validate:"omitempty,min=3"`
	ContactNumber string `json:"contactNumber" validate:"omitempty,min=6"`
	Country       string `json:"country"`
	ImageURL      string `json:"imageUrl"`
}

// ListClients retrieves all registered clients
func ListClients(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("client", "list")

	defer prometheus.TrackDBOperation("query")(time.Now())
	var clients []model.Client
	result := database.GetDB().Order("created_at desc").Find(&clients)
	if result.Error != nil {
		log.Error("Failed to retrieve clients", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to retrieve clients"})
	}

	return c.JSON(http.StatusOK, clients)
}

// GetClient retrieves a client by ID
func GetClient(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("client", "get")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		log.Error("Invalid client ID", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid client ID"})
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	var client model.Client
	result := database.GetDB().First(&client, "id = ?", id)
	if result.Error != nil {
		log.Warn("Client not found", zap.String("client_id", id.String()))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Client not found"})
	}

	return c.JSON(http.StatusOK, client)
}

// UpdateClient updates a client's own profile
func UpdateClient(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("client", "update")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		log.Error("Invalid client ID", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid client ID"})
	}

	// Clients may only update their own profile
	userID, _ := c.Get("user_id").(string)
	if userID != id.String() {
		log.Warn("Attempt to update another client's profile",
			zap.String("client_id", id.String()),
			zap.String("user_id", userID))
		return c.JSON(http.StatusForbidden, echo.Map{"error": "You don't have permission to update this client"})
	}

	var req ClientUpdateRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	if fields := validate.Struct(&req); fields != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "validation failed", "fields": fields})
	}

	var client model.Client
	result := database.GetDB().First(&client, "id = ?", id)
	if result.Error != nil {
		log.Warn("Client not found for update", zap.String("client_id", id.String()))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Client not found"})
	}

	// Check uniqueness when email or username changes
	if req.Email != "" && req.Email != client.Email {
		var count int64
		database.GetDB().Model(&model.Client{}).
			Where("email = ? AND id != ?", req.Email, id).
			Count(&count)
		if count > 0 {
			return c.JSON(http.StatusConflict, echo.Map{"error": "Email already exists"})
		}
		client.Email = req.Email
	}
	if req.Username != "" && req.Username != client.Username {
		var count int64
		database.GetDB().Model(&model.Client{}).
			Where("username = ? AND id != ?", req.Username, id).
			Count(&count)
		if count > 0 {
			return c.JSON(http.StatusConflict, echo.Map{"error": "Username already exists"})
		}
		client.Username = req.Username
	}

	if req.Name != "" {
		client.Name = req.Name
	}
	if req.Gender != "" {
		client.Gender = req.Gender
	}
	if req.ContactNumber != "" {
		client.ContactNumber = req.ContactNumber
	}
	if req.Country != "" {
		client.Country = req.Country
	}
	if req.ImageURL != "" {
		client.ImageURL = req.ImageURL
	}

	defer prometheus.TrackDBOperation("update")(time.Now())
	result = database.GetDB().Save(&client)
	if result.Error != nil {
		log.Error("Failed to update client", zap.String("client_id", id.String()), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update client"})
	}

	log.Info("Client updated successfully", zap.String("client_id", client.ID.String()))
	return c.JSON(http.StatusOK, client)
}

// DeleteClient removes a client account permanently
func DeleteClient(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("client", "delete")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		log.Error("Invalid client ID", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid client ID"})
	}

	var client model.Client
	result := database.GetDB().First(&client, "id = ?", id)
	if result.Error != nil {
		log.Warn("Client not found for delete", zap.String("client_id", id.String()))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Client not found"})
	}

	defer prometheus.TrackDBOperation("delete")(time.Now())
	result = database.GetDB().Delete(&client)
	if result.Error != nil {
		log.Error("Failed to delete client", zap.String("client_id", id.String()), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete client"})
	}

	log.Info("Client deleted successfully", zap.String("client_id", id.String()))
	return c.JSON(http.StatusOK, echo.Map{"message": "Client deleted successfully"})
}
