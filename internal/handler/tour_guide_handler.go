package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/rockviolet/WanderLanka/internal/filter"
	"github.com/rockviolet/WanderLanka/internal/model"
	"github.com/rockviolet/WanderLanka/internal/rating"
	"github.com/rockviolet/WanderLanka/pkg/database"
	"github.com/rockviolet/WanderLanka/pkg/logger"
	"github.com/rockviolet/WanderLanka/pkg/validate"
	"github.com/rockviolet/WanderLanka/prometheus"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/lib/pq"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// TourGuideRequest defines the structure for tour guide creation requests
type TourGuideRequest struct {
	Name          string   `json:"name" validate:"required"`
	Email         string   `json:"email" validate:"required,email"`
	NICNumber     string   `json:"nicNumber" validate:"required,min=10"`
	ContactNumber string   `json:"contactNumber" validate:"required,min=6"`
	Username      string   `json:"username" validate:"required,min=3"`
	Password      string   `json:"password" validate:"required,min=6"`
	ImageURL      string   `json:"imageUrl"`
	ServiceAreas  []string `json:"serviceAreas"`
	Languages     []string `json:"languages"`
}

// TourGuideUpdateRequest defines the structure for partial guide updates.
// The password is never updated through this request.
type TourGuideUpdateRequest struct {
	Name          string    `json:"name"`
	Email         string    `json:"email" validate:"omitempty,email"`
	NICNumber     string    `json:"nicNumber" validate:"omitempty,min=10"`
	ContactNumber string    `json:"contactNumber" validate:"omitempty,min=6"`
	Username      string    `json:"username" validate:"omitempty,min=3"`
	IsActive      *bool     `json:"isActive"`
	ImageURL      string    `json:"imageUrl"`
	ServiceAreas  *[]string `json:"serviceAreas"`
	Languages     *[]string `json:"languages"`
}

// TourGuideWithRating augments a guide with its average review rating
type TourGuideWithRating struct {
	model.TourGuide
	AverageRating float64 `json:"averageRating"`
}

// CreateTourGuide creates a new tour guide
func CreateTourGuide(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("tour_guide", "create")

	var req TourGuideRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	if fields := validate.Struct(&req); fields != nil {
		log.Warn("Tour guide validation failed", zap.Any("fields", fields))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "validation failed", "fields": fields})
	}

	// Email, username and NIC must all be unique across guides,
	// including soft-deleted rows
	defer prometheus.TrackDBOperation("query")(time.Now())
	var count int64
	database.GetDB().Unscoped().Model(&model.TourGuide{}).
		Where("email = ? OR username = ? OR nic_number = ?", req.Email, req.Username, req.NICNumber).
		Count(&count)
	if count > 0 {
		log.Warn("Tour guide with this email, username or NIC already exists",
			zap.String("email", req.Email),
			zap.String("username", req.Username))
		return c.JSON(http.StatusConflict, echo.Map{"error": "Email, username or NIC already exists"})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error("Failed to hash password", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create tour guide"})
	}

	guide := model.TourGuide{
		Name:          req.Name,
		Email:         req.Email,
		NICNumber:     req.NICNumber,
		ContactNumber: req.ContactNumber,
		Username:      req.Username,
		Password:      string(hashedPassword),
		IsActive:      true,
		ImageURL:      req.ImageURL,
		ServiceAreas:  pq.StringArray(req.ServiceAreas),
		Languages:     pq.StringArray(req.Languages),
	}

	result := database.GetDB().Create(&guide)
	if result.Error != nil {
		log.Error("Failed to create tour guide", zap.String("email", req.Email), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create tour guide"})
	}

	log.Info("Tour guide created successfully",
		zap.String("tour_guide_id", guide.ID.String()),
		zap.String("email", guide.Email))
	return c.JSON(http.StatusCreated, guide)
}

// ListTourGuides retrieves all tour guides that are not soft deleted,
// each with its average review rating
func ListTourGuides(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("tour_guide", "list")

	defer prometheus.TrackDBOperation("query")(time.Now())
	var guides []model.TourGuide
	result := database.GetDB().Order("created_at desc").Find(&guides)
	if result.Error != nil {
		log.Error("Failed to retrieve tour guides", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to retrieve tour guides"})
	}

	return c.JSON(http.StatusOK, withRatings(guides))
}

// GetTourGuide retrieves a tour guide with its reviews and average rating
func GetTourGuide(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("tour_guide", "get")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		log.Error("Invalid tour guide ID", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid tour guide ID"})
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	var guide model.TourGuide
	result := database.GetDB().Preload("Reviews").Preload("Reviews.Client").First(&guide, "id = ?", id)
	if result.Error != nil {
		log.Warn("Tour guide not found", zap.String("tour_guide_id", id.String()))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Tour guide not found"})
	}

	stars := make([]int, 0, len(guide.Reviews))
	for _, review := range guide.Reviews {
		stars = append(stars, review.NumOfStars)
	}

	return c.JSON(http.StatusOK, TourGuideWithRating{
		TourGuide:     guide,
		AverageRating: rating.Average(stars),
	})
}

// UpdateTourGuide applies a partial update to a tour guide
func UpdateTourGuide(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("tour_guide", "update")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		log.Error("Invalid tour guide ID", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid tour guide ID"})
	}

	var req TourGuideUpdateRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	if fields := validate.Struct(&req); fields != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "validation failed", "fields": fields})
	}

	var guide model.TourGuide
	result := database.GetDB().First(&guide, "id = ?", id)
	if result.Error != nil {
		log.Warn("Tour guide not found for update", zap.String("tour_guide_id", id.String()))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Tour guide not found"})
	}

	if req.Email != "" && req.Email != guide.Email {
		var count int64
		database.GetDB().Unscoped().Model(&model.TourGuide{}).
			Where("email = ? AND id != ?", req.Email, id).
			Count(&count)
		if count > 0 {
			return c.JSON(http.StatusConflict, echo.Map{"error": "Email already exists"})
		}
		guide.Email = req.Email
	}
	if req.Username != "" && req.Username != guide.Username {
		var count int64
		database.GetDB().Unscoped().Model(&model.TourGuide{}).
			Where("username = ? AND id != ?", req.Username, id).
			Count(&count)
		if count > 0 {
			return c.JSON(http.StatusConflict, echo.Map{"error": "Username already exists"})
		}
		guide.Username = req.Username
	}
	if req.NICNumber != "" && req.NICNumber != guide.NICNumber {
		var count int64
		database.GetDB().Unscoped().Model(&model.TourGuide{}).
			Where("nic_number = ? AND id != ?", req.NICNumber, id).
			Count(&count)
		if count > 0 {
			return c.JSON(http.StatusConflict, echo.Map{"error": "NIC already exists"})
		}
		guide.NICNumber = req.NICNumber
	}

	if req.Name != "" {
		guide.Name = req.Name
	}
	if req.ContactNumber != "" {
		guide.ContactNumber = req.ContactNumber
	}
	if req.ImageURL != "" {
		guide.ImageURL = req.ImageURL
	}
	if req.IsActive != nil {
		guide.IsActive = *req.IsActive
	}
	if req.ServiceAreas != nil {
		guide.ServiceAreas = pq.StringArray(*req.ServiceAreas)
	}
	if req.Languages != nil {
		guide.Languages = pq.StringArray(*req.Languages)
	}

	defer prometheus.TrackDBOperation("update")(time.Now())
	result = database.GetDB().Save(&guide)
	if result.Error != nil {
		log.Error("Failed to update tour guide", zap.String("tour_guide_id", id.String()), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update tour guide"})
	}

	log.Info("Tour guide updated successfully", zap.String("tour_guide_id", guide.ID.String()))
	return c.JSON(http.StatusOK, guide)
}

// DeleteTourGuide soft deletes a tour guide
func DeleteTourGuide(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("tour_guide", "delete")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		log.Error("Invalid tour guide ID", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid tour guide ID"})
	}

	var guide model.TourGuide
	result := database.GetDB().First(&guide, "id = ?", id)
	if result.Error != nil {
		log.Warn("Tour guide not found for delete", zap.String("tour_guide_id", id.String()))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Tour guide not found"})
	}

	defer prometheus.TrackDBOperation("delete")(time.Now())
	result = database.GetDB().Delete(&guide)
	if result.Error != nil {
		log.Error("Failed to delete tour guide", zap.String("tour_guide_id", id.String()), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete tour guide"})
	}

	log.Info("Tour guide deleted successfully", zap.String("tour_guide_id", id.String()))
	return c.JSON(http.StatusOK, echo.Map{"message": "Tour guide deleted successfully"})
}

// SuggestTourGuides returns active guides whose service areas match the
// given trip locations (comma-separated "locations" query parameter,
// start and end of a plan)
func SuggestTourGuides(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("tour_guide", "suggest")

	raw := c.QueryParam("locations")
	if raw == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "locations query parameter is required"})
	}

	locations := []string{}
	for _, loc := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(loc); trimmed != "" {
			locations = append(locations, trimmed)
		}
	}
	// A plan contributes at most its start and end location
	if len(locations) > 2 {
		locations = locations[:2]
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	var guides []model.TourGuide
	result := database.GetDB().Where("is_active = ?", true).Order("created_at desc").Find(&guides)
	if result.Error != nil {
		log.Error("Failed to retrieve tour guides", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to retrieve tour guides"})
	}

	matched := filter.MatchGuides(guides, locations)
	if len(matched) == 0 {
		return c.JSON(http.StatusOK, echo.Map{
			"tourGuides": []TourGuideWithRating{},
			"message":    "No tour guides found for the selected locations",
		})
	}

	return c.JSON(http.StatusOK, echo.Map{"tourGuides": withRatings(matched)})
}

// withRatings decorates guides with average ratings using a single
// review query
func withRatings(guides []model.TourGuide) []TourGuideWithRating {
	ids := make([]uuid.UUID, 0, len(guides))
	for _, g := range guides {
		ids = append(ids, g.ID)
	}

	starsByGuide := map[uuid.UUID][]int{}
	if len(ids) > 0 {
		var reviews []model.TourGuideReview
		database.GetDB().Where("tour_guide_id IN ?", ids).Find(&reviews)
		for _, review := range reviews {
			starsByGuide[review.TourGuideID] = append(starsByGuide[review.TourGuideID], review.NumOfStars)
		}
	}

	out := make([]TourGuideWithRating, 0, len(guides))
	for _, g := range guides {
		out = append(out, TourGuideWithRating{
			TourGuide:     g,
			AverageRating: rating.Average(starsByGuide[g.ID]),
		})
	}
	return out
}
