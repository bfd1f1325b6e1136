package handler

import (
	"net/http"
	"time"

	"github.com/rockviolet/WanderLanka/internal/model"
	"github.com/rockviolet/WanderLanka/internal/rating"
	"github.com/rockviolet/WanderLanka/pkg/database"
	"github.com/rockviolet/WanderLanka/pkg/logger"
	"github.com/rockviolet/WanderLanka/pkg/validate"
	"github.com/rockviolet/WanderLanka/prometheus"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// TourGuideReviewRequest defines the structure for guide review submissions
type TourGuideReviewRequest struct {
	TourGuideID string `json:"tourGuideId" validate:"required"`
	NumOfStars  int    `json:"numOfStars" validate:"required,gte=1,lte=5"`
	Comment     string `json:"comment" validate:"required"`
}

// CreateTourGuideReview creates a review of a tour guide by the
// authenticated client
func CreateTourGuideReview(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("tour_guide_review", "create")

	clientID, ok := sessionClientID(c)
	if !ok {
		log.Error("Failed to get client ID from context")
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}

	var req TourGuideReviewRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	if fields := validate.Struct(&req); fields != nil {
		log.Warn("Tour guide review validation failed", zap.Any("fields", fields))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "validation failed", "fields": fields})
	}

	guideID, err := uuid.Parse(req.TourGuideID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error":  "validation failed",
			"fields": map[string]string{"tourGuideId": "tourGuideId must be a valid ID"},
		})
	}

	// The reviewed guide must exist and not be soft deleted
	defer prometheus.TrackDBOperation("query")(time.Now())
	var guide model.TourGuide
	result := database.GetDB().First(&guide, "id = ?", guideID)
	if result.Error != nil {
		log.Warn("Tour guide not found for review", zap.String("tour_guide_id", guideID.String()))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Tour guide not found"})
	}

	review := model.TourGuideReview{
		TourGuideID: guideID,
		ClientID:    clientID,
		NumOfStars:  req.NumOfStars,
		Comment:     req.Comment,
	}

	result = database.GetDB().Create(&review)
	if result.Error != nil {
		log.Error("Failed to create tour guide review",
			zap.String("tour_guide_id", guideID.String()),
			zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create tour guide review"})
	}

	log.Info("Tour guide review created successfully",
		zap.String("review_id", review.ID.String()),
		zap.String("tour_guide_id", guideID.String()),
		zap.Int("num_of_stars", review.NumOfStars))
	return c.JSON(http.StatusCreated, review)
}

// ListTourGuideReviews retrieves reviews, optionally scoped to one guide
// via the tour_guide_id query parameter, with the average rating
func ListTourGuideReviews(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("tour_guide_review", "list")

	query := database.GetDB().Preload("Client").Order("created_at desc")

	if raw := c.QueryParam("tour_guide_id"); raw != "" {
		guideID, err := uuid.Parse(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid tour guide ID"})
		}
		query = query.Where("tour_guide_id = ?", guideID)
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	var reviews []model.TourGuideReview
	result := query.Find(&reviews)
	if result.Error != nil {
		log.Error("Failed to retrieve tour guide reviews", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to retrieve tour guide reviews"})
	}

	stars := make([]int, 0, len(reviews))
	for _, review := range reviews {
		stars = append(stars, review.NumOfStars)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"reviews":       reviews,
		"averageRating": rating.Average(stars),
	})
}

// DeleteTourGuideReview removes a guide review permanently, owner only
func DeleteTourGuideReview(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("tour_guide_review", "delete")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		log.Error("Invalid review ID", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid review ID"})
	}

	clientID, ok := sessionClientID(c)
	if !ok {
		log.Error("Failed to get client ID from context")
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}

	var review model.TourGuideReview
	result := database.GetDB().First(&review, "id = ?", id)
	if result.Error != nil {
		log.Warn("Tour guide review not found for delete", zap.String("review_id", id.String()))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Review not found"})
	}

	if review.ClientID != clientID {
		log.Warn("Attempt to delete another client's guide review",
			zap.String("review_id", id.String()),
			zap.String("client_id", clientID.String()))
		return c.JSON(http.StatusForbidden, echo.Map{"error": "You don't have permission to delete this review"})
	}

	defer prometheus.TrackDBOperation("delete")(time.Now())
	result = database.GetDB().Delete(&review)
	if result.Error != nil {
		log.Error("Failed to delete tour guide review", zap.String("review_id", id.String()), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete review"})
	}

	log.Info("Tour guide review deleted successfully", zap.String("review_id", id.String()))
	return c.JSON(http.StatusOK, echo.Map{"message": "Review deleted successfully"})
}
