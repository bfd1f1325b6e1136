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

// ReviewRequest defines the structure for platform review submissions
type ReviewRequest struct {
	Review     string `json:"review" validate:"required"`
	NumOfStars int    `json:"numOfStars" validate:"required,gte=1,lte=5"`
}

// CreateReview creates a platform review for the authenticated client
func CreateReview(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("review", "create")

	clientID, ok := sessionClientID(c)
	if !ok {
		log.Error("Failed to get client ID from context")
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
	}

	var req ReviewRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	if fields := validate.Struct(&req); fields != nil {
		log.Warn("Review validation failed", zap.Any("fields", fields))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "validation failed", "fields": fields})
	}

	review := model.Review{
		ClientID:   clientID,
		Review:     req.Review,
		NumOfStars: req.NumOfStars,
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	result := database.GetDB().Create(&review)
	if result.Error != nil {
		log.Error("Failed to create review", zap.String("client_id", clientID.String()), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create review"})
	}

	log.Info("Review created successfully",
		zap.String("review_id", review.ID.String()),
		zap.Int("num_of_stars", review.NumOfStars))
	return c.JSON(http.StatusCreated, review)
}

// ListReviews retrieves all platform reviews, newest first, with the
// average rating for display
func ListReviews(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("review", "list")

	defer prometheus.TrackDBOperation("query")(time.Now())
	var reviews []model.Review
	result := database.GetDB().Preload("Client").Order("created_at desc").Find(&reviews)
	if result.Error != nil {
		log.Error("Failed to retrieve reviews", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to retrieve reviews"})
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

// UpdateReview replaces a review's text and stars, owner only
func UpdateReview(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("review", "update")

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

	var req ReviewRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	if fields := validate.Struct(&req); fields != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "validation failed", "fields": fields})
	}

	var review model.Review
	result := database.GetDB().First(&review, "id = ?", id)
	if result.Error != nil {
		log.Warn("Review not found for update", zap.String("review_id", id.String()))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Review not found"})
	}

	if review.ClientID != clientID {
		log.Warn("Attempt to update another client's review",
			zap.String("review_id", id.String()),
			zap.String("client_id", clientID.String()))
		return c.JSON(http.StatusForbidden, echo.Map{"error": "You don't have permission to update this review"})
	}

	review.Review = req.Review
	review.NumOfStars = req.NumOfStars

	defer prometheus.TrackDBOperation("update")(time.Now())
	result = database.GetDB().Save(&review)
	if result.Error != nil {
		log.Error("Failed to update review", zap.String("review_id", id.String()), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update review"})
	}

	log.Info("Review updated successfully", zap.String("review_id", review.ID.String()))
	return c.JSON(http.StatusOK, review)
}

// DeleteReview removes a review permanently, owner only
func DeleteReview(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("review", "delete")

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

	var review model.Review
	result := database.GetDB().First(&review, "id = ?", id)
	if result.Error != nil {
		log.Warn("Review not found for delete", zap.String("review_id", id.String()))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Review not found"})
	}

	if review.ClientID != clientID {
		log.Warn("Attempt to delete another client's review",
			zap.String("review_id", id.String()),
			zap.String("client_id", clientID.String()))
		return c.JSON(http.StatusForbidden, echo.Map{"error": "You don't have permission to delete this review"})
	}

	defer prometheus.TrackDBOperation("delete")(time.Now())
	result = database.GetDB().Delete(&review)
	if result.Error != nil {
		log.Error("Failed to delete review", zap.String("review_id", id.String()), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete review"})
	}

	log.Info("Review deleted successfully", zap.String("review_id", id.String()))
	return c.JSON(http.StatusOK, echo.Map{"message": "Review deleted successfully"})
}
