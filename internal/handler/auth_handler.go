package handler

import (
	"net/http"
	"time"

	"github.com/rockviolet/WanderLanka/internal/model"
	"github.com/rockviolet/WanderLanka/pkg/database"
	"github.com/rockviolet/WanderLanka/pkg/jwtutil"
	"github.com/rockviolet/WanderLanka/pkg/logger"
	"github.com/rockviolet/WanderLanka/pkg/validate"
	"github.com/rockviolet/WanderLanka/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// RegisterRequest defines the structure for client registration requests
type RegisterRequest struct {
	Name          string `json:"name" validate:"required"`
	Gender        string `json:"gender" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Username      string `json:"username" validate:"required,min=3"`
	ContactNumber string `json:"contactNumber" validate:"required,min=6"`
	Country       string `json:"country" validate:"required"`
	ImageURL      string `json:"imageUrl"`
	Password      string `json:"password" validate:"required,min=6"`
}

// LoginRequest defines the structure for credential checks
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Register creates a new client account
func Register(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("client", "create")

	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	if fields := validate.Struct(&req); fields != nil {
		log.Warn("Registration validation failed", zap.Any("fields", fields))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "validation failed", "fields": fields})
	}

	// Reject duplicate email or username before writing anything
	defer prometheus.TrackDBOperation("query")(time.Now())
	var count int64
	database.GetDB().Model(&model.Client{}).
		Where("email = ? OR username = ?", req.Email, req.Username).
		Count(&count)
	if count > 0 {
		log.Warn("Client with this email or username already exists",
			zap.String("email", req.Email),
			zap.String("username", req.Username))
		return c.JSON(http.StatusConflict, echo.Map{"error": "Email or username already exists"})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error("Failed to hash password", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "registration failed"})
	}

	client := model.Client{
		Name:          req.Name,
		Gender:        req.Gender,
		Email:         req.Email,
		Username:      req.Username,
		ContactNumber: req.ContactNumber,
		Country:       req.Country,
		ImageURL:      req.ImageURL,
		Password:      string(hashedPassword),
	}

	result := database.GetDB().Create(&client)
	if result.Error != nil {
		log.Error("Failed to create client", zap.String("email", req.Email), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create client"})
	}

	log.Info("Client registered successfully",
		zap.String("client_id", client.ID.String()),
		zap.String("email", client.Email))
	return c.JSON(http.StatusCreated, client)
}

// Login checks client credentials and issues a token. Unknown email and
// wrong password are reported identically to avoid user enumeration.
func Login(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.AuthAttemptsCounter.Inc()

	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse login request", zap.Error(err))
		prometheus.RecordAuthError("invalid_request")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	if fields := validate.Struct(&req); fields != nil {
		prometheus.RecordAuthError("invalid_request")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "validation failed", "fields": fields})
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	var client model.Client
	result := database.GetDB().Where("email = ?", req.Email).First(&client)
	if result.Error != nil {
		log.Warn("Client not found", zap.String("email", req.Email))
		prometheus.RecordAuthError("user_not_found")
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(client.Password), []byte(req.Password)); err != nil {
		log.Warn("Invalid password", zap.String("email", req.Email))
		prometheus.RecordAuthError("invalid_password")
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	token, err := jwtutil.GenerateToken(client.Email, client.ID.String(), jwtutil.RoleClient)
	if err != nil {
		log.Error("Failed to generate token", zap.Error(err))
		prometheus.RecordAuthError("token_generation_failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "token error"})
	}

	prometheus.AuthSuccessCounter.Inc()
	log.Info("Client logged in", zap.String("email", client.Email))

	return c.JSON(http.StatusOK, echo.Map{
		"token":  token,
		"client": client,
	})
}

// GuideLogin checks tour guide credentials and issues a token.
// Soft-deleted and deactivated guides cannot log in.
func GuideLogin(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.AuthAttemptsCounter.Inc()

	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse guide login request", zap.Error(err))
		prometheus.RecordAuthError("invalid_request")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	if fields := validate.Struct(&req); fields != nil {
		prometheus.RecordAuthError("invalid_request")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "validation failed", "fields": fields})
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	var guide model.TourGuide
	result := database.GetDB().Where("email = ?", req.Email).First(&guide)
	if result.Error != nil {
		log.Warn("Tour guide not found", zap.String("email", req.Email))
		prometheus.RecordAuthError("user_not_found")
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(guide.Password), []byte(req.Password)); err != nil {
		log.Warn("Invalid password", zap.String("email", req.Email))
		prometheus.RecordAuthError("invalid_password")
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	if !guide.IsActive {
		log.Warn("Deactivated guide attempted login", zap.String("email", req.Email))
		prometheus.RecordAuthError("guide_inactive")
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	token, err := jwtutil.GenerateToken(guide.Email, guide.ID.String(), jwtutil.RoleTourGuide)
	if err != nil {
		log.Error("Failed to generate token", zap.Error(err))
		prometheus.RecordAuthError("token_generation_failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "token error"})
	}

	prometheus.AuthSuccessCounter.Inc()
	log.Info("Tour guide logged in", zap.String("email", guide.Email))

	return c.JSON(http.StatusOK, echo.Map{
		"token":     token,
		"tourGuide": guide,
	})
}
