package handler

import (
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/rockviolet/WanderLanka/pkg/config"
	"github.com/rockviolet/WanderLanka/pkg/logger"
	"github.com/rockviolet/WanderLanka/prometheus"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// UploadSettings is the upload configuration wired up in main
var UploadSettings *config.UploadConfig

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// UploadImage stores an uploaded image under a generated filename and
// returns its public path. Only whitelisted image types up to the
// configured size limit are accepted.
func UploadImage(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.UploadCounter.Inc()

	fileHeader, err := c.FormFile("file")
	if err != nil {
		log.Warn("No file provided", zap.Error(err))
		prometheus.UploadErrorsCounter.Inc()
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "No file provided"})
	}

	if fileHeader.Size > UploadSettings.MaxBytes {
		log.Warn("Uploaded file too large",
			zap.Int64("size", fileHeader.Size),
			zap.Int64("limit", UploadSettings.MaxBytes))
		prometheus.UploadErrorsCounter.Inc()
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "File exceeds the size limit"})
	}

	src, err := fileHeader.Open()
	if err != nil {
		log.Error("Failed to open uploaded file", zap.Error(err))
		prometheus.UploadErrorsCounter.Inc()
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Upload failed"})
	}
	defer src.Close()

	// Sniff the content type instead of trusting the client header
	head := make([]byte, 512)
	n, err := src.Read(head)
	if err != nil && err != io.EOF {
		log.Error("Failed to read uploaded file", zap.Error(err))
		prometheus.UploadErrorsCounter.Inc()
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Upload failed"})
	}

	contentType := http.DetectContentType(head[:n])
	ext, ok := allowedImageTypes[contentType]
	if !ok {
		log.Warn("Rejected upload with unsupported content type", zap.String("content_type", contentType))
		prometheus.UploadErrorsCounter.Inc()
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Only image uploads are allowed"})
	}

	if _, err := src.Seek(0, io.SeekStart); err != nil {
		log.Error("Failed to rewind uploaded file", zap.Error(err))
		prometheus.UploadErrorsCounter.Inc()
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Upload failed"})
	}

	if err := os.MkdirAll(UploadSettings.Dir, 0o755); err != nil {
		log.Error("Failed to create upload directory", zap.Error(err))
		prometheus.UploadErrorsCounter.Inc()
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Upload failed"})
	}

	fileName := uuid.New().String() + ext
	dst, err := os.Create(filepath.Join(UploadSettings.Dir, fileName))
	if err != nil {
		log.Error("Failed to create upload file", zap.Error(err))
		prometheus.UploadErrorsCounter.Inc()
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Upload failed"})
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		log.Error("Failed to write uploaded file", zap.Error(err))
		prometheus.UploadErrorsCounter.Inc()
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Upload failed"})
	}

	log.Info("Image uploaded successfully",
		zap.String("file_name", fileName),
		zap.String("content_type", contentType),
		zap.Int64("size", fileHeader.Size))

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"name":    fileName,
		"path":    UploadSettings.PublicPath + "/" + fileName,
	})
}
