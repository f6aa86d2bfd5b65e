package handlers

import (
	"bytes"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"worklog-service/internal/export"
	"worklog-service/internal/services"
)

// ExportHandler serves compressed CSV exports of the work log.
type ExportHandler struct {
	service *services.ExportService
}

func NewExportHandler(service *services.ExportService) *ExportHandler {
	return &ExportHandler{service: service}
}

// DownloadExport streams the whole work log
// @Summary Download the work log
// @Description All work entries as gzip-compressed CSV
// @Tags exports
// @Produce application/gzip
// @Success 200 {file} binary "csv.gz export"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /work_entries/export [get]
func (h *ExportHandler) DownloadExport(c *fiber.Ctx) error {
	var buf bytes.Buffer
	if err := h.service.WriteExport(c.UserContext(), &buf); err != nil {
		requestLogger(c).Error("error exporting work log", "error", fmt.Sprintf("%+v", err))
		return jsonError(c, fiber.StatusInternalServerError, "Failed to export work log due to a server error")
	}

	c.Attachment(services.FileName(time.Now()))
	c.Set(fiber.HeaderContentType, export.ContentType)
	return c.Status(fiber.StatusOK).Send(buf.Bytes())
}

// UploadExport stores an export in the object store
// @Summary Upload the work log to object storage
// @Description Renders the gzip CSV export and uploads it to the configured bucket
// @Tags exports
// @Produce json
// @Success 201 {object} map[string]interface{} "Export stored"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Failure 503 {object} map[string]interface{} "Object storage not configured"
// @Router /exports [post]
func (h *ExportHandler) UploadExport(c *fiber.Ctx) error {
	key, err := h.service.UploadExport(c.UserContext())
	if err != nil {
		if errors.Is(err, services.ErrExportUnavailable) {
			return jsonError(c, fiber.StatusServiceUnavailable, "Export storage is not configured")
		}
		requestLogger(c).Error("error uploading work log export", "error", fmt.Sprintf("%+v", err))
		return jsonError(c, fiber.StatusInternalServerError, "Failed to store export due to a server error")
	}

	requestLogger(c).Info("work log export stored", "key", key)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Export stored successfully",
		"key":     key,
	})
}
