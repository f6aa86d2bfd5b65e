package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"worklog-service/internal/services"
)

const (
	msgEntryLogged       = "Work entry logged successfully"
	msgEntryStoreFailed  = "Failed to log work entry due to a server error"
	msgSummaryLoadFailed = "Failed to retrieve work summary due to a server error"
)

// WorkEntryHandler serves the work entry and summary endpoints.
type WorkEntryHandler struct {
	service *services.WorkEntryService
}

func NewWorkEntryHandler(service *services.WorkEntryService) *WorkEntryHandler {
	return &WorkEntryHandler{service: service}
}

// CreateWorkEntry logs one unit of work
// @Summary Log a work entry
// @Description Record hours a worker spent on a project. id and timestamp are assigned by the server.
// @Tags work_entries
// @Accept json
// @Produce json
// @Param entry body models.WorkEntryInput true "Work entry"
// @Success 201 {object} map[string]interface{} "Work entry logged"
// @Failure 400 {object} map[string]interface{} "Validation failed"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /work_entries [post]
func (h *WorkEntryHandler) CreateWorkEntry(c *fiber.Ctx) error {
	id, err := h.service.LogWork(c.UserContext(), c.Body())
	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			requestLogger(c).Info("work entry rejected", "reason", verr.Reason)
			return jsonError(c, fiber.StatusBadRequest, verr.Message)
		}
		requestLogger(c).Error("error adding work entry", "error", fmt.Sprintf("%+v", err))
		return jsonError(c, fiber.StatusInternalServerError, msgEntryStoreFailed)
	}

	requestLogger(c).Info("work entry logged", "id", id)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": msgEntryLogged,
	})
}

// GetWorkSummary returns total hours per project
// @Summary Work summary by project
// @Description Sum of logged hours grouped by project number, ordered by project number
// @Tags work_entries
// @Produce json
// @Success 200 {array} models.ProjectSummary "Hours per project"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /work_summary [get]
func (h *WorkEntryHandler) GetWorkSummary(c *fiber.Ctx) error {
	summary, err := h.service.Summary(c.UserContext())
	if err != nil {
		requestLogger(c).Error("error retrieving work summary", "error", fmt.Sprintf("%+v", err))
		return jsonError(c, fiber.StatusInternalServerError, msgSummaryLoadFailed)
	}
	return c.Status(fiber.StatusOK).JSON(summary)
}
