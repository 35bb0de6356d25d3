package controllers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"QuickTech-Backend/src/models"
	"QuickTech-Backend/src/services/submission"
	"QuickTech-Backend/src/utils"
)

// AdminController อ่านและอัปเดตสถานะ submission สำหรับหน้า dashboard
type AdminController struct {
	submissions *submission.Service
}

func NewAdminController(svc *submission.Service) *AdminController {
	return &AdminController{submissions: svc}
}

// ListSubmissions godoc
// @Summary      List every submission in insertion order
// @Tags         admin
// @Produce      json
// @Success      200  {array}   models.Submission
// @Failure      500  {object}  models.ErrorResponse
// @Router       /admin/submissions [get]
func (h *AdminController) ListSubmissions(c *fiber.Ctx) error {
	list, err := h.submissions.List(c.UserContext())
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch submissions")
	}
	if list == nil {
		list = []models.Submission{}
	}
	return c.Status(fiber.StatusOK).JSON(list)
}

// GetSubmission godoc
// @Summary      Get one submission
// @Tags         admin
// @Produce      json
// @Param        id   path      int  true  "Submission ID"
// @Success      200  {object}  models.Submission
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /admin/submissions/{id} [get]
func (h *AdminController) GetSubmission(c *fiber.Ctx) error {
	id, err := submissionID(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid submission id")
	}

	sub, err := h.submissions.Get(c.UserContext(), id)
	if errors.Is(err, submission.ErrNotFound) {
		return utils.HandleCodedError(c, fiber.StatusNotFound, "NOT_FOUND", "Submission not found")
	}
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch submission")
	}
	return c.Status(fiber.StatusOK).JSON(sub)
}

// SubmissionStats godoc
// @Summary      Dashboard counts
// @Tags         admin
// @Produce      json
// @Success      200  {object}  models.SubmissionStats
// @Failure      500  {object}  models.ErrorResponse
// @Router       /admin/submissions/stats [get]
func (h *AdminController) SubmissionStats(c *fiber.Ctx) error {
	stats, err := h.submissions.Stats(c.UserContext())
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch submissions")
	}
	return c.Status(fiber.StatusOK).JSON(stats)
}

// MarkViewed godoc
// @Summary      Mark a submission as viewed
// @Tags         admin
// @Produce      json
// @Param        id   path      int  true  "Submission ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /admin/submissions/{id}/view [put]
func (h *AdminController) MarkViewed(c *fiber.Ctx) error {
	id, err := submissionID(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid submission id")
	}

	err = h.submissions.MarkViewed(c.UserContext(), id)
	if errors.Is(err, submission.ErrNotFound) {
		return utils.HandleCodedError(c, fiber.StatusNotFound, "NOT_FOUND", "Submission not found")
	}
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to update submission")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true})
}

func submissionID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}
