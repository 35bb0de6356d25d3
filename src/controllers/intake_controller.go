package controllers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"QuickTech-Backend/src/models"
	"QuickTech-Backend/src/services/submission"
	"QuickTech-Backend/src/utils"
)

// IntakeController รับฟอร์มจากหน้าเว็บแล้วบันทึกเป็น submission
type IntakeController struct {
	submissions *submission.Service
	log         *zap.Logger
}

func NewIntakeController(svc *submission.Service, log *zap.Logger) *IntakeController {
	return &IntakeController{submissions: svc, log: log}
}

// CreateContact godoc
// @Summary      Submit the contact form
// @Tags         intake
// @Accept       json
// @Produce      json
// @Param        body body models.ContactRequest true "Contact form"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  models.ValidationErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /contact [post]
func (h *IntakeController) CreateContact(c *fiber.Ctx) error {
	var req models.ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleInvalidBody(c)
	}
	if errs := utils.ValidateStruct(req); errs != nil {
		h.log.Debug("contact form rejected", zap.Int("errors", len(errs)))
		return utils.HandleValidation(c, errs)
	}

	sub, err := h.submissions.RecordContact(c.UserContext(), req)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to submit contact form")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"contact": models.ContactRecord{
			ID:        sub.ID,
			Name:      req.Name,
			Email:     req.Email,
			Subject:   req.Subject,
			Message:   req.Message,
			CreatedAt: sub.CreatedAt,
		},
	})
}

// CreateQuote godoc
// @Summary      Submit a quote request
// @Description  The body is stored as submitted.
// @Tags         intake
// @Accept       json
// @Produce      json
// @Param        body body object true "Quote fields"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /quote [post]
func (h *IntakeController) CreateQuote(c *fiber.Ctx) error {
	var fields map[string]any
	// a literal null decodes without error and leaves fields nil
	if err := c.BodyParser(&fields); err != nil || fields == nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}

	if _, err := h.submissions.RecordQuote(c.UserContext(), fields); err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to submit quote request")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true})
}

// CreateAuthEvent godoc
// @Summary      Record a login or signup event
// @Tags         intake
// @Accept       json
// @Produce      json
// @Param        body body models.AuthEventRequest true "Auth event"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  models.ValidationErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /auth-event [post]
func (h *IntakeController) CreateAuthEvent(c *fiber.Ctx) error {
	var req models.AuthEventRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleInvalidBody(c)
	}
	if errs := utils.ValidateStruct(req); errs != nil {
		return utils.HandleValidation(c, errs)
	}

	if _, err := h.submissions.RecordAuthEvent(c.UserContext(), req.Type, req.UserData); err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to record event")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true})
}
