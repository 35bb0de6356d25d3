package controllers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"QuickTech-Backend/src/middleware"
	"QuickTech-Backend/src/models"
	"QuickTech-Backend/src/services/auth"
	"QuickTech-Backend/src/utils"
)

type AuthController struct {
	auth *auth.Service
}

func NewAuthController(svc *auth.Service) *AuthController {
	return &AuthController{auth: svc}
}

// Login godoc
// @Summary      Log in with email and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body models.LoginRequest true "Credentials"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  models.ValidationErrorResponse
// @Failure      401  {object}  models.ErrorResponse
// @Failure      429  {object}  map[string]interface{}
// @Router       /auth/login [post]
func (h *AuthController) Login(c *fiber.Ctx) error {
	// 1. Input validation
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleCodedError(c, fiber.StatusBadRequest, "INVALID_REQUEST", "Invalid request format")
	}
	if errs := utils.ValidateStruct(req); errs != nil {
		return utils.HandleValidation(c, errs)
	}

	// 2. Authenticate (rate limit อยู่ใน service)
	result, err := h.auth.Login(c.UserContext(), req)
	var limited *auth.RateLimitedError
	switch {
	case errors.As(err, &limited):
		remaining := limited.Remaining
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
			"status": fiber.StatusTooManyRequests,
			"message": fmt.Sprintf("Too many login attempts. Please try again in %d minutes and %d seconds.",
				int(remaining.Minutes()),
				int(remaining.Seconds())%60),
			"code":          "RATE_LIMITED",
			"remainingTime": int(remaining.Seconds()),
		})
	case errors.Is(err, auth.ErrInvalidCredentials):
		return utils.HandleCodedError(c, fiber.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid credentials")
	case err != nil:
		return utils.HandleCodedError(c, fiber.StatusInternalServerError, "LOGIN_FAILED", "Login failed")
	}

	// 3. Security headers
	c.Set("X-Frame-Options", "DENY")
	c.Set("X-Content-Type-Options", "nosniff")

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"token":     result.Token,
		"expiresIn": int(result.ExpiresIn.Seconds()),
		"user":      result.Session,
	})
}

// Signup godoc
// @Summary      Create an account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body models.SignupRequest true "Signup form"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  models.ValidationErrorResponse
// @Failure      409  {object}  models.ErrorResponse
// @Router       /auth/signup [post]
func (h *AuthController) Signup(c *fiber.Ctx) error {
	var req models.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleCodedError(c, fiber.StatusBadRequest, "INVALID_REQUEST", "Invalid request format")
	}
	if errs := utils.ValidateStruct(req); errs != nil {
		return utils.HandleValidation(c, errs)
	}

	user, err := h.auth.Signup(c.UserContext(), req)
	if errors.Is(err, auth.ErrEmailTaken) {
		return utils.HandleCodedError(c, fiber.StatusConflict, "EMAIL_TAKEN", "An account with this email already exists")
	}
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Signup failed")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "user": user})
}

// Me godoc
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  auth.Session
// @Failure      401  {object}  models.ErrorResponse
// @Router       /auth/me [get]
func (h *AuthController) Me(c *fiber.Ctx) error {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		return utils.HandleCodedError(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "Not logged in")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"user": session})
}
