package handler

import (
	"storecare-backend/internal/apperror"
	"storecare-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	svc *usecase.UserService
}

func NewAuthHandler(svc *usecase.UserService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input struct {
		Name      string `json:"name"`
		Email     string `json:"email"`
		Password  string `json:"password"`
		Role      string `json:"role"`
		CompanyID *uint  `json:"company_id"`
	}
	if err := c.BodyParser(&input); err != nil {
		return apperror.Respond(c, apperror.New(apperror.KindValidation, "Invalid request body"))
	}
	if input.Email == "" || input.Password == "" {
		return apperror.Respond(c, apperror.New(apperror.KindValidation, "email and password are required"))
	}

	if err := h.svc.Register(input.Name, input.Email, input.Password, input.Role, input.CompanyID); err != nil {
		return apperror.Respond(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return apperror.Respond(c, apperror.New(apperror.KindValidation, "Invalid request body"))
	}

	token, user, err := h.svc.Login(input.Email, input.Password)
	if err != nil {
		return apperror.Respond(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"token":   token,
		"name":    user.Name,
		"role":    user.Role,
	})
}
