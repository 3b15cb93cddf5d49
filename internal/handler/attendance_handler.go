package handler

import (
	"strconv"

	"storecare-backend/internal/apperror"
	"storecare-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type AttendanceHandler struct {
	svc *usecase.AttendanceService
}

func NewAttendanceHandler(svc *usecase.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{svc: svc}
}

func (h *AttendanceHandler) ClockIn(c *fiber.Ctx) error {
	var req usecase.ClockInRequest
	if err := c.BodyParser(&req); err != nil {
		return apperror.Respond(c, apperror.New(apperror.KindValidation, "Invalid request body"))
	}

	att, err := h.svc.ClockIn(callerID(c), callerRole(c), req)
	if err != nil {
		return apperror.Respond(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    att,
	})
}

func (h *AttendanceHandler) ClockOut(c *fiber.Ctx) error {
	var req usecase.ClockOutRequest
	if err := c.BodyParser(&req); err != nil {
		return apperror.Respond(c, apperror.New(apperror.KindValidation, "Invalid request body"))
	}

	att, err := h.svc.ClockOut(callerID(c), callerRole(c), req)
	if err != nil {
		return apperror.Respond(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    att,
	})
}

func (h *AttendanceHandler) Today(c *fiber.Ctx) error {
	att, err := h.svc.TodayStatus(callerID(c))
	if err != nil {
		return apperror.Respond(c, err)
	}
	if att == nil {
		return c.JSON(fiber.Map{
			"success":    true,
			"clocked_in": false,
			"data":       nil,
		})
	}
	return c.JSON(fiber.Map{
		"success":    true,
		"clocked_in": true,
		"data":       att,
	})
}

func (h *AttendanceHandler) History(c *fiber.Ctx) error {
	month := c.Query("month")
	year := c.Query("year")

	list, err := h.svc.History(callerID(c), month, year)
	if err != nil {
		return apperror.Respond(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    list,
	})
}

// Cancel removes a mistaken clock-in, owner/admin only.
func (h *AttendanceHandler) Cancel(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return apperror.Respond(c, apperror.New(apperror.KindValidation, "Invalid attendance id"))
	}

	if err := h.svc.Cancel(callerRole(c), callerCompanyID(c), uint(id)); err != nil {
		return apperror.Respond(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}
