package handler

import (
	"strconv"

	"storecare-backend/internal/apperror"
	"storecare-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type ChecklistHandler struct {
	svc *usecase.ChecklistService
}

func NewChecklistHandler(svc *usecase.ChecklistService) *ChecklistHandler {
	return &ChecklistHandler{svc: svc}
}

// List returns a store's checklists for one work date.
func (h *ChecklistHandler) List(c *fiber.Ctx) error {
	storeID, err := strconv.ParseUint(c.Query("store_id"), 10, 64)
	if err != nil {
		return apperror.Respond(c, apperror.New(apperror.KindValidation, "store_id is required"))
	}
	workDate := c.Query("work_date")
	if workDate == "" {
		return apperror.Respond(c, apperror.New(apperror.KindValidation, "work_date is required"))
	}

	list, err := h.svc.ForStore(uint(storeID), workDate)
	if err != nil {
		return apperror.Respond(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    list,
	})
}

// Submit replaces the checklist's item sequence with the staff submission.
func (h *ChecklistHandler) Submit(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return apperror.Respond(c, apperror.New(apperror.KindValidation, "Invalid checklist id"))
	}

	var req usecase.ChecklistSubmitRequest
	if err := c.BodyParser(&req); err != nil {
		return apperror.Respond(c, apperror.New(apperror.KindValidation, "Invalid request body"))
	}

	cl, err := h.svc.Submit(callerID(c), uint(id), req)
	if err != nil {
		return apperror.Respond(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    cl,
	})
}

// Progress feeds the mobile dashboard: completion per store the caller is
// currently clocked in at.
func (h *ChecklistHandler) Progress(c *fiber.Ctx) error {
	results, err := h.svc.ProgressByStore(callerID(c))
	if err != nil {
		return apperror.Respond(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    results,
	})
}

type reviewRequest struct {
	Approve bool    `json:"approve"`
	Comment *string `json:"comment"`
}

func (h *ChecklistHandler) Review(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return apperror.Respond(c, apperror.New(apperror.KindValidation, "Invalid checklist id"))
	}

	var req reviewRequest
	if err := c.BodyParser(&req); err != nil {
		return apperror.Respond(c, apperror.New(apperror.KindValidation, "Invalid request body"))
	}

	cl, err := h.svc.Review(callerID(c), callerRole(c), uint(id), req.Approve, req.Comment)
	if err != nil {
		return apperror.Respond(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    cl,
	})
}
