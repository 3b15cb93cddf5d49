package handler

import (
	"fmt"
	"strconv"

	"storecare-backend/internal/apperror"
	"storecare-backend/internal/timeutil"
	"storecare-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	svc   *usecase.ReportService
	clock timeutil.Clock
}

func NewReportHandler(svc *usecase.ReportService, clock timeutil.Clock) *ReportHandler {
	return &ReportHandler{svc: svc, clock: clock}
}

// Daily returns the per-company managed/unmanaged store summary for one work
// date (today by default). Also backs the business dashboard widget.
func (h *ReportHandler) Daily(c *fiber.Ctx) error {
	date := c.Query("date")
	if date == "" {
		date = timeutil.Today(h.clock)
	}

	summaries, err := h.svc.DailySummary(date)
	if err != nil {
		return apperror.Respond(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    summaries,
	})
}

// MonthlyXLSX streams the month's attendance for one store as a workbook.
func (h *ReportHandler) MonthlyXLSX(c *fiber.Ctx) error {
	storeID, err := strconv.ParseUint(c.Query("store_id"), 10, 64)
	if err != nil {
		return apperror.Respond(c, apperror.New(apperror.KindValidation, "store_id is required"))
	}
	month := c.Query("month")
	year := c.Query("year")
	if month == "" || year == "" {
		return apperror.Respond(c, apperror.New(apperror.KindValidation, "month and year are required"))
	}

	f, err := h.svc.ExportMonthly(uint(storeID), month, year)
	if err != nil {
		return apperror.Respond(c, err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return apperror.Respond(c, apperror.Storage(err, "Failed to build workbook"))
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="attendance-%s-%s.xlsx"`, year, month))
	return c.Send(buf.Bytes())
}
