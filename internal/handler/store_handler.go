package handler

import (
	"storecare-backend/internal/apperror"
	"storecare-backend/internal/model"
	"storecare-backend/internal/repository"
	"storecare-backend/internal/timeutil"
	"storecare-backend/internal/workdate"

	"github.com/gofiber/fiber/v2"
)

type StoreHandler struct {
	stores     repository.StoreRepository
	attendance repository.AttendanceRepository
	clock      timeutil.Clock
}

func NewStoreHandler(stores repository.StoreRepository, attendance repository.AttendanceRepository, clock timeutil.Clock) *StoreHandler {
	return &StoreHandler{stores: stores, attendance: attendance, clock: clock}
}

// AssignedStores lists the caller's serviceable stores. With
// include_attendance=true each store also carries whether the caller is
// currently clocked in there and for which work date.
func (h *StoreHandler) AssignedStores(c *fiber.Ctx) error {
	userID := callerID(c)

	stores, err := h.stores.GetAssigned(userID)
	if err != nil {
		return apperror.Respond(c, apperror.Storage(err, "Failed to load assigned stores"))
	}

	if c.Query("include_attendance") != "true" {
		return c.JSON(fiber.Map{
			"success": true,
			"data":    stores,
		})
	}

	window := workdate.Window(h.clock, timeutil.Today(h.clock))
	open, err := h.attendance.FindOpenByUserInDates(userID, window)
	if err != nil {
		return apperror.Respond(c, apperror.Storage(err, "Failed to load attendance"))
	}
	openByStore := make(map[uint]*model.Attendance, len(open))
	for i := range open {
		openByStore[open[i].StoreID] = &open[i]
	}

	merged := make([]fiber.Map, 0, len(stores))
	for _, store := range stores {
		entry := fiber.Map{
			"store":      store,
			"clocked_in": false,
		}
		if att, ok := openByStore[store.ID]; ok {
			entry["clocked_in"] = true
			entry["work_date"] = att.WorkDate
			entry["attendance_id"] = att.ID
		}
		merged = append(merged, entry)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    merged,
	})
}
