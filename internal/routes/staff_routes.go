package routes

import (
	"storecare-backend/internal/handler"
	"storecare-backend/internal/middleware"
	"storecare-backend/internal/repository"
	"storecare-backend/internal/timeutil"
	"storecare-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupStaffRoutes(app *fiber.App, db *gorm.DB, clock timeutil.Clock) {
	attendanceRepo := repository.NewAttendanceRepository(db)
	storeRepo := repository.NewStoreRepository(db)
	checklistRepo := repository.NewChecklistRepository(db)

	checklistSvc := usecase.NewChecklistService(clock, checklistRepo, attendanceRepo, storeRepo)
	checklistHdl := handler.NewChecklistHandler(checklistSvc)
	storeHdl := handler.NewStoreHandler(storeRepo, attendanceRepo, clock)

	api := app.Group("/api/staff", middleware.Auth)
	api.Get("/assigned-stores", storeHdl.AssignedStores)
	api.Get("/checklists", checklistHdl.List)
	api.Patch("/checklists/:id", checklistHdl.Submit)
	api.Get("/checklist-progress", checklistHdl.Progress)
}
